package handler

import (
	"log/slog"
	"net/http"

	"medifind/internal/delivery/http/response"
	"medifind/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MessageHandler holds dependencies for the messaging handlers.
type MessageHandler struct {
	uc     usecase.MessageUsecase
	logger *slog.Logger
}

// NewMessageHandler is the constructor for MessageHandler, injected by Fx.
func NewMessageHandler(uc usecase.MessageUsecase, logger *slog.Logger) *MessageHandler {
	return &MessageHandler{
		uc:     uc,
		logger: logger,
	}
}

// Send handles a patient sending a message to a pharmacy.
func (h *MessageHandler) Send(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	var input usecase.SendMessageInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid message input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	message, err := h.uc.Send(c.Request().Context(), userID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, message, "Message sent successfully")
}

// Reply handles a pharmacy replying to a received message.
func (h *MessageHandler) Reply(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	var input usecase.ReplyMessageInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reply input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	message, err := h.uc.Reply(c.Request().Context(), userID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, message, "Reply sent successfully")
}

// ReplyAsPatient handles a patient replying within one of their conversations.
func (h *MessageHandler) ReplyAsPatient(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	var input usecase.ReplyMessageInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reply input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	message, err := h.uc.ReplyAsPatient(c.Request().Context(), userID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, message, "Reply sent successfully")
}

// PatientInbox handles retrieval of the patient's conversations.
func (h *MessageHandler) PatientInbox(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	threads, err := h.uc.PatientInbox(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, threads, "Inbox retrieved successfully")
}

// PharmacyInbox handles retrieval of the pharmacy's conversations.
func (h *MessageHandler) PharmacyInbox(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	threads, err := h.uc.PharmacyInbox(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, threads, "Inbox retrieved successfully")
}

// PatientSent handles retrieval of the messages the patient originated.
func (h *MessageHandler) PatientSent(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	messages, err := h.uc.PatientMessages(c.Request().Context(), userID, false)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, messages, "Messages retrieved successfully")
}

// PatientMessages handles retrieval of the patient's full message history.
func (h *MessageHandler) PatientMessages(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	messages, err := h.uc.PatientMessages(c.Request().Context(), userID, true)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, messages, "Messages retrieved successfully")
}

// PharmacyReceived handles retrieval of the patient messages addressed to
// the pharmacy, replies excluded.
func (h *MessageHandler) PharmacyReceived(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	messages, err := h.uc.PharmacyMessages(c.Request().Context(), userID, false)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, messages, "Messages retrieved successfully")
}

// PharmacyMessages handles retrieval of the pharmacy's full message history.
func (h *MessageHandler) PharmacyMessages(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	messages, err := h.uc.PharmacyMessages(c.Request().Context(), userID, true)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, messages, "Messages retrieved successfully")
}

// MarkPatientRead flags every unread reply to the patient as read.
func (h *MessageHandler) MarkPatientRead(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	if err := h.uc.MarkPatientRead(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Messages marked as read")
}

// MarkPharmacyRead flags every unread patient message to the pharmacy as read.
func (h *MessageHandler) MarkPharmacyRead(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	if err := h.uc.MarkPharmacyRead(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Messages marked as read")
}

// MarkPatientMessageRead flags one reply to the patient as read.
func (h *MessageHandler) MarkPatientMessageRead(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	messageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid message ID")
	}

	if err := h.uc.MarkPatientMessageRead(c.Request().Context(), userID, messageID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Message marked as read")
}

// MarkPharmacyMessageRead flags one patient message to the pharmacy as read.
func (h *MessageHandler) MarkPharmacyMessageRead(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	messageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid message ID")
	}

	if err := h.uc.MarkPharmacyMessageRead(c.Request().Context(), userID, messageID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Message marked as read")
}
