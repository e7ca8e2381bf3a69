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

// PrescriptionHandler holds dependencies for the prescription handlers.
type PrescriptionHandler struct {
	uc     usecase.PrescriptionUsecase
	logger *slog.Logger
}

// NewPrescriptionHandler is the constructor for PrescriptionHandler, injected by Fx.
func NewPrescriptionHandler(uc usecase.PrescriptionUsecase, logger *slog.Logger) *PrescriptionHandler {
	return &PrescriptionHandler{
		uc:     uc,
		logger: logger,
	}
}

// Upload handles a patient's multipart prescription upload. The form carries
// the file under "file" plus "pharmacy_id", "title" and "notes" fields.
func (h *PrescriptionHandler) Upload(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	pharmacyID, err := uuid.Parse(c.FormValue("pharmacy_id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid pharmacy ID")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "MISSING_FILE", "A prescription file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.WithStack(err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			h.logger.Warn("Failed to close uploaded file", slog.Any("error", closeErr))
		}
	}()

	input := usecase.UploadPrescriptionInput{
		PharmacyID:  pharmacyID,
		Title:       c.FormValue("title"),
		Notes:       c.FormValue("notes"),
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Content:     file,
	}

	prescription, err := h.uc.Upload(c.Request().Context(), userID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, prescription, "Prescription uploaded successfully")
}

// Get handles retrieval of one prescription by its uploader or the target
// pharmacy.
func (h *PrescriptionHandler) Get(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	prescriptionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid prescription ID")
	}

	prescription, err := h.uc.Get(c.Request().Context(), userID, prescriptionID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, prescription, "Prescription retrieved successfully")
}

// ListMine handles retrieval of the patient's own uploads.
func (h *PrescriptionHandler) ListMine(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	prescriptions, err := h.uc.ListMine(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, prescriptions, "Prescriptions retrieved successfully")
}

// ListForPharmacy handles retrieval of prescriptions sent to the caller's pharmacy.
func (h *PrescriptionHandler) ListForPharmacy(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	prescriptions, err := h.uc.ListForPharmacy(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, prescriptions, "Prescriptions retrieved successfully")
}

// MarkRead flags one received prescription as read.
func (h *PrescriptionHandler) MarkRead(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	prescriptionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid prescription ID")
	}

	if err := h.uc.MarkRead(c.Request().Context(), userID, prescriptionID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Prescription marked as read")
}
