package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "medifind/internal/delivery/context"
	"medifind/internal/domain/entity"
	domainerrors "medifind/internal/domain/errors"
	"medifind/internal/domain/repository"
	"medifind/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// messageService implements the MessageUsecase interface.
type messageService struct {
	messageRepo  repository.MessageRepository
	pharmacyRepo repository.PharmacyRepository
	userRepo     repository.UserRepository
	logger       *slog.Logger
}

// MessageServiceParams holds dependencies for MessageService, injected by Fx.
type MessageServiceParams struct {
	fx.In

	MessageRepo  repository.MessageRepository
	PharmacyRepo repository.PharmacyRepository
	UserRepo     repository.UserRepository
	Logger       *slog.Logger
}

// NewMessageService is the constructor for messageService.
func NewMessageService(params MessageServiceParams) usecase.MessageUsecase {
	return &messageService{
		messageRepo:  params.MessageRepo,
		pharmacyRepo: params.PharmacyRepo,
		userRepo:     params.UserRepo,
		logger:       params.Logger,
	}
}

func (srv *messageService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Send creates a new patient-to-pharmacy message.
func (srv *messageService) Send(ctx context.Context, userID uuid.UUID, input *usecase.SendMessageInput) (*entity.Message, error) {
	if _, err := srv.pharmacyRepo.FindByID(ctx, input.PharmacyID); err != nil {
		if errors.Is(err, repository.ErrPharmacyNotFound) {
			return nil, domainerrors.ErrPharmacyNotFound
		}

		return nil, errors.Wrap(err, "failed to resolve message target")
	}

	message := &entity.Message{
		UserID:     userID,
		PharmacyID: input.PharmacyID,
		Subject:    strings.TrimSpace(input.Subject),
		Body:       strings.TrimSpace(input.Body),
		SentAt:     time.Now(),
	}

	if err := srv.messageRepo.Create(ctx, message); err != nil {
		return nil, errors.Wrap(err, "failed to send message")
	}

	srv.log(ctx).Debug("Message sent", slog.Any("userID", userID), slog.Any("pharmacyID", input.PharmacyID))

	return message, nil
}

// Reply creates a pharmacy's reply to a message it received. The reply keeps
// the original sender as the user side of the conversation.
func (srv *messageService) Reply(ctx context.Context, pharmacyUserID uuid.UUID, input *usecase.ReplyMessageInput) (*entity.Message, error) {
	pharmacy, err := srv.pharmacyRepo.FindByUserID(ctx, pharmacyUserID)
	if err != nil {
		if errors.Is(err, repository.ErrPharmacyNotFound) {
			return nil, domainerrors.ErrPharmacyNotFound.WrapMessage("no pharmacy profile for this account")
		}

		return nil, errors.Wrap(err, "failed to resolve own pharmacy")
	}

	parent, err := srv.messageRepo.FindByID(ctx, input.ParentID)
	if err != nil {
		if errors.Is(err, repository.ErrMessageNotFound) {
			return nil, domainerrors.ErrMessageNotFound
		}

		return nil, errors.Wrap(err, "failed to load parent message")
	}

	// Only a party to the parent may reply.
	if parent.PharmacyID != pharmacy.ID {
		return nil, domainerrors.ErrForbidden.WrapMessage("not a party to this conversation")
	}

	reply := &entity.Message{
		UserID:     parent.UserID,
		PharmacyID: pharmacy.ID,
		Subject:    replySubject(parent.Subject),
		Body:       strings.TrimSpace(input.Body),
		SentAt:     time.Now(),
		IsReply:    true,
		ParentID:   &parent.ID,
	}

	if err := srv.messageRepo.Create(ctx, reply); err != nil {
		return nil, errors.Wrap(err, "failed to send reply")
	}

	srv.log(ctx).Debug("Reply sent", slog.Any("pharmacyID", pharmacy.ID), slog.Any("parentID", parent.ID))

	return reply, nil
}

// ReplyAsPatient creates a patient's reply within a conversation the patient
// is a party to.
func (srv *messageService) ReplyAsPatient(ctx context.Context, userID uuid.UUID, input *usecase.ReplyMessageInput) (*entity.Message, error) {
	parent, err := srv.messageRepo.FindByID(ctx, input.ParentID)
	if err != nil {
		if errors.Is(err, repository.ErrMessageNotFound) {
			return nil, domainerrors.ErrMessageNotFound
		}

		return nil, errors.Wrap(err, "failed to load parent message")
	}

	// Only a party to the parent may reply.
	if parent.UserID != userID {
		return nil, domainerrors.ErrForbidden.WrapMessage("not a party to this conversation")
	}

	reply := &entity.Message{
		UserID:     userID,
		PharmacyID: parent.PharmacyID,
		Subject:    replySubject(parent.Subject),
		Body:       strings.TrimSpace(input.Body),
		SentAt:     time.Now(),
		IsReply:    true,
		ParentID:   &parent.ID,
	}

	if err := srv.messageRepo.Create(ctx, reply); err != nil {
		return nil, errors.Wrap(err, "failed to send reply")
	}

	srv.log(ctx).Debug("Reply sent", slog.Any("userID", userID), slog.Any("parentID", parent.ID))

	return reply, nil
}

// replySubject derives a reply's subject line from its parent without
// stacking prefixes on long threads.
func replySubject(subject string) string {
	if strings.HasPrefix(subject, "Re: ") {
		return subject
	}

	return "Re: " + subject
}

// PatientInbox retrieves the caller's conversations grouped by pharmacy.
func (srv *messageService) PatientInbox(ctx context.Context, userID uuid.UUID) ([]*usecase.MessageThreadOutput, error) {
	messages, err := srv.messageRepo.FindByUser(ctx, userID, true)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load patient inbox")
	}

	threads := groupMessages(messages, func(m *entity.Message) uuid.UUID { return m.PharmacyID })
	for _, thread := range threads {
		pharmacy, err := srv.pharmacyRepo.FindByID(ctx, thread.CounterpartyID)
		if err != nil && !errors.Is(err, repository.ErrPharmacyNotFound) {
			return nil, errors.Wrap(err, "failed to resolve thread pharmacy")
		}
		if pharmacy != nil {
			thread.CounterpartyName = pharmacy.Name
		}
	}

	return threads, nil
}

// PharmacyInbox retrieves the caller's conversations grouped by patient.
func (srv *messageService) PharmacyInbox(ctx context.Context, pharmacyUserID uuid.UUID) ([]*usecase.MessageThreadOutput, error) {
	pharmacy, err := srv.pharmacyRepo.FindByUserID(ctx, pharmacyUserID)
	if err != nil {
		if errors.Is(err, repository.ErrPharmacyNotFound) {
			return nil, domainerrors.ErrPharmacyNotFound.WrapMessage("no pharmacy profile for this account")
		}

		return nil, errors.Wrap(err, "failed to resolve own pharmacy")
	}

	messages, err := srv.messageRepo.FindByPharmacy(ctx, pharmacy.ID, true)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load pharmacy inbox")
	}

	threads := groupMessages(messages, func(m *entity.Message) uuid.UUID { return m.UserID })
	for _, thread := range threads {
		user, err := srv.userRepo.FindByID(ctx, thread.CounterpartyID)
		if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(err, "failed to resolve thread patient")
		}
		if user != nil {
			thread.CounterpartyName = user.Username
		}
	}

	return threads, nil
}

// PatientMessages retrieves the caller's messages as a flat list.
func (srv *messageService) PatientMessages(ctx context.Context, userID uuid.UUID, includeReplies bool) ([]*entity.Message, error) {
	messages, err := srv.messageRepo.FindByUser(ctx, userID, includeReplies)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load patient messages")
	}

	return messages, nil
}

// PharmacyMessages retrieves the messages addressed to the caller's pharmacy
// as a flat list.
func (srv *messageService) PharmacyMessages(ctx context.Context, pharmacyUserID uuid.UUID, includeReplies bool) ([]*entity.Message, error) {
	pharmacy, err := srv.pharmacyRepo.FindByUserID(ctx, pharmacyUserID)
	if err != nil {
		if errors.Is(err, repository.ErrPharmacyNotFound) {
			return nil, domainerrors.ErrPharmacyNotFound.WrapMessage("no pharmacy profile for this account")
		}

		return nil, errors.Wrap(err, "failed to resolve own pharmacy")
	}

	messages, err := srv.messageRepo.FindByPharmacy(ctx, pharmacy.ID, includeReplies)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load pharmacy messages")
	}

	return messages, nil
}

// MarkPatientRead flags every unread reply addressed to the caller as read.
func (srv *messageService) MarkPatientRead(ctx context.Context, userID uuid.UUID) error {
	return srv.messageRepo.MarkReadByUser(ctx, userID)
}

// MarkPharmacyRead flags every unread patient message addressed to the
// caller's pharmacy as read.
func (srv *messageService) MarkPharmacyRead(ctx context.Context, pharmacyUserID uuid.UUID) error {
	pharmacy, err := srv.pharmacyRepo.FindByUserID(ctx, pharmacyUserID)
	if err != nil {
		if errors.Is(err, repository.ErrPharmacyNotFound) {
			return domainerrors.ErrPharmacyNotFound.WrapMessage("no pharmacy profile for this account")
		}

		return errors.Wrap(err, "failed to resolve own pharmacy")
	}

	return srv.messageRepo.MarkReadByPharmacy(ctx, pharmacy.ID)
}

// MarkPatientMessageRead flags one reply addressed to the caller as read.
// A message outside the caller's mailbox reads as not-found.
func (srv *messageService) MarkPatientMessageRead(ctx context.Context, userID uuid.UUID, messageID uuid.UUID) error {
	if err := srv.messageRepo.MarkReadForUser(ctx, messageID, userID); err != nil {
		if errors.Is(err, repository.ErrMessageNotFound) {
			return domainerrors.ErrMessageNotFound
		}

		return errors.Wrap(err, "failed to mark message read")
	}

	return nil
}

// MarkPharmacyMessageRead flags one patient message addressed to the caller's
// pharmacy as read.
func (srv *messageService) MarkPharmacyMessageRead(ctx context.Context, pharmacyUserID uuid.UUID, messageID uuid.UUID) error {
	pharmacy, err := srv.pharmacyRepo.FindByUserID(ctx, pharmacyUserID)
	if err != nil {
		if errors.Is(err, repository.ErrPharmacyNotFound) {
			return domainerrors.ErrPharmacyNotFound.WrapMessage("no pharmacy profile for this account")
		}

		return errors.Wrap(err, "failed to resolve own pharmacy")
	}

	if err := srv.messageRepo.MarkReadForPharmacy(ctx, messageID, pharmacy.ID); err != nil {
		if errors.Is(err, repository.ErrMessageNotFound) {
			return domainerrors.ErrMessageNotFound
		}

		return errors.Wrap(err, "failed to mark message read")
	}

	return nil
}

// groupMessages splits an already chronologically sorted message list into
// per-counterparty threads. Thread order follows each conversation's first
// message; message order within a thread is preserved.
func groupMessages(messages []*entity.Message, keyFn func(*entity.Message) uuid.UUID) []*usecase.MessageThreadOutput {
	byKey := make(map[uuid.UUID]*usecase.MessageThreadOutput)
	threads := make([]*usecase.MessageThreadOutput, 0)

	for _, message := range messages {
		key := keyFn(message)
		thread, ok := byKey[key]
		if !ok {
			thread = &usecase.MessageThreadOutput{CounterpartyID: key}
			byKey[key] = thread
			threads = append(threads, thread)
		}
		thread.Messages = append(thread.Messages, message)
	}

	return threads
}
