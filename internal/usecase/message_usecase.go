package usecase

import (
	"context"

	"medifind/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SendMessageInput defines the data a patient sends to a pharmacy.
type SendMessageInput struct {
	PharmacyID uuid.UUID `json:"pharmacy_id" validate:"required"`
	Subject    string    `json:"subject" validate:"max=255"`
	Body       string    `json:"body" validate:"required"`
}

// ReplyMessageInput defines a reply within an existing conversation.
type ReplyMessageInput struct {
	ParentID uuid.UUID `json:"parent_id" validate:"required"`
	Body     string    `json:"body" validate:"required"`
}

// --- Output DTOs ---

// MessageThreadOutput groups one counterparty's messages, sorted by sent
// time ascending. For a patient inbox the counterparty is a pharmacy; for a
// pharmacy inbox it is a patient.
type MessageThreadOutput struct {
	CounterpartyID   uuid.UUID         `json:"counterparty_id"`
	CounterpartyName string            `json:"counterparty_name"`
	Messages         []*entity.Message `json:"messages"`
}

// MessageUsecase defines the messaging operations between patients and
// pharmacies.
type MessageUsecase interface {
	// Send creates a new patient-to-pharmacy message.
	Send(ctx context.Context, userID uuid.UUID, input *SendMessageInput) (*entity.Message, error)

	// Reply creates a pharmacy's reply to a message it received. The reply
	// is addressed to the original sender.
	Reply(ctx context.Context, pharmacyUserID uuid.UUID, input *ReplyMessageInput) (*entity.Message, error)

	// ReplyAsPatient creates a patient's reply within a conversation the
	// patient is a party to.
	ReplyAsPatient(ctx context.Context, userID uuid.UUID, input *ReplyMessageInput) (*entity.Message, error)

	// PatientInbox retrieves the caller's conversations grouped by pharmacy.
	PatientInbox(ctx context.Context, userID uuid.UUID) ([]*MessageThreadOutput, error)

	// PharmacyInbox retrieves the caller's conversations grouped by patient.
	PharmacyInbox(ctx context.Context, pharmacyUserID uuid.UUID) ([]*MessageThreadOutput, error)

	// PatientMessages retrieves the caller's messages as a flat list,
	// sorted by sent time ascending. Replies are excluded unless
	// includeReplies is set, so the false form is the patient's sent mail.
	PatientMessages(ctx context.Context, userID uuid.UUID, includeReplies bool) ([]*entity.Message, error)

	// PharmacyMessages retrieves the messages addressed to the caller's
	// pharmacy as a flat list, sorted by sent time ascending. Replies are
	// excluded unless includeReplies is set.
	PharmacyMessages(ctx context.Context, pharmacyUserID uuid.UUID, includeReplies bool) ([]*entity.Message, error)

	// MarkPatientRead flags every unread reply addressed to the caller as read.
	MarkPatientRead(ctx context.Context, userID uuid.UUID) error

	// MarkPharmacyRead flags every unread patient message addressed to the
	// caller's pharmacy as read.
	MarkPharmacyRead(ctx context.Context, pharmacyUserID uuid.UUID) error

	// MarkPatientMessageRead flags one reply addressed to the caller as read.
	MarkPatientMessageRead(ctx context.Context, userID uuid.UUID, messageID uuid.UUID) error

	// MarkPharmacyMessageRead flags one patient message addressed to the
	// caller's pharmacy as read.
	MarkPharmacyMessageRead(ctx context.Context, pharmacyUserID uuid.UUID, messageID uuid.UUID) error
}
