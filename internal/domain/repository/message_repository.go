package repository

import (
	"context"
	"errors"

	"medifind/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrMessageNotFound is returned when a message is not found.
var ErrMessageNotFound = errors.New("message not found")

// MessageRepository defines the standard operations for message persistence.
type MessageRepository interface {
	// Create persists a new message.
	Create(ctx context.Context, message *entity.Message) error

	// FindByID retrieves a single message by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Message, error)

	// FindByPharmacy retrieves every message addressed to the pharmacy,
	// sorted by sent time ascending. Replies are excluded unless
	// includeReplies is set.
	FindByPharmacy(ctx context.Context, pharmacyID uuid.UUID, includeReplies bool) ([]*entity.Message, error)

	// FindByUser retrieves every message sent by or addressed to the user,
	// sorted by sent time ascending. Replies are excluded unless
	// includeReplies is set.
	FindByUser(ctx context.Context, userID uuid.UUID, includeReplies bool) ([]*entity.Message, error)

	// MarkReadByPharmacy flags every unread message addressed to the
	// pharmacy as read.
	MarkReadByPharmacy(ctx context.Context, pharmacyID uuid.UUID) error

	// MarkReadByUser flags every unread reply addressed to the user as read.
	MarkReadByUser(ctx context.Context, userID uuid.UUID) error

	// MarkReadForPharmacy flags one patient message addressed to the
	// pharmacy as read. Returns ErrMessageNotFound when no row matches.
	MarkReadForPharmacy(ctx context.Context, id uuid.UUID, pharmacyID uuid.UUID) error

	// MarkReadForUser flags one reply addressed to the user as read.
	// Returns ErrMessageNotFound when no row matches.
	MarkReadForUser(ctx context.Context, id uuid.UUID, userID uuid.UUID) error
}
