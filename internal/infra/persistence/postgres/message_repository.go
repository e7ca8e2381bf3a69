package postgres

import (
	"context"

	"medifind/internal/domain/entity"
	domainerrors "medifind/internal/domain/errors"
	"medifind/internal/domain/repository"
	"medifind/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// messageRepository implements the repository.MessageRepository interface.
type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository is the constructor for messageRepository.
func NewMessageRepository(db *gorm.DB) repository.MessageRepository {
	return &messageRepository{
		db: db,
	}
}

// Create persists a new message.
func (repo *messageRepository) Create(ctx context.Context, message *entity.Message) error {
	messageM := fromMessageDomain(message)

	if err := repo.db.WithContext(ctx).Create(messageM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrPharmacyNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required message information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create message")
	}

	message.ID = messageM.ID

	return nil
}

// FindByID retrieves a single message by its unique ID.
func (repo *messageRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Message, error) {
	var messageM model.MessageModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&messageM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMessageNotFound
		}

		return nil, errors.Wrap(err, "failed to find message by ID")
	}

	return toMessageDomain(&messageM), nil
}

// FindByPharmacy retrieves every message addressed to the pharmacy, sorted by
// sent time ascending.
func (repo *messageRepository) FindByPharmacy(ctx context.Context, pharmacyID uuid.UUID, includeReplies bool) ([]*entity.Message, error) {
	var messageModels []*model.MessageModel

	tx := repo.db.WithContext(ctx).
		Where("pharmacy_id = ?", pharmacyID)
	if !includeReplies {
		tx = tx.Where("is_reply = ?", false)
	}

	if err := tx.
		Order("sent_at ASC").
		Find(&messageModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find messages by pharmacy")
	}

	return toMessageDomainSlice(messageModels), nil
}

// FindByUser retrieves every message sent by or addressed to the user, sorted
// by sent time ascending.
func (repo *messageRepository) FindByUser(ctx context.Context, userID uuid.UUID, includeReplies bool) ([]*entity.Message, error) {
	var messageModels []*model.MessageModel

	tx := repo.db.WithContext(ctx).
		Where("user_id = ?", userID)
	if !includeReplies {
		tx = tx.Where("is_reply = ?", false)
	}

	if err := tx.
		Order("sent_at ASC").
		Find(&messageModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find messages by user")
	}

	return toMessageDomainSlice(messageModels), nil
}

// MarkReadByPharmacy flags every unread patient message addressed to the
// pharmacy as read.
func (repo *messageRepository) MarkReadByPharmacy(ctx context.Context, pharmacyID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.MessageModel{}).
		Where("pharmacy_id = ? AND is_reply = ? AND is_read = ?", pharmacyID, false, false).
		Update("is_read", true).Error; err != nil {
		return errors.Wrap(err, "failed to mark pharmacy messages read")
	}

	return nil
}

// MarkReadByUser flags every unread reply addressed to the user as read.
func (repo *messageRepository) MarkReadByUser(ctx context.Context, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.MessageModel{}).
		Where("user_id = ? AND is_reply = ? AND is_read = ?", userID, true, false).
		Update("is_read", true).Error; err != nil {
		return errors.Wrap(err, "failed to mark user messages read")
	}

	return nil
}

// MarkReadForPharmacy flags one patient message addressed to the pharmacy as
// read. The recipient scope is part of the predicate so a pharmacy cannot
// touch another tenant's mail.
func (repo *messageRepository) MarkReadForPharmacy(ctx context.Context, id uuid.UUID, pharmacyID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MessageModel{}).
		Where("id = ? AND pharmacy_id = ? AND is_reply = ?", id, pharmacyID, false).
		Update("is_read", true)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark message read")
	}

	if result.RowsAffected == 0 {
		return repository.ErrMessageNotFound
	}

	return nil
}

// MarkReadForUser flags one reply addressed to the user as read.
func (repo *messageRepository) MarkReadForUser(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MessageModel{}).
		Where("id = ? AND user_id = ? AND is_reply = ?", id, userID, true).
		Update("is_read", true)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark message read")
	}

	if result.RowsAffected == 0 {
		return repository.ErrMessageNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toMessageDomain converts a GORM MessageModel to a domain Message entity.
func toMessageDomain(data *model.MessageModel) *entity.Message {
	if data == nil {
		return nil
	}

	return &entity.Message{
		ID:         data.ID,
		UserID:     data.UserID,
		PharmacyID: data.PharmacyID,
		Subject:    data.Subject,
		Body:       data.Body,
		SentAt:     data.SentAt,
		IsRead:     data.IsRead,
		IsReply:    data.IsReply,
		ParentID:   data.ParentID,
	}
}

func toMessageDomainSlice(data []*model.MessageModel) []*entity.Message {
	messages := make([]*entity.Message, 0, len(data))
	for _, messageM := range data {
		messages = append(messages, toMessageDomain(messageM))
	}

	return messages
}

// fromMessageDomain converts a domain Message entity to a GORM MessageModel.
func fromMessageDomain(data *entity.Message) *model.MessageModel {
	if data == nil {
		return nil
	}

	return &model.MessageModel{
		ID:         data.ID,
		UserID:     data.UserID,
		PharmacyID: data.PharmacyID,
		Subject:    data.Subject,
		Body:       data.Body,
		SentAt:     data.SentAt,
		IsRead:     data.IsRead,
		IsReply:    data.IsReply,
		ParentID:   data.ParentID,
	}
}
