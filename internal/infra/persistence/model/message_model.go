package model

import (
	"time"

	"github.com/google/uuid"
)

// MessageModel mirrors the 'messages' table. Replies carry the original
// message's ID in ParentID.
type MessageModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	PharmacyID uuid.UUID  `gorm:"type:uuid;not null;index"`
	Subject    string     `gorm:"type:varchar(255)"`
	Body       string     `gorm:"type:text;not null"`
	SentAt     time.Time  `gorm:"not null"`
	IsRead     bool       `gorm:"not null;default:false"`
	IsReply    bool       `gorm:"not null;default:false"`
	ParentID   *uuid.UUID `gorm:"type:uuid"`
}

// TableName explicitly sets the table name for GORM.
func (MessageModel) TableName() string {
	return "messages"
}
