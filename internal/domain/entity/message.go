// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Message is one record of the two-party conversation between a user and a
// pharmacy. Messages are stored flat; threading is a read-time grouping by
// counterparty. A reply chains back to exactly one parent message and its
// direction (user->pharmacy or pharmacy->user) is inferred from the parent.
type Message struct {
	ID         uuid.UUID  // The Global Unique Identifier (GUID) for the message.
	UserID     uuid.UUID  // The user party of the conversation.
	PharmacyID uuid.UUID  // The pharmacy party of the conversation.
	Subject    string     // Subject line; replies carry "Re: <parent subject>".
	Body       string     // Message body, whitespace-trimmed on write.
	SentAt     time.Time  // When the message was sent.
	IsRead     bool       // Read flag, mutated only by the recipient side.
	IsReply    bool       // True when this record is a reply to another message.
	ParentID   *uuid.UUID // The parent message for replies, nil otherwise.
}
