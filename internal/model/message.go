// internal/model/message.go
package model

import "time"

// Message is one entry in the conversation thread between a provider and an
// organization. Rows are append-only; a thread is the rows sharing a
// (provider, organization) pair ordered by creation time.
type Message struct {
	ID             int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ProviderID     int64     `gorm:"not null;index:idx_messages_thread" json:"provider_id"`
	OrganizationID int64     `gorm:"not null;index:idx_messages_thread" json:"organization_id"`
	Content        string    `gorm:"type:text" json:"content"`
	CreatedAt      time.Time `json:"created_at"`
}
