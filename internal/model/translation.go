// internal/model/translation.go
package model

// Translation stores a translated document for an organization: the original
// paginated content and its translation, both JSON-serialized.
type Translation struct {
	ID             int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Content        string `gorm:"type:text" json:"content"`
	Translated     string `gorm:"column:content_translate;type:text" json:"content_translate"`
	OrganizationID int64  `gorm:"not null;index" json:"organization_id"`
}

func (Translation) TableName() string { return "ai_translate" }
