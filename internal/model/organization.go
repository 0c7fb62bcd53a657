// internal/model/organization.go
package model

// Organization is a client profile owned by one user. Balance is a
// numeric(15,2) column carried as a string.
type Organization struct {
	ID      int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name    string `gorm:"type:varchar(50)" json:"name"`
	Address string `gorm:"type:varchar(50)" json:"adresse"`
	Balance string `gorm:"type:numeric(15,2)" json:"solde"`
	Phone   string `gorm:"type:varchar(50)" json:"tel"`
	UserID  int64  `gorm:"not null;index" json:"user_id"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
