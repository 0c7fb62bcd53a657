// internal/model/user.go
package model

// UserRole is the platform role carried in issued tokens. A user starts as
// RoleUser and is promoted exactly once, to RoleOrg or RolePresta, when the
// matching profile is created.
type UserRole string

const (
	RoleAdmin  UserRole = "ADMIN"
	RoleOrg    UserRole = "ORG"
	RolePresta UserRole = "PRESTA"
	RoleUser   UserRole = "USER"
)

type User struct {
	ID       int64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Email    string   `gorm:"type:citext;uniqueIndex;not null" json:"email"`
	Password string   `gorm:"type:text" json:"-"`
	Role     UserRole `gorm:"type:text;not null;default:'USER'" json:"role"`
	Siret    string   `gorm:"type:varchar(50)" json:"siret,omitempty"`
}
