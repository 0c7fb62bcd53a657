// internal/model/provider.go
package model

// Job is the provider's main line of work.
type Job string

const (
	JobDevelopment    Job = "DEVELOPMENT"
	JobDesign         Job = "DESIGN"
	JobMarketing      Job = "MARKETING"
	JobHumanResources Job = "HUMAN_RESOURCES"
	JobSales          Job = "SALES"
)

// Jobs lists every valid job category, in schema order.
func Jobs() []Job {
	return []Job{JobDevelopment, JobDesign, JobMarketing, JobHumanResources, JobSales}
}

// Provider is a freelancer profile owned by one user. DailyRate is a
// numeric(15,2) column carried as a string; it is parsed to a float only at
// the response boundary.
type Provider struct {
	ID             int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName      string `gorm:"type:varchar(50)" json:"first_name"`
	Name           string `gorm:"type:varchar(50)" json:"name"`
	Job            Job    `gorm:"type:text" json:"job"`
	Description    string `gorm:"type:text" json:"description"`
	ExperienceTime int    `json:"experience_time"`
	StudyLevel     string `gorm:"type:varchar(50)" json:"study_level"`
	City           string `gorm:"type:varchar(50)" json:"city"`
	DailyRate      string `gorm:"type:numeric(15,2)" json:"tjm"`
	UserID         int64  `gorm:"not null;index" json:"user_id"`

	User        *User        `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Skills      []Skill      `gorm:"foreignKey:ProviderID" json:"skills,omitempty"`
	Diplomas    []Diploma    `gorm:"foreignKey:ProviderID" json:"diplomas,omitempty"`
	Experiences []Experience `gorm:"foreignKey:ProviderID" json:"experiences,omitempty"`
	Languages   []Language   `gorm:"foreignKey:ProviderID" json:"languages,omitempty"`
}

type Skill struct {
	ID          int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Description string `gorm:"type:text" json:"description"`
	ProviderID  int64  `gorm:"not null;index" json:"provider_id"`
}

type Diploma struct {
	ID          int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Description string `gorm:"type:text" json:"description"`
	ProviderID  int64  `gorm:"not null;index" json:"provider_id"`
}

type Experience struct {
	ID          int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Description string `gorm:"type:text" json:"description"`
	ProviderID  int64  `gorm:"not null;index" json:"provider_id"`
}

type Language struct {
	ID          int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Description string `gorm:"type:text" json:"description"`
	ProviderID  int64  `gorm:"not null;index" json:"provider_id"`
}
