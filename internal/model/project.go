// internal/model/project.go
package model

type Project struct {
	ID             int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Title          string `gorm:"type:varchar(50)" json:"title"`
	Description    string `gorm:"type:text" json:"description"`
	OrganizationID int64  `gorm:"not null;index" json:"organization_id"`

	Organization *Organization `gorm:"foreignKey:OrganizationID" json:"organization,omitempty"`
	Paths        []Path        `gorm:"foreignKey:ProjectID" json:"paths,omitempty"`
}

// Path is one candidate delivery plan for a project. At steady state at most
// one path per project carries Chosen=true; the flag-only update does not
// enforce that, the exclusive variant does.
type Path struct {
	ID        int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	Number    int   `json:"number"`
	Chosen    bool  `gorm:"not null;default:false" json:"is_chosen"`
	ProjectID int64 `gorm:"not null;index" json:"project_id"`

	Tasks []PathAssignment `gorm:"foreignKey:PathID" json:"tasks,omitempty"`
}

// PathAssignment links a provider to a path as one unit of work. The
// (provider, path) pair is the primary key.
type PathAssignment struct {
	ProviderID int64  `gorm:"primaryKey;autoIncrement:false" json:"provider_id"`
	PathID     int64  `gorm:"primaryKey;autoIncrement:false" json:"path_id"`
	Name       string `gorm:"type:varchar(50)" json:"name"`
	DayCount   int    `gorm:"column:nb_days" json:"nb_days"`
	Approved   bool   `gorm:"not null;default:false" json:"is_approved"`
}

// Contract records an engagement number for a provider on a path.
type Contract struct {
	ID         int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Number     string `gorm:"column:num_contract;type:varchar(50)" json:"num_contract"`
	ProviderID int64  `gorm:"not null;index" json:"provider_id"`
	PathID     int64  `gorm:"not null;index" json:"path_id"`
}
