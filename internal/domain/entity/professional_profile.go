package entity

import "github.com/google/uuid"

// ProfessionalProfile represents clinic-professional-specific profile data.
// ScheduleText is the free-text weekly schedule ("Segunda: 8h00 às 13h00",
// directives, closure markers) consumed by the agenda package; a NULL
// value means the professional has no published schedule yet.
type ProfessionalProfile struct {
	UserID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	RegistrationNumber string    `gorm:"column:registration_number;type:varchar(50);uniqueIndex;not null" json:"registration_number"`
	SpecialtyID        int       `gorm:"not null;index" json:"specialty_id"`
	Biography          string    `gorm:"type:text" json:"biography,omitempty"`
	ScheduleText       *string   `gorm:"type:text" json:"schedule_text,omitempty"`

	// Relationships
	User         User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Specialty    Specialty     `gorm:"foreignKey:SpecialtyID" json:"specialty,omitempty"`
	Appointments []Appointment `gorm:"foreignKey:ProfessionalID" json:"appointments,omitempty"`
}

func (ProfessionalProfile) TableName() string {
	return "professional_profiles"
}
