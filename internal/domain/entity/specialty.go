package entity

// Specialty represents a medical specialty offered by the clinic
type Specialty struct {
	ID          int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	Description string `gorm:"type:text" json:"description,omitempty"`

	// Relationships
	Professionals []ProfessionalProfile `gorm:"foreignKey:SpecialtyID" json:"professionals,omitempty"`
}

func (Specialty) TableName() string {
	return "specialties"
}
