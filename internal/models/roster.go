package models

// StaffPositionModel is one row of the staff strength board: a position
// label with a head count. Consumed read-only by staff blocks.
type StaffPositionModel struct {
	Base
	Position string `json:"position" gorm:"uniqueIndex;not null"`
	Count    int    `json:"count"    gorm:"default:0"`
	Order    int    `json:"order"    gorm:"index;default:0"`
}

func (StaffPositionModel) TableName() string { return "staff_positions" }

// FacultyEntryModel is one member of the faculty roster.
type FacultyEntryModel struct {
	Base
	Name        string `json:"name"        gorm:"not null"`
	Designation string `json:"designation"`
	Department  string `json:"department"  gorm:"index"`
	PhotoURL    string `json:"photoUrl"`
	Order       int    `json:"order"       gorm:"index;default:0"`
}

func (FacultyEntryModel) TableName() string { return "faculty_entries" }
