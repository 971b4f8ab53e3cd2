package model

import "time"

// FormSubmission is one student enrollment record, stored verbatim as
// submitted. Rows are never updated or deleted; resubmitting identical
// data creates a second row.
type FormSubmission struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	FirstName   string    `json:"first_name" gorm:"size:50;not null"`
	LastName    string    `json:"last_name" gorm:"size:50;not null"`
	FatherName  string    `json:"father_name" gorm:"size:50;not null"`
	MotherName  string    `json:"mother_name" gorm:"size:50;not null"`
	DOB         string    `json:"dob" gorm:"size:20"`
	Gender      string    `json:"gender" gorm:"size:10"`
	Branch      string    `json:"branch" gorm:"size:50;not null"`
	Section     string    `json:"section" gorm:"size:10;not null"`
	RollNumber  string    `json:"roll_number" gorm:"size:20;not null"`
	YearOfStudy string    `json:"year_of_study" gorm:"size:10;not null"`
	Percentage  float64   `json:"percentage" gorm:"not null"`
	Phone       string    `json:"phone" gorm:"size:15;not null"`
	Email       string    `json:"email" gorm:"size:100;not null"`
	BloodGroup  string    `json:"blood_group" gorm:"size:10"`
	Address     string    `json:"address" gorm:"type:text;not null"`
	CreatedAt   time.Time `json:"created_at"`
}
