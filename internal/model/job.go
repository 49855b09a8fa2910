package model

import "time"

// Job represents a job posting owned by the user that created it.
type Job struct {
	ID          uint      `json:"job_id" gorm:"primaryKey"`
	Title       string    `json:"job_title" gorm:"size:255;not null"`
	Company     string    `json:"job_company" gorm:"size:255;not null"`
	CompanyURL  string    `json:"job_company_url,omitempty" gorm:"size:255"`
	Location    string    `json:"job_location" gorm:"size:255;not null;default:'Remote'"`
	Description string    `json:"job_description" gorm:"not null"`
	DatePosted  time.Time `json:"job_date_posted" gorm:"type:date"`
	IsActive    bool      `json:"job_is_active" gorm:"default:true;index"`
	OwnerID     uint      `json:"job_owner_id" gorm:"not null;index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
