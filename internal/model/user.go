package model

import "time"

// User represents a registered user of the job board.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;size:255;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"` // login identifier
	PhoneNumber  *string   `json:"phone_number,omitempty" gorm:"uniqueIndex;size:50"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	IsActive     bool      `json:"is_active" gorm:"default:true"`
	IsSuperuser  bool      `json:"is_superuser" gorm:"default:false"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	Jobs []Job `json:"jobs,omitempty" gorm:"foreignKey:OwnerID"`
}
