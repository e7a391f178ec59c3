package models

import "time"

type Event struct {
	ID uint `gorm:"primaryKey" json:"id"`

	HospitalID uint     `gorm:"index" json:"hospital_id"`
	Hospital   Hospital `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"hospital"`

	Title       string `gorm:"size:150;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Location    string `gorm:"size:255" json:"location"`

	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`

	// S3 object key; resolved to a URL on read.
	ImageKey string `gorm:"size:255" json:"-"`

	// Post surfaces the event on the public announcements feed.
	Post bool `gorm:"default:false" json:"post"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
