package models

import "time"

type BloodSupply struct {
	ID uint `gorm:"primaryKey" json:"id"`

	HospitalID uint     `gorm:"index" json:"hospital_id"`
	Hospital   Hospital `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"hospital"`

	BloodType string    `gorm:"size:3;not null" json:"blood_type"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	Date      time.Time `json:"date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
