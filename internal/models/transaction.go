package models

import "time"

// Transaction is a scheduled blood-donation screening linking a donor
// (member or guest) to a hospital and a point in time.
type Transaction struct {
	ID uint `gorm:"primaryKey" json:"id"`

	HospitalID uint     `gorm:"index" json:"hospital_id"`
	Hospital   Hospital `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"hospital"`

	Datetime time.Time `gorm:"index" json:"datetime"`

	Status  string `gorm:"size:20;default:'PENDING'" json:"status"`
	Remarks string `gorm:"size:255" json:"remarks"`

	// Exactly one of DonorID/GuestDonorID is set, matching Type.
	Type string `gorm:"size:30;not null" json:"type"`

	DonorID *uint  `json:"donor_id"`
	Donor   *Donor `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"donor,omitempty"`

	GuestDonorID *uint       `json:"guest_donor_id"`
	GuestDonor   *GuestDonor `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"guest_donor,omitempty"`

	ResolvedAt *time.Time `json:"resolved_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
