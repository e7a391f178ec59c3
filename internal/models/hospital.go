package models

import "time"

// Hospital doubles as the staff account: ADMIN and HOSPITAL tiers belong
// to the hospital they operate, SUPER_ADMIN manages the accounts themselves.
type Hospital struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Username     string `gorm:"size:100;uniqueIndex;not null" json:"username"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	License       string `gorm:"size:100" json:"license"`
	Address       string `gorm:"size:255" json:"address"`
	ContactNumber string `gorm:"size:20" json:"contact_number"`

	Role   string `gorm:"size:20;default:'HOSPITAL'" json:"role"`
	Status string `gorm:"size:20;default:'PENDING'" json:"status"`

	ProfileImageKey string `gorm:"size:255" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const (
	RoleSuperAdmin = "SUPER_ADMIN"
	RoleAdmin      = "ADMIN"
	RoleHospital   = "HOSPITAL"
	RoleDonor      = "DONOR"
)

const (
	HospitalStatusPending  = "PENDING"
	HospitalStatusApproved = "APPROVED"
	HospitalStatusReject   = "REJECT"
)
