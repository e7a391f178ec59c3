package models

import "time"

// DonorNumber is the staff-issued code gating promotion of a guest to a
// registered donor. The code itself is typed by staff, not generated;
// uniqueness is enforced per issuing hospital.
type DonorNumber struct {
	ID uint `gorm:"primaryKey" json:"id"`

	DonorID string `gorm:"size:50;not null;uniqueIndex:idx_donor_number_hospital" json:"donor_id"`

	HospitalID uint     `gorm:"uniqueIndex:idx_donor_number_hospital" json:"hospital_id"`
	Hospital   Hospital `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"hospital"`

	IsVerified bool `gorm:"default:false" json:"is_verified"`
	IsUsed     bool `gorm:"default:false" json:"is_used"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
