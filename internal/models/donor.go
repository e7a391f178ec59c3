package models

import "time"

type Donor struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Username     string `gorm:"size:100;uniqueIndex;not null" json:"username"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	Address            string `gorm:"size:255" json:"address"`
	BloodType          string `gorm:"size:3" json:"blood_type"`
	PhoneNumber        string `gorm:"size:20" json:"phone_number"`
	Email              string `gorm:"size:100" json:"email"`
	Sex                string `gorm:"size:1" json:"sex"`
	Age                int    `json:"age"`
	DoMedicalCondition bool   `gorm:"default:false" json:"do_medical_condition"`

	Status string `gorm:"size:10;default:'ACTIVE'" json:"status"`

	// The human-facing donor number consumed at registration. Stays set
	// for the lifetime of the account.
	DonorNumberID *uint        `json:"donor_number_id"`
	DonorNumber   *DonorNumber `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"donor_number,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const (
	DonorStatusActive   = "ACTIVE"
	DonorStatusInactive = "INACTIVE"
)

// IsCertified reports whether the donor's number has been verified by
// staff and consumed by an actual registration.
func (d *Donor) IsCertified() bool {
	return d.DonorNumber != nil && d.DonorNumber.IsVerified && d.DonorNumber.IsUsed
}
