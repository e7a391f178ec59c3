package models

import "time"

// GuestDonor is captured by the public intake wizard. No account, no
// password; promotion to a registered Donor goes through a donor number.
type GuestDonor struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Username           string `gorm:"size:100;not null" json:"username"`
	Address            string `gorm:"size:255" json:"address"`
	BloodType          string `gorm:"size:3" json:"blood_type"`
	PhoneNumber        string `gorm:"size:20" json:"phone_number"`
	Email              string `gorm:"size:100" json:"email"`
	Sex                string `gorm:"size:1" json:"sex"`
	Age                int    `json:"age"`
	DoMedicalCondition bool   `gorm:"default:false" json:"do_medical_condition"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
