package dto

import "time"

type TransactionListDTO struct {
	ID           uint      `json:"id"`
	Datetime     time.Time `json:"datetime"`
	Status       string    `json:"status"`
	Type         string    `json:"type"`
	Remarks      string    `json:"remarks"`
	DonorName    string    `json:"donor_name"`
	HospitalName string    `json:"hospital_name"`
}
