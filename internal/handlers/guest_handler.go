package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/redsource-ph/redsource-api/internal/httpresp"
	transaction "github.com/redsource-ph/redsource-api/internal/usecase/transaction"
)

// GuestHandler takes the public intake wizard's final submit: one
// request carrying the guest's details and the appointment slot.
type GuestHandler struct {
	create   *transaction.CreateGuest
	validate *validator.Validate
}

func NewGuestHandler(create *transaction.CreateGuest, validate *validator.Validate) *GuestHandler {
	return &GuestHandler{
		create:   create,
		validate: validate,
	}
}

// Field rules mirror the wizard's own step validation, so a well-behaved
// client never sees these errors.
type GuestIntakeRequest struct {
	HospitalID uint   `json:"hospital_id" validate:"required"`
	Date       string `json:"date" validate:"required"`
	Time       string `json:"time" validate:"required"`

	Name               string `json:"name" validate:"required,min=2"`
	Address            string `json:"address" validate:"required"`
	BloodType          string `json:"blood_type" validate:"required,blood_type"`
	PhoneNumber        string `json:"phone_number" validate:"required,ph_mobile"`
	Email              string `json:"email" validate:"required,email"`
	Sex                string `json:"sex" validate:"required,oneof=M F"`
	Age                string `json:"age" validate:"required,numeric"`
	DoMedicalCondition bool   `json:"do_medical_condition"`
}

func (h *GuestHandler) Create(c *gin.Context) {
	var req GuestIntakeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "validation_failed",
			"details": err.Error(),
		})
		return
	}

	datetime, ok := parseGuestDateTime(req.Date, req.Time)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_date_or_time"})
		return
	}

	age, err := strconv.Atoi(req.Age)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_age"})
		return
	}

	tx, err := h.create.Execute(c.Request.Context(), transaction.CreateGuestInput{
		HospitalID:         req.HospitalID,
		Datetime:           datetime,
		Name:               req.Name,
		Address:            req.Address,
		BloodType:          req.BloodType,
		Phone:              req.PhoneNumber,
		Email:              req.Email,
		Sex:                req.Sex,
		Age:                age,
		DoMedicalCondition: req.DoMedicalCondition,
	})
	if err != nil {
		if writeBusiness(c, err) {
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_appointment"})
		return
	}

	httpresp.Created(c, gin.H{"transaction": tx})
}
