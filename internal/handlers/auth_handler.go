package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/redsource-ph/redsource-api/internal/config"
	"github.com/redsource-ph/redsource-api/internal/infra/repository"
	"github.com/redsource-ph/redsource-api/internal/models"
	donornumberuc "github.com/redsource-ph/redsource-api/internal/usecase/donornumber"
	"github.com/redsource-ph/redsource-api/internal/validators"
)

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{db: db, config: cfg}
}

// --------- Requests ---------

type RegisterAdminRequest struct {
	Username      string `json:"username" binding:"required"`
	Password      string `json:"password" binding:"required,min=6"`
	License       string `json:"license" binding:"required"`
	Address       string `json:"address" binding:"required"`
	ContactNumber string `json:"contact_number"`
	Role          string `json:"role"`
}

type LoginAdminRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RegisterDonorRequest struct {
	Username           string `json:"username" binding:"required"`
	Password           string `json:"password" binding:"required,min=6"`
	DonorID            string `json:"donor_id" binding:"required"`
	HospitalID         uint   `json:"hospital_id" binding:"required"`
	Address            string `json:"address"`
	BloodType          string `json:"blood_type" binding:"required"`
	PhoneNumber        string `json:"phone_number"`
	Email              string `json:"email" binding:"omitempty,email"`
	Sex                string `json:"sex"`
	Age                int    `json:"age"`
	DoMedicalCondition bool   `json:"do_medical_condition"`
}

type LoginDonorRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

// RegisterAdmin files a hospital application. The account stays PENDING
// until a SUPER_ADMIN approves it; login is refused until then.
func (h *AuthHandler) RegisterAdmin(c *gin.Context) {
	var req RegisterAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	role := req.Role
	if role == "" {
		role = models.RoleHospital
	}
	if role != models.RoleAdmin && role != models.RoleHospital {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_role"})
		return
	}

	username := strings.ToLower(strings.TrimSpace(req.Username))

	var count int64
	if err := h.db.Model(&models.Hospital{}).
		Where("username = ?", username).
		Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username_already_exists"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_hash_password"})
		return
	}

	hospital := models.Hospital{
		Username:      username,
		PasswordHash:  string(hashed),
		License:       req.License,
		Address:       req.Address,
		ContactNumber: req.ContactNumber,
		Role:          role,
		Status:        models.HospitalStatusPending,
	}

	if err := h.db.Create(&hospital).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_hospital"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"hospital": gin.H{
			"id":       hospital.ID,
			"username": hospital.Username,
			"license":  hospital.License,
			"address":  hospital.Address,
			"status":   hospital.Status,
		},
	})
}

func (h *AuthHandler) LoginAdmin(c *gin.Context) {
	var req LoginAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	username := strings.ToLower(strings.TrimSpace(req.Username))

	var hospital models.Hospital
	if err := h.db.Where("username = ?", username).First(&hospital).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hospital.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
		return
	}

	if hospital.Role != models.RoleSuperAdmin && hospital.Status != models.HospitalStatusApproved {
		c.JSON(http.StatusForbidden, gin.H{"error": "hospital_not_approved"})
		return
	}

	token, err := h.generateToken(hospital.ID, hospital.ID, hospital.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"hospital": gin.H{
			"id":       hospital.ID,
			"username": hospital.Username,
			"license":  hospital.License,
			"address":  hospital.Address,
			"role":     hospital.Role,
		},
		"token": token,
	})
}

// RegisterDonor promotes a guest into a registered donor by consuming a
// verified donor number inside one database transaction.
func (h *AuthHandler) RegisterDonor(c *gin.Context) {
	var req RegisterDonorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if !validators.IsBloodType(req.BloodType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_blood_type"})
		return
	}
	if req.PhoneNumber != "" && !validators.IsPHMobile(req.PhoneNumber) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_phone_number"})
		return
	}

	username := strings.ToLower(strings.TrimSpace(req.Username))

	var count int64
	if err := h.db.Model(&models.Donor{}).
		Where("username = ?", username).
		Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username_already_exists"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_hash_password"})
		return
	}

	var donor models.Donor

	err = h.db.Transaction(func(tx *gorm.DB) error {
		// Consumption is scoped to the issuing hospital: the same code
		// may be issued independently elsewhere.
		consume := donornumberuc.NewConsume(repository.NewDonorNumberGormRepository(tx))
		number, err := consume.Execute(
			c.Request.Context(),
			req.HospitalID,
			strings.TrimSpace(req.DonorID),
		)
		if err != nil {
			return err
		}

		donor = models.Donor{
			Username:           username,
			PasswordHash:       string(hashed),
			Address:            req.Address,
			BloodType:          req.BloodType,
			PhoneNumber:        req.PhoneNumber,
			Email:              req.Email,
			Sex:                req.Sex,
			Age:                req.Age,
			DoMedicalCondition: req.DoMedicalCondition,
			Status:             models.DonorStatusActive,
			DonorNumberID:      &number.ID,
		}

		return tx.Create(&donor).Error
	})

	if err != nil {
		if writeBusiness(c, err) {
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_donor"})
		return
	}

	token, err := h.generateToken(donor.ID, 0, models.RoleDonor)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"donor": gin.H{
			"id":         donor.ID,
			"username":   donor.Username,
			"blood_type": donor.BloodType,
			"status":     donor.Status,
		},
		"token": token,
	})
}

func (h *AuthHandler) LoginDonor(c *gin.Context) {
	var req LoginDonorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	username := strings.ToLower(strings.TrimSpace(req.Username))

	var donor models.Donor
	if err := h.db.Preload("DonorNumber").
		Where("username = ?", username).
		First(&donor).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(donor.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
		return
	}

	if donor.Status != models.DonorStatusActive {
		c.JSON(http.StatusForbidden, gin.H{"error": "donor_inactive"})
		return
	}

	token, err := h.generateToken(donor.ID, 0, models.RoleDonor)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"donor": gin.H{
			"id":           donor.ID,
			"username":     donor.Username,
			"blood_type":   donor.BloodType,
			"is_certified": donor.IsCertified(),
		},
		"token": token,
	})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(sub uint, hospitalID uint, role string) (string, error) {
	claims := jwt.MapClaims{
		"sub":        sub,
		"hospitalId": hospitalID,
		"role":       role,
		"exp":        time.Now().Add(24 * time.Hour).Unix(),
		"iat":        time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
