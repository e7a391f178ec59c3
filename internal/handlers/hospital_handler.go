package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/redsource-ph/redsource-api/internal/audit"
	"github.com/redsource-ph/redsource-api/internal/httpresp"
	"github.com/redsource-ph/redsource-api/internal/middleware"
	"github.com/redsource-ph/redsource-api/internal/models"
)

type HospitalHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewHospitalHandler(db *gorm.DB, dispatcher *audit.Dispatcher) *HospitalHandler {
	return &HospitalHandler{db: db, audit: dispatcher}
}

type CreateHospitalRequest struct {
	Username      string `json:"username" binding:"required"`
	Password      string `json:"password" binding:"required,min=6"`
	License       string `json:"license" binding:"required"`
	Address       string `json:"address" binding:"required"`
	ContactNumber string `json:"contact_number"`
	Role          string `json:"role"`
}

type UpdateHospitalRequest struct {
	License       *string `json:"license"`
	Address       *string `json:"address"`
	ContactNumber *string `json:"contact_number"`
	Status        *string `json:"status"`
	Role          *string `json:"role"`
}

type PublicHospitalDTO struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// ListPublic feeds the guest wizard's hospital picker. Only approved
// hospitals are bookable.
func (h *HospitalHandler) ListPublic(c *gin.Context) {
	var hospitals []models.Hospital
	if err := h.db.
		Where("status = ? AND role <> ?", models.HospitalStatusApproved, models.RoleSuperAdmin).
		Order("username ASC").
		Find(&hospitals).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_hospitals"})
		return
	}

	out := make([]PublicHospitalDTO, 0, len(hospitals))
	for _, hosp := range hospitals {
		out = append(out, PublicHospitalDTO{
			ID:      hosp.ID,
			Name:    hosp.Username,
			Address: hosp.Address,
		})
	}

	httpresp.List(c, out)
}

// List returns every staff account for the SUPER_ADMIN console,
// optionally filtered by status.
func (h *HospitalHandler) List(c *gin.Context) {
	query := h.db.Model(&models.Hospital{}).Where("role <> ?", models.RoleSuperAdmin)

	if status := c.Query("status"); status != "" {
		switch status {
		case models.HospitalStatusPending, models.HospitalStatusApproved, models.HospitalStatusReject:
			query = query.Where("status = ?", status)
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_status"})
			return
		}
	}

	var hospitals []models.Hospital
	if err := query.Order("created_at DESC").Find(&hospitals).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_hospitals"})
		return
	}

	httpresp.List(c, hospitals)
}

func (h *HospitalHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_hospital_id"})
		return
	}

	var hospital models.Hospital
	if err := h.db.First(&hospital, uint(id)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "hospital_not_found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"hospital": hospital})
}

// Create provisions a staff account already approved, bypassing the
// self-registration review queue.
func (h *HospitalHandler) Create(c *gin.Context) {
	var req CreateHospitalRequest
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
		Status:        models.HospitalStatusApproved,
	}

	if err := h.db.Create(&hospital).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_hospital"})
		return
	}

	actorID := c.MustGet(middleware.ContextUserID).(uint)
	h.audit.Dispatch(audit.Event{
		HospitalID: hospital.ID,
		ActorID:    &actorID,
		Action:     "hospital_created",
		Entity:     "hospital",
		EntityID:   &hospital.ID,
	})

	httpresp.Created(c, gin.H{"hospital": hospital})
}

// Update also serves approval: the SUPER_ADMIN flips status from
// PENDING to APPROVED or REJECT here. No delete route exists; rejected
// accounts are kept for the paper trail.
func (h *HospitalHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_hospital_id"})
		return
	}

	var req UpdateHospitalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	var hospital models.Hospital
	if err := h.db.First(&hospital, uint(id)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "hospital_not_found"})
		return
	}

	if req.Status != nil {
		switch *req.Status {
		case models.HospitalStatusPending, models.HospitalStatusApproved, models.HospitalStatusReject:
			hospital.Status = *req.Status
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_status"})
			return
		}
	}
	if req.Role != nil {
		if *req.Role != models.RoleAdmin && *req.Role != models.RoleHospital {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_role"})
			return
		}
		hospital.Role = *req.Role
	}
	if req.License != nil {
		hospital.License = *req.License
	}
	if req.Address != nil {
		hospital.Address = *req.Address
	}
	if req.ContactNumber != nil {
		hospital.ContactNumber = *req.ContactNumber
	}

	if err := h.db.Save(&hospital).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_hospital"})
		return
	}

	actorID := c.MustGet(middleware.ContextUserID).(uint)
	h.audit.Dispatch(audit.Event{
		HospitalID: hospital.ID,
		ActorID:    &actorID,
		Action:     "hospital_updated",
		Entity:     "hospital",
		EntityID:   &hospital.ID,
		Metadata:   map[string]any{"status": hospital.Status},
	})

	c.JSON(http.StatusOK, gin.H{"hospital": hospital})
}
