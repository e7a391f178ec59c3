package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/redsource-ph/redsource-api/internal/audit"
	"github.com/redsource-ph/redsource-api/internal/httpresp"
	"github.com/redsource-ph/redsource-api/internal/middleware"
	"github.com/redsource-ph/redsource-api/internal/models"
	"github.com/redsource-ph/redsource-api/internal/timezone"
	"github.com/redsource-ph/redsource-api/internal/validators"
)

// BloodSupplyHandler records per-hospital stock snapshots by blood type.
type BloodSupplyHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewBloodSupplyHandler(db *gorm.DB, dispatcher *audit.Dispatcher) *BloodSupplyHandler {
	return &BloodSupplyHandler{db: db, audit: dispatcher}
}

type CreateBloodSupplyRequest struct {
	BloodType string `json:"blood_type" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=0"`
	Date      string `json:"date"`
}

func (h *BloodSupplyHandler) Create(c *gin.Context) {
	hospitalID := c.MustGet(middleware.ContextHospitalID).(uint)
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateBloodSupplyRequest
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

	date := timezone.Now()
	if req.Date != "" {
		parsed, err := parseDate(req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_date"})
			return
		}
		date = parsed
	}

	supply := models.BloodSupply{
		HospitalID: hospitalID,
		BloodType:  req.BloodType,
		Quantity:   req.Quantity,
		Date:       date,
	}

	if err := h.db.Create(&supply).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_blood_supply"})
		return
	}

	h.audit.Dispatch(audit.Event{
		HospitalID: hospitalID,
		ActorID:    &actorID,
		Action:     "blood_supply_recorded",
		Entity:     "blood_supply",
		EntityID:   &supply.ID,
		Metadata:   map[string]any{"blood_type": supply.BloodType, "quantity": supply.Quantity},
	})

	httpresp.Created(c, gin.H{"blood_supply": supply})
}

func (h *BloodSupplyHandler) List(c *gin.Context) {
	hospitalID := c.MustGet(middleware.ContextHospitalID).(uint)

	query := h.db.Where("hospital_id = ?", hospitalID)

	if bt := c.Query("blood_type"); bt != "" {
		if !validators.IsBloodType(bt) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_blood_type"})
			return
		}
		query = query.Where("blood_type = ?", bt)
	}

	var supplies []models.BloodSupply
	if err := query.Order("date DESC").Find(&supplies).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_blood_supplies"})
		return
	}

	httpresp.List(c, supplies)
}

func (h *BloodSupplyHandler) Delete(c *gin.Context) {
	hospitalID := c.MustGet(middleware.ContextHospitalID).(uint)
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_blood_supply_id"})
		return
	}

	var supply models.BloodSupply
	if err := h.db.
		Where("id = ? AND hospital_id = ?", uint(id), hospitalID).
		First(&supply).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "blood_supply_not_found"})
		return
	}

	if err := h.db.Delete(&supply).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_delete_blood_supply"})
		return
	}

	h.audit.Dispatch(audit.Event{
		HospitalID: hospitalID,
		ActorID:    &actorID,
		Action:     "blood_supply_deleted",
		Entity:     "blood_supply",
		EntityID:   &supply.ID,
	})

	c.JSON(http.StatusOK, gin.H{"message": "blood supply deleted"})
}
