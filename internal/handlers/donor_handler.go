package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/redsource-ph/redsource-api/internal/httpresp"
	"github.com/redsource-ph/redsource-api/internal/middleware"
	"github.com/redsource-ph/redsource-api/internal/models"
)

// DonorHandler lists donors scoped to the hospital whose donor number
// they registered with.
type DonorHandler struct {
	db *gorm.DB
}

func NewDonorHandler(db *gorm.DB) *DonorHandler {
	return &DonorHandler{db: db}
}

type DonorDTO struct {
	ID          uint   `json:"id"`
	Username    string `json:"username"`
	BloodType   string `json:"blood_type"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email"`
	Address     string `json:"address"`
	Sex         string `json:"sex"`
	Age         int    `json:"age"`
	Status      string `json:"status"`
	IsCertified bool   `json:"is_certified"`
	DonorCode   string `json:"donor_code"`
}

func toDonorDTO(d *models.Donor) DonorDTO {
	dto := DonorDTO{
		ID:          d.ID,
		Username:    d.Username,
		BloodType:   d.BloodType,
		PhoneNumber: d.PhoneNumber,
		Email:       d.Email,
		Address:     d.Address,
		Sex:         d.Sex,
		Age:         d.Age,
		Status:      d.Status,
		IsCertified: d.IsCertified(),
	}
	if d.DonorNumber != nil {
		dto.DonorCode = d.DonorNumber.DonorID
	}
	return dto
}

func (h *DonorHandler) hospitalScope(c *gin.Context) *gorm.DB {
	hospitalID := c.MustGet(middleware.ContextHospitalID).(uint)

	return h.db.Model(&models.Donor{}).
		Preload("DonorNumber").
		Joins("JOIN donor_numbers ON donor_numbers.id = donors.donor_number_id").
		Where("donor_numbers.hospital_id = ?", hospitalID)
}

// List supports a name/blood-type search box.
func (h *DonorHandler) List(c *gin.Context) {
	query := h.hospitalScope(c)

	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		query = query.Where("donors.username ILIKE ? OR donors.blood_type = ?", like, search)
	}

	var donors []models.Donor
	if err := query.Order("donors.username ASC").Find(&donors).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_donors"})
		return
	}

	out := make([]DonorDTO, 0, len(donors))
	for i := range donors {
		out = append(out, toDonorDTO(&donors[i]))
	}

	httpresp.List(c, out)
}

// ListByCategory splits the hospital's donors into certified veterans
// and new registrants for the dashboard widgets.
func (h *DonorHandler) ListByCategory(c *gin.Context) {
	var donors []models.Donor
	if err := h.hospitalScope(c).Order("donors.username ASC").Find(&donors).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_donors"})
		return
	}

	certified := make([]DonorDTO, 0)
	fresh := make([]DonorDTO, 0)

	for i := range donors {
		dto := toDonorDTO(&donors[i])
		if dto.IsCertified {
			certified = append(certified, dto)
		} else {
			fresh = append(fresh, dto)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"certified": certified,
		"new":       fresh,
	})
}
