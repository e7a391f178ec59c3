package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	donornumberdomain "github.com/redsource-ph/redsource-api/internal/domain/donornumber"
	"github.com/redsource-ph/redsource-api/internal/httpresp"
	"github.com/redsource-ph/redsource-api/internal/middleware"
	donornumber "github.com/redsource-ph/redsource-api/internal/usecase/donornumber"
)

type DonorNumberHandler struct {
	repo     donornumberdomain.Repository
	generate *donornumber.Generate
	verify   *donornumber.Verify
	delete   *donornumber.Delete
}

func NewDonorNumberHandler(
	repo donornumberdomain.Repository,
	generate *donornumber.Generate,
	verify *donornumber.Verify,
	del *donornumber.Delete,
) *DonorNumberHandler {
	return &DonorNumberHandler{
		repo:     repo,
		generate: generate,
		verify:   verify,
		delete:   del,
	}
}

type DonorNumberRequest struct {
	DonorID string `json:"donor_id" binding:"required"`
}

func (h *DonorNumberHandler) Generate(c *gin.Context) {
	hospitalID := c.MustGet(middleware.ContextHospitalID).(uint)
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	var req DonorNumberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	n, err := h.generate.Execute(c.Request.Context(), hospitalID, actorID, req.DonorID)
	if err != nil {
		if writeBusiness(c, err) {
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_donor_number"})
		return
	}

	httpresp.Created(c, gin.H{"donor_number": n})
}

func (h *DonorNumberHandler) List(c *gin.Context) {
	hospitalID := c.MustGet(middleware.ContextHospitalID).(uint)

	numbers, err := h.repo.ListForHospital(c.Request.Context(), hospitalID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_donor_numbers"})
		return
	}

	httpresp.List(c, numbers)
}

func (h *DonorNumberHandler) Verify(c *gin.Context) {
	hospitalID := c.MustGet(middleware.ContextHospitalID).(uint)
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	code := c.Param("donorId")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_donor_id"})
		return
	}

	n, err := h.verify.Execute(c.Request.Context(), hospitalID, actorID, code)
	if err != nil {
		if writeBusiness(c, err) {
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_verify_donor_number"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"donor_number": n})
}

func (h *DonorNumberHandler) Delete(c *gin.Context) {
	hospitalID := c.MustGet(middleware.ContextHospitalID).(uint)
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	code := c.Param("donorId")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_donor_id"})
		return
	}

	if err := h.delete.Execute(c.Request.Context(), hospitalID, actorID, code); err != nil {
		if writeBusiness(c, err) {
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_delete_donor_number"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "donor number deleted"})
}
