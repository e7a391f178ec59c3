package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/redsource-ph/redsource-api/internal/httpresp"
	"github.com/redsource-ph/redsource-api/internal/middleware"
	transaction "github.com/redsource-ph/redsource-api/internal/usecase/transaction"
)

// DonorTransactionHandler is the donor side: book, review, reschedule
// and cancel their own appointments.
type DonorTransactionHandler struct {
	create *transaction.CreateMember
	list   *transaction.ListForDonor
	update *transaction.UpdateByDonor
	delete *transaction.DeleteByDonor
}

func NewDonorTransactionHandler(
	create *transaction.CreateMember,
	list *transaction.ListForDonor,
	update *transaction.UpdateByDonor,
	del *transaction.DeleteByDonor,
) *DonorTransactionHandler {
	return &DonorTransactionHandler{
		create: create,
		list:   list,
		update: update,
		delete: del,
	}
}

type CreateAppointmentRequest struct {
	HospitalID uint   `json:"hospital_id" binding:"required"`
	Date       string `json:"date" binding:"required"`
	Time       string `json:"time" binding:"required"`
	Remarks    string `json:"remarks"`
}

type DonorUpdateRequest struct {
	Date    *string `json:"date"`
	Time    *string `json:"time"`
	Remarks *string `json:"remarks"`
}

func (h *DonorTransactionHandler) Create(c *gin.Context) {
	donorID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	tx, err := h.create.Execute(c.Request.Context(), transaction.CreateMemberInput{
		HospitalID: req.HospitalID,
		DonorID:    donorID,
		Date:       req.Date,
		Time:       req.Time,
		Remarks:    req.Remarks,
	})
	if err != nil {
		if writeBusiness(c, err) {
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_transaction"})
		return
	}

	httpresp.Created(c, gin.H{"transaction": tx})
}

func (h *DonorTransactionHandler) List(c *gin.Context) {
	donorID := c.MustGet(middleware.ContextUserID).(uint)

	txs, err := h.list.Execute(c.Request.Context(), donorID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_transactions"})
		return
	}

	httpresp.List(c, txs)
}

func (h *DonorTransactionHandler) Update(c *gin.Context) {
	donorID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_transaction_id"})
		return
	}

	var req DonorUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	tx, err := h.update.Execute(c.Request.Context(), donorID, uint(id), transaction.DonorUpdateInput{
		Date:    req.Date,
		Time:    req.Time,
		Remarks: req.Remarks,
	})
	if err != nil {
		if writeBusiness(c, err) {
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_transaction"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": tx})
}

func (h *DonorTransactionHandler) Delete(c *gin.Context) {
	donorID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_transaction_id"})
		return
	}

	if err := h.delete.Execute(c.Request.Context(), donorID, uint(id)); err != nil {
		if writeBusiness(c, err) {
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_delete_transaction"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "transaction deleted"})
}
