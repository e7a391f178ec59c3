package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/redsource-ph/redsource-api/internal/httpresp"
	"github.com/redsource-ph/redsource-api/internal/middleware"
	transaction "github.com/redsource-ph/redsource-api/internal/usecase/transaction"
)

// TransactionHandler is the staff side of the appointment lifecycle:
// review, resolution, rescheduling and the month calendar.
type TransactionHandler struct {
	list         *transaction.ListForHospital
	update       *transaction.UpdateByStaff
	updateStatus *transaction.UpdateStatus
	delete       *transaction.DeleteByStaff
	calendar     *transaction.GetCalendar
}

func NewTransactionHandler(
	list *transaction.ListForHospital,
	update *transaction.UpdateByStaff,
	updateStatus *transaction.UpdateStatus,
	del *transaction.DeleteByStaff,
	calendar *transaction.GetCalendar,
) *TransactionHandler {
	return &TransactionHandler{
		list:         list,
		update:       update,
		updateStatus: updateStatus,
		delete:       del,
		calendar:     calendar,
	}
}

type StaffUpdateRequest struct {
	Date    *string `json:"date"`
	Time    *string `json:"time"`
	Remarks *string `json:"remarks"`
	Status  *string `json:"status"`
}

type UpdateStatusRequest struct {
	Status  string `json:"status" binding:"required"`
	Remarks string `json:"remarks"`
}

func (h *TransactionHandler) List(c *gin.Context) {
	hospitalID := c.MustGet(middleware.ContextHospitalID).(uint)

	txs, err := h.list.Execute(c.Request.Context(), hospitalID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_transactions"})
		return
	}

	httpresp.List(c, txs)
}

func (h *TransactionHandler) Update(c *gin.Context) {
	hospitalID := c.MustGet(middleware.ContextHospitalID).(uint)
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_transaction_id"})
		return
	}

	var req StaffUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	tx, err := h.update.Execute(c.Request.Context(), hospitalID, actorID, uint(id), transaction.StaffUpdateInput{
		Date:    req.Date,
		Time:    req.Time,
		Remarks: req.Remarks,
		Status:  req.Status,
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

func (h *TransactionHandler) UpdateStatus(c *gin.Context) {
	hospitalID := c.MustGet(middleware.ContextHospitalID).(uint)
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_transaction_id"})
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	tx, err := h.updateStatus.Execute(
		c.Request.Context(),
		hospitalID,
		actorID,
		uint(id),
		req.Status,
		req.Remarks,
	)
	if err != nil {
		if writeBusiness(c, err) {
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": tx})
}

func (h *TransactionHandler) Delete(c *gin.Context) {
	hospitalID := c.MustGet(middleware.ContextHospitalID).(uint)
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_transaction_id"})
		return
	}

	if err := h.delete.Execute(c.Request.Context(), hospitalID, actorID, uint(id)); err != nil {
		if writeBusiness(c, err) {
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_delete_transaction"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "transaction deleted"})
}

// Calendar returns the month view consumed by the scheduling screen.
func (h *TransactionHandler) Calendar(c *gin.Context) {
	hospitalID := c.MustGet(middleware.ContextHospitalID).(uint)

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 2000 || year > 2100 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_year"})
		return
	}

	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_month"})
		return
	}

	cal, err := h.calendar.Execute(c.Request.Context(), hospitalID, year, month)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_build_calendar"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"year":  year,
		"month": month,
		"days":  cal,
	})
}
