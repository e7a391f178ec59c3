package handlers

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/redsource-ph/redsource-api/internal/audit"
	eventdomain "github.com/redsource-ph/redsource-api/internal/domain/event"
	"github.com/redsource-ph/redsource-api/internal/httpresp"
	"github.com/redsource-ph/redsource-api/internal/images"
	"github.com/redsource-ph/redsource-api/internal/infra/storage"
	"github.com/redsource-ph/redsource-api/internal/middleware"
	"github.com/redsource-ph/redsource-api/internal/models"
	"github.com/redsource-ph/redsource-api/internal/timezone"
)

const maxEventImageBytes = 8 << 20

type EventHandler struct {
	db    *gorm.DB
	store *storage.ImageStore
	audit *audit.Dispatcher
}

func NewEventHandler(db *gorm.DB, store *storage.ImageStore, dispatcher *audit.Dispatcher) *EventHandler {
	return &EventHandler{db: db, store: store, audit: dispatcher}
}

type EventDTO struct {
	ID          uint   `json:"id"`
	HospitalID  uint   `json:"hospital_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	ImgURL      string `json:"img_url"`
	Post        bool   `json:"post"`
	Phase       string `json:"phase"`
}

func (h *EventHandler) toDTO(e *models.Event) EventDTO {
	return EventDTO{
		ID:          e.ID,
		HospitalID:  e.HospitalID,
		Title:       e.Title,
		Description: e.Description,
		Location:    e.Location,
		StartDate:   e.StartDate.In(timezone.Manila()).Format("2006-01-02"),
		EndDate:     e.EndDate.In(timezone.Manila()).Format("2006-01-02"),
		ImgURL:      h.store.URL(e.ImageKey),
		Post:        e.Post,
		Phase:       string(eventdomain.Classify(e, timezone.Now())),
	}
}

// List returns the hospital's events, optionally filtered to one phase.
func (h *EventHandler) List(c *gin.Context) {
	hospitalID := c.MustGet(middleware.ContextHospitalID).(uint)

	var events []models.Event
	if err := h.db.
		Where("hospital_id = ?", hospitalID).
		Order("start_date DESC").
		Find(&events).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_events"})
		return
	}

	var phaseFilter *eventdomain.Phase
	if raw := c.Query("phase"); raw != "" {
		p, ok := eventdomain.ParsePhase(raw)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_phase"})
			return
		}
		phaseFilter = &p
	}

	now := timezone.Now()
	out := make([]EventDTO, 0, len(events))
	for i := range events {
		if phaseFilter != nil && eventdomain.Classify(&events[i], now) != *phaseFilter {
			continue
		}
		out = append(out, h.toDTO(&events[i]))
	}

	httpresp.List(c, out)
}

// Announcements is the public feed: posted events across all hospitals.
func (h *EventHandler) Announcements(c *gin.Context) {
	var events []models.Event
	if err := h.db.
		Where("post = ?", true).
		Order("start_date DESC").
		Find(&events).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_announcements"})
		return
	}

	out := make([]EventDTO, 0, len(events))
	for i := range events {
		out = append(out, h.toDTO(&events[i]))
	}

	httpresp.List(c, out)
}

// Create takes a multipart form so the poster image rides along with the
// event fields. The image is optional; without one the placeholder URL
// is served on read.
func (h *EventHandler) Create(c *gin.Context) {
	hospitalID := c.MustGet(middleware.ContextHospitalID).(uint)
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	title := c.PostForm("title")
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title_required"})
		return
	}

	startDate, err := parseDate(c.PostForm("start_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_start_date"})
		return
	}
	endDate, err := parseDate(c.PostForm("end_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_end_date"})
		return
	}
	if endDate.Before(startDate) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end_before_start"})
		return
	}

	post := c.PostForm("post") == "true"

	var imageKey string
	if file, err := c.FormFile("image"); err == nil {
		if file.Size > maxEventImageBytes {
			c.JSON(http.StatusBadRequest, gin.H{"error": "image_too_large"})
			return
		}

		f, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_image"})
			return
		}
		raw, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_image"})
			return
		}

		converted, err := images.ToWebP(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported_image_format"})
			return
		}

		imageKey = fmt.Sprintf("blood/events/%s.webp", uuid.NewString())
		if err := h.store.Upload(c.Request.Context(), imageKey, converted, "image/webp"); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_upload_image"})
			return
		}
	}

	event := models.Event{
		HospitalID:  hospitalID,
		Title:       title,
		Description: c.PostForm("description"),
		Location:    c.PostForm("location"),
		StartDate:   startDate,
		EndDate:     endDate,
		ImageKey:    imageKey,
		Post:        post,
	}

	if err := h.db.Create(&event).Error; err != nil {
		// The image already landed in the bucket; take it back out.
		if imageKey != "" {
			if derr := h.store.Delete(c.Request.Context(), imageKey); derr != nil {
				log.Error().Err(derr).Str("key", imageKey).Msg("orphaned event image")
			}
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_event"})
		return
	}

	h.audit.Dispatch(audit.Event{
		HospitalID: hospitalID,
		ActorID:    &actorID,
		Action:     "event_created",
		Entity:     "event",
		EntityID:   &event.ID,
	})

	httpresp.Created(c, gin.H{"event": h.toDTO(&event)})
}

type UpdateEventRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Location    *string `json:"location"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	Post        *bool   `json:"post"`
}

func (h *EventHandler) Update(c *gin.Context) {
	hospitalID := c.MustGet(middleware.ContextHospitalID).(uint)
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_event_id"})
		return
	}

	var req UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	var event models.Event
	if err := h.db.
		Where("id = ? AND hospital_id = ?", uint(id), hospitalID).
		First(&event).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "event_not_found"})
		return
	}

	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.Location != nil {
		event.Location = *req.Location
	}
	if req.StartDate != nil {
		d, err := parseDate(*req.StartDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_start_date"})
			return
		}
		event.StartDate = d
	}
	if req.EndDate != nil {
		d, err := parseDate(*req.EndDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_end_date"})
			return
		}
		event.EndDate = d
	}
	if event.EndDate.Before(event.StartDate) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end_before_start"})
		return
	}
	if req.Post != nil {
		event.Post = *req.Post
	}

	if err := h.db.Save(&event).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_event"})
		return
	}

	h.audit.Dispatch(audit.Event{
		HospitalID: hospitalID,
		ActorID:    &actorID,
		Action:     "event_updated",
		Entity:     "event",
		EntityID:   &event.ID,
	})

	c.JSON(http.StatusOK, gin.H{"event": h.toDTO(&event)})
}

func (h *EventHandler) Delete(c *gin.Context) {
	hospitalID := c.MustGet(middleware.ContextHospitalID).(uint)
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_event_id"})
		return
	}

	var event models.Event
	if err := h.db.
		Where("id = ? AND hospital_id = ?", uint(id), hospitalID).
		First(&event).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "event_not_found"})
		return
	}

	if err := h.db.Delete(&event).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_delete_event"})
		return
	}

	// Best effort: the record is gone either way.
	if err := h.store.Delete(c.Request.Context(), event.ImageKey); err != nil {
		log.Warn().Err(err).Str("key", event.ImageKey).Msg("event image delete failed")
	}

	h.audit.Dispatch(audit.Event{
		HospitalID: hospitalID,
		ActorID:    &actorID,
		Action:     "event_deleted",
		Entity:     "event",
		EntityID:   &event.ID,
	})

	c.JSON(http.StatusOK, gin.H{"message": "event deleted"})
}
