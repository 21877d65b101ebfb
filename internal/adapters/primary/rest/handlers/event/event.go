package event

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/clubhub/clubhub-api/internal/adapters/primary/rest/middlewares"
	"github.com/clubhub/clubhub-api/internal/adapters/primary/rest/response"
	"github.com/clubhub/clubhub-api/internal/domain/dto"
	"github.com/clubhub/clubhub-api/internal/ports/primary"
	"github.com/clubhub/clubhub-api/pkg/logger"
)

type Handler struct {
	eventService  primary.EventService
	exportService primary.ExportService

	logger *logger.Logger
}

func New(eventSvc primary.EventService, exportSvc primary.ExportService, lg *logger.Logger) *Handler {
	return &Handler{
		eventService:  eventSvc,
		exportService: exportSvc,
		logger:        lg,
	}
}

type createRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	ClubID      *string   `json:"clubId"`
	CategoryID  int64     `json:"categoryId" binding:"required"`
	CityID      int64     `json:"cityId" binding:"required"`
	StartTime   time.Time `json:"startTime" binding:"required"`
	EndTime     time.Time `json:"endTime" binding:"required"`
	MaxPeople   int       `json:"maxPeople" binding:"required"`
}

type eventView struct {
	ID          string    `json:"id"`
	HostID      int64     `json:"hostId"`
	ClubID      *string   `json:"clubId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CategoryID  int64     `json:"categoryId"`
	CityID      int64     `json:"cityId"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
	MaxPeople   int       `json:"maxPeople"`
	Phase       string    `json:"phase"`
}

func viewOf(event *dto.Event) eventView {
	return eventView{
		ID:          event.ID,
		HostID:      event.HostID,
		ClubID:      event.ClubID,
		Title:       event.Title,
		Description: event.Description,
		CategoryID:  event.CategoryID,
		CityID:      event.CityID,
		StartTime:   event.StartTime,
		EndTime:     event.EndTime,
		MaxPeople:   event.MaxPeople,
		Phase:       string(event.Phase),
	}
}

func (h *Handler) Create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	userID := middlewares.UserID(c)
	event, err := h.eventService.Create(c.Request.Context(), dto.CreateEvent{
		Title:       req.Title,
		Description: req.Description,
		ClubID:      req.ClubID,
		CategoryID:  req.CategoryID,
		CityID:      req.CityID,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		MaxPeople:   req.MaxPeople,
	}, userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, viewOf(event))
}

// eventID validates the :id path parameter before it reaches storage.
func eventID(c *gin.Context) (string, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "id must be a UUID")
		return "", false
	}
	return id.String(), true
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	event, err := h.eventService.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, viewOf(event))
}

func (h *Handler) GetAll(c *gin.Context) {
	var filter dto.EventFilter
	if host := c.Query("hostId"); host != "" {
		id, err := strconv.ParseInt(host, 10, 64)
		if err != nil {
			response.BadRequest(c, "hostId must be an integer")
			return
		}
		filter.HostID = &id
	}
	if category := c.Query("categoryId"); category != "" {
		id, err := strconv.ParseInt(category, 10, 64)
		if err != nil {
			response.BadRequest(c, "categoryId must be an integer")
			return
		}
		filter.CategoryID = &id
	}
	if city := c.Query("cityId"); city != "" {
		id, err := strconv.ParseInt(city, 10, 64)
		if err != nil {
			response.BadRequest(c, "cityId must be an integer")
			return
		}
		filter.CityID = &id
	}
	if club := c.Query("clubId"); club != "" {
		filter.ClubID = &club
	}

	events, err := h.eventService.GetAll(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	views := make([]eventView, len(events))
	for i := range events {
		views[i] = viewOf(&events[i])
	}
	c.JSON(http.StatusOK, views)
}

func (h *Handler) Join(c *gin.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	if err := h.eventService.Join(c.Request.Context(), id, middlewares.UserID(c)); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) Leave(c *gin.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	if err := h.eventService.Leave(c.Request.Context(), id, middlewares.UserID(c)); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) ExportParticipants(c *gin.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	data, err := h.exportService.ParticipantsXLSX(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=event-%s-participants.xlsx", id))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

func (h *Handler) ExportICS(c *gin.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	data, err := h.exportService.ICS(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=event-%s.ics", id))
	c.Data(http.StatusOK, "text/calendar", data)
}

func (h *Handler) InviteQR(c *gin.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	data, err := h.exportService.InviteQR(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Data(http.StatusOK, "image/png", data)
}
