package club

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/clubhub/clubhub-api/internal/adapters/primary/rest/middlewares"
	"github.com/clubhub/clubhub-api/internal/adapters/primary/rest/response"
	"github.com/clubhub/clubhub-api/internal/domain/dto"
	"github.com/clubhub/clubhub-api/internal/domain/entity"
	"github.com/clubhub/clubhub-api/internal/ports/primary"
	"github.com/clubhub/clubhub-api/pkg/logger"
)

type Handler struct {
	clubService primary.ClubService

	logger *logger.Logger
}

func New(clubSvc primary.ClubService, lg *logger.Logger) *Handler {
	return &Handler{
		clubService: clubSvc,
		logger:      lg,
	}
}

type clubPayload struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	MaxPeople   int      `json:"maxPeople" binding:"required"`
	Tags        []string `json:"tags"`
}

type clubView struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	LeaderID    int64    `json:"leaderId"`
	MaxPeople   int      `json:"maxPeople"`
	Tags        []string `json:"tags"`
}

func viewOf(club *entity.Club) clubView {
	return clubView{
		ID:          club.ID,
		Name:        club.Name,
		Description: club.Description,
		LeaderID:    club.LeaderID,
		MaxPeople:   club.MaxPeople,
		Tags:        club.Tags,
	}
}

func (h *Handler) Create(c *gin.Context) {
	var req clubPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	userID := middlewares.UserID(c)
	club, err := h.clubService.Create(c.Request.Context(), dto.CreateClub{
		Name:        req.Name,
		Description: req.Description,
		MaxPeople:   req.MaxPeople,
		Tags:        req.Tags,
	}, userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	h.logger.Infof("(user: %d) created club %s", userID, club.ID)

	c.JSON(http.StatusCreated, viewOf(club))
}

// clubID validates the :id path parameter before it reaches storage.
func clubID(c *gin.Context) (string, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "id must be a UUID")
		return "", false
	}
	return id.String(), true
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := clubID(c)
	if !ok {
		return
	}

	club, err := h.clubService.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, viewOf(club))
}

type memberView struct {
	UserID int64  `json:"userId"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

type detailView struct {
	clubView
	Members []memberView `json:"members"`
}

func (h *Handler) GetDetail(c *gin.Context) {
	id, ok := clubID(c)
	if !ok {
		return
	}

	detail, err := h.clubService.GetDetail(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	view := detailView{
		clubView: clubView{
			ID:          detail.ID,
			Name:        detail.Name,
			Description: detail.Description,
			LeaderID:    detail.LeaderID,
			MaxPeople:   detail.MaxPeople,
			Tags:        detail.Tags,
		},
		Members: make([]memberView, len(detail.Members)),
	}
	for i, member := range detail.Members {
		view.Members[i] = memberView{
			UserID: member.UserID,
			Name:   member.Name,
			Status: string(member.Status),
		}
	}
	c.JSON(http.StatusOK, view)
}

func (h *Handler) GetAll(c *gin.Context) {
	var filter dto.ClubFilter
	if name := c.Query("name"); name != "" {
		filter.Name = &name
	}
	if leader := c.Query("leaderId"); leader != "" {
		id, err := strconv.ParseInt(leader, 10, 64)
		if err != nil {
			response.BadRequest(c, "leaderId must be an integer")
			return
		}
		filter.LeaderID = &id
	}

	clubs, err := h.clubService.GetAll(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	views := make([]clubView, len(clubs))
	for i := range clubs {
		views[i] = viewOf(&clubs[i])
	}
	c.JSON(http.StatusOK, views)
}

type clubPatch struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	MaxPeople   *int      `json:"maxPeople"`
	Tags        *[]string `json:"tags"`
}

func (h *Handler) Patch(c *gin.Context) {
	id, ok := clubID(c)
	if !ok {
		return
	}

	var req clubPatch
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	club, err := h.clubService.Update(c.Request.Context(), id, dto.UpdateClub{
		Name:        req.Name,
		Description: req.Description,
		MaxPeople:   req.MaxPeople,
		Tags:        req.Tags,
	}, middlewares.UserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, viewOf(club))
}

func (h *Handler) Put(c *gin.Context) {
	id, ok := clubID(c)
	if !ok {
		return
	}

	var req clubPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	club, err := h.clubService.Replace(c.Request.Context(), id, dto.CreateClub{
		Name:        req.Name,
		Description: req.Description,
		MaxPeople:   req.MaxPeople,
		Tags:        req.Tags,
	}, middlewares.UserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, viewOf(club))
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := clubID(c)
	if !ok {
		return
	}

	userID := middlewares.UserID(c)
	if err := h.clubService.Delete(c.Request.Context(), id, userID); err != nil {
		response.Error(c, err)
		return
	}
	h.logger.Infof("(user: %d) deleted club %s", userID, id)

	c.Status(http.StatusNoContent)
}

func (h *Handler) Join(c *gin.Context) {
	id, ok := clubID(c)
	if !ok {
		return
	}

	if err := h.clubService.Join(c.Request.Context(), id, middlewares.UserID(c)); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) Leave(c *gin.Context) {
	id, ok := clubID(c)
	if !ok {
		return
	}

	if err := h.clubService.Leave(c.Request.Context(), id, middlewares.UserID(c)); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) ApproveMember(c *gin.Context) {
	id, ok := clubID(c)
	if !ok {
		return
	}

	memberID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		response.BadRequest(c, "userId must be an integer")
		return
	}

	if err := h.clubService.ApproveMember(c.Request.Context(), id, memberID, middlewares.UserID(c)); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) RejectMember(c *gin.Context) {
	id, ok := clubID(c)
	if !ok {
		return
	}

	memberID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		response.BadRequest(c, "userId must be an integer")
		return
	}

	if err := h.clubService.RejectMember(c.Request.Context(), id, memberID, middlewares.UserID(c)); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
