package auth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/clubhub/clubhub-api/internal/adapters/primary/rest/middlewares"
	"github.com/clubhub/clubhub-api/internal/adapters/primary/rest/response"
	"github.com/clubhub/clubhub-api/internal/ports/primary"
	"github.com/clubhub/clubhub-api/pkg/logger"
)

type Handler struct {
	userService primary.UserService

	secret   string
	tokenTTL time.Duration
	logger   *logger.Logger
}

func New(userSvc primary.UserService, lg *logger.Logger, secret string, tokenTTL time.Duration) *Handler {
	return &Handler{
		userService: userSvc,
		secret:      secret,
		tokenTTL:    tokenTTL,
		logger:      lg,
	}
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.userService.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}
	h.logger.Infof("(user: %d) registered", user.ID)

	c.JSON(http.StatusCreated, gin.H{"id": user.ID, "name": user.Name, "email": user.Email})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.userService.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": user.ID,
		"iat": now.Unix(),
		"exp": now.Add(h.tokenTTL).Unix(),
	})
	signed, err := token.SignedString([]byte(h.secret))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": signed})
}

func (h *Handler) Me(c *gin.Context) {
	user, err := h.userService.Get(c.Request.Context(), middlewares.UserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": user.ID, "name": user.Name, "email": user.Email})
}
