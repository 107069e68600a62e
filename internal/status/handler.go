package status

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobmatch-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

type createRequest struct {
	ClientName string `json:"clientName" binding:"required,max=200"`
}

// RegisterRoutes attaches status routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/status", h.create)
	rg.GET("/status", h.list)
}

func (h *Handler) create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "clientName is required", nil)
		return
	}

	check, err := h.Svc.Record(c.Request.Context(), req.ClientName)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to record status", nil)
		return
	}
	respond.JSON(c, http.StatusCreated, check)
}

func (h *Handler) list(c *gin.Context) {
	checks, err := h.Svc.List(c.Request.Context(), MaxListLimit)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list status checks", nil)
		return
	}
	respond.OK(c, checks)
}
