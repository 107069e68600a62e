package jobs

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobmatch-backend/internal/shared/server/respond"
)

// Handler exposes the catalog over HTTP.
type Handler struct {
	Catalog *Catalog
}

// NewHandler constructs a Handler.
func NewHandler(catalog *Catalog) *Handler {
	return &Handler{Catalog: catalog}
}

// RegisterRoutes attaches job routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/jobs", h.list)
	rg.GET("/jobs/:jobId", h.get)
}

func (h *Handler) list(c *gin.Context) {
	records := h.Catalog.Records()
	respond.OK(c, gin.H{
		"success": true,
		"jobs":    records,
		"total":   len(records),
	})
}

func (h *Handler) get(c *gin.Context) {
	rec, ok := h.Catalog.Get(c.Param("jobId"))
	if !ok {
		respond.Error(c, http.StatusNotFound, "not_found", "job not found", nil)
		return
	}
	respond.OK(c, rec)
}
