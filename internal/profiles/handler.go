package profiles

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"jobmatch-backend/internal/extract"
	"jobmatch-backend/internal/shared/server/respond"
)

const defaultMaxUploadBytes = 10 << 20 // 10MB

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc            *Service
	MaxUploadBytes int64
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, maxUploadBytes int64) *Handler {
	if maxUploadBytes <= 0 {
		maxUploadBytes = defaultMaxUploadBytes
	}
	return &Handler{Svc: svc, MaxUploadBytes: maxUploadBytes}
}

// RegisterRoutes attaches profile routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/upload-resume", h.upload)
	rg.POST("/match-jobs/:profileId", h.matchJobs)
	rg.POST("/learning-recommendations/:profileId", h.recommend)
	rg.GET("/profiles", h.list)
	rg.GET("/profiles/:profileId", h.get)
}

func (h *Handler) upload(c *gin.Context) {
	if c.Request.ContentLength > h.MaxUploadBytes {
		h.tooLarge(c)
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxUploadBytes)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.tooLarge(c)
			return
		}
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}
	if !extract.Supported(fileHeader.Filename) {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Only PDF, DOCX, and TXT files are supported", gin.H{"stage": "decode"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	p, err := h.Svc.Upload(c.Request.Context(), fileHeader.Filename, fileHeader.Header.Get("Content-Type"), file)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.Set("profileId", p.ID)

	respond.JSON(c, http.StatusCreated, UploadResponse{
		Success: true,
		Profile: toResponse(p, false),
		Message: fmt.Sprintf("Resume parsed successfully! Found %d skills.", len(p.Skills)),
	})
}

func (h *Handler) matchJobs(c *gin.Context) {
	id := c.Param("profileId")
	c.Set("profileId", id)

	matches, err := h.Svc.MatchJobs(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.Set("matchCount", len(matches))

	respond.OK(c, MatchResponse{
		Success:      true,
		ProfileID:    id,
		Matches:      matches,
		TotalMatches: len(matches),
	})
}

func (h *Handler) recommend(c *gin.Context) {
	id := c.Param("profileId")
	c.Set("profileId", id)

	recs, err := h.Svc.Recommend(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}

	respond.OK(c, RecommendationResponse{
		Success:              true,
		ProfileID:            id,
		Recommendations:      recs,
		TotalRecommendations: len(recs),
	})
}

func (h *Handler) list(c *gin.Context) {
	limit := MaxListLimit
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}

	items, err := h.Svc.List(c.Request.Context(), limit)
	if err != nil {
		h.fail(c, err)
		return
	}

	resp := make([]ProfileResponse, 0, len(items))
	for _, p := range items {
		resp = append(resp, toResponse(p, false))
	}
	respond.OK(c, ListResponse{Success: true, Profiles: resp, Total: len(resp)})
}

func (h *Handler) get(c *gin.Context) {
	id := c.Param("profileId")
	c.Set("profileId", id)

	p, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	respond.OK(c, toResponse(p, true))
}

func (h *Handler) tooLarge(c *gin.Context) {
	respond.Error(c, http.StatusRequestEntityTooLarge, "payload_too_large", fmt.Sprintf("file exceeds %d bytes", h.MaxUploadBytes), nil)
}

func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "Profile not found", nil)
	case errors.Is(err, extract.ErrUnsupportedType):
		respond.Error(c, http.StatusBadRequest, "validation_error", "Only PDF, DOCX, and TXT files are supported", gin.H{"stage": "decode"})
	case errors.Is(err, extract.ErrDecode):
		respond.Error(c, http.StatusBadRequest, "validation_error", "Could not decode the uploaded file", gin.H{"stage": "decode"})
	case errors.Is(err, extract.ErrNoText):
		respond.Error(c, http.StatusBadRequest, "validation_error", "Could not extract text from file", gin.H{"stage": "extract"})
	case IsClientError(err):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Error processing request", nil)
	}
}
