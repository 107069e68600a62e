package profiles

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"jobmatch-backend/internal/candidate"
	"jobmatch-backend/internal/extract"
	"jobmatch-backend/internal/jobs"
	"jobmatch-backend/internal/matching"
	"jobmatch-backend/internal/recommendations"
	"jobmatch-backend/internal/shared/metrics"
	"jobmatch-backend/internal/shared/storage/object"
	"jobmatch-backend/internal/shared/telemetry"
)

const (
	storeNamespace = "resumes"
	// DefaultTopJobs is how many ranked matches feed learning recommendations.
	DefaultTopJobs = 3
)

// Service contains business logic for profiles.
type Service struct {
	Store       object.ObjectStore
	Repo        Repo
	Extractor   *candidate.Extractor
	Catalog     *jobs.Catalog
	Recommender *recommendations.Engine
	TopJobs     int
	Now         func() time.Time
}

// Upload stores the raw résumé, decodes it and persists the extracted profile.
func (s *Service) Upload(ctx context.Context, fileName, mimeType string, r io.Reader) (Profile, error) {
	fileName = strings.TrimSpace(fileName)
	if fileName == "" {
		return Profile{}, fmt.Errorf("%w: file name is required", ErrInvalidInput)
	}
	if !extract.Supported(fileName) {
		metrics.IncExtractionFailed()
		return Profile{}, fmt.Errorf("%w: %s", extract.ErrUnsupportedType, fileName)
	}

	obj, err := s.Store.Save(ctx, storeNamespace, fileName, r)
	if err != nil {
		return Profile{}, fmt.Errorf("store upload: %w", err)
	}

	text, err := extract.FromStore(ctx, s.Store, obj.Key, mimeType, fileName)
	if err != nil {
		metrics.IncExtractionFailed()
		telemetry.Warn("profile.extract_failed", map[string]any{
			"file_name":    fileName,
			"document_key": obj.Key,
			"error":        err,
		})
		return Profile{}, err
	}

	p := s.newProfile(text)
	p.FileName = fileName
	p.MimeType = firstNonEmpty(mimeType, obj.ContentType)
	p.DocumentKey = obj.Key

	if err := s.Repo.Create(ctx, p); err != nil {
		return Profile{}, fmt.Errorf("save profile: %w", err)
	}

	metrics.IncProfilesExtracted()
	telemetry.Info("profile.extracted", map[string]any{
		"profile_id":        p.ID,
		"skills":            len(p.Skills),
		"experience_years":  p.ExperienceYears,
		"experience_source": string(p.ExperienceSource),
	})
	return p, nil
}

// FromText builds a profile from already decoded text without storing it.
func (s *Service) FromText(text string) Profile {
	return s.newProfile(text)
}

func (s *Service) newProfile(text string) Profile {
	return Profile{
		ID:             uuid.NewString(),
		Profile:        s.Extractor.Extract(text),
		Education:      EducationPlaceholder,
		Certifications: []string{},
		RawText:        text,
		CreatedAt:      s.now(),
	}
}

// Get returns a profile by ID.
func (s *Service) Get(ctx context.Context, id string) (Profile, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Profile{}, fmt.Errorf("%w: profile id is required", ErrInvalidInput)
	}
	return s.Repo.Get(ctx, id)
}

// List returns the most recent profiles.
func (s *Service) List(ctx context.Context, limit int) ([]Profile, error) {
	return s.Repo.List(ctx, limit)
}

// MatchJobs scores the stored profile against every catalog job.
func (s *Service) MatchJobs(ctx context.Context, id string) ([]matching.Match, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	metrics.IncMatchRequests()
	return s.rank(p.Profile), nil
}

// Recommend returns learning recommendations for the skills missing from the
// profile's top ranked jobs.
func (s *Service) Recommend(ctx context.Context, id string) ([]recommendations.Recommendation, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	metrics.IncRecommendationRequests()
	ranked := s.rank(p.Profile)
	return s.Recommender.Recommend(matching.MissingSkillsFromTop(ranked, s.topJobs())), nil
}

func (s *Service) rank(p candidate.Profile) []matching.Match {
	start := time.Now()
	ranked := matching.Score(p, s.Catalog.Records())
	metrics.ObserveMatchDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)
	return ranked
}

func (s *Service) topJobs() int {
	if s.TopJobs <= 0 {
		return DefaultTopJobs
	}
	return s.TopJobs
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

// IsClientError reports whether err stems from the caller's input rather than the service.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, extract.ErrUnsupportedType) ||
		errors.Is(err, extract.ErrDecode) ||
		errors.Is(err, extract.ErrNoText)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
