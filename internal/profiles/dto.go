package profiles

import (
	"time"

	"jobmatch-backend/internal/candidate"
	"jobmatch-backend/internal/matching"
	"jobmatch-backend/internal/recommendations"
)

// ProfileResponse is the outward-facing representation of a profile.
type ProfileResponse struct {
	ID               string                     `json:"id"`
	Name             string                     `json:"name"`
	Email            string                     `json:"email"`
	Skills           []string                   `json:"skills"`
	ExperienceYears  int                        `json:"experienceYears"`
	ExperienceSource candidate.ExperienceSource `json:"experienceSource"`
	Education        string                     `json:"education"`
	Certifications   []string                   `json:"certifications"`
	FileName         string                     `json:"fileName,omitempty"`
	RawText          string                     `json:"rawText,omitempty"`
	CreatedAt        time.Time                  `json:"createdAt"`
}

// UploadResponse is returned after a successful résumé upload.
type UploadResponse struct {
	Success bool            `json:"success"`
	Profile ProfileResponse `json:"profile"`
	Message string          `json:"message"`
}

// MatchResponse lists ranked job matches for a profile.
type MatchResponse struct {
	Success      bool             `json:"success"`
	ProfileID    string           `json:"profileId"`
	Matches      []matching.Match `json:"matches"`
	TotalMatches int              `json:"totalMatches"`
}

// RecommendationResponse lists learning recommendations for a profile.
type RecommendationResponse struct {
	Success              bool                             `json:"success"`
	ProfileID            string                           `json:"profileId"`
	Recommendations      []recommendations.Recommendation `json:"recommendations"`
	TotalRecommendations int                              `json:"totalRecommendations"`
}

// ListResponse lists stored profiles.
type ListResponse struct {
	Success  bool              `json:"success"`
	Profiles []ProfileResponse `json:"profiles"`
	Total    int               `json:"total"`
}

func toResponse(p Profile, withText bool) ProfileResponse {
	resp := ProfileResponse{
		ID:               p.ID,
		Name:             p.Name,
		Email:            p.Email,
		Skills:           nonNil(p.Skills),
		ExperienceYears:  p.ExperienceYears,
		ExperienceSource: p.ExperienceSource,
		Education:        p.Education,
		Certifications:   nonNil(p.Certifications),
		FileName:         p.FileName,
		CreatedAt:        p.CreatedAt,
	}
	if withText {
		resp.RawText = p.RawText
	}
	return resp
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
