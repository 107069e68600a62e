package profiles

import (
	"time"

	"jobmatch-backend/internal/candidate"
)

// EducationPlaceholder is stored until education parsing exists.
const EducationPlaceholder = "Extracted from resume"

// Profile is a candidate profile persisted after a résumé upload.
type Profile struct {
	ID string
	candidate.Profile
	Education      string
	Certifications []string
	RawText        string
	FileName       string
	MimeType       string
	DocumentKey    string
	CreatedAt      time.Time
}
