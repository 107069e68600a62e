package recommendations

// Priority ranks how urgently a missing skill should be learned.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
)

// Recommendation is a learning link for one missing skill.
type Recommendation struct {
	Skill     string   `json:"skill"`
	SearchURL string   `json:"searchUrl"`
	Priority  Priority `json:"priority"`
	Order     int      `json:"order"`
}

// Config tunes an Engine. Zero values fall back to the defaults.
type Config struct {
	HighPriority []string
	SearchBase   string
	Limit        int
}
