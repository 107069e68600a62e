package recommendations

import (
	"fmt"
	"net/url"
	"reflect"
	"testing"
)

func TestRecommendCapsAtLimit(t *testing.T) {
	missing := []string{"python", "django", "fastapi", "postgresql", "docker", "aws", "git", "testing", "kafka"}

	got := Default().Recommend(missing)

	if len(got) != 8 {
		t.Fatalf("expected 8 recommendations, got %d", len(got))
	}
	if got[7].Skill != "testing" {
		t.Fatalf("expected input order to be kept, last skill %q", got[7].Skill)
	}
	for i, rec := range got {
		if rec.Order != i+1 {
			t.Fatalf("expected order %d, got %d", i+1, rec.Order)
		}
	}
}

func TestRecommendPriorities(t *testing.T) {
	got := Default().Recommend([]string{"Python", "django", "AWS", "terraform", "sql"})

	want := map[string]Priority{
		"Python":    PriorityHigh,
		"django":    PriorityMedium,
		"AWS":       PriorityHigh,
		"terraform": PriorityMedium,
		"sql":       PriorityHigh,
	}
	for _, rec := range got {
		if rec.Priority != want[rec.Skill] {
			t.Fatalf("skill %s: expected priority %s, got %s", rec.Skill, want[rec.Skill], rec.Priority)
		}
	}
}

func TestRecommendSearchURL(t *testing.T) {
	got := Default().Recommend([]string{"machine learning"})
	if len(got) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(got))
	}

	want := "https://www.google.com/search?q=learn%20machine%20learning%20online%20course%20tutorial"
	if got[0].SearchURL != want {
		t.Fatalf("unexpected url:\n got %s\nwant %s", got[0].SearchURL, want)
	}
}

func TestSearchURLRoundTrips(t *testing.T) {
	e := Default()
	for _, skill := range []string{"c++", "ci/cd", "c#", "R&D", "power bi", "node.js", "日本語"} {
		raw := e.SearchURL(skill)
		parsed, err := url.Parse(raw)
		if err != nil {
			t.Fatalf("parse %q: %v", raw, err)
		}
		q := parsed.Query().Get("q")
		want := fmt.Sprintf("learn %s online course tutorial", skill)
		if q != want {
			t.Fatalf("skill %q: expected query %q, got %q", skill, want, q)
		}
	}
}

func TestRecommendSkipsBlanksAndRepeats(t *testing.T) {
	got := Default().Recommend([]string{"", "  ", "Docker", "docker", " kafka "})

	var skills []string
	for _, rec := range got {
		skills = append(skills, rec.Skill)
	}
	if !reflect.DeepEqual(skills, []string{"Docker", "kafka"}) {
		t.Fatalf("unexpected skills: %v", skills)
	}
}

func TestRecommendEmpty(t *testing.T) {
	got := Default().Recommend(nil)
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestRecommendDeterminism(t *testing.T) {
	input := []string{"kubernetes", "terraform", "python", "react"}
	first := Default().Recommend(input)
	second := Default().Recommend(input)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected deterministic recommendations")
	}
}

func TestNewCustomConfig(t *testing.T) {
	e := New(Config{HighPriority: []string{"Go"}, SearchBase: "https://example.com/?q=", Limit: 2})

	got := e.Recommend([]string{"go", "python", "rust"})
	if len(got) != 2 {
		t.Fatalf("expected 2 recommendations, got %d", len(got))
	}
	if got[0].Priority != PriorityHigh || got[1].Priority != PriorityMedium {
		t.Fatalf("unexpected priorities: %s, %s", got[0].Priority, got[1].Priority)
	}
	if got[0].SearchURL != "https://example.com/?q=learn%20go%20online%20course%20tutorial" {
		t.Fatalf("unexpected url: %s", got[0].SearchURL)
	}
	if e.Limit() != 2 {
		t.Fatalf("expected limit 2, got %d", e.Limit())
	}
}
