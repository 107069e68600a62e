package skills

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLexicon(t *testing.T) {
	lex := Default()

	assert.Equal(t, "2024-01", lex.Version())
	assert.Equal(t, 67, lex.Len())
	assert.True(t, lex.Contains("Machine Learning"))
	assert.True(t, lex.Contains("ci/cd"))
	assert.False(t, lex.Contains("cobol"))
}

func TestNew_NormalizesAndDedupes(t *testing.T) {
	lex, err := New("v1", []string{" Go ", "go", "Rust", "RUST", "sql"})
	require.NoError(t, err)

	assert.Equal(t, []string{"go", "rust", "sql"}, lex.Skills())
}

func TestNew_RejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		version string
		entries []string
	}{
		{name: "missing version", version: "", entries: []string{"go"}},
		{name: "no entries", version: "v1", entries: nil},
		{name: "empty entry", version: "v1", entries: []string{"go", ""}},
		{name: "blank entry", version: "v1", entries: []string{"go", "   "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.version, tt.entries)
			require.ErrorIs(t, err, ErrInvalidLexicon)
		})
	}
}

func TestLoad(t *testing.T) {
	lex, err := Load(strings.NewReader(`{"version":"test","skills":["Kafka","spark"]}`))
	require.NoError(t, err)
	assert.Equal(t, "test", lex.Version())
	assert.Equal(t, []string{"kafka", "spark"}, lex.Skills())

	_, err = Load(strings.NewReader(`{"version":"test","skills":["go"],"extra":true}`))
	require.ErrorIs(t, err, ErrInvalidLexicon)

	_, err = Load(strings.NewReader(`not json`))
	require.ErrorIs(t, err, ErrInvalidLexicon)
}

func TestSkillsReturnsCopy(t *testing.T) {
	lex, err := New("v1", []string{"go"})
	require.NoError(t, err)

	got := lex.Skills()
	got[0] = "mutated"
	assert.Equal(t, []string{"go"}, lex.Skills())
}
