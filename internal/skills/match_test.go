package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFind_Substring(t *testing.T) {
	lex, err := New("v1", []string{"java", "javascript", "r", "go", "machine learning"})
	require.NoError(t, err)

	got := lex.Find("javascript and machine learning", MatchSubstring)

	// "java" sits inside "javascript" and "r" inside "learning": both count.
	assert.Equal(t, []string{"java", "javascript", "r", "machine learning"}, got)
}

func TestFind_Word(t *testing.T) {
	lex, err := New("v1", []string{"java", "javascript", "r", "go", "ci/cd", "machine learning"})
	require.NoError(t, err)

	got := lex.Find("javascript, r and go; ci/cd pipelines. machine learning", MatchWord)

	assert.Equal(t, []string{"javascript", "r", "go", "ci/cd", "machine learning"}, got)
}

func TestFind_WordSkipsEmbeddedOccurrences(t *testing.T) {
	lex, err := New("v1", []string{"go"})
	require.NoError(t, err)

	assert.Empty(t, lex.Find("mongodb and django", MatchWord))
	assert.Equal(t, []string{"go"}, lex.Find("django, go", MatchWord))
	assert.Equal(t, []string{"go"}, lex.Find("go", MatchWord))
}

func TestFind_EmptyText(t *testing.T) {
	assert.Empty(t, Default().Find("", MatchSubstring))
	assert.Empty(t, Default().Find("", MatchWord))
}

func TestParseMatchMode(t *testing.T) {
	tests := []struct {
		raw     string
		want    MatchMode
		wantErr bool
	}{
		{raw: "", want: MatchSubstring},
		{raw: "substring", want: MatchSubstring},
		{raw: " WORD ", want: MatchWord},
		{raw: "word-boundary", want: MatchWord},
		{raw: "fuzzy", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseMatchMode(tt.raw)
		if tt.wantErr {
			assert.Error(t, err, tt.raw)
			continue
		}
		require.NoError(t, err, tt.raw)
		assert.Equal(t, tt.want, got, tt.raw)
	}
}
