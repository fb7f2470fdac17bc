package participants

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "participants.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	testCases := []struct {
		name        string
		content     string
		expected    Set
		expectError bool
	}{
		{
			name:     "happy path - loads unique logins",
			content:  `["alice", "bob", "carol"]`,
			expected: Set{"alice": {}, "bob": {}, "carol": {}},
		},
		{
			name:     "duplicates collapse into a set",
			content:  `["alice", "alice", "bob"]`,
			expected: Set{"alice": {}, "bob": {}},
		},
		{
			name:     "empty strings are dropped",
			content:  `["alice", ""]`,
			expected: Set{"alice": {}},
		},
		{
			name:        "empty array is an error",
			content:     `[]`,
			expectError: true,
		},
		{
			name:        "malformed JSON is an error",
			content:     `{"not": "an array"}`,
			expectError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeTempFile(t, tc.content)
			set, err := Load(path)
			if tc.expectError {
				assert.Error(t, err)
				assert.Nil(t, set)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, set)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.json"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read participants file")
}

func TestSet_Sorted(t *testing.T) {
	set := Set{"zoe": {}, "amy": {}, "mid": {}}
	assert.Equal(t, []string{"amy", "mid", "zoe"}, set.Sorted())
}

func TestSet_Contains(t *testing.T) {
	set := Set{"alice": {}}
	assert.True(t, set.Contains("alice"))
	assert.False(t, set.Contains("stranger"))
}
