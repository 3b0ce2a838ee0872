package cachekey

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGlobalFeed(t *testing.T) {
	assert.Equal(t, "threads:all", GlobalFeed())
	assert.Equal(t, GlobalFeed(), GlobalFeed())
}

func TestUserFeed(t *testing.T) {
	tests := []struct {
		name      string
		authorID  int64
		mediaOnly bool
		want      string
	}{
		{name: "all posts", authorID: 42, mediaOnly: false, want: "threads:user:42:all"},
		{name: "media only", authorID: 42, mediaOnly: true, want: "threads:user:42:media"},
		{name: "other author", authorID: 7, mediaOnly: false, want: "threads:user:7:all"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UserFeed(tt.authorID, tt.mediaOnly))
		})
	}
}

func TestProfile(t *testing.T) {
	assert.Equal(t, "user:42", Profile(42))
}

func TestKeyFamiliesNeverCollide(t *testing.T) {
	keys := []string{
		GlobalFeed(),
		UserFeed(1, false),
		UserFeed(1, true),
		UserFeed(2, false),
		Profile(1),
		Profile(2),
	}
	seen := make(map[string]bool)
	for _, k := range keys {
		assert.False(t, seen[k], "duplicate key %q", k)
		seen[k] = true
	}
}
