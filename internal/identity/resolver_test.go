package identity

import (
	"testing"

	"github.com/InkwellBlog/web-client/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestResolve_EmptyUserID(t *testing.T) {
	cache := NewNameCache()
	resolver := NewResolver(cache)

	assert.Equal(t, UnknownUserName, resolver.Resolve("", nil))

	_, ok := cache.Get("")
	assert.False(t, ok, "empty id must not be cached")
}

func TestResolve_SelfWithProfileName(t *testing.T) {
	resolver := NewResolver(NewNameCache())
	current := &model.UserProfile{ID: "u1", Name: "Jane Doe", Email: "jane@x.com"}

	assert.Equal(t, "Jane Doe", resolver.Resolve("u1", current))

	// A second call returns the memoized value even if the profile changed.
	current.Name = "Renamed"
	assert.Equal(t, "Jane Doe", resolver.Resolve("u1", current))
}

func TestResolve_SelfNameFromEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  string
	}{
		{"trailing digits stripped", "jane123@x.com", "Jane"},
		{"symbols stripped", "a.b@x.com", "Ab"},
		{"mixed case lowered", "JOHN.doe@x.com", "Johndoe"},
		{"digits inside kept", "j4ne@x.com", "J4ne"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := NewResolver(NewNameCache())
			current := &model.UserProfile{ID: "abcdef123456", Email: tt.email}
			assert.Equal(t, tt.want, resolver.Resolve("abcdef123456", current))
		})
	}
}

func TestResolve_SelfFallsBackToID(t *testing.T) {
	tests := []struct {
		name  string
		email string
	}{
		{"no email", ""},
		{"all-digit prefix", "12345@x.com"},
		{"all-symbol prefix", "._-@x.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := NewResolver(NewNameCache())
			current := &model.UserProfile{ID: "abcdef123456", Email: tt.email}
			assert.Equal(t, "User_123456", resolver.Resolve("abcdef123456", current))
		})
	}
}

func TestResolve_OtherUserAlwaysSyntheticLabel(t *testing.T) {
	resolver := NewResolver(NewNameCache())
	current := &model.UserProfile{ID: "u1", Name: "Jane"}

	assert.Equal(t, "User_123456", resolver.Resolve("abcdef123456", current))
	assert.Equal(t, "User_123456", resolver.Resolve("abcdef123456", current))
	assert.Equal(t, "User_123456", resolver.Resolve("abcdef123456", nil))
}

func TestResolve_ShortUserID(t *testing.T) {
	resolver := NewResolver(NewNameCache())

	assert.Equal(t, "User_u2", resolver.Resolve("u2", nil))
}

func TestResolve_ClearRecomputes(t *testing.T) {
	cache := NewNameCache()
	resolver := NewResolver(cache)
	current := &model.UserProfile{ID: "u1", Name: "Jane"}

	assert.Equal(t, "Jane", resolver.Resolve("u1", current))

	cache.Clear()
	current.Name = "Janet"
	assert.Equal(t, "Janet", resolver.Resolve("u1", current))
}
