package identity

import (
	"strings"
	"unicode"

	"github.com/InkwellBlog/web-client/internal/model"
)

// UnknownUserName is returned when no user id is available at all.
const UnknownUserName = "Unknown User"

const fallbackIDLength = 6

// Resolver maps a user id to a stable human-readable display name.
//
// The backend does not expose other users' profiles to this client, so only
// the authenticated user's own id resolves through their profile; every other
// author gets a synthetic label derived purely from the id, reproducible by
// any client without a lookup.
type Resolver struct {
	cache *NameCache
}

func NewResolver(cache *NameCache) *Resolver {
	return &Resolver{
		cache: cache,
	}
}

// Resolve never fails: malformed or missing input degrades to a fallback
// label. current is the authenticated profile, nil when anonymous.
func (r *Resolver) Resolve(userID string, current *model.UserProfile) string {
	if userID == "" {
		return UnknownUserName
	}

	if name, ok := r.cache.Get(userID); ok {
		return name
	}

	name := fallbackName(userID)
	if current != nil && current.ID == userID {
		name = selfName(current)
	}

	r.cache.Set(userID, name)
	return name
}

func selfName(profile *model.UserProfile) string {
	if strings.TrimSpace(profile.Name) != "" {
		return profile.Name
	}

	if name := nameFromEmail(profile.Email); name != "" {
		return name
	}

	return fallbackName(profile.ID)
}

// nameFromEmail derives a readable name from the part of the address before
// the "@": keep ASCII letters and digits, drop a trailing digit run, then
// title-case the first character. Returns "" when nothing readable remains.
func nameFromEmail(email string) string {
	if email == "" {
		return ""
	}

	prefix, _, _ := strings.Cut(email, "@")

	var cleaned []rune
	for _, r := range prefix {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			cleaned = append(cleaned, r)
		}
	}

	end := len(cleaned)
	for end > 0 && unicode.IsDigit(cleaned[end-1]) {
		end--
	}
	cleaned = cleaned[:end]

	if len(cleaned) == 0 {
		return ""
	}

	return string(unicode.ToUpper(cleaned[0])) + strings.ToLower(string(cleaned[1:]))
}

func fallbackName(userID string) string {
	suffix := userID
	if len(suffix) > fallbackIDLength {
		suffix = suffix[len(suffix)-fallbackIDLength:]
	}
	return "User_" + suffix
}
