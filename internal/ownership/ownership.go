// Package ownership decides whether the current user authored a post, for UI
// purposes only (edit/delete affordances, "Your Post" badges, filter-by-me).
// The hosted backend remains the authorization boundary; this predicate may
// legitimately be wrong for a moment after a session change.
package ownership

import "github.com/InkwellBlog/web-client/internal/model"

const (
	ReasonNoPost        = "no post provided"
	ReasonNoCurrentUser = "no current user provided"
)

type Result struct {
	IsOwner bool   `json:"is_owner"`
	Reason  string `json:"reason,omitempty"`
}

// Verify compares the post's author id with the current user's id by exact,
// case-sensitive string equality. It never panics; absent inputs resolve to
// not-owner with a reason.
func Verify(post *model.Post, current *model.UserProfile) Result {
	if post == nil {
		return Result{IsOwner: false, Reason: ReasonNoPost}
	}
	if current == nil {
		return Result{IsOwner: false, Reason: ReasonNoCurrentUser}
	}

	return Result{IsOwner: post.UserID == current.ID}
}
