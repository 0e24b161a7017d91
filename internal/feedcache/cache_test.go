package feedcache

import (
	"testing"
	"time"

	"github.com/InkwellBlog/web-client/internal/model"
	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func testPosts() []model.Post {
	return []model.Post{
		{ID: "p1", UserID: "u1"},
		{ID: "p2", UserID: "u2"},
	}
}

func TestCache_RoundTrip(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	cache := NewWithClock(clock.Now)
	posts := testPosts()

	cache.Write(posts, "u1", false)

	got, ok := cache.Read("u1", false)
	assert.True(t, ok)
	assert.Equal(t, posts, got)
}

func TestCache_MissWhenEmpty(t *testing.T) {
	cache := New()

	_, ok := cache.Read("u1", false)
	assert.False(t, ok)
}

func TestCache_MissOnUserMismatch(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	cache := NewWithClock(clock.Now)

	cache.Write(testPosts(), "u1", false)

	_, ok := cache.Read("u2", false)
	assert.False(t, ok)

	_, ok = cache.Read("", false)
	assert.False(t, ok)
}

func TestCache_AnonymousMatchesAnonymous(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	cache := NewWithClock(clock.Now)
	posts := testPosts()

	cache.Write(posts, "", false)

	got, ok := cache.Read("", false)
	assert.True(t, ok)
	assert.Equal(t, posts, got)
}

func TestCache_MissOnStatusScopeMismatch(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	cache := NewWithClock(clock.Now)

	cache.Write(testPosts(), "u1", true)

	_, ok := cache.Read("u1", false)
	assert.False(t, ok, "all-statuses snapshot must not answer an active-only read")

	cache.Write(testPosts(), "u1", false)

	_, ok = cache.Read("u1", true)
	assert.False(t, ok, "active-only snapshot must not answer an all-statuses read")
}

func TestCache_ReadReturnsCopy(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	cache := NewWithClock(clock.Now)

	cache.Write(testPosts(), "u1", false)

	got, ok := cache.Read("u1", false)
	assert.True(t, ok)
	got[0].ID = "mutated"

	again, _ := cache.Read("u1", false)
	assert.Equal(t, "p1", again[0].ID, "caller mutation must not reach the snapshot")
}

func TestCache_MissWhenStale(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	cache := NewWithClock(clock.Now)

	cache.Write(testPosts(), "u1", false)

	clock.Advance(TTL - time.Second)
	_, ok := cache.Read("u1", false)
	assert.True(t, ok, "entry younger than TTL must hit")

	clock.Advance(time.Second)
	_, ok = cache.Read("u1", false)
	assert.False(t, ok, "entry aged to exactly TTL must miss")
}

func TestCache_MostRecentWriteWins(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	cache := NewWithClock(clock.Now)

	cache.Write(testPosts(), "u1", false)
	cache.Write([]model.Post{{ID: "p3", UserID: "u2"}}, "u2", false)

	_, ok := cache.Read("u1", false)
	assert.False(t, ok)

	got, ok := cache.Read("u2", false)
	assert.True(t, ok)
	assert.Len(t, got, 1)
}

func TestCache_Clear(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	cache := NewWithClock(clock.Now)

	cache.Write(testPosts(), "u1", false)
	cache.Clear()

	_, ok := cache.Read("u1", false)
	assert.False(t, ok)
}
