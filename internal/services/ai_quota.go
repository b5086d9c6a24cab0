package services

import (
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// aiQuota caps billable AI calls per user per hour. Counters live in an
// in-process TTL cache: the window starts at a user's first call and resets
// an hour later. Rejected requests do not advance the counter, so an
// over-cap user is not penalized further.
type aiQuota struct {
	mu  sync.Mutex
	c   *gocache.Cache
	cap int
}

func newAIQuota(hourlyCap int) *aiQuota {
	return &aiQuota{
		c:   gocache.New(time.Hour, 10*time.Minute),
		cap: hourlyCap,
	}
}

// Allow reports whether the user may make one more billable call, consuming
// a token when it does.
func (q *aiQuota) Allow(userID string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	v, found := q.c.Get(userID)
	if !found {
		q.c.Set(userID, 1, gocache.DefaultExpiration)
		return true
	}
	n := v.(int)
	if n >= q.cap {
		return false
	}
	if _, err := q.c.IncrementInt(userID, 1); err != nil {
		// Entry expired between Get and Increment; start a fresh window.
		q.c.Set(userID, 1, gocache.DefaultExpiration)
	}
	return true
}
