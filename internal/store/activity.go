package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"steamboost/internal/models"
)

// ActivityLog — журнал действий в памяти.
type ActivityLog struct {
	mu      sync.RWMutex
	entries []models.Activity
	now     func() time.Time
}

func NewActivityLog() *ActivityLog {
	return &ActivityLog{now: time.Now}
}

// Record appends e, filling in ID and At when they are empty.
func (a *ActivityLog) Record(e models.Activity) models.Activity {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.At.IsZero() {
		e.At = a.now()
	}

	a.mu.Lock()
	a.entries = append(a.entries, e)
	a.mu.Unlock()
	return e
}

// Latest returns up to limit entries, newest first. limit <= 0 means all.
func (a *ActivityLog) Latest(limit int) []models.Activity {
	a.mu.RLock()
	defer a.mu.RUnlock()

	n := len(a.entries)
	if limit <= 0 || limit > n {
		limit = n
	}
	out := make([]models.Activity, 0, limit)
	for i := n - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, a.entries[i])
	}
	return out
}

// ForRequest returns the entries of one request, oldest first.
func (a *ActivityLog) ForRequest(id int64) []models.Activity {
	a.mu.RLock()
	defer a.mu.RUnlock()

	var out []models.Activity
	for _, e := range a.entries {
		if e.RequestID == id {
			out = append(out, e)
		}
	}
	return out
}
