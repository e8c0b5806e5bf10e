package store

import (
	"sync"

	"steamboost/internal/models"
)

// RequestLedger — упорядоченный список заявок. Порядок вставки сохраняется,
// id выдаются монотонным счётчиком и не зависят от длины списка.
type RequestLedger struct {
	mu     sync.RWMutex
	items  []models.TopUpRequest
	index  map[int64]int
	nextID int64
}

func NewRequestLedger() *RequestLedger {
	return &RequestLedger{
		index:  make(map[int64]int),
		nextID: 1,
	}
}

// Restore puts a request with a preassigned id into the ledger (seed data).
// The counter moves past the restored id so new ids never collide.
func (l *RequestLedger) Restore(req models.TopUpRequest) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if req.ID <= 0 {
		return ErrInvalidID
	}
	if _, ok := l.index[req.ID]; ok {
		return ErrDuplicateID
	}
	l.index[req.ID] = len(l.items)
	l.items = append(l.items, req)
	if req.ID >= l.nextID {
		l.nextID = req.ID + 1
	}
	return nil
}

// Append assigns the next id and appends req. Any id set by the caller is ignored.
func (l *RequestLedger) Append(req models.TopUpRequest) models.TopUpRequest {
	l.mu.Lock()
	defer l.mu.Unlock()

	req.ID = l.nextID
	l.nextID++
	l.index[req.ID] = len(l.items)
	l.items = append(l.items, req)
	return req
}

// UpdateStatus replaces the status of request id and returns the previous
// status together with the updated request. ok is false if id is unknown,
// in which case nothing changes.
func (l *RequestLedger) UpdateStatus(id int64, status models.RequestStatus) (prev models.RequestStatus, updated models.TopUpRequest, ok bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	i, ok := l.index[id]
	if !ok {
		return "", models.TopUpRequest{}, false
	}
	prev = l.items[i].Status
	l.items[i].Status = status
	return prev, l.items[i], true
}

func (l *RequestLedger) Get(id int64) (models.TopUpRequest, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	i, ok := l.index[id]
	if !ok {
		return models.TopUpRequest{}, false
	}
	return l.items[i], true
}

// ByOwner returns the requests owned by owner in ledger order.
// Anonymous requests (empty owner) are never returned.
func (l *RequestLedger) ByOwner(owner string) []models.TopUpRequest {
	if owner == "" {
		return nil
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	var out []models.TopUpRequest
	for _, r := range l.items {
		if r.Owner == owner {
			out = append(out, r)
		}
	}
	return out
}

// All returns a copy of the ledger in insertion order.
func (l *RequestLedger) All() []models.TopUpRequest {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]models.TopUpRequest, len(l.items))
	copy(out, l.items)
	return out
}

func (l *RequestLedger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.items)
}
