package store

import (
	"errors"
	"testing"

	"steamboost/internal/models"
)

func seededLedger(t *testing.T) *RequestLedger {
	t.Helper()
	l := NewRequestLedger()
	seed := []models.TopUpRequest{
		{ID: 1, SteamLogin: "player123", Amount: 1000, Status: models.StatusPending, Owner: "user1"},
		{ID: 2, SteamLogin: "gamer456", Amount: 500, Status: models.StatusApproved, Owner: "client1"},
		{ID: 3, SteamLogin: "user789", Amount: 2000, Status: models.StatusCompleted, Owner: "user1"},
	}
	for _, r := range seed {
		if err := l.Restore(r); err != nil {
			t.Fatalf("restore %d: %v", r.ID, err)
		}
	}
	return l
}

func TestRequestLedger_AppendAssignsNextID(t *testing.T) {
	l := seededLedger(t)

	r := l.Append(models.TopUpRequest{ID: 99, SteamLogin: "player1", Amount: 1000, Status: models.StatusPending})
	if r.ID != 4 {
		t.Fatalf("expected id 4, got %d", r.ID)
	}
	r2 := l.Append(models.TopUpRequest{SteamLogin: "player2", Amount: 10, Status: models.StatusPending})
	if r2.ID != 5 {
		t.Fatalf("expected id 5, got %d", r2.ID)
	}

	all := l.All()
	if len(all) != 5 || all[3].ID != 4 || all[4].ID != 5 {
		t.Fatalf("insertion order not preserved: %+v", all)
	}
}

func TestRequestLedger_CounterIndependentOfLength(t *testing.T) {
	l := NewRequestLedger()
	if err := l.Restore(models.TopUpRequest{ID: 10}); err != nil {
		t.Fatalf("restore: %v", err)
	}
	if r := l.Append(models.TopUpRequest{}); r.ID != 11 {
		t.Fatalf("expected id 11 after gap, got %d", r.ID)
	}
}

func TestRequestLedger_RestoreRejectsBadIDs(t *testing.T) {
	l := seededLedger(t)
	if err := l.Restore(models.TopUpRequest{ID: 2}); !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("expected ErrDuplicateID, got %v", err)
	}
	if err := l.Restore(models.TopUpRequest{ID: 0}); !errors.Is(err, ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
	if l.Len() != 3 {
		t.Fatalf("ledger changed on rejected restore: len=%d", l.Len())
	}
}

func TestRequestLedger_UpdateStatus(t *testing.T) {
	l := seededLedger(t)

	prev, updated, ok := l.UpdateStatus(1, models.StatusRejected)
	if !ok || prev != models.StatusPending || updated.Status != models.StatusRejected {
		t.Fatalf("update: ok=%v prev=%s updated=%+v", ok, prev, updated)
	}
	before := l.All()

	if _, _, ok := l.UpdateStatus(42, models.StatusApproved); ok {
		t.Fatal("update of unknown id reported success")
	}
	after := l.All()
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("unknown id changed ledger: %+v -> %+v", before[i], after[i])
		}
	}
}

func TestRequestLedger_ByOwner(t *testing.T) {
	l := seededLedger(t)
	l.Append(models.TopUpRequest{SteamLogin: "anon", Amount: 1})

	own := l.ByOwner("user1")
	if len(own) != 2 || own[0].ID != 1 || own[1].ID != 3 {
		t.Fatalf("unexpected own requests: %+v", own)
	}
	if got := l.ByOwner(""); got != nil {
		t.Fatalf("anonymous requests must not be listed by owner: %+v", got)
	}
}

func TestRequestLedger_AllReturnsCopy(t *testing.T) {
	l := seededLedger(t)
	all := l.All()
	all[0].Status = models.StatusRejected

	r, _ := l.Get(1)
	if r.Status != models.StatusPending {
		t.Fatalf("ledger mutated through All(): %+v", r)
	}
}
