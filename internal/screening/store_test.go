package screening

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestStoreCreateGet(t *testing.T) {
	st := NewStore(time.Hour)
	s := st.Create()

	if got := st.Get(s.ID); got != s {
		t.Errorf("Get returned %p, want %p", got, s)
	}
	if st.Get(uuid.New()) != nil {
		t.Error("unknown id returned a session")
	}
}

func TestStoreSweepExpiresIdle(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	st := NewStore(time.Hour)
	st.now = func() time.Time { return now }

	idle := st.Create()
	aborted := false
	idle.cancels[7] = context.CancelFunc(func() { aborted = true })

	now = now.Add(45 * time.Minute)
	active := st.Create()

	now = now.Add(30 * time.Minute)
	if n := st.Sweep(); n != 1 {
		t.Fatalf("swept %d, want 1", n)
	}
	if st.Get(idle.ID) != nil {
		t.Error("idle session survived")
	}
	if st.Get(active.ID) == nil {
		t.Error("active session swept")
	}
	if !aborted {
		t.Error("in-flight request of expired session not aborted")
	}
}

func TestStoreGetRefreshesLastSeen(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	st := NewStore(time.Hour)
	st.now = func() time.Time { return now }

	s := st.Create()
	now = now.Add(50 * time.Minute)
	st.Get(s.ID)
	now = now.Add(50 * time.Minute)

	if n := st.Sweep(); n != 0 {
		t.Errorf("swept %d recently used sessions", n)
	}
}
