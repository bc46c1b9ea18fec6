package session

import (
	"context"
	"testing"
	"time"
)

func TestNewSession(t *testing.T) {
	sess := New("pyramid.mpd", time.Hour)
	if sess.ID == "" {
		t.Fatal("expected non-empty id")
	}
	if sess.Model != "pyramid.mpd" {
		t.Errorf("model = %q, want pyramid.mpd", sess.Model)
	}
	if sess.IsExpired() {
		t.Error("fresh session should not be expired")
	}
	other := New("pyramid.mpd", time.Hour)
	if other.ID == sess.ID {
		t.Error("ids should be unique")
	}
}

func TestAddLayoutDedupes(t *testing.T) {
	sess := New("m.ldr", time.Hour)
	sess.AddLayout("layout:abc")
	sess.AddLayout("layout:def")
	sess.AddLayout("layout:abc")
	if len(sess.Layouts) != 2 {
		t.Fatalf("layouts = %v, want 2 distinct keys", sess.Layouts)
	}
}

func runStoreTests(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("round trip", func(t *testing.T) {
		sess := New("tower.mpd", time.Hour)
		sess.AddLayout("layout:k1")
		if err := store.Set(ctx, sess); err != nil {
			t.Fatalf("set: %v", err)
		}
		got, err := store.Get(ctx, sess.ID)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got == nil {
			t.Fatal("expected session, got nil")
		}
		if got.Model != "tower.mpd" || len(got.Layouts) != 1 {
			t.Errorf("got %+v", got)
		}
	})

	t.Run("missing returns nil", func(t *testing.T) {
		got, err := store.Get(ctx, "no-such-session")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got != nil {
			t.Errorf("expected nil, got %+v", got)
		}
	})

	t.Run("expired is a miss", func(t *testing.T) {
		sess := New("old.mpd", -time.Second)
		if err := store.Set(ctx, sess); err != nil {
			t.Fatalf("set: %v", err)
		}
		got, err := store.Get(ctx, sess.ID)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got != nil {
			t.Errorf("expected expired session to read as nil, got %+v", got)
		}
	})

	t.Run("delete", func(t *testing.T) {
		sess := New("gone.mpd", time.Hour)
		if err := store.Set(ctx, sess); err != nil {
			t.Fatalf("set: %v", err)
		}
		if err := store.Delete(ctx, sess.ID); err != nil {
			t.Fatalf("delete: %v", err)
		}
		got, err := store.Get(ctx, sess.ID)
		if err != nil {
			t.Fatalf("get after delete: %v", err)
		}
		if got != nil {
			t.Error("session should be gone after delete")
		}
		if err := store.Delete(ctx, sess.ID); err != nil {
			t.Errorf("deleting absent session: %v", err)
		}
	})

	t.Run("cleanup drops expired", func(t *testing.T) {
		live := New("live.mpd", time.Hour)
		dead := New("dead.mpd", -time.Second)
		if err := store.Set(ctx, live); err != nil {
			t.Fatalf("set live: %v", err)
		}
		if err := store.Set(ctx, dead); err != nil {
			t.Fatalf("set dead: %v", err)
		}
		if err := store.Cleanup(ctx); err != nil {
			t.Fatalf("cleanup: %v", err)
		}
		got, err := store.Get(ctx, live.ID)
		if err != nil || got == nil {
			t.Errorf("live session lost: %v %v", got, err)
		}
		got, err = store.Get(ctx, dead.ID)
		if err != nil || got != nil {
			t.Errorf("expired session survived cleanup: %v %v", got, err)
		}
	})
}

func TestMemoryStore(t *testing.T) {
	runStoreTests(t, NewMemoryStore())
}

func TestFileStore(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("new file store: %v", err)
	}
	runStoreTests(t, store)
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	sess := New("m.ldr", time.Hour)
	if err := store.Set(ctx, sess); err != nil {
		t.Fatalf("set: %v", err)
	}

	got, err := store.Get(ctx, sess.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	got.Model = "mutated"

	again, err := store.Get(ctx, sess.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if again.Model != "m.ldr" {
		t.Errorf("stored session mutated through returned copy: %q", again.Model)
	}
}
