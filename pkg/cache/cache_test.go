package cache

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("NullCache.Get should always return miss")
	}
	if data != nil {
		t.Error("NullCache.Get should return nil data")
	}

	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}
	_, hit, _ = c.Get(ctx, "key")
	if hit {
		t.Error("NullCache should not store data")
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	t.Run("round trip", func(t *testing.T) {
		if err := c.Set(ctx, "layout:abc", []byte("payload"), 0); err != nil {
			t.Fatal(err)
		}
		data, hit, err := c.Get(ctx, "layout:abc")
		if err != nil {
			t.Fatal(err)
		}
		if !hit || string(data) != "payload" {
			t.Errorf("got %q hit=%v", data, hit)
		}
	})

	t.Run("expired entry is a miss", func(t *testing.T) {
		if err := c.Set(ctx, "short", []byte("x"), -time.Second); err != nil {
			t.Fatal(err)
		}
		_, hit, err := c.Get(ctx, "short")
		if err != nil {
			t.Fatal(err)
		}
		if hit {
			t.Error("expired entry returned a hit")
		}
	})

	t.Run("delete", func(t *testing.T) {
		if err := c.Set(ctx, "gone", []byte("x"), 0); err != nil {
			t.Fatal(err)
		}
		if err := c.Delete(ctx, "gone"); err != nil {
			t.Fatal(err)
		}
		if _, hit, _ := c.Get(ctx, "gone"); hit {
			t.Error("deleted entry still present")
		}
		// Deleting a missing key is fine.
		if err := c.Delete(ctx, "never-stored"); err != nil {
			t.Errorf("delete of absent key: %v", err)
		}
	})
}

func TestHash(t *testing.T) {
	h1 := Hash([]byte("3001_4_816_150_DPI_1_0.01_23_-45"))
	h2 := Hash([]byte("3001_4_816_150_DPI_1_0.01_23_-45"))
	if h1 != h2 {
		t.Error("Hash should be deterministic")
	}
	if h3 := Hash([]byte("3020_14")); h1 == h3 {
		t.Error("different inputs should produce different hashes")
	}
	if len(h1) != 64 {
		t.Errorf("hash length = %d, want 64", len(h1))
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()

	if got := k.HTTPKey("lego", "https://example.com/codes.txt"); got != "http:lego:https://example.com/codes.txt" {
		t.Errorf("HTTPKey = %q", got)
	}
	if got := k.ImageKey("3001_4_816_150_DPI_1_0.01_23_-45"); got != "image:3001_4_816_150_DPI_1_0.01_23_-45" {
		t.Errorf("ImageKey = %q", got)
	}

	lk1 := k.LayoutKey("modelhash", LayoutKeyOpts{List: "pli", Constrain: "AREA", Resolution: 150})
	lk2 := k.LayoutKey("modelhash", LayoutKeyOpts{List: "bom", Constrain: "AREA", Resolution: 150})
	if lk1 == lk2 {
		t.Error("different list kinds should produce different layout keys")
	}
	if lk1 != k.LayoutKey("modelhash", LayoutKeyOpts{List: "pli", Constrain: "AREA", Resolution: 150}) {
		t.Error("LayoutKey should be deterministic")
	}
}

func TestScopedKeyer(t *testing.T) {
	k := NewScopedKeyer(NewDefaultKeyer(), "session:s1:")
	if got := k.ImageKey("abc"); got != "session:s1:image:abc" {
		t.Errorf("scoped ImageKey = %q", got)
	}
	// Nil inner falls back to the default scheme.
	k = NewScopedKeyer(nil, "p:")
	if got := k.HTTPKey("lego", "u"); got != "p:http:lego:u" {
		t.Errorf("scoped HTTPKey = %q", got)
	}
}

func TestRetryWithBackoff(t *testing.T) {
	t.Run("non-retryable stops immediately", func(t *testing.T) {
		calls := 0
		err := RetryWithBackoff(context.Background(), func() error {
			calls++
			return errors.New("fatal")
		})
		if err == nil || calls != 1 {
			t.Errorf("calls = %d, err = %v", calls, err)
		}
	})

	t.Run("retryable retries then succeeds", func(t *testing.T) {
		calls := 0
		err := RetryWithBackoff(context.Background(), func() error {
			calls++
			if calls < 2 {
				return Retryable(errors.New("transient"))
			}
			return nil
		})
		if err != nil || calls != 2 {
			t.Errorf("calls = %d, err = %v", calls, err)
		}
	})

	t.Run("cancelled context stops waiting", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := RetryWithBackoff(ctx, func() error {
			return Retryable(errors.New("transient"))
		})
		if !errors.Is(err, context.Canceled) {
			t.Errorf("err = %v, want context.Canceled", err)
		}
	})
}

func TestIsRetryable(t *testing.T) {
	if IsRetryable(errors.New("plain")) {
		t.Error("plain error reported retryable")
	}
	if !IsRetryable(Retryable(errors.New("x"))) {
		t.Error("wrapped error not reported retryable")
	}
	if Retryable(nil) != nil {
		t.Error("Retryable(nil) should be nil")
	}
}
