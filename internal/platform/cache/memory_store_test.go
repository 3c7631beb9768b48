package cache

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"
)

// fakeClock は手動で進められるテスト用の時計です。
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// TestMemoryStore_GetSet は保存した値が取得でき、未保存のキーはミスになることを検証します。
func TestMemoryStore_GetSet(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore()
	ctx := context.Background()

	if _, ok := s.Get(ctx, "stock:AAPL"); ok {
		t.Fatal("expected miss on empty store")
	}

	s.Set(ctx, "stock:AAPL", []byte(`{"symbol":"AAPL"}`), time.Minute)

	got, ok := s.Get(ctx, "stock:AAPL")
	if !ok {
		t.Fatal("expected hit after Set")
	}
	if string(got) != `{"symbol":"AAPL"}` {
		t.Errorf("unexpected value %q", got)
	}
}

// TestMemoryStore_Expiry はT+D-εでは取得でき、T+D+εでは存在しない扱いになることを検証します。
func TestMemoryStore_Expiry(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		elapsed time.Duration
		wantHit bool
	}{
		{"just before expiry", 5*time.Minute - time.Millisecond, true},
		{"exactly at expiry", 5 * time.Minute, false},
		{"just after expiry", 5*time.Minute + time.Millisecond, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			clock := newFakeClock()
			s := NewMemoryStore(WithClock(clock.Now))
			ctx := context.Background()

			s.Set(ctx, "rates:USD", []byte("1"), 5*time.Minute)
			clock.Advance(tt.elapsed)

			_, ok := s.Get(ctx, "rates:USD")
			if ok != tt.wantHit {
				t.Errorf("expected hit=%v, got %v", tt.wantHit, ok)
			}
			if !tt.wantHit && s.Len() != 0 {
				t.Errorf("expected expired entry to be removed, len=%d", s.Len())
			}
		})
	}
}

// TestMemoryStore_SetOverwritesAndResetsExpiry は上書き時に値と有効期限がリセットされることを検証します。
func TestMemoryStore_SetOverwritesAndResetsExpiry(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	s := NewMemoryStore(WithClock(clock.Now))
	ctx := context.Background()

	s.Set(ctx, "k", []byte("old"), time.Minute)
	clock.Advance(50 * time.Second)
	s.Set(ctx, "k", []byte("new"), time.Minute)
	clock.Advance(50 * time.Second)

	got, ok := s.Get(ctx, "k")
	if !ok {
		t.Fatal("expected overwritten entry to still be valid")
	}
	if string(got) != "new" {
		t.Errorf("expected new value, got %q", got)
	}
}

// TestMemoryStore_Sweep は期限切れのエントリのみが削除されることを検証します。
func TestMemoryStore_Sweep(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	s := NewMemoryStore(WithClock(clock.Now))
	ctx := context.Background()

	s.Set(ctx, "short", []byte("1"), time.Minute)
	s.Set(ctx, "long", []byte("2"), time.Hour)
	clock.Advance(2 * time.Minute)

	if removed := s.Sweep(); removed != 1 {
		t.Errorf("expected 1 removed entry, got %d", removed)
	}
	if s.Len() != 1 {
		t.Errorf("expected 1 remaining entry, got %d", s.Len())
	}
	if _, ok := s.Get(ctx, "long"); !ok {
		t.Error("expected long-lived entry to survive the sweep")
	}
}

// TestMemoryStore_StartJanitor はバックグラウンドのスイープが期限切れエントリを回収することを検証します。
func TestMemoryStore_StartJanitor(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	s := NewMemoryStore(WithClock(clock.Now))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s.Set(ctx, "k", []byte("1"), time.Second)
	clock.Advance(2 * time.Second)

	s.StartJanitor(ctx, 5*time.Millisecond)

	deadline := time.Now().Add(time.Second)
	for s.Len() != 0 {
		if time.Now().After(deadline) {
			t.Fatal("janitor did not remove the expired entry")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

// TestMemoryStore_Concurrent は並行したGet/Setでデータ競合や破損が起きないことを検証します（-race）。
func TestMemoryStore_Concurrent(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				key := fmt.Sprintf("k%d", j%10)
				s.Set(ctx, key, []byte(fmt.Sprintf("%d", i)), time.Minute)
				if _, ok := s.Get(ctx, key); !ok {
					t.Errorf("expected hit for %s", key)
				}
			}
		}(i)
	}
	wg.Wait()

	if s.Len() != 10 {
		t.Errorf("expected 10 keys, got %d", s.Len())
	}
}
