package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
)

// TestNewRedisStore_Defaults はnamespace未指定時にデフォルト値が使われることを検証します。
func TestNewRedisStore_Defaults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		namespace string
		expected  string
	}{
		{"default namespace when empty", "", "market"},
		{"custom namespace preserved", "custom", "custom"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := NewRedisStore(nil, tt.namespace)
			if s.namespace != tt.expected {
				t.Errorf("expected namespace %q, got %q", tt.expected, s.namespace)
			}
		})
	}
}

// TestRedisStore_Get_Hit はキャッシュヒット時に保存済みのバイト列を返すことを検証します。
func TestRedisStore_Get_Hit(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	mock.ExpectGet("market:stock:AAPL").SetVal(`{"symbol":"AAPL"}`)

	s := NewRedisStore(rdb, "market")
	got, ok := s.Get(context.Background(), "stock:AAPL")
	if !ok {
		t.Fatal("expected hit")
	}
	if string(got) != `{"symbol":"AAPL"}` {
		t.Errorf("unexpected value %q", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

// TestRedisStore_Get_Miss はredis.Nilとその他のエラーがどちらもミスとして扱われることを検証します。
func TestRedisStore_Get_Miss(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		setup func(mock redismock.ClientMock)
	}{
		{
			name:  "key does not exist",
			setup: func(mock redismock.ClientMock) { mock.ExpectGet("market:rates:USD").RedisNil() },
		},
		{
			name:  "redis error",
			setup: func(mock redismock.ClientMock) { mock.ExpectGet("market:rates:USD").SetErr(errors.New("connection refused")) },
		},
		{
			name:  "empty value",
			setup: func(mock redismock.ClientMock) { mock.ExpectGet("market:rates:USD").SetVal("") },
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rdb, mock := redismock.NewClientMock()
			defer func() { _ = rdb.Close() }()
			tt.setup(mock)

			s := NewRedisStore(rdb, "market")
			if _, ok := s.Get(context.Background(), "rates:USD"); ok {
				t.Error("expected miss")
			}
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("unfulfilled mock expectations: %v", err)
			}
		})
	}
}

// TestRedisStore_Set はTTL付きで名前空間付きのキーに保存されることを検証します。
func TestRedisStore_Set(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	mock.ExpectSet("market:stock:AAPL", []byte(`{"symbol":"AAPL"}`), 5*time.Minute).SetVal("OK")

	s := NewRedisStore(rdb, "market")
	s.Set(context.Background(), "stock:AAPL", []byte(`{"symbol":"AAPL"}`), 5*time.Minute)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

// TestRedisStore_Set_ErrorIsSwallowed は保存失敗がベストエフォートとして無視されることを検証します。
func TestRedisStore_Set_ErrorIsSwallowed(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	mock.ExpectSet("market:k", []byte("v"), time.Minute).SetErr(errors.New("OOM"))

	s := NewRedisStore(rdb, "market")
	s.Set(context.Background(), "k", []byte("v"), time.Minute)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

// TestRedisStore_Purge は起動時のパージが名前空間内のキーをSCANとDELで削除することを検証します。
func TestRedisStore_Purge(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	mock.ExpectScan(0, "market:*", 200).SetVal([]string{"market:stock:AAPL", "market:rates:USD"}, 7)
	mock.ExpectDel("market:stock:AAPL", "market:rates:USD").SetVal(2)
	mock.ExpectScan(7, "market:*", 200).SetVal([]string{}, 0)

	s := NewRedisStore(rdb, "market")
	if err := s.Purge(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

// TestRedisStore_Purge_ScanError はSCANのエラーが呼び出し元に返されることを検証します。
func TestRedisStore_Purge_ScanError(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	expectedErr := errors.New("scan failed")
	mock.ExpectScan(0, "market:*", 200).SetErr(expectedErr)

	s := NewRedisStore(rdb, "market")
	err := s.Purge(context.Background())
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}
