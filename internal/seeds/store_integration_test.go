//go:build integration

package seeds

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gatewayperf/gatewayperf/internal/testutil"
)

func TestPostgresStore_RoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	ctx := context.Background()

	store, err := NewPostgresStore(ctx, testutil.RequireEnv(t, "TEST_DATABASE_URL"))
	if err != nil {
		t.Fatalf("NewPostgresStore() error = %v", err)
	}
	defer store.Close()

	unlock, err := testutil.AcquireDBLock(ctx, store.Pool())
	if err != nil {
		t.Fatalf("AcquireDBLock() error = %v", err)
	}
	defer unlock()

	scenario := testutil.UniqueID("seeds")
	defer store.Delete(ctx, scenario)

	if _, err := store.Load(ctx, scenario); !errors.Is(err, ErrResultNotFound) {
		t.Fatalf("Load() before Save error = %v, want ErrResultNotFound", err)
	}

	want := sampleResult()
	if err := store.Save(ctx, scenario, want); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	// Second save overwrites.
	if err := store.Save(ctx, scenario, want); err != nil {
		t.Fatalf("Save() again error = %v", err)
	}

	got, err := store.Load(ctx, scenario)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if diff := cmp.Diff(want.Users, got.Users); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}

	ids, err := store.UserIDs(ctx, scenario)
	if err != nil {
		t.Fatalf("UserIDs() error = %v", err)
	}
	if diff := cmp.Diff([]string{"u-1", "u-2"}, ids); diff != "" {
		t.Errorf("UserIDs() (-want +got):\n%s", diff)
	}
}

func TestRedisStore_RoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	ctx := context.Background()

	store, err := NewRedisStore(ctx, testutil.RequireEnv(t, "TEST_REDIS_URL"))
	if err != nil {
		t.Fatalf("NewRedisStore() error = %v", err)
	}
	defer store.Close()

	if err := testutil.FlushRedis(ctx, store.Client()); err != nil {
		t.Fatalf("FlushRedis() error = %v", err)
	}

	if _, err := store.Load(ctx, "missing"); !errors.Is(err, ErrResultNotFound) {
		t.Fatalf("Load() error = %v, want ErrResultNotFound", err)
	}

	want := sampleResult()
	if err := store.Save(ctx, "get_accounts", want); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if n, err := store.Client().Exists(ctx, store.Key("get_accounts")).Result(); err != nil || n != 1 {
		t.Fatalf("Exists(%s) = %d, %v", store.Key("get_accounts"), n, err)
	}

	got, err := store.Load(ctx, "get_accounts")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if diff := cmp.Diff(want.Users, got.Users); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}
