package integration

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/seu-repo/bss-ve/internal/adapter/cache"
	"github.com/seu-repo/bss-ve/internal/domain"
)

func TestRedisCache_SetGetDelete(t *testing.T) {
	env := SetupTestEnvironment(t)
	FlushRedis(t, env.Redis)

	ctx := context.Background()

	if err := env.Cache.Set(ctx, "test:key", "test-value", time.Minute); err != nil {
		t.Fatalf("Failed to set key: %v", err)
	}

	val, err := env.Cache.Get(ctx, "test:key")
	if err != nil {
		t.Fatalf("Failed to get key: %v", err)
	}
	if val != "test-value" {
		t.Errorf("Expected 'test-value', got '%s'", val)
	}

	if err := env.Cache.Delete(ctx, "test:key"); err != nil {
		t.Fatalf("Failed to delete key: %v", err)
	}
	if _, err := env.Cache.Get(ctx, "test:key"); err == nil {
		t.Error("Expected error after delete")
	}
}

func TestRedisCache_Expiration(t *testing.T) {
	env := SetupTestEnvironment(t)
	FlushRedis(t, env.Redis)

	ctx := context.Background()

	if err := env.Cache.Set(ctx, "test:expiring", "value", 100*time.Millisecond); err != nil {
		t.Fatalf("Failed to set key: %v", err)
	}

	if _, err := env.Cache.Get(ctx, "test:expiring"); err != nil {
		t.Fatalf("Key should exist: %v", err)
	}

	time.Sleep(150 * time.Millisecond)

	if _, err := env.Cache.Get(ctx, "test:expiring"); err == nil {
		t.Error("Key should have expired")
	}
}

// A serialized card must round-trip through the cache the way the registry
// service stores it.
func TestRedisCache_CardRoundTrip(t *testing.T) {
	env := SetupTestEnvironment(t)
	FlushRedis(t, env.Redis)

	ctx := context.Background()

	card := domain.RFIDCard{ID: 7, UserID: 1, RFIDCode: "CARD-RT", Status: "active"}
	data, err := json.Marshal(card)
	if err != nil {
		t.Fatalf("Failed to marshal card: %v", err)
	}

	if err := env.Cache.Set(ctx, "rfid:code:CARD-RT", data, 5*time.Minute); err != nil {
		t.Fatalf("Failed to cache card: %v", err)
	}

	raw, err := env.Cache.Get(ctx, "rfid:code:CARD-RT")
	if err != nil {
		t.Fatalf("Failed to read cached card: %v", err)
	}

	var decoded domain.RFIDCard
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		t.Fatalf("Failed to decode cached card: %v", err)
	}
	if decoded.RFIDCode != "CARD-RT" || decoded.UserID != 1 {
		t.Errorf("Cached card does not match original: %+v", decoded)
	}
}

// LocalCache backs the service when Redis is unavailable, so it must honor
// the same contract.
func TestLocalCache_SameContract(t *testing.T) {
	local := cache.NewLocalCache(time.Minute, zap.NewNop())
	defer local.Close()

	ctx := context.Background()

	if err := local.Set(ctx, "k", "v", time.Minute); err != nil {
		t.Fatalf("Failed to set key: %v", err)
	}
	val, err := local.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Failed to get key: %v", err)
	}
	if val != "v" {
		t.Errorf("Expected 'v', got '%s'", val)
	}

	if err := local.Set(ctx, "short", "v", 50*time.Millisecond); err != nil {
		t.Fatalf("Failed to set key: %v", err)
	}
	time.Sleep(80 * time.Millisecond)
	if _, err := local.Get(ctx, "short"); err == nil {
		t.Error("Expected expired key to be gone")
	}

	if err := local.Delete(ctx, "k"); err != nil {
		t.Fatalf("Failed to delete key: %v", err)
	}
	if _, err := local.Get(ctx, "k"); err == nil {
		t.Error("Expected error after delete")
	}
}
