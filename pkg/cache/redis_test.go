package cache

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestRedis(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	c := NewRedisCacheFromClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}), DefaultRedisPrefix)
	t.Cleanup(func() { c.Close() })
	return c, mr
}

func TestRedisCache(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestRedis(t)

	if err := c.Ping(ctx); err != nil {
		t.Fatalf("Ping() error: %v", err)
	}

	data, hit, err := c.Get(ctx, "missing")
	if err != nil {
		t.Fatalf("Get(missing) error: %v", err)
	}
	if hit || data != nil {
		t.Errorf("Get(missing) = %q, %v, want miss", data, hit)
	}

	want := []byte("<svg></svg>")
	if err := c.Set(ctx, "artifact:abc:svg", want, time.Hour); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	got, hit, err := c.Get(ctx, "artifact:abc:svg")
	if err != nil || !hit {
		t.Fatalf("Get() = %v, %v, want hit", hit, err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("Get() = %q, want %q", got, want)
	}

	if !mr.Exists(DefaultRedisPrefix + "artifact:abc:svg") {
		t.Errorf("key not stored under %q prefix: %v", DefaultRedisPrefix, mr.Keys())
	}

	if err := c.Delete(ctx, "artifact:abc:svg"); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "artifact:abc:svg"); hit {
		t.Error("entry survived Delete()")
	}
	if err := c.Delete(ctx, "artifact:abc:svg"); err != nil {
		t.Errorf("Delete(missing) error: %v", err)
	}
}

func TestRedisCacheTTL(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestRedis(t)

	if err := c.Set(ctx, "short", []byte("x"), time.Minute); err != nil {
		t.Fatal(err)
	}
	if got := mr.TTL(DefaultRedisPrefix + "short"); got != time.Minute {
		t.Errorf("TTL = %v, want %v", got, time.Minute)
	}

	if err := c.Set(ctx, "forever", []byte("y"), -time.Second); err != nil {
		t.Fatal(err)
	}
	if got := mr.TTL(DefaultRedisPrefix + "forever"); got != 0 {
		t.Errorf("negative ttl stored as %v, want no expiry", got)
	}

	mr.FastForward(2 * time.Minute)

	if _, hit, err := c.Get(ctx, "short"); err != nil || hit {
		t.Errorf("Get(expired) = %v, %v, want miss", hit, err)
	}
	if _, hit, err := c.Get(ctx, "forever"); err != nil || !hit {
		t.Errorf("Get(no expiry) = %v, %v, want hit", hit, err)
	}
}

func TestRedisCachePrefix(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	a := NewRedisCacheFromClient(client, "a:")
	b := NewRedisCacheFromClient(client, "b:")
	t.Cleanup(func() { client.Close() })

	if err := a.Set(ctx, "k", []byte("from a"), 0); err != nil {
		t.Fatal(err)
	}
	if _, hit, _ := b.Get(ctx, "k"); hit {
		t.Error("prefixes should isolate caches sharing one server")
	}
	if got, err := mr.Get("a:k"); err != nil || got != "from a" {
		t.Errorf("raw a:k = %q, %v", got, err)
	}
}

func TestRedisCacheServerError(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestRedis(t)

	mr.SetError("ERR maintenance")
	if _, _, err := c.Get(ctx, "k"); err == nil {
		t.Error("Get() should surface server errors")
	}
	if err := c.Set(ctx, "k", []byte("v"), time.Minute); err == nil {
		t.Error("Set() should surface server errors")
	}

	mr.SetError("")
	if err := c.Set(ctx, "k", []byte("v"), time.Minute); err != nil {
		t.Errorf("Set() after recovery error: %v", err)
	}
}

func TestRedisCacheServerGone(t *testing.T) {
	c, mr := newTestRedis(t)
	mr.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := c.Ping(ctx); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Ping() error = %v, want ErrUnavailable", err)
	}
}
