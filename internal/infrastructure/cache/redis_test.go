package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestOpenRedis_SelectsDBAndLogs(t *testing.T) {
	s := miniredis.RunT(t)
	core, logs := observer.New(zap.InfoLevel)

	c, err := OpenRedis(s.Addr(), 2, zap.New(core))
	if err != nil {
		t.Fatalf("OpenRedis returned error: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })

	if got := c.Options().DB; got != 2 {
		t.Fatalf("client DB = %d, want 2", got)
	}
	if logs.FilterMessage("redis: connected").Len() != 1 {
		t.Fatalf("expected a connected log line, got %v", logs.All())
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := c.Set(ctx, "k", "v", 0).Err(); err != nil {
		t.Fatalf("SET err: %v", err)
	}
	if !s.DB(2).Exists("k") || s.DB(0).Exists("k") {
		t.Fatalf("key not isolated in DB 2")
	}
}

func TestOpenRedis_Failure(t *testing.T) {
	if _, err := OpenRedis("not-a-real-host:6379", 0, nil); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestPing(t *testing.T) {
	s := miniredis.RunT(t)
	c, err := OpenRedis(s.Addr(), 0, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	ping := Ping(c)
	if err := ping(context.Background()); err != nil {
		t.Fatalf("ping: %v", err)
	}
	s.Close()
	if err := ping(context.Background()); err == nil {
		t.Fatalf("ping after shutdown should fail")
	}
}
