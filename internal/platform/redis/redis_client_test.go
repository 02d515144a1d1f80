package redis

import (
	"context"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func TestConfigAddr(t *testing.T) {
	cfg := Config{Host: "localhost", Port: "6379"}
	if got := cfg.Addr(); got != "localhost:6379" {
		t.Errorf("Addr() = %q, want %q", got, "localhost:6379")
	}
}

func TestNewRedisClient_MissingHost(t *testing.T) {
	log, _ := test.NewNullLogger()

	rdb, err := NewRedisClient(context.Background(), Config{Port: "6379"}, log)
	if err == nil {
		t.Fatal("expected error for missing host")
	}
	if rdb != nil {
		t.Error("expected nil client")
	}
}

func TestNewRedisClient_PingFailure(t *testing.T) {
	log, hook := test.NewNullLogger()

	// Port 1 on loopback refuses connections.
	cfg := Config{Host: "127.0.0.1", Port: "1", DialTimeout: 200 * time.Millisecond}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	rdb, err := NewRedisClient(ctx, cfg, log)
	if err == nil {
		t.Fatal("expected ping error")
	}
	if rdb != nil {
		t.Error("expected nil client")
	}
	entry := hook.LastEntry()
	if entry == nil || entry.Level != logrus.ErrorLevel {
		t.Fatalf("expected an error log entry, got %+v", entry)
	}
	if entry.Data["address"] != "127.0.0.1:1" {
		t.Errorf("unexpected address field: %v", entry.Data["address"])
	}
}
