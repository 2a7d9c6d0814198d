package redis

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	"github.com/ecosystem-ai/footer/internal/logger"
)

func testOptions(addr string) ConnectOptions {
	return ConnectOptions{
		Addr:           addr,
		ConnectTimeout: 300 * time.Millisecond,
		RetryInterval:  20 * time.Millisecond,
		MaxWait:        50 * time.Millisecond,
		PingTimeout:    50 * time.Millisecond,
		WarnThreshold:  1,
	}
}

func TestNewConnects(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := New(context.Background(), testOptions(mr.Addr()), logger.Nop())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer func() { _ = client.Close() }()

	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Errorf("Ping() error = %v", err)
	}
}

func TestNewGivesUp(t *testing.T) {
	// Reserve a port and close it so nothing listens there.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	addr := ln.Addr().String()
	_ = ln.Close()

	start := time.Now()
	if _, err := New(context.Background(), testOptions(addr), logger.Nop()); err == nil {
		t.Fatal("New() should fail when redis is unreachable")
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Errorf("New() took %v, should stop near ConnectTimeout", elapsed)
	}
}

func TestConnectOptionsValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(o *ConnectOptions)
	}{
		{"empty addr", func(o *ConnectOptions) { o.Addr = "" }},
		{"zero connect timeout", func(o *ConnectOptions) { o.ConnectTimeout = 0 }},
		{"zero retry interval", func(o *ConnectOptions) { o.RetryInterval = 0 }},
		{"zero max wait", func(o *ConnectOptions) { o.MaxWait = 0 }},
		{"zero ping timeout", func(o *ConnectOptions) { o.PingTimeout = 0 }},
		{"negative warn threshold", func(o *ConnectOptions) { o.WarnThreshold = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := testOptions("localhost:6379")
			tt.mutate(&opts)
			if err := opts.validate(); err == nil {
				t.Error("validate() should fail")
			}
		})
	}
}
