package config

import (
	"reflect"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("FOOTER_REDIS_ADDR", "")
	t.Setenv("FOOTER_MENU_FILE", "")
	t.Setenv("FOOTER_BRAND", "")

	cfg := Load()

	if cfg.ListenPort != ":8080" {
		t.Errorf("ListenPort = %q, want :8080", cfg.ListenPort)
	}
	if cfg.Brand != "ecosystem.Ai" {
		t.Errorf("Brand = %q, want ecosystem.Ai", cfg.Brand)
	}
	if cfg.MenuFile != "" {
		t.Errorf("MenuFile = %q, want empty", cfg.MenuFile)
	}
	if cfg.RedisEnabled() {
		t.Error("redis should be disabled without FOOTER_REDIS_ADDR")
	}
	if !reflect.DeepEqual(cfg.CORSOrigins, []string{"*"}) {
		t.Errorf("CORSOrigins = %v, want [*]", cfg.CORSOrigins)
	}
	if cfg.CacheTTL != 24*time.Hour {
		t.Errorf("CacheTTL = %v, want 24h", cfg.CacheTTL)
	}
}

func TestLoadRedis(t *testing.T) {
	t.Setenv("FOOTER_REDIS_ADDR", "localhost:6379")
	t.Setenv("FOOTER_REDIS_DB", "2")
	t.Setenv("FOOTER_REDIS_PASSWORD_REQUIRED", "true")
	t.Setenv("FOOTER_REDIS_PASSWORD", "s3cret")

	cfg := Load()

	if !cfg.RedisEnabled() {
		t.Fatal("redis should be enabled")
	}
	if cfg.RedisDB != 2 {
		t.Errorf("RedisDB = %d, want 2", cfg.RedisDB)
	}
	if cfg.RedisPassword != "s3cret" {
		t.Errorf("RedisPassword = %q", cfg.RedisPassword)
	}
	if red := cfg.Redacted(); red.RedisPassword != "***REDACTED***" || cfg.RedisPassword != "s3cret" {
		t.Error("Redacted() should mask the copy only")
	}
}

func TestLoadRedisRequiresDB(t *testing.T) {
	t.Setenv("FOOTER_REDIS_ADDR", "localhost:6379")
	t.Setenv("FOOTER_REDIS_DB", "")

	defer func() {
		if r := recover(); r == nil {
			t.Error("Load() should panic without FOOTER_REDIS_DB")
		}
	}()
	Load()
}

func TestLoadRedisRequiresPassword(t *testing.T) {
	t.Setenv("FOOTER_REDIS_ADDR", "localhost:6379")
	t.Setenv("FOOTER_REDIS_DB", "0")
	t.Setenv("FOOTER_REDIS_PASSWORD_REQUIRED", "true")
	t.Setenv("FOOTER_REDIS_PASSWORD", "")

	defer func() {
		if r := recover(); r == nil {
			t.Error("Load() should panic when a required password is missing")
		}
	}()
	Load()
}

func TestRequireEnvInt(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		expected  int
		wantPanic bool
	}{
		{name: "valid integer", value: "42", expected: 42},
		{name: "invalid integer", value: "not_a_number", wantPanic: true},
		{name: "missing", value: "", wantPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_INT", tt.value)

			if tt.wantPanic {
				defer func() {
					if r := recover(); r == nil {
						t.Errorf("requireEnvInt() should have panicked")
					}
				}()
			}

			if got := requireEnvInt("TEST_INT"); !tt.wantPanic && got != tt.expected {
				t.Errorf("requireEnvInt() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestHelpersFallBack(t *testing.T) {
	t.Setenv("TEST_BOOL", "maybe")
	t.Setenv("TEST_DURATION", "soon")
	t.Setenv("TEST_INT_SOFT", "x")

	if got := mustBool("TEST_BOOL", true); !got {
		t.Error("mustBool() should fall back on invalid input")
	}
	if got := mustDuration("TEST_DURATION", 3*time.Second); got != 3*time.Second {
		t.Errorf("mustDuration() = %v, want 3s", got)
	}
	if got := getenvInt("TEST_INT_SOFT", 7); got != 7 {
		t.Errorf("getenvInt() = %d, want 7", got)
	}
}

func TestSplitAndTrim(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"a.example.com", []string{"a.example.com"}},
		{` "10.0.0.0/8" , '127.0.0.1',, `, []string{"10.0.0.0/8", "127.0.0.1"}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := splitAndTrim(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitAndTrim(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
