package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s
	RequestTimeout  time.Duration // per-request deadline

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	// Footer content
	Brand          string        // copyright brand (default: ecosystem.Ai)
	MenuFile       string        // optional YAML override of the built-in menu (empty = built-in)
	WatchMenuFile  bool          // reload when the menu file changes on disk
	ReloadInterval time.Duration // periodic menu reload (0 = disabled)
	Minify         bool          // minify rendered HTML

	// Fragment cache
	CacheTTL      time.Duration // TTL of rendered fragments in redis
	PruneInterval time.Duration // interval between stale fragment sweeps

	// Redis (optional: empty address disables persistence and caching)
	RedisAddr             string
	RedisUser             string
	RedisPassword         string
	RedisPasswordRequired bool
	RedisDB               int
	RedisDT               time.Duration // dial timeout
	RedisRT               time.Duration // read timeout
	RedisWT               time.Duration // write timeout
	RedisMaxWait          time.Duration // max wait between retries
	RedisPingTimeout      time.Duration // timeout for each ping attempt
	RedisPoolSize         int
	RedisConnectTimeout   time.Duration // total time to retry connecting
	RedisRetryInterval    time.Duration // initial wait between retries, doubled each attempt
	RedisWarnThreshold    int           // warn after this many attempts

	// Access restrictions
	AllowedHosts []string // optional, restrict admin endpoints to these Host headers
	AllowedCIDRS []string // optional, restrict admin endpoints to these IPs/CIDRs
	TrustProxy   bool     // true => trust X-Forwarded-For headers
	CORSOrigins  []string // origins allowed to embed the fragment ("*" = any)

	// Rate limiting of the public footer routes
	RateBurst     int
	RatePerMinute int
}

// RedisEnabled reports whether a Redis address was configured.
func (c *Config) RedisEnabled() bool {
	return c.RedisAddr != ""
}

func Load() *Config {
	cfg := &Config{
		// Server settings
		ListenPort:      getenv("FOOTER_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("FOOTER_SHUTDOWN_TIMEOUT", 5*time.Second),
		RequestTimeout:  mustDuration("FOOTER_REQUEST_TIMEOUT", 2*time.Second),

		// Logging
		LogLevel:  getenv("FOOTER_LOG_LEVEL", "info"),
		PrettyLog: mustBool("FOOTER_PRETTY_LOG", true),

		// Footer content
		Brand:          getenv("FOOTER_BRAND", "ecosystem.Ai"),
		MenuFile:       getenv("FOOTER_MENU_FILE", ""),
		WatchMenuFile:  mustBool("FOOTER_WATCH_MENU_FILE", true),
		ReloadInterval: mustDuration("FOOTER_RELOAD_INTERVAL", time.Hour),
		Minify:         mustBool("FOOTER_MINIFY", true),

		// Fragment cache
		CacheTTL:      mustDuration("FOOTER_CACHE_TTL", 24*time.Hour),
		PruneInterval: mustDuration("FOOTER_PRUNE_INTERVAL", time.Hour),

		// Redis settings
		RedisAddr:             getenv("FOOTER_REDIS_ADDR", ""),
		RedisUser:             getenv("FOOTER_REDIS_USERNAME", "default"),
		RedisPasswordRequired: mustBool("FOOTER_REDIS_PASSWORD_REQUIRED", false),
		RedisPassword:         getenv("FOOTER_REDIS_PASSWORD", ""),
		RedisDT:               mustDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisRT:               mustDuration("REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWT:               mustDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisMaxWait:          mustDuration("REDIS_MAX_WAIT", 10*time.Second),
		RedisPingTimeout:      mustDuration("REDIS_PING_TIMEOUT", 5*time.Second),
		RedisPoolSize:         getenvInt("REDIS_POOL_SIZE", 10),
		RedisConnectTimeout:   mustDuration("REDIS_CONNECT_TIMEOUT", 30*time.Second),
		RedisRetryInterval:    mustDuration("REDIS_RETRY_INTERVAL", 2*time.Second),
		RedisWarnThreshold:    getenvInt("REDIS_WARN_THRESHOLD", 3),

		// Access restrictions
		AllowedHosts: splitAndTrim(getenv("FOOTER_ALLOWED_HOSTS", "")),
		AllowedCIDRS: splitAndTrim(getenv("FOOTER_ALLOWED_CIDRS", "")),
		TrustProxy:   mustBool("FOOTER_TRUST_PROXY", false),
		CORSOrigins:  splitAndTrim(getenv("FOOTER_CORS_ORIGINS", "*")),

		// Rate limiting
		RateBurst:     getenvInt("FOOTER_RATE_BURST", 60),
		RatePerMinute: getenvInt("FOOTER_RATE_PER_MINUTE", 600),
	}

	if cfg.RedisEnabled() {
		// The DB number must be explicit once Redis is in play.
		cfg.RedisDB = requireEnvInt("FOOTER_REDIS_DB")

		if cfg.RedisPasswordRequired {
			cfg.RedisPassword = requireEnv("FOOTER_REDIS_PASSWORD")
		}
	}

	// Log config only in debug mode with redacted sensitive fields
	if cfg.LogLevel == "debug" {
		log.Printf("[DEBUG] cfg: %+v\n", cfg.Redacted())
	}

	return cfg
}

// Redacted returns a copy safe to print.
func (c *Config) Redacted() Config {
	cp := *c
	if cp.RedisPassword != "" {
		cp.RedisPassword = "***REDACTED***"
	}
	if cp.RedisUser != "" {
		cp.RedisUser = "***REDACTED***"
	}
	return cp
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func requireEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		panic(fmt.Sprintf("❌ FATAL: Required environment variable %s is not set", key))
	}
	return v
}

func requireEnvInt(key string) int {
	v := requireEnv(key)
	i, err := strconv.Atoi(v)
	if err != nil {
		panic(fmt.Sprintf("❌ FATAL: Invalid integer value for %s: %s", key, v))
	}
	return i
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.TrimSpace(part)
		// Remove surrounding quotes if present
		trimmed = strings.Trim(trimmed, `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
