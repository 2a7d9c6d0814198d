package deps

import (
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ecosystem-ai/footer/internal/catalog"
	"github.com/ecosystem-ai/footer/internal/logger"
	"github.com/ecosystem-ai/footer/internal/metrics"
	"github.com/ecosystem-ai/footer/internal/render"
	redisstore "github.com/ecosystem-ai/footer/internal/store/redis"
)

type Deps struct {
	Logger        logger.Logger
	StartTime     time.Time
	Version       string
	Commit        string
	BuildDate     string
	GoVersion     string
	TimeNow       func() time.Time  // for testing, defaults to time.Now
	AllowedHosts  []string          // Host headers allowed to access admin endpoints
	AllowedCIDRS  []string          // IPs allowed to access readyz/metrics/reload endpoints
	TrustProxy    bool              // true if running behind a trusted reverse proxy (e.g., cloudflared)
	CORSOrigins   []string          // origins allowed to fetch the fragment
	RateBurst     int               // per-IP burst on public footer routes
	RatePerMinute int               // per-IP refill on public footer routes
	MenuFile      string            // optional YAML menu file (empty = built-in menu)
	Catalog       *catalog.Catalog  // live footer snapshot
	Renderer      *render.Renderer  // footer renderer
	Store         *redisstore.Store // fragment cache + snapshot persistence (nil if redis disabled)
	RedisClient   *redis.Client     // Redis client connection (nil if redis disabled)
	CacheTTL      time.Duration     // TTL of cached fragments
	Metrics       *metrics.Recorder // prometheus recorder (nil-safe)
	ReloadTrigger chan struct{}     // Channel to trigger manual menu reload
}

// Now returns the injected clock, falling back to time.Now.
func (d Deps) Now() time.Time {
	if d.TimeNow != nil {
		return d.TimeNow()
	}
	return time.Now()
}
