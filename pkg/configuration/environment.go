package configuration

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/apper-apps/india-website-drive/pkg/logging"

	"github.com/caarlos0/env/v11"
	"github.com/iota-uz/utils/fs"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const Production = "production"

var singleton = sync.OnceValue(func() *Configuration {
	c := &Configuration{}
	if err := c.load([]string{".env", ".env.local"}); err != nil {
		c.Unload()
		panic(err)
	}
	return c
})

func LoadEnv(envFiles []string) (int, error) {
	existingFiles := make([]string, 0, len(envFiles))
	for _, file := range envFiles {
		if fs.FileExists(file) {
			existingFiles = append(existingFiles, file)
		}
	}

	if len(existingFiles) == 0 {
		return 0, nil
	}

	return len(existingFiles), godotenv.Load(existingFiles...)
}

type DatabaseOptions struct {
	Opts     string `env:"-"`
	Name     string `env:"DB_NAME" envDefault:"india_website"`
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     string `env:"DB_PORT" envDefault:"5432"`
	User     string `env:"DB_USER" envDefault:"postgres"`
	Password string `env:"DB_PASSWORD" envDefault:"postgres"`
}

func (d *DatabaseOptions) ConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s dbname=%s password=%s sslmode=disable",
		d.Host, d.Port, d.User, d.Name, d.Password,
	)
}

type OpenTelemetryOptions struct {
	Enabled     bool   `env:"OTEL_ENABLED" envDefault:"false"`
	TempoURL    string `env:"OTEL_TEMPO_URL" envDefault:"localhost:4318"`
	ServiceName string `env:"OTEL_SERVICE_NAME" envDefault:"india-website"`
}

type PrometheusOptions struct {
	Enabled bool   `env:"PROMETHEUS_METRICS_ENABLED" envDefault:"false"`
	Path    string `env:"PROMETHEUS_METRICS_PATH" envDefault:"/debug/prometheus"`
}

type RateLimitOptions struct {
	Enabled   bool   `env:"RATE_LIMIT_ENABLED" envDefault:"true"`
	GlobalRPS int    `env:"RATE_LIMIT_GLOBAL_RPS" envDefault:"100"`
	Storage   string `env:"RATE_LIMIT_STORAGE" envDefault:"memory"` // memory or redis
	RedisURL  string `env:"RATE_LIMIT_REDIS_URL"`
}

// Validate checks the rate limit configuration for errors
func (r *RateLimitOptions) Validate() error {
	if r.GlobalRPS < 0 {
		return fmt.Errorf("rate limit GlobalRPS must be non-negative, got %d", r.GlobalRPS)
	}
	if r.GlobalRPS > 1000000 {
		return fmt.Errorf("rate limit GlobalRPS too high, maximum is 1,000,000, got %d", r.GlobalRPS)
	}
	if r.Storage != "memory" && r.Storage != "redis" {
		return fmt.Errorf("rate limit Storage must be 'memory' or 'redis', got '%s'", r.Storage)
	}
	if r.Storage == "redis" && r.RedisURL == "" {
		return fmt.Errorf("rate limit RedisURL is required when Storage is 'redis'")
	}
	return nil
}

type OrgChartOptions struct {
	// Optional override of the embedded organization structure (.yaml, .yml or .json).
	StructurePath   string        `env:"ORG_CHART_STRUCTURE_PATH" envDefault:""`
	ViewStorage     string        `env:"ORG_CHART_VIEW_STORAGE" envDefault:"memory"` // memory or redis
	ViewTTL         time.Duration `env:"ORG_CHART_VIEW_TTL" envDefault:"30m"`
	JanitorInterval time.Duration `env:"ORG_CHART_JANITOR_INTERVAL" envDefault:"1m"`
}

func (o *OrgChartOptions) Validate() error {
	storage := strings.ToLower(strings.TrimSpace(o.ViewStorage))
	if storage == "" {
		storage = "memory"
	}
	switch storage {
	case "memory", "redis":
	default:
		return fmt.Errorf("invalid ORG_CHART_VIEW_STORAGE=%q (expected memory|redis)", o.ViewStorage)
	}
	o.ViewStorage = storage
	if o.ViewTTL <= 0 {
		return fmt.Errorf("invalid ORG_CHART_VIEW_TTL=%s (must be positive)", o.ViewTTL)
	}
	if o.JanitorInterval <= 0 {
		return fmt.Errorf("invalid ORG_CHART_JANITOR_INTERVAL=%s (must be positive)", o.JanitorInterval)
	}
	return nil
}

type ContactOptions struct {
	Storage string `env:"CONTACT_STORAGE" envDefault:"memory"` // memory or postgres
}

func (o *ContactOptions) Validate() error {
	storage := strings.ToLower(strings.TrimSpace(o.Storage))
	if storage == "" {
		storage = "memory"
	}
	switch storage {
	case "memory", "postgres":
	default:
		return fmt.Errorf("invalid CONTACT_STORAGE=%q (expected memory|postgres)", o.Storage)
	}
	o.Storage = storage
	return nil
}

type WebsiteOptions struct {
	HeroSliderInterval time.Duration `env:"HERO_SLIDER_INTERVAL" envDefault:"5s"`
	BlogPageSize       int           `env:"BLOG_PAGE_SIZE" envDefault:"6"`
	HomePhotoLimit     int           `env:"HOME_PHOTO_LIMIT" envDefault:"6"`
}

type Configuration struct {
	Database      DatabaseOptions
	OpenTelemetry OpenTelemetryOptions
	Prometheus    PrometheusOptions
	RateLimit     RateLimitOptions
	OrgChart      OrgChartOptions
	Contact       ContactOptions
	Website       WebsiteOptions

	RedisURL           string `env:"REDIS_URL" envDefault:"localhost:6379"`
	ServerPort         int    `env:"PORT" envDefault:"3200"`
	GoAppEnvironment   string `env:"GO_APP_ENV" envDefault:"development"`
	SocketAddress      string `env:"-"`
	Domain             string `env:"DOMAIN" envDefault:"localhost"`
	Origin             string `env:"ORIGIN" envDefault:"http://localhost:3200"`
	CorsOrigins        string `env:"CORS_ORIGINS" envDefault:"http://localhost:3000"`
	SupportedLanguages string `env:"SUPPORTED_LANGUAGES" envDefault:"en,hi"`
	LogLevel           string `env:"LOG_LEVEL" envDefault:"error"`
	LogPath            string `env:"LOG_PATH" envDefault:"./logs/app.log"`
	// Looked up on every request; a random uuidv4 is generated when absent.
	RequestIDHeader string `env:"REQUEST_ID_HEADER" envDefault:"X-Request-ID"`
	// Looked up on every request; request.RemoteAddr is used when absent.
	RealIPHeader string `env:"REAL_IP_HEADER" envDefault:"X-Real-IP"`

	logFile *os.File
	logger  *logrus.Logger
}

func (c *Configuration) Logger() *logrus.Logger {
	return c.logger
}

func (c *Configuration) LogrusLogLevel() logrus.Level {
	switch c.LogLevel {
	case "silent":
		return logrus.PanicLevel
	case "error":
		return logrus.ErrorLevel
	case "warn":
		return logrus.WarnLevel
	case "info":
		return logrus.InfoLevel
	case "debug":
		return logrus.DebugLevel
	default:
		return logrus.ErrorLevel
	}
}

func (c *Configuration) Scheme() string {
	if c.GoAppEnvironment == Production { // assume 'https' on production mode
		return "https"
	}
	return "http"
}

// Languages returns the SUPPORTED_LANGUAGES codes in declaration order.
func (c *Configuration) Languages() []string {
	return splitList(c.SupportedLanguages)
}

// AllowedOrigins returns the CORS_ORIGINS entries.
func (c *Configuration) AllowedOrigins() []string {
	return splitList(c.CorsOrigins)
}

func Use() *Configuration {
	return singleton()
}

func (c *Configuration) load(envFiles []string) error {
	n, err := LoadEnv(envFiles)
	if err != nil {
		return err
	}
	if n == 0 {
		wd, _ := os.Getwd()
		log.Println("No .env files found. Tried:")
		for _, file := range envFiles {
			log.Println(filepath.Join(wd, file))
		}
	}
	if err := env.Parse(c); err != nil {
		return err
	}
	if err := c.validate(); err != nil {
		return err
	}

	f, logger, err := logging.FileLogger(c.LogrusLogLevel(), c.LogPath)
	if err != nil {
		return err
	}
	c.logFile = f
	c.logger = logger

	c.Database.Opts = c.Database.ConnectionString()
	if c.GoAppEnvironment == Production {
		c.SocketAddress = fmt.Sprintf(":%d", c.ServerPort)
	} else {
		c.SocketAddress = fmt.Sprintf("localhost:%d", c.ServerPort)
	}

	// Keep Origin in sync with PORT unless it was set explicitly.
	if os.Getenv("ORIGIN") == "" {
		if c.GoAppEnvironment == "development" {
			c.Origin = fmt.Sprintf("%s://%s:%d", c.Scheme(), c.Domain, c.ServerPort)
		} else {
			c.Origin = fmt.Sprintf("%s://%s", c.Scheme(), c.Domain)
		}
	}

	return nil
}

func (c *Configuration) validate() error {
	if err := c.RateLimit.Validate(); err != nil {
		return fmt.Errorf("rate limit configuration error: %w", err)
	}
	if err := c.OrgChart.Validate(); err != nil {
		return err
	}
	if err := c.Contact.Validate(); err != nil {
		return err
	}
	if c.Website.BlogPageSize <= 0 {
		return fmt.Errorf("invalid BLOG_PAGE_SIZE=%d (must be positive)", c.Website.BlogPageSize)
	}
	if c.Website.HomePhotoLimit < 0 {
		return fmt.Errorf("invalid HOME_PHOTO_LIMIT=%d (must be non-negative)", c.Website.HomePhotoLimit)
	}
	if len(c.Languages()) == 0 {
		return fmt.Errorf("invalid SUPPORTED_LANGUAGES=%q (at least one language is required)", c.SupportedLanguages)
	}
	return nil
}

func splitList(raw string) []string {
	parts := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\n' || r == '\t'
	})
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Unload handles a graceful shutdown.
func (c *Configuration) Unload() {
	if c.logFile != nil {
		if err := c.logFile.Close(); err != nil {
			log.Printf("Failed to close log file: %v", err)
		}
	}
}
