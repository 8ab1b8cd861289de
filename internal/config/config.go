package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure. It contains
// settings for the hunt itself, the lookup tiers, the keyword sources, the
// report outputs, and the optional run-history database.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// Hunt controls which domains a run checks and how fast.
	Hunt struct {
		// TLDs are the top-level domains checked per base label, with leading dots
		TLDs []string `env:"HUNT_TLDS" env-default:".com,.app,.ai,.so" yaml:"tlds"`
		// Affixes are appended and prepended to every base label to form variations
		Affixes []string `env:"HUNT_AFFIXES" env-default:"ai,labs,cloud,tech" yaml:"affixes"`
		// BatchSize is the number of labels checked per daily batch
		BatchSize int `env:"HUNT_BATCH_SIZE" env-default:"200" yaml:"batchSize"`
		// Concurrency is the number of parallel check workers
		Concurrency int `env:"HUNT_CONCURRENCY" env-default:"2" yaml:"concurrency"`
		// CheckDelay is how long each worker pauses after finishing a check
		CheckDelay time.Duration `env:"HUNT_CHECK_DELAY" env-default:"1200ms" yaml:"checkDelay"`
	} `yaml:"hunt"`

	// RDAP configures the primary lookup tier.
	RDAP struct {
		// BaseURL is the RDAP bootstrap endpoint queried per domain
		BaseURL string `env:"RDAP_BASE_URL" env-default:"https://rdap.org/domain/" yaml:"baseUrl"`
		// Timeout bounds a single RDAP request
		Timeout time.Duration `env:"RDAP_TIMEOUT" env-default:"10s" yaml:"timeout"`
	} `yaml:"rdap"`

	// DNS configures the fallback lookup tier.
	DNS struct {
		// Servers are the resolvers queried for NS records, host:port; empty
		// means the system resolvers from /etc/resolv.conf
		Servers []string `env:"DNS_SERVERS" yaml:"servers"`
		// Timeout bounds a single DNS exchange
		Timeout time.Duration `env:"DNS_TIMEOUT" env-default:"5s" yaml:"timeout"`
	} `yaml:"dns"`

	// Sources configures where candidate names come from.
	Sources struct {
		// Buzzwords are always part of the universe, independent of scraping
		Buzzwords []string `env:"SOURCES_BUZZWORDS" env-default:"Optimus,FSD,Grok,Sora,Claude,Neuralink,xAI,Starlink" yaml:"buzzwords"`
		// FetchTimeout bounds a single source fetch
		FetchTimeout time.Duration `env:"SOURCES_FETCH_TIMEOUT" env-default:"30s" yaml:"fetchTimeout"`
		// RequestsPerSecond rate-limits scraping requests per source
		RequestsPerSecond float64 `env:"SOURCES_REQUESTS_PER_SECOND" env-default:"1" yaml:"requestsPerSecond"`
		// GitHubTrending toggles the GitHub trending source
		GitHubTrending bool `env:"SOURCES_GITHUB_TRENDING" env-default:"true" yaml:"githubTrending"`
		// YCombinator toggles the Y Combinator directory source
		YCombinator bool `env:"SOURCES_YCOMBINATOR" env-default:"true" yaml:"ycombinator"`
		// WikiPages are Wikipedia listing pages scraped for company names
		WikiPages []WikiPage `yaml:"wikiPages"`
	} `yaml:"sources"`

	// Report configures where results end up.
	Report struct {
		// CSVPath is where the CSV report is written
		CSVPath string `env:"REPORT_CSV_PATH" env-default:"results.csv" yaml:"csvPath"`
		// MaxEmailGroups caps how many groups the mail and webhook bodies list
		MaxEmailGroups int `env:"REPORT_MAX_EMAIL_GROUPS" env-default:"30" yaml:"maxEmailGroups"`
	} `yaml:"report"`

	// Notify configures the outbound notifiers. A notifier is active when its
	// address is set.
	Notify struct {
		// WebhookURL is a Slack-compatible incoming webhook
		WebhookURL string `env:"NOTIFY_WEBHOOK_URL" env-default:"" yaml:"webhookUrl"`

		SMTP struct {
			// Host is the SMTP server; empty disables email
			Host string `env:"SMTP_HOST" env-default:"" yaml:"host"`
			// Port is the SMTP port, implicit TLS
			Port int `env:"SMTP_PORT" env-default:"465" yaml:"port"`
			// Username authenticates against the SMTP server
			Username string `env:"EMAIL_USER" env-default:"" yaml:"username"`
			// Password authenticates against the SMTP server
			Password string `env:"EMAIL_PASS" env-default:"" yaml:"password"`
			// From is the sender address; defaults to Username when empty
			From string `env:"SMTP_FROM" env-default:"" yaml:"from"`
			// To are the recipient addresses
			To []string `env:"SMTP_TO" yaml:"to"`
		} `yaml:"smtp"`
	} `yaml:"notify"`

	// Database contains the optional run-history database configuration.
	Database struct {
		// Enabled toggles run persistence
		Enabled bool `env:"DATABASE_ENABLED" env-default:"false" yaml:"enabled"`
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"hunter" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Metrics configures the optional Prometheus scrape endpoint.
	Metrics struct {
		// Addr is the listen address; empty disables the endpoint
		Addr string `env:"METRICS_ADDR" env-default:"" yaml:"addr"`
	} `yaml:"metrics"`
}

// WikiPage describes one Wikipedia listing page scraped for names.
type WikiPage struct {
	// Name identifies the source in logs
	Name string `yaml:"name"`
	// URL is the page to fetch
	URL string `yaml:"url"`
	// TableSelector picks the listing tables; empty means "table.wikitable"
	TableSelector string `yaml:"tableSelector"`
	// CellIndex is the zero-based column carrying the name
	CellIndex int `yaml:"cellIndex"`
	// Limit caps the names taken from this page; 0 means unlimited
	Limit int `yaml:"limit"`
}

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
