package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

var ErrMissingRequired = errors.New("missing required configuration")

type Config struct {
	DBHost string `envconfig:"DB_HOST" default:"postgres"`
	DBPort int    `envconfig:"DB_PORT" default:"5432"`
	DBUser string `envconfig:"DB_USER" default:"horizonte"`
	DBPass string `envconfig:"DB_PASS" default:"password"`
	DBName string `envconfig:"DB_NAME" default:"horizonte"`

	NSQLookupd string `envconfig:"NSQ_LOOKUPD" default:"nsqlookupd:4161"`
	NSQDHost   string `envconfig:"NSQD_HOST" default:"nsqd:4150"`
	NSQDHTTP   string `envconfig:"NSQD_HTTP" default:"nsqd:4151"`

	EnableAPI       bool `envconfig:"ENABLE_API" default:"true"`
	EnableCollector bool `envconfig:"ENABLE_COLLECTOR" default:"true"`

	// FeedURLs are the public agro-news RSS sources walked by a collect
	// run, in order.
	FeedURLs           []string `envconfig:"FEED_URLS" default:"https://www.embrapa.br/busca-de-noticias/-/busca/feed/rss/1/noticias,https://www.gov.br/agricultura/pt-br/assuntos/noticias/@@RSS,https://valor.globo.com/agronegocios/rss.xml,https://revistagloborural.globo.com/rss/ultimas/feed.xml,https://www.canalrural.com.br/feed/,https://www.noticiasagricolas.com.br/rss,https://www.agrolink.com.br/rss/ultimas.xml"`
	FeedTimeoutSeconds int      `envconfig:"FEED_TIMEOUT_SECONDS" default:"10"`
	CollectMaxItems    int      `envconfig:"COLLECT_MAX_ITEMS" default:"48"`

	MigrationPath string `envconfig:"MIGRATION_PATH" default:"file://migrations"`
	ServerPort    int    `envconfig:"SERVER_PORT" default:"8081"`

	BootstrapRetryAttempts     int `envconfig:"BOOTSTRAP_RETRY_ATTEMPTS" default:"10"`
	BootstrapRetryDelaySeconds int `envconfig:"BOOTSTRAP_RETRY_DELAY_SECONDS" default:"2"`
}

func Load() (*Config, error) {
	// Env vars may come from the shell instead; a missing .env file is
	// not an error.
	_ = godotenv.Load(".env")

	cwd, _ := os.Getwd()
	_ = godotenv.Load(filepath.Join(cwd, "../../.env"))

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.DBHost == "" {
		return fmt.Errorf("%w: DB_HOST", ErrMissingRequired)
	}
	if c.DBUser == "" {
		return fmt.Errorf("%w: DB_USER", ErrMissingRequired)
	}
	if c.DBName == "" {
		return fmt.Errorf("%w: DB_NAME", ErrMissingRequired)
	}
	if len(c.FeedURLs) == 0 {
		return fmt.Errorf("%w: FEED_URLS", ErrMissingRequired)
	}
	return nil
}
