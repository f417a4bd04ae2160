package config

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"

	"github.com/ramilexe/bookstore-service/pkg/logger"
	"github.com/ramilexe/bookstore-service/pkg/mongodb"
)

type Server struct {
	Host         string        `yaml:"host" envconfig:"HTTP_HOST" default:"0.0.0.0"`
	Port         string        `yaml:"port" envconfig:"PORT" default:"3000"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ" default:"30s"`
	WriteTimeout time.Duration

	StaticDir        string `yaml:"staticDir" envconfig:"STATIC_DIR" default:"./public"`
	AuthEnabled      bool   `yaml:"authEnabled" envconfig:"AUTH_ENABLED" default:"true"`
	RateLimitEnabled bool   `yaml:"rateLimitEnabled" envconfig:"RATE_LIMIT_ENABLED" default:"false"`
}

type Config struct {
	Server   Server `yaml:"server"`
	Database mongodb.Config
	Log      logger.Log `yaml:"log"`
}

var (
	once sync.Once
	cfg  *Config
)

// NewConfig reads config from environment. The process refuses to start
// on a missing or malformed storage configuration.
func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		config := &Config{}
		for _, op := range ops {
			op(config)
		}
		if err := envconfig.Process("", config); err != nil {
			log.Fatal("NewConfig ", err)
		}
		if err := config.validate(); err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = config
		printConfig(cfg)
	})

	return cfg
}

func (c *Config) validate() error {
	if !strings.HasPrefix(c.Database.URI, "mongodb") {
		return errors.New("MONGO_URI must be a mongodb connection string")
	}
	if c.Database.Database == "" {
		return errors.New("MONGO_DB_NAME is required")
	}
	if c.Database.Collection == "" {
		return errors.New("MONGO_COLLECTION_NAME is required")
	}
	return nil
}

func printConfig(cfg *Config) {
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}

type Option func(*Config)

func WithLogLevel(level zapcore.Level) Option {
	return func(c *Config) {
		c.Log.LogLevel = level
	}
}

func WithWriteTimeout(d time.Duration) Option {
	return func(c *Config) {
		c.Server.WriteTimeout = d
	}
}
