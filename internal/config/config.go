// Package config loads service settings from the environment (and an optional
// .env file) over compiled defaults.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"

	"github.com/oggyb/ballou-sms/internal/notify"
)

const EnvDevelopment = "development"

// ErrConfigRequired is returned when a mandatory setting is missing.
var ErrConfigRequired = errors.New("required configuration missing")

// Top-level env prefixes that are read. APP_NAME becomes app.name and so on.
var sections = []string{"app", "log", "api", "db", "redis", "ballou", "scheduler", "worker"}

type Config struct {
	App struct {
		Name string `koanf:"name"`
		Env  string `koanf:"env"`
	} `koanf:"app"`

	Log struct {
		Level string `koanf:"level"`
	} `koanf:"log"`

	API struct {
		Host string `koanf:"host"`
		Port string `koanf:"port"`
	} `koanf:"api"`

	DB struct {
		Host     string `koanf:"host"`
		Port     int    `koanf:"port"`
		User     string `koanf:"user"`
		Password string `koanf:"password"`
		Name     string `koanf:"name"`
		SSLMode  string `koanf:"sslmode"`
	} `koanf:"db"`

	Redis struct {
		Addr     string `koanf:"addr"`
		Password string `koanf:"password"`
		DB       int    `koanf:"db"`
	} `koanf:"redis"`

	Ballou Ballou `koanf:"ballou"`

	Scheduler struct {
		Interval     time.Duration `koanf:"interval"`
		BatchTimeout time.Duration `koanf:"batch_timeout"`
	} `koanf:"scheduler"`

	Worker struct {
		BatchSize         int           `koanf:"batch_size"`
		MaxWorkers        int           `koanf:"max_workers"`
		PerMessageTimeout time.Duration `koanf:"per_message_timeout"`
	} `koanf:"worker"`
}

// Ballou holds the provider credentials and default flags.
type Ballou struct {
	Token    string `koanf:"token"`
	Username string `koanf:"un"`
	Password string `koanf:"pw"`
	CR       string `koanf:"cr"`
	RI       string `koanf:"ri"`
	Origin   string `koanf:"o"`
	LongSMS  string `koanf:"longsms"`
}

// Gateway returns the configuration bag for the Ballou gateway factory.
// Unset optional values are left out so the gateway applies its own defaults.
func (b Ballou) Gateway() notify.Config {
	cfg := notify.Config{"token": b.Token}

	set := func(k, v string) {
		if v != "" {
			cfg[k] = v
		}
	}
	set("UN", b.Username)
	set("PW", b.Password)
	set("CR", b.CR)
	set("RI", b.RI)
	set("O", b.Origin)
	set("LONGSMS", b.LongSMS)

	return cfg
}

func defaults() *Config {
	cfg := &Config{}

	cfg.App.Name = "ballou-sms"
	cfg.App.Env = EnvDevelopment
	cfg.Log.Level = "info"

	cfg.API.Host = "0.0.0.0"
	cfg.API.Port = "8080"

	cfg.DB.Host = "db"
	cfg.DB.Port = 5432
	cfg.DB.User = "root"
	cfg.DB.Password = "123456"
	cfg.DB.Name = "db_ballou_sms"
	cfg.DB.SSLMode = "disable"

	cfg.Redis.Addr = "redis:6379"

	cfg.Scheduler.Interval = 5 * time.Second
	cfg.Scheduler.BatchTimeout = 2 * time.Minute

	cfg.Worker.BatchSize = 100
	cfg.Worker.MaxWorkers = 4
	cfg.Worker.PerMessageTimeout = 90 * time.Second

	return cfg
}

// New reads .env (if any), then the process environment.
func New() (*Config, error) {
	_ = godotenv.Load()

	cfg := defaults()
	k := koanf.New(".")

	err := k.Load(env.Provider("", ".", envKey), nil)
	if err != nil {
		return nil, fmt.Errorf("load env vars: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.normalize()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// batchSlack is the headroom a batch keeps over a single delivery.
const batchSlack = 10 * time.Second

// normalize keeps a batch alive at least as long as one delivery may take,
// so the batch deadline never cuts a provider call short.
func (c *Config) normalize() {
	if c.Scheduler.BatchTimeout <= c.Worker.PerMessageTimeout {
		c.Scheduler.BatchTimeout = c.Worker.PerMessageTimeout + batchSlack
	}
}

// envKey maps SCHEDULER_BATCH_TIMEOUT to scheduler.batch_timeout. Variables
// outside the known sections are dropped.
func envKey(s string) string {
	key := strings.Replace(strings.ToLower(s), "_", ".", 1)

	section, _, ok := strings.Cut(key, ".")
	if !ok {
		return ""
	}
	for _, known := range sections {
		if section == known {
			return key
		}
	}
	return ""
}

func (c *Config) validate() error {
	if c.IsDevelopment() {
		return nil
	}
	if strings.TrimSpace(c.Ballou.Token) == "" {
		return fmt.Errorf("%w: BALLOU_TOKEN", ErrConfigRequired)
	}
	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.App.Env == EnvDevelopment
}

func (c *Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.DB.Host,
		c.DB.Port,
		c.DB.User,
		c.DB.Password,
		c.DB.Name,
		c.DB.SSLMode,
	)
}

func (c *Config) Addr() string {
	return c.API.Host + ":" + c.API.Port
}
