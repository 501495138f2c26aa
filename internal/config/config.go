package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/finrec/finrec/internal/logger"
)

type DBConfig struct {
	Source       string `toml:"source"`
	JournalMode  string `toml:"journal_mode"`
	BusyTimeout  int    `toml:"busy_timeout"`
	MaxOpenConns int    `toml:"max_open_conns"`
	MaxIdleConns int    `toml:"max_idle_conns"`
}

type Config struct {
	DB     DBConfig      `toml:"db"`
	Logger logger.Config `toml:"logger"`
}

const (
	defaultDBFile      = "finrec.db"
	defaultJournalMode = "WAL"
	defaultBusyTimeout = 5000
	defaultLogLevel    = logger.LevelInfo
	defaultLogFormat   = logger.FormatText
	defaultLogOutput   = "stdout"
)

// Parse reads the TOML configuration file and applies FINREC_* environment
// overrides on top. A missing file is not an error; defaults apply.
func Parse(file string) (*Config, error) {
	conf := &Config{}

	bytes, err := os.ReadFile(file)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("unable to read configuration file %s: %w", file, err)
		}
	} else {
		if err = toml.Unmarshal(bytes, conf); err != nil {
			return nil, fmt.Errorf("unable to parse configuration file %s: %w", file, err)
		}
	}

	conf.parseEnv()
	conf.applyDefaults()

	return conf, nil
}

func (c *Config) parseEnv() {
	if db := os.Getenv("FINREC_DB"); db != "" {
		c.DB.Source = db
	}

	if timeout := os.Getenv("FINREC_DB_BUSY_TIMEOUT"); timeout != "" {
		if value, err := strconv.Atoi(timeout); err == nil {
			c.DB.BusyTimeout = value
		}
	}

	if level := os.Getenv("FINREC_LOG_LEVEL"); level != "" {
		c.Logger.Level = logger.Level(level)
	}

	if format := os.Getenv("FINREC_LOG_FORMAT"); format != "" {
		c.Logger.Format = logger.Format(format)
	}

	if output := os.Getenv("FINREC_LOG_OUTPUT"); output != "" {
		c.Logger.Output = output
	}
}

func (c *Config) applyDefaults() {
	if c.DB.Source == "" {
		c.DB.Source = defaultDBFile
	}

	if c.DB.JournalMode == "" {
		c.DB.JournalMode = defaultJournalMode
	}

	if c.DB.BusyTimeout == 0 {
		c.DB.BusyTimeout = defaultBusyTimeout
	}

	if c.Logger.Level == "" {
		c.Logger.Level = defaultLogLevel
	}

	if c.Logger.Format == "" {
		c.Logger.Format = defaultLogFormat
	}

	if c.Logger.Output == "" {
		c.Logger.Output = defaultLogOutput
	}
}
