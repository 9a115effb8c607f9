package config

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/ilyakaznacheev/cleanenv"
)

// ServerConfig holds the SSH server settings. Every field can be set from
// the environment; a YAML file is optional.
type ServerConfig struct {
	Addr        string        `yaml:"ssh-addr" env:"T2048_SSH_ADDR" env-default:":2048"`
	HostKeyPath string        `yaml:"host-key" env:"T2048_HOST_KEY" env-default:".ssh/t2048_ed25519"`
	DBPath      string        `yaml:"db" env:"T2048_DB" env-default:"~/.t2048/scores.db"`
	RedisAddr   string        `yaml:"redis-addr" env:"T2048_REDIS_ADDR"`
	IdleTimeout time.Duration `yaml:"idle-timeout" env:"T2048_IDLE_TIMEOUT" env-default:"30m"`
	LogLevel    string        `yaml:"log-level" env:"T2048_LOG_LEVEL" env-default:"info"`
}

// LoadServer reads the server config from path, or from the environment
// alone when path is empty.
func LoadServer(path string) (ServerConfig, error) {
	var cfg ServerConfig

	var err error
	if path != "" {
		err = cleanenv.ReadConfig(path, &cfg)
	} else {
		err = cleanenv.ReadEnv(&cfg)
	}
	if err != nil {
		return ServerConfig{}, fmt.Errorf("config: unable to load server config: %w", err)
	}

	if _, err := cfg.Level(); err != nil {
		return ServerConfig{}, err
	}
	return cfg, nil
}

// Level parses the configured log level.
func (c ServerConfig) Level() (log.Level, error) {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return 0, fmt.Errorf("config: invalid log level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}
