package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	configName = "zoo"
	configType = "toml"
	envPrefix  = "ZOO"

	KeyServerAddr      = "server.addr"
	KeyServerPort      = "server.port"
	KeyServerPublicDir = "server.public_dir"
	KeyDataDir         = "data.dir"
	KeyLogLevel        = "log.level"
	KeyLogFormat       = "log.format"
)

// flagKeys maps command-line flags onto config keys. Only flags present on
// the given flag set are bound.
var flagKeys = map[string]string{
	"addr":       KeyServerAddr,
	"public-dir": KeyServerPublicDir,
	"data-dir":   KeyDataDir,
	"log-level":  KeyLogLevel,
	"log-format": KeyLogFormat,
}

type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Data   DataConfig   `mapstructure:"data"`
	Log    LogConfig    `mapstructure:"log"`
}

type ServerConfig struct {
	Addr      string `mapstructure:"addr"`
	Port      string `mapstructure:"port"`
	PublicDir string `mapstructure:"public_dir"`
}

type DataConfig struct {
	Dir string `mapstructure:"dir"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ListenAddr is server.addr when set, otherwise ":" + server.port.
func (c ServerConfig) ListenAddr() string {
	if c.Addr != "" {
		return c.Addr
	}

	return ":" + c.Port
}

// Load resolves configuration from flags, ZOO_* environment variables, an
// optional zoo.toml and defaults, in that order of precedence. configFile,
// when non-empty, must exist.
func Load(v *viper.Viper, flags *pflag.FlagSet, configFile string) (Config, error) {
	if v == nil {
		v = viper.New()
	}

	v.SetDefault(KeyServerAddr, "")
	v.SetDefault(KeyServerPort, "3001")
	v.SetDefault(KeyServerPublicDir, "")
	v.SetDefault(KeyDataDir, "data")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "text")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv(KeyServerPort, envPrefix+"_SERVER_PORT", "PORT"); err != nil {
		return Config{}, fmt.Errorf("bind port env: %w", err)
	}

	if flags != nil {
		for name, key := range flagKeys {
			flag := flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return Config{}, fmt.Errorf("bind flag %q: %w", name, err)
			}
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType(configType)
		v.AddConfigPath(".")
		if homeDir, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(homeDir, ".config", configName))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) validate() error {
	if strings.TrimSpace(c.Data.Dir) == "" {
		return errors.New("data directory is empty")
	}
	if c.Server.Addr == "" && c.Server.Port == "" {
		return errors.New("server address and port are both empty")
	}

	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unsupported log format %q", c.Log.Format)
	}

	return nil
}
