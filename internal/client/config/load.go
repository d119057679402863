package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/dmitrijs2005/medianest/internal/common"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "MEDIANEST"

// Flag names.
const (
	FlagConfig        = "config"
	FlagEnvFile       = "env-file"
	FlagAPIURL        = "api-url"
	FlagAPIKey        = "api-key"
	FlagDeletePin     = "delete-pin"
	FlagDownloadDir   = "download-dir"
	FlagMimeDetection = "mime-detection"
	FlagLogLevel      = "log-level"
	FlagLogFormat     = "log-format"
)

// flagKeys maps flags onto config keys.
var flagKeys = map[string]string{
	FlagAPIURL:        KeyAPIBaseURL,
	FlagAPIKey:        KeyAPIKey,
	FlagDeletePin:     KeyDeletePin,
	FlagDownloadDir:   KeyDownloadDir,
	FlagMimeDetection: KeyMimeDetection,
	FlagLogLevel:      KeyLogLevel,
	FlagLogFormat:     KeyLogFormat,
}

// RegisterFlags adds the configuration flags to flags.
func RegisterFlags(flags *pflag.FlagSet) {
	d := Defaults()
	flags.StringP(FlagConfig, "c", "", "path to config file (yaml, json or toml)")
	flags.String(FlagEnvFile, ".env", "path to .env file")
	flags.StringP(FlagAPIURL, "a", "", "media store base URL")
	flags.StringP(FlagAPIKey, "k", "", "media store API key")
	flags.String(FlagDeletePin, "", "PIN required to delete images")
	flags.String(FlagDownloadDir, d.DownloadDir, "directory for downloaded images")
	flags.String(FlagMimeDetection, d.MimeDetection, "upload content type detection: extension|content")
	flags.String(FlagLogLevel, d.LogLevel, "log level: debug|info|warn|error")
	flags.String(FlagLogFormat, d.LogFormat, "log format: text|json|zap")
}

// Load builds a Config from defaults, the optional config file, the .env
// file, MEDIANEST_* environment variables and the flags, in that order
// of precedence. flags may be nil. The result is not validated.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	for key, val := range Defaults().asMap() {
		v.SetDefault(key, val)
	}

	if path := flagString(flags, FlagConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("%w: read config file %s: %w", common.ErrInvalidConfig, path, err)
		}
	}

	envFile := ".env"
	if flags != nil && flags.Lookup(FlagEnvFile) != nil {
		envFile = flagString(flags, FlagEnvFile)
	}
	if err := loadDotEnv(envFile); err != nil {
		return nil, err
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrInvalidConfig, err)
	}
	cfg.MimeDetection = strings.ToLower(strings.TrimSpace(cfg.MimeDetection))
	return cfg, nil
}

// loadDotEnv applies path to the process environment. A missing file is
// not an error.
func loadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("%w: load %s: %w", common.ErrInvalidConfig, path, err)
	}
	return nil
}

func flagString(flags *pflag.FlagSet, name string) string {
	if flags == nil {
		return ""
	}
	f := flags.Lookup(name)
	if f == nil {
		return ""
	}
	return strings.TrimSpace(f.Value.String())
}
