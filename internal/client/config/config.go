package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/medianest/internal/common"
	"github.com/dmitrijs2005/medianest/internal/logging"
	"github.com/dmitrijs2005/medianest/internal/mimex"
)

// Config holds runtime settings for the medianest CLI.
type Config struct {
	APIBaseURL    string `mapstructure:"api_base_url"`
	APIKey        string `mapstructure:"api_key"`
	DeletePin     string `mapstructure:"delete_pin"`
	DownloadDir   string `mapstructure:"download_dir"`
	SupportEmail  string `mapstructure:"support_email"`
	CameraCommand string `mapstructure:"camera_command"`
	MimeDetection string `mapstructure:"mime_detection"`
	LogLevel      string `mapstructure:"log_level"`
	LogFormat     string `mapstructure:"log_format"`
}

// Config keys.
const (
	KeyAPIBaseURL    = "api_base_url"
	KeyAPIKey        = "api_key"
	KeyDeletePin     = "delete_pin"
	KeyDownloadDir   = "download_dir"
	KeySupportEmail  = "support_email"
	KeyCameraCommand = "camera_command"
	KeyMimeDetection = "mime_detection"
	KeyLogLevel      = "log_level"
	KeyLogFormat     = "log_format"
)

// Defaults returns the built-in configuration. Secrets are left empty.
func Defaults() Config {
	return Config{
		DownloadDir:   "downloads",
		MimeDetection: mimex.ModeExtension,
		LogLevel:      "info",
		LogFormat:     logging.FormatText,
	}
}

func (c Config) asMap() map[string]string {
	return map[string]string{
		KeyAPIBaseURL:    c.APIBaseURL,
		KeyAPIKey:        c.APIKey,
		KeyDeletePin:     c.DeletePin,
		KeyDownloadDir:   c.DownloadDir,
		KeySupportEmail:  c.SupportEmail,
		KeyCameraCommand: c.CameraCommand,
		KeyMimeDetection: c.MimeDetection,
		KeyLogLevel:      c.LogLevel,
		KeyLogFormat:     c.LogFormat,
	}
}

// DeletionEnabled reports whether a delete PIN is configured.
func (c Config) DeletionEnabled() bool {
	return strings.TrimSpace(c.DeletePin) != ""
}

// Validate checks the settings needed to talk to the media store. Errors
// wrap common.ErrInvalidConfig.
func (c Config) Validate() error {
	if strings.TrimSpace(c.APIBaseURL) == "" {
		return fmt.Errorf("%w: %s is required", common.ErrInvalidConfig, KeyAPIBaseURL)
	}
	u, err := url.Parse(c.APIBaseURL)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", common.ErrInvalidConfig, KeyAPIBaseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %s must be an absolute http(s) URL, got %q", common.ErrInvalidConfig, KeyAPIBaseURL, c.APIBaseURL)
	}
	if strings.TrimSpace(c.APIKey) == "" {
		return fmt.Errorf("%w: %s is required", common.ErrInvalidConfig, KeyAPIKey)
	}

	switch c.MimeDetection {
	case mimex.ModeExtension, mimex.ModeContent:
	default:
		return fmt.Errorf("%w: %s must be %q or %q, got %q", common.ErrInvalidConfig,
			KeyMimeDetection, mimex.ModeExtension, mimex.ModeContent, c.MimeDetection)
	}

	switch strings.ToLower(c.LogFormat) {
	case logging.FormatText, logging.FormatJSON, logging.FormatZap:
	default:
		return fmt.Errorf("%w: unknown %s %q", common.ErrInvalidConfig, KeyLogFormat, c.LogFormat)
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: unknown %s %q", common.ErrInvalidConfig, KeyLogLevel, c.LogLevel)
	}
	return nil
}
