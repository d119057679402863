// Package config loads runtime configuration for the medianest CLI.
//
// Sources & precedence (later wins)
//
//  1. Built-in defaults (see Defaults).
//  2. Optional config file selected with --config / -c. Any format viper
//     understands by extension (YAML, JSON, TOML).
//  3. Optional .env file (default ./.env, see --env-file). Values already
//     present in the real environment are not overridden.
//  4. Environment variables with the MEDIANEST_ prefix, for example
//     MEDIANEST_API_BASE_URL, MEDIANEST_API_KEY, MEDIANEST_DELETE_PIN.
//  5. Command-line flags registered by RegisterFlags.
//
// # File keys
//
//	api_base_url: https://media.example.com/files
//	api_key: secret
//	delete_pin: "1234"
//	download_dir: downloads
//	support_email: support@example.com
//	camera_command: "libcamera-still -o {out}"
//	mime_detection: extension   # or content
//	log_level: info             # debug|info|warn|error
//	log_format: text            # text|json|zap
//
// No secret has a built-in default. Validate rejects a configuration without
// an absolute http(s) api_base_url or without an api_key. An empty delete_pin
// is allowed and disables deletion.
package config
