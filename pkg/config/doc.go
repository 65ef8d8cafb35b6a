// Package config loads environment-based configuration into typed structs.
//
// Configuration structs declare their sources with `env:` tags from
// github.com/caarlos0/env; a local .env file is picked up automatically via
// godotenv on the first Load call.
//
// # Usage
//
//	type TransportConfig struct {
//		ServerToken string `env:"POSTMARK_SERVER_TOKEN,required"`
//		SenderEmail string `env:"SENDER_EMAIL,required"`
//	}
//
//	var cfg TransportConfig
//	if err := config.Load(&cfg); err != nil {
//		// handle error
//	}
//
// Use MustLoad for configuration that is required for startup; it panics on
// failure so a misconfigured process refuses to boot instead of limping along.
package config
