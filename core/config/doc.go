// Package config provides type-safe environment variable loading with
// per-type caching. It loads a local .env file on first use and parses
// variables into struct fields via the caarlos0/env library.
//
// Basic usage:
//
//	type SMTPConfig struct {
//		Host string `env:"SMTP_SERVER,required"`
//		Port int    `env:"SMTP_PORT,required"`
//	}
//
//	var cfg SMTPConfig
//	if err := config.Load(&cfg); err != nil {
//		// err wraps config.ErrMissingConfig and names the variable
//	}
//
// Each configuration type is loaded at most once per process; later calls
// for the same type return the cached value. Absence of any required
// variable is terminal: there is no defaulting or retry beyond what the
// struct's envDefault tags declare.
package config
