// SPDX-License-Identifier: MPL-2.0

// Package config resolves the langpack build configuration.
//
// Resolution order, lowest precedence first: built-in defaults, a .env file
// in the working directory (if present), LANGPACK_* environment variables,
// and command-line flags applied by the cmd layer on top of the loaded
// Config. The packaging pipeline only ever sees the resolved struct.
package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	// AppName is the application name, used as the environment prefix.
	AppName = "langpack"

	// EnvFileName is the optional dotenv file consulted before the
	// environment.
	EnvFileName = ".env"
)

// DefaultConfig returns the built-in defaults. The package version has no
// default on purpose; every build must state one.
func DefaultConfig() *Config {
	return &Config{
		OutputRoot:     "dist",
		LanguageFilter: FilterAll,
		CreationDate:   time.Now().Format("2006-01-02"),
	}
}

// Load resolves a Config from defaults, the optional .env file, and the
// environment. It does not validate; callers run Validate after applying
// flag overrides.
func Load() (*Config, error) {
	// A missing .env is the normal case, not an error.
	_ = godotenv.Load(EnvFileName)

	v := viper.New()
	v.SetEnvPrefix(AppName)
	v.AutomaticEnv()

	defaults := DefaultConfig()
	v.SetDefault("source", defaults.SourceRoot)
	v.SetDefault("output", defaults.OutputRoot)
	v.SetDefault("language", defaults.LanguageFilter)
	v.SetDefault("package_version", defaults.PackageVersion)
	v.SetDefault("date", defaults.CreationDate)
	v.SetDefault("platform", defaults.PlatformVersionTag)
	v.SetDefault("verbose", defaults.Verbose)

	cfg := &Config{
		SourceRoot:         v.GetString("source"),
		OutputRoot:         v.GetString("output"),
		LanguageFilter:     v.GetString("language"),
		PackageVersion:     v.GetString("package_version"),
		CreationDate:       v.GetString("date"),
		PlatformVersionTag: v.GetString("platform"),
		Verbose:            v.GetBool("verbose"),
	}
	return cfg, nil
}
