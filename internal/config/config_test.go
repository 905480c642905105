// SPDX-License-Identifier: MPL-2.0

package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "dist", cfg.OutputRoot)
	assert.Equal(t, FilterAll, cfg.LanguageFilter)
	assert.Empty(t, cfg.PackageVersion, "package version must have no default")
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}$`, cfg.CreationDate)
	assert.False(t, cfg.Verbose)
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("LANGPACK_PACKAGE_VERSION", "5.4.0.1")
	t.Setenv("LANGPACK_LANGUAGE", "de")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "5.4.0.1", cfg.PackageVersion)
	assert.Equal(t, "de", cfg.LanguageFilter)
	assert.Equal(t, "dist", cfg.OutputRoot)
}

func TestValidate(t *testing.T) {
	srcRoot := t.TempDir()

	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{
			name: "valid",
			cfg: Config{
				SourceRoot:     srcRoot,
				OutputRoot:     "dist",
				LanguageFilter: FilterAll,
				PackageVersion: "5.4.0.1",
				CreationDate:   "2024-01-01",
			},
		},
		{
			name: "missing package version",
			cfg: Config{
				SourceRoot:   srcRoot,
				OutputRoot:   "dist",
				CreationDate: "2024-01-01",
			},
			wantErr: ErrMissingPackageVersion,
		},
		{
			name: "missing source root",
			cfg: Config{
				OutputRoot:     "dist",
				PackageVersion: "5.4.0.1",
			},
			wantErr: ErrMissingSourceRoot,
		},
		{
			name: "source root does not exist",
			cfg: Config{
				SourceRoot:     filepath.Join(srcRoot, "nope"),
				OutputRoot:     "dist",
				PackageVersion: "5.4.0.1",
			},
			wantErr: ErrMissingSourceRoot,
		},
		{
			name: "missing output root",
			cfg: Config{
				SourceRoot:     srcRoot,
				PackageVersion: "5.4.0.1",
			},
			wantErr: ErrMissingOutputRoot,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestValidateCollectsAllFieldErrors(t *testing.T) {
	cfg := Config{}
	err := cfg.Validate()
	require.Error(t, err)

	assert.ErrorIs(t, err, ErrMissingPackageVersion)
	assert.ErrorIs(t, err, ErrMissingSourceRoot)
	assert.ErrorIs(t, err, ErrMissingOutputRoot)
}

func TestEffectiveSourceRoot(t *testing.T) {
	cfg := Config{SourceRoot: "/data/translations"}
	assert.Equal(t, "/data/translations", cfg.EffectiveSourceRoot())

	cfg.PlatformVersionTag = "v5"
	assert.Equal(t, filepath.Join("/data/translations", "v5"), cfg.EffectiveSourceRoot())
}
