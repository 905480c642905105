// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"testing"

	"langpack-cli/internal/config"

	"github.com/spf13/cobra"
)

// newTestBuildCmd returns a fresh command carrying the build flags, so each
// test gets its own Changed tracking.
func newTestBuildCmd() *cobra.Command {
	c := &cobra.Command{Use: "build"}
	registerBuildFlags(c)
	return c
}

func TestFormatFileSize(t *testing.T) {
	tests := []struct {
		size     int64
		expected string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{2048, "2.0 KB"},
		{1536, "1.5 KB"},
		{5 * 1024 * 1024, "5.0 MB"},
		{3 * 1024 * 1024 * 1024, "3.0 GB"},
	}

	for _, tt := range tests {
		if got := formatFileSize(tt.size); got != tt.expected {
			t.Errorf("formatFileSize(%d) = %q, want %q", tt.size, got, tt.expected)
		}
	}
}

func TestResolveBuildConfigFlagOverlay(t *testing.T) {
	src := t.TempDir()
	out := t.TempDir()

	cmd := newTestBuildCmd()
	for flag, value := range map[string]string{
		"source":          src,
		"output":          out,
		"language":        "de",
		"package-version": "5.4.0.1",
		"date":            "2024-01-01",
	} {
		if err := cmd.Flags().Set(flag, value); err != nil {
			t.Fatal(err)
		}
	}

	cfg, err := resolveBuildConfig(cmd)
	if err != nil {
		t.Fatalf("resolveBuildConfig failed: %v", err)
	}
	if cfg.SourceRoot != src {
		t.Errorf("SourceRoot = %q, want %q", cfg.SourceRoot, src)
	}
	if cfg.OutputRoot != out {
		t.Errorf("OutputRoot = %q, want %q", cfg.OutputRoot, out)
	}
	if cfg.LanguageFilter != "de" {
		t.Errorf("LanguageFilter = %q", cfg.LanguageFilter)
	}
	if cfg.PackageVersion != "5.4.0.1" {
		t.Errorf("PackageVersion = %q", cfg.PackageVersion)
	}
	if cfg.CreationDate != "2024-01-01" {
		t.Errorf("CreationDate = %q", cfg.CreationDate)
	}
}

func TestResolveBuildConfigDefaultsSurvive(t *testing.T) {
	src := t.TempDir()

	cmd := newTestBuildCmd()
	if err := cmd.Flags().Set("source", src); err != nil {
		t.Fatal(err)
	}
	if err := cmd.Flags().Set("package-version", "1.0.0"); err != nil {
		t.Fatal(err)
	}

	cfg, err := resolveBuildConfig(cmd)
	if err != nil {
		t.Fatalf("resolveBuildConfig failed: %v", err)
	}
	if cfg.LanguageFilter != config.FilterAll {
		t.Errorf("LanguageFilter = %q, want default %q", cfg.LanguageFilter, config.FilterAll)
	}
	if cfg.OutputRoot != "dist" {
		t.Errorf("OutputRoot = %q, want default dist", cfg.OutputRoot)
	}
}

func TestResolveBuildConfigMissingVersion(t *testing.T) {
	cmd := newTestBuildCmd()
	if err := cmd.Flags().Set("source", t.TempDir()); err != nil {
		t.Fatal(err)
	}

	_, err := resolveBuildConfig(cmd)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !errors.Is(err, config.ErrMissingPackageVersion) {
		t.Errorf("error %v does not wrap ErrMissingPackageVersion", err)
	}
}
