package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// applyDefaults seeds Viper with defaults defined in GetConfigOptions.
// This centralizes default values and descriptions in one place.
func applyDefaults(v *viper.Viper) {
	for _, o := range GetConfigOptions() {
		v.SetDefault(o.Key, o.Default)
	}
}

// Load resolves configuration with precedence: defaults < file < env.
// The provided Viper instance is mutated with defaults, file contents, and env.
func Load(ctx context.Context, v *viper.Viper) error {
	// Configure Viper search paths. If SetConfigFile was provided upstream,
	// it takes precedence; these paths are harmless fallbacks.
	if v.ConfigFileUsed() == "" {
		v.SetConfigName("config")
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "mdref"))
		}
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "mdref"))
		}
		v.AddConfigPath(".")
	}

	// Apply centralized defaults (lowest precedence)
	applyDefaults(v)

	// Read config file if present (overrides defaults)
	_ = v.ReadInConfig()

	// Environment variables: MDREF_* (highest among these sources)
	v.SetEnvPrefix("mdref")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return nil
}

// CheckConfigValidity rejects values the tools cannot run with.
func CheckConfigValidity(v *viper.Viper) error {
	var problems []string

	switch v.GetString("scope") {
	case "tree", "file":
	default:
		problems = append(problems, "scope must be tree or file")
	}
	switch v.GetString("output.color") {
	case "auto", "always", "never":
	default:
		problems = append(problems, "output.color must be auto, always or never")
	}
	if v.GetInt("show.width") <= 0 {
		problems = append(problems, "show.width must be greater than 0")
	}
	if v.GetString("show.style") == "" {
		problems = append(problems, "show.style is required")
	}
	if s := v.GetString("titles.suffix"); s == "" || !strings.HasSuffix(s, ".md") {
		problems = append(problems, "titles.suffix must end in .md")
	}
	if !strings.Contains(v.GetString("titles.template"), "%s") {
		problems = append(problems, "titles.template must contain %s")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}
	return nil
}

// DefaultConfigPath resolves the standard config.toml location.
func DefaultConfigPath() string {
	xdg := os.Getenv("XDG_CONFIG_HOME")
	if xdg == "" {
		home, _ := os.UserHomeDir()
		xdg = filepath.Join(home, ".config")
	}
	return filepath.Join(xdg, "mdref", "config.toml")
}
