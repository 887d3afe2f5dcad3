package config_test

import (
	"testing"

	"github.com/km-arc/go-servicehost/framework/config"
)

func TestLoad_Defaults(t *testing.T) {
	// No env set — verify all defaults
	cfg := config.Load("testdata/empty.env")

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"App.Name", cfg.App.Name, "ServiceHost"},
		{"App.Env", cfg.App.Env, "local"},
		{"App.Port", cfg.App.Port, "8000"},
		{"Log.Level", cfg.Log.Level, "info"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}

	if !cfg.App.Debug {
		t.Error("App.Debug should default to true")
	}
}

func TestLoad_EnvOverridesDefaults(t *testing.T) {
	t.Setenv("APP_NAME", "MyApp")
	t.Setenv("APP_ENV", "production")
	t.Setenv("APP_DEBUG", "false")
	t.Setenv("LOG_LEVEL", "error")

	cfg := config.Load("testdata/empty.env")

	if cfg.App.Name != "MyApp" {
		t.Errorf("App.Name: got %q want %q", cfg.App.Name, "MyApp")
	}
	if cfg.App.Env != "production" {
		t.Errorf("App.Env: got %q want %q", cfg.App.Env, "production")
	}
	if cfg.App.Debug {
		t.Error("App.Debug: got true, want false")
	}
	if cfg.Log.Level != "error" {
		t.Errorf("Log.Level: got %q want %q", cfg.Log.Level, "error")
	}
}

func TestGetHelpers(t *testing.T) {
	t.Setenv("SOME_INT", "42")
	t.Setenv("SOME_BOOL", "true")

	if got := config.Get("UNSET_KEY", "fallback"); got != "fallback" {
		t.Errorf("Get fallback: got %q", got)
	}
	if got := config.GetInt("SOME_INT", 0); got != 42 {
		t.Errorf("GetInt: got %d, want 42", got)
	}
	if got := config.GetInt("SOME_BOOL", 7); got != 7 {
		t.Errorf("GetInt on non-int: got %d, want fallback 7", got)
	}
	if !config.GetBool("SOME_BOOL", false) {
		t.Error("GetBool: got false, want true")
	}
}
