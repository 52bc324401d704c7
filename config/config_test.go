package config

import (
	"os"
	"testing"
	"time"
)

// unsetenv clears a variable for the test while keeping t.Setenv's cleanup,
// so defaults can be asserted regardless of the host environment.
func unsetenv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		if err := os.Unsetenv(key); err != nil {
			t.Fatal("Failed to unset env var:", err)
		}
	}
}

func TestGetGeminiConfigDefaults(t *testing.T) {
	unsetenv(t, "GEMINI_API_KEY", "GEMINI_MODEL", "GEMINI_BASE_URL", "GEMINI_TIMEOUT")

	cfg, err := GetGeminiConfig()
	if err != nil {
		t.Fatal("Failed to get gemini config:", err)
	}

	if cfg.Enabled() {
		t.Error("config without an API key should not be enabled")
	}
	if cfg.Model != "gemini-3-pro-preview" {
		t.Errorf("model = %q", cfg.Model)
	}
	if cfg.BaseURL != "https://generativelanguage.googleapis.com/v1beta" {
		t.Errorf("base URL = %q", cfg.BaseURL)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("timeout = %v", cfg.Timeout)
	}
}

func TestGetGeminiConfigFromEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "secret")
	t.Setenv("GEMINI_MODEL", "gemini-test")
	t.Setenv("GEMINI_TIMEOUT", "5s")

	cfg, err := GetGeminiConfig()
	if err != nil {
		t.Fatal("Failed to get gemini config:", err)
	}

	if !cfg.Enabled() {
		t.Error("config with an API key should be enabled")
	}
	if cfg.Model != "gemini-test" {
		t.Errorf("model = %q", cfg.Model)
	}
	if cfg.Timeout != 5*time.Second {
		t.Errorf("timeout = %v", cfg.Timeout)
	}
}

func TestGetServerConfigDefaults(t *testing.T) {
	unsetenv(t, "PORT", "WORKER_POOL_SIZE")

	cfg, err := GetServerConfig()
	if err != nil {
		t.Fatal("Failed to get server config:", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("port = %q", cfg.Port)
	}
	if cfg.WorkerPoolSize != 120 {
		t.Errorf("worker pool size = %d", cfg.WorkerPoolSize)
	}
}

func TestGetRenderConfig(t *testing.T) {
	unsetenv(t, "RENDER_FUNCTION_NAME")

	cfg, err := GetRenderConfig()
	if err != nil {
		t.Fatal("Failed to get render config:", err)
	}
	if cfg.Enabled() {
		t.Error("render config without a function name should not be enabled")
	}

	t.Setenv("RENDER_FUNCTION_NAME", "remotion-render")
	cfg, err = GetRenderConfig()
	if err != nil {
		t.Fatal("Failed to get render config:", err)
	}
	if !cfg.Enabled() {
		t.Error("render config with a function name should be enabled")
	}
}
