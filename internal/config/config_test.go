package config

import (
	"os"
	"testing"
	"time"
)

func TestGetEnvOrDefault(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		envValue   string
		defaultVal string
		expected   string
	}{
		{"uses env value", "TEST_VAR_1", "hello", "default", "hello"},
		{"uses default when empty", "TEST_VAR_2", "", "default", "default"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.envValue != "" {
				os.Setenv(tc.key, tc.envValue)
				defer os.Unsetenv(tc.key)
			}

			result := getEnvOrDefault(tc.key, tc.defaultVal)
			if result != tc.expected {
				t.Errorf("Expected %q, got %q", tc.expected, result)
			}
		})
	}
}

func TestGetEnvAsIntOrDefault(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		envValue   string
		defaultVal int
		expected   int
	}{
		{"parses integer", "TEST_INT_1", "42", 10, 42},
		{"uses default for empty", "TEST_INT_2", "", 10, 10},
		{"uses default for non-numeric", "TEST_INT_3", "abc", 10, 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.envValue != "" {
				os.Setenv(tc.key, tc.envValue)
				defer os.Unsetenv(tc.key)
			}

			result := getEnvAsIntOrDefault(tc.key, tc.defaultVal)
			if result != tc.expected {
				t.Errorf("Expected %d, got %d", tc.expected, result)
			}
		})
	}
}

func TestLoad_OptionalDatabase(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("CMS_TIMEOUT_SECONDS", "")

	cfg := Load()
	if cfg.DatabaseURL != "" {
		t.Fatalf("expected empty database url, got %q", cfg.DatabaseURL)
	}
	if cfg.CMSTimeout != 10*time.Second {
		t.Fatalf("expected default cms timeout of 10s, got %s", cfg.CMSTimeout)
	}
}

func TestLoad_ContentServiceOptional(t *testing.T) {
	t.Setenv("CMS_URL", "")

	cfg := Load()
	if cfg.CMSURL != "" {
		t.Fatalf("expected no content service by default, got %q", cfg.CMSURL)
	}
}

func TestLoad_NonPositiveTimeoutFallsBack(t *testing.T) {
	t.Setenv("CMS_TIMEOUT_SECONDS", "0")

	cfg := Load()
	if cfg.CMSTimeout != 10*time.Second {
		t.Fatalf("expected timeout to fall back to 10s, got %s", cfg.CMSTimeout)
	}
}

func TestIsProduction(t *testing.T) {
	if (&Config{Env: "development"}).IsProduction() {
		t.Fatalf("development must not be production")
	}
	if !(&Config{Env: "production"}).IsProduction() {
		t.Fatalf("expected production")
	}
}
