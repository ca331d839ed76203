package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"HOST", "PORT", "STORAGE_DRIVER", "DB_PATH", "BOLT_BUCKET", "LOG_LEVEL", "LOG_ENCODING", "SEED_DEMO", "READ_TIMEOUT", "WRITE_TIMEOUT", "SHUTDOWN_TIMEOUT"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Address() != ":8080" {
		t.Errorf("expected address :8080, got %s", cfg.Address())
	}
	if cfg.Storage.Driver != "sqlite" || cfg.Storage.Path != "./data/taskboard.db" {
		t.Errorf("unexpected storage defaults: %+v", cfg.Storage)
	}
	if cfg.Logger.Level != "info" || cfg.Logger.Encoding != "console" {
		t.Errorf("unexpected logger defaults: %+v", cfg.Logger)
	}
	if cfg.SeedDemo {
		t.Error("expected seeding to be off by default")
	}
	if cfg.HTTP.ShutdownTimeout != 10*time.Second {
		t.Errorf("expected 10s shutdown timeout, got %v", cfg.HTTP.ShutdownTimeout)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("STORAGE_DRIVER", "bolt")
	t.Setenv("DB_PATH", "/tmp/tasks.bolt")
	t.Setenv("SEED_DEMO", "true")
	t.Setenv("WRITE_TIMEOUT", "30")
	t.Setenv("READ_TIMEOUT", "250ms")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.HTTP.Port != "9090" {
		t.Errorf("expected port 9090, got %s", cfg.HTTP.Port)
	}
	if cfg.Storage.Driver != "bolt" || cfg.Storage.Path != "/tmp/tasks.bolt" {
		t.Errorf("unexpected storage config: %+v", cfg.Storage)
	}
	if !cfg.SeedDemo {
		t.Error("expected seeding to be on")
	}
	if cfg.HTTP.WriteTimeout != 30*time.Second {
		t.Errorf("expected integer seconds to parse, got %v", cfg.HTTP.WriteTimeout)
	}
	if cfg.HTTP.ReadTimeout != 250*time.Millisecond {
		t.Errorf("expected duration string to parse, got %v", cfg.HTTP.ReadTimeout)
	}
}

func TestLoad_UnknownDriver(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "postgres")

	if _, err := Load(); err == nil {
		t.Error("expected error for unknown driver")
	}
}
