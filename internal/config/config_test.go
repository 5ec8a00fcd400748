package config

import (
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "8081" {
		t.Errorf("Port = %q, want 8081", cfg.Port)
	}
	if cfg.DataBackend != "sqlite" {
		t.Errorf("DataBackend = %q, want sqlite", cfg.DataBackend)
	}
	if cfg.SQLiteDBPath == "" {
		t.Error("SQLiteDBPath should have a default")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATA_BACKEND", "memory")
	t.Setenv("SQLITE_DB_PATH", "/tmp/other.db")

	cfg := Load()
	if cfg.Port != "9090" {
		t.Errorf("Port = %q, want 9090", cfg.Port)
	}
	if cfg.DataBackend != "memory" {
		t.Errorf("DataBackend = %q, want memory", cfg.DataBackend)
	}
	if cfg.SQLiteDBPath != "/tmp/other.db" {
		t.Errorf("SQLiteDBPath = %q, want /tmp/other.db", cfg.SQLiteDBPath)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid sqlite", Config{Port: "8081", SQLiteDBPath: "test.db", DataBackend: "sqlite"}, false},
		{"valid memory", Config{Port: "8081", DataBackend: "memory"}, false},
		{"port not a number", Config{Port: "abc", DataBackend: "memory"}, true},
		{"port out of range", Config{Port: "70000", DataBackend: "memory"}, true},
		{"unknown backend", Config{Port: "8081", DataBackend: "redis"}, true},
		{"sqlite without path", Config{Port: "8081", DataBackend: "sqlite"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
