package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	// Empty values read as unset; this shields the test from JOT_*
	// variables exported in the environment running it.
	for _, key := range []string{"JOT_AUTH_DB_PATH", "JOT_NOTES_DB_PATH", "JOT_LOG_LEVEL", "JOT_LOG_FILE"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.AuthDBPath != "auth.db" {
		t.Errorf("auth db path = %q, want %q", cfg.AuthDBPath, "auth.db")
	}
	if cfg.NotesDBPath != "notes.db" {
		t.Errorf("notes db path = %q, want %q", cfg.NotesDBPath, "notes.db")
	}
	if cfg.LogLevel != "info" {
		t.Errorf("log level = %q, want %q", cfg.LogLevel, "info")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("JOT_AUTH_DB_PATH", "/tmp/a.db")
	t.Setenv("JOT_NOTES_DB_PATH", "/tmp/n.db")
	t.Setenv("JOT_LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.AuthDBPath != "/tmp/a.db" {
		t.Errorf("auth db path = %q, want %q", cfg.AuthDBPath, "/tmp/a.db")
	}
	if cfg.NotesDBPath != "/tmp/n.db" {
		t.Errorf("notes db path = %q, want %q", cfg.NotesDBPath, "/tmp/n.db")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("log level = %q, want %q", cfg.LogLevel, "debug")
	}
}

func TestLoadRejectsBadLevel(t *testing.T) {
	t.Setenv("JOT_LOG_LEVEL", "loud")

	if _, err := Load(); err == nil {
		t.Error("expected validation error for unknown log level")
	}
}
