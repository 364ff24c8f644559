package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "ENV", "BACKEND_URL", "BACKEND_UPLOAD_PATH", "BACKEND_CHAT_PATH",
		"ANALYSIS_TIMEOUT", "CHAT_TIMEOUT", "MAX_RESUME_MB", "MIN_JOB_DESCRIPTION_LEN",
		"SESSION_TTL", "DATABASE_URL", "RATE_LIMIT_RPS", "ALLOWED_ORIGINS",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BackendURL != "http://127.0.0.1:5000" {
		t.Errorf("BackendURL = %q", cfg.BackendURL)
	}
	if cfg.UploadPath != "/api/upload" || cfg.ChatPath != "/api/chat" {
		t.Errorf("paths = %q %q", cfg.UploadPath, cfg.ChatPath)
	}
	if cfg.AnalysisTimeout != 60*time.Second {
		t.Errorf("AnalysisTimeout = %v", cfg.AnalysisTimeout)
	}
	if cfg.MinJobDescriptionLen != 50 {
		t.Errorf("MinJobDescriptionLen = %d", cfg.MinJobDescriptionLen)
	}
	if cfg.MaxResumeBytes != 10*1024*1024 {
		t.Errorf("MaxResumeBytes = %d", cfg.MaxResumeBytes)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("BACKEND_URL", "http://backend:5000/")
	t.Setenv("BACKEND_UPLOAD_PATH", "/upload")
	t.Setenv("BACKEND_CHAT_PATH", "/chat")
	t.Setenv("ANALYSIS_TIMEOUT", "5")
	t.Setenv("CHAT_TIMEOUT", "1500ms")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BackendURL != "http://backend:5000" {
		t.Errorf("trailing slash not trimmed: %q", cfg.BackendURL)
	}
	if cfg.UploadPath != "/upload" || cfg.ChatPath != "/chat" {
		t.Errorf("paths = %q %q", cfg.UploadPath, cfg.ChatPath)
	}
	if cfg.AnalysisTimeout != 5*time.Second {
		t.Errorf("AnalysisTimeout = %v", cfg.AnalysisTimeout)
	}
	if cfg.ChatTimeout != 1500*time.Millisecond {
		t.Errorf("ChatTimeout = %v", cfg.ChatTimeout)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "https://b.example" {
		t.Errorf("AllowedOrigins = %v", cfg.AllowedOrigins)
	}
}

func TestLoadRejectsRelativeBackend(t *testing.T) {
	t.Setenv("BACKEND_URL", "backend:5000")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for relative backend URL")
	}
}
