package config

import (
	"strings"
	"testing"
	"time"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("DISCORD_TOKEN", "test-token")
	t.Setenv("GEMINI_API_KEY", "test-key")
}

func TestNewDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := New()
	if err != nil {
		t.Fatal(err)
	}

	if cfg.MemoryDepth != 5 {
		t.Errorf("MemoryDepth = %d, want 5", cfg.MemoryDepth)
	}
	if cfg.InteractionCooldown != 5*time.Minute {
		t.Errorf("InteractionCooldown = %v, want 5m", cfg.InteractionCooldown)
	}
	if cfg.ReengageInterval != time.Minute {
		t.Errorf("ReengageInterval = %v, want 1m", cfg.ReengageInterval)
	}
	if cfg.GeminiModel != "gemini-1.5-pro" {
		t.Errorf("GeminiModel = %q", cfg.GeminiModel)
	}
	if len(cfg.HostileWords) == 0 {
		t.Error("expected default hostile word list")
	}
}

func TestNewMissingToken(t *testing.T) {
	setRequired(t)
	t.Setenv("DISCORD_TOKEN", "")

	if _, err := New(); err == nil {
		t.Fatal("expected error when DISCORD_TOKEN is unset")
	}
}

func TestNewMissingAPIKey(t *testing.T) {
	setRequired(t)
	t.Setenv("GEMINI_API_KEY", "")

	_, err := New()
	if err == nil {
		t.Fatal("expected error when GEMINI_API_KEY is unset")
	}
	if !strings.Contains(err.Error(), "GEMINI_API_KEY") {
		t.Errorf("error should name the missing variable, got: %v", err)
	}
}

func TestNewWordListsParsed(t *testing.T) {
	setRequired(t)
	t.Setenv("BANNED_WORDS", "foo,bar baz,qux")

	cfg, err := New()
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.BannedWords) != 3 || cfg.BannedWords[1] != "bar baz" {
		t.Errorf("BannedWords = %v", cfg.BannedWords)
	}
}

func TestNewRejectsBadDepth(t *testing.T) {
	setRequired(t)
	t.Setenv("MEMORY_DEPTH", "0")

	if _, err := New(); err == nil {
		t.Fatal("expected error for MEMORY_DEPTH=0")
	}
}
