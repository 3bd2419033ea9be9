package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := Default()

	if cfg.App == nil || cfg.Log == nil || cfg.Probe == nil || cfg.Output == nil {
		t.Fatalf("Expected all config sections populated, got %+v", cfg)
	}
	// 探测默认值必须与诊断报告的固定流程一致
	if cfg.Probe.PingCount != 3 {
		t.Errorf("Expected default ping count 3, got %d", cfg.Probe.PingCount)
	}
	if cfg.Probe.PingTimeoutSec != 5 {
		t.Errorf("Expected default ping timeout 5s, got %d", cfg.Probe.PingTimeoutSec)
	}
	if cfg.Probe.DiscoverTimeoutSec != 3 {
		t.Errorf("Expected default discover timeout 3s, got %d", cfg.Probe.DiscoverTimeoutSec)
	}
	if cfg.Probe.TcpTimeoutSec != 5 {
		t.Errorf("Expected default tcp timeout 5s, got %d", cfg.Probe.TcpTimeoutSec)
	}
	if cfg.Output.Theme != "default" {
		t.Errorf("Expected default theme, got %q", cfg.Output.Theme)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Expected default log level info, got %q", cfg.Log.Level)
	}
}

func TestLoaderDefaultsWithoutConfigFile(t *testing.T) {
	// 空目录里没有配置文件，加载器应退回默认值而不是报错
	loader := NewConfigLoader(t.TempDir(), "NEOPROBE")
	cfg, err := loader.LoadConfig()
	if err != nil {
		t.Fatalf("Expected defaults without config file, got error: %v", err)
	}

	if cfg.Probe.PingCount != 3 {
		t.Errorf("Expected default ping count 3, got %d", cfg.Probe.PingCount)
	}
	if cfg.Probe.ReportIntervalSec != 30 {
		t.Errorf("Expected default report interval 30s, got %d", cfg.Probe.ReportIntervalSec)
	}
}

func TestLoaderEnvOverride(t *testing.T) {
	t.Setenv("NEOPROBE_PROBE_PING_COUNT", "7")
	t.Setenv("NEOPROBE_OUTPUT_THEME", "mono")

	loader := NewConfigLoader(t.TempDir(), "NEOPROBE")
	cfg, err := loader.LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Probe.PingCount != 7 {
		t.Errorf("Expected env override ping count 7, got %d", cfg.Probe.PingCount)
	}
	if cfg.Output.Theme != "mono" {
		t.Errorf("Expected env override theme mono, got %q", cfg.Output.Theme)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
probe:
  ping_count: 5
  ping_timeout_sec: 2
output:
  theme: ocean
`)
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("failed to write config fixture: %v", err)
	}

	cfg, err := LoadConfigFromFile(path)
	if err != nil {
		t.Fatalf("LoadConfigFromFile failed: %v", err)
	}

	if cfg.Probe.PingCount != 5 {
		t.Errorf("Expected ping count 5 from file, got %d", cfg.Probe.PingCount)
	}
	if cfg.Probe.PingTimeoutSec != 2 {
		t.Errorf("Expected ping timeout 2s from file, got %d", cfg.Probe.PingTimeoutSec)
	}
	if cfg.Output.Theme != "ocean" {
		t.Errorf("Expected theme ocean from file, got %q", cfg.Output.Theme)
	}
	// 文件未写的字段补齐默认值
	if cfg.Probe.DiscoverTimeoutSec != 3 {
		t.Errorf("Expected default discover timeout 3s, got %d", cfg.Probe.DiscoverTimeoutSec)
	}
}

func TestLoadConfigFromFileRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"负的包数量", "probe:\n  ping_count: -1\n"},
		{"未知主题", "output:\n  theme: neon\n"},
		{"负的扫描超时", "probe:\n  discover_timeout_sec: -3\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatalf("failed to write config fixture: %v", err)
			}
			if _, err := LoadConfigFromFile(path); err == nil {
				t.Errorf("Expected validation error for %s, got nil", tt.name)
			}
		})
	}
}

func TestNoColorForcesPlainTheme(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("probe:\n  ping_count: 3\n"), 0644); err != nil {
		t.Fatalf("failed to write config fixture: %v", err)
	}

	cfg, err := LoadConfigFromFile(path)
	if err != nil {
		t.Fatalf("LoadConfigFromFile failed: %v", err)
	}
	if cfg.Output.Theme != "plain" {
		t.Errorf("Expected NO_COLOR to force plain theme, got %q", cfg.Output.Theme)
	}
}

func TestNoColorKeepsExplicitTheme(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("output:\n  theme: ocean\n"), 0644); err != nil {
		t.Fatalf("failed to write config fixture: %v", err)
	}

	cfg, err := LoadConfigFromFile(path)
	if err != nil {
		t.Fatalf("LoadConfigFromFile failed: %v", err)
	}
	// 显式配置的主题优先于 NO_COLOR 约定
	if cfg.Output.Theme != "ocean" {
		t.Errorf("Expected explicit theme ocean to survive NO_COLOR, got %q", cfg.Output.Theme)
	}
}

func TestEnvLoader(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	if err := os.WriteFile(envFile, []byte("NEOPROBE_TEST_NAME=probe\n"), 0644); err != nil {
		t.Fatalf("failed to write env fixture: %v", err)
	}

	loader := NewEnvLoader(envFile)
	if err := loader.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	t.Cleanup(func() { os.Unsetenv("NEOPROBE_TEST_NAME") })

	if got := loader.GetString("NEOPROBE_TEST_NAME", "fallback"); got != "probe" {
		t.Errorf("Expected value from .env file, got %q", got)
	}
	if got := loader.GetString("NEOPROBE_TEST_MISSING", "fallback"); got != "fallback" {
		t.Errorf("Expected fallback for missing key, got %q", got)
	}

	t.Setenv("NEOPROBE_TEST_INT", "42")
	t.Setenv("NEOPROBE_TEST_BOOL", "true")
	t.Setenv("NEOPROBE_TEST_DUR", "90s")

	if got := loader.GetInt("NEOPROBE_TEST_INT", 0); got != 42 {
		t.Errorf("Expected int 42, got %d", got)
	}
	if got := loader.GetInt("NEOPROBE_TEST_BOOL", 7); got != 7 {
		t.Errorf("Expected fallback for non-numeric value, got %d", got)
	}
	if got := loader.GetBool("NEOPROBE_TEST_BOOL", false); !got {
		t.Errorf("Expected bool true")
	}
	if got := loader.GetDuration("NEOPROBE_TEST_DUR", time.Second); got != 90*time.Second {
		t.Errorf("Expected duration 90s, got %v", got)
	}
	if !loader.IsSet("NEOPROBE_TEST_INT") {
		t.Errorf("Expected NEOPROBE_TEST_INT to be set")
	}
	if loader.IsSet("NEOPROBE_TEST_NEVER_SET") {
		t.Errorf("Expected NEOPROBE_TEST_NEVER_SET to be unset")
	}
}

func TestEnvLoaderMissingFileIsNotAnError(t *testing.T) {
	loader := NewEnvLoader(filepath.Join(t.TempDir(), "absent.env"))
	if err := loader.Load(); err != nil {
		t.Errorf("Expected missing .env file to be ignored, got %v", err)
	}
}
