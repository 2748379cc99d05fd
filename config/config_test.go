package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadWithEnv_ReadsYamlAndAppliesEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	content := []byte(`env:
  env: test
  serviceName: bazaar
  log:
    pretty: true
    level: debug
http:
  port: 8080
secretKey:
  access: file-secret
auth:
  bcryptCost: 10
  accessTtlHours: 24
storage:
  mediaRoot: /tmp/media
  deletedPrefix: deleted/
`)
	if err := os.WriteFile(filepath.Join(dir, "test.yaml"), content, 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	t.Chdir(dir)
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := LoadWithEnv[Config]("test")
	if err != nil {
		t.Fatalf("LoadWithEnv() error = %v", err)
	}

	if cfg.Env.ServiceName != "bazaar" {
		t.Errorf("serviceName = %q, want %q", cfg.Env.ServiceName, "bazaar")
	}
	if cfg.Env.Log.Level != "debug" {
		t.Errorf("log level = %q, want %q", cfg.Env.Log.Level, "debug")
	}
	if cfg.HTTP.Port != 9090 {
		t.Errorf("http port = %d, want env override 9090", cfg.HTTP.Port)
	}
	if cfg.SecretKey.Access != "file-secret" {
		t.Errorf("secret = %q, want %q", cfg.SecretKey.Access, "file-secret")
	}
	if cfg.Auth == nil || cfg.Auth.AccessTTLHours != 24 {
		t.Errorf("auth config not decoded: %+v", cfg.Auth)
	}
	if cfg.Storage == nil || cfg.Storage.DeletedPrefix != "deleted/" {
		t.Errorf("storage config not decoded: %+v", cfg.Storage)
	}
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	if _, err := LoadWithEnv[Config]("nope"); err == nil {
		t.Fatal("expected error for missing config file")
	}
}
