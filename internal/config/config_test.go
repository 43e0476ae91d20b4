package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.yaml")
	content := `
server:
  port: 9100
supabase:
  url: "https://demo.supabase.co"
  service_role_key: "service-key"
  anon_key: "anon-key"
logging:
  level: "debug"
observability:
  service_name: "spotnere-backend"
  metrics:
    enabled: true
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != 9100 {
		t.Fatalf("port: %d", cfg.Server.Port)
	}
	if cfg.Supabase.Key() != "service-key" {
		t.Fatalf("service role key should win: %q", cfg.Supabase.Key())
	}
	if cfg.Supabase.StorageBucket != "places_images" {
		t.Fatalf("bucket default: %q", cfg.Supabase.StorageBucket)
	}
	if !cfg.Observability.Metrics.Enabled {
		t.Fatal("metrics should be enabled")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SUPABASE_URL", "https://env.supabase.co")
	t.Setenv("SUPABASE_KEY", "env-anon")
	t.Setenv("SUPABASE_BUCKET_NAME", "env_bucket")
	t.Setenv("PORT", "9200")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load with env only: %v", err)
	}
	if cfg.Supabase.URL != "https://env.supabase.co" {
		t.Fatalf("url: %q", cfg.Supabase.URL)
	}
	if cfg.Supabase.Key() != "env-anon" {
		t.Fatalf("anon fallback: %q", cfg.Supabase.Key())
	}
	if cfg.Supabase.StorageBucket != "env_bucket" {
		t.Fatalf("bucket: %q", cfg.Supabase.StorageBucket)
	}
	if cfg.Server.Port != 9200 {
		t.Fatalf("port: %d", cfg.Server.Port)
	}
}

func TestLoadRequiresSupabase(t *testing.T) {
	t.Setenv("SUPABASE_URL", "")
	t.Setenv("SUPABASE_SERVICE_ROLE_KEY", "")
	t.Setenv("SUPABASE_KEY", "")

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("missing supabase settings should fail")
	}
}
