package config

import "testing"

func TestStoreConfigured(t *testing.T) {
	tests := []struct {
		name  string
		url   string
		token string
		want  bool
	}{
		{name: "both set", url: "redis://localhost:6379", token: "secret", want: true},
		{name: "missing token", url: "redis://localhost:6379", token: "", want: false},
		{name: "missing url", url: "", token: "secret", want: false},
		{name: "both missing", url: "", token: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{RedisURL: tt.url, RedisToken: tt.token}
			if got := cfg.StoreConfigured(); got != tt.want {
				t.Errorf("StoreConfigured() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ENV", "")
	t.Setenv("SERVER_ADDR", "")
	t.Setenv("CONTENT_DIR", "")
	cfg := Load()

	if cfg.ServerAddr == "" {
		t.Error("ServerAddr default is empty")
	}
	if cfg.ContentDir == "" {
		t.Error("ContentDir default is empty")
	}
	if !cfg.IsDev() {
		t.Error("default environment should be development")
	}
}
