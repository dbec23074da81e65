package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"auth": map[string]any{
			"providerUrl": "",
			"jwtSecret":   "",
		},
		"whatsapp": map[string]any{
			"greeting": "hola",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "AUTH_PROVIDERURL", want: "auth.providerUrl"},
		{envKey: "AUTH_JWTSECRET", want: "auth.jwtSecret"},
		{envKey: "WHATSAPP_GREETING", want: "whatsapp.greeting"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsDocumentedFallbacks(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	if cfg.WhatsApp.Number != defaultWhatsAppNumber {
		t.Fatalf("WhatsApp.Number = %q, want %q", cfg.WhatsApp.Number, defaultWhatsAppNumber)
	}
	if cfg.WhatsApp.Greeting != defaultWhatsAppGreeting {
		t.Fatalf("WhatsApp.Greeting = %q, want %q", cfg.WhatsApp.Greeting, defaultWhatsAppGreeting)
	}
	if cfg.App.BaseURL != defaultAppBaseURL {
		t.Fatalf("App.BaseURL = %q, want %q", cfg.App.BaseURL, defaultAppBaseURL)
	}
	if cfg.Session.LoginPath != defaultLoginPath {
		t.Fatalf("Session.LoginPath = %q, want %q", cfg.Session.LoginPath, defaultLoginPath)
	}
}

func TestApplyDefaults_StripsTrailingSlashFromBaseURL(t *testing.T) {
	cfg := &Config{App: &AppConfig{BaseURL: "https://vitrina.example.com/"}}
	applyDefaults(cfg)

	if cfg.App.BaseURL != "https://vitrina.example.com" {
		t.Fatalf("App.BaseURL = %q, want trailing slash stripped", cfg.App.BaseURL)
	}
}
