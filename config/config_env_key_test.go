package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"socket": map[string]any{
			"reconnectDelay": "1s",
			"url":            "",
		},
		"presenter": map[string]any{
			"dwellTime": "3.5s",
		},
		"api": map[string]any{
			"baseUrl": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "SOCKET_RECONNECTDELAY", want: "socket.reconnectDelay"},
		{envKey: "SOCKET_URL", want: "socket.url"},
		{envKey: "PRESENTER_DWELLTIME", want: "presenter.dwellTime"},
		{envKey: "API_BASEURL", want: "api.baseUrl"},
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

func TestApplyDefaults_FillsPipelineDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	if cfg.Socket.ReconnectAttempts != 5 {
		t.Fatalf("ReconnectAttempts = %d, want 5", cfg.Socket.ReconnectAttempts)
	}
	if cfg.Socket.ReconnectDelay.Seconds() != 1 {
		t.Fatalf("ReconnectDelay = %s, want 1s", cfg.Socket.ReconnectDelay)
	}
	if cfg.Presenter.DwellTime.Milliseconds() != 3500 {
		t.Fatalf("DwellTime = %s, want 3.5s", cfg.Presenter.DwellTime)
	}
	if cfg.Keyring.ServiceName != "beacon" {
		t.Fatalf("Keyring.ServiceName = %q, want beacon", cfg.Keyring.ServiceName)
	}
}
