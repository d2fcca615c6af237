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
		"blackout": map[string]any{
			"baseUrl": "/api",
			"jwt": map[string]any{
				"secret":         "",
				"accessTokenExp": "15m",
			},
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "BLACKOUT_BASEURL", want: "blackout.baseUrl"},
		{envKey: "BLACKOUT_JWT_SECRET", want: "blackout.jwt.secret"},
		{envKey: "BLACKOUT_JWT_ACCESSTOKENEXP", want: "blackout.jwt.accessTokenExp"},
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
