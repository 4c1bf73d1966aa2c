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
		"mtd": map[string]any{
			"apiKey":  "",
			"baseUrl": "",
		},
		"poller": map[string]any{
			"defaultNotifyWindowMinutes": 5,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "MTD_APIKEY", want: "mtd.apiKey"},
		{envKey: "MTD_BASEURL", want: "mtd.baseUrl"},
		{envKey: "POLLER_DEFAULTNOTIFYWINDOWMINUTES", want: "poller.defaultNotifyWindowMinutes"},
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

func TestApplyPollerDefaults(t *testing.T) {
	p := &PollerConfig{}
	applyPollerDefaults(p)

	if p.Interval != defaultPollInterval {
		t.Fatalf("Interval = %v, want %v", p.Interval, defaultPollInterval)
	}
	if p.DefaultNotifyWindowMinutes != defaultNotifyWindow {
		t.Fatalf("DefaultNotifyWindowMinutes = %d, want %d", p.DefaultNotifyWindowMinutes, defaultNotifyWindow)
	}
	if p.SubscriptionLimit != defaultSubscriptionLimit {
		t.Fatalf("SubscriptionLimit = %d, want %d", p.SubscriptionLimit, defaultSubscriptionLimit)
	}
	if p.StopConcurrency != defaultStopConcurrency {
		t.Fatalf("StopConcurrency = %d, want %d", p.StopConcurrency, defaultStopConcurrency)
	}
}
