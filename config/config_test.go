package config

import (
	"testing"
	"time"
)

func TestRegistryConfig_WithDefaults(t *testing.T) {
	tests := []struct {
		name string
		in   int
		want int
	}{
		{name: "zero uses default", in: 0, want: 12},
		{name: "below minimum is clamped", in: 2, want: 4},
		{name: "above maximum is clamped", in: 100, want: 32},
		{name: "in range is kept", in: 16, want: 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := RegistryConfig{TokenPrefixLength: tt.in}
			if got := cfg.withDefaults().TokenPrefixLength; got != tt.want {
				t.Fatalf("withDefaults().TokenPrefixLength = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRegistryConfig_WithDefaultsKeepsEviction(t *testing.T) {
	cfg := RegistryConfig{EvictInvalidAfter: 48 * time.Hour}
	if got := cfg.withDefaults().EvictInvalidAfter; got != 48*time.Hour {
		t.Fatalf("withDefaults().EvictInvalidAfter = %v, want 48h", got)
	}
}
