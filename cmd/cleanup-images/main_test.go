package main

import (
	"testing"
	"time"

	"menu-api/pkg/config"
)

func TestGraceFlag(t *testing.T) {
	cfg := &config.Config{Cleanup: config.CleanupConfig{Grace: 6 * time.Hour}}

	tests := []struct {
		name string
		args []string
		want time.Duration
	}{
		{"default from config", nil, 6 * time.Hour},
		{"flag overrides config", []string{"-grace", "30m"}, 30 * time.Minute},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags, grace := newFlagSet(cfg)
			if err := flags.Parse(tt.args); err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if *grace != tt.want {
				t.Errorf("grace = %v, want %v", *grace, tt.want)
			}
		})
	}
}
