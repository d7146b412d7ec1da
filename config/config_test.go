package config_test

import (
	"testing"

	"github.com/nzcv/armvisor/config"
)

func TestDefaultHasSaneValues(t *testing.T) {
	cfg := config.Default()
	if cfg.MemorySize == 0 {
		t.Error("MemorySize should not be zero")
	}
	if cfg.MaxInstructions <= 0 {
		t.Error("MaxInstructions should be positive")
	}
	if !cfg.EnforceReadOnly {
		t.Error("EnforceReadOnly should default to true")
	}
	if cfg.TelemetryEnabled {
		t.Error("TelemetryEnabled should default to false")
	}
	if cfg.TelemetryAddr == "" {
		t.Error("TelemetryAddr should have a default value")
	}
}

func TestConfigFieldsAreIndependentlyOverridable(t *testing.T) {
	cfg := config.Default()
	cfg.MemorySize = 4096
	cfg.MaxInstructions = 10
	cfg.EnforceReadOnly = false
	cfg.TelemetryEnabled = true
	cfg.TelemetryAddr = "localhost:9999"

	if cfg.MemorySize != 4096 || cfg.MaxInstructions != 10 || cfg.EnforceReadOnly || !cfg.TelemetryEnabled || cfg.TelemetryAddr != "localhost:9999" {
		t.Errorf("overrides did not stick: %+v", cfg)
	}
}
