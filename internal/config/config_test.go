package config

import (
	"os"
	"testing"
)

func TestApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 10 {
		t.Errorf("expected ReadTimeoutSec=10, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.Convert.ParallelThreshold != 65536 {
		t.Errorf("expected ParallelThreshold=65536, got %d", cfg.Convert.ParallelThreshold)
	}
	if cfg.Convert.MaxBatchSize != 2_000_000 {
		t.Errorf("expected MaxBatchSize=2000000, got %d", cfg.Convert.MaxBatchSize)
	}
}

func TestValidate_InvalidPort(t *testing.T) {
	cfg := Config{HTTP: HTTPConfig{Port: 0}}
	cfg.ApplyDefaults()

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for invalid port")
	}
}

func TestValidate_ThresholdAboveMaxBatch(t *testing.T) {
	cfg := Config{
		HTTP: HTTPConfig{Port: 8080},
		Convert: ConvertConfig{
			ParallelThreshold: 1000,
			MaxBatchSize:      100,
		},
	}
	cfg.ApplyDefaults()

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error when parallel_threshold exceeds max_batch_size")
	}
}

func TestValidate_NegativeWorkers(t *testing.T) {
	cfg := Config{
		HTTP:    HTTPConfig{Port: 8080},
		Convert: ConvertConfig{MaxWorkers: -2},
	}
	cfg.ApplyDefaults()

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for negative max_workers")
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("BNGGRID_TEST_PORT", "9090")

	out := expandEnvVars([]byte("port: ${BNGGRID_TEST_PORT}"))
	if string(out) != "port: 9090" {
		t.Errorf("unexpected expansion: %q", out)
	}

	os.Unsetenv("BNGGRID_TEST_MISSING")
	out = expandEnvVars([]byte("level: ${BNGGRID_TEST_MISSING:-info}"))
	if string(out) != "level: info" {
		t.Errorf("unexpected default expansion: %q", out)
	}
}
