package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"ART_MASTER_PATH", "ART_MATCH_POLICY", "ART_INSURER_ALIASES",
		"SMTP_PORT", "AWS_REGION", "AWS_ACCESS_KEY_ID", "AWS_SECRET_ACCESS_KEY",
		"DYNAMODB_ENDPOINT",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.MasterPath != "data/maestro.xlsx" || cfg.OutputDir != "data/consolidados" {
		t.Fatalf("path defaults: %+v", cfg)
	}
	if cfg.MatchPolicy != MatchByCUIT {
		t.Fatalf("policy default: %q", cfg.MatchPolicy)
	}
	if cfg.SMTPPort != 587 {
		t.Fatalf("smtp port default: %d", cfg.SMTPPort)
	}
	if cfg.AWSRegion != "us-east-1" || cfg.AWSAccessKeyID != "local" || cfg.AWSSecretAccessKey != "local" {
		t.Fatalf("aws defaults: %+v", cfg)
	}
	if cfg.DynamoEndpoint != "" {
		t.Fatalf("endpoint default: %q", cfg.DynamoEndpoint)
	}
	if cfg.InsurerAliases["qbe art"] != "experta art" {
		t.Fatalf("alias default: %v", cfg.InsurerAliases)
	}
}

func TestLoadOverridesAndValidation(t *testing.T) {
	t.Run("aws settings from env", func(t *testing.T) {
		t.Setenv("AWS_REGION", "sa-east-1")
		t.Setenv("DYNAMODB_ENDPOINT", "http://dynamodb:8000")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.AWSRegion != "sa-east-1" || cfg.DynamoEndpoint != "http://dynamodb:8000" {
			t.Fatalf("aws overrides: %+v", cfg)
		}
	})

	t.Run("bad match policy", func(t *testing.T) {
		t.Setenv("ART_MATCH_POLICY", "fuzzy")
		if _, err := Load(); err == nil {
			t.Fatalf("expected policy error")
		}
	})

	t.Run("bad smtp port", func(t *testing.T) {
		t.Setenv("ART_MATCH_POLICY", "")
		t.Setenv("SMTP_PORT", "not-a-port")
		if _, err := Load(); err == nil {
			t.Fatalf("expected port error")
		}
	})

	t.Run("bad alias entry", func(t *testing.T) {
		t.Setenv("ART_MATCH_POLICY", "")
		t.Setenv("SMTP_PORT", "")
		t.Setenv("ART_INSURER_ALIASES", "qbe art experta art")
		if _, err := Load(); err == nil {
			t.Fatalf("expected alias error")
		}
	})
}
