package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// MatchPolicy selects which of the two consolidation policies a run uses.
// They are mutually exclusive: a run either aggregates debt to one row per
// CUIT, or keeps one row per (CUIT, insurer) and resolves the master row
// per insurer.

type MatchPolicy string

const (
	MatchByCUIT        MatchPolicy = "cuit"
	MatchByCUITInsurer MatchPolicy = "cuit-insurer"
)

// Config is the explicit configuration object handed to the pipeline and
// the wiring code. There are no package-level path defaults anywhere else;
// everything the pipeline touches on disk comes from here.
type Config struct {
	// Input files (spec'd layout: master workbook, mapping workbook, one
	// subfolder per insurer containing MM-YYYY.xlsx extracts).
	MasterPath  string
	MappingPath string
	InsurersDir string

	// Where generated Consolidado_ART_<MM-YYYY>.xlsx workbooks are written.
	OutputDir string

	MatchPolicy MatchPolicy

	// InsurerAliases maps a normalized insurer name to the normalized name
	// it should be treated as (rebrands). Only used by the cuit-insurer
	// policy when resolving the authoritative master row.
	InsurerAliases map[string]string

	// SMTP settings for the debt-notice gateway.
	SMTPHost   string
	SMTPPort   int
	SMTPUser   string
	SMTPPass   string
	MailFrom   string
	MailSender string // display name used in the From header

	// AWS settings for the audit store. The credential defaults suit a
	// local DynamoDB, which ignores them but the SDK still requires them.
	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	DynamoEndpoint     string // optional; e.g. http://dynamodb:8000
}

// Load builds a Config from environment variables. godotenv/autoload has
// already populated the environment from .env by the time this runs.
//
// Supported env vars:
//   - ART_MASTER_PATH, ART_MAPPING_PATH, ART_INSURERS_DIR, ART_OUTPUT_DIR
//   - ART_MATCH_POLICY ("cuit" | "cuit-insurer", default "cuit")
//   - ART_INSURER_ALIASES ("old=new,old2=new2")
//   - SMTP_HOST, SMTP_PORT, SMTP_USER, SMTP_PASS, MAIL_FROM, MAIL_SENDER
//   - AWS_REGION, AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY, DYNAMODB_ENDPOINT
func Load() (*Config, error) {
	cfg := &Config{
		MasterPath:  getenvDefault("ART_MASTER_PATH", "data/maestro.xlsx"),
		MappingPath: getenvDefault("ART_MAPPING_PATH", "data/mapeo_aseguradoras.xlsx"),
		InsurersDir: getenvDefault("ART_INSURERS_DIR", "data/aseguradoras"),
		OutputDir:   getenvDefault("ART_OUTPUT_DIR", "data/consolidados"),
		MatchPolicy: MatchPolicy(getenvDefault("ART_MATCH_POLICY", string(MatchByCUIT))),
		SMTPHost:    os.Getenv("SMTP_HOST"),
		SMTPUser:    os.Getenv("SMTP_USER"),
		SMTPPass:    os.Getenv("SMTP_PASS"),
		MailFrom:    os.Getenv("MAIL_FROM"),
		MailSender:  getenvDefault("MAIL_SENDER", "Cobranzas Promecor"),

		AWSRegion:          getenvDefault("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:     getenvDefault("AWS_ACCESS_KEY_ID", "local"),
		AWSSecretAccessKey: getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
		DynamoEndpoint:     os.Getenv("DYNAMODB_ENDPOINT"),
	}

	switch cfg.MatchPolicy {
	case MatchByCUIT, MatchByCUITInsurer:
	default:
		return nil, fmt.Errorf("invalid ART_MATCH_POLICY %q (want %q or %q)",
			cfg.MatchPolicy, MatchByCUIT, MatchByCUITInsurer)
	}

	port := getenvDefault("SMTP_PORT", "587")
	p, err := strconv.Atoi(port)
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_PORT %q: %w", port, err)
	}
	cfg.SMTPPort = p

	aliases, err := parseAliases(os.Getenv("ART_INSURER_ALIASES"))
	if err != nil {
		return nil, err
	}
	cfg.InsurerAliases = aliases

	return cfg, nil
}

// parseAliases parses "old=new,old2=new2" into a normalized map. An empty
// value yields the built-in default (the QBE -> Experta rebrand).
func parseAliases(raw string) (map[string]string, error) {
	if strings.TrimSpace(raw) == "" {
		return map[string]string{"qbe art": "experta art"}, nil
	}
	out := map[string]string{}
	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		from, to, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("invalid ART_INSURER_ALIASES entry %q", pair)
		}
		out[normalizeAlias(from)] = normalizeAlias(to)
	}
	return out, nil
}

func normalizeAlias(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
