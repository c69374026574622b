package request

import (
	"errors"
	"testing"

	"cobranzas_art/internal/domain/entities"
)

func TestConsolidationRequest_ResolvePeriod(t *testing.T) {
	r := ConsolidationRequest{Period: "  06/2025  "}
	if got := r.ResolvePeriod(); got != "06/2025" {
		t.Fatalf("expected 06/2025, got %q", got)
	}

	r2 := ConsolidationRequest{Period: "   "}
	if got := r2.ResolvePeriod(); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}

func TestNoticeRequest_ResolveSheet(t *testing.T) {
	cases := []struct {
		in   string
		want entities.SheetTag
	}{
		{"", entities.SheetConsolidado},
		{"consolidado", entities.SheetConsolidado},
		{"  Consolidado  ", entities.SheetConsolidado},
		{"productor", entities.SheetProductor},
		{"PRODUCTOR", entities.SheetProductor},
	}
	for _, c := range cases {
		r := NoticeRequest{Period: "06/2025", Sheet: c.in}
		got, err := r.ResolveSheet()
		if err != nil {
			t.Fatalf("sheet %q: unexpected error: %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("sheet %q: expected %q, got %q", c.in, c.want, got)
		}
	}

	r := NoticeRequest{Period: "06/2025", Sheet: "no_cruzan"}
	if _, err := r.ResolveSheet(); !errors.Is(err, ErrUnknownSheet) {
		t.Fatalf("expected ErrUnknownSheet, got %v", err)
	}
}
