package compose

import (
	"testing"

	"github.com/didargs/didargs/internal/parser"
)

func TestArgs(t *testing.T) {
	tests := []struct {
		name string
		raws []string
		want string
	}{
		{"values joined", []string{"42", `"hi"`}, `(42, "hi")`},
		{"blanks skipped", []string{" ", "1", ""}, "(1)"},
		{"all blank", []string{"", "  "}, "()"},
		{"empty input", nil, "()"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Args(tt.raws); got != tt.want {
				t.Errorf("Args(%v) = %q, want %q", tt.raws, got, tt.want)
			}
		})
	}
}

func TestRecordLiteral(t *testing.T) {
	fields := parser.RecordFields("record { name : text; amount : nat64 }")
	got := RecordLiteral(fields, map[string]string{
		"name":   "alice",
		"amount": "42",
	})
	want := `record { name = "alice" : text; amount = 42 : nat64 }`
	if got != want {
		t.Errorf("RecordLiteral = %q, want %q", got, want)
	}
}

func TestRecordLiteralKeepsExistingQuotes(t *testing.T) {
	fields := parser.RecordFields("record { memo : text }")
	got := RecordLiteral(fields, map[string]string{"memo": `"already quoted"`})
	want := `record { memo = "already quoted" : text }`
	if got != want {
		t.Errorf("RecordLiteral = %q, want %q", got, want)
	}
}

func TestWrapArgs(t *testing.T) {
	fields := parser.RecordFields("record { start : nat64 }")
	literal := RecordLiteral(fields, map[string]string{"start": "0"})
	if got := WrapArgs(literal); got != "(record { start = 0 : nat64 })" {
		t.Errorf("WrapArgs = %q", got)
	}
}

func TestRecordLiteralEmpty(t *testing.T) {
	if got := RecordLiteral(nil, nil); got != "record {}" {
		t.Errorf("RecordLiteral(nil) = %q, want record {}", got)
	}
}
