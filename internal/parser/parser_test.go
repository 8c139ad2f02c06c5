package parser

import (
	"testing"

	"github.com/didargs/didargs/internal/typesystem"
)

func TestParseRoundTrips(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want string
	}{
		{"scalar", "nat64", "nat64"},
		{"scalar case folded", "Nat64", "nat64"},
		{"opt", "opt text", "opt text"},
		{"vec", "vec nat8", "vec nat8"},
		{"angle brackets", "opt<vec<nat64>>", "opt vec nat64"},
		{"record", "record { start : nat64; length : nat64 }", "record { start : nat64; length : nat64 }"},
		{"empty record", "record {}", "record {}"},
		{"variant", "variant { ok : nat64; err : text }", "variant { ok : nat64; err : text }"},
		{"bare variant case", "variant { ok; err : text }", "variant { ok; err : text }"},
		{"alias name", "Args", "Args"},
		{"whitespace normalized", "record{a:text}", "record { a : text }"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Parse(tt.expr).String(); got != tt.want {
				t.Errorf("Parse(%q).String() = %q, want %q", tt.expr, got, tt.want)
			}
		})
	}
}

func TestParseUnparseableStaysVerbatim(t *testing.T) {
	tests := []string{
		"record { a : text } trailing",
		"opt",
		"record { a :",
		"func (nat64) -> (text)",
	}

	for _, expr := range tests {
		got := Parse(expr)
		u, ok := got.(typesystem.Unknown)
		if !ok {
			// a func head parses as Unknown already; anything else must degrade
			t.Errorf("Parse(%q) = %T, want Unknown", expr, got)
			continue
		}
		if u.Name == "" {
			t.Errorf("Parse(%q) lost the raw text", expr)
		}
	}
}

func TestRecordFieldsOrderPreserved(t *testing.T) {
	fields := RecordFields("record { b : text; a : nat64 }")
	if len(fields) != 2 {
		t.Fatalf("got %d fields, want 2", len(fields))
	}
	if fields[0].Name != "b" || fields[0].Type.String() != "text" {
		t.Errorf("fields[0] = %s : %s, want b : text", fields[0].Name, fields[0].Type)
	}
	if fields[1].Name != "a" || fields[1].Type.String() != "nat64" {
		t.Errorf("fields[1] = %s : %s, want a : nat64", fields[1].Name, fields[1].Type)
	}
}

func TestRecordFieldsNestedSemicolons(t *testing.T) {
	// the nested record carries its own ';' separators; a flat split on ';'
	// would shear the outer field list apart
	fields := RecordFields("record { a : record { x : nat8; y : nat8 }; b : text }")
	if len(fields) != 2 {
		t.Fatalf("got %d fields, want 2", len(fields))
	}
	if fields[0].Name != "a" {
		t.Errorf("fields[0].Name = %q, want a", fields[0].Name)
	}
	inner, ok := fields[0].Type.(typesystem.Record)
	if !ok {
		t.Fatalf("fields[0].Type = %T, want Record", fields[0].Type)
	}
	if len(inner.Fields) != 2 {
		t.Errorf("inner record has %d fields, want 2", len(inner.Fields))
	}
	if fields[1].Name != "b" || fields[1].Type.String() != "text" {
		t.Errorf("fields[1] = %s : %s, want b : text", fields[1].Name, fields[1].Type)
	}
}

func TestRecordFieldsNonRecord(t *testing.T) {
	if fields := RecordFields("nat64"); fields != nil {
		t.Errorf("RecordFields(nat64) = %v, want nil", fields)
	}
	if fields := RecordFields("variant { a : text }"); fields != nil {
		t.Errorf("RecordFields(variant) = %v, want nil", fields)
	}
}

func TestVariantCases(t *testing.T) {
	cases := VariantCases("variant { transfer : record { to : principal }; ping; stop }")
	if len(cases) != 3 {
		t.Fatalf("got %d cases, want 3", len(cases))
	}
	if cases[0].Name != "transfer" || cases[0].Type == nil {
		t.Errorf("cases[0] = %+v, want transfer with payload", cases[0])
	}
	if cases[1].Name != "ping" || cases[1].Type != nil {
		t.Errorf("cases[1] = %+v, want bare ping", cases[1])
	}
	if cases[2].Name != "stop" || cases[2].Type != nil {
		t.Errorf("cases[2] = %+v, want bare stop", cases[2])
	}
}

func TestRecordFieldWithoutTypeIsDropped(t *testing.T) {
	fields := RecordFields("record { a; b : text }")
	if len(fields) != 1 || fields[0].Name != "b" {
		t.Errorf("fields = %v, want just b", fields)
	}
}
