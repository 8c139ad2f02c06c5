package example

import (
	"strings"
	"testing"
)

func TestValueOptShortCircuits(t *testing.T) {
	if got := Value("opt vec nat64"); got != "null" {
		t.Errorf("Value(opt vec nat64) = %q, want null", got)
	}
}

func TestValueScalars(t *testing.T) {
	tests := []struct {
		typ  string
		want string
	}{
		{"text", `"example"`},
		{"bool", "true"},
		{"float64", "3.14"},
		{"nat", `"12345678901234567890"`},
		{"int", `"-12345678901234567890"`},
		{"nat64", "0"},
		{"int32", "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.typ, func(t *testing.T) {
			if got := Value(tt.typ); got != tt.want {
				t.Errorf("Value(%s) = %q, want %q", tt.typ, got, tt.want)
			}
		})
	}
}

func TestValueVec(t *testing.T) {
	got := Value("vec nat64")
	want := "[\n  0\n]"
	if got != want {
		t.Errorf("Value(vec nat64) = %q, want %q", got, want)
	}
}

func TestValueRecordPrettyPrinted(t *testing.T) {
	got := Value("record { start : nat64; length : nat64 }")
	want := "{\n  \"start\": 0,\n  \"length\": 0\n}"
	if got != want {
		t.Errorf("Value(record) = %q, want %q", got, want)
	}
}

func TestValueVariantUsesFirstCase(t *testing.T) {
	got := Value("variant { transfer : record { amount : nat }; stop }")
	if !strings.Contains(got, `"transfer"`) {
		t.Errorf("Value(variant) = %q, want first case transfer", got)
	}
	if strings.Contains(got, "stop") {
		t.Errorf("Value(variant) = %q, must not include later cases", got)
	}

	if got := Value("variant { stop; go }"); got != "{\n  \"stop\": null\n}" {
		t.Errorf("bare first case = %q, want stop: null", got)
	}
}

func TestValueUnresolved(t *testing.T) {
	if got := Value("SomeAlias"); got != "null" {
		t.Errorf("Value(SomeAlias) = %q, want null", got)
	}
}

func TestArgs(t *testing.T) {
	if got := Args([]string{"bool"}); got != "true" {
		t.Errorf("single arg = %q, want bare literal", got)
	}

	got := Args([]string{"bool", "text"})
	want := "[\n  true,\n  \"example\"\n]"
	if got != want {
		t.Errorf("Args = %q, want %q", got, want)
	}

	if got := Args(nil); got != "[]" {
		t.Errorf("Args(nil) = %q, want []", got)
	}
}
