package form

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestBuildBigIntegerBoundary(t *testing.T) {
	tests := []struct {
		name string
		typ  string
		raw  any
		want any
	}{
		{"uint64 max stays string", "nat", "18446744073709551615", "18446744073709551615"},
		{"small digits become int", "nat", "42", int64(42)},
		{"negative int", "int", "-7", int64(-7)},
		{"wide negative stays string", "int", "-123456789012345678901", "-123456789012345678901"},
		{"non-digit passes through", "nat", "not-a-number", "not-a-number"},
		{"native number", "nat", float64(5), int64(5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Build(tt.typ, tt.raw)
			if err != nil {
				t.Fatalf("Build(%s, %v): %v", tt.typ, tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("Build(%s, %v) = %v (%T), want %v (%T)", tt.typ, tt.raw, got, got, tt.want, tt.want)
			}
		})
	}
}

func TestBuildScalars(t *testing.T) {
	tests := []struct {
		name    string
		typ     string
		raw     any
		want    any
		wantErr bool
	}{
		{"text", "text", "hello", "hello", false},
		{"text from nil", "text", nil, "", false},
		{"bool native", "bool", true, true, false},
		{"bool invalid", "bool", "raw", nil, true},
		{"bool true string", "bool", "TRUE", true, false},
		{"bool false string", "bool", "false", false, false},
		{"float from string", "float64", "2.5", 2.5, false},
		{"float invalid", "float32", "abc", nil, true},
		{"principal passthrough", "principal", "aaaaa-aa", "aaaaa-aa", false},
		{"fixed width from string", "nat32", "7", int64(7), false},
		{"fixed width invalid", "int8", "x", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Build(tt.typ, tt.raw)
			if tt.wantErr {
				var ce *ConvertError
				if !errors.As(err, &ce) {
					t.Fatalf("Build(%s, %v) err = %v, want ConvertError", tt.typ, tt.raw, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Build(%s, %v): %v", tt.typ, tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("Build(%s, %v) = %v, want %v", tt.typ, tt.raw, got, tt.want)
			}
		})
	}
}

func TestBuildOptAndVec(t *testing.T) {
	if got, err := Build("opt text", nil); err != nil || got != nil {
		t.Errorf("Build(opt text, nil) = %v, %v; want nil, nil", got, err)
	}
	if got, err := Build("opt text", "hi"); err != nil || got != "hi" {
		t.Errorf("Build(opt text, hi) = %v, %v; want hi", got, err)
	}

	got, err := Build("vec nat64", []any{float64(1), float64(2)})
	if err != nil {
		t.Fatalf("Build(vec nat64): %v", err)
	}
	seq := got.([]any)
	if len(seq) != 2 || seq[0] != int64(1) || seq[1] != int64(2) {
		t.Errorf("Build(vec nat64) = %v", seq)
	}

	if _, err := Build("vec nat64", "oops"); err == nil {
		t.Errorf("Build(vec nat64, string) succeeded, want expected-sequence error")
	}
}

func TestBuildRecordKeyed(t *testing.T) {
	raw := map[string]any{"start": float64(0), "length": float64(5)}
	got, err := Build("record { start : nat64; length : nat64 }", raw)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	obj := got.(*Object)
	b, err := json.Marshal(obj)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `{"start":0,"length":5}` {
		t.Errorf("marshaled = %s, want declaration order preserved", b)
	}
}

func TestBuildRecordMissingField(t *testing.T) {
	_, err := Build("record { start : nat64; length : nat64 }", map[string]any{"start": float64(0)})
	var ce *ConvertError
	if !errors.As(err, &ce) {
		t.Fatalf("err = %v, want ConvertError", err)
	}
}

func TestBuildRecordPositional(t *testing.T) {
	got, err := Build("record { start : nat64; length : nat64 }", []any{float64(1), float64(2)})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	obj := got.(*Object)
	if v, _ := obj.Get("start"); v != int64(1) {
		t.Errorf("start = %v, want 1", v)
	}
	if v, _ := obj.Get("length"); v != int64(2) {
		t.Errorf("length = %v, want 2", v)
	}

	if _, err := Build("record { a : text; b : text }", []any{"one"}); err == nil {
		t.Errorf("positional length mismatch succeeded, want error")
	}
}

func TestBuildVariant(t *testing.T) {
	got, err := Build("variant { transfer : nat64; stop }", map[string]any{"transfer": "42"})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	obj := got.(*Object)
	if v, _ := obj.Get("transfer"); v != int64(42) {
		t.Errorf("transfer payload = %v, want 42", v)
	}

	got, err = Build("variant { transfer : nat64; stop }", map[string]any{"stop": nil})
	if err != nil {
		t.Fatalf("Build bare case: %v", err)
	}
	obj = got.(*Object)
	if v, ok := obj.Get("stop"); !ok || v != nil {
		t.Errorf("stop payload = %v, want null", v)
	}

	// undeclared case names pass through unchanged
	raw := map[string]any{"mystery": "x"}
	got, err = Build("variant { stop }", raw)
	if err != nil {
		t.Fatalf("Build unknown case: %v", err)
	}
	if _, ok := got.(map[string]any); !ok {
		t.Errorf("unknown case = %T, want raw map passthrough", got)
	}
}

func TestBuildPreparsesEmbeddedJSON(t *testing.T) {
	got, err := Build("record { start : nat64; length : nat64 }", `{"start": 1, "length": 2}`)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	obj := got.(*Object)
	if v, _ := obj.Get("length"); v != int64(2) {
		t.Errorf("length = %v, want 2", v)
	}

	// malformed JSON-looking text stays text; for a converter input this
	// then fails the record check rather than being silently mangled
	if _, err := Build("record { a : text }", "{not json"); err == nil {
		t.Errorf("expected record-value error for unparseable text")
	}
}

func TestBuildUnresolvedPassThrough(t *testing.T) {
	raw := map[string]any{"whatever": true}
	got, err := Build("SomeAlias", raw)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if _, ok := got.(map[string]any); !ok {
		t.Errorf("got %T, want raw passthrough", got)
	}
}

func TestBuildArgs(t *testing.T) {
	single, err := BuildArgs([]string{"nat64"}, []any{"7"})
	if err != nil {
		t.Fatalf("BuildArgs single: %v", err)
	}
	if single != int64(7) {
		t.Errorf("single = %v, want bare 7", single)
	}

	multi, err := BuildArgs([]string{"text", "bool"}, []any{"hi", true})
	if err != nil {
		t.Fatalf("BuildArgs multi: %v", err)
	}
	seq := multi.([]any)
	if len(seq) != 2 || seq[0] != "hi" || seq[1] != true {
		t.Errorf("multi = %v", seq)
	}

	_, err = BuildArgs([]string{"text"}, []any{"a", "b"})
	var ce *ConvertError
	if !errors.As(err, &ce) {
		t.Fatalf("arity err = %v, want ConvertError", err)
	}
}

func TestObjectMarshalOrder(t *testing.T) {
	obj := NewObject()
	obj.Set("z", 1)
	obj.Set("a", 2)
	obj.Set("m", nil)

	b, err := json.Marshal(obj)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `{"z":1,"a":2,"m":null}` {
		t.Errorf("marshaled = %s, want insertion order", b)
	}
}
