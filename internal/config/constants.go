package config

// MaxResolveDepth caps alias/type recursion. Declarations deeper than this
// are treated as unresolvable rather than overflowing the stack.
const MaxResolveDepth = 64

// Int64Digits is the maximum number of decimal digits that is guaranteed to
// fit a 64-bit integer. Unbounded nat/int literals with more digits of
// magnitude are carried as decimal strings to avoid precision loss.
const Int64Digits = 19

// Example placeholder values used by the example synthesizer.
const (
	TextExample      = "example"
	PrincipalExample = "ryjl3-tyaaa-aaaaa-aaaba-cai"
	FloatExample     = 3.14
	NatExample       = "12345678901234567890"
	IntExample       = "-12345678901234567890"
)

// ScalarNames is the set of builtin scalar type keywords, lowercase.
var ScalarNames = map[string]bool{
	"text":      true,
	"bool":      true,
	"float32":   true,
	"float64":   true,
	"principal": true,
	"nat":       true,
	"int":       true,
	"nat8":      true,
	"nat16":     true,
	"nat32":     true,
	"nat64":     true,
	"int8":      true,
	"int16":     true,
	"int32":     true,
	"int64":     true,
}
