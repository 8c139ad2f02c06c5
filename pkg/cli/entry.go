package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/didargs/didargs/internal/compose"
	"github.com/didargs/didargs/internal/example"
	"github.com/didargs/didargs/internal/form"
	"github.com/didargs/didargs/internal/parser"
	"github.com/didargs/didargs/internal/resolver"
	"github.com/didargs/didargs/internal/validator"
)

const usage = `didargs - build, preview and validate call arguments against a
Candid-subset interface description.

Usage:
  didargs resolve -d <file.did> <type-expr>...
  didargs fields  [-d <file.did>] <type-expr>
  didargs example -d <file.did> <type-expr>...
  didargs build   -d <file.did> -a <call.yaml|call.json>
  didargs check   -d <file.did> -a <call.yaml|call.json> [--strict-variants]
  didargs compose <value>...
  didargs help

Flags:
  -d <file>           interface description (.did) source
  -a <file>           call file with argument types and raw values
  --strict-variants   also check variant case names during check
`

// Run executes one didargs invocation and returns the process exit code.
func Run(args []string) int {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usage)
		return 2
	}

	cmd := args[0]
	rest := args[1:]

	switch cmd {
	case "help", "-help", "--help":
		fmt.Print(usage)
		return 0
	case "resolve":
		return runResolve(rest)
	case "fields":
		return runFields(rest)
	case "example":
		return runExample(rest)
	case "build":
		return runBuild(rest)
	case "check":
		return runCheck(rest)
	case "compose":
		fmt.Println(compose.Args(rest))
		return 0
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s", cmd, usage)
		return 2
	}
}

// flags holds the hand-parsed common flags; the teacher-style CLI keeps
// flag handling manual so subcommands stay self-describing.
type flags struct {
	didPath        string
	callPath       string
	strictVariants bool
	args           []string
}

func parseFlags(args []string) (*flags, error) {
	f := &flags{}
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-d", "--did":
			if i+1 >= len(args) {
				return nil, fmt.Errorf("%s requires a file path", args[i])
			}
			i++
			f.didPath = args[i]
		case "-a", "--args":
			if i+1 >= len(args) {
				return nil, fmt.Errorf("%s requires a file path", args[i])
			}
			i++
			f.callPath = args[i]
		case "--strict-variants":
			f.strictVariants = true
		default:
			f.args = append(f.args, args[i])
		}
	}
	return f, nil
}

// tableCache is shared across subcommand invocations within one process;
// repeated calls against the same grammar reuse the extracted table.
var tableCache *resolver.Cache

func loadTable(didPath string) (resolver.Table, error) {
	if didPath == "" {
		return resolver.Table{}, nil
	}
	data, err := os.ReadFile(didPath)
	if err != nil {
		return nil, err
	}
	if tableCache == nil {
		tableCache, err = resolver.NewCache(32)
		if err != nil {
			return nil, err
		}
	}
	return tableCache.Table(string(data)), nil
}

func fail(err error) int {
	fmt.Fprintln(os.Stderr, red("error:")+" "+err.Error())
	return 1
}

func runResolve(args []string) int {
	f, err := parseFlags(args)
	if err != nil {
		return fail(err)
	}
	if len(f.args) == 0 {
		return fail(fmt.Errorf("resolve: no type expressions given"))
	}
	table, err := loadTable(f.didPath)
	if err != nil {
		return fail(err)
	}
	for _, expr := range f.args {
		resolved, err := resolver.ResolveExpr(expr, table)
		if err != nil {
			return fail(err)
		}
		fmt.Println(resolved)
	}
	return 0
}

func runFields(args []string) int {
	f, err := parseFlags(args)
	if err != nil {
		return fail(err)
	}
	if len(f.args) != 1 {
		return fail(fmt.Errorf("fields: exactly one type expression expected"))
	}
	table, err := loadTable(f.didPath)
	if err != nil {
		return fail(err)
	}
	resolved, err := resolver.ResolveExpr(f.args[0], table)
	if err != nil {
		return fail(err)
	}

	if fields := parser.RecordFields(resolved); fields != nil {
		for _, fld := range fields {
			fmt.Printf("%s : %s\n", fld.Name, fld.Type.String())
		}
		return 0
	}
	if cases := parser.VariantCases(resolved); cases != nil {
		for _, c := range cases {
			if c.Type == nil {
				fmt.Println(c.Name)
			} else {
				fmt.Printf("%s : %s\n", c.Name, c.Type.String())
			}
		}
		return 0
	}
	return fail(fmt.Errorf("fields: %q is not a record or variant", resolved))
}

func runExample(args []string) int {
	f, err := parseFlags(args)
	if err != nil {
		return fail(err)
	}
	if len(f.args) == 0 {
		return fail(fmt.Errorf("example: no type expressions given"))
	}
	table, err := loadTable(f.didPath)
	if err != nil {
		return fail(err)
	}
	resolved, err := resolver.ResolveAll(f.args, table)
	if err != nil {
		return fail(err)
	}
	fmt.Println(example.Args(resolved))
	return 0
}

func runBuild(args []string) int {
	f, err := parseFlags(args)
	if err != nil {
		return fail(err)
	}
	if f.callPath == "" {
		return fail(fmt.Errorf("build: -a <call file> is required"))
	}
	cf, err := loadCallFile(f.callPath)
	if err != nil {
		return fail(err)
	}
	table, err := loadTable(f.didPath)
	if err != nil {
		return fail(err)
	}
	resolved, err := resolver.ResolveAll(cf.Types, table)
	if err != nil {
		return fail(err)
	}

	raws := make([]any, len(cf.Args))
	for i, a := range cf.Args {
		raws[i] = normalizeYAML(a)
	}
	built, err := form.BuildArgs(resolved, raws)
	if err != nil {
		return fail(err)
	}

	out, err := json.MarshalIndent(built, "", "  ")
	if err != nil {
		return fail(err)
	}
	fmt.Println(string(out))
	return 0
}

func runCheck(args []string) int {
	f, err := parseFlags(args)
	if err != nil {
		return fail(err)
	}
	if f.callPath == "" {
		return fail(fmt.Errorf("check: -a <call file> is required"))
	}
	cf, err := loadCallFile(f.callPath)
	if err != nil {
		return fail(err)
	}
	table, err := loadTable(f.didPath)
	if err != nil {
		return fail(err)
	}
	resolved, err := resolver.ResolveAll(cf.Types, table)
	if err != nil {
		return fail(err)
	}

	jsonText := cf.JSON
	if strings.TrimSpace(jsonText) == "" && cf.Args != nil {
		// allow checking structured args by round-tripping them to JSON
		b, err := json.Marshal(normalizeYAML(any(cf.Args)))
		if err != nil {
			return fail(err)
		}
		jsonText = string(b)
		if len(cf.Args) == 1 {
			one, err := json.Marshal(normalizeYAML(cf.Args[0]))
			if err != nil {
				return fail(err)
			}
			jsonText = string(one)
		}
	}

	problems := validator.New(validator.Options{StrictVariants: f.strictVariants}).
		Validate(resolved, jsonText)
	if len(problems) == 0 {
		fmt.Println(green("ok"))
		return 0
	}
	for _, p := range problems {
		fmt.Fprintln(os.Stderr, red(p))
	}
	return 1
}
