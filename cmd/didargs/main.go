package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/didargs/didargs/pkg/cli"
)

func main() {
	// Catch panics and show a user-friendly error
	defer func() {
		if r := recover(); r != nil {
			if os.Getenv("DEBUG") == "1" {
				panic(r) // re-panic to get the stack trace
			}
			fmt.Fprintf(os.Stderr, "Internal error: %v\n", r)
			fmt.Fprintln(os.Stderr, "This is a bug. Please report it.")
			os.Exit(1)
		}
	}()

	// Optional .env for local defaults (NO_COLOR etc.); absence is fine.
	_ = godotenv.Load()

	os.Exit(cli.Run(os.Args[1:]))
}
