// Command goscheme is the driver for the interpreter: no arguments runs
// the embedded test battery then drops into an interactive REPL; one
// argument treats it as a source file to batch-evaluate; anything else is
// a usage error (spec §6).
package main

import (
	"fmt"
	"log/slog"
	"os"

	"goscheme/internal/repl"
	"goscheme/internal/testbattery"
)

func main() {
	switch len(os.Args) {
	case 1:
		runInteractive()
	case 2:
		runFile(os.Args[1])
	default:
		fmt.Fprintln(os.Stderr, "usage: goscheme [file]")
		os.Exit(1)
	}
}

func runInteractive() {
	failures := testbattery.Run()
	if failures > 0 {
		slog.Warn("test battery finished with failures", "failures", failures)
	} else {
		slog.Info("test battery finished, all cases passed")
	}

	session := repl.New()
	defer session.Close()
	session.Run()
}

func runFile(path string) {
	src, err := os.ReadFile(path)
	if err != nil {
		slog.Error("failed to load source file", "path", path, "err", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := repl.RunFile(string(src)); err != nil {
		slog.Error("evaluation failed", "path", path, "err", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
