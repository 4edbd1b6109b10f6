package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/peterh/liner"
	"github.com/sirupsen/logrus"

	lox "github.com/Daniel107x-hub/jlox-interpreter"
)

const (
	appName     = "lox"
	historyFile = ".lox_history"
	prompt      = "lox> "
)

const version = "0.1.0"

var banner = fmt.Sprintf("Lox scanner %s REPL\nCtrl+C cancels input, Ctrl+D exits. Type :quit to exit.", version)

func red(s string) string  { return "\x1b[31m" + s + "\x1b[0m" }
func blue(s string) string { return "\x1b[94m" + s + "\x1b[0m" }

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch cmd := os.Args[1]; cmd {
	case "tokens":
		os.Exit(cmdTokens(os.Args[2:]))
	case "repl":
		os.Exit(cmdRepl(os.Args[2:]))
	case "version":
		fmt.Println(version)
	case "-h", "--help", "help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", appName, cmd)
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Printf(`Lox lexical scanner %s

Usage:
  %s tokens [--verbose] <file.lox>   Scan a file and print its token stream.
  %s repl                            Scan lines interactively.
  %s version                         Print the version.

`, version, appName, appName, appName)
}

// -----------------------------------------------------------------------------
// tokens
// -----------------------------------------------------------------------------

func cmdTokens(args []string) int {
	fs := flag.NewFlagSet("tokens", flag.ExitOnError)
	verbose := fs.Bool("verbose", false, "log scan statistics")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "usage: %s tokens [--verbose] <file.lox>\n", appName)
		return 2
	}

	file := fs.Arg(0)
	src, err := os.ReadFile(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot read %s: %v\n", appName, file, err)
		return 1
	}

	var diags lox.DiagnosticList
	begin := time.Now()
	tokens := lox.NewScanner(string(src), diags.Report).ScanTokens()

	if *verbose {
		logrus.WithFields(logrus.Fields{
			"file":     file,
			"tokens":   len(tokens),
			"errors":   diags.Len(),
			"duration": time.Since(begin),
		}).Info("scan finished")
	}

	fmt.Print(lox.FormatTokens(tokens))
	for _, d := range diags.All() {
		fmt.Fprintln(os.Stderr, lox.FormatDiagnostic(string(src), file, d))
	}
	if diags.HadError() {
		// EX_DATAERR, the conventional Lox exit code for bad input.
		return 65
	}
	return 0
}

// -----------------------------------------------------------------------------
// repl
// -----------------------------------------------------------------------------

func cmdRepl(_ []string) int {
	fmt.Println(banner)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	for {
		line, err := ln.Prompt(prompt)
		if err != nil {
			// Ctrl+C aborts the current line, Ctrl+D exits.
			if err == liner.ErrPromptAborted {
				continue
			}
			fmt.Println()
			return 0
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		ln.AppendHistory(line)

		if strings.HasPrefix(strings.TrimSpace(line), ":") {
			switch strings.TrimSpace(strings.ToLower(line)) {
			case ":quit":
				return 0
			default:
				fmt.Printf("unknown command. Type :quit to exit.\n")
			}
			continue
		}

		var diags lox.DiagnosticList
		tokens := lox.NewScanner(line, diags.Report).ScanTokens()
		fmt.Print(blue(lox.FormatTokens(tokens)))
		for _, d := range diags.All() {
			fmt.Println(red(lox.FormatDiagnostic(line, "", d)))
		}
	}
}
