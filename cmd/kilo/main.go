package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/debug"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"kilo/internal/editor"
	"kilo/internal/terminal"
)

var Version = "dev"

const usage = "usage: kilo [--version] [--help] [--] [file]"

const helpMessage = "HELP: Ctrl-S = save | Ctrl-Q = quit | Ctrl-F = find"

var errTooManyArgs = errors.New("at most one file may be given")

type cliArgs struct {
	version bool
	help    bool
	file    string
}

func parseArgs(args []string) (cliArgs, error) {
	var c cliArgs
	setFile := func(name string) error {
		if c.file != "" {
			return errTooManyArgs
		}
		c.file = name
		return nil
	}
	for i, arg := range args {
		switch {
		case arg == "--":
			for _, rest := range args[i+1:] {
				if err := setFile(rest); err != nil {
					return c, err
				}
			}
			return c, nil
		case arg == "--version" || arg == "-V":
			c.version = true
		case arg == "--help" || arg == "-h":
			c.help = true
		case strings.HasPrefix(arg, "-") && arg != "-":
			return c, fmt.Errorf("unknown option %q", arg)
		default:
			if err := setFile(arg); err != nil {
				return c, err
			}
		}
	}
	return c, nil
}

func versionBanner() string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(1, 6).
		Align(lipgloss.Center)
	return box.Render(fmt.Sprintf("kilo %s\na small terminal text editor", Version))
}

// debugLogger logs to the file named by KILO_DEBUG_LOG, or nowhere.
func debugLogger() (*slog.Logger, func(), error) {
	path := os.Getenv("KILO_DEBUG_LOG")
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("debug log: %w", err)
	}
	h := slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(h), func() { f.Close() }, nil
}

func run(file string) error {
	log, closeLog, err := debugLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	t, err := terminal.Open(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}
	defer func() {
		_, _ = os.Stdout.WriteString(terminal.ClearScreen)
		_ = t.Close()
	}()
	defer func() {
		if r := recover(); r != nil {
			_, _ = os.Stdout.WriteString(terminal.ClearScreen)
			_ = t.Close()
			fmt.Fprintf(os.Stderr, "kilo panic: %v\n", r)
			_, _ = os.Stderr.Write(debug.Stack())
			os.Exit(2)
		}
	}()
	if err := t.EnableRawMode(); err != nil {
		return err
	}

	opts := editor.DefaultOptions()
	opts.Version = Version
	s, err := editor.New(t, opts, log)
	if err != nil {
		return err
	}
	if file != "" {
		if err := s.Open(file); err != nil {
			return err
		}
	}
	s.SetStatus(helpMessage)
	log.Debug("session started", "version", Version, "file", file)
	return s.Run()
}

func main() {
	cli, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "kilo: %v\n%s\n", err, usage)
		os.Exit(2)
	}
	if cli.help {
		fmt.Println(usage)
		return
	}
	if cli.version {
		fmt.Println(versionBanner())
		return
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "kilo requires a TTY on stdin and stdout")
		os.Exit(1)
	}
	if err := run(cli.file); err != nil {
		fmt.Fprintf(os.Stderr, "kilo: %v\n", err)
		os.Exit(1)
	}
}
