package main

import (
	"errors"
	"strings"
	"testing"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		args []string
		want cliArgs
	}{
		{nil, cliArgs{}},
		{[]string{"notes.txt"}, cliArgs{file: "notes.txt"}},
		{[]string{"--version"}, cliArgs{version: true}},
		{[]string{"-V"}, cliArgs{version: true}},
		{[]string{"-h"}, cliArgs{help: true}},
		{[]string{"--", "-weird-name"}, cliArgs{file: "-weird-name"}},
		{[]string{"-"}, cliArgs{file: "-"}},
	}
	for _, tt := range tests {
		got, err := parseArgs(tt.args)
		if err != nil {
			t.Fatalf("parseArgs(%q): %v", tt.args, err)
		}
		if got != tt.want {
			t.Fatalf("parseArgs(%q) = %+v, want %+v", tt.args, got, tt.want)
		}
	}
}

func TestParseArgsRejects(t *testing.T) {
	if _, err := parseArgs([]string{"--bogus"}); err == nil {
		t.Fatalf("unknown option accepted")
	}
	if _, err := parseArgs([]string{"a", "b"}); !errors.Is(err, errTooManyArgs) {
		t.Fatalf("two files: err = %v", err)
	}
	if _, err := parseArgs([]string{"a", "--", "b"}); !errors.Is(err, errTooManyArgs) {
		t.Fatalf("file after --: err = %v", err)
	}
}

func TestVersionBanner(t *testing.T) {
	old := Version
	Version = "9.9.9"
	defer func() { Version = old }()
	banner := versionBanner()
	if !strings.Contains(banner, "kilo 9.9.9") {
		t.Fatalf("banner missing version:\n%s", banner)
	}
	if !strings.Contains(banner, "╭") {
		t.Fatalf("banner has no border:\n%s", banner)
	}
}
