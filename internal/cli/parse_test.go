package cli

import (
	"bytes"
	"strings"
	"testing"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestParseCommand(t *testing.T) {
	out, err := runCommand(t, "parse", "user>priv", "name=admin")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if got := strings.TrimSpace(out); got != "user>priv name=admin" {
		t.Errorf("output = %q, want %q", got, "user>priv name=admin")
	}
}

func TestParseCommandSyntaxError(t *testing.T) {
	if _, err := runCommand(t, "parse", "user>"); err == nil {
		t.Fatal("expected syntax error")
	}
}
