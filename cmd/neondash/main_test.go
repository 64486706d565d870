package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--log-level", "error", "--seed", "7", "--config", ""}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestLevelsList(t *testing.T) {
	out, err := execute(t, "levels", "list", "--levels", "")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"01-neon-gateway", "Neon Gateway", "02-cosmic-tunnel", "PORTALS"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestLevelsValidate(t *testing.T) {
	fixtures := filepath.Join("..", "..", "internal", "level", "testdata", "levels")

	out, err := execute(t, "levels", "validate", filepath.Join(fixtures, "a-steps.yaml"), filepath.Join(fixtures, "b-pack.yml"))
	if err != nil {
		t.Fatalf("valid files rejected: %v\n%s", err, out)
	}
	if strings.Count(out, "ok ") != 3 {
		t.Errorf("expected three levels reported ok:\n%s", out)
	}

	out, err = execute(t, "levels", "validate", filepath.Join(fixtures, "broken.yaml"))
	if !errors.Is(err, errInvalidFiles) {
		t.Fatalf("error = %v, expected errInvalidFiles", err)
	}
	if !strings.Contains(out, "FAIL") {
		t.Errorf("expected a FAIL line:\n%s", out)
	}
}

func TestPlayWatchNeedsLevelsDir(t *testing.T) {
	t.Cleanup(func() { flagWatch = false })

	_, err := execute(t, "play", "--watch", "--levels", "")
	if !errors.Is(err, errWatchWithoutDir) {
		t.Fatalf("error = %v, expected errWatchWithoutDir", err)
	}
}

func TestSimWinsEasyLevel(t *testing.T) {
	dir := t.TempDir()
	body := "id: easy\nname: Easy\nlength: 40\nend_x: 30\n"
	if err := os.WriteFile(filepath.Join(dir, "easy.yaml"), []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "sim", "--levels", dir, "--ticks", "2000", "--attempts", "1")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "easy") || !strings.Contains(out, "won") || !strings.Contains(out, "100%") {
		t.Errorf("unexpected sim output:\n%s", out)
	}
}

func TestSimUnknownLevel(t *testing.T) {
	if _, err := execute(t, "sim", "--levels", "", "no-such-level"); err == nil {
		t.Error("expected an error for an unknown level")
	}
}
