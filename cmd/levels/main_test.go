package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const goodLevel = `{"name": "Test", "spout_x": 1, "spout_y": 2, "number_sugar_grains": 3,
	"buckets": [{"x": 10, "y": 10, "width": 20, "height": 20, "needed_sugar": 3}]}`

func run(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(append([]string{"--no-embed", "--dir", dir}, args...))
	err := rootCmd.Execute()
	return buf.String(), err
}

func writeLevels(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, data := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(data), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		files   map[string]string
		wantErr bool
		want    string
	}{
		{"all_good", map[string]string{"level1.json": goodLevel, "level2.json": goodLevel}, false, "level 2: Test"},
		{"broken", map[string]string{"level1.json": goodLevel, "level2.json": `{"spout_x": 1}`}, true, "FAIL"},
		{"gap", map[string]string{"level1.json": goodLevel, "level3.json": goodLevel}, false, "unreachable"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			out, err := run(t, writeLevels(t, c.files), "validate")
			if c.wantErr != (err != nil) {
				t.Fatalf("err = %v, wantErr %v\n%s", err, c.wantErr, out)
			}
			if c.wantErr && !errors.Is(err, errInvalidLevels) {
				t.Fatalf("err = %v", err)
			}
			if !strings.Contains(out, c.want) {
				t.Fatalf("output missing %q:\n%s", c.want, out)
			}
		})
	}
}

func TestValidateEmptyDir(t *testing.T) {
	if _, err := run(t, t.TempDir(), "validate"); err == nil {
		t.Fatalf("expected error for empty directory")
	}
}

func TestListAndShow(t *testing.T) {
	dir := writeLevels(t, map[string]string{"level1.json": goodLevel})

	out, err := run(t, dir, "list")
	if err != nil || !strings.Contains(out, "Test") {
		t.Fatalf("list: %v\n%s", err, out)
	}

	out, err = run(t, dir, "show", "1")
	if err != nil || !strings.Contains(out, "needs 3") {
		t.Fatalf("show: %v\n%s", err, out)
	}

	if _, err := run(t, dir, "show", "zero"); err == nil {
		t.Fatalf("expected error for bad index")
	}
	if _, err := run(t, dir, "show", "2"); err == nil {
		t.Fatalf("expected error for missing level")
	}
}
