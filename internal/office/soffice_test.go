// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package office

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// mockExecutor records invocations and fabricates LibreOffice behavior.
type mockExecutor struct {
	availableBins map[string]bool
	runFunc       func(stdout io.Writer, name string, args ...string) error
	gotName       string
	gotArgs       []string
}

func (m *mockExecutor) LookPath(file string) (string, error) {
	if m.availableBins[file] {
		return "/usr/bin/" + file, nil
	}
	return "", errors.New("not found: " + file)
}

func (m *mockExecutor) Run(stdout io.Writer, name string, args ...string) error {
	m.gotName = name
	m.gotArgs = args
	if m.runFunc != nil {
		return m.runFunc(stdout, name, args...)
	}
	return nil
}

// outdirOf extracts the --outdir value from a recorded argument list.
func outdirOf(t *testing.T, args []string) string {
	t.Helper()
	for i, a := range args {
		if a == "--outdir" && i+1 < len(args) {
			return args[i+1]
		}
	}
	t.Fatalf("no --outdir in args: %v", args)
	return ""
}

func TestSofficeAvailable(t *testing.T) {
	tests := []struct {
		name     string
		bins     map[string]bool
		override string
		want     bool
	}{
		{name: "on path", bins: map[string]bool{"soffice": true}, want: true},
		{name: "missing", bins: map[string]bool{}, want: false},
		{
			name:     "custom binary override",
			bins:     map[string]bool{"/opt/libreoffice/soffice": true},
			override: "/opt/libreoffice/soffice",
			want:     true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newSofficeBackend(&mockExecutor{availableBins: tt.bins}, tt.override)
			if got := b.Available(); got != tt.want {
				t.Errorf("Available() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSofficeConvert(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "report.docx")
	output := filepath.Join(dir, "out", "report.pdf")
	if err := os.WriteFile(input, []byte("doc"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Dir(output), 0o755); err != nil {
		t.Fatal(err)
	}

	exec := &mockExecutor{}
	exec.runFunc = func(stdout io.Writer, name string, args ...string) error {
		// Simulate LibreOffice writing <outdir>/<base>.pdf.
		out := filepath.Join(outdirOf(t, args), "report.pdf")
		return os.WriteFile(out, []byte("%PDF-1.7 fake"), 0o644)
	}

	b := newSofficeBackend(exec, "")
	if err := b.Convert(input, output); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if exec.gotName != "soffice" {
		t.Errorf("ran %q, want soffice", exec.gotName)
	}
	joined := strings.Join(exec.gotArgs, " ")
	for _, want := range []string{"--headless", "--convert-to pdf", input} {
		if !strings.Contains(joined, want) {
			t.Errorf("args %q missing %q", joined, want)
		}
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("output not placed: %v", err)
	}
	if len(data) == 0 {
		t.Error("output file is empty")
	}
}

func TestSofficeConvert_RunFailure(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "report.docx")
	output := filepath.Join(dir, "report.pdf")

	exec := &mockExecutor{}
	exec.runFunc = func(stdout io.Writer, name string, args ...string) error {
		io.WriteString(stdout, "Error: source file could not be loaded")
		return errors.New("exit status 1")
	}

	b := newSofficeBackend(exec, "")
	err := b.Convert(input, output)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "source file could not be loaded") {
		t.Errorf("error should carry process output, got: %v", err)
	}
}

func TestSofficeConvert_NoOutputProduced(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "report.docx")
	output := filepath.Join(dir, "report.pdf")

	// Exit 0 but write nothing; soffice does this for unreadable inputs.
	b := newSofficeBackend(&mockExecutor{}, "")
	err := b.Convert(input, output)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "produced no PDF") {
		t.Errorf("error should report missing output, got: %v", err)
	}
	if _, statErr := os.Stat(output); statErr == nil {
		t.Error("no file should exist at the output path")
	}
}

func TestCondense(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "no output"},
		{"  \n ", "no output"},
		{"line one\nline two", "line one line two"},
	}
	for _, tt := range tests {
		if got := condense(tt.in); got != tt.want {
			t.Errorf("condense(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
	long := condense(strings.Repeat("x", 500))
	if len(long) > 210 {
		t.Errorf("condensed output too long: %d chars", len(long))
	}
}
