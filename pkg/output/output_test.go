package output

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/denisecase/datafun-venv-checker/pkg/check"
)

func withoutColors(t *testing.T) {
	t.Helper()
	oldGreen, oldRed, oldYellow, oldDim, oldReset := green, red, yellow, dim, reset
	green, red, yellow, dim, reset = "", "", "", "", ""
	t.Cleanup(func() { green, red, yellow, dim, reset = oldGreen, oldRed, oldYellow, oldDim, oldReset })
}

func captureOutput(f func()) string {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	f()

	_ = w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}

func TestPrintResultOK(t *testing.T) {
	withoutColors(t)

	output := captureOutput(func() {
		PrintResult(check.Result{
			Name:    "venv: .venv",
			Status:  check.StatusOK,
			Details: []string{"type: directory", "python: 3.12.4"},
		})
	})

	expected := "[OK] venv: .venv\n     type: directory\n     python: 3.12.4\n"
	if output != expected {
		t.Errorf("PrintResult output = %q, want %q", output, expected)
	}
}

func TestPrintResultFailIncludesGuide(t *testing.T) {
	withoutColors(t)

	output := captureOutput(func() {
		PrintResult(check.Result{
			Name:    "venv: .venv",
			Status:  check.StatusFail,
			Details: []string{".venv folder not found"},
			Guide:   "HOW TO FIX: create the venv\n",
		})
	})

	expected := "[FAIL] venv: .venv\n       .venv folder not found\n\nHOW TO FIX: create the venv\n"
	if output != expected {
		t.Errorf("PrintResult output = %q, want %q", output, expected)
	}
}

func TestPrintResultSkip(t *testing.T) {
	withoutColors(t)

	output := captureOutput(func() {
		PrintResult(check.Result{
			Name:    "deps: requirements.txt",
			Status:  check.StatusSkip,
			Details: []string{"requirements.txt is missing"},
			Guide:   "HOW TO FIX: create requirements.txt\n",
		})
	})

	expected := "[SKIP] deps: requirements.txt\n       requirements.txt is missing\n\nHOW TO FIX: create requirements.txt\n"
	if output != expected {
		t.Errorf("PrintResult output = %q, want %q", output, expected)
	}
}

func TestPrintResultOKOmitsGuide(t *testing.T) {
	withoutColors(t)

	output := captureOutput(func() {
		PrintResult(check.Result{
			Name:   "active: VIRTUAL_ENV",
			Status: check.StatusOK,
			Guide:  "HOW TO FIX: should not appear\n",
		})
	})

	expected := "[OK] active: VIRTUAL_ENV\n"
	if output != expected {
		t.Errorf("PrintResult output = %q, want %q", output, expected)
	}
}

func TestFormatLabel(t *testing.T) {
	withoutColors(t)

	tests := []struct {
		input string
		want  string
	}{
		{"type: directory", "type: directory"},
		{"no colon here", "no colon here"},
		{".venv folder not found", ".venv folder not found"},
		{"", ""},
	}

	for _, tt := range tests {
		got := formatLabel(tt.input)
		if got != tt.want {
			t.Errorf("formatLabel(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestFormatLabelWithColors(t *testing.T) {
	oldDim, oldReset := dim, reset
	dim, reset = "[DIM]", "[RESET]"
	defer func() { dim, reset = oldDim, oldReset }()

	got := formatLabel("python: 3.12.4")
	want := "[DIM]python:[RESET] 3.12.4"
	if got != want {
		t.Errorf("formatLabel = %q, want %q", got, want)
	}

	// A sentence with a colon mid-phrase is not a label.
	got = formatLabel("missing required packages: flask")
	if got != "missing required packages: flask" {
		t.Errorf("formatLabel dimmed a non-label line: %q", got)
	}
}
