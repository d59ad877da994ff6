package reqfile

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected []string
	}{
		{
			name:     "comments and blanks dropped in order",
			content:  "requests\n# comment\n\nflask",
			expected: []string{"requests", "flask"},
		},
		{
			name:     "whitespace trimmed",
			content:  "  requests  \n\tflask\t\n",
			expected: []string{"requests", "flask"},
		},
		{
			name:     "empty file",
			content:  "",
			expected: []string{},
		},
		{
			name:     "only comments and blank lines",
			content:  "# Comment 1\n\n   \n# Comment 2\n",
			expected: []string{},
		},
		{
			name:     "version specifiers pass through unmodified",
			content:  "requests>=2.28\nflask[async]==3.0.1\nnumpy~=1.26\n",
			expected: []string{"requests>=2.28", "flask[async]==3.0.1", "numpy~=1.26"},
		},
		{
			name:     "indented comment dropped",
			content:  "   # not a requirement\nrequests",
			expected: []string{"requests"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.content)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Parse() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "requirements.txt")
	if err := os.WriteFile(path, []byte("requests\n# comment\n\nflask"), 0o600); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	got, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile failed: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"requests", "flask"}) {
		t.Errorf("ParseFile() = %v, want [requests flask]", got)
	}
}

func TestParseFile_Nonexistent(t *testing.T) {
	_, err := ParseFile("/nonexistent/requirements.txt")
	if err == nil {
		t.Error("expected error for non-existent file")
	}
}

func TestExists(t *testing.T) {
	tmpDir := t.TempDir()

	path := filepath.Join(tmpDir, "requirements.txt")
	if Exists(path) {
		t.Error("Exists() = true for missing file")
	}

	if err := os.WriteFile(path, []byte("requests\n"), 0o600); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}
	if !Exists(path) {
		t.Error("Exists() = false for present file")
	}

	if Exists(tmpDir) {
		t.Error("Exists() = true for directory")
	}
}

func TestDistName(t *testing.T) {
	tests := []struct {
		requirement string
		want        string
	}{
		{"requests", "requests"},
		{"requests>=2.28", "requests"},
		{"flask[async]==3.0.1", "flask"},
		{"numpy~=1.26", "numpy"},
		{"pandas ; python_version > '3.9'", "pandas"},
		{"requests # pinned later", "requests"},
		{"Django!=4.0", "Django"},
	}

	for _, tt := range tests {
		if got := DistName(tt.requirement); got != tt.want {
			t.Errorf("DistName(%q) = %q, want %q", tt.requirement, got, tt.want)
		}
	}
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Requests", "requests"},
		{"typing_extensions", "typing-extensions"},
		{"zope.interface", "zope-interface"},
		{"A__weird..Name", "a-weird-name"},
	}

	for _, tt := range tests {
		if got := NormalizeName(tt.name); got != tt.want {
			t.Errorf("NormalizeName(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
