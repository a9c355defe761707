package decode

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestSupported(t *testing.T) {
	tests := []struct {
		filename string
		want     bool
	}{
		{"protocol.txt", true},
		{"protocol.md", true},
		{"protocol.markdown", true},
		{"protocol.html", true},
		{"protocol.htm", true},
		{"protocol.pdf", true},
		{"protocol.docx", true},
		{"protocol.PDF", true},
		{"protocol.doc", false},
		{"protocol.csv", false},
		{"protocol", false},
	}
	for _, tt := range tests {
		if got := Supported(tt.filename); got != tt.want {
			t.Errorf("Supported(%q) = %v, want %v", tt.filename, got, tt.want)
		}
	}
}

func TestFile_UnsupportedExtension(t *testing.T) {
	path := writeFixture(t, "notes.csv", "a,b,c")
	if _, err := File(path, Options{}); err == nil {
		t.Error("expected error for unsupported extension")
	}
}

func TestFile_Text(t *testing.T) {
	path := writeFixture(t, "sop.txt", "1. PURPOSE\r\nAmplify DNA.\r\n2. SAFETY\r\nGloves.")
	got, err := File(path, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(got, "\r") {
		t.Error("carriage returns not normalized")
	}
	if want := "1. PURPOSE\nAmplify DNA.\n2. SAFETY\nGloves."; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFile_Markdown(t *testing.T) {
	src := "# 1. PURPOSE\n\nAmplify target DNA.\n\n## 2. MATERIALS AND METHODS\n\nUse *primers* and a thermocycler."
	path := writeFixture(t, "sop.md", src)
	got, err := File(path, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Headings must land on their own lines with markup stripped.
	lines := strings.Split(got, "\n")
	var found []string
	for _, l := range lines {
		if l == "1. PURPOSE" || l == "2. MATERIALS AND METHODS" {
			found = append(found, l)
		}
	}
	if len(found) != 2 {
		t.Errorf("headings not preserved as lines:\n%s", got)
	}
	if !strings.Contains(got, "Use primers and a thermocycler.") {
		t.Errorf("emphasis markup not flattened:\n%s", got)
	}
}

func TestFile_HTML(t *testing.T) {
	src := `<html><head><style>p{color:red}</style></head><body>
<nav>Home | About</nav>
<h1>1. PURPOSE</h1>
<p>Amplify target DNA.</p>
<h2>2. SAFETY</h2>
<p>Wear gloves.</p>
<script>alert("x")</script>
<footer>fine print</footer>
</body></html>`
	path := writeFixture(t, "sop.html", src)
	got, err := File(path, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{"1. PURPOSE", "Amplify target DNA.", "2. SAFETY", "Wear gloves."} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
	for _, dropped := range []string{"alert", "color:red", "Home | About", "fine print"} {
		if strings.Contains(got, dropped) {
			t.Errorf("chrome content %q not dropped:\n%s", dropped, got)
		}
	}

	// Each block element is its own line, so the heading detector can
	// anchor on it.
	if !strings.Contains("\n"+got+"\n", "\n1. PURPOSE\n") {
		t.Errorf("heading not on its own line:\n%s", got)
	}
}
