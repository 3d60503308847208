package dialog

import (
	"runtime"
	"strings"
	"testing"

	"github.com/slangeveld/xtgeo/internal/version"
)

func TestPrintHeader(t *testing.T) {
	d, out, _ := newTestDialog(t)

	d.PrintHeader("myapp", "0.2.1", "Beta release!")

	got := out.String()
	for _, want := range []string{
		"myapp, version 0.2.1 (Beta release!)",
		"Using XTGeo version " + version.Version,
		runtime.Version(),
		ansiHeader,
		ansiEnd,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("banner missing %q:\n%s", want, got)
		}
	}

	if strings.Count(got, strings.Repeat("#", 79)) != 3 {
		t.Errorf("banner should have 3 full-width border lines:\n%s", got)
	}
	for _, line := range strings.Split(got, "\n") {
		if strings.HasPrefix(line, "#") && len(line) != 79 {
			t.Errorf("banner line not 79 columns (%d): %q", len(line), line)
		}
	}
}

func TestPrintHeaderNoInfo(t *testing.T) {
	d, out, _ := newTestDialog(t)

	d.PrintHeader("app", "1.0.0", "")

	if strings.Contains(out.String(), "(") {
		t.Errorf("banner should omit the info parens when empty:\n%s", out.String())
	}
}

func TestCenter(t *testing.T) {
	tests := []struct {
		s        string
		width    int
		expected string
	}{
		{"ab", 5, " ab  "},
		{"abc", 5, " abc "},
		{"toolong", 3, "toolong"},
		{"", 4, "    "},
	}

	for _, tt := range tests {
		if got := center(tt.s, tt.width); got != tt.expected {
			t.Errorf("center(%q, %d) = %q, want %q", tt.s, tt.width, got, tt.expected)
		}
	}
}
