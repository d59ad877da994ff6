package output

import (
	"fmt"
	"strings"

	"github.com/jwalton/go-supportscolor"

	"github.com/denisecase/datafun-venv-checker/pkg/check"
)

var (
	green  = "\033[32m"
	red    = "\033[31m"
	yellow = "\033[33m"
	dim    = "\033[2m"
	reset  = "\033[0m"
)

func init() {
	if !supportscolor.Stdout().SupportsColor {
		green, red, yellow, dim, reset = "", "", "", "", ""
	}
}

// PrintResult outputs a check result with colored status, followed by the
// remediation guide when the check did not pass.
func PrintResult(r check.Result) {
	var indent string
	switch r.Status {
	case check.StatusOK:
		fmt.Printf("%s[OK]%s %s\n", green, reset, r.Name)
		indent = "     "
	case check.StatusSkip:
		fmt.Printf("%s[SKIP]%s %s\n", yellow, reset, r.Name)
		indent = "       "
	default:
		fmt.Printf("%s[FAIL]%s %s\n", red, reset, r.Name)
		indent = "       "
	}

	for _, d := range r.Details {
		fmt.Printf("%s%s\n", indent, formatLabel(d))
	}

	if !r.OK() && r.Guide != "" {
		fmt.Printf("\n%s", r.Guide)
	}
}

// formatLabel dims the "label:" prefix of a detail line, if it has one.
func formatLabel(detail string) string {
	label, rest, found := strings.Cut(detail, ": ")
	if !found || strings.Contains(label, " ") {
		return detail
	}
	return fmt.Sprintf("%s%s:%s %s", dim, label, reset, rest)
}
