package envprobe

import (
	"context"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Describer reports facts about a language runtime.
type Describer interface {
	Describe(ctx context.Context) (EnvironmentReport, error)
}

// EnvironmentReport holds the three facts printed before any probe runs.
type EnvironmentReport struct {
	// Runtime labels each line, e.g. "Python".
	Runtime string

	Executable string
	Version    string

	// SearchPath is the ordered list of locations consulted on import.
	SearchPath []string

	// SearchPathRepr is the runtime's own rendering of SearchPath. When empty
	// the list is rendered the way Python would.
	SearchPathRepr string
}

// Lines renders the report as printed: executable, version, search path.
func (r EnvironmentReport) Lines() []string {
	return []string{
		fmt.Sprintf("%s executable: %s", r.Runtime, r.Executable),
		fmt.Sprintf("%s version: %s", r.Runtime, r.Version),
		fmt.Sprintf("%s path: %s", r.Runtime, r.searchPathString()),
	}
}

func (r EnvironmentReport) searchPathString() string {
	if r.SearchPathRepr != "" {
		return r.SearchPathRepr
	}
	return formatList(r.SearchPath)
}

// WriteEnvironmentReport writes the report lines to w.
func WriteEnvironmentReport(w io.Writer, r EnvironmentReport) error {
	for _, line := range r.Lines() {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// formatList renders items the way Python prints a list of strings.
func formatList(items []string) string {
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = quote(item)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

// quote follows Python's str repr: single quotes unless the string holds a
// single quote and no double quote, non-printable runes as \x, \u or \U
// escapes. Bytes that are not valid UTF-8 come from surrogateescape decoding
// and print as \udcXX.
func quote(s string) string {
	q := byte('\'')
	if strings.IndexByte(s, '\'') >= 0 && strings.IndexByte(s, '"') < 0 {
		q = '"'
	}

	var b strings.Builder
	b.WriteByte(q)
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			fmt.Fprintf(&b, `\udc%02x`, s[i])
			i++
			continue
		}
		i += size

		switch {
		case r == '\\':
			b.WriteString(`\\`)
		case r == rune(q):
			b.WriteByte('\\')
			b.WriteByte(q)
		case r == '\t':
			b.WriteString(`\t`)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case unicode.IsPrint(r):
			b.WriteRune(r)
		case r <= 0xff:
			fmt.Fprintf(&b, `\x%02x`, r)
		case r <= 0xffff:
			fmt.Fprintf(&b, `\u%04x`, r)
		default:
			fmt.Fprintf(&b, `\U%08x`, r)
		}
	}
	b.WriteByte(q)
	return b.String()
}
