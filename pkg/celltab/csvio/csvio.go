// Package csvio tokenizes and writes delimited text in the RFC-4180 style.
//
// The tokenizer is total: malformed quoting never produces an error, only a
// best-effort field split. Input is broken into lines before fields are
// tokenized, so a quoted field cannot span a line break.
package csvio

import "strings"

// Quote is the field quoting character. It is fixed; only the separator is
// configurable.
const Quote = '"'

// Parse splits a delimited text blob into rows of fields. Lines are split on
// \r?\n boundaries first, blank lines (after trimming) are skipped, and an
// empty or all-whitespace input yields zero rows.
func Parse(text string, sep rune) [][]string {
	var rows [][]string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		rows = append(rows, TokenizeLine(line, sep))
	}
	return rows
}

// TokenizeLine splits a single line into fields. A quote anywhere in an
// unquoted field opens a quoted section, a doubled quote inside a quoted
// section is a literal quote, and a lone quote closes the section. The
// separator only delimits fields outside quoted sections.
func TokenizeLine(line string, sep rune) []string {
	var (
		fields []string
		field  strings.Builder
		quoted bool
	)

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		if quoted {
			if c == Quote {
				if i+1 < len(runes) && runes[i+1] == Quote {
					field.WriteRune(Quote)
					i++
				} else {
					quoted = false
				}
			} else {
				field.WriteRune(c)
			}
			continue
		}
		switch c {
		case sep:
			fields = append(fields, field.String())
			field.Reset()
		case Quote:
			quoted = true
		default:
			field.WriteRune(c)
		}
	}

	return append(fields, field.String())
}

// Escape prepares a field for output. Fields containing the separator, a
// quote, or a line break are wrapped in quotes with inner quotes doubled;
// anything else passes through unchanged.
func Escape(field string, sep rune) string {
	if !strings.ContainsAny(field, string(sep)+"\"\n\r") {
		return field
	}
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}

// JoinLine escapes each field and joins them with the separator.
func JoinLine(fields []string, sep rune) string {
	escaped := make([]string, len(fields))
	for i, f := range fields {
		escaped[i] = Escape(f, sep)
	}
	return strings.Join(escaped, string(sep))
}
