package csvio

import (
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected [][]string
	}{
		{"empty input", "", nil},
		{"whitespace only", "   \n\t\n  ", nil},
		{"single row", "a,b,c", [][]string{{"a", "b", "c"}}},
		{"two rows", "a,b\nc,d", [][]string{{"a", "b"}, {"c", "d"}}},
		{"crlf line endings", "a,b\r\nc,d\r\n", [][]string{{"a", "b"}, {"c", "d"}}},
		{"blank lines skipped", "a\n\n\nb\n", [][]string{{"a"}, {"b"}}},
		{"empty fields kept", "a,,c", [][]string{{"a", "", "c"}}},
		{"leading and trailing empties", ",b,", [][]string{{"", "b", ""}}},
		{"quoted separator", `"a,b",c`, [][]string{{"a,b", "c"}}},
		{"escaped quote", `"say ""hi""",x`, [][]string{{`say "hi"`, "x"}}},
		{"mid-field quote opens section", `ab"c,d"e`, [][]string{{"abc,de"}}},
		{"unterminated quote", `"abc`, [][]string{{"abc"}}},
		{"quote only", `""`, [][]string{{""}}},
	}

	for _, tt := range tests {
		got := Parse(tt.input, ',')
		if !reflect.DeepEqual(got, tt.expected) {
			t.Errorf("%s: Parse(%q) = %#v, expected %#v", tt.name, tt.input, got, tt.expected)
		}
	}
}

func TestParseCustomSeparator(t *testing.T) {
	got := Parse("a;b;\"c;d\"", ';')
	expected := [][]string{{"a", "b", "c;d"}}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Parse = %#v, expected %#v", got, expected)
	}
}

func TestTokenizeLine(t *testing.T) {
	// A separator inside a quoted section is literal text.
	got := TokenizeLine(`x,"1,2",y`, ',')
	expected := []string{"x", "1,2", "y"}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("TokenizeLine = %#v, expected %#v", got, expected)
	}
}

func TestEscape(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"plain", "plain"},
		{"", ""},
		{"no escape 42", "no escape 42"},
		{"a,b", `"a,b"`},
		{`has "quote"`, `"has ""quote"""`},
		{"line\nbreak", "\"line\nbreak\""},
		{"carriage\rreturn", "\"carriage\rreturn\""},
	}

	for _, tt := range tests {
		got := Escape(tt.input, ',')
		if got != tt.expected {
			t.Errorf("Escape(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}

func TestJoinLine(t *testing.T) {
	got := JoinLine([]string{"a", "b,c", `d"e`}, ',')
	expected := `a,"b,c","d""e"`
	if got != expected {
		t.Errorf("JoinLine = %q, expected %q", got, expected)
	}
}

func TestEscapeParseRoundTrip(t *testing.T) {
	fields := []string{"plain", "comma,inside", `quote"inside`, "", "tail "}
	line := JoinLine(fields, ',')
	rows := Parse(line, ',')
	if len(rows) != 1 || !reflect.DeepEqual(rows[0], fields) {
		t.Errorf("round trip of %#v via %q gave %#v", fields, line, rows)
	}
}
