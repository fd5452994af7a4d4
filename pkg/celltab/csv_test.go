package celltab

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/ukaji3/celltab-go/pkg/celltab/ref"
	"github.com/ukaji3/celltab-go/pkg/celltab/value"
)

func TestToCSV(t *testing.T) {
	tab := New()
	tab.Set("A1", value.Number(1))
	tab.Set("B1", value.String("two"))
	tab.Set("A2", value.Bool(true))

	got := tab.ToCSV(DefaultExportOptions())
	expected := "1,two\ntrue,"
	if got != expected {
		t.Errorf("ToCSV = %q, expected %q", got, expected)
	}
}

func TestToCSVEmptyTable(t *testing.T) {
	tab := New()
	if got := tab.ToCSV(DefaultExportOptions()); got != "" {
		t.Errorf("ToCSV of empty table = %q, expected empty string", got)
	}
	if got := tab.ToCSV(ExportOptions{IncludeHeaders: true}); got != "" {
		t.Errorf("ToCSV with headers of empty table = %q, expected empty string", got)
	}
}

func TestToCSVHeaders(t *testing.T) {
	tab := New()
	tab.Set("B1", value.Number(1))
	tab.Set("C2", value.Number(2))

	got := tab.ToCSV(ExportOptions{IncludeHeaders: true})
	expected := "A,B,C\n,1,\n,,2"
	if got != expected {
		t.Errorf("ToCSV = %q, expected %q", got, expected)
	}

	// Compact mode starts headers at the first occupied column.
	anchor := false
	got = tab.ToCSV(ExportOptions{IncludeHeaders: true, AnchorAtColumnA: &anchor})
	expected = "B,C\n1,\n,2"
	if got != expected {
		t.Errorf("compact ToCSV = %q, expected %q", got, expected)
	}
}

func TestToCSVEscaping(t *testing.T) {
	tab := New()
	tab.Set("A1", value.String("a,b"))
	tab.Set("B1", value.String(`say "hi"`))
	tab.Set("C1", value.String("line\nbreak"))
	tab.Set("D1", value.String("plain"))

	got := tab.ToCSV(DefaultExportOptions())
	expected := `"a,b","say ""hi""","line` + "\n" + `break",plain`
	if got != expected {
		t.Errorf("ToCSV = %q, expected %q", got, expected)
	}
}

func TestToCSVOptions(t *testing.T) {
	tab := New()
	tab.Set("A1", value.Number(1))
	tab.Set("B2", value.Number(2))

	got := tab.ToCSV(ExportOptions{Separator: ';', LineTerminator: "\r\n"})
	expected := "1;\r\n;2"
	if got != expected {
		t.Errorf("ToCSV = %q, expected %q", got, expected)
	}
}

func TestLoadCSV(t *testing.T) {
	tab := New()
	if err := tab.LoadCSV("1,two\ntrue,", DefaultImportOptions()); err != nil {
		t.Fatalf("LoadCSV failed: %v", err)
	}

	expected := []Pair{
		{Ref: "A1", Value: value.Number(1)},
		{Ref: "B1", Value: value.String("two")},
		{Ref: "A2", Value: value.Bool(true)},
	}
	if got := tab.CompactPairs(); !reflect.DeepEqual(got, expected) {
		t.Errorf("CompactPairs = %#v, expected %#v", got, expected)
	}
}

func TestLoadCSVSkipsEmptyFields(t *testing.T) {
	tab := New()
	if err := tab.LoadCSV("A,,C\n,B,", DefaultImportOptions()); err != nil {
		t.Fatalf("LoadCSV failed: %v", err)
	}

	// Empty fields never become keys.
	expected := []string{"A1", "C1", "B2"}
	if got := tab.ListReferences(); !reflect.DeepEqual(got, expected) {
		t.Errorf("ListReferences = %v, expected %v", got, expected)
	}
}

func TestLoadCSVReplaces(t *testing.T) {
	tab := New()
	tab.Set("Z99", value.String("old"))

	if err := tab.LoadCSV("x", DefaultImportOptions()); err != nil {
		t.Fatalf("LoadCSV failed: %v", err)
	}
	if got, _ := tab.Get("Z99"); !got.IsAbsent() {
		t.Error("LoadCSV should clear existing contents")
	}
	if tab.Size() != 1 {
		t.Errorf("size = %d, expected 1", tab.Size())
	}
}

func TestLoadCSVHeaderAndOrigin(t *testing.T) {
	tab := New()
	opts := ImportOptions{HasHeaderRow: true, OriginRow: 3, OriginColumn: "B"}
	if err := tab.LoadCSV("col1,col2\n10,20\n30,40", opts); err != nil {
		t.Fatalf("LoadCSV failed: %v", err)
	}

	expected := []Pair{
		{Ref: "B3", Value: value.Number(10)},
		{Ref: "C3", Value: value.Number(20)},
		{Ref: "B4", Value: value.Number(30)},
		{Ref: "C4", Value: value.Number(40)},
	}
	if got := tab.CompactPairs(); !reflect.DeepEqual(got, expected) {
		t.Errorf("CompactPairs = %#v, expected %#v", got, expected)
	}
}

func TestLoadCSVBadOrigin(t *testing.T) {
	tab := New()
	tab.Set("A1", value.Number(1))

	if err := tab.LoadCSV("x", ImportOptions{OriginRow: -2}); !errors.Is(err, ref.ErrRange) {
		t.Errorf("expected ErrRange for bad origin row, got %v", err)
	}
	if err := tab.LoadCSV("x", ImportOptions{OriginColumn: "a1"}); !errors.Is(err, ref.ErrFormat) {
		t.Errorf("expected ErrFormat for bad origin column, got %v", err)
	}
	// Option validation happens before the table is cleared.
	if tab.Size() != 1 {
		t.Errorf("table cleared despite invalid options: size %d", tab.Size())
	}
}

func TestLoadCSVOverflowingRangeLeavesTableIntact(t *testing.T) {
	tab := New()
	tab.Set("A1", value.Number(1))

	// An origin so deep that the parsed rows cannot all be addressed must
	// fail before the existing contents are dropped.
	err := tab.LoadCSV("a\nb\nc", ImportOptions{OriginRow: math.MaxInt - 1})
	if !errors.Is(err, ref.ErrRange) {
		t.Fatalf("expected ErrRange, got %v", err)
	}
	if got, _ := tab.Get("A1"); got != value.Number(1) {
		t.Errorf("table contents lost on rejected load: A1 = %#v", got)
	}
	if tab.Size() != 1 {
		t.Errorf("size = %d after rejected load, expected 1", tab.Size())
	}
}

func TestCSVRoundTrip(t *testing.T) {
	tab := New()
	tab.Set("A1", value.Number(1.5))
	tab.Set("B1", value.String("plain"))
	tab.Set("C1", value.Bool(false))
	tab.Set("A2", value.String("comma, inside"))
	tab.Set("C2", value.Number(-3))

	out := New()
	if err := out.LoadCSV(tab.ToCSV(DefaultExportOptions()), DefaultImportOptions()); err != nil {
		t.Fatalf("LoadCSV failed: %v", err)
	}

	if out.Size() != tab.Size() {
		t.Fatalf("round trip size %d, expected %d", out.Size(), tab.Size())
	}
	for _, reference := range tab.ListReferences() {
		want, _ := tab.Get(reference)
		got, _ := out.Get(reference)
		if got != want {
			t.Errorf("round trip %s = %#v, expected %#v", reference, got, want)
		}
	}
}

func TestCSVRoundTripWithHeaders(t *testing.T) {
	tab := New()
	tab.Set("B2", value.Number(7))
	tab.Set("D2", value.String("x"))

	text := tab.ToCSV(ExportOptions{IncludeHeaders: true})
	out := New()
	if err := out.LoadCSV(text, ImportOptions{HasHeaderRow: true, OriginRow: 2}); err != nil {
		t.Fatalf("LoadCSV failed: %v", err)
	}

	if !reflect.DeepEqual(out.ListReferences(), []string{"B2", "D2"}) {
		t.Errorf("ListReferences = %v", out.ListReferences())
	}
}
