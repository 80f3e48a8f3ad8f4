package diag

import (
	"testing"

	"lang/internal/source"
)

func TestFormatShortDiagnostics(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("sample.lang", []byte("a\nb\n"))

	diags := []Diagnostic{
		{
			Severity: SevError,
			Code:     SynUnexpectedToken,
			Message:  "first line\nsecond",
			Primary:  source.Span{File: id, Start: 0, End: 1},
			Notes:    []Note{{Span: source.Span{File: id, Start: 2, End: 3}, Msg: "note line"}},
		},
		{
			Severity: SevWarning,
			Code:     SemaError,
			Message:  "another",
			Primary:  source.Span{File: id, Start: 2, End: 3},
		},
	}

	expected := "error SYN2001 sample.lang:1:1 first line second\n" +
		"note SYN2001 sample.lang:2:1 note line\n" +
		"warning SEM3001 sample.lang:2:1 another"
	if got := FormatShortDiagnostics(diags, fs, true); got != expected {
		t.Fatalf("unexpected output:\nwant:\n%s\n\ngot:\n%s", expected, got)
	}
}

func TestBagLimitAndMerge(t *testing.T) {
	b := NewBag(2)
	for i := 0; i < 3; i++ {
		b.Add(Diagnostic{Severity: SevWarning, Code: LexUnknownChar})
	}
	if b.Len() != 2 || b.Dropped() != 1 {
		t.Fatalf("Len=%d Dropped=%d", b.Len(), b.Dropped())
	}
	if b.HasErrors() {
		t.Fatalf("warnings only, HasErrors = true")
	}

	other := NewBag(0)
	other.Add(Diagnostic{Severity: SevError, Code: SemaTypeMismatch})
	b.Merge(other)
	if b.Len() != 3 || !b.HasErrors() || b.Count(LexUnknownChar) != 2 {
		t.Fatalf("after merge: Len=%d HasErrors=%v", b.Len(), b.HasErrors())
	}
}

func TestBagSort(t *testing.T) {
	b := NewBag(0)
	b.Add(Diagnostic{Severity: SevError, Code: SemaTypeMismatch, Primary: source.Span{Start: 9, End: 10}})
	b.Add(Diagnostic{Severity: SevWarning, Code: LexUnknownChar, Primary: source.Span{Start: 1, End: 2}})
	b.Add(Diagnostic{Severity: SevError, Code: LexBadNumber, Primary: source.Span{Start: 1, End: 2}})
	b.Sort()
	got := []Code{b.Items()[0].Code, b.Items()[1].Code, b.Items()[2].Code}
	want := []Code{LexBadNumber, LexUnknownChar, SemaTypeMismatch}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestDedupReporter(t *testing.T) {
	bag := NewBag(0)
	r := NewDedupReporter(BagReporter{Bag: bag})
	sp := source.Span{Start: 1, End: 3}
	r.Report(SemaUnresolvedSymbol, SevError, sp, "undeclared variable 'x'", nil)
	r.Report(SemaUnresolvedSymbol, SevError, sp, "undeclared variable 'x'", nil)
	ReportError(r, SemaUnresolvedSymbol, sp, "undeclared variable 'y'").WithNote(sp, "here").Emit()
	if bag.Len() != 2 {
		t.Fatalf("Len = %d, want 2", bag.Len())
	}
	if len(bag.Items()[1].Notes) != 1 {
		t.Fatalf("note lost")
	}
}

func TestCodeID(t *testing.T) {
	cases := map[Code]string{
		LexUnknownChar:     "LEX1001",
		SynUnexpectedToken: "SYN2001",
		SemaArityMismatch:  "SEM3011",
		IOLoadFileError:    "IO4001",
		UnknownCode:        "E0000",
	}
	for c, want := range cases {
		if got := c.ID(); got != want {
			t.Errorf("%d.ID() = %q, want %q", c, got, want)
		}
	}
	if SynUnclosedBracket.Title() != "Unterminated block" {
		t.Errorf("Title = %q", SynUnclosedBracket.Title())
	}
}
