package observ

import (
	"strings"
	"testing"
)

func TestTimerReport(t *testing.T) {
	timer := NewTimer()
	endLex := timer.Track("lex")
	endLex("tokens=4")
	idx := timer.Begin("parse")
	timer.End(idx, "")
	timer.End(42, "ignored")

	report := timer.Report()
	if len(report.Phases) != 2 {
		t.Fatalf("want 2 phases, got %d", len(report.Phases))
	}
	if report.Phases[0].Name != "lex" || report.Phases[0].Note != "tokens=4" {
		t.Fatalf("first phase: %+v", report.Phases[0])
	}
	sum := report.Phases[0].DurationMS + report.Phases[1].DurationMS
	if diff := report.TotalMS - sum; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("total %v != sum %v", report.TotalMS, sum)
	}

	out := report.Summary("")
	for _, want := range []string{"timings:\n", "  lex ", "(tokens=4)", "  total "} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestNilTimer(t *testing.T) {
	var timer *Timer
	end := timer.Track("lex")
	end("")
	if r := timer.Report(); len(r.Phases) != 0 || r.TotalMS != 0 {
		t.Fatalf("nil timer must report nothing: %+v", r)
	}
}
