package performance

import (
	"fmt"
	"strings"
	"testing"
)

func TestAnalyze_Counters(t *testing.T) {
	text := `timer spawnTimer=5
int x=0

Start::
spawncap:3;
when(a>1 and b<2 or c==3)[Next]

Next::
addrandomspawn:CreatureSmallSpider_C,30,60;
`
	m := Analyze(text)

	if m.Events != 2 {
		t.Errorf("events = %d, want 2", m.Events)
	}
	if m.Timers != 1 {
		t.Errorf("timers = %d, want 1", m.Timers)
	}
	if m.Spawners != 2 {
		t.Errorf("spawners = %d, want 2", m.Spawners)
	}
	// 1 base + "and" + "or"
	if m.ConditionComplexity != 3 {
		t.Errorf("condition complexity = %d, want 3", m.ConditionComplexity)
	}

	want := 2*1.0 + 3*0.5 + 1*2.0 + 2*3.0
	if m.Score != want {
		t.Errorf("score = %v, want %v", m.Score, want)
	}
	if m.Load != LoadLow {
		t.Errorf("load = %s, want low", m.Load)
	}
	if len(m.Suggestions) != 0 {
		t.Errorf("unexpected suggestions: %v", m.Suggestions)
	}
}

// eventsScript builds a script of n empty events, scoring n under default
// weights.
func eventsScript(n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "E%d::\n", i)
	}
	return b.String()
}

func TestAnalyze_LoadBoundaries(t *testing.T) {
	tests := []struct {
		events int
		want   Load
	}{
		{0, LoadLow},
		{19, LoadLow},
		{20, LoadMedium},
		{49, LoadMedium},
		{50, LoadHigh},
		{99, LoadHigh},
		{100, LoadCritical},
		{150, LoadCritical},
	}
	for _, tt := range tests {
		m := Analyze(eventsScript(tt.events))
		if m.Score != float64(tt.events) {
			t.Errorf("%d events: score = %v, want %v", tt.events, m.Score, float64(tt.events))
		}
		if m.Load != tt.want {
			t.Errorf("%d events: load = %s, want %s", tt.events, m.Load, tt.want)
		}
	}
}

func TestAnalyzeWith_CustomWeights(t *testing.T) {
	w := Weights{Event: 10, MediumScore: 20, HighScore: 50, CriticalScore: 100}
	m := AnalyzeWith(eventsScript(3), w)
	if m.Score != 30 {
		t.Errorf("score = %v, want 30", m.Score)
	}
	if m.Load != LoadMedium {
		t.Errorf("load = %s, want medium", m.Load)
	}
}

func TestAnalyze_Suggestions(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 6; i++ {
		fmt.Fprintf(&b, "spawncap:%d;\n", i)
	}
	m := Analyze(b.String())

	if len(m.Suggestions) != 1 {
		t.Fatalf("got %d suggestions, want 1: %v", len(m.Suggestions), m.Suggestions)
	}
	if !strings.Contains(m.Suggestions[0], "spawner") {
		t.Errorf("suggestion = %q, want spawner hint", m.Suggestions[0])
	}
}

func TestAnalyze_SuggestionsIndependentOfLoad(t *testing.T) {
	// 11 timers push the timer suggestion without reaching high load.
	var b strings.Builder
	for i := 0; i < 11; i++ {
		fmt.Fprintf(&b, "timer t%d=5\n", i)
	}
	m := Analyze(b.String())

	if m.Load != LoadMedium {
		t.Fatalf("load = %s (score %v), want medium", m.Load, m.Score)
	}
	if len(m.Suggestions) != 1 || !strings.Contains(m.Suggestions[0], "timer") {
		t.Errorf("suggestions = %v, want one timer hint", m.Suggestions)
	}
}

func TestAnalyze_CommentedLinesIgnored(t *testing.T) {
	text := "# spawncap:3;\n# Start::\n"
	m := Analyze(text)
	if m.Events != 0 || m.Spawners != 0 {
		t.Errorf("commented lines counted: %+v", m)
	}
}
