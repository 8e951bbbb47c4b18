package resources

import "testing"

// flowFor fetches one resource's flow from an analysis result.
func flowFor(t *testing.T, flows []Flow, r Resource) Flow {
	t.Helper()
	for _, f := range flows {
		if f.Resource == r {
			return f
		}
	}
	t.Fatalf("resource %s missing from flows", r)
	return Flow{}
}

func TestAnalyze_AllBucketsAlwaysPresent(t *testing.T) {
	flows := Analyze("")
	if len(flows) != 4 {
		t.Fatalf("got %d flows, want 4", len(flows))
	}
	want := []Resource{Crystals, Ore, Studs, Air}
	for i, r := range want {
		if flows[i].Resource != r {
			t.Errorf("flows[%d] = %s, want %s", i, flows[i].Resource, r)
		}
		if flows[i].Balance != 0 {
			t.Errorf("%s balance = %d, want 0", r, flows[i].Balance)
		}
	}
}

func TestAnalyze_SourceAndSink(t *testing.T) {
	text := `crystals:10
Check::
when(crystals>=25)[Win]
objective:collect crystals;

Win::
msg:Done;
`
	crystals := flowFor(t, Analyze(text), Crystals)

	if len(crystals.Sources) != 1 || crystals.Sources[0].Amount != 10 || crystals.Sources[0].Line != 1 {
		t.Errorf("sources = %+v, want one of 10 at line 1", crystals.Sources)
	}
	if len(crystals.Sinks) != 1 || crystals.Sinks[0].Amount != 25 || crystals.Sinks[0].Line != 3 {
		t.Errorf("sinks = %+v, want one of 25 at line 3", crystals.Sinks)
	}
	if crystals.Balance != -15 {
		t.Errorf("balance = %d, want -15", crystals.Balance)
	}
}

func TestAnalyze_SinkRequiresObjectiveMention(t *testing.T) {
	text := `crystals:10
Check::
when(crystals>=25)[Win]

Win::
msg:Done;
`
	crystals := flowFor(t, Analyze(text), Crystals)
	if len(crystals.Sinks) != 0 {
		t.Errorf("comparison outside objective block counted as sink: %+v", crystals.Sinks)
	}
	if crystals.Balance != 10 {
		t.Errorf("balance = %d, want 10", crystals.Balance)
	}
}

func TestAnalyze_OxygenIsAirSourceOnly(t *testing.T) {
	text := "oxygen: 100/120\n"
	flows := Analyze(text)

	air := flowFor(t, flows, Air)
	if len(air.Sources) != 1 || air.Sources[0].Amount != 100 {
		t.Errorf("air sources = %+v, want one of 100", air.Sources)
	}
	if len(air.Sinks) != 0 {
		t.Errorf("air has sinks: %+v", air.Sinks)
	}
	if air.Balance != 100 {
		t.Errorf("air balance = %d, want 100", air.Balance)
	}
}

func TestAnalyze_MultipleSourcesAccumulate(t *testing.T) {
	text := `ore:5
Bonus::
ore:3;
`
	ore := flowFor(t, Analyze(text), Ore)
	if len(ore.Sources) != 2 {
		t.Fatalf("sources = %+v, want 2", ore.Sources)
	}
	if ore.Balance != 8 {
		t.Errorf("balance = %d, want 8", ore.Balance)
	}
}

func TestAnalyze_BalanceIdentity(t *testing.T) {
	text := `studs:30
Goal::
when(studs>=12)[Win]
objective:spend studs;

Extra::
studs:4;
when(studs>=6)[Win]
`
	flows := Analyze(text)
	for _, f := range flows {
		src, snk := 0, 0
		for _, e := range f.Sources {
			src += e.Amount
		}
		for _, e := range f.Sinks {
			snk += e.Amount
		}
		if f.Balance != src-snk {
			t.Errorf("%s balance %d != sources %d - sinks %d", f.Resource, f.Balance, src, snk)
		}
	}
}

func TestAnalyze_NonLiteralAssignmentIgnored(t *testing.T) {
	text := "crystals:crystals+5\n"
	crystals := flowFor(t, Analyze(text), Crystals)
	if len(crystals.Sources) != 0 {
		t.Errorf("expression assignment counted as source: %+v", crystals.Sources)
	}
}
