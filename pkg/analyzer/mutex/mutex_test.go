package mutex

import "testing"

func TestDetect_GlobalCooldown(t *testing.T) {
	text := `int cd=0
Tick::
cd:cd+1;

when(cd<=time)[Fire]
Fire::
msg:Go;
`
	patterns := Detect(text)
	if len(patterns) != 1 {
		t.Fatalf("got %d patterns, want 1: %+v", len(patterns), patterns)
	}
	p := patterns[0]
	if p.Variable != "cd" || p.Kind != KindGlobalCooldown {
		t.Errorf("pattern = %+v, want cd global_cooldown", p)
	}
	if p.Line != 1 {
		t.Errorf("line = %d, want declaration line 1", p.Line)
	}
}

func TestDetect_CooldownNeedsBothHalves(t *testing.T) {
	// Increment without a time guard is just a counter.
	text := `int cd=0
Tick::
cd:cd+1;
`
	if patterns := Detect(text); len(patterns) != 0 {
		t.Errorf("counter without time guard classified: %+v", patterns)
	}

	// Time guard without the self-increment is not a cooldown either.
	text = `int cd=0
when(cd>=time)[Fire]
Fire::
msg:Go;
`
	if patterns := Detect(text); len(patterns) != 0 {
		t.Errorf("guard without increment classified: %+v", patterns)
	}
}

func TestDetect_OneTimeEvent(t *testing.T) {
	text := `bool fired=false
when(fired==false and crystals>=1)[Once]
Once::
fired:true;
msg:Done;
`
	patterns := Detect(text)
	if len(patterns) != 1 {
		t.Fatalf("got %d patterns, want 1: %+v", len(patterns), patterns)
	}
	p := patterns[0]
	if p.Variable != "fired" || p.Kind != KindOneTimeEvent {
		t.Errorf("pattern = %+v, want fired one_time_event", p)
	}
	if len(p.RelatedEvents) != 1 || p.RelatedEvents[0] != "Once" {
		t.Errorf("related events = %v, want [Once]", p.RelatedEvents)
	}
}

func TestDetect_OneTimeEventResetDisqualifies(t *testing.T) {
	text := `bool fired=false
when(fired==false)[Once]
Once::
fired:true;

Reset::
fired:false;
`
	if patterns := Detect(text); len(patterns) != 0 {
		t.Errorf("resettable flag classified as one-time: %+v", patterns)
	}
}

func TestDetect_ExclusiveState(t *testing.T) {
	text := `int phase=0
when(phase==0)[StageOne]
StageOne::
phase:1;

when(phase==1)[StageTwo]
StageTwo::
phase:2;
`
	patterns := Detect(text)
	if len(patterns) != 1 {
		t.Fatalf("got %d patterns, want 1: %+v", len(patterns), patterns)
	}
	if patterns[0].Kind != KindExclusiveState {
		t.Errorf("kind = %q, want exclusive_state", patterns[0].Kind)
	}
}

func TestDetect_TwoValuesIsNotExclusive(t *testing.T) {
	text := `int toggle=0
when(toggle==0)[On]
On::
toggle:1;
`
	if patterns := Detect(text); len(patterns) != 0 {
		t.Errorf("two-value integer classified: %+v", patterns)
	}
}

func TestDetect_PriorityPrefersCooldown(t *testing.T) {
	// gate qualifies as both a cooldown and an exclusive state; the
	// priority table picks cooldown.
	text := `int gate=0
Tick::
gate:gate+1;

when(gate>=time and gate==0)[A]
A::
gate:5;

when(gate==3)[B]
B::
gate:7;
`
	patterns := Detect(text)
	if len(patterns) != 1 {
		t.Fatalf("got %d patterns, want 1: %+v", len(patterns), patterns)
	}
	if patterns[0].Kind != KindGlobalCooldown {
		t.Errorf("kind = %q, want global_cooldown to win", patterns[0].Kind)
	}
}

func TestDetect_OrderedByDeclarationLine(t *testing.T) {
	text := `bool first=false
int second=0
when(first==false)[UseFirst]
UseFirst::
first:true;
second:1;

when(second==1)[UseSecond]
UseSecond::
second:2;

when(second==2)[UseThird]
UseThird::
second:3;
`
	patterns := Detect(text)
	if len(patterns) != 2 {
		t.Fatalf("got %d patterns, want 2: %+v", len(patterns), patterns)
	}
	if patterns[0].Variable != "first" || patterns[1].Variable != "second" {
		t.Errorf("order = %s,%s, want first,second", patterns[0].Variable, patterns[1].Variable)
	}
}

func TestDetect_Deterministic(t *testing.T) {
	text := `int phase=0
when(phase==0)[A]
A::
phase:1;
when(phase==1)[B]
B::
phase:2;
`
	first := Detect(text)
	for i := 0; i < 10; i++ {
		again := Detect(text)
		if len(again) != len(first) {
			t.Fatal("result length varies between runs")
		}
		for j := range first {
			if again[j].Variable != first[j].Variable || again[j].Kind != first[j].Kind {
				t.Fatal("result order varies between runs")
			}
		}
	}
}
