package statemachine

import "testing"

func TestDetect_OpenCloseMachine(t *testing.T) {
	text := `int State=0
when(State==0 and crystals>=1)[Open]
Open::
State:1;

when(State==1 and crystals==0)[Close]
Close::
State:0;
`
	machines := Detect(text)
	if len(machines) != 1 {
		t.Fatalf("got %d machines, want 1", len(machines))
	}
	m := machines[0]

	if m.Variable != "State" || m.Initial != 0 {
		t.Errorf("machine = %s initial %d, want State initial 0", m.Variable, m.Initial)
	}
	if len(m.States) != 2 {
		t.Errorf("states = %v, want exactly {0,1}", m.States)
	}
	if m.States[0] != "IDLE" || m.States[1] != "ACTIVE" {
		t.Errorf("canonical names = %v", m.States)
	}

	if len(m.Transitions) != 2 {
		t.Fatalf("got %d transitions, want 2: %+v", len(m.Transitions), m.Transitions)
	}
	if tr := m.Transitions[0]; tr.From != 0 || tr.To != 1 || tr.Trigger != "Open" {
		t.Errorf("transition[0] = %+v, want 0->1 via Open", tr)
	}
	if tr := m.Transitions[1]; tr.From != 1 || tr.To != 0 || tr.Trigger != "Close" {
		t.Errorf("transition[1] = %+v, want 1->0 via Close", tr)
	}

	if findings := Lint(&m); len(findings) != 0 {
		t.Errorf("total machine produced findings: %+v", findings)
	}
}

func TestDetect_RequiresTwoTransitions(t *testing.T) {
	text := `int once=0
when(once==0)[Go]
Go::
once:1;
`
	if machines := Detect(text); len(machines) != 0 {
		t.Errorf("single transition produced a machine: %+v", machines)
	}
}

func TestDetect_IgnoresNonIntVariables(t *testing.T) {
	text := `bool flag=false
when(flag==0)[A]
A::
flag:1;
when(flag==1)[B]
B::
flag:0;
`
	if machines := Detect(text); len(machines) != 0 {
		t.Errorf("bool variable produced a machine: %+v", machines)
	}
}

func TestStateName_CommentWins(t *testing.T) {
	text := `int mode=5
when(mode==5)[Warmup]
Warmup::
mode:7; # spin up

when(mode==7)[Run]
Run::
mode:5;
`
	machines := Detect(text)
	if len(machines) != 1 {
		t.Fatalf("got %d machines, want 1", len(machines))
	}
	m := machines[0]

	if m.States[7] != "SPIN_UP" {
		t.Errorf("commented state = %q, want SPIN_UP", m.States[7])
	}
	if m.States[5] != "STATE_5" {
		t.Errorf("uncommented non-canonical state = %q, want STATE_5", m.States[5])
	}
}

func TestStateName_CommentOnPrecedingLine(t *testing.T) {
	text := `int mode=0
when(mode==0)[Begin]
Begin::
# drilling phase
mode:1;

when(mode==1)[End]
End::
mode:0;
`
	machines := Detect(text)
	if len(machines) != 1 {
		t.Fatalf("got %d machines, want 1", len(machines))
	}
	if got := machines[0].States[1]; got != "DRILLING_PHASE" {
		t.Errorf("state name = %q, want DRILLING_PHASE", got)
	}
}

func TestDetect_InitialAlwaysInStates(t *testing.T) {
	text := `int s=9
when(s==1)[Go]
Go::
s:2;

when(s==2)[Back]
Back::
s:1;
`
	machines := Detect(text)
	if len(machines) != 1 {
		t.Fatalf("got %d machines, want 1", len(machines))
	}
	m := machines[0]
	if m.Initial != 9 {
		t.Errorf("initial = %d, want 9", m.Initial)
	}
	if _, ok := m.States[9]; !ok {
		t.Errorf("initial state missing from states: %v", m.States)
	}
}

func TestLint_UnreachableAndDeadEnd(t *testing.T) {
	text := `int s=0
when(s==0)[A]
A::
s:1;

when(s==5)[B]
B::
s:1;
`
	machines := Detect(text)
	if len(machines) != 1 {
		t.Fatalf("got %d machines, want 1", len(machines))
	}
	findings := Lint(&machines[0])
	if len(findings) != 2 {
		t.Fatalf("got %d findings, want 2: %+v", len(findings), findings)
	}

	if findings[0].Kind != FindingDeadEnd || findings[0].State != 1 {
		t.Errorf("finding[0] = %+v, want dead_end state 1", findings[0])
	}
	if findings[1].Kind != FindingUnreachable || findings[1].State != 5 {
		t.Errorf("finding[1] = %+v, want unreachable state 5", findings[1])
	}
}

func TestLint_ZeroIsImplicitTerminal(t *testing.T) {
	text := `int s=2
when(s==2)[Shut]
Shut::
s:0;

when(s==1)[Alt]
Alt::
s:0;
`
	machines := Detect(text)
	if len(machines) != 1 {
		t.Fatalf("got %d machines, want 1", len(machines))
	}

	for _, f := range Lint(&machines[0]) {
		if f.Kind == FindingDeadEnd && f.State == 0 {
			t.Errorf("state 0 flagged as dead end: %+v", f)
		}
	}
}
