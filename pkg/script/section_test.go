package script

import (
	"strings"
	"testing"
)

func TestReconstruct(t *testing.T) {
	s := &Section{
		Variables: map[string]string{
			"flag":  "false",
			"alpha": "0",
			"title": "hello",
		},
		Events: []SectionEvent{
			{
				Name:      "Boot",
				Condition: "time>=5",
				Commands: []Command{
					{Command: "msg", Parameters: []string{"Welcome"}},
					{Command: "crystals", Parameters: []string{"10"}},
				},
			},
			{
				Name:     "Idle",
				Commands: []Command{{Command: "wait", Parameters: []string{"1"}}},
			},
		},
	}

	want := `int alpha=0
bool flag=false
string title=hello
when(time>=5)[Boot]
Boot::
msg:Welcome;
crystals:10;
Idle::
wait:1;
`
	if got := s.Reconstruct(); got != want {
		t.Errorf("Reconstruct:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestReconstruct_FeedsScanner(t *testing.T) {
	s := &Section{
		Variables: map[string]string{"phase": "0"},
		Events: []SectionEvent{
			{
				Name:      "Advance",
				Condition: "phase==0",
				Commands:  []Command{{Command: "phase", Parameters: []string{"1"}}},
			},
		},
	}

	l := Scan(s.Reconstruct())
	if v, ok := l.Variables["phase"]; !ok || v.Type != TypeInt {
		t.Fatalf("reconstructed declaration not scanned: %+v", l.Variables)
	}
	if len(l.Events) != 1 || l.Events[0].Name != "Advance" {
		t.Fatalf("reconstructed event not scanned: %+v", l.Events)
	}
	if l.Events[0].Condition != "phase==0" {
		t.Errorf("condition = %q, want phase==0", l.Events[0].Condition)
	}
}

func TestReconstruct_Deterministic(t *testing.T) {
	s := &Section{Variables: map[string]string{"b": "1", "a": "2", "c": "3"}}
	first := s.Reconstruct()
	for i := 0; i < 5; i++ {
		if got := s.Reconstruct(); got != first {
			t.Fatal("reconstruction order varies between runs")
		}
	}
	if !strings.HasPrefix(first, "int a=2\n") {
		t.Errorf("declarations not sorted: %q", first)
	}
}
