package eventgraph

import (
	"strings"
	"testing"
)

func TestBuild_EdgeKinds(t *testing.T) {
	text := `Init::
Second::;
call:Third;
when(crystals>=3)[Fourth]

Second::
x:1;

Fourth::
if(ore>0)[Init]
`
	g := Build(text)

	want := []Edge{
		{From: "Init", To: "Second", Kind: EdgeCall, Line: 2},
		{From: "Init", To: "Third", Kind: EdgeCallCommand, Line: 3},
		{From: "Init", To: "Fourth", Kind: EdgeWhenTrigger, Line: 4},
		{From: "Fourth", To: "Init", Kind: EdgeIfTrigger, Line: 10},
	}
	if len(g.Edges) != len(want) {
		t.Fatalf("got %d edges, want %d: %+v", len(g.Edges), len(want), g.Edges)
	}
	for i, w := range want {
		if g.Edges[i] != w {
			t.Errorf("edge[%d] = %+v, want %+v", i, g.Edges[i], w)
		}
	}

	// Third only exists as a call target but still appears as a node.
	found := false
	for _, ev := range g.Events {
		if ev == "Third" {
			found = true
		}
	}
	if !found {
		t.Errorf("call target missing from nodes: %v", g.Events)
	}
}

func TestBuild_BareInvocationRequiresKnownEvent(t *testing.T) {
	text := `Init::
Ghost::;
`
	g := Build(text)
	if len(g.Edges) != 0 {
		t.Errorf("invocation of unknown event produced edges: %+v", g.Edges)
	}
}

func TestBuild_SelfEdgesExcluded(t *testing.T) {
	text := `Loop::
Loop::;
call:Loop;
when(x>0)[Loop]
`
	g := Build(text)
	if len(g.Edges) != 0 {
		t.Errorf("self references produced edges: %+v", g.Edges)
	}
}

func TestAdjacency(t *testing.T) {
	text := `A::
call:B;
call:B;

B::
x:1;
`
	g := Build(text)
	adj := g.Adjacency()
	if !adj["A"]["B"] {
		t.Error("A -> B missing from adjacency")
	}
	if len(adj["A"]) != 1 {
		t.Errorf("duplicate edges not collapsed: %v", adj["A"])
	}
	if len(adj["B"]) != 0 {
		t.Errorf("B has unexpected targets: %v", adj["B"])
	}
}

func TestSummarize_Cyclic(t *testing.T) {
	text := `A::
call:B;

B::
call:A;

C::
x:1;
`
	g := Build(text)
	m := Summarize(g)

	if m.Events != 3 || m.Edges != 2 {
		t.Errorf("events=%d edges=%d, want 3 and 2", m.Events, m.Edges)
	}
	if !m.Cyclic {
		t.Error("A<->B cycle not detected")
	}
	if m.StronglyConnected != 1 {
		t.Errorf("SCC count = %d, want 1", m.StronglyConnected)
	}
}

func TestSummarize_Acyclic(t *testing.T) {
	text := `A::
call:B;

B::
x:1;
`
	m := Summarize(Build(text))
	if m.Cyclic || m.StronglyConnected != 0 {
		t.Errorf("acyclic graph reported cyclic: %+v", m)
	}
}

func TestSummarize_Empty(t *testing.T) {
	m := Summarize(Build(""))
	if m.Events != 0 || m.Edges != 0 || m.Cyclic {
		t.Errorf("empty graph metrics = %+v", m)
	}
}

func TestToMermaid(t *testing.T) {
	text := `Startup::
call:Finish;
when(done==true)[Finish]

Finish::
x:1;
`
	out := ToMermaid(Build(text))

	if !strings.HasPrefix(out, "graph TD\n") {
		t.Errorf("missing header: %q", out)
	}
	if !strings.Contains(out, `Startup["Startup"]`) {
		t.Errorf("node declaration missing: %q", out)
	}
	if !strings.Contains(out, "Startup -->|calls| Finish") {
		t.Errorf("call edge missing: %q", out)
	}
	if !strings.Contains(out, "Startup -.->|when| Finish") {
		t.Errorf("trigger edge missing: %q", out)
	}
}
