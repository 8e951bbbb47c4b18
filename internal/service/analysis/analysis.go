// Package analysis orchestrates the script detectors and merges their
// findings into one diagnostic list.
package analysis

import (
	"context"
	"fmt"
	"strings"

	"github.com/sourcegraph/conc/pool"

	"github.com/seamlint/seamlint/pkg/analyzer/cycles"
	"github.com/seamlint/seamlint/pkg/analyzer/deadlock"
	"github.com/seamlint/seamlint/pkg/analyzer/eventgraph"
	"github.com/seamlint/seamlint/pkg/analyzer/mutex"
	"github.com/seamlint/seamlint/pkg/analyzer/performance"
	"github.com/seamlint/seamlint/pkg/analyzer/resources"
	"github.com/seamlint/seamlint/pkg/analyzer/statemachine"
	"github.com/seamlint/seamlint/pkg/config"
	"github.com/seamlint/seamlint/pkg/diag"
	"github.com/seamlint/seamlint/pkg/script"
)

// Service orchestrates script analysis.
type Service struct {
	config *config.Config
}

// Option configures a Service.
type Option func(*Service)

// WithConfig sets the configuration.
func WithConfig(cfg *config.Config) Option {
	return func(s *Service) {
		s.config = cfg
	}
}

// New creates a new analysis service.
func New(opts ...Option) *Service {
	s := &Service{config: config.LoadOrDefault()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ScriptAnalysis bundles every detector's result plus the merged
// diagnostics for one script. All fields are rebuilt from scratch on every
// call; nothing persists between runs.
type ScriptAnalysis struct {
	Graph        *eventgraph.Graph      `json:"graph"`
	GraphMetrics *eventgraph.Metrics    `json:"graph_metrics"`
	Mutexes      []mutex.Pattern        `json:"mutex_patterns"`
	Machines     []statemachine.Machine `json:"state_machines"`
	Resources    []resources.Flow       `json:"resources"`
	Performance  *performance.Metrics   `json:"performance"`
	Cycles       []cycles.Cycle         `json:"cycles"`
	Deadlocks    []deadlock.Risk        `json:"deadlocks"`
	Diagnostics  []diag.Diagnostic      `json:"diagnostics"`
}

// AnalyzeScript runs all enabled detectors over the script text. Detectors
// are independent pure functions, so they fan out concurrently; the merge
// order is fixed so the diagnostic list is deterministic regardless of
// completion order.
func (s *Service) AnalyzeScript(ctx context.Context, text string) (*ScriptAnalysis, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &ScriptAnalysis{}
	enabled := s.config.Analysis

	p := pool.New().WithContext(ctx)
	p.Go(func(context.Context) error {
		result.Graph = eventgraph.Build(text)
		result.GraphMetrics = eventgraph.Summarize(result.Graph)
		return nil
	})
	if enabled.Mutex {
		p.Go(func(context.Context) error {
			result.Mutexes = mutex.Detect(text)
			return nil
		})
	}
	if enabled.StateMachine {
		p.Go(func(context.Context) error {
			result.Machines = statemachine.Detect(text)
			return nil
		})
	}
	if enabled.Resources {
		p.Go(func(context.Context) error {
			result.Resources = resources.Analyze(text)
			return nil
		})
	}
	if enabled.Performance {
		p.Go(func(context.Context) error {
			result.Performance = performance.AnalyzeWith(text, s.Weights())
			return nil
		})
	}
	if enabled.Cycles {
		p.Go(func(context.Context) error {
			result.Cycles = cycles.Detect(text)
			return nil
		})
	}
	if enabled.Deadlock {
		p.Go(func(context.Context) error {
			result.Deadlocks = deadlock.Detect(text)
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return nil, err
	}

	result.Diagnostics = s.merge(text, result)
	return result, nil
}

// Weights maps the configured cost model onto the analyzer's.
func (s *Service) Weights() performance.Weights {
	pc := s.config.Performance
	return performance.Weights{
		Event:         pc.EventWeight,
		Condition:     pc.ConditionWeight,
		Timer:         pc.TimerWeight,
		Spawner:       pc.SpawnerWeight,
		MediumScore:   pc.MediumScore,
		HighScore:     pc.HighScore,
		CriticalScore: pc.CriticalScore,
	}
}

// merge appends every finding category to the diagnostic list with its
// severity mapping: circular dependencies and high-risk deadlocks are
// errors, everything else is advisory.
func (s *Service) merge(text string, r *ScriptAnalysis) []diag.Diagnostic {
	var ds []diag.Diagnostic

	for _, ev := range script.Scan(text).Duplicates() {
		ds = append(ds, diag.New(diag.SeverityWarning, ev.StartLine,
			fmt.Sprintf("duplicate event name %q", ev.Name)))
	}

	for _, c := range r.Cycles {
		ds = append(ds, diag.New(diag.SeverityError, c.Line,
			fmt.Sprintf("circular event dependency: %s", strings.Join(c.Events, " -> "))))
	}

	for _, d := range r.Deadlocks {
		msg := fmt.Sprintf("events %q and %q both mutate shared state (%s)",
			d.Events[0], d.Events[1], strings.Join(d.SharedResources, ", "))
		switch d.Level {
		case deadlock.RiskHigh:
			ds = append(ds, diag.New(diag.SeverityError, d.Line,
				"potential deadlock: "+msg+" and wait on each other"))
		case deadlock.RiskMedium:
			ds = append(ds, diag.New(diag.SeverityWarning, d.Line,
				"possible contention: "+msg))
		}
	}

	for _, m := range r.Mutexes {
		ds = append(ds, diag.New(diag.SeverityWarning, m.Line,
			fmt.Sprintf("variable %q is used as a %s lock (events: %s)",
				m.Variable, strings.ReplaceAll(string(m.Kind), "_", " "),
				strings.Join(m.RelatedEvents, ", "))))
	}

	for i := range r.Machines {
		for _, f := range statemachine.Lint(&r.Machines[i]) {
			switch f.Kind {
			case statemachine.FindingUnreachable:
				ds = append(ds, diag.New(diag.SeverityWarning, f.Line,
					fmt.Sprintf("state machine %q: state %s (%d) is unreachable", f.Variable, f.Name, f.State)))
			case statemachine.FindingDeadEnd:
				ds = append(ds, diag.New(diag.SeverityWarning, f.Line,
					fmt.Sprintf("state machine %q: state %s (%d) has no outgoing transition", f.Variable, f.Name, f.State)))
			}
		}
	}

	for _, f := range r.Resources {
		if f.Resource == resources.Air {
			continue
		}
		if f.Balance < 0 {
			line := 0
			if len(f.Sinks) > 0 {
				line = f.Sinks[0].Line
			}
			ds = append(ds, diag.New(diag.SeverityWarning, line,
				fmt.Sprintf("objectives consume more %s than the script provides (balance %d)", f.Resource, f.Balance)))
		} else if len(f.Sinks) > 0 && len(f.Sources) == 0 {
			ds = append(ds, diag.New(diag.SeverityWarning, f.Sinks[0].Line,
				fmt.Sprintf("objective requires %s but the script never provides any", f.Resource)))
		}
	}

	if r.Performance != nil {
		switch r.Performance.Load {
		case performance.LoadHigh, performance.LoadCritical:
			ds = append(ds, diag.New(diag.SeverityWarning, 0,
				fmt.Sprintf("estimated script load is %s (score %.1f)", r.Performance.Load, r.Performance.Score)))
		}
	}

	diag.Sort(ds)
	return ds
}
