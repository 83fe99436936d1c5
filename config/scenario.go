package config

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"

	"github.com/katalvlaran/stepviz/ctxlog"
	"github.com/katalvlaran/stepviz/runner"
)

// Scenario is an ordered list of runs loaded from an HCL file:
//
//	speed = 80
//
//	locals {
//	  data = reverse(range(1, 9))
//	}
//
//	graph "city" {
//	  weighted = true
//	  random {
//	    nodes = 12
//	    extra = 6
//	    seed  = 42
//	  }
//	}
//
//	run "sort" {
//	  algorithm = "quicksort"
//	  array     = local.data
//	}
//
//	run "route" {
//	  algorithm = "astar"
//	  graph     = "city"
//	  goal      = 11
//	}
//
// Expressions may use the functions range, reverse, concat, length, min
// and max, and read locals as local.<name>.
type Scenario struct {
	Speed int
	Runs  []Run
}

// Run is one named request of a scenario.
type Run struct {
	Name    string
	Request runner.Request
}

// shellFile separates locals from the rest so they can be evaluated first.
type shellFile struct {
	Locals []*localsBlock `hcl:"locals,block"`
	Remain hcl.Body       `hcl:",remain"`
}

type localsBlock struct {
	Body hcl.Body `hcl:",remain"`
}

type scenarioFile struct {
	Speed  *int         `hcl:"speed,optional"`
	Graphs []*GraphSpec `hcl:"graph,block"`
	Runs   []*runBlock  `hcl:"run,block"`
}

type runBlock struct {
	Name           string     `hcl:"name,label"`
	Algorithm      string     `hcl:"algorithm"`
	Array          []int      `hcl:"array,optional"`
	RandomArray    *ArraySpec `hcl:"random_array,block"`
	Target         *int       `hcl:"target,optional"`
	Leftmost       bool       `hcl:"leftmost,optional"`
	Graph          string     `hcl:"graph,optional"`
	Start          int        `hcl:"start,optional"`
	Goal           *int       `hcl:"goal,optional"`
	HeuristicScale *float64   `hcl:"heuristic_scale,optional"`
	Text           string     `hcl:"text,optional"`
	Pattern        string     `hcl:"pattern,optional"`
	Overlapping    bool       `hcl:"overlapping,optional"`
	Speed          *int       `hcl:"speed,optional"`
}

func (b *runBlock) fields() requestFields {
	return requestFields{
		Algorithm:      b.Algorithm,
		Array:          b.Array,
		RandomArray:    b.RandomArray,
		Target:         b.Target,
		Leftmost:       b.Leftmost,
		Start:          b.Start,
		Goal:           b.Goal,
		HeuristicScale: b.HeuristicScale,
		Text:           b.Text,
		Pattern:        b.Pattern,
		Overlapping:    b.Overlapping,
		Speed:          b.Speed,
	}
}

// scenarioFunctions are callable from scenario expressions.
var scenarioFunctions = map[string]function.Function{
	"range":   stdlib.RangeFunc,
	"reverse": stdlib.ReverseListFunc,
	"concat":  stdlib.ConcatFunc,
	"length":  stdlib.LengthFunc,
	"min":     stdlib.MinFunc,
	"max":     stdlib.MaxFunc,
}

// LoadScenario parses and resolves the HCL scenario at path.
func LoadScenario(ctx context.Context, path string) (*Scenario, error) {
	ctxlog.FromContext(ctx).Debug("Loading scenario", "path", path)

	file, diags := hclparse.NewParser().ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: parse %s: %w", ErrInvalid, path, diags)
	}

	return decodeScenario(ctx, file.Body, path)
}

// ParseScenario is LoadScenario for in-memory sources; filename only
// appears in diagnostics.
func ParseScenario(ctx context.Context, src []byte, filename string) (*Scenario, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: parse %s: %w", ErrInvalid, filename, diags)
	}

	return decodeScenario(ctx, file.Body, filename)
}

func decodeScenario(ctx context.Context, body hcl.Body, filename string) (*Scenario, error) {
	var shell shellFile
	if diags := gohcl.DecodeBody(body, nil, &shell); diags.HasErrors() {
		return nil, fmt.Errorf("%w: decode %s: %w", ErrInvalid, filename, diags)
	}
	evalCtx, err := evalContext(shell.Locals)
	if err != nil {
		return nil, fmt.Errorf("%w: locals in %s: %w", ErrInvalid, filename, err)
	}

	var sf scenarioFile
	if diags := gohcl.DecodeBody(shell.Remain, evalCtx, &sf); diags.HasErrors() {
		return nil, fmt.Errorf("%w: decode %s: %w", ErrInvalid, filename, diags)
	}

	return sf.resolve(ctx, filename)
}

// evalContext evaluates every locals attribute, in file order, into the
// local object. A local may only reference locals from earlier blocks.
func evalContext(blocks []*localsBlock) (*hcl.EvalContext, error) {
	locals := map[string]cty.Value{}
	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{"local": cty.EmptyObjectVal},
		Functions: scenarioFunctions,
	}
	for _, b := range blocks {
		attrs, diags := b.Body.JustAttributes()
		if diags.HasErrors() {
			return nil, diags
		}
		values := make(map[string]cty.Value, len(attrs))
		for name, attr := range attrs {
			if _, dup := locals[name]; dup {
				return nil, fmt.Errorf("local %q declared twice", name)
			}
			v, diags := attr.Expr.Value(evalCtx)
			if diags.HasErrors() {
				return nil, diags
			}
			values[name] = v
		}
		for name, v := range values {
			locals[name] = v
		}
		evalCtx.Variables["local"] = cty.ObjectVal(locals)
	}

	return evalCtx, nil
}

func (sf *scenarioFile) resolve(ctx context.Context, filename string) (*Scenario, error) {
	logger := ctxlog.FromContext(ctx)
	sc := &Scenario{}
	if sf.Speed != nil {
		sc.Speed = *sf.Speed
	}

	specs := make(map[string]*GraphSpec, len(sf.Graphs))
	for _, gs := range sf.Graphs {
		if _, dup := specs[gs.Name]; dup {
			return nil, fmt.Errorf("%w: %s: graph %q declared twice", ErrInvalid, filename, gs.Name)
		}
		specs[gs.Name] = gs
	}

	seen := make(map[string]bool, len(sf.Runs))
	for _, rb := range sf.Runs {
		if seen[rb.Name] {
			return nil, fmt.Errorf("%w: %s: run %q declared twice", ErrInvalid, filename, rb.Name)
		}
		seen[rb.Name] = true

		var spec *GraphSpec
		if rb.Graph != "" {
			var ok bool
			if spec, ok = specs[rb.Graph]; !ok {
				return nil, fmt.Errorf("%w: %s: run %q uses unknown graph %q", ErrInvalid, filename, rb.Name, rb.Graph)
			}
		}
		req, err := buildRequest(rb.fields(), spec, sc.Speed)
		if err != nil {
			return nil, fmt.Errorf("config: %s: run %q: %w", filename, rb.Name, err)
		}
		sc.Runs = append(sc.Runs, Run{Name: rb.Name, Request: req})
		logger.Debug("Scenario run resolved", "run", rb.Name, "algorithm", string(req.Algorithm))
	}

	return sc, nil
}

// buildRequest builds a fresh graph from spec, if any, for each request so
// that runs never share mutable state.
func buildRequest(f requestFields, spec *GraphSpec, defaultSpeed int) (runner.Request, error) {
	if spec == nil {
		return f.request(nil, defaultSpeed)
	}
	g, err := spec.Build()
	if err != nil {
		return runner.Request{}, err
	}

	return f.request(g, defaultSpeed)
}
