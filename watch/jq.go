package watch

import (
	"context"
	"fmt"

	"github.com/itchyny/gojq"

	"github.com/katalvlaran/stepviz/step"
)

// Projector reshapes events with a jq query, e.g.
// `{seq, kind, array: .sort.array}` or `select(.kind == "swap") | .sort.swap`.
type Projector struct {
	src  string
	code *gojq.Code
}

// NewProjector compiles query. The query cannot read the process environment.
func NewProjector(query string) (*Projector, error) {
	if query == "" {
		return nil, ErrEmptyExpression
	}
	parsed, err := gojq.Parse(query)
	if err != nil {
		return nil, fmt.Errorf("watch: jq parse %q: %w", query, err)
	}
	code, err := gojq.Compile(parsed, gojq.WithEnvironLoader(func() []string { return nil }))
	if err != nil {
		return nil, fmt.Errorf("watch: jq compile %q: %w", query, err)
	}

	return &Projector{src: query, code: code}, nil
}

// Project runs the query on ev and collects every output. A query that
// filters the event out yields an empty slice.
func (p *Projector) Project(ctx context.Context, ev step.Event) ([]any, error) {
	data, err := EventData(ev)
	if err != nil {
		return nil, err
	}

	out := []any{}
	iter := p.code.RunWithContext(ctx, data)
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if err, isErr := v.(error); isErr {
			if halt, isHalt := err.(*gojq.HaltError); isHalt && halt.Value() == nil {
				break
			}
			return nil, fmt.Errorf("watch: jq %q at seq %d: %w", p.src, ev.Seq, err)
		}
		out = append(out, v)
	}

	return out, nil
}

func (p *Projector) String() string { return "jq:" + p.src }
