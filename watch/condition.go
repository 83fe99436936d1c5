package watch

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/google/cel-go/cel"

	"github.com/katalvlaran/stepviz/step"
)

// Condition decides whether an event is of interest.
type Condition interface {
	Match(ev step.Event) (bool, error)
	String() string
}

// Dialect names a condition language.
type Dialect string

// Supported dialects.
const (
	DialectExpr Dialect = "expr"
	DialectCEL  Dialect = "cel"
)

// Compile builds a Condition from src in the given dialect.
func Compile(dialect Dialect, src string) (Condition, error) {
	switch dialect {
	case DialectExpr, "":
		return NewExprCondition(src)
	case DialectCEL:
		return NewCELCondition(src)
	default:
		return nil, fmt.Errorf("watch: unknown dialect %q", dialect)
	}
}

// ExprCondition is a boolean expr-lang expression over the event document.
type ExprCondition struct {
	src string
	prg *vm.Program
}

// exprEnv declares the event document. The sort builtin is disabled so
// that sort names the section.
var exprEnv = map[string]any{
	"run_id": "",
	"kind":   "",
	"note":   "",
	"sort":   map[string]any{},
	"search": map[string]any{},
	"graph":  map[string]any{},
	"text":   map[string]any{},
}

// NewExprCondition compiles src. Unknown identifiers evaluate to nil.
func NewExprCondition(src string) (*ExprCondition, error) {
	if src == "" {
		return nil, ErrEmptyExpression
	}
	prg, err := expr.Compile(src,
		expr.Env(exprEnv),
		expr.DisableBuiltin("sort"),
		expr.AllowUndefinedVariables(),
		expr.AsBool(),
	)
	if err != nil {
		return nil, fmt.Errorf("watch: expr compile %q: %w", src, err)
	}

	return &ExprCondition{src: src, prg: prg}, nil
}

// Match evaluates the expression against ev.
func (c *ExprCondition) Match(ev step.Event) (bool, error) {
	data, err := EventData(ev)
	if err != nil {
		return false, err
	}
	out, err := expr.Run(c.prg, data)
	if err != nil {
		return false, fmt.Errorf("watch: expr eval %q at seq %d: %w", c.src, ev.Seq, err)
	}
	ok, _ := out.(bool)

	return ok, nil
}

func (c *ExprCondition) String() string { return "expr:" + c.src }

// CELCondition is a boolean CEL expression. Variables: run_id, kind, note
// (string), seq (int) and sort, search, graph, text (map(string, dyn)).
// Whole numbers inside the maps are ints; int and double compare freely.
type CELCondition struct {
	src string
	prg cel.Program
}

// NewCELCondition compiles src and checks that it yields a bool.
func NewCELCondition(src string) (*CELCondition, error) {
	if src == "" {
		return nil, ErrEmptyExpression
	}
	mapType := cel.MapType(cel.StringType, cel.DynType)
	env, err := cel.NewEnv(
		cel.Variable("run_id", cel.StringType),
		cel.Variable("kind", cel.StringType),
		cel.Variable("note", cel.StringType),
		cel.Variable("seq", cel.IntType),
		cel.Variable("sort", mapType),
		cel.Variable("search", mapType),
		cel.Variable("graph", mapType),
		cel.Variable("text", mapType),
		cel.CrossTypeNumericComparisons(true),
	)
	if err != nil {
		return nil, fmt.Errorf("watch: create CEL environment: %w", err)
	}
	ast, issues := env.Compile(src)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("watch: CEL compile %q: %w", src, issues.Err())
	}
	if !cel.BoolType.IsAssignableType(ast.OutputType()) {
		return nil, fmt.Errorf("watch: CEL %q yields %s, want bool", src, ast.OutputType())
	}
	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("watch: CEL program %q: %w", src, err)
	}

	return &CELCondition{src: src, prg: prg}, nil
}

// Match evaluates the expression against ev.
func (c *CELCondition) Match(ev step.Event) (bool, error) {
	data, err := EventData(ev)
	if err != nil {
		return false, err
	}
	activation := make(map[string]any, len(data))
	for k, v := range data {
		activation[k] = integralize(v)
	}
	activation["seq"] = int64(ev.Seq)
	activation["kind"] = string(ev.Kind)

	out, _, err := c.prg.Eval(activation)
	if err != nil {
		return false, fmt.Errorf("watch: CEL eval %q at seq %d: %w", c.src, ev.Seq, err)
	}
	ok, _ := out.Value().(bool)

	return ok, nil
}

func (c *CELCondition) String() string { return "cel:" + c.src }
