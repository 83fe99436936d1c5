package watch

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/stepviz/step"
)

// ErrEmptyExpression is returned when compiling an empty condition or query.
var ErrEmptyExpression = errors.New("watch: empty expression")

// sections are the per-family state objects of an event.
var sections = []string{"sort", "search", "graph", "text"}

// EventData returns ev as a generic JSON document: objects are
// map[string]any, arrays []any, numbers float64. Absent sections are
// empty objects.
func EventData(ev step.Event) (map[string]any, error) {
	raw, err := json.Marshal(ev)
	if err != nil {
		return nil, fmt.Errorf("watch: encode event %d: %w", ev.Seq, err)
	}
	var data map[string]any
	if err = json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("watch: decode event %d: %w", ev.Seq, err)
	}
	for _, key := range sections {
		if _, ok := data[key]; !ok {
			data[key] = map[string]any{}
		}
	}
	if _, ok := data["note"]; !ok {
		data["note"] = ""
	}
	if _, ok := data["run_id"]; !ok {
		data["run_id"] = ""
	}

	return data, nil
}

// integralize turns whole float64 values into int64, recursively, so that
// integer literals compare equal to decoded JSON numbers.
func integralize(v any) any {
	switch val := v.(type) {
	case map[string]any:
		for k, e := range val {
			val[k] = integralize(e)
		}
		return val
	case []any:
		for i, e := range val {
			val[i] = integralize(e)
		}
		return val
	case float64:
		if val == math.Trunc(val) && math.Abs(val) < 1<<53 {
			return int64(val)
		}
		return val
	default:
		return v
	}
}
