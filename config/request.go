package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/katalvlaran/stepviz/runner"
)

const requestSchemaURL = "https://stepviz.dev/schemas/request.json"

// requestSchemaJSON constrains request documents. Algorithm-specific
// requirements beyond the enum are left to runner.Request.Validate.
const requestSchemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "$id": "https://stepviz.dev/schemas/request.json",
  "type": "object",
  "required": ["algorithm"],
  "properties": {
    "algorithm": {
      "type": "string",
      "enum": [
        "quicksort", "quicksort-median3", "heapsort", "mergesort",
        "mergesort-bottomup", "bubblesort", "selectionsort", "insertionsort",
        "binary-search", "bfs", "dfs", "dfs-iterative", "dijkstra", "prim",
        "prim-simple", "kruskal", "astar", "brute-force", "horspool"
      ]
    },
    "array": { "type": "array", "items": { "type": "integer" } },
    "random_array": { "$ref": "#/$defs/random_array" },
    "target": { "type": "integer" },
    "leftmost": { "type": "boolean" },
    "graph": { "$ref": "#/$defs/graph" },
    "start": { "type": "integer", "minimum": 0 },
    "goal": { "type": "integer", "minimum": 0 },
    "heuristic_scale": { "type": "number", "minimum": 0 },
    "text": { "type": "string" },
    "pattern": { "type": "string" },
    "overlapping": { "type": "boolean" },
    "speed": { "type": "integer", "minimum": 1, "maximum": 100 }
  },
  "not": { "required": ["array", "random_array"] },
  "additionalProperties": false,
  "$defs": {
    "random_array": {
      "type": "object",
      "required": ["size", "max"],
      "properties": {
        "size": { "type": "integer", "minimum": 0 },
        "max": { "type": "integer", "minimum": 0 },
        "sorted": { "type": "boolean" },
        "seed": { "type": "integer" }
      },
      "additionalProperties": false
    },
    "graph": {
      "type": "object",
      "properties": {
        "weighted": { "type": "boolean" },
        "nodes": { "type": "integer", "minimum": 0 },
        "points": {
          "type": "array",
          "items": {
            "type": "array",
            "items": { "type": "number" },
            "minItems": 2,
            "maxItems": 2
          }
        },
        "edges": {
          "type": "array",
          "items": {
            "type": "array",
            "items": { "type": "integer" },
            "minItems": 2,
            "maxItems": 3
          }
        },
        "random": {
          "type": "object",
          "required": ["nodes"],
          "properties": {
            "nodes": { "type": "integer", "minimum": 1 },
            "extra": { "type": "integer", "minimum": 0 },
            "seed": { "type": "integer" },
            "width": { "type": "number", "exclusiveMinimum": 0 },
            "height": { "type": "number", "exclusiveMinimum": 0 }
          },
          "additionalProperties": false
        },
        "grid": {
          "type": "object",
          "required": ["cells"],
          "properties": {
            "cells": {
              "type": "array",
              "minItems": 1,
              "items": { "type": "array", "minItems": 1, "items": { "type": "integer" } }
            },
            "diagonal": { "type": "boolean" }
          },
          "additionalProperties": false
        }
      },
      "additionalProperties": false
    }
  }
}`

var compiledRequestSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(requestSchemaJSON))
	if err != nil {
		return nil, fmt.Errorf("unmarshal request schema: %w", err)
	}
	c := jsonschema.NewCompiler()
	c.AssertFormat()
	if err = c.AddResource(requestSchemaURL, doc); err != nil {
		return nil, fmt.Errorf("add request schema resource: %w", err)
	}

	return c.Compile(requestSchemaURL)
})

// requestDoc is the JSON form of a single run.
type requestDoc struct {
	Algorithm      string     `json:"algorithm"`
	Array          []int      `json:"array"`
	RandomArray    *ArraySpec `json:"random_array"`
	Target         *int       `json:"target"`
	Leftmost       bool       `json:"leftmost"`
	Graph          *GraphSpec `json:"graph"`
	Start          int        `json:"start"`
	Goal           *int       `json:"goal"`
	HeuristicScale *float64   `json:"heuristic_scale"`
	Text           string     `json:"text"`
	Pattern        string     `json:"pattern"`
	Overlapping    bool       `json:"overlapping"`
	Speed          *int       `json:"speed"`
}

func (d *requestDoc) fields() requestFields {
	return requestFields{
		Algorithm:      d.Algorithm,
		Array:          d.Array,
		RandomArray:    d.RandomArray,
		Target:         d.Target,
		Leftmost:       d.Leftmost,
		Start:          d.Start,
		Goal:           d.Goal,
		HeuristicScale: d.HeuristicScale,
		Text:           d.Text,
		Pattern:        d.Pattern,
		Overlapping:    d.Overlapping,
		Speed:          d.Speed,
	}
}

// ParseRequest validates raw against the request schema and resolves it
// into a runner.Request.
//
//	{"algorithm": "dijkstra", "goal": 3,
//	 "graph": {"weighted": true, "nodes": 4, "edges": [[0,1,2],[1,2],[2,3,1]]}}
func ParseRequest(raw []byte) (runner.Request, error) {
	schema, err := compiledRequestSchema()
	if err != nil {
		return runner.Request{}, fmt.Errorf("config: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return runner.Request{}, fmt.Errorf("%w: request is not JSON: %w", ErrInvalid, err)
	}
	if err = schema.Validate(inst); err != nil {
		return runner.Request{}, validationError(err)
	}

	var doc requestDoc
	if err = json.Unmarshal(raw, &doc); err != nil {
		return runner.Request{}, fmt.Errorf("%w: decode request: %w", ErrInvalid, err)
	}

	return buildRequest(doc.fields(), doc.Graph, 0)
}

// LoadRequest reads and parses a request from r.
func LoadRequest(r io.Reader) (runner.Request, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return runner.Request{}, fmt.Errorf("config: read request: %w", err)
	}

	return ParseRequest(raw)
}

// LoadRequestFile reads and parses the request stored at path.
func LoadRequestFile(path string) (runner.Request, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return runner.Request{}, fmt.Errorf("config: read request: %w", err)
	}

	return ParseRequest(raw)
}

// validationError flattens a schema failure into one error listing every
// violated location.
func validationError(err error) error {
	verr, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	violations := collectViolations(verr)
	if len(violations) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, verr.Error())
	}

	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(violations, "; "))
}

func collectViolations(verr *jsonschema.ValidationError) []string {
	if len(verr.Causes) == 0 {
		return []string{fmt.Sprintf("/%s: %s", strings.Join(verr.InstanceLocation, "/"), verr.Error())}
	}
	var out []string
	for _, cause := range verr.Causes {
		out = append(out, collectViolations(cause)...)
	}

	return out
}
