package cli_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepviz/internal/cli"
	"github.com/katalvlaran/stepviz/watch"
)

func TestParse_Defaults(t *testing.T) {
	out := &bytes.Buffer{}
	cfg, exit, err := cli.Parse([]string{"-scenario", "demo.hcl"}, out)
	require.NoError(t, err)
	require.False(t, exit)

	assert.Equal(t, &cli.Config{
		ScenarioPath: "demo.hcl",
		LogLevel:     "warn",
		LogFormat:    "text",
		Dialect:      watch.DialectExpr,
	}, cfg)
}

func TestParse_AllFlags(t *testing.T) {
	cfg, exit, err := cli.Parse([]string{
		"-scenario", "s.hcl", "-run", "a, b,,c", "-speed", "40", "-no-delay",
		"-log-level", "DEBUG", "-log-format", "json",
		"-project", ".kind", "-stop-when", `kind == "done"`, "-dialect", "cel",
	}, &bytes.Buffer{})
	require.NoError(t, err)
	require.False(t, exit)

	assert.Equal(t, []string{"a", "b", "c"}, cfg.Runs)
	assert.Equal(t, 40, cfg.Speed)
	assert.True(t, cfg.NoDelay)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, ".kind", cfg.Project)
	assert.Equal(t, `kind == "done"`, cfg.StopWhen)
	assert.Equal(t, watch.DialectCEL, cfg.Dialect)
}

func TestParse_HelpAndNoInput(t *testing.T) {
	for _, args := range [][]string{{"-h"}, {}} {
		out := &bytes.Buffer{}
		cfg, exit, err := cli.Parse(args, out)
		require.NoError(t, err)
		assert.True(t, exit)
		assert.Nil(t, cfg)
		assert.Contains(t, out.String(), "Usage:")
	}
}

func TestParse_UsageErrors(t *testing.T) {
	cases := map[string][]string{
		"unknown flag": {"-bogus"},
		"both inputs":  {"-scenario", "a.hcl", "-request", "b.json"},
		"run needs sc": {"-request", "b.json", "-run", "x"},
		"speed":        {"-request", "b.json", "-speed", "101"},
		"log format":   {"-request", "b.json", "-log-format", "xml"},
		"log level":    {"-request", "b.json", "-log-level", "loud"},
		"dialect":      {"-request", "b.json", "-dialect", "lua"},
	}
	for name, args := range cases {
		_, _, err := cli.Parse(args, &bytes.Buffer{})
		var exitErr *cli.ExitError
		require.ErrorAs(t, err, &exitErr, name)
		assert.Equal(t, cli.ExitUsage, exitErr.Code, name)
	}
}

func TestNewApp_BadExpressions(t *testing.T) {
	for _, cfg := range []*cli.Config{
		{StopWhen: "kind ==", Dialect: watch.DialectExpr},
		{StopWhen: "seq + 1", Dialect: watch.DialectCEL},
		{Project: "{"},
	} {
		_, err := cli.NewApp(cfg, &bytes.Buffer{}, &bytes.Buffer{})
		var exitErr *cli.ExitError
		require.ErrorAs(t, err, &exitErr)
		assert.Equal(t, cli.ExitUsage, exitErr.Code)
	}
}
