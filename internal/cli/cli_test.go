package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aretw0/arbor/internal/logging"
	"github.com/aretw0/arbor/pkg/script"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Args(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := Run(context.Background(), RunOptions{
		MachinePath: "testdata/switcharound.yaml",
		Inputs:      []string{"5", "-5", "5", "-5", "5"},
		LogLevel:    "info",
		Stdout:      &stdout,
		Stderr:      &stderr,
	})
	require.NoError(t, err)

	want := strings.Join([]string{
		"positive nonterminal 5",
		"positive terminal -5",
		"negative nonterminal -5",
		"negative terminal 5",
		"positive nonterminal 5",
	}, "\n") + "\n"
	assert.Equal(t, want, stdout.String())
	assert.Contains(t, stderr.String(), "branch transition")
	assert.Contains(t, stderr.String(), "run finished")
}

func TestRun_InvalidArg(t *testing.T) {
	err := Run(context.Background(), RunOptions{
		MachinePath: "testdata/switcharound.yaml",
		Inputs:      []string{"5", "five"},
		Stdout:      &bytes.Buffer{},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid input "five"`)
}

func TestRun_MissingMachine(t *testing.T) {
	err := Run(context.Background(), RunOptions{
		MachinePath: "testdata/missing.yaml",
		Inputs:      []string{"1"},
		Stdout:      &bytes.Buffer{},
	})
	assert.Error(t, err)
}

func TestRun_BadLogLevel(t *testing.T) {
	err := Run(context.Background(), RunOptions{
		MachinePath: "testdata/switcharound.yaml",
		LogLevel:    "loud",
		Stdout:      &bytes.Buffer{},
		Stderr:      &bytes.Buffer{},
	})
	assert.Error(t, err)
}

func TestRun_StdinJSON(t *testing.T) {
	var stdout bytes.Buffer
	err := Run(context.Background(), RunOptions{
		MachinePath: "testdata/switcharound.yaml",
		JSON:        true,
		Prompt:      true,
		Stdin:       strings.NewReader("3\n\n-2\nquit\n7\n"),
		Stdout:      &stdout,
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.Len(t, lines, 2, "prompt is suppressed in JSON mode and input stops at quit")

	var first, second jsonEvent
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))

	assert.Equal(t, jsonEvent{Step: 1, Variant: "positive", Kind: "nonterminal", Action: "step", To: "positive", Value: float64(3)}, first)
	assert.Equal(t, jsonEvent{Step: 2, Variant: "positive", Kind: "terminal", Action: "transition", To: "negative", Value: float64(-2)}, second)
}

func TestRun_StdinPrompt(t *testing.T) {
	var stdout bytes.Buffer
	err := Run(context.Background(), RunOptions{
		MachinePath: "testdata/switcharound.yaml",
		Prompt:      true,
		Stdin:       strings.NewReader("1\n"),
		Stdout:      &stdout,
	})
	require.NoError(t, err)
	assert.Equal(t, "> positive nonterminal 1\n> \n", stdout.String())
}

func TestRun_StdinParseError(t *testing.T) {
	err := Run(context.Background(), RunOptions{
		MachinePath: "testdata/switcharound.yaml",
		Stdin:       strings.NewReader("1\nx\n2\n"),
		Stdout:      &bytes.Buffer{},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid input "x"`)
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var stdout bytes.Buffer
	err := Run(ctx, RunOptions{
		MachinePath: "testdata/switcharound.yaml",
		Inputs:      []string{"1", "2"},
		Stdout:      &stdout,
	})
	assert.NoError(t, err, "interruptions exit cleanly")
	assert.Empty(t, stdout.String())
}

func TestRun_MaxSteps(t *testing.T) {
	err := Run(context.Background(), RunOptions{
		MachinePath: "testdata/switcharound.yaml",
		Inputs:      []string{"1", "2", "3"},
		MaxSteps:    2,
		Stdout:      &bytes.Buffer{},
	})
	assert.ErrorContains(t, err, "step limit reached")
}

func TestRun_MetricsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arbor.prom")
	err := Run(context.Background(), RunOptions{
		MachinePath: "testdata/switcharound.yaml",
		Inputs:      []string{"5", "-5"},
		MetricsFile: path,
		Stdout:      &bytes.Buffer{},
	})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `arbor_branch_steps_total{action="step",machine="switcharound",variant="positive"} 1`)
	assert.Contains(t, string(data), `arbor_branch_transitions_total{from="positive",machine="switcharound",to="negative"} 1`)
}

func TestWatchMachine(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "machine.yaml")
	original, err := os.ReadFile("testdata/switcharound.yaml")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, original, 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	type load struct {
		m   *script.Machine
		err error
	}
	loads := make(chan load, 8)
	done := make(chan error, 1)
	go func() {
		done <- WatchMachine(ctx, path, logging.NewNop(), func(m *script.Machine, err error) {
			loads <- load{m, err}
		})
	}()

	next := func() load {
		select {
		case l := <-loads:
			return l
		case <-time.After(5 * time.Second):
			t.Fatal("timed out waiting for reload")
			return load{}
		}
	}

	first := next()
	require.NoError(t, first.err)
	assert.Equal(t, "switcharound", first.m.Name)

	renamed := strings.Replace(string(original), "name: switcharound", "name: renamed", 1)
	require.NoError(t, os.WriteFile(path, []byte(renamed), 0o644))

	second := next()
	require.NoError(t, second.err)
	assert.Equal(t, "renamed", second.m.Name)

	cancel()
	assert.NoError(t, <-done)
}
