package graph_test

import (
	"strings"
	"testing"

	"github.com/aretw0/arbor/internal/presentation/graph"
	"github.com/aretw0/arbor/pkg/script"
)

func mustParse(t *testing.T, doc string) *script.Machine {
	t.Helper()
	m, err := script.Parse([]byte(doc))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return m
}

const switcharound = `
name: switcharound
variants:
  - name: positive
    description: "reports: input"
  - name: negative
    factor: -1
decider:
  on_terminal:
    positive: { action: transition, to: negative }
    negative: { action: transition, to: positive }
`

func TestGenerateMermaid(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		contains []string
		absent   []string
	}{
		{
			name: "Terminal Transitions",
			doc:  switcharound,
			contains: []string{
				"stateDiagram-v2\n",
				"[*] --> positive",
				"positive --> negative : terminal",
				"negative --> positive : terminal",
			},
			absent: []string{"--> [*]", "classDef"},
		},
		{
			name: "Description Escaping",
			doc:  switcharound,
			contains: []string{
				"positive : reports#colon; input",
			},
		},
		{
			name: "Nonterminal Bounds And Exit",
			doc: `
variants:
  - name: heating
  - name: cooling
decider:
  on_nonterminal:
    heating: { action: transition, to: cooling, above: 25 }
    cooling: { action: exit, below: 18 }
  on_terminal:
    heating: { action: exit }
    cooling: { action: exit }
`,
			contains: []string{
				"heating --> cooling : nonterminal n > 25",
				"cooling --> [*] : nonterminal n < 18 exit",
				"heating --> [*] : terminal exit",
			},
		},
		{
			name: "ID Sanitization",
			doc: `
variants:
  - name: warm-up
decider:
  on_terminal:
    warm-up: { action: transition, to: warm-up }
`,
			contains: []string{
				"state \"warm-up\" as warm_up",
				"[*] --> warm_up",
				"warm_up --> warm_up : terminal",
			},
		},
		{
			name: "Step Rules Draw No Edge",
			doc: `
variants:
  - name: a
decider:
  on_nonterminal:
    a: { action: step }
  on_terminal:
    a: { action: exit }
`,
			absent: []string{"nonterminal"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := graph.GenerateMermaid(mustParse(t, tt.doc), nil)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("expected output to contain %q, got:\n%s", want, got)
				}
			}
			for _, unwanted := range tt.absent {
				if strings.Contains(got, unwanted) {
					t.Errorf("expected output not to contain %q, got:\n%s", unwanted, got)
				}
			}
		})
	}
}

func TestGenerateMermaid_Overlay(t *testing.T) {
	m := mustParse(t, switcharound)
	got := graph.GenerateMermaid(m, &graph.GraphOverlay{
		VisitedVariants: []string{"positive", "negative", "positive"},
		CurrentVariant:  "negative",
	})

	if !strings.Contains(got, "classDef visited") || !strings.Contains(got, "classDef current") {
		t.Fatalf("missing class definitions:\n%s", got)
	}
	if n := strings.Count(got, "class positive visited"); n != 1 {
		t.Errorf("expected positive styled visited once, got %d", n)
	}
	if strings.Contains(got, "class negative visited") {
		t.Errorf("current variant should not also be styled visited:\n%s", got)
	}
	if !strings.Contains(got, "class negative current") {
		t.Errorf("missing current style:\n%s", got)
	}
}
