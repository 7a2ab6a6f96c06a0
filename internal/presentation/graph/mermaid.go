package graph

import (
	"fmt"
	"slices"
	"strings"

	"github.com/aretw0/arbor/pkg/script"
)

// GraphOverlay contains run state to highlight on the diagram.
type GraphOverlay struct {
	VisitedVariants []string
	CurrentVariant  string
}

// GenerateMermaid produces a Mermaid state diagram of a machine.
// Variants become states and decider rules become edges:
// - on_terminal transitions: solid edge labelled "terminal"
// - on_nonterminal transitions: edge labelled with the rule's bounds
// - exits: edge to the final state [*]
// Overlay styles (visited/current) are applied if provided.
func GenerateMermaid(m *script.Machine, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("stateDiagram-v2\n")

	if m.Initial != "" {
		sb.WriteString(fmt.Sprintf("    [*] --> %s\n", sanitizeMermaidID(m.Initial)))
	}

	for _, v := range m.Variants {
		safeID := sanitizeMermaidID(v.Name)
		if safeID != v.Name {
			sb.WriteString(fmt.Sprintf("    state \"%s\" as %s\n", escapeLabel(v.Name), safeID))
		}
		if v.Description != "" {
			sb.WriteString(fmt.Sprintf("    %s : %s\n", safeID, escapeLabel(v.Description)))
		}

		if r, ok := m.Rules.OnNonterminal[v.Name]; ok {
			label := "nonterminal"
			if cond := condition(r); cond != "" {
				label += " " + cond
			}
			writeEdge(&sb, safeID, r, label)
		}
		if r, ok := m.Rules.OnTerminal[v.Name]; ok {
			writeEdge(&sb, safeID, r, "terminal")
		}
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000\n")

		var visited []string
		for _, name := range overlay.VisitedVariants {
			safeID := sanitizeMermaidID(name)
			if safeID == "" || name == overlay.CurrentVariant || slices.Contains(visited, safeID) {
				continue
			}
			visited = append(visited, safeID)
			sb.WriteString(fmt.Sprintf("    class %s visited\n", safeID))
		}

		if overlay.CurrentVariant != "" {
			sb.WriteString(fmt.Sprintf("    class %s current\n", sanitizeMermaidID(overlay.CurrentVariant)))
		}
	}

	return sb.String()
}

func writeEdge(sb *strings.Builder, from string, r script.Rule, label string) {
	switch r.Action {
	case "transition":
		sb.WriteString(fmt.Sprintf("    %s --> %s : %s\n", from, sanitizeMermaidID(r.To), label))
	case "exit":
		sb.WriteString(fmt.Sprintf("    %s --> [*] : %s exit\n", from, label))
	}
}

func condition(r script.Rule) string {
	var parts []string
	if r.Above != nil {
		parts = append(parts, fmt.Sprintf("n > %d", *r.Above))
	}
	if r.Below != nil {
		parts = append(parts, fmt.Sprintf("n < %d", *r.Below))
	}
	return strings.Join(parts, " and ")
}

// Mermaid ends a transition label at the first colon or newline.
func escapeLabel(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, ":", "#colon;")
	return strings.ReplaceAll(s, "\"", "'")
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}
