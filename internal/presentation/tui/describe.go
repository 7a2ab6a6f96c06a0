package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/arbor/pkg/script"
)

// Describe renders a markdown summary of a machine: its variants and the
// decider rules for each of them.
func Describe(m *script.Machine) string {
	var sb strings.Builder

	name := m.Name
	if name == "" {
		name = "unnamed machine"
	}
	fmt.Fprintf(&sb, "# %s\n\n", name)
	if m.Description != "" {
		fmt.Fprintf(&sb, "%s\n\n", m.Description)
	}
	fmt.Fprintf(&sb, "Starts at `%s`.\n\n", m.Initial)

	sb.WriteString("## Variants\n\n")
	sb.WriteString("| Variant | Factor | Threshold | Limit | Description |\n")
	sb.WriteString("|---|---|---|---|---|\n")
	for _, v := range m.Variants {
		factor := int64(1)
		if v.Factor != nil {
			factor = *v.Factor
		}
		limit := "-"
		if v.MaxSteps > 0 {
			limit = fmt.Sprintf("%d steps, then %d", v.MaxSteps, v.OnLimit)
		}
		fmt.Fprintf(&sb, "| `%s` | %d | %d | %s | %s |\n",
			v.Name, factor, v.Threshold, limit, tableCell(v.Description))
	}

	sb.WriteString("\n## Decider\n\n")
	sb.WriteString("| Variant | On nonterminal | On terminal |\n")
	sb.WriteString("|---|---|---|\n")
	for _, v := range m.Variants {
		nonterm := "step"
		if r, ok := m.Rules.OnNonterminal[v.Name]; ok {
			nonterm = describeRule(r)
		}
		fmt.Fprintf(&sb, "| `%s` | %s | %s |\n", v.Name, nonterm, describeRule(m.Rules.OnTerminal[v.Name]))
	}

	return sb.String()
}

func describeRule(r script.Rule) string {
	var s string
	switch r.Action {
	case "", "step":
		s = "step"
	case "transition":
		s = fmt.Sprintf("transition to `%s`", r.To)
	default:
		s = r.Action
	}

	var conds []string
	if r.Above != nil {
		conds = append(conds, fmt.Sprintf("above %d", *r.Above))
	}
	if r.Below != nil {
		conds = append(conds, fmt.Sprintf("below %d", *r.Below))
	}
	if len(conds) > 0 {
		s += " when " + strings.Join(conds, " and ") + ", else step"
	}
	return s
}

func tableCell(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "|", "\\|")
}
