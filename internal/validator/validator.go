package validator

import (
	"fmt"
	"strings"

	"github.com/aretw0/arbor/pkg/script"
)

// Report lists the findings of a reachability crawl. Findings are not
// errors: the machine still builds and runs.
type Report struct {
	// Unreachable holds variants no decider rule can lead to from the
	// initial variant, in declaration order.
	Unreachable []string
	// Endless is set when no reachable variant has an exit rule, so the
	// machine can only stop when its inputs run out.
	Endless bool
}

// OK reports whether the crawl found nothing.
func (r Report) OK() bool {
	return len(r.Unreachable) == 0 && !r.Endless
}

func (r Report) String() string {
	if r.OK() {
		return "no findings"
	}
	var findings []string
	for _, name := range r.Unreachable {
		findings = append(findings, fmt.Sprintf("Unreachable variant: '%s'", name))
	}
	if r.Endless {
		findings = append(findings, "No reachable exit: the machine never terminates")
	}
	return fmt.Sprintf("found %d findings:\n- %s", len(findings), strings.Join(findings, "\n- "))
}

// CrawlMachine walks the decider's transition rules breadth first, starting
// from the initial variant. The machine must be valid.
func CrawlMachine(m *script.Machine) Report {
	visited := make(map[string]bool, len(m.Variants))
	queue := []string{m.Initial}
	exits := false

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if visited[current] {
			continue
		}
		visited[current] = true

		for _, rules := range []map[string]script.Rule{m.Rules.OnNonterminal, m.Rules.OnTerminal} {
			r, ok := rules[current]
			if !ok {
				continue
			}
			switch r.Action {
			case "exit":
				exits = true
			case "transition":
				if !visited[r.To] {
					queue = append(queue, r.To)
				}
			}
		}
	}

	var report Report
	for _, v := range m.Variants {
		if !visited[v.Name] {
			report.Unreachable = append(report.Unreachable, v.Name)
		}
	}
	report.Endless = !exits
	return report
}
