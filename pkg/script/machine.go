package script

import (
	"errors"
	"fmt"
	"math"
	"os"
	"reflect"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// ErrInvalidMachine wraps every validation failure.
var ErrInvalidMachine = errors.New("invalid machine")

// Machine is a declared serial machine.
type Machine struct {
	Name        string    `mapstructure:"name"`
	Description string    `mapstructure:"description"`
	Initial     string    `mapstructure:"initial"`
	Variants    []Variant `mapstructure:"variants"`
	Rules       Rules     `mapstructure:"decider"`
}

// Variant declares one leaf of the machine. A nil Factor means 1.
type Variant struct {
	Name        string `mapstructure:"name"`
	Description string `mapstructure:"description"`
	Factor      *int64 `mapstructure:"factor"`
	Threshold   int64  `mapstructure:"threshold"`
	MaxSteps    int    `mapstructure:"max_steps"`
	OnLimit     int64  `mapstructure:"on_limit"`
}

// Rules holds the decider's per-variant rules.
type Rules struct {
	OnNonterminal map[string]Rule `mapstructure:"on_nonterminal"`
	OnTerminal    map[string]Rule `mapstructure:"on_terminal"`
}

// Rule is one decider rule.
type Rule struct {
	Action string `mapstructure:"action"`
	To     string `mapstructure:"to"`
	Above  *int64 `mapstructure:"above"`
	Below  *int64 `mapstructure:"below"`
}

// Load reads and parses a machine file.
func Load(path string) (*Machine, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read machine: %w", err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Parse decodes and validates a machine document.
func Parse(data []byte) (*Machine, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: empty document", ErrInvalidMachine)
	}

	var m Machine
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &m,
		ErrorUnused: true,
		DecodeHook:  exactIntegerHook,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMachine, err)
	}

	if m.Initial == "" && len(m.Variants) > 0 {
		m.Initial = m.Variants[0].Name
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// exactIntegerHook rejects floats that would lose their fractional part or
// overflow when decoded into an integer field.
func exactIntegerHook(from, to reflect.Kind, data any) (any, error) {
	if from != reflect.Float64 && from != reflect.Float32 {
		return data, nil
	}
	switch to {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
	default:
		return data, nil
	}

	f := reflect.ValueOf(data).Float()
	if f != math.Trunc(f) {
		return nil, fmt.Errorf("%v is not a whole number", data)
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return nil, fmt.Errorf("%v is out of range", data)
	}
	return int64(f), nil
}

// Validate checks that the machine is well formed and its decider is total.
func (m *Machine) Validate() error {
	var problems []error
	report := func(format string, args ...any) {
		problems = append(problems, fmt.Errorf(format, args...))
	}

	if len(m.Variants) == 0 {
		report("no variants declared")
	}
	known := make(map[string]bool, len(m.Variants))
	for i, v := range m.Variants {
		switch {
		case v.Name == "":
			report("variant %d has no name", i)
		case known[v.Name]:
			report("variant %q declared twice", v.Name)
		}
		if v.MaxSteps < 0 {
			report("variant %q: max_steps must not be negative", v.Name)
		}
		known[v.Name] = true
	}
	if len(m.Variants) > 0 && !known[m.Initial] {
		report("initial variant %q is not declared", m.Initial)
	}

	for name, r := range m.Rules.OnNonterminal {
		if !known[name] {
			report("on_nonterminal: unknown variant %q", name)
		}
		switch r.Action {
		case "", "step", "exit":
		case "transition":
			if !known[r.To] {
				report("on_nonterminal %q: unknown target %q", name, r.To)
			}
		default:
			report("on_nonterminal %q: unknown action %q", name, r.Action)
		}
	}

	for name, r := range m.Rules.OnTerminal {
		if !known[name] {
			report("on_terminal: unknown variant %q", name)
		}
		if r.Above != nil || r.Below != nil {
			report("on_terminal %q: bounds are only allowed on nonterminal rules", name)
		}
		switch r.Action {
		case "exit":
		case "transition":
			if !known[r.To] {
				report("on_terminal %q: unknown target %q", name, r.To)
			}
		default:
			report("on_terminal %q: action must be transition or exit, got %q", name, r.Action)
		}
	}
	for _, v := range m.Variants {
		if _, ok := m.Rules.OnTerminal[v.Name]; v.Name != "" && !ok {
			report("on_terminal: no rule for variant %q", v.Name)
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidMachine, errors.Join(problems...))
	}
	return nil
}

// VariantNames returns the variant names in declaration order.
func (m *Machine) VariantNames() []string {
	names := make([]string, len(m.Variants))
	for i, v := range m.Variants {
		names[i] = v.Name
	}
	return names
}
