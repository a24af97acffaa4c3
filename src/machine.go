package stackpp

import (
	"fmt"
	"sort"
	"strings"
)

// Machine is the runtime state a program evaluates against: the operand
// stack plus the global variable memory. One machine is created per
// engine and persists across evaluations, which is what gives the REPL
// its cross-chunk state.
type Machine struct {
	Stack  []Value
	Memory map[string]Value
}

// NewMachine creates an empty machine
func NewMachine() *Machine {
	return &Machine{
		Stack:  []Value{},
		Memory: make(map[string]Value),
	}
}

// Push places a value on top of the stack
func (m *Machine) Push(v Value) {
	m.Stack = append(m.Stack, v)
}

// Pop removes and returns the top of the stack. Popping an empty stack
// yields Error(StackEmpty) instead of failing; the error value then flows
// through coercions like any other datum.
func (m *Machine) Pop() Value {
	if len(m.Stack) == 0 {
		return Error{Kind: StackEmpty}
	}
	v := m.Stack[len(m.Stack)-1]
	m.Stack = m.Stack[:len(m.Stack)-1]
	return v
}

// Bind stores a value in memory under name, overwriting any prior binding
func (m *Machine) Bind(name string, v Value) {
	m.Memory[name] = v
}

// Lookup returns the value bound to name, if any
func (m *Machine) Lookup(name string) (Value, bool) {
	v, ok := m.Memory[name]
	return v, ok
}

// String renders the whole machine state, used by the REPL result dump.
// Memory keys are sorted so the dump is stable.
func (m *Machine) String() string {
	names := make([]string, 0, len(m.Memory))
	for name := range m.Memory {
		names = append(names, name)
	}
	sort.Strings(names)

	var mem strings.Builder
	for i, name := range names {
		if i > 0 {
			mem.WriteString(", ")
		}
		fmt.Fprintf(&mem, "%s: %s", name, m.Memory[name])
	}
	return fmt.Sprintf("Machine { stack: %s, memory: {%s} }", FormatProgram(m.Stack), mem.String())
}
