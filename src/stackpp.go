// Package stackpp implements the Stack++ programming language: a minimal
// stack-based language with deferred { } blocks, a flat global variable
// store and permissive, never-failing type coercion. The engine exposes
// two entry points, Parse and Evaluate; everything else (CLI, REPL, file
// loading) sits outside and talks through them.
package stackpp

import (
	"bufio"
	"os"
)

// Version of the language implementation
const Version = "0.2.0"

// StackPP is a Stack++ engine: one machine plus the configuration it runs
// under. State persists across Run calls, so successive REPL chunks see
// each other's stack and variables.
type StackPP struct {
	config  *Config
	logger  *Logger
	machine *Machine
	in      *bufio.Reader
}

// New creates a new Stack++ engine
func New(config *Config) *StackPP {
	if config == nil {
		config = DefaultConfig()
	}
	if config.In == nil {
		config.In = os.Stdin
	}
	if config.Out == nil {
		config.Out = os.Stdout
	}

	return &StackPP{
		config:  config,
		logger:  NewLogger(config.Debug),
		machine: NewMachine(),
		in:      bufio.NewReader(config.In),
	}
}

// Machine returns the engine's runtime state
func (s *StackPP) Machine() *Machine {
	return s.machine
}

// Logger returns the engine's logger
func (s *StackPP) Logger() *Logger {
	return s.logger
}

// Run parses source text and evaluates it against the engine's machine
func (s *StackPP) Run(source string) {
	program := Parse(source)
	s.logger.DebugCat(CatParse, "parsed %d top-level values: %s", len(program), FormatProgram(program))
	s.Evaluate(program)
}

// Evaluate executes a value sequence against the engine's machine
func (s *StackPP) Evaluate(program []Value) {
	s.eval(program, s.machine)
}
