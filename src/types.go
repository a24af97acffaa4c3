package stackpp

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Value is a single Stack++ runtime value. The set of variants is closed:
// Number, String, Bool, Variable, Instruction, Block and Error. Anything
// the evaluator touches is one of these.
type Value interface {
	isValue()
	String() string
}

// Number is a 64-bit floating point value
type Number float64

func (Number) isValue() {}

func (n Number) String() string {
	return fmt.Sprintf("Number(%s)", formatNumber(float64(n)))
}

// String is a text value
type String string

func (String) isValue() {}

func (s String) String() string {
	return fmt.Sprintf("String(%q)", string(s))
}

// Bool is a boolean value. There are no true/false literals in the source
// language; Bools are produced only by equal, less-than and greater-than.
type Bool bool

func (Bool) isValue() {}

func (b Bool) String() string {
	return fmt.Sprintf("Bool(%t)", bool(b))
}

// Variable is an unresolved symbol reference ($name in source). It stays
// structural data until evaluation time, when it is resolved by value-copy
// from machine memory. An unbound reference is pushed unchanged.
type Variable string

func (Variable) isValue() {}

func (v Variable) String() string {
	return fmt.Sprintf("Variable(%s)", string(v))
}

// Instruction is one opcode of the fixed instruction set
type Instruction Opcode

func (Instruction) isValue() {}

func (i Instruction) String() string {
	return fmt.Sprintf("Instruction(%s)", Opcode(i))
}

// Block is a deferred, not-yet-evaluated sequence of values. The inner
// sequence is immutable once parsed; control-flow instructions execute it
// on demand against the same machine.
type Block []Value

func (Block) isValue() {}

func (b Block) String() string {
	return fmt.Sprintf("Block(%s)", FormatProgram(b))
}

// ErrorKind enumerates the error values the machine can produce
type ErrorKind int

const (
	// StackEmpty is produced by popping an empty stack. It is the only
	// error kind; it flows through coercions like any other value.
	StackEmpty ErrorKind = iota
)

func (k ErrorKind) String() string {
	switch k {
	case StackEmpty:
		return "StackEmpty"
	default:
		return "Unknown"
	}
}

// Error is a first-class error value. It is pushed and popped like any
// other datum and never aborts evaluation.
type Error struct {
	Kind ErrorKind
}

func (Error) isValue() {}

func (e Error) String() string {
	return fmt.Sprintf("Error(%s)", e.Kind)
}

// Opcode identifies one instruction of the fixed set
type Opcode int

const (
	OpAdd Opcode = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpPow
	OpConcat
	OpPrint
	OpInput
	OpEqual
	OpLessThan
	OpGreaterThan
	OpEval
	OpWhen
	OpIfElse
	OpWhile
	OpUntil
	OpLet
	OpPop
)

var opcodeNames = map[Opcode]string{
	OpAdd:         "Add",
	OpSub:         "Sub",
	OpMul:         "Mul",
	OpDiv:         "Div",
	OpMod:         "Mod",
	OpPow:         "Pow",
	OpConcat:      "Concat",
	OpPrint:       "Print",
	OpInput:       "Input",
	OpEqual:       "Equal",
	OpLessThan:    "LessThan",
	OpGreaterThan: "GreaterThan",
	OpEval:        "Eval",
	OpWhen:        "When",
	OpIfElse:      "IfElse",
	OpWhile:       "While",
	OpUntil:       "Until",
	OpLet:         "Let",
	OpPop:         "Pop",
}

func (op Opcode) String() string {
	if name, ok := opcodeNames[op]; ok {
		return name
	}
	return fmt.Sprintf("Opcode(%d)", int(op))
}

// Coercions are total: they never fail and never abort. A value that is
// not the expected variant coerces to that variant's zero-ish form. This
// is a deliberate trade of type safety for terseness and is part of the
// language's observable behavior.

// AsNumber returns the float payload of a Number, 0 for everything else
func AsNumber(v Value) float64 {
	if n, ok := v.(Number); ok {
		return float64(n)
	}
	return 0
}

// AsString returns text for String and Variable, the decimal text for
// Number, and the empty string for everything else
func AsString(v Value) string {
	switch t := v.(type) {
	case String:
		return string(t)
	case Variable:
		return string(t)
	case Number:
		return formatNumber(float64(t))
	default:
		return ""
	}
}

// AsBool returns the payload of a Bool, false for everything else
func AsBool(v Value) bool {
	if b, ok := v.(Bool); ok {
		return bool(b)
	}
	return false
}

// AsBlock returns the inner sequence of a Block; any other value becomes
// a single-element sequence containing the value unchanged
func AsBlock(v Value) []Value {
	if b, ok := v.(Block); ok {
		return []Value(b)
	}
	return []Value{v}
}

// formatNumber renders a float in shortest plain-decimal form, never
// exponent notation, so integer-valued floats print as integers
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// FormatProgram renders a value sequence in its debug form, used by the
// REPL AST dump
func FormatProgram(program []Value) string {
	parts := make([]string, len(program))
	for i, v := range program {
		parts[i] = v.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Config holds configuration for a Stack++ engine
type Config struct {
	Debug bool
	// In is where the input instruction reads lines from (default stdin)
	In io.Reader
	// Out is where the print instruction writes to (default stdout)
	Out io.Writer
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Debug: false,
		In:    os.Stdin,
		Out:   os.Stdout,
	}
}
