package stackpp

import (
	"fmt"
	"math"
	"strings"
)

// eval processes a value sequence strictly left to right against m.
// Control-flow instructions recurse into eval with a block's inner
// sequence and the same machine; there is no instruction pointer.
func (s *StackPP) eval(program []Value, m *Machine) {
	for _, v := range program {
		switch t := v.(type) {
		case Instruction:
			s.exec(Opcode(t), m)
		case Variable:
			// A bound reference pushes a copy of the stored value; an
			// unbound one pushes itself and flows as an opaque literal
			if bound, ok := m.Lookup(string(t)); ok {
				m.Push(bound)
			} else {
				m.Push(t)
			}
		default:
			m.Push(v)
		}
	}
}

// exec dispatches one instruction. Binary operations pop the right
// operand first, then the left; control flow pops its block(s) first,
// then the condition underneath.
func (s *StackPP) exec(op Opcode, m *Machine) {
	s.logger.TraceCat(CatEval, "exec %s (stack depth %d)", op, len(m.Stack))

	switch op {
	case OpAdd:
		b := AsNumber(m.Pop())
		a := AsNumber(m.Pop())
		m.Push(Number(a + b))

	case OpSub:
		b := AsNumber(m.Pop())
		a := AsNumber(m.Pop())
		m.Push(Number(a - b))

	case OpMul:
		b := AsNumber(m.Pop())
		a := AsNumber(m.Pop())
		m.Push(Number(a * b))

	case OpDiv:
		// Native float semantics: division by zero yields Inf/NaN
		b := AsNumber(m.Pop())
		a := AsNumber(m.Pop())
		m.Push(Number(a / b))

	case OpMod:
		b := AsNumber(m.Pop())
		a := AsNumber(m.Pop())
		m.Push(Number(math.Mod(a, b)))

	case OpPow:
		b := AsNumber(m.Pop())
		a := AsNumber(m.Pop())
		m.Push(Number(math.Pow(a, b)))

	case OpConcat:
		b := AsString(m.Pop())
		a := AsString(m.Pop())
		m.Push(String(a + b))

	case OpPrint:
		text := AsString(m.Pop())
		s.logger.TraceCat(CatIO, "print %q", text)
		fmt.Fprint(s.config.Out, text)

	case OpInput:
		m.Push(String(s.readLine()))

	case OpEqual:
		b := AsString(m.Pop())
		a := AsString(m.Pop())
		m.Push(Bool(a == b))

	case OpLessThan:
		b := AsNumber(m.Pop())
		a := AsNumber(m.Pop())
		m.Push(Bool(a < b))

	case OpGreaterThan:
		b := AsNumber(m.Pop())
		a := AsNumber(m.Pop())
		m.Push(Bool(a > b))

	case OpEval:
		s.eval(AsBlock(m.Pop()), m)

	case OpWhen:
		block := AsBlock(m.Pop())
		if AsBool(m.Pop()) {
			s.eval(block, m)
		}

	case OpIfElse:
		blockFalse := AsBlock(m.Pop())
		blockTrue := AsBlock(m.Pop())
		if AsBool(m.Pop()) {
			s.eval(blockTrue, m)
		} else {
			s.eval(blockFalse, m)
		}

	case OpWhile:
		// The condition is live code, re-run before every iteration
		body := AsBlock(m.Pop())
		condition := AsBlock(m.Pop())
		for {
			s.eval(condition, m)
			if !AsBool(m.Pop()) {
				break
			}
			s.eval(body, m)
		}

	case OpUntil:
		body := AsBlock(m.Pop())
		condition := AsBlock(m.Pop())
		for {
			s.eval(condition, m)
			if AsBool(m.Pop()) {
				break
			}
			s.eval(body, m)
		}

	case OpLet:
		name := AsString(m.Pop())
		value := m.Pop()
		s.logger.TraceCat(CatMachine, "let %s = %s", name, value)
		m.Bind(name, value)

	case OpPop:
		m.Pop()

	default:
		// The opcode set is closed; reaching this means a new opcode was
		// added without a dispatch arm
		s.logger.Fatal("unhandled instruction %s", op)
	}
}

// readLine blocks until one line is available on the configured input and
// returns it without the trailing newline
func (s *StackPP) readLine() string {
	line, _ := s.in.ReadString('\n')
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line
}
