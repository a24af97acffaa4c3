package stackpp

import (
	"testing"
)

func TestParseNumberLiterals(t *testing.T) {
	cases := map[string]float64{
		"3":    3,
		"-2.5": -2.5,
		".5":   0.5,
		"1e3":  1000,
	}
	for source, want := range cases {
		program := Parse(source)
		if len(program) != 1 {
			t.Fatalf("%q: expected 1 value, got %d", source, len(program))
		}
		n, ok := program[0].(Number)
		if !ok {
			t.Fatalf("%q: expected Number, got %s", source, program[0])
		}
		if float64(n) != want {
			t.Errorf("%q: expected %v, got %v", source, want, float64(n))
		}
	}
}

func TestParseStringStripsQuotes(t *testing.T) {
	program := Parse(`"hello world"`)
	if len(program) != 1 {
		t.Fatalf("Expected 1 value, got %d", len(program))
	}
	if s, ok := program[0].(String); !ok || string(s) != "hello world" {
		t.Errorf("Expected String(hello world), got %s", program[0])
	}
}

func TestParseEmptyString(t *testing.T) {
	program := Parse(`""`)
	if len(program) != 1 {
		t.Fatalf("Expected 1 value, got %d", len(program))
	}
	if s, ok := program[0].(String); !ok || string(s) != "" {
		t.Errorf("Expected empty String, got %s", program[0])
	}
}

func TestParseQuotedNumberIsString(t *testing.T) {
	// Quotes win over numeric form: "5" is text, not a number
	program := Parse(`"5"`)
	if s, ok := program[0].(String); !ok || string(s) != "5" {
		t.Errorf("Expected String(5), got %s", program[0])
	}
}

func TestParseBlockRecursive(t *testing.T) {
	program := Parse("{1 {2 3} add}")
	if len(program) != 1 {
		t.Fatalf("Expected 1 value, got %d", len(program))
	}
	block, ok := program[0].(Block)
	if !ok {
		t.Fatalf("Expected Block, got %s", program[0])
	}
	if len(block) != 3 {
		t.Fatalf("Expected 3 inner values, got %d", len(block))
	}
	if block[0] != Number(1) {
		t.Errorf("Expected Number(1), got %s", block[0])
	}
	inner, ok := block[1].(Block)
	if !ok {
		t.Fatalf("Expected nested Block, got %s", block[1])
	}
	if len(inner) != 2 || inner[0] != Number(2) || inner[1] != Number(3) {
		t.Errorf("Expected Block([Number(2), Number(3)]), got %s", block[1])
	}
	if block[2] != Instruction(OpAdd) {
		t.Errorf("Expected Instruction(Add), got %s", block[2])
	}
}

func TestParseVariableSigil(t *testing.T) {
	program := Parse("$counter")
	if len(program) != 1 {
		t.Fatalf("Expected 1 value, got %d", len(program))
	}
	if v, ok := program[0].(Variable); !ok || string(v) != "counter" {
		t.Errorf("Expected Variable(counter), got %s", program[0])
	}
}

func TestParseKeywordTable(t *testing.T) {
	cases := map[string]Opcode{
		"add":          OpAdd,
		"sub":          OpSub,
		"mul":          OpMul,
		"div":          OpDiv,
		"mod":          OpMod,
		"pow":          OpPow,
		"concat":       OpConcat,
		"print":        OpPrint,
		"input":        OpInput,
		"equal":        OpEqual,
		"less-than":    OpLessThan,
		"greater-than": OpGreaterThan,
		"eval":         OpEval,
		"when":         OpWhen,
		"if-else":      OpIfElse,
		"while":        OpWhile,
		"until":        OpUntil,
		"let":          OpLet,
		"pop":          OpPop,
	}
	for spelling, op := range cases {
		program := Parse(spelling)
		if len(program) != 1 {
			t.Fatalf("%q: expected 1 value, got %d", spelling, len(program))
		}
		if program[0] != Instruction(op) {
			t.Errorf("%q: expected Instruction(%s), got %s", spelling, op, program[0])
		}
	}
}

func TestParseUnknownTokenDropped(t *testing.T) {
	// An unrecognized token contributes nothing; neighbors are unaffected
	program := Parse("3 bogus 4 add")
	if len(program) != 3 {
		t.Fatalf("Expected 3 values, got %d: %s", len(program), FormatProgram(program))
	}
	if program[0] != Number(3) || program[1] != Number(4) || program[2] != Instruction(OpAdd) {
		t.Errorf("Unexpected program: %s", FormatProgram(program))
	}
}

func TestParseEmptySource(t *testing.T) {
	if program := Parse(""); len(program) != 0 {
		t.Errorf("Expected empty program, got %s", FormatProgram(program))
	}
}

func TestParseCaseSensitiveKeywords(t *testing.T) {
	// Keyword match is exact; ADD is not an instruction
	if program := Parse("ADD"); len(program) != 0 {
		t.Errorf("Expected ADD to be dropped, got %s", FormatProgram(program))
	}
}
