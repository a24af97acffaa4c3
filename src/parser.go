package stackpp

import (
	"strconv"
	"strings"
)

// keywords maps the exact source spellings to opcodes
var keywords = map[string]Opcode{
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

// Parse turns source text into a value sequence. Each token is classified
// in priority order: float literal, quoted string, brace block (parsed
// recursively), $-variable, keyword. A token matching none of these is
// silently dropped; parsing never fails.
func Parse(source string) []Value {
	var program []Value
	for _, token := range Tokenize(source) {
		token = strings.TrimSpace(token)

		if n, err := strconv.ParseFloat(token, 64); err == nil {
			program = append(program, Number(n))
		} else if len(token) >= 2 && strings.HasPrefix(token, `"`) && strings.HasSuffix(token, `"`) {
			// Strip exactly the outer quotes. No escape processing: a
			// literal quote cannot occur inside a string token.
			program = append(program, String(token[1:len(token)-1]))
		} else if len(token) >= 2 && strings.HasPrefix(token, "{") && strings.HasSuffix(token, "}") {
			program = append(program, Block(Parse(token[1:len(token)-1])))
		} else if strings.HasPrefix(token, "$") {
			program = append(program, Variable(token[1:]))
		} else if op, ok := keywords[token]; ok {
			program = append(program, Instruction(op))
		}
	}
	return program
}
