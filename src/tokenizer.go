package stackpp

import "strings"

// Tokenize splits raw source text into token strings. A brace-delimited
// span with internally balanced nesting is one token; a quoted span is one
// token with its whitespace preserved. Anything left unterminated at end
// of input (an open brace or an open quote) is dropped without an error.
func Tokenize(input string) []string {
	var tokens []string
	var current strings.Builder
	depth := 0
	inQuote := false

	for _, c := range input {
		switch {
		case c == '{' && !inQuote:
			depth++
			current.WriteRune(c)

		case c == '}' && !inQuote:
			// A close brace at depth zero is stray and vanishes
			if depth != 0 {
				current.WriteRune(c)
				depth--
				if depth == 0 {
					tokens = append(tokens, current.String())
					current.Reset()
				}
			}

		case c == '"':
			// Quoting only toggles at depth zero; inside a block the
			// quote is ordinary text until the block is reparsed
			if depth == 0 {
				current.WriteRune(c)
				if inQuote {
					inQuote = false
					tokens = append(tokens, current.String())
					current.Reset()
				} else {
					inQuote = true
				}
			} else {
				current.WriteRune(c)
			}

		case c == ' ' || c == '\n' || c == '\t' || c == '\r' || c == '　':
			if depth != 0 || inQuote {
				current.WriteRune(c)
			} else if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}

		default:
			current.WriteRune(c)
		}
	}

	if depth == 0 && !inQuote && current.Len() > 0 {
		tokens = append(tokens, current.String())
	}
	return tokens
}
