package lexer

// TokenType represents all the possible types of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenInvalid      TokenType = iota
	TokenOpenBracket            // Open parenthesis: "("
	TokenCloseBracket           // Close parenthesis: ")"
	TokenSymbol                 // Maximal run of symbol characters
	TokenString                 // Double quoted text, escapes resolved
)

const (
	runeOpenBracket  = '('
	runeCloseBracket = ')'
	runeDoubleQuote  = '"'
	runeSemicolon    = ';'
	runeBackslash    = '\\'
	runeNewLine      = '\n'
)

var (
	structuralRunes = []rune{runeOpenBracket, runeCloseBracket, runeDoubleQuote, runeSemicolon}
	delimiterRunes  = []rune{'\t', ' ', '\n', '\r'}
)

var tokenNames = map[TokenType]string{
	TokenInvalid:      "invalid",
	TokenOpenBracket:  "open_bracket",
	TokenCloseBracket: "close_bracket",
	TokenSymbol:       "symbol",
	TokenString:       "string",
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenInvalid]
}

// HasValue returns true for the token types that carry a text payload.
func (tt TokenType) HasValue() bool {
	return tt == TokenSymbol || tt == TokenString
}

func isOneOf(set []rune) func(r rune) bool {
	return func(r rune) bool {
		for _, v := range set {
			if v == r {
				return true
			}
		}
		return false
	}
}

var (
	isStructural = isOneOf(structuralRunes)
	isDelimiter  = isOneOf(delimiterRunes)
)

func isSymbol(r rune) bool {
	return !isStructural(r) && !isDelimiter(r)
}
