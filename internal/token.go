package internal

// tokenType classifies a lexeme produced by the scanner.
type tokenType int

const (
	tkEOF tokenType = iota

	// Single-character tokens.
	tkLeftParen
	tkRightParen
	tkLeftBrace
	tkRightBrace
	tkComma
	tkDot
	tkMinus
	tkPlus
	tkSemicolon
	tkSlash
	tkStar
	tkQuestion
	tkColon

	// One or two character tokens.
	tkBang
	tkBangEqual
	tkEqual
	tkEqualEqual
	tkGreater
	tkGreaterEqual
	tkLess
	tkLessEqual

	// Literals.
	tkIdentifier
	tkString
	tkNumber

	// Keywords.
	tkAnd
	tkClass
	tkElse
	tkFalse
	tkFun
	tkFor
	tkIf
	tkNil
	tkOr
	tkPrint
	tkReturn
	tkSuper
	tkThis
	tkTrue
	tkVar
	tkWhile
	tkBreak
)

var keywords = map[string]tokenType{
	"and":    tkAnd,
	"class":  tkClass,
	"else":   tkElse,
	"false":  tkFalse,
	"for":    tkFor,
	"fun":    tkFun,
	"if":     tkIf,
	"nil":    tkNil,
	"or":     tkOr,
	"print":  tkPrint,
	"return": tkReturn,
	"super":  tkSuper,
	"this":   tkThis,
	"true":   tkTrue,
	"var":    tkVar,
	"while":  tkWhile,
	"break":  tkBreak,
}

// token is a lexeme plus its classification, optional literal value,
// and source line. literal is one of nil, float64, string, or bool.
type token struct {
	kind    tokenType
	lexeme  string
	literal interface{}
	line    int
}

func (t tokenType) String() string {
	if s, ok := tokenTypeNames[t]; ok {
		return s
	}
	return "UNKNOWN"
}

var tokenTypeNames = map[tokenType]string{
	tkEOF:        "EOF",
	tkLeftParen:  "(",
	tkRightParen: ")",
	tkLeftBrace:  "{",
	tkRightBrace: "}",
	tkComma:      ",",
	tkDot:        ".",
	tkMinus:      "-",
	tkPlus:       "+",
	tkSemicolon:  ";",
	tkSlash:      "/",
	tkStar:       "*",
	tkQuestion:   "?",
	tkColon:      ":",
}
