package lexer

// TokenType represents all the possible types of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenInvalid TokenType = iota
	TokenWord              // Operator name: letters, digits and underscore
	TokenOperand           // Raw operand, may contain nested expressions
)

var tokenNames = map[TokenType]string{
	TokenInvalid: "invalid",
	TokenWord:    "word",
	TokenOperand: "operand",
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenInvalid]
}

type runeClass uint8

const (
	classOpenExpression  runeClass = iota + 1 // Open parenthesis: "("
	classCloseExpression                      // Close parenthesis: ")"
	classSeparator                            // Comma: ","
	classSpace                                // Space: " "
	classWhitespace                           // Space, tab, newline, vertical tab, form feed or carriage return
	classLetter                               // Letters ([a-zA-Z])
	classDigit                                // Digits ([0-9])
	classUnderscore                           // Underscore: "_"
	classSign                                 // Arithmetic sign: "+" or "-"
)

var classValues = map[runeClass][]rune{
	classOpenExpression:  []rune{'('},
	classCloseExpression: []rune{')'},
	classSeparator:       []rune{','},
	classSpace:           []rune{' '},
	classWhitespace:      []rune(" \t\n\v\f\r"),
	classLetter:          []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"),
	classDigit:           []rune("0123456789"),
	classUnderscore:      []rune{'_'},
	classSign:            []rune("+-"),
}

func isClass(rc runeClass) func(r rune) bool {
	return func(r rune) bool {
		for _, v := range classValues[rc] {
			if v == r {
				return true
			}
		}
		return false
	}
}

var (
	isOpenExpression  = isClass(classOpenExpression)
	isCloseExpression = isClass(classCloseExpression)
	isSeparator       = isClass(classSeparator)
	isSpace           = isClass(classSpace)
	isWhitespace      = isClass(classWhitespace)
	isLetter          = isClass(classLetter)
	isDigit           = isClass(classDigit)
	isUnderscore      = isClass(classUnderscore)
	isSign            = isClass(classSign)
)

func isWord(r rune) bool {
	return isLetter(r) || isDigit(r) || isUnderscore(r)
}
