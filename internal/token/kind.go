package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// LBrace represents the object opener token.
	LBrace // {
	// RBrace represents the object closer token.
	RBrace // }
	// LBracket represents the array opener token.
	LBracket // [
	// RBracket represents the array closer token.
	RBracket // ]
	// Colon represents the key/value separator token.
	Colon // :
	// Comma represents the member/element separator token.
	Comma // ,

	// String represents a string literal token.
	String
	// Number represents a number literal token.
	Number
	// True represents the 'true' keyword.
	True // true
	// False represents the 'false' keyword.
	False // false
	// Null represents the 'null' keyword.
	Null // null
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "Invalid"
	case EOF:
		return "EOF"
	case LBrace:
		return "LBrace"
	case RBrace:
		return "RBrace"
	case LBracket:
		return "LBracket"
	case RBracket:
		return "RBracket"
	case Colon:
		return "Colon"
	case Comma:
		return "Comma"
	case String:
		return "String"
	case Number:
		return "Number"
	case True:
		return "True"
	case False:
		return "False"
	case Null:
		return "Null"
	}
	return "Unknown"
}
