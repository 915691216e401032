package lexer

// Type enumerates every symbolic token: operators, punctuation and reserved
// keywords, plus the parser-facing kinds of the payload-carrying tokens and the
// EOF sentinel.
type Type int

const (
	// arithmetic operators
	ADD Type = iota
	SUB
	MUL
	DIV
	MOD

	// logical operators
	NOT
	AND
	OR

	// comparison operators
	EQ
	NEQ
	LESS
	GREATER
	LEQ
	GEQ

	ASSIGN

	// kinds reported by TypeOf for payload tokens
	NUMBER_CONSTANT
	IDENTIFIER
	STR_LITERAL

	// numeric type names
	INT

	// keywords
	CHAR
	VARCHAR
	WILDCARD
	NULL
	DISTINCT
	VALUES
	CREATE
	DROP
	INSERT
	DELETE
	UPDATE
	SELECT
	TABLE
	FROM
	WHERE
	JOIN
	ORDERBY
	ASC
	DESC
	SET
	DEFAULT
	PRIMARY_KEY
	REFERENCES

	// punctuation
	COMMA
	PERIOD
	SEMICOLON
	QUESTION
	COLON
	LPAREN
	RPAREN
	LBRACKET
	RBRACKET
	LBRACE
	RBRACE

	EOF

	numTypes
)

var typeNames = [numTypes]string{
	ADD: "ADD", SUB: "SUB", MUL: "MUL", DIV: "DIV", MOD: "MOD",
	NOT: "NOT", AND: "AND", OR: "OR",
	EQ: "EQ", NEQ: "NEQ", LESS: "LESS", GREATER: "GREATER", LEQ: "LEQ", GEQ: "GEQ",
	ASSIGN:          "ASSIGN",
	NUMBER_CONSTANT: "NUMBER_CONSTANT", IDENTIFIER: "IDENTIFIER", STR_LITERAL: "STR_LITERAL",
	INT:  "INT",
	CHAR: "CHAR", VARCHAR: "VARCHAR", WILDCARD: "WILDCARD",
	NULL: "NULL", DISTINCT: "DISTINCT", VALUES: "VALUES",
	CREATE: "CREATE", DROP: "DROP",
	INSERT: "INSERT", DELETE: "DELETE", UPDATE: "UPDATE", SELECT: "SELECT",
	TABLE: "TABLE", FROM: "FROM", WHERE: "WHERE", JOIN: "JOIN",
	ORDERBY: "ORDERBY", ASC: "ASC", DESC: "DESC", SET: "SET",
	DEFAULT: "DEFAULT", PRIMARY_KEY: "PRIMARY_KEY", REFERENCES: "REFERENCES",
	COMMA: "COMMA", PERIOD: "PERIOD", SEMICOLON: "SEMICOLON",
	QUESTION: "QUESTION", COLON: "COLON",
	LPAREN: "LPAREN", RPAREN: "RPAREN",
	LBRACKET: "LBRACKET", RBRACKET: "RBRACKET",
	LBRACE: "LBRACE", RBRACE: "RBRACE",
	EOF: "EOF",
}

// Name returns the Go identifier of the type, e.g. "GEQ" for >=.
func (t Type) Name() string {
	if t < 0 || t >= numTypes {
		return "UNKNOWN"
	}
	return typeNames[t]
}

// String returns the display form of the type: the lexeme for operators and
// punctuation, the keyword for keywords, and "$eof$" for EOF.
func (t Type) String() string {
	if s, ok := display[t]; ok {
		return s
	}
	return t.Name()
}

func (Type) isToken() {}
