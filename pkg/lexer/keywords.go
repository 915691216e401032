package lexer

// keywords maps exact, case-sensitive lexemes to their symbolic types. EOF is
// deliberately absent: the sentinel is synthesized by the scanner, never read.
var keywords = map[string]Type{
	"+": ADD, "-": SUB, "/": DIV, "%": MOD,

	"NOT": NOT, "AND": AND, "OR": OR,

	"==": EQ, "!=": NEQ,
	"<": LESS, ">": GREATER, "<=": LEQ, ">=": GEQ,

	"=": ASSIGN,

	"INT": INT,

	"CHAR": CHAR, "VARCHAR": VARCHAR,
	"*": WILDCARD, "$": WILDCARD,
	"NULL": NULL, "DISTINCT": DISTINCT, "VALUES": VALUES,
	"CREATE": CREATE, "DROP": DROP,
	"INSERT": INSERT, "DELETE": DELETE, "UPDATE": UPDATE, "SELECT": SELECT,
	"TABLE": TABLE, "FROM": FROM, "WHERE": WHERE, "JOIN": JOIN,
	"ORDERBY": ORDERBY, "ASC": ASC, "DESC": DESC, "SET": SET,
	"DEFAULT": DEFAULT, "PK": PRIMARY_KEY, "REFERENCES": REFERENCES,

	",": COMMA, ".": PERIOD, ";": SEMICOLON,
	"?": QUESTION, ":": COLON,
	"(": LPAREN, ")": RPAREN,
	"[": LBRACKET, "]": RBRACKET,
	"{": LBRACE, "}": RBRACE,
}

// display is the inverse direction used for diagnostics. MUL has no lexeme of
// its own ("*" scans as WILDCARD) but still prints as "*".
var display = map[Type]string{
	ADD: "+", SUB: "-", MUL: "*", DIV: "/", MOD: "%",

	NOT: "NOT", AND: "AND", OR: "OR",

	EQ: "==", NEQ: "!=",
	LESS: "<", GREATER: ">", LEQ: "<=", GEQ: ">=",

	ASSIGN: "=",

	INT: "INT",

	CHAR: "CHAR", VARCHAR: "VARCHAR", WILDCARD: "WILDCARD",
	NULL: "NULL", DISTINCT: "DISTINCT", VALUES: "VALUES",
	CREATE: "CREATE", DROP: "DROP",
	INSERT: "INSERT", DELETE: "DELETE", UPDATE: "UPDATE", SELECT: "SELECT",
	TABLE: "TABLE", FROM: "FROM", WHERE: "WHERE", JOIN: "JOIN",
	ORDERBY: "ORDERBY", ASC: "ASC", DESC: "DESC", SET: "SET",
	DEFAULT: "DEFAULT", PRIMARY_KEY: "PRIMARY_KEY", REFERENCES: "REFERENCES",

	COMMA: ",", PERIOD: ".", SEMICOLON: ";",
	QUESTION: "?", COLON: ":",
	LPAREN: "(", RPAREN: ")",
	LBRACKET: "[", RBRACKET: "]",
	LBRACE: "{", RBRACE: "}",

	EOF: "$eof$",
}

// operatorStart holds the first byte of every non-word lexeme, including '!'
// which is only valid as the prefix of "!=".
var operatorStart [256]bool

func init() {
	for lexeme := range keywords {
		if !isIdentStart(lexeme[0]) {
			operatorStart[lexeme[0]] = true
		}
	}
}

// LookupKeyword reports the symbolic type bound to lexeme. The boolean is false
// when the lexeme is not reserved; that is not an error, the caller decides
// what the lexeme is instead.
func LookupKeyword(lexeme string) (Type, bool) {
	t, ok := keywords[lexeme]
	return t, ok
}

// IsKeyword reports whether word is a reserved word (not an operator).
func IsKeyword(word string) bool {
	if word == "" || !isIdentStart(word[0]) {
		return false
	}
	_, ok := keywords[word]
	return ok
}
