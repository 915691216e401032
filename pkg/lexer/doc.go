// Package lexer implements the tokenizer for sqlscan's SQL dialect.
//
// The lexer converts a raw byte buffer into an ordered, immutable sequence of
// typed tokens paired with their byte offsets. A scan either produces the whole
// sequence or a single *ScanError; there is no partial result.
//
// # Usage
//
//	seq, err := lexer.ScanString("SELECT * FROM users WHERE id >= 1;")
//	if err != nil {
//	    var serr *lexer.ScanError
//	    errors.As(err, &serr)
//	    log.Fatalf("bad input at %d: %s", serr.Offset, serr.Msg)
//	}
//	ts := lexer.NewStream(seq)
//	for !ts.Empty() {
//	    item, _ := ts.Consume()
//	    fmt.Println(item.Pos, item.Token)
//	}
//
// # Tokens
//
// Token is a closed sum type. A Type value is itself a token (operators,
// punctuation and keywords); Identifier, Number and StringLiteral carry a
// payload. Consumers switch over the four variants:
//
//	switch tok := item.Token.(type) {
//	case lexer.Type:
//	case lexer.Identifier:
//	case lexer.Number:
//	case lexer.StringLiteral:
//	}
//
// # Matching rules
//
// Keywords are matched case-sensitively against maximal identifier runs, so
// "SELECT" is a keyword while "select" is an identifier. Two-character
// operators (==, !=, <=, >=) always win over their one-character prefixes.
// Whitespace is skipped. String literals are delimited by a single quote by
// default; a doubled quote inside a literal stands for one quote unless a
// different EscapePolicy is configured.
package lexer
