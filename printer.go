package lox

import (
	"fmt"
	"strconv"
	"strings"
)

/* ---------- literal & token rendering ---------- */

// FormatLiteral renders a token's literal payload for display: STRING
// literals re-quoted with escapes, NUMBER literals in shortest form,
// everything else as "nil".
func FormatLiteral(tok Token) string {
	switch v := tok.Literal.(type) {
	case string:
		return quoteString(v)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	default:
		return "nil"
	}
}

func quoteString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// sanitizeLexeme keeps a lexeme on one display line. Only string lexemes
// can contain line breaks; everything else passes through unchanged.
func sanitizeLexeme(s string) string {
	if !strings.ContainsAny(s, "\n\r\t") {
		return s
	}
	r := strings.NewReplacer("\n", `\n`, "\r", `\r`, "\t", `\t`)
	return r.Replace(s)
}

// FormatTokens renders a column-aligned dump of a token stream, one token
// per line: type, lexeme, literal and source line.
func FormatTokens(tokens []Token) string {
	typeW, lexW, litW := 0, 0, 0
	rows := make([][3]string, len(tokens))
	for i, tok := range tokens {
		rows[i] = [3]string{tok.Type.String(), sanitizeLexeme(tok.Lexeme), FormatLiteral(tok)}
		if n := len(rows[i][0]); n > typeW {
			typeW = n
		}
		if n := len(rows[i][1]); n > lexW {
			lexW = n
		}
		if n := len(rows[i][2]); n > litW {
			litW = n
		}
	}

	var b strings.Builder
	for i, tok := range tokens {
		fmt.Fprintf(&b, "%-*s  %-*s  %-*s  line %d\n",
			typeW, rows[i][0], lexW, rows[i][1], litW, rows[i][2], tok.Line)
	}
	return b.String()
}
