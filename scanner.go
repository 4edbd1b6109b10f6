package lox

import "strconv"

// Scanner turns Lox source text into a flat token sequence in a single
// forward pass. It never fails: malformed input is reported through the
// injected Reporter and the scan continues to the end of the source, so
// one pass surfaces every lexical problem. Callers decide whether the
// result is usable based on what was reported, not on the token stream.
type Scanner struct {
	src    string
	start  int // start index of the token being recognized
	cur    int // current index
	line   int // 1-based
	tokens []Token
	report Reporter
}

// NewScanner creates a scanner for the given source. The reporter may be
// nil, in which case reports are discarded.
func NewScanner(src string, report Reporter) *Scanner {
	return &Scanner{
		src:    src,
		line:   1,
		report: report,
	}
}

// ScanTokens scans the whole source and returns the token sequence,
// terminated by exactly one EOF token.
func (s *Scanner) ScanTokens() []Token {
	for !s.isAtEnd() {
		s.start = s.cur
		s.scanToken()
	}
	s.tokens = append(s.tokens, Token{Type: EOF, Line: s.line})
	return s.tokens
}

func (s *Scanner) scanToken() {
	ch := s.advance()
	switch ch {
	case '(':
		s.addToken(LEFT_PAREN, nil)
	case ')':
		s.addToken(RIGHT_PAREN, nil)
	case '{':
		s.addToken(LEFT_BRACE, nil)
	case '}':
		s.addToken(RIGHT_BRACE, nil)
	case ',':
		s.addToken(COMMA, nil)
	case '.':
		s.addToken(DOT, nil)
	case '-':
		s.addToken(MINUS, nil)
	case '+':
		s.addToken(PLUS, nil)
	case ':':
		// ':' terminates statements in this grammar; there is no ';' token.
		s.addToken(SEMICOLON, nil)
	case '*':
		s.addToken(STAR, nil)
	case '!':
		if s.match('=') {
			s.addToken(BANG_EQUAL, nil)
		} else {
			s.addToken(BANG, nil)
		}
	case '=':
		if s.match('=') {
			s.addToken(EQUAL_EQUAL, nil)
		} else {
			s.addToken(EQUAL, nil)
		}
	case '<':
		if s.match('=') {
			s.addToken(LESS_EQUAL, nil)
		} else {
			s.addToken(LESS, nil)
		}
	case '>':
		if s.match('=') {
			s.addToken(GREATER_EQUAL, nil)
		} else {
			s.addToken(GREATER, nil)
		}
	case '/':
		if s.match('/') {
			for s.peek() != '\n' && !s.isAtEnd() {
				s.advance()
			}
		} else if s.match('*') {
			s.blockComment()
		} else {
			s.addToken(SLASH, nil)
		}
	case ' ', '\t', '\r':
		// Ignore whitespace
	case '\n':
		s.line++
	case '"':
		s.str()
	default:
		if isDigit(ch) {
			s.number()
		} else if isAlpha(ch) {
			s.identifier()
		} else {
			s.reportError(s.line, ErrUnexpectedCharacter.New())
		}
	}
}

// blockComment consumes a /* ... */ comment, which may nest to arbitrary
// depth. An unterminated comment is reported at the line where the
// innermost still-open comment began, not the outermost one.
func (s *Scanner) blockComment() {
	depth := 1
	openLine := s.line
	for !s.isAtEnd() && depth > 0 {
		switch {
		case s.peek() == '/' && s.peekNext() == '*':
			depth++
			openLine = s.line
			s.advance()
			s.advance()
		case s.peek() == '*' && s.peekNext() == '/':
			depth--
			s.advance()
			s.advance()
		case s.peek() == '\n':
			s.line++
			s.advance()
		default:
			s.advance()
		}
	}
	if depth > 0 {
		s.reportError(openLine, ErrUnterminatedComment.New())
	}
}

// str consumes a string literal; the opening '"' has already been
// consumed. Escape sequences are not interpreted: a backslash is an
// ordinary byte of the literal. Strings may span lines.
func (s *Scanner) str() {
	for s.peek() != '"' && !s.isAtEnd() {
		if s.peek() == '\n' {
			s.line++
		}
		s.advance()
	}
	if s.isAtEnd() {
		s.reportError(s.line, ErrUnterminatedString.New())
		return
	}
	s.advance() // closing '"'
	s.addToken(STRING, s.src[s.start+1:s.cur-1])
}

// number consumes an integer or decimal literal. A '.' is only consumed
// when a digit follows it, so "123." yields NUMBER then DOT.
func (s *Scanner) number() {
	for isDigit(s.peek()) {
		s.advance()
	}
	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.advance() // consume '.'
		for isDigit(s.peek()) {
			s.advance()
		}
	}
	// Lexeme is digits with at most one interior dot; ParseFloat cannot fail.
	value, _ := strconv.ParseFloat(s.src[s.start:s.cur], 64)
	s.addToken(NUMBER, value)
}

func (s *Scanner) identifier() {
	for isAlphaNumeric(s.peek()) {
		s.advance()
	}
	tt, ok := keywords[s.src[s.start:s.cur]]
	if !ok {
		tt = IDENTIFIER
	}
	s.addToken(tt, nil)
}

func (s *Scanner) addToken(tt TokenType, literal interface{}) {
	s.tokens = append(s.tokens, Token{
		Type:    tt,
		Lexeme:  s.src[s.start:s.cur],
		Literal: literal,
		Line:    s.line,
	})
}

func (s *Scanner) reportError(line int, err error) {
	if s.report != nil {
		s.report(line, err.Error())
	}
}

// cursor primitives

func (s *Scanner) isAtEnd() bool { return s.cur >= len(s.src) }

func (s *Scanner) advance() byte {
	ch := s.src[s.cur]
	s.cur++
	return ch
}

// match consumes the next byte only if it equals expected.
func (s *Scanner) match(expected byte) bool {
	if s.isAtEnd() {
		return false
	}
	if s.src[s.cur] != expected {
		return false
	}
	s.cur++
	return true
}

func (s *Scanner) peek() byte {
	if s.isAtEnd() {
		return 0
	}
	return s.src[s.cur]
}

func (s *Scanner) peekNext() byte {
	if s.cur+1 >= len(s.src) {
		return 0
	}
	return s.src[s.cur+1]
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
func isAlpha(b byte) bool { return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_' }
func isAlphaNumeric(b byte) bool {
	return isDigit(b) || isAlpha(b)
}
