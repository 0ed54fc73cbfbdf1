package literal

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"unicode/utf8"
)

var ErrSyntax = errors.New("invalid literal")

type SyntaxError struct {
	Input  string
	Offset int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid literal %q at offset %d: %s", e.Input, e.Offset, e.Msg)
}

func (e *SyntaxError) Unwrap() error {
	return ErrSyntax
}

// Tuple is a parenthesized sequence. It marshals to a JSON array like a list
// but never satisfies ParseList at the top level.
type Tuple []interface{}

// Parse evaluates a single literal expression: lists, tuples, dicts, quoted
// strings, integers, floats, True, False and None. Integers too large for
// int64 come back as json.Number. Leading blanks are ignored, as are
// trailing whitespace characters.
func Parse(s string) (interface{}, error) {
	p := &parser{src: s, pos: 0}
	p.src = strings.TrimLeft(p.src, " \t")
	p.skipSpace()
	v, err := p.value()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos != len(p.src) {
		return nil, p.fail("unexpected trailing input")
	}
	return v, nil
}

type parser struct {
	src string
	pos int
}

func (p *parser) fail(msg string) error {
	return &SyntaxError{Input: p.src, Offset: p.pos, Msg: msg}
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case ' ', '\t', '\n', '\r', '\f', '\v':
			p.pos++
		default:
			return
		}
	}
}

func (p *parser) peek() byte {
	if p.pos >= len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

func (p *parser) value() (interface{}, error) {
	if p.pos >= len(p.src) {
		return nil, p.fail("unexpected end of input")
	}
	c := p.peek()
	switch {
	case c == '[':
		p.pos++
		items, _, err := p.sequence(']')
		if err != nil {
			return nil, err
		}
		return items, nil
	case c == '(':
		p.pos++
		items, trailingComma, err := p.sequence(')')
		if err != nil {
			return nil, err
		}
		// "(x)" is x itself, "(x,)" and "()" are tuples
		if len(items) == 1 && !trailingComma {
			return items[0], nil
		}
		return Tuple(items), nil
	case c == '{':
		p.pos++
		return p.dict()
	case c == '\'' || c == '"':
		return p.text()
	case c == '+' || c == '-':
		return p.signed()
	case c == '.' || isDigit(c):
		return p.number()
	case isIdentStart(c):
		return p.name()
	}
	return nil, p.fail(fmt.Sprintf("unexpected character %q", c))
}

// sequence reads comma separated values up to the closing byte. The opening
// byte has already been consumed.
func (p *parser) sequence(closing byte) ([]interface{}, bool, error) {
	items := make([]interface{}, 0)
	trailingComma := false
	for {
		p.skipSpace()
		if p.peek() == closing {
			p.pos++
			return items, trailingComma, nil
		}
		if p.pos >= len(p.src) {
			return nil, false, p.fail("unterminated sequence")
		}
		v, err := p.value()
		if err != nil {
			return nil, false, err
		}
		items = append(items, v)
		trailingComma = false
		p.skipSpace()
		switch p.peek() {
		case ',':
			p.pos++
			trailingComma = true
		case closing:
		default:
			return nil, false, p.fail(fmt.Sprintf("expected ',' or %q", closing))
		}
	}
}

// dict reads "key: value" pairs up to the closing brace. The opening brace
// has already been consumed.
func (p *parser) dict() (interface{}, error) {
	d := NewDict()
	for {
		p.skipSpace()
		if p.peek() == '}' {
			p.pos++
			return d, nil
		}
		if p.pos >= len(p.src) {
			return nil, p.fail("unterminated dict")
		}
		keyPos := p.pos
		k, err := p.value()
		if err != nil {
			return nil, err
		}
		p.skipSpace()
		if p.peek() != ':' {
			if d.Len() == 0 && (p.peek() == ',' || p.peek() == '}') {
				return nil, p.fail("set literals are not supported")
			}
			return nil, p.fail("expected ':'")
		}
		key, ok := dictKey(k)
		if !ok {
			p.pos = keyPos
			return nil, p.fail("unsupported dict key")
		}
		p.pos++
		p.skipSpace()
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		d.Set(key, v)
		p.skipSpace()
		switch p.peek() {
		case ',':
			p.pos++
		case '}':
		default:
			return nil, p.fail("expected ',' or '}'")
		}
	}
}

// text reads one or more adjacent string literals and concatenates them.
func (p *parser) text() (interface{}, error) {
	var sb strings.Builder
	for {
		raw := false
		if prefix, ok := p.stringPrefix(); ok {
			if prefix == 'b' {
				return nil, p.fail("bytes literals are not supported")
			}
			raw = prefix == 'r'
			p.pos++
		}
		s, err := p.quoted(raw)
		if err != nil {
			return nil, err
		}
		sb.WriteString(s)
		p.skipSpace()
		if c := p.peek(); c == '\'' || c == '"' {
			continue
		}
		if _, ok := p.stringPrefix(); ok {
			continue
		}
		return sb.String(), nil
	}
}

// stringPrefix reports a single letter prefix (u, r) directly followed by a
// quote at the current position.
func (p *parser) stringPrefix() (byte, bool) {
	if p.pos+1 >= len(p.src) {
		return 0, false
	}
	q := p.src[p.pos+1]
	if q != '\'' && q != '"' {
		return 0, false
	}
	switch c := p.src[p.pos] | 0x20; c {
	case 'u', 'r', 'b':
		return c, true
	}
	return 0, false
}

func (p *parser) quoted(raw bool) (string, error) {
	quote := p.src[p.pos]
	start := p.pos
	triple := strings.HasPrefix(p.src[p.pos:], strings.Repeat(string(quote), 3))
	if triple {
		p.pos += 3
	} else {
		p.pos++
	}
	var sb strings.Builder
	for {
		if p.pos >= len(p.src) {
			p.pos = start
			return "", p.fail("unterminated string")
		}
		c := p.src[p.pos]
		if c == quote {
			if !triple {
				p.pos++
				return sb.String(), nil
			}
			if strings.HasPrefix(p.src[p.pos:], strings.Repeat(string(quote), 3)) {
				p.pos += 3
				return sb.String(), nil
			}
		}
		if c == '\n' && !triple {
			return "", p.fail("newline in string")
		}
		if c == '\\' && !raw {
			if err := p.escape(&sb); err != nil {
				return "", err
			}
			continue
		}
		if c == '\\' && raw && p.pos+1 < len(p.src) {
			sb.WriteByte(c)
			sb.WriteByte(p.src[p.pos+1])
			p.pos += 2
			continue
		}
		sb.WriteByte(c)
		p.pos++
	}
}

func (p *parser) escape(sb *strings.Builder) error {
	p.pos++
	if p.pos >= len(p.src) {
		return p.fail("unterminated escape")
	}
	c := p.src[p.pos]
	p.pos++
	switch c {
	case '\n':
	case '\\', '\'', '"':
		sb.WriteByte(c)
	case 'n':
		sb.WriteByte('\n')
	case 't':
		sb.WriteByte('\t')
	case 'r':
		sb.WriteByte('\r')
	case 'a':
		sb.WriteByte('\a')
	case 'b':
		sb.WriteByte('\b')
	case 'f':
		sb.WriteByte('\f')
	case 'v':
		sb.WriteByte('\v')
	case 'x':
		return p.hexEscape(sb, 2)
	case 'u':
		return p.hexEscape(sb, 4)
	case 'U':
		return p.hexEscape(sb, 8)
	case '0', '1', '2', '3', '4', '5', '6', '7':
		n := int(c - '0')
		for i := 0; i < 2 && p.pos < len(p.src) && p.src[p.pos] >= '0' && p.src[p.pos] <= '7'; i++ {
			n = n*8 + int(p.src[p.pos]-'0')
			p.pos++
		}
		sb.WriteRune(rune(n))
	default:
		// unknown escapes are kept verbatim
		sb.WriteByte('\\')
		sb.WriteByte(c)
	}
	return nil
}

func (p *parser) hexEscape(sb *strings.Builder, digits int) error {
	if p.pos+digits > len(p.src) {
		return p.fail("truncated escape")
	}
	n, err := strconv.ParseUint(p.src[p.pos:p.pos+digits], 16, 32)
	if err != nil {
		return p.fail("invalid hex escape")
	}
	r := rune(n)
	if !utf8.ValidRune(r) {
		return p.fail("escape out of range")
	}
	sb.WriteRune(r)
	p.pos += digits
	return nil
}

func (p *parser) signed() (interface{}, error) {
	negative := p.peek() == '-'
	p.pos++
	p.skipSpace()
	c := p.peek()
	if c != '.' && !isDigit(c) {
		return nil, p.fail("sign must precede a number")
	}
	v, err := p.number()
	if err != nil || !negative {
		return v, err
	}
	switch n := v.(type) {
	case int64:
		return -n, nil
	case float64:
		return -n, nil
	case json.Number:
		return json.Number("-" + string(n)), nil
	}
	return v, nil
}

func (p *parser) number() (interface{}, error) {
	start := p.pos
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if isDigit(c) || isLetter(c) || c == '.' || c == '_' {
			p.pos++
			continue
		}
		// exponent sign
		if (c == '+' || c == '-') && p.pos > start && (p.src[p.pos-1]|0x20) == 'e' && !isPrefixedInt(p.src[start:p.pos]) {
			p.pos++
			continue
		}
		break
	}
	text := p.src[start:p.pos]
	if strings.HasPrefix(text, "_") || strings.HasSuffix(text, "_") || strings.Contains(text, "__") {
		return nil, p.fail("invalid number")
	}
	if isPrefixedInt(text) || isDigits(text) {
		if isDigits(text) && !validDecimal(text) {
			return nil, p.fail("leading zeros in decimal integer")
		}
		if n, err := strconv.ParseInt(text, 0, 64); err == nil {
			return n, nil
		}
		wide, ok := new(big.Int).SetString(text, 0)
		if !ok {
			return nil, p.fail("invalid integer")
		}
		return json.Number(wide.String()), nil
	}
	f, err := strconv.ParseFloat(strings.Replace(text, "_", "", -1), 64)
	if err != nil {
		return nil, p.fail("invalid number")
	}
	return f, nil
}

func (p *parser) name() (interface{}, error) {
	if _, ok := p.stringPrefix(); ok {
		return p.text()
	}
	start := p.pos
	for p.pos < len(p.src) && (isIdentStart(p.src[p.pos]) || isDigit(p.src[p.pos])) {
		p.pos++
	}
	switch word := p.src[start:p.pos]; word {
	case "True":
		return true, nil
	case "False":
		return false, nil
	case "None":
		return nil, nil
	default:
		p.pos = start
		return nil, p.fail(fmt.Sprintf("name %q is not a literal", word))
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isLetter(c byte) bool {
	return (c|0x20) >= 'a' && (c|0x20) <= 'z'
}

func isIdentStart(c byte) bool {
	return isLetter(c) || c == '_'
}

// isPrefixedInt reports 0x, 0o and 0b integer literals.
func isPrefixedInt(s string) bool {
	if len(s) < 3 || s[0] != '0' {
		return false
	}
	switch s[1] | 0x20 {
	case 'x', 'o', 'b':
		return true
	}
	return false
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) && s[i] != '_' {
			return false
		}
	}
	return true
}

// validDecimal rejects non-zero decimals written with leading zeros, as in "007".
func validDecimal(s string) bool {
	if s[0] != '0' {
		return true
	}
	return strings.Trim(s, "0_") == ""
}
