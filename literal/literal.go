// Package literal turns textual cell values that spell out list literals,
// such as "[205,18364]" or "['a', 'b']", into real ordered sequences.
package literal

import "strings"

// QuotedListPrefix marks text that is left as a string by Normalize; the JSON
// emitter unwraps such values into arrays.
const QuotedListPrefix = "['"

type Kind int

const (
	// Unparsed means the value is returned as it came in.
	Unparsed Kind = iota
	// Literal means the value was text holding a list literal.
	Literal
)

func (k Kind) String() string {
	if k == Literal {
		return "literal"
	}
	return "unparsed"
}

// Result is the outcome of Normalize. Value is a []interface{} for Literal
// and the original input for Unparsed.
type Result struct {
	Kind  Kind
	Value interface{}
}

func (r Result) IsLiteral() bool {
	return r.Kind == Literal
}

// Normalize never fails: anything that does not parse to a list comes back
// untouched as Unparsed.
func Normalize(v interface{}) Result {
	s, ok := v.(string)
	if !ok || strings.HasPrefix(s, QuotedListPrefix) {
		return Result{Kind: Unparsed, Value: v}
	}
	list, err := ParseList(s)
	if err != nil {
		return Result{Kind: Unparsed, Value: v}
	}
	return Result{Kind: Literal, Value: list}
}

// ParseList parses s and succeeds only when the top level value is a list.
func ParseList(s string) ([]interface{}, error) {
	v, err := Parse(s)
	if err != nil {
		return nil, err
	}
	list, ok := v.([]interface{})
	if !ok {
		return nil, &SyntaxError{Input: s, Offset: 0, Msg: "not a list"}
	}
	return list, nil
}
