package types

// Operator is a comparison used in a WHERE condition.
type Operator string

const (
	OpEqual          Operator = "="
	OpGreater        Operator = ">"
	OpLess           Operator = "<"
	OpGreaterOrEqual Operator = ">="
	OpLessOrEqual    Operator = "<="
)

// Two-character operators come first so ">=" is never read as ">".
var OPERATORS = []Operator{OpGreaterOrEqual, OpLessOrEqual, OpGreater, OpLess, OpEqual}

func ParseOperator(s string) (Operator, bool) {
	for _, op := range OPERATORS {
		if string(op) == s {
			return op, true
		}
	}
	return "", false
}

func (op Operator) IsValid() bool {
	_, ok := ParseOperator(string(op))
	return ok
}

// Holds reports whether a three-way comparison result c (-1, 0, 1)
// satisfies the operator.
func (op Operator) Holds(c int) bool {
	switch op {
	case OpEqual:
		return c == 0
	case OpGreater:
		return c > 0
	case OpLess:
		return c < 0
	case OpGreaterOrEqual:
		return c >= 0
	case OpLessOrEqual:
		return c <= 0
	}
	return false
}
