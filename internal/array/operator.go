package array

// Operator selects a comparison.
type Operator byte

// Comparison operators, keyed by their single-character codes.
const (
	OpGreater Operator = '>'
	OpLess    Operator = '<'
	OpEqual   Operator = '='
)

// ParseOperator returns the operator for a one-character code.
func ParseOperator(code string) (Operator, error) {
	if len(code) != 1 || !Operator(code[0]).Valid() {
		return 0, Errorf("compare", ErrInvalidOperator, "%q", code)
	}
	return Operator(code[0]), nil
}

// Valid reports whether op is a recognized operator.
func (op Operator) Valid() bool {
	return op == OpGreater || op == OpLess || op == OpEqual
}

// String returns the operator code.
func (op Operator) String() string {
	return string(rune(op))
}
