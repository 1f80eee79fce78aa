package types_test

import (
	"testing"

	. "github.com/tobsdb/invdb/internal/types"
	"gotest.tools/assert"
)

func TestParseOperator(t *testing.T) {
	for _, s := range []string{"=", ">", "<", ">=", "<="} {
		op, ok := ParseOperator(s)
		assert.Assert(t, ok, s)
		assert.Equal(t, string(op), s)
	}

	_, ok := ParseOperator("!=")
	assert.Assert(t, !ok)
}

func TestOperatorOrder(t *testing.T) {
	// longer operators must be tried before their one-character prefixes
	assert.Equal(t, OPERATORS[0], OpGreaterOrEqual)
	assert.Equal(t, OPERATORS[1], OpLessOrEqual)
	assert.Equal(t, OPERATORS[len(OPERATORS)-1], OpEqual)
}

func TestOperatorHolds(t *testing.T) {
	t.Run("equal", func(t *testing.T) {
		assert.Assert(t, OpEqual.Holds(0))
		assert.Assert(t, !OpEqual.Holds(1))
	})

	t.Run("greater", func(t *testing.T) {
		assert.Assert(t, OpGreater.Holds(1))
		assert.Assert(t, !OpGreater.Holds(0))
		assert.Assert(t, OpGreaterOrEqual.Holds(0))
		assert.Assert(t, !OpGreaterOrEqual.Holds(-1))
	})

	t.Run("less", func(t *testing.T) {
		assert.Assert(t, OpLess.Holds(-1))
		assert.Assert(t, !OpLess.Holds(0))
		assert.Assert(t, OpLessOrEqual.Holds(0))
		assert.Assert(t, !OpLessOrEqual.Holds(1))
	})

	t.Run("invalid", func(t *testing.T) {
		assert.Assert(t, !Operator("~").Holds(0))
		assert.Assert(t, !Operator("~").IsValid())
	})
}

func TestKind(t *testing.T) {
	for _, k := range VALID_KINDS {
		assert.Assert(t, k.IsValid(), k)
	}
	assert.Assert(t, !Kind("Vector").IsValid())

	assert.Assert(t, KindInt.IsNumeric())
	assert.Assert(t, KindFloat.IsNumeric())
	assert.Assert(t, !KindText.IsNumeric())
}
