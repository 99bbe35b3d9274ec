package parseerr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Syntax_Error(t *testing.T) {
	testCases := []struct {
		name   string
		err    error
		expect string
	}{
		{name: "rejected with no suffix", err: NewSyntax(3, nil), expect: "syntax error: input rejected at position 3"},
		{name: "stalled with a suffix", err: NewSyntax(2, []string{"+", "3"}), expect: `syntax error at position 2: unexpected "+"`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, tc.err.Error())

			var asSyntax *Syntax
			assert.True(t, errors.As(tc.err, &asSyntax))
		})
	}
}

func Test_BudgetExceeded_Error(t *testing.T) {
	err := NewBudgetExceeded(42)
	assert.Equal(t, "parse budget exceeded after 42 steps", err.Error())

	var asBudget *BudgetExceeded
	assert.True(t, errors.As(err, &asBudget))
	assert.Equal(t, 42, asBudget.Steps)
}
