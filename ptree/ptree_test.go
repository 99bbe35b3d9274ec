package ptree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Tree_ToString(t *testing.T) {
	testCases := []struct {
		name   string
		tree   *Tree
		expect string
	}{
		{name: "leaf", tree: New("a"), expect: "a"},
		{
			name:   "nested",
			tree:   New("<expr>", New("1"), New("+"), New("2")),
			expect: "1+2",
		},
		{
			name:   "deeply nested collects leaves left to right",
			tree:   New("<start>", New("<a>", New("x"), New("y")), New("z")),
			expect: "xyz",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, tc.tree.ToString())
		})
	}
}

func Test_Tree_Structure(t *testing.T) {
	leftAssoc := New("<expr>", New("<expr>", New("1"), New("+"), New("2")), New("+"), New("3"))
	rightAssoc := New("<expr>", New("1"), New("+"), New("<expr>", New("2"), New("+"), New("3")))

	assert.Equal(t, "1+2+3", leftAssoc.ToString())
	assert.Equal(t, "1+2+3", rightAssoc.ToString())
	assert.NotEqual(t, leftAssoc.Structure(), rightAssoc.Structure(),
		"distinct groupings of the same yield must have distinct structural serializations")

	same := New("<expr>", New("1"), New("+"), New("2"))
	assert.Equal(t, New("<expr>", New("1"), New("+"), New("2")).Structure(), same.Structure())
}

func Test_Equal(t *testing.T) {
	testCases := []struct {
		name   string
		a, b   *Tree
		expect bool
	}{
		{name: "both nil", a: nil, b: nil, expect: true},
		{name: "one nil", a: nil, b: New("a"), expect: false},
		{name: "same leaf", a: New("a"), b: New("a"), expect: true},
		{name: "different symbol", a: New("a"), b: New("b"), expect: false},
		{
			name:   "same shape",
			a:      New("<s>", New("a"), New("b")),
			b:      New("<s>", New("a"), New("b")),
			expect: true,
		},
		{
			name:   "different child count",
			a:      New("<s>", New("a")),
			b:      New("<s>", New("a"), New("b")),
			expect: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, Equal(tc.a, tc.b))
		})
	}
}
