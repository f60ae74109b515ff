package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEdgeKeySymmetric(t *testing.T) {
	assert.Equal(t, EdgeKey("a", "b"), EdgeKey("b", "a"))
	assert.Equal(t, "a_b", EdgeKey("b", "a"))
	assert.Equal(t,
		EdgeKey("27AAAAA0000A1Z5", "PAN:AAAAA0000A"),
		EdgeKey("PAN:AAAAA0000A", "27AAAAA0000A1Z5"))
}

func TestEdgeKeyOrdersLexicographically(t *testing.T) {
	assert.Equal(t, "07ABCDE1234F2Z9_27AAAAA0000A1Z5", EdgeKey("27AAAAA0000A1Z5", "07ABCDE1234F2Z9"))
	assert.Equal(t, "27AAAAA0000A1Z5_phone:+919876543210", EdgeKey("phone:+919876543210", "27AAAAA0000A1Z5"))
}
