package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty([]int(nil)))
	assert.True(t, IsEmpty([]string{}))
	assert.False(t, IsEmpty([]int64{0}))
}

func TestFirst(t *testing.T) {
	v, ok := First([]string{"testdata/example.txt", "79"})
	assert.True(t, ok)
	assert.Equal(t, "testdata/example.txt", v)

	v, ok = First([]string(nil))
	assert.False(t, ok)
	assert.Empty(t, v)
}
