package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortedKeys(t *testing.T) {
	m := map[uint8]bool{67: true, 60: true, 64: true}

	assert := assert.New(t)
	assert.Equal([]uint8{60, 64, 67}, SortedKeys(m))
}

func TestSortedKeysEmpty(t *testing.T) {
	m := map[string]int{}

	assert := assert.New(t)
	assert.Equal([]string{}, SortedKeys(m))
}

func TestMax(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(7, Max(3, 7))
	assert.Equal(7, Max(7, 3))
	assert.Equal(-1, Max(-4, -1))
}
