package fn

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

func TestMapFilter(t *testing.T) {
	values := []string{"java", "python", "c++"}

	reversed := Map(values, reverse)
	assert.Equal(t, []string{"avaj", "nohtyp", "++c"}, reversed)

	filtered := Filter(reversed, func(s string) bool { return len(s) > 3 })
	assert.Equal(t, []string{"avaj", "nohtyp"}, filtered)
}

func TestMapEmpty(t *testing.T) {
	assert.Empty(t, Map(nil, strings.ToUpper))
	assert.Empty(t, Filter([]string{}, func(string) bool { return true }))
}
