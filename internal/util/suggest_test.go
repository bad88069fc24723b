package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClosest(t *testing.T) {
	candidates := []string{"getting-started", "api-design", "installation"}

	got := Closest("geting-started", candidates, 3)
	assert.NotEmpty(t, got)
	assert.Equal(t, "getting-started", got[0])
}

func TestClosest_LimitsResults(t *testing.T) {
	candidates := []string{"aa", "ab", "ac", "ad"}
	got := Closest("a", candidates, 2)
	assert.Len(t, got, 2)
}

func TestClosest_NoMatch(t *testing.T) {
	assert.Nil(t, Closest("zzz", []string{"intro"}, 3))
	assert.Nil(t, Closest("", []string{"intro"}, 3))
	assert.Nil(t, Closest("x", nil, 3))
}
