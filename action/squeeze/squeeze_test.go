package squeeze_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/structedit/structedit/action/squeeze"
)

func TestActSqueezesAllRuns(t *testing.T) {
	a := squeeze.New()
	assert.Equal(t, "abc", a.Act("aaabbbccc"))
	assert.Equal(t, "a b c", a.Act("a  b   c"))
}

func TestActRestrictedOnlySqueezesGivenRunes(t *testing.T) {
	a := squeeze.Restricted([]rune{' '})
	assert.Equal(t, "aaa b", a.Act("aaa  b"))
}
