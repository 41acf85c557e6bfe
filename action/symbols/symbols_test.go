package symbols_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/structedit/structedit/action/symbols"
)

func TestActSubstitutesSymbols(t *testing.T) {
	a := symbols.New(symbols.Default)
	assert.Equal(t, "a not equal to b", a.Act("a != b"))
}

func TestActInvertedSubstitutesWords(t *testing.T) {
	a := symbols.Inverted([]symbols.Mapping{{Symbol: "&&", Word: " and "}})
	assert.Equal(t, "a&&b", a.Act("a and b"))
}
