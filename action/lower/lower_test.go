package lower_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/structedit/structedit/action/lower"
)

func TestAct(t *testing.T) {
	a := lower.New()
	assert.Equal(t, "hello, world!", a.Act("HELLO, World!"))
	assert.Equal(t, "привет!", a.Act("ПРИВЕТ!"))
	assert.Equal(t, "ß", a.Act("ß"))
}
