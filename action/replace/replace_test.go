package replace_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/structedit/structedit/action/replace"
)

func TestAct(t *testing.T) {
	a := replace.New("REDACTED")
	assert.Equal(t, "REDACTED", a.Act("secret"))
	assert.Equal(t, "REDACTED", a.Act(""))
}
