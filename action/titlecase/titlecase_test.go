package titlecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/structedit/structedit/action/titlecase"
)

func TestAct(t *testing.T) {
	a, err := titlecase.New("")
	require.NoError(t, err)
	assert.Equal(t, "Hello, World!", a.Act("hello, world!"))
}

func TestInvalidTagErrors(t *testing.T) {
	_, err := titlecase.New("not a real bcp47 tag!!")
	assert.Error(t, err)
}
