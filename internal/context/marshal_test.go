package context

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshallingContext_SetFieldAndCollect(t *testing.T) {
	var c MarshallingContext
	c.BeginRecord("person", 2)

	require.NoError(t, c.SetField(1, "Ada"))
	require.NoError(t, c.SetField(0, "7"))

	assert.Equal(t, []string{"7", "Ada"}, c.Fields())
}

func TestMarshallingContext_SetFieldOutOfRangeErrors(t *testing.T) {
	var c MarshallingContext
	c.BeginRecord("person", 1)

	assert.Error(t, c.SetField(3, "x"))
}
