package typehandler

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/somranjan/beanio/options"
)

const (
	t2006 = "2006-01-02"
	t1504 = "15:04"
)

var fixedTime = time.Date(2024, 3, 7, 13, 45, 0, 0, time.UTC)

func TestBuiltinRegistry_TypeAloneTier(t *testing.T) {
	r := NewBuiltinRegistry()

	h, err := r.Resolve("", reflect.TypeOf(int(0)), "")
	require.NoError(t, err)

	v, err := h.Parse("42", reflect.TypeOf(int(0)))
	require.NoError(t, err)
	assert.Equal(t, 42, v)
}

func TestBuiltinRegistry_ExplicitNameTier(t *testing.T) {
	r := NewBuiltinRegistry()

	h, err := r.Resolve("uuid", reflect.TypeOf(""), "")
	require.NoError(t, err)
	assert.IsType(t, uuidHandler{}, h)
}

func TestBuiltinRegistry_UnknownNameFails(t *testing.T) {
	r := NewBuiltinRegistry()

	_, err := r.Resolve("does-not-exist", reflect.TypeOf(int(0)), "")
	assert.Error(t, err)
}

func TestBuiltinRegistry_AssignabilityTier(t *testing.T) {
	type Status string

	r := NewBuiltinRegistry()

	h, err := r.Resolve("", reflect.TypeOf(Status("")), "")
	require.NoError(t, err)

	v, err := h.Parse("active", reflect.TypeOf(Status("")))
	require.NoError(t, err)
	assert.Equal(t, Status("active"), v)
}

func TestRegistry_ChainScopesOverrides(t *testing.T) {
	root := NewBuiltinRegistry()
	child := root.Chain()

	custom := stubHandler{}
	require.NoError(t, child.Register("custom", custom))

	// Child sees its own override.
	h, err := child.Resolve("custom", reflect.TypeOf(int(0)), "")
	require.NoError(t, err)
	assert.Equal(t, custom, h)

	// Parent never sees the child's registration.
	_, err = root.Resolve("custom", reflect.TypeOf(int(0)), "")
	assert.Error(t, err)

	// Child still falls through to parent builtins.
	h, err = child.Resolve("int", reflect.TypeOf(int(0)), "")
	require.NoError(t, err)
	assert.IsType(t, intHandler{}, h)
}

func TestRegistry_RegisterAfterFreezeFails(t *testing.T) {
	r := NewRegistry()
	r.Freeze()

	err := r.Register("x", stubHandler{})
	assert.Error(t, err)
}

func TestRegistry_TypeFormatTierBeatsTypeAloneTier(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.RegisterForType(timeType, "", NewDateTimeHandler(t2006)))
	require.NoError(t, r.RegisterForType(timeType, "time-only", NewDateTimeHandler(t1504)))

	h, err := r.Resolve("", timeType, "time-only")
	require.NoError(t, err)

	text, err := h.Format(fixedTime)
	require.NoError(t, err)
	assert.Equal(t, fixedTime.Format(t1504), text)
}

type stubHandler struct{}

func (stubHandler) Category() options.TypeCategory           { return options.CategoryNone }
func (stubHandler) Parse(string, reflect.Type) (any, error)  { return nil, nil }
func (stubHandler) Format(any) (string, error)                { return "", nil }
