package typehandler

import (
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntHandler_RoundTrip(t *testing.T) {
	h := intHandler{}

	v, err := h.Parse("-128", reflect.TypeOf(int8(0)))
	require.NoError(t, err)
	assert.Equal(t, int8(-128), v)

	text, err := h.Format(int8(-128))
	require.NoError(t, err)
	assert.Equal(t, "-128", text)
}

func TestIntHandler_OutOfRangeForWidth(t *testing.T) {
	h := intHandler{}

	_, err := h.Parse("200", reflect.TypeOf(int8(0)))
	assert.Error(t, err)
}

func TestIntHandler_EmptyTextYieldsZeroValue(t *testing.T) {
	h := intHandler{}

	v, err := h.Parse("", reflect.TypeOf(int(0)))
	require.NoError(t, err)
	assert.Equal(t, 0, v)
}

func TestBoolHandler_RecognizesVocabulary(t *testing.T) {
	h := boolHandler{}

	for _, text := range []string{"true", "Y", "yes", "1", "T"} {
		v, err := h.Parse(text, reflect.TypeOf(true))
		require.NoError(t, err, text)
		assert.Equal(t, true, v, text)
	}

	for _, text := range []string{"false", "N", "no", "0"} {
		v, err := h.Parse(text, reflect.TypeOf(true))
		require.NoError(t, err, text)
		assert.Equal(t, false, v, text)
	}

	_, err := h.Parse("maybe", reflect.TypeOf(true))
	assert.Error(t, err)
}

func TestCharHandler_RejectsMultiRune(t *testing.T) {
	h := charHandler{}

	v, err := h.Parse("x", reflect.TypeOf(rune(0)))
	require.NoError(t, err)
	assert.Equal(t, 'x', v)

	_, err = h.Parse("xy", reflect.TypeOf(rune(0)))
	assert.Error(t, err)
}

func TestDateTimeHandler_RoundTrip(t *testing.T) {
	h := NewDateTimeHandler("2006-01-02")

	v, err := h.Parse("2024-03-07", timeType)
	require.NoError(t, err)

	want := time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC)
	assert.True(t, want.Equal(v.(time.Time)))

	text, err := h.Format(v)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-07", text)
}

func TestDurationHandler_RoundTrip(t *testing.T) {
	h := durationHandler{}

	v, err := h.Parse("1h30m", reflect.TypeOf(time.Duration(0)))
	require.NoError(t, err)
	assert.Equal(t, 90*time.Minute, v)

	text, err := h.Format(90 * time.Minute)
	require.NoError(t, err)
	assert.Equal(t, "1h30m0s", text)
}

func TestUUIDHandler_RoundTrip(t *testing.T) {
	h := uuidHandler{}
	id := uuid.New()

	text, err := h.Format(id)
	require.NoError(t, err)

	v, err := h.Parse(text, uuidType)
	require.NoError(t, err)
	assert.Equal(t, id, v)
}

func TestUUIDHandler_RejectsMalformedText(t *testing.T) {
	h := uuidHandler{}

	_, err := h.Parse("not-a-uuid", uuidType)
	assert.Error(t, err)
}
