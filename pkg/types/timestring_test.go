package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:30")
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:30"), ts)

	// Нормализация короткой записи часа
	ts, err = NewTimeStringFromString("9:05")
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:05"), ts)

	_, err = NewTimeStringFromString("25:00")
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = NewTimeStringFromString("10-30")
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeStringComparisons(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.True(t, TimeString("10:30").IsAfter("10:00"))
	assert.False(t, TimeString("bad").IsBefore("10:00"))
}

func TestTimeStringAddMinutes(t *testing.T) {
	ts, err := TimeString("09:30").AddMinutes(60)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:30"), ts)

	ts, err = TimeString("23:00").AddMinutes(59)
	require.NoError(t, err)
	assert.Equal(t, TimeString("23:59"), ts)

	// Переход через полночь не поддерживается
	_, err = TimeString("23:30").AddMinutes(60)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeStringTruncate(t *testing.T) {
	ts, err := TimeString("09:45").Truncate(60)
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:00"), ts)

	ts, err = TimeString("09:45").Truncate(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:30"), ts)

	ts, err = TimeString("09:00").Truncate(60)
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:00"), ts)

	_, err = TimeString("09:00").Truncate(0)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}
