package market

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePeriod(t *testing.T) {
	for _, p := range Periods {
		got, err := ParsePeriod(string(p))
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}

	got, err := ParsePeriod("")
	require.NoError(t, err)
	assert.Equal(t, DefaultPeriod, got)

	got, err = ParsePeriod(" 6MO ")
	require.NoError(t, err)
	assert.Equal(t, PeriodSixMonths, got)

	_, err = ParsePeriod("5y")
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestSeriesEmpty(t *testing.T) {
	var nilSeries *Series
	assert.True(t, nilSeries.Empty())
	assert.True(t, (&Series{Symbol: "TCS.NS"}).Empty())
	assert.False(t, (&Series{Points: []PricePoint{{Close: 1}}}).Empty())
}
