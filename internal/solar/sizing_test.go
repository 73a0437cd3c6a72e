package solar

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSizeHouseholdAndCar(t *testing.T) {
	d := Demand{HouseholdDaily: 10, CarPer100km: 20, DailyDistance: 40}
	s, err := Size(d, DefaultSizingConfig(), 5.0)
	require.NoError(t, err)

	assert.InDelta(t, 8, s.CarDaily, 1e-12)
	assert.InDelta(t, 8/0.9, s.CarEffective, 1e-12)
	assert.InDelta(t, 10+8/0.9, s.TotalDaily, 1e-12)
	assert.InDelta(t, 4.5, s.TiltedRadiation, 1e-12)
	assert.InDelta(t, (10+8/0.9)/0.15/4.5, s.Area, 1e-9)
}

func TestSizePerSessionWithoutChargingLoss(t *testing.T) {
	// Session energy is added as metered, whatever the charger efficiency
	s, err := Size(Demand{HouseholdDaily: 10, CarPerSession: 9}, DefaultSizingConfig(), 5)
	require.NoError(t, err)
	assert.InDelta(t, 9, s.CarDaily, 1e-12)
	assert.InDelta(t, 9, s.CarEffective, 1e-12)
	assert.InDelta(t, 19/0.15/(5*0.9), s.Area, 1e-9)
	assert.InDelta(t, 28.148, s.Area, 1e-3)
}

func TestSizeDrivingAndSession(t *testing.T) {
	d := Demand{HouseholdDaily: 10, CarPer100km: 20, DailyDistance: 40, CarPerSession: 2}
	s, err := Size(d, DefaultSizingConfig(), 5.0)
	require.NoError(t, err)

	assert.InDelta(t, 10, s.CarDaily, 1e-12)
	assert.InDelta(t, 8/0.9+2, s.CarEffective, 1e-12)
	assert.InDelta(t, (12+8/0.9)/0.15/4.5, s.Area, 1e-9)
}

func TestSizeInvalid(t *testing.T) {
	_, err := Size(Demand{HouseholdDaily: -1}, SizingConfig{PVEfficiency: 2}, 0)
	require.Error(t, err)
	assert.ErrorContains(t, err, "household consumption")
	assert.ErrorContains(t, err, "pv efficiency")
	assert.ErrorContains(t, err, "charging efficiency")
	assert.ErrorContains(t, err, "radiation")

	_, err = Size(Demand{}, DefaultSizingConfig(), 5)
	assert.ErrorContains(t, err, "no consumption")
}

func TestFindSite(t *testing.T) {
	s, err := FindSite("quito", Sites)
	require.NoError(t, err)
	assert.Equal(t, "Quito", s.Name)

	s, err = FindSite("mexico", Sites)
	require.NoError(t, err)
	assert.Equal(t, "México DF", s.Name)

	_, err = FindSite("tokyo", Sites)
	assert.Error(t, err)
}

type fakeSource map[float64]float64

func (f fakeSource) AnnualMeanRadiation(_ context.Context, lat, _ float64) (float64, error) {
	q, ok := f[lat]
	if !ok {
		return 0, errors.New("no data")
	}
	return q, nil
}

func TestSizeSites(t *testing.T) {
	src := fakeSource{19.4326: 5.5, -0.1807: 4.8, -34.6037: 4.6, 41.6488: 4.5}
	d := Demand{HouseholdDaily: 10, CarPer100km: 20, DailyDistance: 40}

	results, err := SizeSites(context.Background(), src, Sites, d, DefaultSizingConfig(), 2)
	require.NoError(t, err)
	require.Len(t, results, len(Sites))

	for i, r := range results {
		assert.Equal(t, Sites[i], r.Site)
	}
	require.NoError(t, results[0].Err)
	assert.Greater(t, results[3].Sizing.Area, results[0].Sizing.Area)
	assert.Error(t, results[4].Err) // Lima has no data
	assert.Nil(t, results[4].Sizing)
}

func TestSizeSitesCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := SizeSites(ctx, fakeSource{}, Sites, Demand{HouseholdDaily: 1}, DefaultSizingConfig(), 1)
	assert.ErrorIs(t, err, context.Canceled)
}
