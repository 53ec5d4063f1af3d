package catalog

import (
	"testing"

	"github.com/iroro1/et-mobile-new/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupCoversEveryType(t *testing.T) {
	require.Len(t, Types, 7)
	for _, sensorType := range Types {
		info := Lookup(sensorType)
		assert.Equal(t, sensorType, info.Type)
		assert.NotEmpty(t, info.Name)
		assert.LessOrEqual(t, info.MinValue, info.MaxValue)
		assert.LessOrEqual(t, info.DefaultMin, info.DefaultMax)
	}
}

func TestLookupValues(t *testing.T) {
	temp := Lookup(models.Temperature)
	assert.Equal(t, "°C", temp.Unit)
	assert.Equal(t, float64(10), temp.DefaultMin)
	assert.Equal(t, float64(30), temp.DefaultMax)

	fire := Lookup(models.FireDetection)
	assert.Equal(t, float64(0), fire.DefaultMin)
	assert.Equal(t, float64(0), fire.DefaultMax)
	assert.Equal(t, float64(1), fire.MaxValue)
}

func TestDefaultThresholds(t *testing.T) {
	thresholds := DefaultThresholds()
	require.Len(t, thresholds, len(Types))

	for i, threshold := range thresholds {
		info := Lookup(Types[i])
		assert.Zero(t, threshold.ID, "synthesized thresholds carry no server id")
		assert.Equal(t, info.Type, threshold.SensorType)
		assert.Equal(t, info.DefaultMin, threshold.MinValue)
		assert.Equal(t, info.DefaultMax, threshold.MaxValue)
		assert.Equal(t, info.Unit, threshold.Unit)
	}
}
