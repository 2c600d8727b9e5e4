package hardware

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSensorAvailable(t *testing.T) {
	assert.True(t, Parameters{CurrentTemperature: 47.5}.SensorAvailable())
	assert.True(t, Parameters{CurrentTemperature: 0}.SensorAvailable())
	assert.False(t, Parameters{CurrentTemperature: math.NaN()}.SensorAvailable())
	assert.False(t, Parameters{CurrentTemperature: math.Inf(1)}.SensorAvailable())
}

func TestDefaultParameters(t *testing.T) {
	params := DefaultParameters()
	assert.Equal(t, "N/A", params.Label)
	assert.Zero(t, params.UsagePercentage)
	assert.Zero(t, params.CurrentTemperature)
	assert.Zero(t, params.MaxTemperature)
}
