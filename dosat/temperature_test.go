package dosat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ToKelvin(t *testing.T) {
	assert.Equal(t, 273.15, ToKelvin(0))
	assert.InDelta(t, 293.15, ToKelvin(20), 1e-12)
	assert.Equal(t, 0.0, ToKelvin(AbsoluteZero))
}

func Test_ToCelsius(t *testing.T) {
	assert.Equal(t, 0.0, ToCelsius(273.15))
	assert.Equal(t, AbsoluteZero, ToCelsius(0))
}

// 摂氏⇒絶対温度⇒摂氏の往復
func Test_ToCelsius_RoundTrip(t *testing.T) {
	for _, c := range []float64{-273.15, -40, -0.5, 0, 4, 20, 22.25, 37, 100} {
		assert.InDelta(t, c, ToCelsius(ToKelvin(c)), 1e-12, "t=%v", c)
	}
}
