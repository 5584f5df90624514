package dosat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Validate(t *testing.T) {
	assert.NoError(t, Validate())
}

func Test_ValidateCases_Mismatch(t *testing.T) {
	err := ValidateCases([]ReferenceCase{
		{"VaporPressure", []float64{0}, 4.6},
		{"SaturationConcentration", []float64{20, 760}, 9.5},
	})

	var ve *ValidationError
	if assert.ErrorAs(t, err, &ve) {
		assert.Equal(t, "SaturationConcentration", ve.Func)
		assert.Equal(t, 9.5, ve.Expected)
		assert.Equal(t, 9.1, ve.Actual)
		assert.Contains(t, err.Error(), "SaturationConcentration(20, 760)")
		assert.Contains(t, err.Error(), "expected 9.5, got 9.1")
	}
}

// 計算自体が失敗した場合は DomainError がそのまま返る
func Test_ValidateCases_DomainError(t *testing.T) {
	err := ValidateCases([]ReferenceCase{
		{"VaporPressure", []float64{-235}, 0},
	})

	var de *DomainError
	assert.ErrorAs(t, err, &de)
}

func Test_ReferenceCase_Eval(t *testing.T) {
	v, err := ReferenceCase{"SaturationPercent", []float64{0, 20, 760}, 0}.Eval()
	assert.NoError(t, err)
	assert.Equal(t, 0.0, v)

	_, err = ReferenceCase{"Unknown", []float64{1}, 0}.Eval()
	assert.Error(t, err)

	_, err = ReferenceCase{"PressureCorrection", []float64{760}, 1}.Eval()
	assert.EqualError(t, err, "dosat: PressureCorrection: wrong number of arguments (1)")
}
