package dosat

import (
	"fmt"
	"math"
)

//--------------------------------------
// 溶存酸素(DO)の飽和濃度および飽和度の計算
// Weiss の方法 (USGS Office of Water Quality Technical Memorandum 2011.03)
//--------------------------------------

// 水温 t [℃] と大気圧 p [mmHg] から飽和溶存酸素濃度 [mg/L] を求めます。
// Benson-Krause/Weiss 型の経験式で 760mmHg における飽和濃度を求め、
// PressureCorrection で気圧補正します。
// 絶対温度が0以下となる t <= -273.15℃ は DomainError とします。
func SaturationConcentration(t float64, p float64) (float64, error) {
	if math.IsNaN(t) {
		return 0, domainError("SaturationConcentration", "temperature is NaN", t, p)
	}

	// 絶対温度 [K]
	Tk := ToKelvin(t)
	if Tk <= 0 {
		return 0, domainError("SaturationConcentration", "temperature at or below absolute zero", t, p)
	}

	// 1atm における飽和濃度 [mg/L]
	doSat := 1.42905 * math.Exp(-173.4292+
		249.6339*(100/Tk)+
		143.3483*math.Log(Tk/100)-
		21.8493*(Tk/100))
	if math.IsInf(doSat, 0) || math.IsNaN(doSat) {
		return 0, domainError("SaturationConcentration", "result is not finite", t, p)
	}

	Fp, err := PressureCorrection(p, t)
	if err != nil {
		return 0, err
	}

	v := doSat * Fp
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, domainError("SaturationConcentration", "result is not finite", t, p)
	}

	return v, nil
}

// 溶存酸素濃度 do [mg/L]、水温 t [℃]、大気圧 p [mmHg] から DO飽和度 [%] を求めます。
func SaturationPercent(do float64, t float64, p float64) (float64, error) {
	if math.IsNaN(do) || do < 0 {
		return 0, domainError("SaturationPercent", "DO concentration must be a non-negative number", do, t, p)
	}

	doMax, err := SaturationConcentration(t, p)
	if err != nil {
		return 0, err
	}

	// 飽和濃度が0以下では比が意味を持たない
	if doMax <= 0 {
		return 0, domainError("SaturationPercent", "saturation concentration is not positive", do, t, p)
	}

	return (do / doMax) * 100, nil
}

// 同じ長さの do [mg/L] と t [℃] の組ごとに DO飽和度 [%] を求めます。
func SaturationPercentSeries(do []float64, t []float64, p float64) ([]float64, error) {
	if len(do) != len(t) {
		return nil, fmt.Errorf("dosat: SaturationPercentSeries: length of DO (%d) and temperature (%d) series differ",
			len(do), len(t))
	}

	sat := make([]float64, len(do))
	for i := 0; i < len(do); i++ {
		v, err := SaturationPercent(do[i], t[i], p)
		if err != nil {
			return nil, err
		}
		sat[i] = v
	}

	return sat, nil
}

// v を小数第 places 位に丸めます(四捨五入)。
func Round(v float64, places int) float64 {
	s := math.Pow(10, float64(places))
	return math.Round(v*s) / s
}
