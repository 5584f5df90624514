package dosat

//温度換算に関するモジュール

// 絶対零度 [℃]
const AbsoluteZero = -273.15

// 摂氏 c [℃] を絶対温度 [K] に換算します。
func ToKelvin(c float64) float64 {
	return c - AbsoluteZero
}

// 絶対温度 k [K] を摂氏 [℃] に換算します。
func ToCelsius(k float64) float64 {
	return k + AbsoluteZero
}
