package dosat

import "math"

//気圧に関するモジュール

// 標準大気圧 [mmHg]
const StandardPressure = 760.0

// 気圧補正係数 F_p を求めます。
// 引数:
// p: 大気圧 [mmHg]
// t: 水温 [℃]
// 戻り値:
// 補正係数 [-] (p = 760mmHg のとき 1)
// 水温が沸点(約100℃)に達し蒸気圧が760mmHgとなる場合は分母が0となり DomainError を返します。
func PressureCorrection(p float64, t float64) (float64, error) {
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return 0, domainError("PressureCorrection", "pressure must be finite", p, t)
	}

	u, err := VaporPressure(t)
	if err != nil {
		return 0, err
	}

	return correctionFactor(p, u, t)
}

// 蒸気圧 u [mmHg] が求まっている場合の気圧補正係数
func correctionFactor(p float64, u float64, t float64) (float64, error) {
	d := StandardPressure - u
	if d == 0 {
		return 0, domainError("PressureCorrection", "vapor pressure equals 760 mmHg (boiling point)", p, t)
	}

	return (p - u) / d, nil
}

// 気圧の標高補正を行います。
// 引数:
// p: 補正前の気圧 [mmHg]
// eleGap: 標高差 [m]
// t: 気温 [℃]
// 戻り値:
// 標高補正後の気圧 [mmHg]
// ただし、気温減率の平均値を0.0065℃/mとする。
// Grid および CLI では気温の代わりに水温を t として与える(水面の気温は水温に等しいとみなす)。
func CorrectPressure(p float64, eleGap float64, t float64) (float64, error) {
	T := ToKelvin(t)
	if T <= 0 {
		return 0, domainError("CorrectPressure", "temperature at or below absolute zero", p, eleGap, t)
	}

	base := 1 - (eleGap*0.0065)/T
	if base <= 0 {
		return 0, domainError("CorrectPressure", "elevation gap outside the lapse rate model", p, eleGap, t)
	}

	return p * math.Pow(base, 5.257), nil
}
