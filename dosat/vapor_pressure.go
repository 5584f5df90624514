package dosat

import "math"

//水の蒸気圧に関するモジュール

// Antoine型の近似式により水の飽和蒸気圧を求めます。
// 引数:
// t: 水温 [℃]
// 戻り値:
// 飽和蒸気圧 [mmHg]
// ただし、有効範囲はおよそ 0～50℃ とする。
// t = -235℃ では分母が0となるため DomainError を返します。
// 計算結果が有限の正値とならない場合(-235℃近傍)も DomainError とします。
func VaporPressure(t float64) (float64, error) {
	if math.IsNaN(t) {
		return 0, domainError("VaporPressure", "temperature is NaN", t)
	}

	d := 235 + t
	if d == 0 {
		return 0, domainError("VaporPressure", "division by zero (235 + t = 0)", t)
	}

	u := math.Pow(10, 8.10765-1750.286/d)
	if math.IsInf(u, 0) || math.IsNaN(u) {
		return 0, domainError("VaporPressure", "result is not finite", t)
	}

	// -235℃の直上では 10^(-∞) に近づき0へアンダーフローする
	if !(u > 0) {
		return 0, domainError("VaporPressure", "result underflows to zero", t)
	}

	return u, nil
}
