package dosat

import (
	"fmt"
	"math"

	"github.com/hhkbp2/go-logging"
)

// 参照値による検証ケース
type ReferenceCase struct {
	Func     string    // 検証対象の関数名
	Args     []float64 // 関数に与える引数 (関数の引数順)
	Expected float64   // 小数第1位に丸めた期待値
}

// 既知の参照値の一覧
// 水の蒸気圧は https://en.wikipedia.org/wiki/Vapour_pressure_of_water の値、
// 気圧補正係数は 760mmHg で 1、飽和濃度は 20℃/760mmHg で約 9.1mg/L となる。
var ReferenceCases = []ReferenceCase{
	{"VaporPressure", []float64{0}, 4.6},
	{"VaporPressure", []float64{5}, 6.5},
	{"VaporPressure", []float64{50}, 92.5},
	{"PressureCorrection", []float64{760, 22}, 1.0},
	{"SaturationConcentration", []float64{20, 760}, 9.1},
}

// 検証時の丸め桁数
const validationPlaces = 1

// 参照ケースを1件評価し、丸める前の計算値を返します。
func (c ReferenceCase) Eval() (float64, error) {
	switch c.Func {
	case "VaporPressure":
		if len(c.Args) == 1 {
			return VaporPressure(c.Args[0])
		}
	case "PressureCorrection":
		if len(c.Args) == 2 {
			return PressureCorrection(c.Args[0], c.Args[1])
		}
	case "SaturationConcentration":
		if len(c.Args) == 2 {
			return SaturationConcentration(c.Args[0], c.Args[1])
		}
	case "SaturationPercent":
		if len(c.Args) == 3 {
			return SaturationPercent(c.Args[0], c.Args[1], c.Args[2])
		}
	default:
		return 0, fmt.Errorf("dosat: unknown reference function %q", c.Func)
	}
	return 0, fmt.Errorf("dosat: %s: wrong number of arguments (%d)", c.Func, len(c.Args))
}

// 参照ケースを検証します。計算値を小数第1位に丸めて期待値と一致しない場合は
// ValidationError を返します。
func (c ReferenceCase) Check() error {
	v, err := c.Eval()
	if err != nil {
		return err
	}

	actual := Round(v, validationPlaces)
	if math.Abs(actual-c.Expected) > 1e-9 {
		return &ValidationError{Func: c.Func, Args: c.Args, Expected: c.Expected, Actual: actual}
	}
	return nil
}

// すべての参照ケースを検証します。起動時に1度だけ呼び出します。
func Validate() error {
	return ValidateCases(ReferenceCases)
}

// 与えられた参照ケースを順に検証し、最初に失敗したケースのエラーを返します。
func ValidateCases(cases []ReferenceCase) error {
	logger := logging.GetLogger("dosat")

	for _, c := range cases {
		if err := c.Check(); err != nil {
			return err
		}
		logger.Debugf("検証OK %s(%s) = %v", c.Func, formatArgs(c.Args), c.Expected)
	}

	return nil
}
