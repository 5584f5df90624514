package dosat

import (
	"github.com/hhkbp2/go-logging"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// DO濃度 × 水温の格子上で計算した飽和度
type GridResult struct {
	DO          []float64  // 溶存酸素濃度の軸 [mg/L] (列)
	Temperature []float64  // 水温の軸 [℃] (行)
	Pressure    []float64  // 行ごとの標高補正後の大気圧 [mmHg]
	Percent     *mat.Dense // DO飽和度 [%] (行:水温, 列:DO濃度)
}

type gridRow struct {
	Index    int
	Pressure float64
	Values   []float64
	Err      error
}

// 設定に従い DO濃度 × 水温 の格子上で DO飽和度を計算します。
// 各行は独立しているため並列に計算します。
// 標高補正(Config.Elevation)では各行の水温を気温とみなします。
func Grid(conf Config) (*GridResult, error) {
	if err := conf.Check(); err != nil {
		return nil, err
	}

	logger := logging.GetLogger("dosat")

	do := floats.Span(make([]float64, conf.DO.N), conf.DO.Min, conf.DO.Max)
	tmp := floats.Span(make([]float64, conf.Temperature.N), conf.Temperature.Min, conf.Temperature.Max)

	logger.Infof("格子計算を実行します DO=%d点 水温=%d点 気圧=%vmmHg 標高差=%vm",
		len(do), len(tmp), conf.Pressure, conf.Elevation)

	c := make(chan gridRow, 4)
	for i := range tmp {
		go evalRow(i, tmp[i], do, conf.Pressure, conf.Elevation, c)
	}

	res := &GridResult{
		DO:          do,
		Temperature: tmp,
		Pressure:    make([]float64, len(tmp)),
		Percent:     mat.NewDense(len(tmp), len(do), nil),
	}

	var err error
	for i := 0; i < len(tmp); i++ {
		row := <-c
		if row.Err != nil {
			if err == nil {
				err = row.Err
			}
			continue
		}
		res.Pressure[row.Index] = row.Pressure
		res.Percent.SetRow(row.Index, row.Values)
		logger.Debugf("行 %d (%v℃) 計算完了", row.Index, tmp[row.Index])
	}
	if err != nil {
		return nil, err
	}

	min, max, mean := res.Stats()
	logger.Infof("格子計算が終了しました 最小=%.1f%% 最大=%.1f%% 平均=%.1f%%", min, max, mean)

	return res, nil
}

func evalRow(index int, t float64, do []float64, p float64, eleGap float64, c chan gridRow) {
	row := gridRow{Index: index}

	p, err := CorrectPressure(p, eleGap, t)
	if err != nil {
		row.Err = err
		c <- row
		return
	}
	row.Pressure = p

	row.Values = make([]float64, len(do))
	for j := range do {
		row.Values[j], err = SaturationPercent(do[j], t, p)
		if err != nil {
			row.Err = err
			break
		}
	}

	c <- row
}

// 格子全体の DO飽和度の最小値、最大値、平均値 [%]
func (g *GridResult) Stats() (min float64, max float64, mean float64) {
	data := g.Percent.RawMatrix().Data
	return floats.Min(data), floats.Max(data), floats.Sum(data) / float64(len(data))
}
