package dosat

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// CSV形式
// 行の並びは DO濃度ごとに水温を走査する順とします。
func (g *GridResult) ToCSV(buf *bytes.Buffer) {
	buf.WriteString("do")
	buf.WriteString(",temperature")
	buf.WriteString(",pressure")
	buf.WriteString(",saturation")
	buf.WriteString("\n")

	writeFloat := func(v float64) {
		buf.WriteString(",")
		buf.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
	}
	for j := 0; j < len(g.DO); j++ {
		for i := 0; i < len(g.Temperature); i++ {
			buf.WriteString(strconv.FormatFloat(g.DO[j], 'f', -1, 64))
			writeFloat(g.Temperature[i])
			writeFloat(g.Pressure[i])
			writeFloat(g.Percent.At(i, j))
			buf.WriteString("\n")
		}
	}
}

// 色の範囲 [%]
const (
	mapLow  = 50.0
	mapMid  = 100.0
	mapHigh = 150.0
)

var (
	colorLow  = colorful.Color{R: 0.173, G: 0.482, B: 0.714} // 未飽和
	colorMid  = colorful.Color{R: 1, G: 1, B: 1}             // 飽和
	colorHigh = colorful.Color{R: 0.843, G: 0.098, B: 0.110} // 過飽和

	mapLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	mapTitleStyle = lipgloss.NewStyle().
			Bold(true)
)

// DO飽和度 pct [%] に対応する色
func rampColor(pct float64) colorful.Color {
	switch {
	case pct <= mapLow:
		return colorLow
	case pct >= mapHigh:
		return colorHigh
	case pct < mapMid:
		return colorLow.BlendLab(colorMid, (pct-mapLow)/(mapMid-mapLow))
	default:
		return colorMid.BlendLab(colorHigh, (pct-mapMid)/(mapHigh-mapMid))
	}
}

func cell(pct float64) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(rampColor(pct).Hex())).
		Render(" ")
}

// ヒートマップ形式
// 縦軸を水温(上ほど高温)、横軸を DO濃度とし、DO飽和度を色で表します。
func (g *GridResult) ToMap(buf *bytes.Buffer) {
	rows := make([]string, 0, len(g.Temperature)+4)

	rows = append(rows, mapTitleStyle.Render(
		fmt.Sprintf("DO saturation [%%] at %.1f mmHg", g.Pressure[0])))

	for i := len(g.Temperature) - 1; i >= 0; i-- {
		var line bytes.Buffer
		line.WriteString(mapLabelStyle.Render(fmt.Sprintf("%6.1f ", g.Temperature[i])))
		for j := 0; j < len(g.DO); j++ {
			line.WriteString(cell(g.Percent.At(i, j)))
		}
		rows = append(rows, line.String())
	}

	// 横軸
	lo := fmt.Sprintf("%.1f", g.DO[0])
	hi := fmt.Sprintf("%.1f", g.DO[len(g.DO)-1])
	gap := len(g.DO) - len(lo) - len(hi)
	if gap < 1 {
		gap = 1
	}
	rows = append(rows, mapLabelStyle.Render(fmt.Sprintf("%6s %s%*s%s", "[℃]", lo, gap, "", hi)))
	rows = append(rows, mapLabelStyle.Render(fmt.Sprintf("%6s DO [mg/L]", "")))

	// 凡例
	var legend bytes.Buffer
	legend.WriteString(mapLabelStyle.Render(fmt.Sprintf("%6s %.0f ", "", mapLow)))
	for v := mapLow; v <= mapHigh; v += 5 {
		legend.WriteString(cell(v))
	}
	legend.WriteString(mapLabelStyle.Render(fmt.Sprintf(" %.0f", mapHigh)))
	rows = append(rows, legend.String())

	buf.WriteString(lipgloss.JoinVertical(lipgloss.Left, rows...))
	buf.WriteString("\n")
}
