package dosat

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ToCSV(t *testing.T) {
	g, err := Grid(smallConfig())
	require.NoError(t, err)

	buf := bytes.NewBuffer([]byte{})
	g.ToCSV(buf)

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 1+3*4)
	assert.Equal(t, "do,temperature,pressure,saturation", lines[0])

	// DO濃度ごとに水温を走査する
	assert.True(t, strings.HasPrefix(lines[1], "5,0,760,"), lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "5,10,760,"), lines[2])
	assert.True(t, strings.HasPrefix(lines[5], "8.5,0,760,"), lines[5])
	assert.True(t, strings.HasPrefix(lines[12], "12,30,760,"), lines[12])
}

func Test_ToMap(t *testing.T) {
	g, err := Grid(smallConfig())
	require.NoError(t, err)

	buf := bytes.NewBuffer([]byte{})
	g.ToMap(buf)

	out := buf.String()
	assert.Contains(t, out, "DO saturation [%] at 760.0 mmHg")
	assert.Contains(t, out, "DO [mg/L]")

	// タイトル + 水温4行 + 横軸2行 + 凡例
	assert.Equal(t, 1+4+2+1, strings.Count(out, "\n"))

	// 上の行ほど高温
	lines := strings.Split(out, "\n")
	assert.Contains(t, lines[1], "30.0")
	assert.Contains(t, lines[4], "0.0")
}

func Test_rampColor(t *testing.T) {
	assert.Equal(t, colorLow.Hex(), rampColor(20).Hex())
	assert.Equal(t, colorHigh.Hex(), rampColor(180).Hex())

	mid := rampColor(100)
	assert.InDelta(t, 1.0, mid.R, 1e-3)
	assert.InDelta(t, 1.0, mid.G, 1e-3)
	assert.InDelta(t, 1.0, mid.B, 1e-3)
}
