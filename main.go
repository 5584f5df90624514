// DOSat
package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/akamensky/argparse"
	"github.com/hhkbp2/go-logging"
	"github.com/udawtr/dosat-go/dosat"
)

func main() {
	// コマンドライン引数の処理
	parser := argparse.NewParser("DOSat", "Calculates dissolved oxygen saturation from DO concentration, water temperature and air pressure")

	logLevel := parser.Selector("", "log", []string{"DEBUG", "INFO", "WARN", "ERROR", "CRITICAL"}, &argparse.Options{
		Default: "ERROR",
		Help:    "ログレベルの設定"})

	configFile := parser.String("c", "config", &argparse.Options{
		Default: "",
		Help:    "格子計算の設定ファイル(YAML)"})

	// 単一条件の計算
	point := parser.NewCommand("point", "指定した条件のDO飽和度を計算する")

	do := point.Float("d", "do", &argparse.Options{
		Required: true,
		Help:     "溶存酸素濃度 [mg/L]"})

	tmp := point.Float("t", "temperature", &argparse.Options{
		Required: true,
		Help:     "水温 [℃]"})

	pres := point.Float("p", "pressure", &argparse.Options{
		Default: dosat.StandardPressure,
		Help:    "大気圧 [mmHg]"})

	eleGap := point.Float("e", "elevation", &argparse.Options{
		Default: 0.0,
		Help:    "気圧計からの標高差 [m] (気圧の標高補正には水温を気温として用いる)"})

	// 格子計算
	grid := parser.NewCommand("grid", "DO濃度×水温の格子上でDO飽和度を計算する")

	format := grid.Selector("f", "file", []string{"CSV", "MAP"}, &argparse.Options{
		Default: "CSV",
		Help:    "出力形式 CSV or MAP(ヒートマップ)"})

	filename := grid.String("o", "output", &argparse.Options{
		Default: "",
		Help:    "保存ファイルパス"})

	err := parser.Parse(os.Args)
	if err != nil {
		fmt.Print(parser.Usage(err))
		os.Exit(2)
	}

	// ログレベル設定
	logger := logging.GetLogger("dosat")
	if *logLevel == "DEBUG" {
		logger.SetLevel(logging.LevelDebug)
	} else if *logLevel == "INFO" {
		logger.SetLevel(logging.LevelInfo)
	} else if *logLevel == "WARN" {
		logger.SetLevel(logging.LevelWarn)
	} else if *logLevel == "ERROR" {
		logger.SetLevel(logging.LevelError)
	} else if *logLevel == "CRITICAL" {
		logger.SetLevel(logging.LevelCritical)
	}

	// 参照値による式の検証
	if err := dosat.Validate(); err != nil {
		fail(err)
	}
	logger.Infof("参照値の検証が完了しました")

	if point.Happened() {
		runPoint(*do, *tmp, *pres, *eleGap)
	} else if grid.Happened() {
		runGrid(*configFile, *format, *filename)
	}

	logger.Infof("計算が終了しました")
}

func runPoint(do float64, tmp float64, pres float64, eleGap float64) {
	p, err := dosat.CorrectPressure(pres, eleGap, tmp)
	if err != nil {
		fail(err)
	}

	doMax, err := dosat.SaturationConcentration(tmp, p)
	if err != nil {
		fail(err)
	}

	sat, err := dosat.SaturationPercent(do, tmp, p)
	if err != nil {
		fail(err)
	}

	fmt.Printf("pressure=%.1f mmHg do_sat=%.2f mg/L saturation=%.1f %%\n", p, doMax, sat)
}

func runGrid(configFile string, format string, filename string) {
	logger := logging.GetLogger("dosat")

	conf := dosat.DefaultConfig()
	if configFile != "" {
		logger.Infof("設定ファイル読み込み: %s", configFile)
		b, err := os.ReadFile(configFile)
		if err != nil {
			fail(err)
		}
		conf, err = dosat.ParseConfig(b)
		if err != nil {
			fail(err)
		}
	}

	res, err := dosat.Grid(conf)
	if err != nil {
		fail(err)
	}

	// 保存
	var buf *bytes.Buffer = bytes.NewBuffer([]byte{})
	if format == "CSV" {
		res.ToCSV(buf)
	} else if format == "MAP" {
		res.ToMap(buf)
	}

	if filename == "" {
		fmt.Print(buf.String())
	} else {
		logger.Infof("保存: %s", filename)
		err := os.WriteFile(filename, buf.Bytes(), 0644)
		if err != nil {
			fail(err)
		}
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
