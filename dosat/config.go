package dosat

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// 格子の軸設定 (min から max までを n 等分点)
type Axis struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
	N   int     `yaml:"n"`
}

// 飽和度の格子計算の設定
type Config struct {
	Pressure    float64 `yaml:"pressure"`    // 大気圧 [mmHg]
	Elevation   float64 `yaml:"elevation"`   // 気圧計からの標高差 [m]
	DO          Axis    `yaml:"do"`          // 溶存酸素濃度 [mg/L]
	Temperature Axis    `yaml:"temperature"` // 水温 [℃]
}

// 既定の設定 (DO 5～12mg/L, 水温 0～30℃, 各100点, 760mmHg)
func DefaultConfig() Config {
	return Config{
		Pressure:    StandardPressure,
		Elevation:   0,
		DO:          Axis{Min: 5, Max: 12, N: 100},
		Temperature: Axis{Min: 0, Max: 30, N: 100},
	}
}

// YAML形式の設定を既定値に上書きして読み込みます。
func ParseConfig(data []byte) (Config, error) {
	conf := DefaultConfig()
	if err := yaml.Unmarshal(data, &conf); err != nil {
		return Config{}, fmt.Errorf("dosat: parse config: %w", err)
	}
	if err := conf.Check(); err != nil {
		return Config{}, err
	}
	return conf, nil
}

// 設定値の妥当性を確認します。
func (conf Config) Check() error {
	if !(conf.Pressure > 0) {
		return fmt.Errorf("dosat: config: pressure must be positive, got %v", conf.Pressure)
	}
	if err := conf.DO.check("do"); err != nil {
		return err
	}
	if conf.DO.Min < 0 {
		return fmt.Errorf("dosat: config: do.min must not be negative, got %v", conf.DO.Min)
	}
	return conf.Temperature.check("temperature")
}

func (a Axis) check(name string) error {
	if a.N < 2 {
		return fmt.Errorf("dosat: config: %s.n must be at least 2, got %d", name, a.N)
	}
	if !(a.Min < a.Max) {
		return fmt.Errorf("dosat: config: %s.min (%v) must be less than %s.max (%v)", name, a.Min, name, a.Max)
	}
	return nil
}
