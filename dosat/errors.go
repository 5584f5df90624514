package dosat

import (
	"fmt"
	"strconv"
	"strings"
)

// 入力値に対して式が定義されない、または物理的に意味を持たない場合のエラー
// (分母ゼロ、絶対温度が0以下、飽和濃度が0以下など)
type DomainError struct {
	Func   string    // エラーを検出した関数名
	Args   []float64 // 関数に与えた引数
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("dosat: %s(%s): %s", e.Func, formatArgs(e.Args), e.Reason)
}

// 検証用の参照値と計算値が小数第1位で一致しない場合のエラー
type ValidationError struct {
	Func     string
	Args     []float64
	Expected float64
	Actual   float64
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("dosat: %s(%s) failed validation: expected %s, got %s",
		e.Func, formatArgs(e.Args),
		strconv.FormatFloat(e.Expected, 'f', -1, 64),
		strconv.FormatFloat(e.Actual, 'f', -1, 64))
}

func domainError(fn string, reason string, args ...float64) error {
	return &DomainError{Func: fn, Args: args, Reason: reason}
}

func formatArgs(args []float64) string {
	s := make([]string, len(args))
	for i, v := range args {
		s[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(s, ", ")
}
