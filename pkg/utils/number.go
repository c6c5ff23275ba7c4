package utils

import (
	"fmt"
	"math"
	"strings"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// FormatBRL formata um valor monetário no padrão brasileiro: milhares com
// ponto e decimais com vírgula (ex.: 1234.5 → "1.234,50").
func FormatBRL(value float64) string {
	formatted := fmt.Sprintf("%.2f", value)

	parts := strings.SplitN(formatted, ".", 2)
	intPart, decPart := parts[0], parts[1]

	negative := strings.HasPrefix(intPart, "-")
	intPart = strings.TrimPrefix(intPart, "-")

	var groups []string
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}
	groups = append([]string{intPart}, groups...)

	result := strings.Join(groups, ".") + "," + decPart
	if negative {
		result = "-" + result
	}

	return result
}

// FormatInt formata um inteiro com separador de milhar brasileiro.
func FormatInt(value int) string {
	formatted := FormatBRL(float64(value))
	return strings.TrimSuffix(formatted, ",00")
}
