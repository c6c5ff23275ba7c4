package utils

import "time"

// DateRange é um intervalo fechado de datas já resolvido.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// ParseDate interpreta uma data no formato ISO (2006-01-02). String vazia
// devolve nil sem erro; entrada malformada devolve erro para que o handler
// responda 400 em vez de assumir uma data qualquer.
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}

// ResolveDateRange normaliza os parâmetros opcionais de período: o fim
// assume "agora" quando ausente e o início assume fim − 30 dias.
func ResolveDateRange(startStr, endStr string) (DateRange, error) {
	end := time.Now()
	if endStr != "" {
		parsed, err := ParseDate(endStr)
		if err != nil {
			return DateRange{}, err
		}
		end = *parsed
	}

	start := end.AddDate(0, 0, -30)
	if startStr != "" {
		parsed, err := ParseDate(startStr)
		if err != nil {
			return DateRange{}, err
		}
		start = *parsed
	}

	return DateRange{Start: start, End: end}, nil
}
