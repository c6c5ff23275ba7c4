package metricating

import (
	"fmt"
	"sort"
	"time"

	"github.com/vfg2006/restaurant-analytics-api/internal/domain"
	"github.com/vfg2006/restaurant-analytics-api/pkg/utils"
)

var weekDays = []string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

type hourBucket struct {
	orders  int
	revenue float64
}

// buildHeatmap agrupa os pontos de venda por dia da semana e hora do dia.
// Os dias saem na ordem da semana (domingo a sábado) e as horas em ordem
// crescente; dias sem venda não aparecem na resposta.
func buildHeatmap(points []domain.SalePoint) []*domain.HeatmapDay {
	buckets := make(map[time.Weekday]map[int]*hourBucket)

	for _, point := range points {
		day := point.CreatedAt.Weekday()
		hour := point.CreatedAt.Hour()

		if buckets[day] == nil {
			buckets[day] = make(map[int]*hourBucket)
		}
		if buckets[day][hour] == nil {
			buckets[day][hour] = &hourBucket{}
		}

		buckets[day][hour].orders++
		buckets[day][hour].revenue += point.TotalAmount
	}

	result := make([]*domain.HeatmapDay, 0, len(buckets))

	for day := time.Sunday; day <= time.Saturday; day++ {
		hours, ok := buckets[day]
		if !ok {
			continue
		}

		heatmapDay := &domain.HeatmapDay{
			Day:   weekDays[day],
			Hours: make([]domain.HeatmapHour, 0, len(hours)),
		}

		for hour := 0; hour < 24; hour++ {
			bucket, ok := hours[hour]
			if !ok {
				continue
			}

			heatmapDay.Hours = append(heatmapDay.Hours, domain.HeatmapHour{
				Hour:    hour,
				Orders:  bucket.orders,
				Revenue: utils.RoundWithTwoDecimalPlace(bucket.revenue),
			})
		}

		result = append(result, heatmapDay)
	}

	return result
}

type bucketer func(t time.Time) string

// bucketerFor devolve a função que transforma o timestamp de uma venda na
// chave do bucket da série temporal. A semana começa no domingo.
func bucketerFor(groupBy string) (bucketer, error) {
	switch groupBy {
	case "hour":
		return func(t time.Time) string {
			return t.Format("2006-01-02 15:00")
		}, nil
	case "day":
		return func(t time.Time) string {
			return t.Format("2006-01-02")
		}, nil
	case "week":
		return func(t time.Time) string {
			weekStart := t.AddDate(0, 0, -int(t.Weekday()))
			return weekStart.Format("2006-01-02")
		}, nil
	case "month":
		return func(t time.Time) string {
			return t.Format("2006-01")
		}, nil
	default:
		return nil, fmt.Errorf("agrupamento inválido: %q", groupBy)
	}
}

func buildTimeSeries(points []domain.SalePoint, bucket bucketer) []*domain.TimeSeriesPoint {
	buckets := make(map[string]*domain.TimeSeriesPoint)

	for _, point := range points {
		key := bucket(point.CreatedAt)

		entry, ok := buckets[key]
		if !ok {
			entry = &domain.TimeSeriesPoint{Date: key}
			buckets[key] = entry
		}

		entry.Orders++
		entry.Revenue += point.TotalAmount
	}

	result := make([]*domain.TimeSeriesPoint, 0, len(buckets))
	for _, entry := range buckets {
		entry.Revenue = utils.RoundWithTwoDecimalPlace(entry.Revenue)
		result = append(result, entry)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Date < result[j].Date
	})

	return result
}
