package metricating

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/restaurant-analytics-api/internal/domain"
)

func point(year int, month time.Month, day, hour int, amount float64) domain.SalePoint {
	return domain.SalePoint{
		CreatedAt:   time.Date(year, month, day, hour, 30, 0, 0, time.UTC),
		TotalAmount: amount,
	}
}

func TestBuildHeatmap(t *testing.T) {
	// 2024-06-02 é domingo; 2024-06-04 é terça.
	points := []domain.SalePoint{
		point(2024, 6, 4, 12, 50),
		point(2024, 6, 4, 12, 30.006),
		point(2024, 6, 4, 19, 80),
		point(2024, 6, 2, 20, 120),
	}

	heatmap := buildHeatmap(points)

	require.Len(t, heatmap, 2)

	// Dias na ordem da semana: domingo antes de terça.
	assert.Equal(t, "Sunday", heatmap[0].Day)
	require.Len(t, heatmap[0].Hours, 1)
	assert.Equal(t, 20, heatmap[0].Hours[0].Hour)
	assert.Equal(t, 1, heatmap[0].Hours[0].Orders)
	assert.InDelta(t, 120.0, heatmap[0].Hours[0].Revenue, 0.001)

	assert.Equal(t, "Tuesday", heatmap[1].Day)
	require.Len(t, heatmap[1].Hours, 2)
	assert.Equal(t, 12, heatmap[1].Hours[0].Hour)
	assert.Equal(t, 2, heatmap[1].Hours[0].Orders)
	assert.InDelta(t, 80.01, heatmap[1].Hours[0].Revenue, 0.001)
	assert.Equal(t, 19, heatmap[1].Hours[1].Hour)
}

func TestBuildHeatmap_SemVendas(t *testing.T) {
	heatmap := buildHeatmap(nil)
	assert.Empty(t, heatmap)
}

func TestBucketerFor(t *testing.T) {
	// 2024-06-05 é quarta-feira; a semana iniciada no domingo é 2024-06-02.
	reference := time.Date(2024, 6, 5, 14, 45, 0, 0, time.UTC)

	tests := []struct {
		name    string
		groupBy string
		want    string
		wantErr bool
	}{
		{"agrupamento por hora", "hour", "2024-06-05 14:00", false},
		{"agrupamento por dia", "day", "2024-06-05", false},
		{"agrupamento por semana começa no domingo", "week", "2024-06-02", false},
		{"agrupamento por mês", "month", "2024-06", false},
		{"agrupamento inválido", "year", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bucket, err := bucketerFor(tt.groupBy)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, bucket(reference))
		})
	}
}

func TestBucketerFor_DomingoPermaneceNaPropriaSemana(t *testing.T) {
	bucket, err := bucketerFor("week")
	require.NoError(t, err)

	sunday := time.Date(2024, 6, 2, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-06-02", bucket(sunday))
}

func TestBuildTimeSeries(t *testing.T) {
	bucket, err := bucketerFor("day")
	require.NoError(t, err)

	points := []domain.SalePoint{
		point(2024, 6, 10, 12, 100),
		point(2024, 6, 9, 18, 40.006),
		point(2024, 6, 10, 20, 55),
	}

	series := buildTimeSeries(points, bucket)

	require.Len(t, series, 2)

	// Ordenação ascendente pela chave.
	assert.Equal(t, "2024-06-09", series[0].Date)
	assert.Equal(t, 1, series[0].Orders)
	assert.InDelta(t, 40.01, series[0].Revenue, 0.001)

	assert.Equal(t, "2024-06-10", series[1].Date)
	assert.Equal(t, 2, series[1].Orders)
	assert.InDelta(t, 155.0, series[1].Revenue, 0.001)
}
