package exporting

import (
	"math"
	"strconv"
	"strings"

	"github.com/vfg2006/restaurant-analytics-api/infrastructure/repository"
	"github.com/vfg2006/restaurant-analytics-api/internal/domain"
)

const defaultSalesLimit = 1000

var csvHeader = []string{
	"Sale ID",
	"Date",
	"Time",
	"Channel",
	"Store",
	"Customer",
	"Product",
	"Category",
	"Quantity",
	"Unit Price",
	"Total Price",
	"Discount",
	"Delivery Fee",
	"Total Amount",
	"Production Time (min)",
	"Delivery Time (min)",
	"Status",
}

// Exporter monta o relatório CSV de vendas. O limite se aplica às vendas,
// não às linhas: cada item da venda vira uma linha do arquivo.
type Exporter interface {
	ExportCSV(filters domain.MetricFilters, limit uint64) (string, error)
}

type Service struct {
	saleRepo repository.SaleRepository
}

func NewService(saleRepo repository.SaleRepository) Exporter {
	return &Service{saleRepo: saleRepo}
}

func (s *Service) ExportCSV(filters domain.MetricFilters, limit uint64) (string, error) {
	if limit == 0 {
		limit = defaultSalesLimit
	}

	rows, err := s.saleRepo.ListExportRows(filters, limit)
	if err != nil {
		return "", err
	}

	var builder strings.Builder
	builder.WriteString(strings.Join(csvHeader, ","))

	for _, row := range rows {
		builder.WriteByte('\n')
		builder.WriteString(formatRow(row))
	}

	return builder.String(), nil
}

func formatRow(row *domain.ExportRow) string {
	createdAt := row.CreatedAt.UTC()

	fields := []string{
		strconv.Itoa(row.SaleID),
		createdAt.Format("2006-01-02"),
		createdAt.Format("15:04:05"),
		quote(orUnknown(row.ChannelName)),
		quote(orUnknown(row.StoreName)),
		quote(orUnknown(row.CustomerName)),
		quote(orUnknown(row.ProductName)),
		quote(orUnknown(row.CategoryName)),
		strconv.Itoa(row.Quantity),
		formatAmount(row.BasePrice),
		formatAmount(row.TotalPrice),
		formatAmount(row.TotalDiscount),
		formatAmount(row.DeliveryFee),
		formatAmount(row.TotalAmount),
		strconv.Itoa(secondsToMinutes(row.ProductionSeconds)),
		strconv.Itoa(secondsToMinutes(row.DeliverySeconds)),
		row.Status,
	}

	return strings.Join(fields, ",")
}

// quote envolve o campo em aspas duplas, dobrando aspas internas conforme o
// RFC 4180.
func quote(value string) string {
	return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
}

func orUnknown(value *string) string {
	if value == nil || *value == "" {
		return "Unknown"
	}
	return *value
}

func formatAmount(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

func secondsToMinutes(seconds *int) int {
	if seconds == nil {
		return 0
	}
	return int(math.Round(float64(*seconds) / 60))
}
