package insighting

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/vfg2006/restaurant-analytics-api/infrastructure/repository"
	"github.com/vfg2006/restaurant-analytics-api/internal/domain"
	"github.com/vfg2006/restaurant-analytics-api/pkg/utils"
)

const (
	topProductsSample      = 5
	upsellTicketThreshold  = 50.0
	growthOrdersThreshold  = 100
	concentrationThreshold = 60.0
)

// Insighter gera os insights textuais do período filtrado. Os insights são
// recalculados a cada chamada, nada fica persistido.
type Insighter interface {
	Generate(filters domain.MetricFilters) (*domain.InsightsResponse, error)
}

type Service struct {
	saleRepo        repository.SaleRepository
	productSaleRepo repository.ProductSaleRepository
}

func NewService(
	saleRepo repository.SaleRepository,
	productSaleRepo repository.ProductSaleRepository,
) Insighter {
	return &Service{
		saleRepo:        saleRepo,
		productSaleRepo: productSaleRepo,
	}
}

// Generate dispara as quatro consultas de apoio em paralelo e avalia as
// regras em ordem fixa. Cada regra emite no máximo um insight.
func (s *Service) Generate(filters domain.MetricFilters) (*domain.InsightsResponse, error) {
	var (
		aggregate *domain.SalesAggregate
		products  []*domain.TopProduct
		channels  []*domain.ChannelSales
		points    []domain.SalePoint

		aggregateErr, productsErr, channelsErr, pointsErr error
	)

	wg := sync.WaitGroup{}
	wg.Add(4)

	go func() {
		defer wg.Done()
		aggregate, aggregateErr = s.saleRepo.Aggregate(filters)
	}()

	go func() {
		defer wg.Done()
		products, productsErr = s.productSaleRepo.TopProducts(filters, topProductsSample)
	}()

	go func() {
		defer wg.Done()
		channels, channelsErr = s.saleRepo.GroupByChannel(filters)
	}()

	go func() {
		defer wg.Done()
		points, pointsErr = s.saleRepo.ListPoints(filters)
	}()

	wg.Wait()

	for _, err := range []error{aggregateErr, productsErr, channelsErr, pointsErr} {
		if err != nil {
			return nil, err
		}
	}

	insights := make([]*domain.Insight, 0, 7)
	insights = append(insights, summaryInsight(aggregate))

	if insight := topProductInsight(products); insight != nil {
		insights = append(insights, insight)
	}
	if insight := channelInsight(channels, aggregate.TotalRevenue); insight != nil {
		insights = append(insights, insight)
	}
	if insight := peakHoursInsight(points); insight != nil {
		insights = append(insights, insight)
	}
	if insight := opportunityInsight(aggregate.AverageTicket); insight != nil {
		insights = append(insights, insight)
	}
	if insight := growthInsight(aggregate.TotalOrders, filters); insight != nil {
		insights = append(insights, insight)
	}
	if insight := concentrationInsight(products, aggregate.TotalRevenue); insight != nil {
		insights = append(insights, insight)
	}

	response := &domain.InsightsResponse{
		Insights:    insights,
		GeneratedAt: time.Now().UTC(),
	}
	response.Period.Start = filters.Start
	response.Period.End = filters.End

	return response, nil
}

func summaryInsight(aggregate *domain.SalesAggregate) *domain.Insight {
	return &domain.Insight{
		Type:  "summary",
		Icon:  "📊",
		Title: "Visão Geral de Desempenho",
		Description: fmt.Sprintf(
			"Foram gerados %s pedidos totalizando R$ %s com ticket médio de R$ %s.",
			utils.FormatInt(aggregate.TotalOrders),
			utils.FormatBRL(aggregate.TotalRevenue),
			utils.FormatBRL(aggregate.AverageTicket),
		),
		Priority: domain.InsightPriorityHigh,
	}
}

func topProductInsight(products []*domain.TopProduct) *domain.Insight {
	if len(products) == 0 {
		return nil
	}

	top := products[0]

	return &domain.Insight{
		Type:  "top_product",
		Icon:  "🏆",
		Title: "Produto Mais Vendido",
		Description: fmt.Sprintf(
			"%q é seu produto estrela com %d unidades vendidas, gerando R$ %s em receita.",
			top.ProductName,
			top.TotalQuantity,
			utils.FormatBRL(top.TotalRevenue),
		),
		Priority: domain.InsightPriorityHigh,
		Data: map[string]any{
			"productName": top.ProductName,
			"quantity":    top.TotalQuantity,
			"revenue":     top.TotalRevenue,
		},
	}
}

func channelInsight(channels []*domain.ChannelSales, totalRevenue float64) *domain.Insight {
	if len(channels) <= 1 || totalRevenue == 0 {
		return nil
	}

	// A consulta já devolve os canais ordenados por receita decrescente.
	top := channels[0]
	share := fmt.Sprintf("%.1f", top.TotalRevenue/totalRevenue*100)

	return &domain.Insight{
		Type:  "channel_performance",
		Icon:  "📱",
		Title: "Canal de Vendas Líder",
		Description: fmt.Sprintf(
			"%s é seu canal líder, responsável por %s%% da receita total (R$ %s).",
			top.ChannelName,
			share,
			utils.FormatBRL(top.TotalRevenue),
		),
		Priority: domain.InsightPriorityHigh,
		Data: map[string]any{
			"channelName": top.ChannelName,
			"percentage":  share,
			"revenue":     top.TotalRevenue,
		},
	}
}

// peakHoursInsight elege as três horas com mais pedidos. Em caso de empate
// prevalece a hora mais cedo.
func peakHoursInsight(points []domain.SalePoint) *domain.Insight {
	if len(points) == 0 {
		return nil
	}

	counts := make(map[int]int)
	for _, point := range points {
		counts[point.CreatedAt.Hour()]++
	}

	hours := make([]int, 0, len(counts))
	for hour := range counts {
		hours = append(hours, hour)
	}

	sort.SliceStable(hours, func(i, j int) bool {
		if counts[hours[i]] != counts[hours[j]] {
			return counts[hours[i]] > counts[hours[j]]
		}
		return hours[i] < hours[j]
	})

	if len(hours) > 3 {
		hours = hours[:3]
	}

	labels := make([]string, 0, len(hours))
	orderCounts := make([]int, 0, len(hours))
	for _, hour := range hours {
		labels = append(labels, fmt.Sprintf("%d:00-%d:00", hour, hour+1))
		orderCounts = append(orderCounts, counts[hour])
	}

	return &domain.Insight{
		Type:  "peak_hours",
		Icon:  "⏰",
		Title: "Horários de Pico",
		Description: fmt.Sprintf(
			"Seus horários mais movimentados são %s. Considere otimizar alocação de pessoal e estoque durante esses períodos.",
			strings.Join(labels, ", "),
		),
		Priority: domain.InsightPriorityMedium,
		Data: map[string]any{
			"peakHours":   hours,
			"orderCounts": orderCounts,
		},
	}
}

func opportunityInsight(averageTicket float64) *domain.Insight {
	// Ticket exatamente 50 não emite o insight.
	if averageTicket <= 0 || averageTicket >= upsellTicketThreshold {
		return nil
	}

	return &domain.Insight{
		Type:  "opportunity",
		Icon:  "💡",
		Title: "Oportunidade de Upsell",
		Description: fmt.Sprintf(
			"Ticket médio é R$ %s. Considere ofertas de combo ou produtos complementares para aumentar o valor do pedido.",
			utils.FormatBRL(averageTicket),
		),
		Priority: domain.InsightPriorityMedium,
	}
}

func growthInsight(totalOrders int, filters domain.MetricFilters) *domain.Insight {
	if totalOrders <= growthOrdersThreshold {
		return nil
	}

	days := math.Ceil(filters.End.Sub(filters.Start).Hours() / 24)
	if days < 1 {
		days = 1
	}
	ordersPerDay := float64(totalOrders) / days

	var assessment string
	switch {
	case ordersPerDay > 50:
		assessment = "Excelente velocidade de vendas!"
	case ordersPerDay > 20:
		assessment = "Bom desempenho constante."
	default:
		assessment = "Considere iniciativas de marketing para aumentar as vendas."
	}

	return &domain.Insight{
		Type:  "growth",
		Icon:  "📈",
		Title: "Volume de Vendas",
		Description: fmt.Sprintf(
			"Média de %.1f pedidos por dia. %s",
			ordersPerDay,
			assessment,
		),
		Priority: domain.InsightPriorityLow,
	}
}

func concentrationInsight(products []*domain.TopProduct, totalRevenue float64) *domain.Insight {
	if len(products) < 3 || totalRevenue == 0 {
		return nil
	}

	var top3Revenue float64
	for _, product := range products[:3] {
		top3Revenue += product.TotalRevenue
	}

	share := top3Revenue / totalRevenue * 100
	if share <= concentrationThreshold {
		return nil
	}

	return &domain.Insight{
		Type:  "risk",
		Icon:  "⚠️",
		Title: "Concentração de Receita",
		Description: fmt.Sprintf(
			"Os 3 principais produtos representam %.1f%% da receita. Considere diversificar seu mix de produtos para reduzir a dependência.",
			share,
		),
		Priority: domain.InsightPriorityMedium,
	}
}
