package domain

import "time"

// MetricFilters é o filtro comum a todas as operações de agregação:
// período fechado [Start, End] e, opcionalmente, canal e/ou loja.
type MetricFilters struct {
	Start     time.Time
	End       time.Time
	ChannelID *int
	StoreID   *int
}

// PreviousPeriod devolve o filtro equivalente para o período imediatamente
// anterior, com a mesma duração, usado no cálculo de crescimento.
func (f MetricFilters) PreviousPeriod() MetricFilters {
	duration := f.End.Sub(f.Start)
	return MetricFilters{
		Start:     f.Start.Add(-duration),
		End:       f.Start,
		ChannelID: f.ChannelID,
		StoreID:   f.StoreID,
	}
}

// SalesAggregate é o resultado bruto da agregação de vendas de um período.
type SalesAggregate struct {
	TotalRevenue      float64
	TotalOrders       int
	AverageTicket     float64
	TotalDiscount     float64
	TotalDeliveryFee  float64
	AvgProductionSecs float64
	AvgDeliverySecs   float64
}

type Period struct {
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

type OverviewMetrics struct {
	TotalRevenue          float64 `json:"totalRevenue"`
	TotalOrders           int     `json:"totalOrders"`
	AverageTicket         float64 `json:"averageTicket"`
	TotalDiscount         float64 `json:"totalDiscount"`
	AverageProductionTime int     `json:"averageProductionTime"` // em segundos
	AverageDeliveryTime   int     `json:"averageDeliveryTime"`   // em segundos
}

type OverviewGrowth struct {
	RevenueGrowth float64 `json:"revenueGrowth"`
	OrdersGrowth  float64 `json:"ordersGrowth"`
}

type OverviewResponse struct {
	CurrentPeriod Period          `json:"currentPeriod"`
	Metrics       OverviewMetrics `json:"metrics"`
	Growth        OverviewGrowth  `json:"growth"`
}

type TopProduct struct {
	ProductID     int     `json:"productId"`
	ProductName   string  `json:"productName"`
	CategoryName  string  `json:"categoryName"`
	TotalQuantity int     `json:"totalQuantity"`
	TotalRevenue  float64 `json:"totalRevenue"`
}

type ChannelSales struct {
	ChannelID     int     `json:"channelId"`
	ChannelName   string  `json:"channelName"`
	ChannelType   string  `json:"channelType"`
	TotalRevenue  float64 `json:"totalRevenue"`
	TotalOrders   int     `json:"totalOrders"`
	AverageTicket float64 `json:"averageTicket"`
}

type StoreSales struct {
	StoreID       int     `json:"storeId"`
	StoreName     string  `json:"storeName"`
	City          string  `json:"city"`
	TotalRevenue  float64 `json:"totalRevenue"`
	TotalOrders   int     `json:"totalOrders"`
	AverageTicket float64 `json:"averageTicket"`
}

type HeatmapHour struct {
	Hour    int     `json:"hour"`
	Orders  int     `json:"orders"`
	Revenue float64 `json:"revenue"`
}

type HeatmapDay struct {
	Day   string        `json:"day"`
	Hours []HeatmapHour `json:"hours"`
}

type TimeSeriesPoint struct {
	Date    string  `json:"date"`
	Orders  int     `json:"orders"`
	Revenue float64 `json:"revenue"`
}

type CategorySales struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}
