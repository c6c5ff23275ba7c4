package domain

import "time"

// SaleStatusCompleted é o único status considerado pelas análises.
const SaleStatusCompleted = "COMPLETED"

type Sale struct {
	ID                int       `json:"id"`
	CreatedAt         time.Time `json:"createdAt"`
	TotalAmount       float64   `json:"totalAmount"`
	TotalDiscount     float64   `json:"totalDiscount"`
	DeliveryFee       float64   `json:"deliveryFee"`
	ProductionSeconds *int      `json:"productionSeconds"`
	DeliverySeconds   *int      `json:"deliverySeconds"`
	Status            string    `json:"status"`
	ChannelID         int       `json:"channelId"`
	StoreID           int       `json:"storeId"`
	CustomerID        *int      `json:"customerId"`
	CustomerName      *string   `json:"customerName"`
}

type ProductSale struct {
	ID         int     `json:"id"`
	SaleID     int     `json:"saleId"`
	ProductID  int     `json:"productId"`
	Quantity   int     `json:"quantity"`
	BasePrice  float64 `json:"basePrice"`
	TotalPrice float64 `json:"totalPrice"`
}

// SalePoint é a projeção mínima de uma venda usada pelos agrupamentos
// em memória (heatmap, série temporal e distribuição horária dos insights).
type SalePoint struct {
	CreatedAt   time.Time
	TotalAmount float64
}

// ExportRow é uma linha achatada (venda × item) do export CSV.
type ExportRow struct {
	SaleID            int
	CreatedAt         time.Time
	ChannelName       *string
	StoreName         *string
	CustomerName      *string
	ProductName       *string
	CategoryName      *string
	Quantity          int
	BasePrice         float64
	TotalPrice        float64
	TotalDiscount     float64
	DeliveryFee       float64
	TotalAmount       float64
	ProductionSeconds *int
	DeliverySeconds   *int
	Status            string
}
