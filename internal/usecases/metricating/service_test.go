package metricating

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/restaurant-analytics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/restaurant-analytics-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func testFilters() domain.MetricFilters {
	return domain.MetricFilters{
		Start: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestService_Overview(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	saleRepo := mocks.NewMockSaleRepository(ctrl)
	service := NewService(saleRepo, mocks.NewMockProductSaleRepository(ctrl), mocks.NewMockDimensionRepository(ctrl))

	filters := testFilters()

	saleRepo.EXPECT().Aggregate(filters).Return(&domain.SalesAggregate{
		TotalRevenue:      1000.456,
		TotalOrders:       50,
		AverageTicket:     20.009,
		TotalDiscount:     10.004,
		AvgProductionSecs: 600.4,
		AvgDeliverySecs:   900.6,
	}, nil)

	saleRepo.EXPECT().Aggregate(filters.PreviousPeriod()).Return(&domain.SalesAggregate{
		TotalRevenue: 800,
		TotalOrders:  40,
	}, nil)

	overview, err := service.Overview(filters)
	require.NoError(t, err)

	assert.Equal(t, filters.Start, overview.CurrentPeriod.StartDate)
	assert.Equal(t, filters.End, overview.CurrentPeriod.EndDate)

	assert.InDelta(t, 1000.46, overview.Metrics.TotalRevenue, 0.001)
	assert.Equal(t, 50, overview.Metrics.TotalOrders)
	assert.InDelta(t, 20.01, overview.Metrics.AverageTicket, 0.001)
	assert.InDelta(t, 10.0, overview.Metrics.TotalDiscount, 0.001)
	assert.Equal(t, 600, overview.Metrics.AverageProductionTime)
	assert.Equal(t, 901, overview.Metrics.AverageDeliveryTime)

	assert.InDelta(t, 25.06, overview.Growth.RevenueGrowth, 0.001)
	assert.InDelta(t, 25.0, overview.Growth.OrdersGrowth, 0.001)
}

func TestService_Overview_PeriodoAnteriorVazio(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	saleRepo := mocks.NewMockSaleRepository(ctrl)
	service := NewService(saleRepo, mocks.NewMockProductSaleRepository(ctrl), mocks.NewMockDimensionRepository(ctrl))

	filters := testFilters()

	saleRepo.EXPECT().Aggregate(filters).Return(&domain.SalesAggregate{
		TotalRevenue: 500,
		TotalOrders:  12,
	}, nil)

	saleRepo.EXPECT().Aggregate(filters.PreviousPeriod()).Return(&domain.SalesAggregate{}, nil)

	overview, err := service.Overview(filters)
	require.NoError(t, err)

	// Sem base de comparação o crescimento reportado é zero, não infinito.
	assert.Zero(t, overview.Growth.RevenueGrowth)
	assert.Zero(t, overview.Growth.OrdersGrowth)
}

func TestService_Overview_ErroNaConsulta(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	saleRepo := mocks.NewMockSaleRepository(ctrl)
	service := NewService(saleRepo, mocks.NewMockProductSaleRepository(ctrl), mocks.NewMockDimensionRepository(ctrl))

	filters := testFilters()
	boom := errors.New("conexão perdida")

	saleRepo.EXPECT().Aggregate(filters).Return(nil, boom)
	saleRepo.EXPECT().Aggregate(filters.PreviousPeriod()).Return(&domain.SalesAggregate{}, nil)

	_, err := service.Overview(filters)
	assert.ErrorIs(t, err, boom)
}

func TestService_TopProducts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	productSaleRepo := mocks.NewMockProductSaleRepository(ctrl)
	service := NewService(mocks.NewMockSaleRepository(ctrl), productSaleRepo, mocks.NewMockDimensionRepository(ctrl))

	filters := testFilters()

	t.Run("limite zero assume o padrão de 10", func(t *testing.T) {
		productSaleRepo.EXPECT().TopProducts(filters, uint64(10)).Return([]*domain.TopProduct{
			{ProductID: 1, ProductName: "Pizza Calabresa", TotalRevenue: 1200.006},
		}, nil)

		products, err := service.TopProducts(filters, 0)
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.InDelta(t, 1200.01, products[0].TotalRevenue, 0.001)
	})

	t.Run("limite explícito é repassado", func(t *testing.T) {
		productSaleRepo.EXPECT().TopProducts(filters, uint64(3)).Return(nil, nil)

		_, err := service.TopProducts(filters, 3)
		require.NoError(t, err)
	})
}

func TestService_FilterOptions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dimensionRepo := mocks.NewMockDimensionRepository(ctrl)
	service := NewService(mocks.NewMockSaleRepository(ctrl), mocks.NewMockProductSaleRepository(ctrl), dimensionRepo)

	dimensionRepo.EXPECT().ListChannels().Return([]*domain.Channel{{ID: 1, Name: "iFood"}}, nil)
	dimensionRepo.EXPECT().ListActiveStores().Return([]*domain.Store{{ID: 2, Name: "Unidade Centro"}}, nil)
	dimensionRepo.EXPECT().ListCategories().Return([]*domain.Category{{ID: 3, Name: "Pizzas"}}, nil)

	options, err := service.FilterOptions()
	require.NoError(t, err)

	assert.Len(t, options.Channels, 1)
	assert.Len(t, options.Stores, 1)
	assert.Len(t, options.Categories, 1)
}

func TestService_FilterOptions_FalhaEmUmaConsulta(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dimensionRepo := mocks.NewMockDimensionRepository(ctrl)
	service := NewService(mocks.NewMockSaleRepository(ctrl), mocks.NewMockProductSaleRepository(ctrl), dimensionRepo)

	boom := errors.New("timeout")
	dimensionRepo.EXPECT().ListChannels().Return(nil, nil)
	dimensionRepo.EXPECT().ListActiveStores().Return(nil, boom)
	dimensionRepo.EXPECT().ListCategories().Return(nil, nil)

	_, err := service.FilterOptions()
	assert.ErrorIs(t, err, boom)
}
