package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastellr/bizpulse-api/internal/application/dto"
	"github.com/jcastellr/bizpulse-api/internal/application/usecase"
	"github.com/jcastellr/bizpulse-api/internal/domain"
)

func newInsightUC(svc *fakeInsightService) *usecase.InsightUseCase {
	analytics := usecase.NewAnalyticsUseCase(&fakeAnalyticsRepo{revenue: decimal.NewFromInt(100)})
	return usecase.NewInsightUseCase(svc, analytics, nil)
}

func TestChat_RespuestaDelColaborador(t *testing.T) {
	uc := newInsightUC(&fakeInsightService{reply: "vende más widgets"})

	out, err := uc.Chat(context.Background(), "user-a", dto.ChatRequest{Message: "¿qué vendo?"})
	require.NoError(t, err)
	assert.Equal(t, "vende más widgets", out.Response)
	assert.False(t, out.Fallback)
}

// El fallo del upstream degrada a texto de fallback, nunca a error duro.
func TestChat_FallbackCuandoUpstreamFalla(t *testing.T) {
	uc := newInsightUC(&fakeInsightService{err: errUpstream})

	out, err := uc.Chat(context.Background(), "user-a", dto.ChatRequest{Message: "hola"})
	require.NoError(t, err)
	assert.True(t, out.Fallback)
	assert.Contains(t, out.Response, "I apologize")
}

func TestChat_MensajeVacio(t *testing.T) {
	uc := newInsightUC(&fakeInsightService{reply: "x"})

	_, err := uc.Chat(context.Background(), "user-a", dto.ChatRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestInsights_FallbackConYSinQuery(t *testing.T) {
	uc := newInsightUC(&fakeInsightService{err: errUpstream})
	ctx := context.Background()

	conQuery, err := uc.Insights(ctx, "user-a", dto.InsightsRequest{Query: "ventas por mes"})
	require.NoError(t, err)
	assert.True(t, conQuery.Fallback)
	assert.Contains(t, conQuery.Response, "analyzing your data")

	sinQuery, err := uc.Insights(ctx, "user-a", dto.InsightsRequest{})
	require.NoError(t, err)
	assert.True(t, sinQuery.Fallback)
	assert.Contains(t, sinQuery.Response, "analyzing your business data")
}

func TestAnalyticsSummary_Agregados(t *testing.T) {
	analytics := usecase.NewAnalyticsUseCase(&fakeAnalyticsRepo{revenue: decimal.NewFromInt(100)})

	out, err := analytics.Summary(context.Background(), "user-a")
	require.NoError(t, err)
	assert.True(t, out.TotalRevenue.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, int64(2), out.TotalSales)
	assert.Equal(t, int64(4), out.TotalProducts)
	assert.Equal(t, int64(1), out.LowStockCount)
	assert.Equal(t, int64(7), out.TotalCustomers)
	require.Len(t, out.MonthlyRevenue, 1)
	assert.Equal(t, "2026-08", out.MonthlyRevenue[0].Month)
}
