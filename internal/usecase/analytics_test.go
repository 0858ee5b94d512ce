package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/bytewerk/leadboard/internal/infra/integration/ga4"
	"github.com/bytewerk/leadboard/internal/usecase"
)

func reportRow(device, source, country string, metrics map[string]float64) ga4.ReportRow {
	return ga4.ReportRow{
		Dimensions: map[string]string{
			"deviceCategory": device,
			"sessionSource":  source,
			"country":        country,
		},
		Metrics: metrics,
	}
}

func TestOverviewDeviceBuckets(t *testing.T) {
	provider := new(MockAnalyticsProvider)
	provider.On("FetchReport", mock.Anything).Return([]ga4.ReportRow{
		reportRow("Desktop", "google", "Germany", nil),
		reportRow("Mobile", "google", "Germany", nil),
		reportRow("Desktop", "direct", "Austria", nil),
	}, nil)

	service := usecase.NewAnalyticsService(provider)

	overview, err := service.Overview(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, map[string]int64{"Desktop": 2, "Mobile": 1, "Tablet": 0}, overview.ByDevice)
}

func TestOverviewNormalizesDeviceCase(t *testing.T) {
	provider := new(MockAnalyticsProvider)
	provider.On("FetchReport", mock.Anything).Return([]ga4.ReportRow{
		reportRow("desktop", "google", "Germany", nil),
		reportRow("tablet", "google", "Germany", nil),
	}, nil)

	service := usecase.NewAnalyticsService(provider)

	overview, err := service.Overview(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(1), overview.ByDevice["Desktop"])
	assert.Equal(t, int64(1), overview.ByDevice["Tablet"])
}

func TestOverviewSumsAndCounts(t *testing.T) {
	provider := new(MockAnalyticsProvider)
	provider.On("FetchReport", mock.Anything).Return([]ga4.ReportRow{
		reportRow("Desktop", "google", "Germany", map[string]float64{
			"activeUsers":            10,
			"newUsers":               4,
			"sessions":               12,
			"screenPageViews":        30,
			"eventCount":             100,
			"averageSessionDuration": 120,
		}),
		reportRow("Mobile", "newsletter", "Austria", map[string]float64{
			"activeUsers":            5,
			"newUsers":               1,
			"sessions":               6,
			"screenPageViews":        9,
			"eventCount":             40,
			"averageSessionDuration": 60,
		}),
	}, nil)

	service := usecase.NewAnalyticsService(provider)

	overview, err := service.Overview(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(15), overview.ActiveUsers)
	assert.Equal(t, int64(5), overview.NewUsers)
	assert.Equal(t, int64(18), overview.Sessions)
	assert.Equal(t, int64(39), overview.PageViews)
	assert.Equal(t, int64(140), overview.EventCount)
	assert.Equal(t, 90.0, overview.AvgSessionDuration)
	assert.Equal(t, int64(1), overview.BySource["google"])
	assert.Equal(t, int64(1), overview.BySource["newsletter"])
	assert.Equal(t, int64(1), overview.ByCountry["Germany"])
}

func TestOverviewMeanSkipsZeroDurationRows(t *testing.T) {
	provider := new(MockAnalyticsProvider)
	provider.On("FetchReport", mock.Anything).Return([]ga4.ReportRow{
		reportRow("Desktop", "google", "Germany", map[string]float64{"averageSessionDuration": 0}),
		reportRow("Mobile", "google", "Germany", map[string]float64{"averageSessionDuration": 30}),
	}, nil)

	service := usecase.NewAnalyticsService(provider)

	overview, err := service.Overview(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 30.0, overview.AvgSessionDuration)
}

func TestOverviewEmptyReportIsZeroNotNaN(t *testing.T) {
	provider := new(MockAnalyticsProvider)
	provider.On("FetchReport", mock.Anything).Return([]ga4.ReportRow{}, nil)

	service := usecase.NewAnalyticsService(provider)

	overview, err := service.Overview(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 0.0, overview.AvgSessionDuration)
	assert.Equal(t, map[string]int64{"Desktop": 0, "Mobile": 0, "Tablet": 0}, overview.ByDevice)
	assert.Empty(t, overview.BySource)
}

func TestOverviewFetchFailure(t *testing.T) {
	provider := new(MockAnalyticsProvider)
	provider.On("FetchReport", mock.Anything).Return(nil, errors.New("boom"))

	service := usecase.NewAnalyticsService(provider)

	overview, err := service.Overview(context.Background())

	assert.Nil(t, overview)
	assert.True(t, usecase.IsUpstreamError(err))
}
