package usecase

import (
	"context"
	"strings"
	"unicode"
)

// AnalyticsService reshapes GA4 report rows into dashboard aggregates.
type AnalyticsService struct {
	Provider AnalyticsProviderInterface
}

func NewAnalyticsService(provider AnalyticsProviderInterface) *AnalyticsService {
	return &AnalyticsService{Provider: provider}
}

// Overview runs a single pass over the report rows. It returns either the
// complete aggregate or an UpstreamError, never a partially filled one.
func (s *AnalyticsService) Overview(ctx context.Context) (*AnalyticsOverview, error) {
	rows, err := s.Provider.FetchReport(ctx)
	if err != nil {
		return nil, &UpstreamError{Service: "ga4", Err: err}
	}

	overview := &AnalyticsOverview{
		BySource: make(map[string]int64),
		// The dashboard always shows the three device tiles, even at zero.
		ByDevice:  map[string]int64{"Desktop": 0, "Mobile": 0, "Tablet": 0},
		ByCountry: make(map[string]int64),
	}

	var durationSum float64
	var durationRows int64

	for _, row := range rows {
		overview.ActiveUsers += int64(row.Metric("activeUsers"))
		overview.NewUsers += int64(row.Metric("newUsers"))
		overview.Sessions += int64(row.Metric("sessions"))
		overview.PageViews += int64(row.Metric("screenPageViews"))
		overview.EventCount += int64(row.Metric("eventCount"))

		if source := row.Dimension("sessionSource"); source != "" {
			overview.BySource[source]++
		}
		if device := row.Dimension("deviceCategory"); device != "" {
			overview.ByDevice[titleCase(device)]++
		}
		if country := row.Dimension("country"); country != "" {
			overview.ByCountry[country]++
		}

		if duration := row.Metric("averageSessionDuration"); duration > 0 {
			durationSum += duration
			durationRows++
		}
	}

	// Guard the divide: an empty report means 0, not NaN.
	if durationRows > 0 {
		overview.AvgSessionDuration = durationSum / float64(durationRows)
	}

	return overview, nil
}

// titleCase folds GA4's lowercase device categories ("desktop") onto the
// dashboard bucket names ("Desktop").
func titleCase(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
