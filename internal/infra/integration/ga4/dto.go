package ga4

// Wire DTOs for the GA4 Data API v1beta runReport call. The response rows are
// positional; nothing outside this package ever sees them that way.

type dateRange struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type nameRef struct {
	Name string `json:"name"`
}

type runReportRequest struct {
	DateRanges []dateRange `json:"dateRanges"`
	Dimensions []nameRef   `json:"dimensions"`
	Metrics    []nameRef   `json:"metrics"`
}

type dimensionHeader struct {
	Name string `json:"name"`
}

type metricHeader struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type rowValue struct {
	Value string `json:"value"`
}

type reportRow struct {
	DimensionValues []rowValue `json:"dimensionValues"`
	MetricValues    []rowValue `json:"metricValues"`
}

type runReportResponse struct {
	DimensionHeaders []dimensionHeader `json:"dimensionHeaders"`
	MetricHeaders    []metricHeader    `json:"metricHeaders"`
	Rows             []reportRow       `json:"rows"`
	RowCount         int               `json:"rowCount"`
}

// ReportRow is the name-keyed row handed to the rest of the system.
type ReportRow struct {
	Dimensions map[string]string
	Metrics    map[string]float64
}

func (r ReportRow) Dimension(name string) string {
	return r.Dimensions[name]
}

func (r ReportRow) Metric(name string) float64 {
	return r.Metrics[name]
}
