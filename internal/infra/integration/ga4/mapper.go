package ga4

import (
	"fmt"
	"strconv"
)

// mapRows converts the API's positional rows into name-keyed ones using the
// response's own headers. Any header/value count mismatch means the response
// is malformed and the whole fetch fails.
func mapRows(resp *runReportResponse) ([]ReportRow, error) {
	rows := make([]ReportRow, 0, len(resp.Rows))

	for i, raw := range resp.Rows {
		if len(raw.DimensionValues) != len(resp.DimensionHeaders) {
			return nil, fmt.Errorf("row %d: %d dimension values for %d headers",
				i, len(raw.DimensionValues), len(resp.DimensionHeaders))
		}
		if len(raw.MetricValues) != len(resp.MetricHeaders) {
			return nil, fmt.Errorf("row %d: %d metric values for %d headers",
				i, len(raw.MetricValues), len(resp.MetricHeaders))
		}

		row := ReportRow{
			Dimensions: make(map[string]string, len(resp.DimensionHeaders)),
			Metrics:    make(map[string]float64, len(resp.MetricHeaders)),
		}
		for j, header := range resp.DimensionHeaders {
			row.Dimensions[header.Name] = raw.DimensionValues[j].Value
		}
		for j, header := range resp.MetricHeaders {
			value, err := strconv.ParseFloat(raw.MetricValues[j].Value, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d: metric %s: %w", i, header.Name, err)
			}
			row.Metrics[header.Name] = value
		}

		rows = append(rows, row)
	}

	return rows, nil
}
