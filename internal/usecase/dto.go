package usecase

type CreateLeadInput struct {
	FullName           string `json:"fullName"`
	Email              string `json:"email"`
	Phone              string `json:"phone"`
	Address            string `json:"address"`
	JobImportance      string `json:"jobImportance"`
	CustomerExperience string `json:"customerExperience"`
	ContactTime        string `json:"contactTime"`
}

// UpdateLeadInput is a partial update: nil fields are not touched.
type UpdateLeadInput struct {
	FullName           *string `json:"fullName,omitempty"`
	Email              *string `json:"email,omitempty"`
	Phone              *string `json:"phone,omitempty"`
	Address            *string `json:"address,omitempty"`
	JobImportance      *string `json:"jobImportance,omitempty"`
	CustomerExperience *string `json:"customerExperience,omitempty"`
	ContactTime        *string `json:"contactTime,omitempty"`
	Status             *string `json:"status,omitempty"`
}

type BulkDeleteFailure struct {
	ID     int    `json:"id"`
	Reason string `json:"reason"`
}

// BulkDeleteResult reports each id independently. Failures never roll back
// sibling deletes.
type BulkDeleteResult struct {
	Deleted []int               `json:"deleted"`
	Failed  []BulkDeleteFailure `json:"failed"`
}

// AnalyticsOverview is the fully-formed dashboard aggregate. It is either
// complete or not returned at all.
type AnalyticsOverview struct {
	ActiveUsers        int64            `json:"activeUsers"`
	NewUsers           int64            `json:"newUsers"`
	Sessions           int64            `json:"sessions"`
	PageViews          int64            `json:"pageViews"`
	EventCount         int64            `json:"eventCount"`
	AvgSessionDuration float64          `json:"avgSessionDuration"`
	BySource           map[string]int64 `json:"bySource"`
	ByDevice           map[string]int64 `json:"byDevice"`
	ByCountry          map[string]int64 `json:"byCountry"`
}
