package entity

import (
	"errors"
	"strings"
	"time"
)

// Status is the closed vocabulary for the lead workflow state. There is no
// transition graph; any status may move to any other.
type Status string

const (
	StatusNew        Status = "New"
	StatusPending    Status = "Pending"
	StatusInProgress Status = "In Progress"
	StatusApproved   Status = "Approved"
	StatusRejected   Status = "Rejected"
)

func AllStatuses() []Status {
	return []Status{StatusNew, StatusPending, StatusInProgress, StatusApproved, StatusRejected}
}

// ParseStatus resolves input against the vocabulary. Matching is
// case-insensitive and tolerates the compact "InProgress" spelling.
func ParseStatus(s string) (Status, bool) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	if normalized == "inprogress" {
		return StatusInProgress, true
	}
	for _, status := range AllStatuses() {
		if normalized == strings.ToLower(string(status)) {
			return status, true
		}
	}
	return "", false
}

// NormalizeStatus is the reader-side guard: an absent or unrecognized stored
// value reads as New. It never writes anything back.
func NormalizeStatus(s string) Status {
	if status, ok := ParseStatus(s); ok {
		return status
	}
	return StatusNew
}

type Lead struct {
	ID                 int       `json:"id"`
	FullName           string    `json:"fullName"`
	Email              string    `json:"email"`
	Phone              string    `json:"phone"`
	Address            string    `json:"address"`
	JobImportance      string    `json:"jobImportance"`
	CustomerExperience string    `json:"customerExperience"`
	ContactTime        string    `json:"contactTime"`
	Status             Status    `json:"status"`
	CreatedAt          time.Time `json:"createdAt"`
}

// Factory
func NewLead(fullName, email, phone, address, jobImportance, customerExperience, contactTime string) (*Lead, error) {
	lead := &Lead{
		FullName:           fullName,
		Email:              email,
		Phone:              phone,
		Address:            address,
		JobImportance:      jobImportance,
		CustomerExperience: customerExperience,
		ContactTime:        contactTime,

		Status: StatusNew,
	}

	if err := lead.Validate(); err != nil {
		return nil, err
	}

	return lead, nil
}

func (l *Lead) Validate() error {
	if strings.TrimSpace(l.FullName) == "" {
		return errors.New("full name is required")
	}
	if strings.TrimSpace(l.Email) == "" {
		return errors.New("email is required")
	}
	if strings.TrimSpace(l.Phone) == "" {
		return errors.New("phone is required")
	}
	if strings.TrimSpace(l.Address) == "" {
		return errors.New("address is required")
	}
	if strings.TrimSpace(l.JobImportance) == "" {
		return errors.New("job importance is required")
	}
	if strings.TrimSpace(l.CustomerExperience) == "" {
		return errors.New("customer experience is required")
	}
	if strings.TrimSpace(l.ContactTime) == "" {
		return errors.New("contact time is required")
	}
	return nil
}

// LeadPatch carries the subset of columns a partial update touches.
// Nil fields are left as they are.
type LeadPatch struct {
	FullName           *string
	Email              *string
	Phone              *string
	Address            *string
	JobImportance      *string
	CustomerExperience *string
	ContactTime        *string
	Status             *Status
}

func (p LeadPatch) IsEmpty() bool {
	return p.FullName == nil && p.Email == nil && p.Phone == nil &&
		p.Address == nil && p.JobImportance == nil && p.CustomerExperience == nil &&
		p.ContactTime == nil && p.Status == nil
}
