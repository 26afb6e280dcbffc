package model

import "time"

// RequestStatus represents the review outcome of a gate pass request.
type RequestStatus string

const (
	StatusPending  RequestStatus = "Pending"
	StatusApproved RequestStatus = "Approved"
	StatusRejected RequestStatus = "Rejected"
)

// IsReviewOutcome reports whether s is one of the two allowed review outcomes.
func (s RequestStatus) IsReviewOutcome() bool {
	return s == StatusApproved || s == StatusRejected
}

// GatePassRequest is the central entity of the workflow. Status and the used
// flag are independent one-shot axes: status moves Pending -> Approved or
// Rejected exactly once, used moves false -> true exactly once.
type GatePassRequest struct {
	ID               string        `json:"id"`
	StudentID        string        `json:"studentId"`
	StudentName      string        `json:"studentName"`
	Reason           string        `json:"reason"`
	ReturnTime       string        `json:"returnTime"`
	Status           RequestStatus `json:"status"`
	Timestamp        time.Time     `json:"timestamp"`
	ModeratorID      *string       `json:"moderatorId"`
	ModeratorName    *string       `json:"moderatorName"`
	ModeratorRemarks *string       `json:"moderatorRemarks"`
	ReviewedAt       *time.Time    `json:"reviewedAt"`
	Used             bool          `json:"used"`
	UsedAt           *time.Time    `json:"usedAt"`
}

// Dataset is the unit of persistence: the entire collection of users and
// requests, loaded and saved as one document.
type Dataset struct {
	Users    []User            `json:"users"`
	Requests []GatePassRequest `json:"requests"`
}

// NewDataset returns an empty dataset with non-nil slices so it marshals as
// {"users":[],"requests":[]} rather than nulls.
func NewDataset() *Dataset {
	return &Dataset{Users: []User{}, Requests: []GatePassRequest{}}
}

// FindRequest returns a pointer into the dataset for the request with the
// given id, or nil if absent.
func (d *Dataset) FindRequest(id string) *GatePassRequest {
	for i := range d.Requests {
		if d.Requests[i].ID == id {
			return &d.Requests[i]
		}
	}
	return nil
}

// Stats holds aggregate counts over the full request collection.
type Stats struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
	Today    int `json:"today"`
	Used     int `json:"used"`
}
