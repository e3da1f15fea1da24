package models

// Status is the workflow state of an application. The store does not
// constrain the column, so values outside the three known ones are kept
// verbatim and handled through the generic fallback message.
type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

// Known reports whether the status is one of the three values every
// consumer handles explicitly.
func (s Status) Known() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

func (s Status) String() string { return string(s) }
