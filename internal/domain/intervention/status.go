package intervention

import "fmt"

// Status is derived from the answer and satisfaction fields; it is never stored.
type Status string

const (
	StatusPending  Status = "en_attente"
	StatusAnswered Status = "repondu"
	StatusClosed   Status = "termine"
)

// DeriveStatus maps the answer and rating to a lifecycle status.
func DeriveStatus(reponse *string, satisfaction *int) Status {
	if reponse == nil {
		return StatusPending
	}
	if satisfaction == nil {
		return StatusAnswered
	}
	return StatusClosed
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusAnswered, StatusClosed:
		return true
	}
	return false
}

// ParseStatusFilter reads the status query parameter. "all" and "" apply no
// filter and yield nil.
func ParseStatusFilter(value string) (*Status, error) {
	if value == "" || value == "all" {
		return nil, nil
	}
	s := Status(value)
	if !s.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", value)
	}
	return &s, nil
}
