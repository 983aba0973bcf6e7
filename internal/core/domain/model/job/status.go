package job

import (
	"fmt"
	"strings"

	"jobboard/internal/pkg/errs"
)

// Status is the lifecycle state of a job posting.
//
//	Open ──> Closed
//
// Closed is final: a closed posting cannot be reopened or edited.
type Status int

const (
	// Unknown catches uninitialized Status values.
	Unknown Status = iota

	// Open postings accept applications and are listed as active.
	Open

	// Closed postings were closed explicitly or by their application deadline.
	Closed
)

var statusNames = map[Status]string{
	Open:   "open",
	Closed: "closed",
}

// ParseStatus maps the wire/database name back to a Status.
func ParseStatus(s string) (Status, error) {
	for status, name := range statusNames {
		if strings.EqualFold(name, s) {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

// Close transitions Open to Closed.
func (s Status) Close() (Status, error) {
	if s != Open {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to close", s),
		)
	}
	return Closed, nil
}
