package job

import (
	"fmt"
	"strings"

	"jobboard/internal/pkg/errs"
)

// Type is the employment type of a posting.
type Type string

const (
	FullTime   Type = "Full-Time"
	PartTime   Type = "Part-Time"
	Remote     Type = "Remote"
	Internship Type = "Internship"
	Contract   Type = "Contract"
)

// Types lists every accepted employment type in display order.
func Types() []Type {
	return []Type{FullTime, PartTime, Remote, Internship, Contract}
}

// ParseType matches s case-insensitively against Types.
func ParseType(s string) (Type, error) {
	for _, t := range Types() {
		if strings.EqualFold(string(t), strings.TrimSpace(s)) {
			return t, nil
		}
	}
	return "", errs.NewValueIsInvalidErrorWithCause("type", fmt.Errorf("%q is not a known job type", s))
}

func (t Type) String() string {
	return string(t)
}
