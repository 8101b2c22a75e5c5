package frontdesk

import (
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Field limits, in bytes. These match the fixed-width buffers of the legacy
// archive layout less one byte for the terminating NUL.
const (
	MaxNameLen        = 49
	MaxPhoneLen       = 14
	MaxServiceDateLen = 19
)

// Person is a single walk-in registration. A Person is never mutated once
// admitted; ids are supplied by the operator and are not required to be
// unique.
type Person struct {
	ID          int32  `json:"id"`
	LastName    string `json:"last_name"`
	FirstName   string `json:"first_name"`
	Age         int32  `json:"age"`
	Gender      byte   `json:"gender"`
	Phone       string `json:"phone"`
	ServiceDate string `json:"service_date"`
}

// FullName returns the first and last name separated by a space.
func (p Person) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// Tier returns the tier the person is admitted into.
func (p Person) Tier() Tier {
	return TierOf(p.Age)
}

// Validate reports whether the person can be admitted. Ages must not be
// negative and text fields must fit their limits; oversized input is rejected
// rather than truncated. Text must be valid UTF-8 and the gender a single
// ASCII character, so that every archive can store the person as given.
func (p Person) Validate() error {
	if p.Age < 0 {
		return errors.Wrapf(ErrInvalidPerson, "age %d is negative", p.Age)
	}
	if p.Gender >= utf8.RuneSelf {
		return errors.Wrapf(ErrInvalidPerson, "gender %#x is not an ASCII character", p.Gender)
	}

	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"last name", p.LastName, MaxNameLen},
		{"first name", p.FirstName, MaxNameLen},
		{"phone number", p.Phone, MaxPhoneLen},
		{"service date", p.ServiceDate, MaxServiceDateLen},
	}
	for _, f := range fields {
		if len(f.value) > f.max {
			return errors.Wrapf(ErrInvalidPerson, "%s exceeds %d bytes", f.name, f.max)
		}
		if strings.IndexByte(f.value, 0) >= 0 {
			return errors.Wrapf(ErrInvalidPerson, "%s contains a NUL byte", f.name)
		}
		if !utf8.ValidString(f.value) {
			return errors.Wrapf(ErrInvalidPerson, "%s is not valid UTF-8", f.name)
		}
	}
	return nil
}
