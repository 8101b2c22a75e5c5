package archive

import (
	"bytes"
	"encoding/binary"

	"github.com/pkg/errors"

	"github.com/tomasbasham/frontdesk"
)

// Legacy record layout. Every field is at its natural alignment so the
// record carries no padding:
//
//	offset  size  field
//	     0     4  id (int32)
//	     4    50  last name (NUL terminated)
//	    54    50  first name (NUL terminated)
//	   104     4  age (int32)
//	   108     1  gender
//	   109    15  phone number (NUL terminated)
//	   124    20  service date (NUL terminated)
const (
	idOffset          = 0
	lastNameOffset    = 4
	firstNameOffset   = 54
	ageOffset         = 104
	genderOffset      = 108
	phoneOffset       = 109
	serviceDateOffset = 124

	nameSize        = frontdesk.MaxNameLen + 1
	phoneSize       = frontdesk.MaxPhoneLen + 1
	serviceDateSize = frontdesk.MaxServiceDateLen + 1

	// RecordSize is the width in bytes of one archived person.
	RecordSize = serviceDateOffset + serviceDateSize
)

// byteOrder matches archives written by the legacy tool on the same host.
var byteOrder = binary.NativeEndian

// MarshalRecord encodes p into the fixed-width legacy layout.
func MarshalRecord(p frontdesk.Person) ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, errors.Wrapf(err, "encode person %d", p.ID)
	}

	b := make([]byte, RecordSize)
	byteOrder.PutUint32(b[idOffset:], uint32(p.ID))
	copy(b[lastNameOffset:lastNameOffset+nameSize], p.LastName)
	copy(b[firstNameOffset:firstNameOffset+nameSize], p.FirstName)
	byteOrder.PutUint32(b[ageOffset:], uint32(p.Age))
	b[genderOffset] = p.Gender
	copy(b[phoneOffset:phoneOffset+phoneSize], p.Phone)
	copy(b[serviceDateOffset:serviceDateOffset+serviceDateSize], p.ServiceDate)
	return b, nil
}

// UnmarshalRecord decodes one fixed-width record. Text fields end at the
// first NUL; whatever follows it in the buffer is ignored.
func UnmarshalRecord(b []byte) (frontdesk.Person, error) {
	if len(b) != RecordSize {
		return frontdesk.Person{}, errors.Errorf("record is %d bytes, want %d", len(b), RecordSize)
	}

	return frontdesk.Person{
		ID:          int32(byteOrder.Uint32(b[idOffset:])),
		LastName:    cString(b[lastNameOffset : lastNameOffset+nameSize]),
		FirstName:   cString(b[firstNameOffset : firstNameOffset+nameSize]),
		Age:         int32(byteOrder.Uint32(b[ageOffset:])),
		Gender:      b[genderOffset],
		Phone:       cString(b[phoneOffset : phoneOffset+phoneSize]),
		ServiceDate: cString(b[serviceDateOffset : serviceDateOffset+serviceDateSize]),
	}, nil
}

func cString(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}
