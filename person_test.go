package frontdesk_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/tomasbasham/frontdesk"
)

func TestPerson_Validate(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		mutate  func(p *frontdesk.Person)
		wantErr error
	}{
		"valid person": {
			mutate: func(*frontdesk.Person) {},
		},
		"zero age is valid": {
			mutate: func(p *frontdesk.Person) { p.Age = 0 },
		},
		"names at the limit are valid": {
			mutate: func(p *frontdesk.Person) {
				p.FirstName = strings.Repeat("a", frontdesk.MaxNameLen)
				p.LastName = strings.Repeat("b", frontdesk.MaxNameLen)
			},
		},
		"negative age": {
			mutate:  func(p *frontdesk.Person) { p.Age = -1 },
			wantErr: frontdesk.ErrInvalidPerson,
		},
		"last name too long": {
			mutate:  func(p *frontdesk.Person) { p.LastName = strings.Repeat("x", frontdesk.MaxNameLen+1) },
			wantErr: frontdesk.ErrInvalidPerson,
		},
		"first name too long": {
			mutate:  func(p *frontdesk.Person) { p.FirstName = strings.Repeat("x", frontdesk.MaxNameLen+1) },
			wantErr: frontdesk.ErrInvalidPerson,
		},
		"phone too long": {
			mutate:  func(p *frontdesk.Person) { p.Phone = strings.Repeat("5", frontdesk.MaxPhoneLen+1) },
			wantErr: frontdesk.ErrInvalidPerson,
		},
		"service date too long": {
			mutate:  func(p *frontdesk.Person) { p.ServiceDate = strings.Repeat("9", frontdesk.MaxServiceDateLen+1) },
			wantErr: frontdesk.ErrInvalidPerson,
		},
		"multibyte names are valid": {
			mutate: func(p *frontdesk.Person) { p.FirstName = "Zoë"; p.LastName = "Núñez" },
		},
		"invalid UTF-8 name": {
			mutate:  func(p *frontdesk.Person) { p.LastName = "N\xfa\xf1ez" },
			wantErr: frontdesk.ErrInvalidPerson,
		},
		"invalid UTF-8 phone": {
			mutate:  func(p *frontdesk.Person) { p.Phone = "555\xff" },
			wantErr: frontdesk.ErrInvalidPerson,
		},
		"non ASCII gender": {
			mutate:  func(p *frontdesk.Person) { p.Gender = 0xe9 },
			wantErr: frontdesk.ErrInvalidPerson,
		},
		"embedded NUL": {
			mutate:  func(p *frontdesk.Person) { p.FirstName = "Ann\x00e" },
			wantErr: frontdesk.ErrInvalidPerson,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			p := person(1, 30, "Ann")
			tt.mutate(&p)

			err := p.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected error: %v, got: %v", tt.wantErr, err)
			}
		})
	}
}

func TestPerson_FullName(t *testing.T) {
	t.Parallel()

	p := frontdesk.Person{FirstName: "Ada", LastName: "Lovelace"}
	if got, want := p.FullName(), "Ada Lovelace"; got != want {
		t.Errorf("mismatch:\n  got:  %q\n  want: %q", got, want)
	}
}
