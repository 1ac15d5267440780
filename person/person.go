// Package person holds the Person record: a name, an age and an optional
// email address.
package person

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rickb777/date/v2"

	"github.com/on-the-ground/pure_ive_go/validation"
)

const AdultAge = 18

// Person is a plain record. ID and Seq are assigned by a directory and are
// zero for people built directly with New.
type Person struct {
	ID    uuid.UUID `json:"id" yaml:"id"`
	Seq   uint64    `json:"seq" yaml:"seq"`
	Name  string    `json:"name" yaml:"name"`
	Age   int       `json:"age" yaml:"age"`
	Email *string   `json:"email,omitempty" yaml:"email,omitempty"`
}

// New builds a validated Person. email may be nil.
func New(name string, age int, email *string) (Person, error) {
	p := Person{Name: name, Age: age, Email: email}.Clone()
	if err := p.Validate(); err != nil {
		return Person{}, err
	}
	return p, nil
}

// NewBornOn derives the age from a birth date as of today.
func NewBornOn(name string, born, today date.Date, email *string) (Person, error) {
	return New(name, AgeOn(born, today), email)
}

// AgeOn counts whole years elapsed between born and today. It is negative
// when today precedes born.
func AgeOn(born, today date.Date) int {
	by, bm, bd := born.Date()
	ty, tm, td := today.Date()
	age := ty - by
	if tm < bm || (tm == bm && td < bd) {
		age--
	}
	return age
}

// Validate checks the age and, when present, the email address. The first
// failure is returned.
func (p Person) Validate() error {
	if err := validation.ValidateAge(p.Age); err != nil {
		return err
	}
	if p.Email != nil {
		return validation.ValidateEmail(*p.Email)
	}
	return nil
}

func (p Person) Greet() string {
	return fmt.Sprintf("Hello, my name is %s and I'm %d years old!", p.Name, p.Age)
}

func (p Person) IsAdult() bool {
	return p.Age >= AdultAge
}

// CelebrateBirthday increments the age unless that would leave the valid
// range, in which case the age is untouched and the failure is returned.
func (p *Person) CelebrateBirthday() error {
	if err := validation.ValidateAge(p.Age + 1); err != nil {
		return err
	}
	p.Age++
	return nil
}

// Clone returns a copy that shares no memory with p.
func (p Person) Clone() Person {
	if p.Email != nil {
		email := *p.Email
		p.Email = &email
	}
	return p
}

// EmailOr returns the email address or fallback when there is none.
func (p Person) EmailOr(fallback string) string {
	if p.Email == nil {
		return fallback
	}
	return *p.Email
}

// String formats as "Name (Age) - email", with "N/A" for a missing email.
func (p Person) String() string {
	return fmt.Sprintf("%s (%d) - %s", p.Name, p.Age, p.EmailOr("N/A"))
}
