package models

import "time"

// Staff is an employee of the club. INN and SNILS are unique national
// identifiers; the age-at-hire rule is validated before insert and backed
// by a database trigger where the deployment can install one.
type Staff struct {
	ID             string    `json:"id"`
	LastName       string    `json:"last_name"`
	FirstName      string    `json:"first_name"`
	MiddleName     *string   `json:"middle_name,omitempty"`
	BirthDate      time.Time `json:"birth_date"`
	Gender         *string   `json:"gender,omitempty"`
	Phone          *string   `json:"phone,omitempty"`
	PassportSeries *string   `json:"passport_series,omitempty"`
	PassportNumber *string   `json:"passport_number,omitempty"`
	Address        *string   `json:"address,omitempty"`
	Education      *string   `json:"education,omitempty"`
	INN            string    `json:"inn"`
	SNILS          string    `json:"snils"`
	HireDate       time.Time `json:"hire_date"`
	PositionID     *string   `json:"position_id,omitempty"`
	Salary         *float64  `json:"salary,omitempty"`

	Position *Position `json:"position,omitempty"`
}

func (s *Staff) FullName() string {
	name := s.LastName + " " + s.FirstName
	if s.MiddleName != nil && *s.MiddleName != "" {
		name += " " + *s.MiddleName
	}
	return name
}

// Position is a reference entity bounding the salary range for staff.
type Position struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	MinSalary float64 `json:"min_salary"`
	MaxSalary float64 `json:"max_salary"`
}
