package models

import (
	"strconv"
)

type Advocate struct {
	ID                *int64   `json:"id,omitempty" db:"id"`
	FirstName         string   `json:"firstName" db:"first_name" validate:"required"`
	LastName          string   `json:"lastName" db:"last_name" validate:"required"`
	City              string   `json:"city" db:"city" validate:"required"`
	Degree            string   `json:"degree" db:"degree" validate:"required"`
	Specialties       []string `json:"specialties" db:"specialties" validate:"required,min=1,dive,required"`
	YearsOfExperience int      `json:"yearsOfExperience" db:"years_of_experience" validate:"min=0"`
	PhoneNumber       int64    `json:"phoneNumber" db:"phone_number" validate:"required,min=1"`
}

type ExperienceTier string

const (
	ExperienceTierSenior ExperienceTier = "senior"
	ExperienceTierMid    ExperienceTier = "mid"
	ExperienceTierJunior ExperienceTier = "junior"
)

// Tier buckets an advocate by years of experience for display purposes.
func (a Advocate) Tier() ExperienceTier {
	switch {
	case a.YearsOfExperience >= 10:
		return ExperienceTierSenior
	case a.YearsOfExperience >= 5:
		return ExperienceTierMid
	default:
		return ExperienceTierJunior
	}
}

func (a Advocate) FullName() string {
	return a.FirstName + " " + a.LastName
}

// FormatPhone renders a ten digit number as (555) 123-4567. Anything shorter is returned as plain digits.
func FormatPhone(phone int64) string {
	digits := strconv.FormatInt(phone, 10)
	if len(digits) < 7 {
		return digits
	}

	return "(" + digits[:3] + ") " + digits[3:6] + "-" + digits[6:]
}

func Int64Ptr(v int64) *int64 {
	return &v
}
