package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	JobStatusActive  = "active"
	JobStatusExpired = "expired"
	JobStatusDraft   = "draft"
)

// SalaryNegotiable is the placeholder many employers put in the salary
// field instead of a number.
const SalaryNegotiable = "Thỏa thuận"

type Job struct {
	ID              string `gorm:"primaryKey"`
	Title           string
	Description     string
	Requirements    string
	City            string
	Type            string
	Field           string
	Salary          string
	WorkTime        string
	Status          string `gorm:"index"`
	CompanyName     string
	CompanyLogo     string
	CompanyVerified bool

	// SearchText is a diacritic-folded copy of the text columns,
	// maintained by the repository on write.
	SearchText string `json:"-"`
	CreatedAt       time.Time `gorm:"index"`
	ExpiryTime      time.Time `gorm:"index"`
}

func (j *Job) BeforeCreate(_ *gorm.DB) error {
	if j.ID == "" {
		j.ID = uuid.NewString()
	}
	if j.Status == "" {
		j.Status = JobStatusActive
	}
	return nil
}

// Searchable reports whether the posting may appear in any search path.
func (j Job) Searchable(now time.Time) bool {
	return j.Status == JobStatusActive && !j.ExpiryTime.Before(now)
}
