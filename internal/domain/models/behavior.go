package models

import "time"

const (
	ActionSearch  = "search"
	ActionJobView = "job_view"
	ActionJobSave = "job_save"
	ActionApply   = "job_apply"
)

// UserBehavior is one recorded interaction; profiles are aggregated
// from the most recent rows per user.
type UserBehavior struct {
	ID        int `gorm:"primaryKey"`
	UserID    int64
	Action    string
	JobID     string
	JobTitle  string
	JobType   string
	City      string
	Field     string
	Query     string
	CreatedAt time.Time
}
