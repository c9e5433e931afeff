package events

var SearchPerformedTopic = "SearchPerformedEvent"

type SearchPerformed struct {
	UserID      int64
	Query       string
	ResultCount int
}

var JobViewedTopic = "JobViewedEvent"

type JobViewed struct {
	UserID   int64
	JobID    string
	JobTitle string
	JobType  string
	City     string
	Field    string
}
