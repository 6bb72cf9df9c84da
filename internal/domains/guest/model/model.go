package model

import (
	"homestay/shared/timezone"
	"time"
)

const (
	EntityName = "guest"

	StatusActive   = "active"
	StatusCurrent  = "current"
	StatusUpcoming = "upcoming"
	StatusPast     = "past"
)

type Guest struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address,omitempty"`
	VisitDate     string `json:"visitDate"`
	Accommodation string `json:"accommodation"`
	Notes         string `json:"notes,omitempty"`
	Status        string `json:"status"`
	TotalVisits   int    `json:"totalVisits"`
}

// DeriveStatus places a visit relative to today's calendar day: today is current,
// later is upcoming, earlier is past. Unparseable dates count as upcoming.
func DeriveStatus(visitDate string, today time.Time) string {
	visit, err := timezone.ParseDate(visitDate)
	if err != nil {
		return StatusUpcoming
	}

	visitDay := timezone.StartOfDay(visit)
	todayStart := timezone.StartOfDay(today)

	switch {
	case visitDay.Equal(todayStart):
		return StatusCurrent
	case visitDay.After(todayStart):
		return StatusUpcoming
	default:
		return StatusPast
	}
}
