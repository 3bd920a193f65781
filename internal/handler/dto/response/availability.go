package response

import (
	"time"

	"slotbook/internal/usecase/queries"
)

type MonthDayResponse struct {
	Date       string `json:"date"`
	InMonth    bool   `json:"inMonth"`
	Today      bool   `json:"today"`
	Past       bool   `json:"past"`
	TakenCount int    `json:"takenCount"`
	Full       bool   `json:"full"`
	HasFree    bool   `json:"hasFree"`
}

type MonthAvailabilityResponse struct {
	Year          int                `json:"year"`
	Month         int                `json:"month"`
	LeadingBlanks int                `json:"leadingBlanks"`
	Days          []MonthDayResponse `json:"days"`
}

type SlotResponse struct {
	Start  time.Time `json:"start"`
	Status string    `json:"status"`
}

type DayAvailabilityResponse struct {
	Date  string         `json:"date"`
	Slots []SlotResponse `json:"slots"`
}

const dateLayout = "2006-01-02"

func FromMonthAvailability(m queries.MonthAvailability) MonthAvailabilityResponse {
	days := make([]MonthDayResponse, 0, len(m.Days))
	for _, d := range m.Days {
		days = append(days, MonthDayResponse{
			Date:       d.Day.Format(dateLayout),
			InMonth:    d.InMonth,
			Today:      d.Today,
			Past:       d.Past,
			TakenCount: d.TakenCount,
			Full:       d.Full,
			HasFree:    d.HasFree,
		})
	}
	return MonthAvailabilityResponse{
		Year:          m.Year,
		Month:         int(m.Month),
		LeadingBlanks: m.LeadingBlanks,
		Days:          days,
	}
}

func FromDayAvailability(d queries.DayAvailability) DayAvailabilityResponse {
	slots := make([]SlotResponse, 0, len(d.Slots))
	for _, s := range d.Slots {
		slots = append(slots, SlotResponse{Start: s.Start, Status: string(s.Status)})
	}
	return DayAvailabilityResponse{
		Date:  d.Day.Format(dateLayout),
		Slots: slots,
	}
}
