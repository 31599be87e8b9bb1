package attendance

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

var sixty = decimal.NewFromInt(60)

// MonthBounds returns the [from, to) instants of a calendar month in loc.
func MonthBounds(year int, month time.Month, loc *time.Location) (time.Time, time.Time) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	return from, from.AddDate(0, 1, 0)
}

// MinutesBetween returns whole minutes from start to end, truncated toward
// zero, or 0 when either mark is missing. Reversed marks yield negative minutes.
func MinutesBetween(start, end *time.Time) int64 {
	if start == nil || end == nil {
		return 0
	}
	return int64(end.Sub(*start) / time.Minute)
}

// FormatHours renders minutes as hours with exactly two decimals.
func FormatHours(minutes int64) string {
	return decimal.NewFromInt(minutes).Div(sixty).StringFixed(2)
}

// Summarize builds the monthly projection from ledger rows already ordered by date.
func Summarize(worker WorkerProfile, year int, month time.Month, records []Record, loc *time.Location) MonthlySummary {
	summary := MonthlySummary{
		Month: fmt.Sprintf("%d-%02d", year, int(month)),
		Worker: SummaryWorker{
			Name:       worker.Name,
			Role:       worker.Role,
			Contact:    worker.Contact,
			Address:    worker.Address,
			BraceletID: worker.BraceletID,
		},
		Days: make([]DayBreakdown, 0, len(records)),
	}

	var totals SummaryTotals
	for _, rec := range records {
		day := breakdown(rec, loc)
		totals.GrossMinutes += day.GrossMinutes
		totals.BreakMinutes += day.BreakMinutes
		summary.Days = append(summary.Days, day)
	}

	totals.DaysWorked = len(records)
	totals.NetMinutes = totals.GrossMinutes - totals.BreakMinutes
	totals.GrossHours = FormatHours(totals.GrossMinutes)
	totals.BreakHours = FormatHours(totals.BreakMinutes)
	totals.NetHours = FormatHours(totals.NetMinutes)
	summary.Totals = totals

	return summary
}

func breakdown(rec Record, loc *time.Location) DayBreakdown {
	gross := MinutesBetween(rec.EntryTime, rec.ExitTime)
	brk := MinutesBetween(rec.BreakOutTime, rec.BreakInTime)
	net := gross - brk

	date := rec.WorkDate
	if rec.EntryTime != nil {
		date = WorkDate(*rec.EntryTime, loc)
	}

	return DayBreakdown{
		Date:         date.Format("2006-01-02"),
		Entry:        inLocation(rec.EntryTime, loc),
		BreakOut:     inLocation(rec.BreakOutTime, loc),
		BreakIn:      inLocation(rec.BreakInTime, loc),
		Exit:         inLocation(rec.ExitTime, loc),
		GrossHours:   FormatHours(gross),
		BreakHours:   FormatHours(brk),
		NetHours:     FormatHours(net),
		GrossMinutes: gross,
		BreakMinutes: brk,
		NetMinutes:   net,
	}
}

func inLocation(t *time.Time, loc *time.Location) *time.Time {
	if t == nil {
		return nil
	}
	local := t.In(loc)
	return &local
}
