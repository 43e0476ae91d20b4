// Package analytics holds the pure aggregation core: time-bucketed sales
// totals, payout reconciliation and customer segmentation. Everything here
// operates on an immutable snapshot fetched by the caller; nothing is cached
// between requests.
package analytics

import (
	"fmt"
	"time"

	"spotnere-backend/internal/model"
)

// Period selects the sales bucketing granularity.
type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
)

// Window lengths per period: 14 days back plus today, 12 weeks, 12 months.
const (
	dailyBuckets   = 15
	weeklyBuckets  = 12
	monthlyBuckets = 12
)

// ParsePeriod maps a query value onto a period, defaulting to monthly.
func ParsePeriod(s string) Period {
	switch Period(s) {
	case PeriodDaily, PeriodWeekly:
		return Period(s)
	default:
		return PeriodMonthly
	}
}

// SalesBucket is one slot of the sales time series.
type SalesBucket struct {
	Label string  `json:"label"`
	Sales float64 `json:"sales"`
	Count int     `json:"count"`
}

type bucketAcc struct {
	sales float64
	count int
}

// SalesBuckets aggregates booking amounts into fixed-length, gap-filled
// buckets ending at now: 15 for daily, 12 for weekly and monthly. Bookings
// without a parsable timestamp are skipped; sums accumulate at full precision
// and are rounded to two decimals only at emission.
func SalesBuckets(bookings []model.Booking, period Period, now time.Time) []SalesBucket {
	now = now.UTC()
	windowStart := windowStart(period, now)

	buckets := make(map[string]*bucketAcc)
	for _, b := range bookings {
		ts, ok := b.Timestamp()
		if !ok {
			continue
		}
		if ts.Before(windowStart) {
			continue
		}
		key := bucketKey(period, ts)
		acc := buckets[key]
		if acc == nil {
			acc = &bucketAcc{}
			buckets[key] = acc
		}
		acc.sales += b.Amount()
		acc.count++
	}

	return emit(period, now, buckets)
}

// windowStart is the oldest instant still inside the window, anchored to the
// midnight before the cutoff so a booking dated exactly at the boundary day
// is included. The cutoff is looser than the emitted range, so bookings
// between the two accumulate into keys that emit never visits.
func windowStart(period Period, now time.Time) time.Time {
	switch period {
	case PeriodDaily:
		return midnight(now.AddDate(0, 0, -14))
	case PeriodWeekly:
		return midnight(now.AddDate(0, 0, -7*12))
	default:
		return midnight(now.AddDate(0, 0, -365))
	}
}

func bucketKey(period Period, t time.Time) string {
	switch period {
	case PeriodDaily:
		return t.Format("2006-01-02")
	case PeriodWeekly:
		return mondayOf(t).Format("2006-01-02")
	default:
		return t.Format("2006-01")
	}
}

// emit walks the whole window oldest to newest so zero-activity buckets are
// present in the output.
func emit(period Period, now time.Time, buckets map[string]*bucketAcc) []SalesBucket {
	var out []SalesBucket
	switch period {
	case PeriodDaily:
		out = make([]SalesBucket, 0, dailyBuckets)
		for i := dailyBuckets - 1; i >= 0; i-- {
			d := now.AddDate(0, 0, -i)
			out = append(out, emitOne(d.Format("Jan 02"), buckets[d.Format("2006-01-02")]))
		}
	case PeriodWeekly:
		out = make([]SalesBucket, 0, weeklyBuckets)
		for i := weeklyBuckets - 1; i >= 0; i-- {
			monday := mondayOf(now.AddDate(0, 0, -7*i))
			_, week := monday.ISOWeek()
			out = append(out, emitOne(fmt.Sprintf("W%d", week), buckets[monday.Format("2006-01-02")]))
		}
	default:
		out = make([]SalesBucket, 0, monthlyBuckets)
		for i := monthlyBuckets - 1; i >= 0; i-- {
			total := now.Year()*12 + int(now.Month()) - 1 - i
			year, month := total/12, total%12+1
			key := fmt.Sprintf("%04d-%02d", year, month)
			out = append(out, emitOne(time.Month(month).String()[:3], buckets[key]))
		}
	}
	return out
}

func emitOne(label string, acc *bucketAcc) SalesBucket {
	if acc == nil {
		return SalesBucket{Label: label}
	}
	return SalesBucket{Label: label, Sales: model.RoundMoney(acc.sales), Count: acc.count}
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// mondayOf returns the Monday of t's ISO week, at t's clock time stripped to
// the date.
func mondayOf(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	d := t.AddDate(0, 0, -offset)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}
