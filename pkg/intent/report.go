package intent

import (
	"regexp"
	"strings"
	"time"
)

type ReportKind string

const (
	ReportTotal   = ReportKind("total")
	ReportLargest = ReportKind("largest")
	ReportAll     = ReportKind("all")
)

var MonthNames = [12]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

var monthPattern = regexp.MustCompile(`(?i)bulan\s+(\p{L}+)`)

// Period is a half-open time range [Start, End).
type Period struct {
	Start time.Time
	End   time.Time
	Label string
}

type ReportQuery struct {
	Kind   ReportKind
	Period Period
}

func ParsePeriod(text string, now time.Time) (Period, bool) {
	lower := strings.ToLower(text)
	today := startOfDay(now)

	switch {
	case strings.Contains(lower, "hari ini"):
		return Period{Start: today, End: today.AddDate(0, 0, 1), Label: "hari ini"}, true
	case strings.Contains(lower, "minggu ini"):
		start := today.AddDate(0, 0, -int(today.Weekday()))
		return Period{Start: start, End: start.AddDate(0, 0, 7), Label: "minggu ini"}, true
	case strings.Contains(lower, "bulan ini"):
		start := startOfMonth(now)
		return Period{Start: start, End: start.AddDate(0, 1, 0), Label: "bulan ini"}, true
	}

	for _, match := range monthPattern.FindAllStringSubmatch(lower, -1) {
		for idx, name := range MonthNames {
			if strings.EqualFold(match[1], name) {
				start := time.Date(now.Year(), time.Month(idx+1), 1, 0, 0, 0, 0, now.Location())

				return Period{
					Start: start,
					End:   start.AddDate(0, 1, 0),
					Label: "bulan " + strings.ToLower(name),
				}, true
			}
		}
	}

	return Period{}, false
}

func ParseReportKind(text string) (ReportKind, bool) {
	lower := strings.ToLower(text)

	switch {
	case strings.Contains(lower, "total pengeluaran"):
		return ReportTotal, true
	case strings.Contains(lower, "pengeluaran terbesar"):
		return ReportLargest, true
	case strings.Contains(lower, "tampilkan semua transaksi"):
		return ReportAll, true
	default:
		return "", false
	}
}

// CurrentMonth spans from the first day of the month to the end of today.
func CurrentMonth(now time.Time) Period {
	return Period{
		Start: startOfMonth(now),
		End:   startOfDay(now).AddDate(0, 0, 1),
		Label: "bulan ini",
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// ParseReportQuery resolves both the period and the report kind. Failures carry the reply for the user.
func ParseReportQuery(text string, now time.Time) (ReportQuery, error) {
	period, ok := ParsePeriod(text, now)
	if !ok {
		return ReportQuery{}, invalid(KindReport,
			"❌ Mohon tentukan periode waktu yang ingin dilihat (hari ini, minggu ini, bulan ini, atau bulan tertentu).")
	}

	kind, ok := ParseReportKind(text)
	if !ok {
		return ReportQuery{}, invalid(KindReport,
			"❌ Maaf, saya tidak mengerti permintaan laporan Anda. Silakan coba dengan format yang berbeda.")
	}

	return ReportQuery{Kind: kind, Period: period}, nil
}
