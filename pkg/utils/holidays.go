package utils

import (
	"sort"
	"time"

	"github.com/teambition/rrule-go"
)

// holidayRule pairs a display name with the recurrence that generates it.
type holidayRule struct {
	name   string
	option rrule.ROption
}

func companyHolidayRules() []holidayRule {
	dtstart := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	return []holidayRule{
		{"New Year's Day", rrule.ROption{Freq: rrule.YEARLY, Bymonth: []int{1}, Bymonthday: []int{1}, Dtstart: dtstart}},
		{"Memorial Day", rrule.ROption{Freq: rrule.YEARLY, Bymonth: []int{5}, Byweekday: []rrule.Weekday{rrule.MO.Nth(-1)}, Dtstart: dtstart}},
		{"Independence Day", rrule.ROption{Freq: rrule.YEARLY, Bymonth: []int{7}, Bymonthday: []int{4}, Dtstart: dtstart}},
		{"Labor Day", rrule.ROption{Freq: rrule.YEARLY, Bymonth: []int{9}, Byweekday: []rrule.Weekday{rrule.MO.Nth(1)}, Dtstart: dtstart}},
		{"Thanksgiving Day", rrule.ROption{Freq: rrule.YEARLY, Bymonth: []int{11}, Byweekday: []rrule.Weekday{rrule.TH.Nth(4)}, Dtstart: dtstart}},
		{"Christmas Day", rrule.ROption{Freq: rrule.YEARLY, Bymonth: []int{12}, Bymonthday: []int{25}, Dtstart: dtstart}},
	}
}

// CompanyHolidays returns the company holidays for a year, keyed by
// date in 2006-01-02 form.
func CompanyHolidays(year int) map[string]string {
	from := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(year, 12, 31, 23, 59, 59, 0, time.UTC)

	holidays := make(map[string]string)
	for _, rule := range companyHolidayRules() {
		r, err := rrule.NewRRule(rule.option)
		if err != nil {
			continue
		}
		for _, day := range r.Between(from, to, true) {
			holidays[day.Format("2006-01-02")] = rule.name
		}
	}
	return holidays
}

// HolidayDates returns the holiday dates of a year in ascending order.
func HolidayDates(year int) []string {
	holidays := CompanyHolidays(year)
	dates := make([]string, 0, len(holidays))
	for date := range holidays {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates
}

// WorkingDays counts the weekdays between startDate and endDate
// inclusive, skipping company holidays. Dates are 2006-01-02 strings;
// malformed input yields 0.
func WorkingDays(startDate, endDate string) int {
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return 0
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil || end.Before(start) {
		return 0
	}

	holidays := make(map[string]string)
	for year := start.Year(); year <= end.Year(); year++ {
		for date, name := range CompanyHolidays(year) {
			holidays[date] = name
		}
	}

	days := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
			continue
		}
		if _, isHoliday := holidays[d.Format("2006-01-02")]; isHoliday {
			continue
		}
		days++
	}
	return days
}
