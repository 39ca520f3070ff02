package jmespath

import "time"

// dateTimeLayout always renders a numeric zone offset ("+02:00", "+00:00")
// rather than RFC3339's "Z" shorthand for UTC, matching the ISO-8601 shape
// the date/time function family promises its callers.
const dateTimeLayout = "2006-01-02T15:04:05-07:00"

func formatDateTime(t time.Time) string {
	return t.Local().Format(dateTimeLayout)
}

func jpfCurrentDatetime(arguments []interface{}) (interface{}, error) {
	return formatDateTime(time.Now()), nil
}

func secondsOffset(arguments []interface{}, sign float64) (interface{}, error) {
	n := arguments[0].(float64)
	delta := time.Duration(sign * n * float64(time.Second))
	return formatDateTime(time.Now().Add(delta)), nil
}

func jpfSecondsAgo(arguments []interface{}) (interface{}, error) {
	return secondsOffset(arguments, -1)
}
func jpfSecondsFromNow(arguments []interface{}) (interface{}, error) {
	return secondsOffset(arguments, 1)
}
func jpfMinutesAgo(arguments []interface{}) (interface{}, error) {
	return secondsOffset(arguments, -60)
}
func jpfMinutesFromNow(arguments []interface{}) (interface{}, error) {
	return secondsOffset(arguments, 60)
}
func jpfHoursAgo(arguments []interface{}) (interface{}, error) {
	return secondsOffset(arguments, -3600)
}
func jpfHoursFromNow(arguments []interface{}) (interface{}, error) {
	return secondsOffset(arguments, 3600)
}
func jpfDaysAgo(arguments []interface{}) (interface{}, error) {
	return secondsOffset(arguments, -86400)
}
func jpfDaysFromNow(arguments []interface{}) (interface{}, error) {
	return secondsOffset(arguments, 86400)
}
func jpfWeeksAgo(arguments []interface{}) (interface{}, error) {
	return secondsOffset(arguments, -604800)
}
func jpfWeeksFromNow(arguments []interface{}) (interface{}, error) {
	return secondsOffset(arguments, 604800)
}

// addMonths shifts t by months calendar months, clamping the day-of-month
// down to the target month's last day (Jan 31 + 1 month lands on the last
// day of February, leap years included) rather than overflowing into the
// following month the way time.AddDate would.
func addMonths(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	hour, min, sec := t.Clock()
	loc := t.Location()

	monthIndex := int(month) - 1 + months
	targetYear := year + monthIndex/12
	targetMonth := monthIndex % 12
	if targetMonth < 0 {
		targetMonth += 12
		targetYear--
	}

	if last := daysInMonth(targetYear, time.Month(targetMonth+1)); day > last {
		day = last
	}
	return time.Date(targetYear, time.Month(targetMonth+1), day, hour, min, sec, t.Nanosecond(), loc)
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func monthsOffset(name string, arguments []interface{}, sign int) (interface{}, error) {
	n, ok := toInteger(arguments[0])
	if !ok {
		return nil, notAnInteger(name, "n")
	}
	return formatDateTime(addMonths(time.Now(), sign*n)), nil
}

func jpfMonthsAgo(arguments []interface{}) (interface{}, error) {
	return monthsOffset("months_ago", arguments, -1)
}
func jpfMonthsFromNow(arguments []interface{}) (interface{}, error) {
	return monthsOffset("months_from_now", arguments, 1)
}
func jpfYearsAgo(arguments []interface{}) (interface{}, error) {
	n, ok := toInteger(arguments[0])
	if !ok {
		return nil, notAnInteger("years_ago", "n")
	}
	return formatDateTime(addMonths(time.Now(), -12*n)), nil
}
func jpfYearsFromNow(arguments []interface{}) (interface{}, error) {
	n, ok := toInteger(arguments[0])
	if !ok {
		return nil, notAnInteger("years_from_now", "n")
	}
	return formatDateTime(addMonths(time.Now(), 12*n)), nil
}
