// Package calendar converts between proleptic Gregorian dates and linear day
// numbers counted from 1970-01-01.
//
// The conversions are closed-form (no tables) and work for every year whose
// day number fits in an int64 with room for the era arithmetic, far beyond
// the 0000-9999 window the timestamp codec renders.
package calendar

// Date is a calendar date. Month is 1-12, Day is 1-31.
type Date struct {
	Year  int64
	Month int
	Day   int
}

const (
	daysPerEra   = 146097 // days in 400 Gregorian years
	epochShift   = 719468 // days from 0000-03-01 to 1970-01-01
	yearsPerEra  = 400
	daysPer4Yrs  = 1460
	daysPer100Yr = 36524
)

// IsLeap reports whether y is a leap year under the 4/100/400 rule.
func IsLeap(y int64) bool {
	return y%4 == 0 && (y%100 != 0 || y%400 == 0)
}

// DaysIn returns the number of days in month m of year y, or 0 when m is not
// a valid month.
func DaysIn(m int, y int64) int {
	switch m {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if IsLeap(y) {
			return 29
		}
		return 28
	}
	return 0
}

// Valid reports whether d names an existing day.
func (d Date) Valid() bool {
	return d.Month >= 1 && d.Month <= 12 && d.Day >= 1 && d.Day <= DaysIn(d.Month, d.Year)
}

// DaysFromCivil returns the number of days between 1970-01-01 and y-m-d.
// The day is not checked against the month length; callers validate first.
func DaysFromCivil(y int64, m, d int) int64 {
	// Shift the year to start in March so the leap day is the last day.
	if m <= 2 {
		y--
	}
	era := floorDiv(y, yearsPerEra)
	yoe := y - era*yearsPerEra // [0, 399]

	mp := int64(m) + 9
	if m > 2 {
		mp = int64(m) - 3
	}
	doy := (153*mp+2)/5 + int64(d) - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy

	return era*daysPerEra + doe - epochShift
}

// CivilFromDays is the inverse of DaysFromCivil.
func CivilFromDays(days int64) (y int64, m, d int) {
	z := days + epochShift
	era := floorDiv(z, daysPerEra)
	doe := z - era*daysPerEra // [0, 146096]

	yoe := (doe - doe/daysPer4Yrs + doe/daysPer100Yr - doe/(daysPerEra-1)) / 365
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153 // March is 0

	d = int(doy - (153*mp+2)/5 + 1)
	if mp < 10 {
		m = int(mp + 3)
	} else {
		m = int(mp - 9)
	}
	y = yoe + era*yearsPerEra
	if m <= 2 {
		y++
	}
	return y, m, d
}

// ToDays converts d with DaysFromCivil.
func (d Date) ToDays() int64 {
	return DaysFromCivil(d.Year, d.Month, d.Day)
}

// FromDays converts a day number with CivilFromDays.
func FromDays(days int64) Date {
	y, m, d := CivilFromDays(days)
	return Date{Year: y, Month: m, Day: d}
}

// floorDiv divides rounding toward negative infinity. b must be positive.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b < 0 {
		q--
	}
	return q
}

// FloorDivMod splits a into quotient and non-negative remainder by b > 0.
func FloorDivMod(a, b int64) (q, r int64) {
	q = a / b
	r = a % b
	if r < 0 {
		q--
		r += b
	}
	return q, r
}
