package dal

import (
	"fmt"
	"time"
)

// Date is a calendar date as observed in some location
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func DateByTime(t time.Time) Date {
	return Date{
		Year:  t.Year(),
		Month: t.Month(),
		Day:   t.Day(),
	}
}

func (d Date) ToKey() string {
	return fmt.Sprintf("%d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Time returns midnight of the date in loc
func (d Date) Time(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

func (d Date) String() string {
	return d.ToKey()
}
