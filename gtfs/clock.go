package gtfs

import (
	"fmt"
	"strconv"
	"strings"
)

// ClockTime is a schedule time in seconds after midnight of the service day.
// Values of 24:00:00 and later are representable.
type ClockTime int

// ParseClock parses HH:MM:SS. The hour is unbounded; minutes and seconds must be
// in 0..59.
func ParseClock(s string) (ClockTime, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("time %q: want HH:MM:SS", s)
	}
	var v [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("time %q: bad field %q", s, p)
		}
		v[i] = n
	}
	if v[1] > 59 || v[2] > 59 {
		return 0, fmt.Errorf("time %q: minutes and seconds must be below 60", s)
	}
	return ClockTime(v[0]*3600 + v[1]*60 + v[2]), nil
}

// Hour returns the hour field, which may be 24 or more past midnight
func (c ClockTime) Hour() int { return int(c) / 3600 }

// MinutesSince returns whole minutes from prev to c, rounded toward negative
// infinity.
func (c ClockTime) MinutesSince(prev ClockTime) int {
	d := int(c - prev)
	m := d / 60
	if d%60 != 0 && d < 0 {
		m--
	}
	return m
}

func (c ClockTime) String() string {
	s := int(c)
	return fmt.Sprintf("%02d:%02d:%02d", s/3600, s/60%60, s%60)
}
