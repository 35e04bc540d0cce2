package schedule

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidRules возвращается при некорректных параметрах правил
var ErrInvalidRules = errors.New("schedule: invalid rules")

// Rules carries the configured scheduling parameters. All wall-clock
// comparisons use Location (the building's timezone), never UTC.
type Rules struct {
	Location     *time.Location
	OpenMinutes  int // start of the working window, minutes from local midnight
	CloseMinutes int // end of the working window, minutes from local midnight (inclusive)
}

// NewRules builds Rules from the configured timezone and "HH:MM" window bounds
func NewRules(timezone, openTime, closeTime string) (Rules, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return Rules{}, fmt.Errorf("%w: unknown timezone %q", ErrInvalidRules, timezone)
	}

	open, err := parseMinutes(openTime)
	if err != nil {
		return Rules{}, err
	}
	close, err := parseMinutes(closeTime)
	if err != nil {
		return Rules{}, err
	}
	if open >= close {
		return Rules{}, fmt.Errorf("%w: open time %s is not before close time %s", ErrInvalidRules, openTime, closeTime)
	}

	return Rules{Location: loc, OpenMinutes: open, CloseMinutes: close}, nil
}

func parseMinutes(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("%w: time %q is not HH:MM", ErrInvalidRules, s)
	}
	return t.Hour()*60 + t.Minute(), nil
}
