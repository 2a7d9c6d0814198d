package domain

import (
	"fmt"
	"time"
)

// Copyright returns the copyright line for the given instant.
// The year is taken from now on every call so it rolls over with the calendar.
func (f *Footer) Copyright(now time.Time) string {
	return fmt.Sprintf("© %d %s", now.Year(), f.Brand)
}
