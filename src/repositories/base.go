package repositories

import (
	"time"

	"fintrack/src/utils"
)

// Date parameters are bound as yyyy-mm-dd strings so range comparisons stay
// lexicographic in SQLite regardless of driver-side time formatting.
func dateArg(t time.Time) string {
	return utils.FormatDate(t)
}

func dateArgPtr(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return utils.FormatDate(*t)
}
