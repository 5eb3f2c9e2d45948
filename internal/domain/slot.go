package domain

import "github.com/m04kA/SMC-CallDashboard/pkg/types"

// TimeRange рабочий интервал консультанта из tbl_consultant_setting.
// EndOfDay означает, что интервал длится до полуночи ("23:00||24:00" или "..||00:00").
type TimeRange struct {
	Start    types.TimeString
	End      types.TimeString
	EndOfDay bool
}

// EndMinutes returns the end of the range in minutes from midnight
func (r TimeRange) EndMinutes() int {
	if r.EndOfDay {
		return 24 * 60
	}
	return r.End.Minutes()
}

// DurationMinutes returns the length of the range in minutes
func (r TimeRange) DurationMinutes() int {
	return r.EndMinutes() - r.Start.Minutes()
}

// IsEmpty returns true if the range has no duration
func (r TimeRange) IsEmpty() bool {
	return r.DurationMinutes() <= 0
}

// Contains returns true if the moment falls inside the range [Start, End)
func (r TimeRange) Contains(t types.TimeString) bool {
	return !t.IsBefore(r.Start) && t.Minutes() < r.EndMinutes()
}
