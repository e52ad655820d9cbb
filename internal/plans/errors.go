package plans

import "errors"

var (
	ErrWeekNotFound     = errors.New("week not found")
	ErrInvalidWeekID    = errors.New("invalid week id")
	ErrInvalidDate      = errors.New("invalid date")
	ErrDayNotInWeek     = errors.New("day is not in the current week")
	ErrModuleNotFound   = errors.New("workout module not found")
	ErrDayLocked        = errors.New("day is locked, reward already claimed today")
	ErrNotToday         = errors.New("day is not today")
	ErrNoModule         = errors.New("no workout module assigned")
	ErrRewardClaimed    = errors.New("reward already claimed")
	ErrModuleIncomplete = errors.New("not all exercises are completed")
	ErrExerciseIndex    = errors.New("exercise index out of range")
)
