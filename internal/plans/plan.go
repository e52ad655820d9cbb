package plans

import "time"

type Exercise struct {
	Name        string `json:"name"`
	Sets        int    `json:"sets"`
	Reps        string `json:"reps"`
	IsCompleted bool   `json:"isCompleted"`
}

type Module struct {
	Title     string     `json:"title"`
	Notes     string     `json:"notes"`
	Exercises []Exercise `json:"exercises"`
}

// Fresh returns a copy of the module with every exercise marked incomplete.
func (m Module) Fresh() Module {
	exercises := make([]Exercise, len(m.Exercises))
	for i, ex := range m.Exercises {
		ex.IsCompleted = false
		exercises[i] = ex
	}
	m.Exercises = exercises
	return m
}

// AllCompleted reports whether the module has exercises and all of them are done.
func (m Module) AllCompleted() bool {
	if len(m.Exercises) == 0 {
		return false
	}
	for _, ex := range m.Exercises {
		if !ex.IsCompleted {
			return false
		}
	}
	return true
}

type DayPlan struct {
	DayName        string    `json:"dayName"`
	Date           time.Time `json:"date"`
	AssignedModule *Module   `json:"assignedModule,omitempty"`
	RewardClaimed  bool      `json:"rewardClaimed"`
}

// Progress is the share of completed exercises of the day, 0 without a module.
func Progress(day DayPlan) float64 {
	if day.AssignedModule == nil || len(day.AssignedModule.Exercises) == 0 {
		return 0
	}
	completed := 0
	for _, ex := range day.AssignedModule.Exercises {
		if ex.IsCompleted {
			completed++
		}
	}
	return float64(completed) / float64(len(day.AssignedModule.Exercises))
}

type Week struct {
	ID    string    `json:"id"`
	Start time.Time `json:"start"`
	Days  []DayPlan `json:"days"`
}

// DayIndex returns the index of the day plan falling on the same calendar
// day as date, or -1.
func (w *Week) DayIndex(date time.Time, loc *time.Location) int {
	for i := range w.Days {
		if IsSameDay(w.Days[i].Date, date, loc) {
			return i
		}
	}
	return -1
}
