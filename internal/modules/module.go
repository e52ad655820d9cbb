package modules

import (
	"errors"
	"strings"

	"github.com/2beens/fitgenius/internal/plans"
)

const Collection = "workoutModules"

var (
	// ErrModuleNotFound is shared with plans, so callers can match either.
	ErrModuleNotFound   = plans.ErrModuleNotFound
	ErrEmptyTitle       = errors.New("module title is empty")
	ErrDuplicateTitle   = errors.New("a module with this title already exists")
	ErrInvalidExercises = errors.New("module exercises are invalid")
)

type Exercise struct {
	Name string `json:"name"`
	Sets int    `json:"sets"`
	Reps string `json:"reps"`
}

// WorkoutModule is a reusable routine of the user's library.
type WorkoutModule struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Notes     string     `json:"notes"`
	Exercises []Exercise `json:"exercises"`
}

func (m WorkoutModule) validate() error {
	if strings.TrimSpace(m.Title) == "" {
		return ErrEmptyTitle
	}
	for _, ex := range m.Exercises {
		if strings.TrimSpace(ex.Name) == "" || ex.Sets < 0 {
			return ErrInvalidExercises
		}
	}
	return nil
}

// PlanModule converts the library module into the shape assigned to plan days.
func (m WorkoutModule) PlanModule() plans.Module {
	exercises := make([]plans.Exercise, 0, len(m.Exercises))
	for _, ex := range m.Exercises {
		exercises = append(exercises, plans.Exercise{
			Name: ex.Name,
			Sets: ex.Sets,
			Reps: ex.Reps,
		})
	}
	return plans.Module{
		Title:     m.Title,
		Notes:     m.Notes,
		Exercises: exercises,
	}
}

// FromPlanModule builds a library module out of a plan module, dropping completion state.
func FromPlanModule(m plans.Module) WorkoutModule {
	exercises := make([]Exercise, 0, len(m.Exercises))
	for _, ex := range m.Exercises {
		exercises = append(exercises, Exercise{
			Name: ex.Name,
			Sets: ex.Sets,
			Reps: ex.Reps,
		})
	}
	return WorkoutModule{
		Title:     m.Title,
		Notes:     m.Notes,
		Exercises: exercises,
	}
}

func encode(m WorkoutModule) map[string]any {
	return plans.EncodeModule(m.PlanModule(), false)
}

func decode(id string, data map[string]any) WorkoutModule {
	m := FromPlanModule(plans.DecodeModule(data))
	m.ID = id
	return m
}
