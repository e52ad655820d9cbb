package plans

import (
	"time"

	"github.com/2beens/fitgenius/internal/docstore"
)

const dayPlansField = "dayPlans"

// EncodeDayPlans converts day plans into the stored document shape.
func EncodeDayPlans(days []DayPlan) map[string]any {
	encoded := make([]any, 0, len(days))
	for _, day := range days {
		dayMap := map[string]any{
			"dayName":       day.DayName,
			"date":          encodeDate(day.Date),
			"rewardClaimed": day.RewardClaimed,
		}
		if day.AssignedModule != nil {
			dayMap["assignedModule"] = EncodeModule(*day.AssignedModule, true)
		}
		encoded = append(encoded, dayMap)
	}
	return map[string]any{dayPlansField: encoded}
}

// EncodeModule converts a module into its stored shape. Completion flags are
// only written when withCompletion is set.
func EncodeModule(m Module, withCompletion bool) map[string]any {
	exercises := make([]any, 0, len(m.Exercises))
	for _, ex := range m.Exercises {
		exMap := map[string]any{
			"name": ex.Name,
			"sets": ex.Sets,
			"reps": ex.Reps,
		}
		if withCompletion {
			exMap["isCompleted"] = ex.IsCompleted
		}
		exercises = append(exercises, exMap)
	}
	return map[string]any{
		"title":     m.Title,
		"notes":     m.Notes,
		"exercises": exercises,
	}
}

// DecodeDayPlans reads day plans from a stored document. It returns false when
// the document holds no usable day plan list.
func DecodeDayPlans(data map[string]any) ([]DayPlan, bool) {
	rawDays, ok := data[dayPlansField].([]any)
	if !ok {
		return nil, false
	}

	days := make([]DayPlan, 0, len(rawDays))
	for _, rawDay := range rawDays {
		dayMap, ok := rawDay.(map[string]any)
		if !ok {
			return nil, false
		}
		day := DayPlan{
			DayName:       docstore.AsString(dayMap["dayName"]),
			Date:          docstore.AsTime(dayMap["date"]),
			RewardClaimed: docstore.AsBool(dayMap["rewardClaimed"]),
		}
		if moduleMap, ok := dayMap["assignedModule"].(map[string]any); ok {
			module := DecodeModule(moduleMap)
			day.AssignedModule = &module
		}
		days = append(days, day)
	}
	return days, true
}

// DecodeModule reads a module, defaulting every missing or mistyped field.
func DecodeModule(data map[string]any) Module {
	module := Module{
		Title: docstore.AsString(data["title"]),
		Notes: docstore.AsString(data["notes"]),
	}
	rawExercises, _ := data["exercises"].([]any)
	for _, rawEx := range rawExercises {
		exMap, ok := rawEx.(map[string]any)
		if !ok {
			continue
		}
		module.Exercises = append(module.Exercises, Exercise{
			Name:        docstore.AsString(exMap["name"]),
			Sets:        docstore.AsInt(exMap["sets"]),
			Reps:        docstore.AsString(exMap["reps"]),
			IsCompleted: docstore.AsBool(exMap["isCompleted"]),
		})
	}
	return module
}

func encodeDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}
