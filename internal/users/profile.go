package users

import (
	"strings"

	"github.com/2beens/fitgenius/internal/docstore"
)

type Goal string

const (
	GoalToneUp            Goal = "Tone up"
	GoalLoseWeight        Goal = "Lose weight"
	GoalBuildMuscle       Goal = "Build Muscle"
	GoalStrengthTraining  Goal = "Strength Training"
	GoalImprovedEndurance Goal = "Improved Endurance"
)

type Equipment string

const (
	EquipmentHomeGymDumbbells Equipment = "At Home Gym (Dumbells and Yoga Mat)"
	EquipmentHomeGymMat       Equipment = "At Home Gym (Yoga Mat)"
	EquipmentGym              Equipment = "Gym Access"
	EquipmentNone             Equipment = "No Equipment"
)

type ExperienceLevel string

const (
	ExperienceBeginner     ExperienceLevel = "Beginner"
	ExperienceIntermediate ExperienceLevel = "Intermediate"
	ExperienceAdvanced     ExperienceLevel = "Advanced"
)

type Injury string

const (
	InjuryKnee        Injury = "Knee Injury"
	InjuryShoulder    Injury = "Shoulder Injury"
	InjuryLowerBack   Injury = "Lower Back Pain"
	InjuryRespiratory Injury = "Asthma/Respiratory Conditions"
	InjuryJoints      Injury = "Arthritis/Joint Pain"
)

const (
	defaultGoal            = GoalLoseWeight
	defaultEquipment       = EquipmentNone
	defaultExperienceLevel = ExperienceBeginner
)

var (
	goals            = []Goal{GoalToneUp, GoalLoseWeight, GoalBuildMuscle, GoalStrengthTraining, GoalImprovedEndurance}
	equipments       = []Equipment{EquipmentHomeGymDumbbells, EquipmentHomeGymMat, EquipmentGym, EquipmentNone}
	experienceLevels = []ExperienceLevel{ExperienceBeginner, ExperienceIntermediate, ExperienceAdvanced}
	injuries         = []Injury{InjuryKnee, InjuryShoulder, InjuryLowerBack, InjuryRespiratory, InjuryJoints}
)

func parseEnum[T ~string](value string, known []T, fallback T) T {
	for _, k := range known {
		if string(k) == value {
			return k
		}
	}
	return fallback
}

func ParseGoal(s string) Goal {
	return parseEnum(s, goals, defaultGoal)
}

func ParseEquipment(s string) Equipment {
	return parseEnum(s, equipments, defaultEquipment)
}

func ParseExperienceLevel(s string) ExperienceLevel {
	return parseEnum(s, experienceLevels, defaultExperienceLevel)
}

// ParseInjuries keeps the known injuries in order, dropping unknown and repeated ones.
func ParseInjuries(values []string) []Injury {
	parsed := make([]Injury, 0, len(values))
	seen := make(map[Injury]bool)
	for _, v := range values {
		injury := parseEnum(v, injuries, "")
		if injury == "" || seen[injury] {
			continue
		}
		seen[injury] = true
		parsed = append(parsed, injury)
	}
	return parsed
}

type Profile struct {
	FirstName       string          `json:"firstName"`
	LastName        string          `json:"lastName"`
	Email           string          `json:"email"`
	Goal            Goal            `json:"goal"`
	Equipment       Equipment       `json:"equipment"`
	ExperienceLevel ExperienceLevel `json:"experienceLevel"`
	HeightInInches  int             `json:"heightInInches"`
	Weight          int             `json:"weight"`
	Injuries        []Injury        `json:"injuries"`
	Timezone        string          `json:"timezone"`
	AvatarID        string          `json:"avatarId"`
}

// Normalized returns the profile with enumerations mapped to known values.
func (p Profile) Normalized() Profile {
	p.FirstName = strings.TrimSpace(p.FirstName)
	p.LastName = strings.TrimSpace(p.LastName)
	p.Goal = ParseGoal(string(p.Goal))
	p.Equipment = ParseEquipment(string(p.Equipment))
	p.ExperienceLevel = ParseExperienceLevel(string(p.ExperienceLevel))

	injuryNames := make([]string, 0, len(p.Injuries))
	for _, i := range p.Injuries {
		injuryNames = append(injuryNames, string(i))
	}
	p.Injuries = ParseInjuries(injuryNames)

	if p.HeightInInches < 0 {
		p.HeightInInches = 0
	}
	if p.Weight < 0 {
		p.Weight = 0
	}
	p.Timezone = strings.TrimSpace(p.Timezone)
	return p
}

func encodeProfile(p Profile) map[string]any {
	injuryNames := make([]any, 0, len(p.Injuries))
	for _, i := range p.Injuries {
		injuryNames = append(injuryNames, string(i))
	}
	return map[string]any{
		"firstName":       p.FirstName,
		"lastName":        p.LastName,
		"email":           p.Email,
		"goal":            string(p.Goal),
		"equipment":       string(p.Equipment),
		"experienceLevel": string(p.ExperienceLevel),
		"heightInInches":  p.HeightInInches,
		"weight":          p.Weight,
		"injuries":        injuryNames,
		"timezone":        p.Timezone,
		"avatarId":        p.AvatarID,
	}
}

func decodeProfile(data map[string]any) Profile {
	return Profile{
		FirstName:       docstore.AsString(data["firstName"]),
		LastName:        docstore.AsString(data["lastName"]),
		Email:           docstore.AsString(data["email"]),
		Goal:            ParseGoal(docstore.AsString(data["goal"])),
		Equipment:       ParseEquipment(docstore.AsString(data["equipment"])),
		ExperienceLevel: ParseExperienceLevel(docstore.AsString(data["experienceLevel"])),
		HeightInInches:  docstore.AsInt(data["heightInInches"]),
		Weight:          docstore.AsInt(data["weight"]),
		Injuries:        ParseInjuries(docstore.AsStrings(data["injuries"])),
		Timezone:        docstore.AsString(data["timezone"]),
		AvatarID:        docstore.AsString(data["avatarId"]),
	}
}
