package chat

import (
	"fmt"
	"strings"

	"github.com/2beens/fitgenius/internal/users"
)

const noProfileMessage = "No user profile available."

// ProfileMessage renders the profile injected at the start of a conversation.
func ProfileMessage(p *users.Profile) string {
	if p == nil {
		return noProfileMessage
	}

	injuries := "None"
	if len(p.Injuries) > 0 {
		names := make([]string, 0, len(p.Injuries))
		for _, injury := range p.Injuries {
			names = append(names, string(injury))
		}
		injuries = strings.Join(names, ", ")
	}

	return strings.Join([]string{
		"Goal: " + string(p.Goal),
		"Equipment: " + string(p.Equipment),
		"Experience Level: " + string(p.ExperienceLevel),
		"Injuries: " + injuries,
		fmt.Sprintf("Weight: %d lbs", p.Weight),
		fmt.Sprintf("Height: %d ft %d in", p.HeightInInches/12, p.HeightInInches%12),
		"",
		"Use this profile to personalize all upcoming routines.",
	}, "\n")
}
