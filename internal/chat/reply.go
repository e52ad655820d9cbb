package chat

import (
	"encoding/json"
	"strings"

	"github.com/2beens/fitgenius/internal/modules"

	log "github.com/sirupsen/logrus"
)

const (
	moduleDataMarker = "RAW MODULE DATA"
	fallbackReply    = "Sorry, I couldn't generate a response."
)

// ParseReply splits a raw assistant reply into the text shown to the user and
// the workout modules suggested after the module data marker.
func ParseReply(raw string) (string, []modules.WorkoutModule) {
	if strings.TrimSpace(raw) == "" {
		return fallbackReply, nil
	}

	before, after, found := strings.Cut(raw, moduleDataMarker)
	display := displayText(before)
	if !found {
		return display, nil
	}

	return display, parseModules(after)
}

func displayText(s string) string {
	lines := strings.Split(s, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.TrimSpace(line) == "---" {
			continue
		}
		kept = append(kept, line)
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}

func parseModules(s string) []modules.WorkoutModule {
	start := strings.Index(s, "[")
	end := strings.LastIndex(s, "]")
	if start < 0 || end <= start {
		log.Debugln("chat reply: module data marker without json array")
		return nil
	}

	var parsed []modules.WorkoutModule
	if err := json.Unmarshal([]byte(s[start:end+1]), &parsed); err != nil {
		log.Warnf("chat reply: decode module data: %s", err)
		return nil
	}
	return parsed
}
