package mcp

import (
	"net/http"

	"github.com/2beens/fitgenius/internal/auth"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	log "github.com/sirupsen/logrus"
)

// NewServer builds an MCP server with read only plan tools for the given user:
// current or past week plan, workout module library.
func NewServer(service contextService, uid string) *mcp.Server {
	h := NewHandler(service, uid)
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "fitgenius-plans",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_week_plan",
		Description: "Returns the weekly workout plan: 7 days monday to sunday with the assigned workout module, exercise completion, progress and reward state. Optional arg week_id (week-YYYY-MM-DD); defaults to the current week.",
	}, h.GetWeekPlanTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "list_workout_modules",
		Description: "Returns the saved workout modules (title, notes, exercises with sets and reps) that can be assigned to plan days.",
	}, h.GetWorkoutModulesTool())

	return s
}

// NewHTTPHandler serves MCP over streamable HTTP. Every request gets a server
// bound to the user of the session token, set by the auth middleware.
func NewHTTPHandler(service contextService) http.Handler {
	return mcp.NewStreamableHTTPHandler(func(r *http.Request) *mcp.Server {
		uid, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			log.Warnf("mcp request without user session from %s", r.RemoteAddr)
			return nil
		}
		return NewServer(service, uid)
	}, &mcp.StreamableHTTPOptions{
		Stateless: true,
	})
}
