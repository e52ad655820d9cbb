package mcp

import (
	"context"
	"time"

	"github.com/2beens/fitgenius/internal/modules"
	"github.com/2beens/fitgenius/internal/plans"
)

// weekSource provides the week plans of a user (for dependency injection and testing).
type weekSource interface {
	Location(ctx context.Context, uid string) (*time.Location, error)
	GetWeek(ctx context.Context, uid string) (*plans.Week, error)
	GetWeekByID(ctx context.Context, uid, weekID string) (*plans.Week, error)
}

// moduleLister provides the workout module library of a user.
type moduleLister interface {
	List(ctx context.Context, uid string) ([]modules.WorkoutModule, error)
}

// contextService provides the read only plan data exposed as tools. Used by Handler for testability.
type contextService interface {
	WeekPlan(ctx context.Context, uid, weekID string) (*plans.WeekResponse, error)
	WorkoutModules(ctx context.Context, uid string) ([]modules.WorkoutModule, error)
}

// PlanContextService reads week plans and modules on behalf of an MCP client.
type PlanContextService struct {
	weeks   weekSource
	modules moduleLister
	now     func() time.Time
}

func NewPlanContextService(weeks weekSource, modules moduleLister) *PlanContextService {
	return &PlanContextService{
		weeks:   weeks,
		modules: modules,
		now:     time.Now,
	}
}

// WeekPlan returns the current week, or the week with the given id when set.
// Reading the current week generates it when missing, like the app does.
func (s *PlanContextService) WeekPlan(ctx context.Context, uid, weekID string) (*plans.WeekResponse, error) {
	var week *plans.Week
	var err error
	if weekID == "" {
		week, err = s.weeks.GetWeek(ctx, uid)
	} else {
		week, err = s.weeks.GetWeekByID(ctx, uid, weekID)
	}
	if err != nil {
		return nil, err
	}

	loc, err := s.weeks.Location(ctx, uid)
	if err != nil {
		return nil, err
	}

	resp := plans.NewWeekResponse(week, loc, s.now())
	return &resp, nil
}

func (s *PlanContextService) WorkoutModules(ctx context.Context, uid string) ([]modules.WorkoutModule, error) {
	return s.modules.List(ctx, uid)
}
