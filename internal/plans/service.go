package plans

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fitgenius/internal/docstore"
	"github.com/2beens/fitgenius/internal/telemetry/metrics"
	"github.com/2beens/fitgenius/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const WeeksCollection = "weeklyWorkoutPlans"

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=plans_test

type moduleSource interface {
	GetModule(ctx context.Context, uid, moduleID string) (Module, error)
}

type locationSource interface {
	Location(ctx context.Context, uid string) (*time.Location, error)
}

// RewardHook is notified after a day reward has been claimed.
type RewardHook interface {
	RewardClaimed(ctx context.Context, uid string, day DayPlan) error
}

type NewServiceParams struct {
	Store          docstore.Store
	Modules        moduleSource
	Locations      locationSource
	RewardHook     RewardHook
	MetricsManager *metrics.Manager
	// Now defaults to time.Now
	Now func() time.Time
}

type Service struct {
	store          docstore.Store
	modules        moduleSource
	locations      locationSource
	rewardHook     RewardHook
	metricsManager *metrics.Manager
	now            func() time.Time
}

func NewService(params NewServiceParams) *Service {
	now := params.Now
	if now == nil {
		now = time.Now
	}
	return &Service{
		store:          params.Store,
		modules:        params.Modules,
		locations:      params.Locations,
		rewardHook:     params.RewardHook,
		metricsManager: params.MetricsManager,
		now:            now,
	}
}

func weekRef(uid, weekID string) docstore.Ref {
	return docstore.Ref{
		Collection: docstore.UserCollection(uid, WeeksCollection),
		ID:         weekID,
	}
}

// Location returns the time zone plan days of the user are evaluated in.
func (s *Service) Location(ctx context.Context, uid string) (*time.Location, error) {
	loc, err := s.locations.Location(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("user location: %w", err)
	}
	return loc, nil
}

// GetWeek returns the current week of the user. The stored week is loaded when
// present, otherwise a fresh week is generated and stored if still absent.
func (s *Service) GetWeek(ctx context.Context, uid string) (_ *Week, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.plans.getWeek")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	loc, err := s.Location(ctx, uid)
	if err != nil {
		return nil, err
	}

	week, err := s.currentWeek(ctx, uid, loc, s.now())
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("week.id", week.ID))
	return week, nil
}

func (s *Service) currentWeek(ctx context.Context, uid string, loc *time.Location, now time.Time) (*Week, error) {
	generated := GenerateWeek(now, loc)
	ref := weekRef(uid, generated.ID)

	week, err := s.loadWeek(ctx, ref, generated)
	if err == nil {
		return week, nil
	}
	if !errors.Is(err, ErrWeekNotFound) {
		return nil, err
	}

	created, err := s.store.Create(ctx, ref, EncodeDayPlans(generated.Days))
	if err != nil {
		return nil, fmt.Errorf("create week %s: %w", generated.ID, err)
	}
	if created {
		log.Debugf("week %s generated for user %s", generated.ID, uid)
		if s.metricsManager != nil {
			s.metricsManager.CounterWeeksGenerated.Inc()
		}
		return &generated, nil
	}

	// created concurrently by another request, the stored week wins
	return s.loadWeek(ctx, ref, generated)
}

// loadWeek reads the stored week. A stored document without day plans yields
// the generated week, which is returned but not written.
func (s *Service) loadWeek(ctx context.Context, ref docstore.Ref, generated Week) (*Week, error) {
	doc, err := s.store.Get(ctx, ref)
	if errors.Is(err, docstore.ErrNotFound) {
		return nil, ErrWeekNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get week %s: %w", ref.ID, err)
	}

	days, ok := DecodeDayPlans(doc.Data)
	if !ok {
		log.Warnf("stored week %s has no day plans, using a generated one", ref)
		return &generated, nil
	}

	week := generated
	week.Days = days
	return &week, nil
}

// GetWeekByID returns a stored week without generating anything.
func (s *Service) GetWeekByID(ctx context.Context, uid, weekID string) (_ *Week, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.plans.getWeekByID")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("week.id", weekID))

	loc, err := s.Location(ctx, uid)
	if err != nil {
		return nil, err
	}
	start, err := ParseWeekID(weekID, loc)
	if err != nil {
		return nil, err
	}

	doc, err := s.store.Get(ctx, weekRef(uid, weekID))
	if errors.Is(err, docstore.ErrNotFound) {
		return nil, ErrWeekNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get week %s: %w", weekID, err)
	}

	days, ok := DecodeDayPlans(doc.Data)
	if !ok {
		return nil, ErrWeekNotFound
	}

	return &Week{
		ID:    weekID,
		Start: start,
		Days:  days,
	}, nil
}

// dayMutation changes a single day plan. isToday tells whether the day is the
// current calendar day of the user.
type dayMutation func(day *DayPlan, isToday bool) error

// mutateDay applies fn to the day plan of date inside the current week, as a
// single read-modify-write of the stored week.
func (s *Service) mutateDay(ctx context.Context, uid string, date time.Time, fn dayMutation) (*Week, DayPlan, error) {
	loc, err := s.Location(ctx, uid)
	if err != nil {
		return nil, DayPlan{}, err
	}
	now := s.now()
	current, err := s.currentWeek(ctx, uid, loc, now)
	if err != nil {
		return nil, DayPlan{}, err
	}
	if !Contains(current.Start, date.In(loc)) {
		return nil, DayPlan{}, ErrDayNotInWeek
	}

	var changed DayPlan
	week := *current
	_, err = s.store.Update(ctx, weekRef(uid, current.ID), func(data map[string]any) (map[string]any, error) {
		days, ok := DecodeDayPlans(data)
		if !ok {
			days = GenerateWeek(now, loc).Days
		}
		week.Days = days

		i := week.DayIndex(date, loc)
		if i < 0 {
			return nil, ErrDayNotInWeek
		}
		day := &week.Days[i]
		claimedBefore := day.RewardClaimed
		if err := fn(day, IsSameDay(day.Date, now, loc)); err != nil {
			return nil, err
		}
		// a claimed reward is never given back
		day.RewardClaimed = day.RewardClaimed || claimedBefore
		changed = *day

		if data == nil {
			data = map[string]any{}
		}
		data[dayPlansField] = EncodeDayPlans(week.Days)[dayPlansField]
		return data, nil
	})
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, DayPlan{}, ErrWeekNotFound
		}
		return nil, DayPlan{}, err
	}

	return &week, changed, nil
}

// AssignModule copies a library module onto a day, with all exercises
// incomplete. The day of today is locked once its reward is claimed.
func (s *Service) AssignModule(ctx context.Context, uid string, date time.Time, moduleID string) (_ *Week, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.plans.assignModule")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("date", date.Format(DateLayout)),
		attribute.String("module.id", moduleID),
	)

	module, err := s.modules.GetModule(ctx, uid, moduleID)
	if err != nil {
		if errors.Is(err, ErrModuleNotFound) {
			return nil, ErrModuleNotFound
		}
		return nil, fmt.Errorf("get module %s: %w", moduleID, err)
	}
	fresh := module.Fresh()

	week, _, err := s.mutateDay(ctx, uid, date, func(day *DayPlan, isToday bool) error {
		if isToday && day.RewardClaimed {
			return ErrDayLocked
		}
		day.AssignedModule = &fresh
		return nil
	})
	return week, err
}

// ClearDay removes the module of a day. Same locking as AssignModule.
func (s *Service) ClearDay(ctx context.Context, uid string, date time.Time) (_ *Week, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.plans.clearDay")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("date", date.Format(DateLayout)))

	week, _, err := s.mutateDay(ctx, uid, date, func(day *DayPlan, isToday bool) error {
		if isToday && day.RewardClaimed {
			return ErrDayLocked
		}
		day.AssignedModule = nil
		return nil
	})
	return week, err
}

// SetExerciseCompletion marks a single exercise of today's module.
func (s *Service) SetExerciseCompletion(ctx context.Context, uid string, date time.Time, index int, completed bool) (_ *Week, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.plans.setExerciseCompletion")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("date", date.Format(DateLayout)),
		attribute.Int("exercise.index", index),
		attribute.Bool("completed", completed),
	)

	week, _, err := s.mutateDay(ctx, uid, date, func(day *DayPlan, isToday bool) error {
		if !isToday {
			return ErrNotToday
		}
		if day.AssignedModule == nil {
			return ErrNoModule
		}
		if day.RewardClaimed {
			return ErrRewardClaimed
		}
		if index < 0 || index >= len(day.AssignedModule.Exercises) {
			return ErrExerciseIndex
		}
		day.AssignedModule.Exercises[index].IsCompleted = completed
		return nil
	})
	return week, err
}

// ClaimReward sets the reward flag of today once all exercises are done and
// then notifies the reward hook. Hook failures never undo the claim.
func (s *Service) ClaimReward(ctx context.Context, uid string, date time.Time) (_ *Week, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.plans.claimReward")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("date", date.Format(DateLayout)))

	week, claimedDay, err := s.mutateDay(ctx, uid, date, func(day *DayPlan, isToday bool) error {
		if !isToday {
			return ErrNotToday
		}
		if day.RewardClaimed {
			return ErrRewardClaimed
		}
		if day.AssignedModule == nil {
			return ErrNoModule
		}
		if !day.AssignedModule.AllCompleted() {
			return ErrModuleIncomplete
		}
		day.RewardClaimed = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Infof("user %s claimed reward for %s", uid, claimedDay.Date.Format(DateLayout))
	if s.metricsManager != nil {
		s.metricsManager.CounterRewardsClaimed.Inc()
	}

	if s.rewardHook != nil {
		if hookErr := s.rewardHook.RewardClaimed(ctx, uid, claimedDay); hookErr != nil {
			log.Errorf("reward hook for user %s: %s", uid, hookErr)
			span.AddEvent("reward hook failed")
		}
	}

	return week, nil
}

// PruneWeeks removes stored weeks of all users that started before the week
// containing before.
func (s *Service) PruneWeeks(ctx context.Context, before time.Time) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.plans.pruneWeeks")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	// week ids embed the local week start date and sort chronologically, so
	// the user's zone never moves a week across the cutoff
	cutoffID := WeekID(before, time.UTC)
	deleted, err := s.store.DeleteBeforeID(ctx, "/"+WeeksCollection, cutoffID)
	if err != nil {
		return 0, fmt.Errorf("delete weeks before %s: %w", cutoffID, err)
	}

	span.SetAttributes(attribute.Int64("deleted", deleted))
	if s.metricsManager != nil {
		s.metricsManager.CounterWeeksPruned.Add(float64(deleted))
	}
	log.Infof("pruned %d weeks before %s", deleted, cutoffID)
	return deleted, nil
}
