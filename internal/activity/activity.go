package activity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fitgenius/internal/docstore"
	"github.com/2beens/fitgenius/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

const (
	Collection = "activity"
	DateLayout = "2006-01-02"
	seriesDays = 7
)

var (
	ErrInvalidDate   = errors.New("invalid date")
	ErrInvalidTotals = errors.New("activity totals must not be negative")
	ErrFutureDate    = errors.New("activity date is in the future")
)

// DailyTotals is what the device reports for one local calendar day.
type DailyTotals struct {
	Date           string  `json:"date"`
	Steps          int     `json:"steps"`
	DistanceMeters float64 `json:"distanceMeters"`
	ActiveCalories float64 `json:"activeCalories"`
}

// WeekSeries holds 7 values per metric, oldest day first and today last.
type WeekSeries struct {
	Dates          []string  `json:"dates"`
	Steps          []int     `json:"steps"`
	DistanceMeters []float64 `json:"distanceMeters"`
	ActiveCalories []float64 `json:"activeCalories"`
}

//go:generate mockgen -source=$GOFILE -destination=activity_mocks_test.go -package=activity_test

type locationSource interface {
	Location(ctx context.Context, uid string) (*time.Location, error)
}

type Service struct {
	store     docstore.Store
	locations locationSource
	now       func() time.Time
}

func NewService(store docstore.Store, locations locationSource) *Service {
	return &Service{
		store:     store,
		locations: locations,
		now:       time.Now,
	}
}

// WithClock replaces the clock used to resolve "today".
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func ref(uid, date string) docstore.Ref {
	return docstore.Ref{
		Collection: docstore.UserCollection(uid, Collection),
		ID:         date,
	}
}

func (s *Service) today(ctx context.Context, uid string) (time.Time, error) {
	loc, err := s.locations.Location(ctx, uid)
	if err != nil {
		return time.Time{}, fmt.Errorf("user location: %w", err)
	}
	y, m, d := s.now().In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc), nil
}

// Report upserts the totals of one day. Reports are absolute, a later report
// for the same day replaces the earlier one.
func (s *Service) Report(ctx context.Context, uid string, totals DailyTotals) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.activity.report")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("date", totals.Date))

	today, err := s.today(ctx, uid)
	if err != nil {
		return err
	}
	day, err := time.ParseInLocation(DateLayout, totals.Date, today.Location())
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDate, totals.Date)
	}
	if day.After(today) {
		return ErrFutureDate
	}
	if totals.Steps < 0 || totals.DistanceMeters < 0 || totals.ActiveCalories < 0 {
		return ErrInvalidTotals
	}

	return s.store.Set(ctx, ref(uid, totals.Date), map[string]any{
		"steps":          totals.Steps,
		"distanceMeters": totals.DistanceMeters,
		"activeCalories": totals.ActiveCalories,
	})
}

func (s *Service) get(ctx context.Context, uid, date string) (DailyTotals, error) {
	doc, err := s.store.Get(ctx, ref(uid, date))
	if errors.Is(err, docstore.ErrNotFound) {
		return DailyTotals{Date: date}, nil
	}
	if err != nil {
		return DailyTotals{}, fmt.Errorf("get activity %s: %w", date, err)
	}
	return DailyTotals{
		Date:           date,
		Steps:          docstore.AsInt(doc.Data["steps"]),
		DistanceMeters: docstore.AsFloat64(doc.Data["distanceMeters"]),
		ActiveCalories: docstore.AsFloat64(doc.Data["activeCalories"]),
	}, nil
}

// Today returns the totals of the current local day, zero when nothing was reported.
func (s *Service) Today(ctx context.Context, uid string) (_ DailyTotals, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.activity.today")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	today, err := s.today(ctx, uid)
	if err != nil {
		return DailyTotals{}, err
	}
	return s.get(ctx, uid, today.Format(DateLayout))
}

// LastSevenDays returns the series of the last 7 local days, zero filled.
func (s *Service) LastSevenDays(ctx context.Context, uid string) (_ *WeekSeries, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.activity.lastSevenDays")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	today, err := s.today(ctx, uid)
	if err != nil {
		return nil, err
	}

	series := &WeekSeries{
		Dates:          make([]string, 0, seriesDays),
		Steps:          make([]int, 0, seriesDays),
		DistanceMeters: make([]float64, 0, seriesDays),
		ActiveCalories: make([]float64, 0, seriesDays),
	}
	y, m, d := today.Date()
	for offset := seriesDays - 1; offset >= 0; offset-- {
		date := time.Date(y, m, d-offset, 0, 0, 0, 0, today.Location()).Format(DateLayout)
		totals, err := s.get(ctx, uid, date)
		if err != nil {
			return nil, err
		}
		series.Dates = append(series.Dates, date)
		series.Steps = append(series.Steps, totals.Steps)
		series.DistanceMeters = append(series.DistanceMeters, totals.DistanceMeters)
		series.ActiveCalories = append(series.ActiveCalories, totals.ActiveCalories)
	}

	return series, nil
}
