package modules

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/2beens/fitgenius/internal/docstore"
	"github.com/2beens/fitgenius/internal/plans"
	"github.com/2beens/fitgenius/internal/telemetry/tracing"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

type Service struct {
	store docstore.Store
	newID func() string
}

func NewService(store docstore.Store) *Service {
	return &Service{
		store: store,
		newID: uuid.NewString,
	}
}

func collection(uid string) string {
	return docstore.UserCollection(uid, Collection)
}

// Save stores a new module in the library of the user under a fresh id.
func (s *Service) Save(ctx context.Context, uid string, module WorkoutModule) (_ *WorkoutModule, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.modules.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	module.Title = strings.TrimSpace(module.Title)
	if err := module.validate(); err != nil {
		return nil, err
	}

	existing, err := s.store.FindByField(ctx, collection(uid), "title", module.Title)
	if err != nil {
		return nil, fmt.Errorf("find modules by title: %w", err)
	}
	if len(existing) > 0 {
		return nil, ErrDuplicateTitle
	}

	module.ID = s.newID()
	span.SetAttributes(attribute.String("module.id", module.ID))

	// the lookup above is only a fast path, a concurrent save of the same
	// title is rejected by the store
	created, err := s.store.Create(ctx, docstore.Ref{Collection: collection(uid), ID: module.ID}, encode(module))
	if errors.Is(err, docstore.ErrConflict) {
		return nil, ErrDuplicateTitle
	}
	if err != nil {
		return nil, fmt.Errorf("create module: %w", err)
	}
	if !created {
		return nil, fmt.Errorf("module id %s already taken", module.ID)
	}

	log.Debugf("user %s saved module %s [%s]", uid, module.ID, module.Title)
	return &module, nil
}

// List returns all modules of the user ordered by title.
func (s *Service) List(ctx context.Context, uid string) (_ []WorkoutModule, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.modules.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	docs, err := s.store.List(ctx, collection(uid))
	if err != nil {
		return nil, fmt.Errorf("list modules: %w", err)
	}

	modules := make([]WorkoutModule, 0, len(docs))
	for _, doc := range docs {
		modules = append(modules, decode(doc.ID, doc.Data))
	}
	sort.SliceStable(modules, func(i, j int) bool {
		ti, tj := strings.ToLower(modules[i].Title), strings.ToLower(modules[j].Title)
		if ti != tj {
			return ti < tj
		}
		return modules[i].ID < modules[j].ID
	})

	span.SetAttributes(attribute.Int("modules.count", len(modules)))
	return modules, nil
}

func (s *Service) Get(ctx context.Context, uid, id string) (_ *WorkoutModule, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.modules.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("module.id", id))

	doc, err := s.store.Get(ctx, docstore.Ref{Collection: collection(uid), ID: id})
	if errors.Is(err, docstore.ErrNotFound) {
		return nil, ErrModuleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get module %s: %w", id, err)
	}

	module := decode(doc.ID, doc.Data)
	return &module, nil
}

// GetModule returns the module in the shape plan days carry.
func (s *Service) GetModule(ctx context.Context, uid, moduleID string) (plans.Module, error) {
	module, err := s.Get(ctx, uid, moduleID)
	if err != nil {
		return plans.Module{}, err
	}
	return module.PlanModule(), nil
}

func (s *Service) Delete(ctx context.Context, uid, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.modules.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("module.id", id))

	if err := s.store.Delete(ctx, docstore.Ref{Collection: collection(uid), ID: id}); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return ErrModuleNotFound
		}
		return fmt.Errorf("delete module %s: %w", id, err)
	}
	return nil
}

// DeleteByTitle removes every module of the user carrying title.
func (s *Service) DeleteByTitle(ctx context.Context, uid, title string) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.modules.deleteByTitle")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	deleted, err := s.store.DeleteByField(ctx, collection(uid), "title", strings.TrimSpace(title))
	if err != nil {
		return 0, fmt.Errorf("delete modules by title: %w", err)
	}
	span.SetAttributes(attribute.Int64("deleted", deleted))
	return deleted, nil
}
