package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/fitgenius/internal/modules"
	"github.com/2beens/fitgenius/internal/telemetry/metrics"
	"github.com/2beens/fitgenius/internal/telemetry/tracing"
	"github.com/2beens/fitgenius/internal/users"

	log "github.com/sirupsen/logrus"
)

var ErrEmptyMessage = errors.New("message is empty")

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=chat_test

type conversationStore interface {
	Load(ctx context.Context, uid string) ([]Message, error)
	Append(ctx context.Context, uid string, messages ...Message) error
	Reset(ctx context.Context, uid string) error
}

type profileSource interface {
	GetProfile(ctx context.Context, uid string) (*users.Profile, error)
}

type moduleSaver interface {
	Save(ctx context.Context, uid string, module modules.WorkoutModule) (*modules.WorkoutModule, error)
}

// Reply is what the user sees after sending a message.
type Reply struct {
	Text    string                  `json:"text"`
	Modules []modules.WorkoutModule `json:"modules"`
}

type NewServiceParams struct {
	Conversations  conversationStore
	Completer      Completer
	Profiles       profileSource
	Modules        moduleSaver
	Prompt         *Prompt
	MetricsManager *metrics.Manager
}

type Service struct {
	conversations  conversationStore
	completer      Completer
	profiles       profileSource
	modules        moduleSaver
	prompt         *Prompt
	metricsManager *metrics.Manager
}

func NewService(params NewServiceParams) *Service {
	return &Service{
		conversations:  params.Conversations,
		completer:      params.Completer,
		profiles:       params.Profiles,
		modules:        params.Modules,
		prompt:         params.Prompt,
		metricsManager: params.MetricsManager,
	}
}

// Send adds the user message to the conversation and returns the assistant
// reply. A failed completion is not an error: the user gets a fallback reply.
func (s *Service) Send(ctx context.Context, uid, text string) (_ *Reply, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.chat.send")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyMessage
	}

	history, err := s.conversations.Load(ctx, uid)
	if err != nil {
		return nil, err
	}

	var added []Message
	if len(history) == 0 {
		profileMessage, err := s.profileMessage(ctx, uid)
		if err != nil {
			return nil, err
		}
		added = append(added, Message{Role: RoleUser, Content: profileMessage})
	}
	added = append(added, Message{Role: RoleUser, Content: text})

	rawReply := s.complete(ctx, uid, append(history, added...))
	displayText, suggested := ParseReply(rawReply)
	added = append(added, Message{Role: RoleAssistant, Content: displayText})

	if err := s.conversations.Append(ctx, uid, added...); err != nil {
		return nil, err
	}

	if suggested == nil {
		suggested = []modules.WorkoutModule{}
	}
	return &Reply{
		Text:    displayText,
		Modules: suggested,
	}, nil
}

func (s *Service) profileMessage(ctx context.Context, uid string) (string, error) {
	profile, err := s.profiles.GetProfile(ctx, uid)
	if errors.Is(err, users.ErrProfileNotFound) {
		return ProfileMessage(nil), nil
	}
	if err != nil {
		return "", fmt.Errorf("get profile: %w", err)
	}
	return ProfileMessage(profile), nil
}

func (s *Service) complete(ctx context.Context, uid string, conversation []Message) string {
	start := time.Now()
	reply, err := s.completer.Complete(ctx, s.prompt.SystemPrompt, conversation)
	if s.metricsManager != nil {
		s.metricsManager.HistogramCompletionDuration.Observe(time.Since(start).Seconds())
	}

	result := "ok"
	switch {
	case err != nil:
		log.Errorf("chat completion for user %s: %s", uid, err)
		result = "error"
		reply = ""
	case strings.TrimSpace(reply) == "":
		result = "empty"
	}
	if s.metricsManager != nil {
		s.metricsManager.CounterChatMessages.WithLabelValues(result).Inc()
	}

	return reply
}

// Reset drops the conversation; the next message starts over with the profile.
func (s *Service) Reset(ctx context.Context, uid string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.chat.reset")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return s.conversations.Reset(ctx, uid)
}

// AddModule saves a suggested module into the library and starts a fresh conversation.
func (s *Service) AddModule(ctx context.Context, uid string, module modules.WorkoutModule) (_ *modules.WorkoutModule, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.chat.addModule")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	module.ID = ""
	saved, err := s.modules.Save(ctx, uid, module)
	if err != nil {
		return nil, err
	}

	if err := s.conversations.Reset(ctx, uid); err != nil {
		log.Errorf("chat add module, reset conversation of user %s: %s", uid, err)
	}

	return saved, nil
}
