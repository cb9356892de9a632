package workflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/Jamolkhon5/museum/internal/logger"
)

var (
	ErrBusy   = errors.New("generation already in progress")
	ErrClosed = errors.New("session closed")
)

// Generator отправляет запрос в шлюз генерации описаний.
type Generator interface {
	GenerateDescription(ctx context.Context, subjectTitle, contextText string) (string, error)
}

type Notifier interface {
	ShowSuccess(message string)
	ShowError(message string)
}

// Session ведет один диалог подтверждения для одной формы.
// Одновременно выполняется не больше одного запроса к генератору.
type Session struct {
	generator Generator
	notifier  Notifier
	messages  Messages
	logger    *slog.Logger

	mu      sync.Mutex
	state   State
	form    Form
	pending string
	attempt uint64
	closed  bool

	ctx    context.Context
	cancel context.CancelFunc
}

func NewSession(form Form, generator Generator, notifier Notifier, messages Messages, log *slog.Logger) *Session {
	ctx, cancel := context.WithCancel(context.Background())
	return &Session{
		generator: generator,
		notifier:  notifier,
		messages:  messages,
		logger:    logger.Component(log, "workflow"),
		state:     Idle,
		form:      form.clone(),
		ctx:       ctx,
		cancel:    cancel,
	}
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Form возвращает копию текущей формы.
func (s *Session) Form() Form {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form.clone()
}

// Pending возвращает текст, ожидающий подтверждения.
func (s *Session) Pending() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

// Update применяет правку пользователя к форме.
func (s *Session) Update(edit func(f *Form)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	edit(&s.form)
}

// Generate запускает генерацию из Idle. Возвращает сгенерированный текст,
// который ждет Accept или Dismiss.
func (s *Session) Generate(ctx context.Context) (string, error) {
	return s.run(ctx, Trigger)
}

// Regenerate отбрасывает текущий текст и отправляет ровно один новый запрос.
func (s *Session) Regenerate(ctx context.Context) (string, error) {
	return s.run(ctx, Regenerate)
}

// Accept копирует ожидающий текст в описание формы без изменений.
func (s *Session) Accept() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.apply(Accept); err != nil {
		return "", err
	}
	s.form.Description = s.pending
	s.pending = ""
	s.notifier.ShowSuccess(s.messages.Accepted)
	return s.form.Description, nil
}

// Dismiss закрывает диалог без изменения описания.
func (s *Session) Dismiss() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.apply(Dismiss); err != nil {
		return err
	}
	s.pending = ""
	return nil
}

// Close отменяет запрос в полете. Поздние ответы отбрасываются.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	s.cancel()
	if s.state != Idle {
		s.state, _ = Transition(s.state, Cancel)
	}
	s.pending = ""
}

func (s *Session) run(ctx context.Context, event Event) (string, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return "", ErrClosed
	}
	if s.state == Generating {
		s.mu.Unlock()
		return "", ErrBusy
	}
	if _, err := Transition(s.state, event); err != nil {
		s.mu.Unlock()
		return "", err
	}

	if err := s.form.Check(); err != nil {
		if s.state == ReviewPending {
			s.state, _ = Transition(s.state, Dismiss)
			s.pending = ""
		}
		s.mu.Unlock()
		s.notifier.ShowError(s.messages.precondition(err))
		return "", err
	}

	s.state, _ = Transition(s.state, event)
	s.pending = ""
	s.attempt++
	attempt := s.attempt
	title, contextText := s.form.request()
	s.mu.Unlock()

	callCtx, cancel := context.WithCancel(ctx)
	stop := context.AfterFunc(s.ctx, cancel)
	defer func() {
		stop()
		cancel()
	}()

	s.logger.Info("generating description", slog.String("title", title), slog.String("event", event.String()))
	description, err := s.generator.GenerateDescription(callCtx, title, contextText)

	s.mu.Lock()
	if s.closed || s.attempt != attempt {
		s.mu.Unlock()
		s.logger.Debug("discarding late generation result", slog.Uint64("attempt", attempt))
		return "", ErrClosed
	}

	if err != nil {
		s.state, _ = Transition(s.state, Fail)
		s.mu.Unlock()
		s.logger.Error("description generation failed", slog.String("error", err.Error()))
		s.notifier.ShowError(s.messages.GenerationFailed)
		return "", fmt.Errorf("generate description: %w", err)
	}

	s.state, _ = Transition(s.state, Succeed)
	s.pending = description
	s.mu.Unlock()
	return description, nil
}

func (s *Session) apply(event Event) error {
	if s.closed {
		return ErrClosed
	}
	next, err := Transition(s.state, event)
	if err != nil {
		return err
	}
	s.state = next
	return nil
}
