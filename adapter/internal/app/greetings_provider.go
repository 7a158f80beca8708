package app

import (
	"context"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"sync"
	"time"
)

// ItemGreetings is the only item GreetingsProvider serves.
const ItemGreetings = "greetings"

type GreetingsConfig struct {
	MinPause time.Duration    // Shortest wait between two greetings
	MaxPause time.Duration    // Longest wait between two greetings
	Clock    func() time.Time // Source of greeting timestamps
}

func NewDefaultGreetingsConfig() GreetingsConfig {
	return GreetingsConfig{
		MinPause: time.Second,
		MaxPause: time.Second * 2,
		Clock:    time.Now,
	}
}

// GreetingsProvider implements DataProvider and pushes alternating "Hello" and "World" greetings,
// each with the current time, for the greetings item. Each subscription runs one publish task on the runner.
type GreetingsProvider struct {
	config        GreetingsConfig
	runner        TaskRunner
	subscriptions *SubscriptionPool
	logger        *zap.Logger

	mu       sync.RWMutex
	listener ItemEventListener
}

var _ DataProvider = (*GreetingsProvider)(nil)

// NewGreetingsProvider is the constructor for GreetingsProvider.
func NewGreetingsProvider(config GreetingsConfig, runner TaskRunner, logger *zap.Logger) *GreetingsProvider {
	if config.Clock == nil {
		config.Clock = time.Now
	}
	return &GreetingsProvider{
		config:        config,
		runner:        runner,
		subscriptions: NewSubscriptionPool(),
		logger:        logger,
	}
}

func (s *GreetingsProvider) Initialize(parameters map[string]string, configFile string) error {
	s.logger.Info("Initialized",
		zap.Any("parameters", parameters),
		zap.String("config_file", configFile))
	return nil
}

func (s *GreetingsProvider) SetListener(listener ItemEventListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listener = listener
}

// Subscribe starts publishing greetings for itemName.
// Returns ErrUnknownItem for anything but ItemGreetings, ErrNoListener before SetListener and
// ErrAlreadySubscribed if the item is being published already.
func (s *GreetingsProvider) Subscribe(itemName string) error {
	if itemName != ItemGreetings {
		return errors.Wrapf(ErrUnknownItem, "item '%s'", itemName)
	}

	listener := s.getListener()
	if listener == nil {
		return ErrNoListener
	}

	task := NewItemTask()
	if err := s.subscriptions.Add(itemName, task); err != nil {
		task.abort()
		return errors.Wrap(err, "add a task to a subscription pool")
	}

	err := s.runner.Submit(func() {
		task.Run(func(ctx context.Context) {
			s.publishGreetings(ctx, itemName, listener)
		})
	})
	if err != nil {
		// An Unsubscribe racing with Submit may have taken the task already, and a new Subscribe
		// may have registered its own, so only ever remove this one
		s.subscriptions.RemoveTask(itemName, task)
		task.abort()
		return errors.Wrap(err, "runner.Submit")
	}

	s.logger.Info("Subscribed", zap.String("item", itemName))
	return nil
}

// Unsubscribe stops the publish task of itemName and waits for it to finish.
// Returns ErrNotSubscribed if the item has no task.
func (s *GreetingsProvider) Unsubscribe(itemName string) error {
	task, ok := s.subscriptions.Remove(itemName)
	if !ok {
		return errors.Wrapf(ErrNotSubscribed, "item '%s'", itemName)
	}

	task.Stop()

	s.logger.Info("Unsubscribed", zap.String("item", itemName))
	return nil
}

// IsSnapshotAvailable is always false, subscribers only get greetings published after they subscribe.
func (s *GreetingsProvider) IsSnapshotAvailable(string) bool {
	return false
}

func (s *GreetingsProvider) getListener() ItemEventListener {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listener
}

// publishGreetings delivers a greeting to listener, pauses for a random time and repeats until ctx is done.
// A failed delivery ends the loop and is reported to listener.Failure.
func (s *GreetingsProvider) publishGreetings(ctx context.Context, itemName string, listener ItemEventListener) {
	logger := s.logger.With(zap.String("item", itemName))
	logger.Debug("Publishing greetings")

	for tick := 0; ; tick++ {
		select {
		case <-ctx.Done():
			logger.Debug("Stopping publishing greetings, context cancelled")
			return
		default:
		}

		greeting := NewGreeting(tick, s.config.Clock())
		if err := listener.Update(itemName, greeting.Fields(), false); err != nil {
			logger.Error("Failure delivering a greeting", zap.Error(err))
			listener.Failure(errors.Wrapf(err, "deliver update of item '%s'", itemName))
			return
		}

		pause := time.NewTimer(RandomPause(s.config.MinPause, s.config.MaxPause))
		select {
		case <-ctx.Done():
			pause.Stop()
			logger.Debug("Stopping publishing greetings, context cancelled")
			return
		case <-pause.C:
		}
	}
}
