package alert

import (
	"context"
	"errors"
	"fmt"

	"github.com/minseolee/cryptolens/pkg/mining"
)

// Notification is the data sent to alert destinations when a mining pass
// surfaces emerging topics.
type Notification struct {
	Title     string           `json:"title"`
	Body      string           `json:"body"`
	WindowKey string           `json:"window_key"`
	Patterns  []mining.Pattern `json:"patterns"`
	Rules     []mining.Rule    `json:"rules"`
}

// Notifier delivers alerts to a specific destination.
type Notifier interface {
	Name() string
	Send(ctx context.Context, n *Notification) error
}

// Manager broadcasts notifications to all registered notifiers.
type Manager struct {
	notifiers []Notifier
}

// NewManager creates a new alert manager.
func NewManager(notifiers []Notifier) *Manager {
	return &Manager{notifiers: notifiers}
}

// HasNotifiers returns true if at least one notifier is configured.
func (m *Manager) HasNotifiers() bool {
	return len(m.notifiers) > 0
}

// Broadcast sends a notification to all registered notifiers.
func (m *Manager) Broadcast(ctx context.Context, n *Notification) error {
	var errs []error
	for _, notifier := range m.notifiers {
		if err := notifier.Send(ctx, n); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", notifier.Name(), err))
		}
	}
	return errors.Join(errs...)
}

// patternLine renders one pattern for human-readable destinations.
func patternLine(p mining.Pattern) string {
	return fmt.Sprintf("%v (utility %.2f, seen %d times)", p.Items, p.Utility, p.Frequency)
}

// ruleLine renders one association rule for human-readable destinations.
func ruleLine(r mining.Rule) string {
	return fmt.Sprintf("%v => %v (confidence %.2f)", r.Antecedent, r.Consequent, r.Confidence)
}
