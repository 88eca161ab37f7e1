// Package notify defines operational alerts and fans them out to channels.
package notify

import (
	"context"
	"errors"
)

// Alert is an operational message for the people running the deployment
type Alert struct {
	Subject string
	Text    string
	// URL points at the page where the problem can be fixed, if any
	URL string
	// Resolved marks the all-clear that follows an earlier alert
	Resolved bool
}

// Notifier delivers alerts to one channel
type Notifier interface {
	Notify(ctx context.Context, alert Alert) error
}

// Multi sends every alert to all of its notifiers
type Multi []Notifier

// Notify implements Notifier. Every channel is tried even if one fails.
func (m Multi) Notify(ctx context.Context, alert Alert) error {
	var errs []error
	for _, n := range m {
		if err := n.Notify(ctx, alert); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
