// Package analytics ships accepted analytics events to the analytics sink.
package analytics

import (
	"context"
	"fmt"

	"github.com/slok/flare/internal/log"
	"github.com/slok/flare/internal/metrics"
	"github.com/slok/flare/internal/model"
	"github.com/slok/flare/internal/settings"
	"github.com/slok/flare/internal/sink"
)

// ForwarderConfig is the configuration for the forwarder.
type ForwarderConfig struct {
	Sink     sink.Analytics
	Settings settings.Provider
	Metrics  metrics.Recorder
	Logger   log.Logger
}

func (c *ForwarderConfig) defaults() error {
	if c.Sink == nil {
		return fmt.Errorf("analytics sink is required")
	}

	if c.Settings == nil {
		return fmt.Errorf("settings provider is required")
	}

	if c.Metrics == nil {
		c.Metrics = metrics.Noop
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "analytics.Forwarder"})

	return nil
}

// Forwarder sends analytics events to the analytics sink while the
// analytics switch is on.
type Forwarder struct {
	sink     sink.Analytics
	settings settings.Provider
	metrics  metrics.Recorder
	logger   log.Logger
}

// NewForwarder creates a new forwarder.
func NewForwarder(cfg ForwarderConfig) (*Forwarder, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Forwarder{
		sink:     cfg.Sink,
		settings: cfg.Settings,
		metrics:  cfg.Metrics,
		logger:   cfg.Logger,
	}, nil
}

// Forward sends the event when analytics collection is enabled. Disabled
// collection is not an error, the event is silently dropped.
func (f *Forwarder) Forward(ctx context.Context, e model.Event) error {
	if err := e.Validate(); err != nil {
		return fmt.Errorf("invalid event: %w", err)
	}

	if !f.settings.Current().Analytics {
		f.logger.Debugf("Analytics collection disabled, dropping event %q", e.Name)
		return nil
	}

	if err := f.sink.Send(ctx, e); err != nil {
		return fmt.Errorf("could not send event %q: %w", e.Name, err)
	}

	f.metrics.ObserveEventForwarded()
	f.logger.Debugf("Forwarded analytics event %q", e.Name)

	return nil
}
