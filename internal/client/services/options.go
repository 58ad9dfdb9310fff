package services

import (
	"time"

	"github.com/dmitrijs2005/rockside/internal/logging"
)

// Observer receives outcome counts. *metrics.Recorder satisfies it.
type Observer interface {
	ObserveSave(record, outcome string)
	ObserveLoad(record, outcome string)
	ObserveLocation(outcome string)
}

type nopObserver struct{}

func (nopObserver) ObserveSave(string, string) {}
func (nopObserver) ObserveLoad(string, string) {}
func (nopObserver) ObserveLocation(string)     {}

type options struct {
	logger   logging.Logger
	observer Observer
	seal     bool
	now      func() time.Time
}

type Option func(*options)

func WithLogger(l logging.Logger) Option {
	return func(o *options) { o.logger = l }
}

func WithObserver(obs Observer) Option {
	return func(o *options) { o.observer = obs }
}

// WithSealing encrypts newly written records at rest.
func WithSealing(seal bool) Option {
	return func(o *options) { o.seal = seal }
}

// WithClock overrides time.Now, used to default the questionnaire date.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

func buildOptions(opts []Option) options {
	o := options{
		logger:   logging.Nop(),
		observer: nopObserver{},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
