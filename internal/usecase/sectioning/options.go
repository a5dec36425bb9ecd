package sectioning

import (
	domain "course-sectioning/internal/domain/sectioning"
	"course-sectioning/internal/pkg/config"
)

// WaitlistChangedBy marks class enrollments written by the engine on its own behalf.
const WaitlistChangedBy = "WAITLIST"

type Weights struct {
	SameSection    float64
	SameConfig     float64
	SelectionOrder float64
}

// Options is the immutable configuration of one engine instance.
type Options struct {
	Enabled               bool
	AllowWaitListing      bool
	ReschedulingEnabled   bool
	CanKeepCancelledClass bool
	Weights               Weights
}

func OptionsFromConfig(cfg config.Config) Options {
	s := cfg.Sectioning
	return Options{
		Enabled:               s.Enabled,
		AllowWaitListing:      s.AllowWaitListing,
		ReschedulingEnabled:   s.ReschedulingEnabled,
		CanKeepCancelledClass: s.CanKeepCancelledClass,
		Weights: Weights{
			SameSection:    s.Weights.SameSection,
			SameConfig:     s.Weights.SameConfig,
			SelectionOrder: s.Weights.SelectionOrder,
		},
	}
}

func (o Options) checkOptions() domain.CheckOptions {
	return domain.CheckOptions{
		ReschedulingEnabled:   o.ReschedulingEnabled,
		CanKeepCancelledClass: o.CanKeepCancelledClass,
	}
}
