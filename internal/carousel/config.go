package carousel

import (
	"time"

	"github.com/alexisbeaulieu97/vitrine/internal/media"
)

// Transition selects the animation used between items.
type Transition string

const (
	TransitionSlide Transition = "slide"
	TransitionFade  Transition = "fade"
)

const (
	// DefaultAutoPlayInterval is the delay between automatic advances.
	DefaultAutoPlayInterval = 5 * time.Second
	// DefaultTransitionDuration is how long a navigation blocks further
	// intents.
	DefaultTransitionDuration = 300 * time.Millisecond
)

// VideoControls configures how video items behave.
type VideoControls struct {
	Muted        bool
	AutoPlay     bool
	ShowDuration bool
}

// Config holds the named toggles a host passes to the viewer.
type Config struct {
	ShowDots           bool
	ShowArrows         bool
	Loop               bool
	AutoPlay           bool
	AutoPlayInterval   time.Duration
	EnableSwipe        bool
	PreloadNext        bool
	Transition         Transition
	VideoControls      VideoControls
	TransitionDuration time.Duration
	InitialIndex       int
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		ShowDots:           true,
		ShowArrows:         true,
		Loop:               true,
		AutoPlay:           false,
		AutoPlayInterval:   DefaultAutoPlayInterval,
		EnableSwipe:        true,
		PreloadNext:        true,
		Transition:         TransitionSlide,
		VideoControls:      VideoControls{Muted: true, ShowDuration: true},
		TransitionDuration: DefaultTransitionDuration,
	}
}

func (c Config) normalized() Config {
	if c.AutoPlayInterval <= 0 {
		c.AutoPlayInterval = DefaultAutoPlayInterval
	}
	if c.TransitionDuration < 0 {
		c.TransitionDuration = 0
	}
	if c.Transition != TransitionFade {
		c.Transition = TransitionSlide
	}
	return c
}

// Callbacks are the host notifications. Each fires exactly once per state
// transition. Nil callbacks are skipped.
type Callbacks struct {
	OnIndexChange func(index int, item media.Descriptor)
	OnVideoPlay   func(index int, item media.Descriptor)
	OnVideoPause  func(index int, item media.Descriptor)
}
