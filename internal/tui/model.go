package tui

import (
	"sync/atomic"
	"time"

	"github.com/tinytelemetry/digitface/internal/face"
	"github.com/tinytelemetry/digitface/internal/glyph"
	"github.com/tinytelemetry/digitface/internal/model"

	"github.com/charmbracelet/bubbles/help"
)

const (
	tilePadX = 2
	tilePadY = 1

	pulseInterval = 150 * time.Millisecond
)

// Options configures a WatchModel.
type Options struct {
	Font           *glyph.Font
	Clock          Clock
	TwelveHour     bool
	IdleTimeout    time.Duration
	AnimDuration   time.Duration
	AnimDelay      time.Duration
	FrameInterval  time.Duration
	InvertDiagonal bool
	AutoResync     bool
}

// WatchModel is the Bubble Tea model hosting the face. All face calls happen
// inside Update, which Bubble Tea runs on a single goroutine.
type WatchModel struct {
	face    *face.Face
	surface *termSurface
	sched   *loopScheduler
	clock   Clock
	font    *glyph.Font
	opts    Options

	keys     KeyMap
	help     help.Model
	showHelp bool

	width  int
	height int

	frameRunning bool
	lastReading  model.ClockReading
	pulses       int // remaining flash toggles after a connectivity change

	snapshot *atomic.Pointer[model.FaceSnapshot]
}

// Message types delivered into the loop, either internally or via Remote.
type (
	minuteTickMsg   time.Time
	frameMsg        time.Time
	pulseMsg        struct{}
	statusTickMsg   struct{}
	TapMsg          struct{}
	ResyncMsg       struct{}
	ConnectivityMsg struct{ Connected bool }
)

// NewWatchModel creates the model. Zero option values fall back to defaults.
func NewWatchModel(opts Options) *WatchModel {
	if opts.Clock == nil {
		opts.Clock = SystemClock{}
	}
	if opts.Font == nil {
		opts.Font, _ = glyph.Builtin(model.DefaultFont)
	}
	if opts.IdleTimeout <= 0 {
		opts.IdleTimeout = model.DefaultIdleTimeout
	}
	if opts.AnimDuration <= 0 {
		opts.AnimDuration = model.DefaultAnimDuration
	}
	if opts.AnimDelay < 0 {
		opts.AnimDelay = model.DefaultAnimDelay
	}
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = model.DefaultFrameInterval
	}

	surface := newTermSurface(time.Now)
	sched := newLoopScheduler(time.Now)

	cfg := face.Config{
		TwelveHour:   opts.TwelveHour,
		IdleTimeout:  opts.IdleTimeout,
		AnimDuration: opts.AnimDuration,
		AnimDelay:    opts.AnimDelay,
		BoxWidth:     opts.Font.Width + 2*tilePadX,
		BoxHeight:    opts.Font.Height + 2*tilePadY,
	}

	m := &WatchModel{
		face:     face.New(cfg, surface, sched),
		surface:  surface,
		sched:    sched,
		clock:    opts.Clock,
		font:     opts.Font,
		opts:     opts,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		snapshot: &atomic.Pointer[model.FaceSnapshot]{},
	}
	m.publish()
	return m
}

// Snapshots returns the shared pointer Remote reads from.
func (m *WatchModel) Snapshots() *atomic.Pointer[model.FaceSnapshot] {
	return m.snapshot
}

func (m *WatchModel) reading() model.ClockReading {
	return model.ReadingAt(m.clock.Now())
}

// publish stores a copy of the face state for other goroutines.
func (m *WatchModel) publish() {
	s := m.face.Snapshot()
	m.snapshot.Store(&s)
}
