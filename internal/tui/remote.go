package tui

import (
	"errors"
	"sync/atomic"

	"github.com/tinytelemetry/digitface/internal/model"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrNotReady is returned by Remote.Snapshot before the face has published
// any state.
var ErrNotReady = errors.New("face not ready")

// Remote implements model.FaceController for goroutines outside the Bubble
// Tea loop. Commands are posted as messages; snapshots are read from the
// copy the loop publishes after every update.
type Remote struct {
	send     func(tea.Msg)
	snapshot *atomic.Pointer[model.FaceSnapshot]
}

// NewRemote creates a controller. send is normally (*tea.Program).Send.
func NewRemote(send func(tea.Msg), snapshot *atomic.Pointer[model.FaceSnapshot]) *Remote {
	return &Remote{send: send, snapshot: snapshot}
}

func (r *Remote) Tap() error {
	r.send(TapMsg{})
	return nil
}

func (r *Remote) SetConnected(connected bool) error {
	r.send(ConnectivityMsg{Connected: connected})
	return nil
}

func (r *Remote) Resync() error {
	r.send(ResyncMsg{})
	return nil
}

func (r *Remote) Snapshot() (model.FaceSnapshot, error) {
	s := r.snapshot.Load()
	if s == nil {
		return model.FaceSnapshot{}, ErrNotReady
	}
	return *s, nil
}

var _ model.FaceController = (*Remote)(nil)
