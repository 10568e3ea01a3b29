package model

// FaceController is the contract the control surfaces (socket RPC and HTTP)
// drive. Implementations forward into the face's single event loop; callers
// may be on any goroutine.
type FaceController interface {
	Tap() error
	SetConnected(connected bool) error
	Resync() error
	Snapshot() (FaceSnapshot, error)
}
