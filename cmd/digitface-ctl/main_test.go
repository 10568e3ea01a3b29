package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tinytelemetry/digitface/internal/model"
)

type recordingFace struct {
	calls []string
}

func (f *recordingFace) Tap() error {
	f.calls = append(f.calls, "tap")
	return nil
}

func (f *recordingFace) SetConnected(c bool) error {
	if c {
		f.calls = append(f.calls, "connect")
	} else {
		f.calls = append(f.calls, "disconnect")
	}
	return nil
}

func (f *recordingFace) Resync() error {
	f.calls = append(f.calls, "resync")
	return nil
}

func (f *recordingFace) Snapshot() (model.FaceSnapshot, error) {
	f.calls = append(f.calls, "status")
	return model.FaceSnapshot{
		Display: "12:07",
		Idle:    true,
		Tiles: []model.TileSnapshot{
			{Slot: "hour-tens", Value: 1, Resting: true},
			{Slot: "minute-ones", Value: 7, Transitioning: true},
		},
	}, nil
}

func TestRunCommand(t *testing.T) {
	for _, name := range []string{"tap", "connect", "disconnect", "resync", "status"} {
		t.Run(name, func(t *testing.T) {
			face := &recordingFace{}
			var out bytes.Buffer
			if err := runCommand(&out, face, name); err != nil {
				t.Fatalf("runCommand(%s): %v", name, err)
			}
			if len(face.calls) != 1 || face.calls[0] != name {
				t.Fatalf("calls = %v, want [%s]", face.calls, name)
			}
		})
	}
}

func TestRunCommand_Unknown(t *testing.T) {
	err := runCommand(&bytes.Buffer{}, &recordingFace{}, "explode")
	if err == nil || !strings.Contains(err.Error(), "explode") {
		t.Fatalf("err = %v", err)
	}
}

func TestPrintStatus(t *testing.T) {
	var out bytes.Buffer
	if err := runCommand(&out, &recordingFace{}, "status"); err != nil {
		t.Fatal(err)
	}
	got := out.String()
	for _, want := range []string{"12:07", "idle", "offline", "hour-tens", "moving"} {
		if !strings.Contains(got, want) {
			t.Errorf("status output missing %q:\n%s", want, got)
		}
	}
}
