package trace

import (
	"bytes"
	"io"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/lixenwraith/ballista/engine"
	"github.com/lixenwraith/ballista/level"
	"github.com/lixenwraith/ballista/system"
)

func newSession(t *testing.T) *engine.Session {
	t.Helper()
	sess, err := engine.NewSession(level.Default(), engine.WithClock(engine.NewMockTimeProvider(time.Unix(0, 0))))
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	system.Register(sess)
	return sess
}

func TestRecordAndRead(t *testing.T) {
	sess := newSession(t)
	var buf bytes.Buffer

	rec, err := NewRecorder(&buf, sess)
	if err != nil {
		t.Fatalf("NewRecorder: %v", err)
	}

	inputs := []engine.Input{
		{},
		{ChargeStart: true, Release: true},
		{},
		{},
	}
	for _, in := range inputs {
		sess.Step(in)
		if err := rec.Record(sess, sess.Events.Consume()); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}
	if err := rec.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if rec.Frames() != len(inputs) {
		t.Fatalf("Frames = %d, want %d", rec.Frames(), len(inputs))
	}

	rd, err := NewReader(&buf)
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	if len(rd.Header.Entities) != sess.World.Len() || rd.Header.Entities[0].Kind != "ball" {
		t.Fatalf("header = %+v", rd.Header)
	}

	var frames []Frame
	for {
		f, err := rd.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		frames = append(frames, f)
	}

	if len(frames) != len(inputs) {
		t.Fatalf("read %d frames, want %d", len(frames), len(inputs))
	}
	for i, f := range frames {
		if f.Frame != uint64(i+1) {
			t.Errorf("frame %d numbered %d", i, f.Frame)
		}
	}
	if frames[0].Phase != "aiming" || frames[1].Phase != "in-flight" {
		t.Fatalf("phases = %s, %s", frames[0].Phase, frames[1].Phase)
	}
	if len(frames[1].Events) != 1 || frames[1].Events[0].Type != "launched" {
		t.Fatalf("launch frame events = %+v", frames[1].Events)
	}
	if frames[1].Chances != 6 {
		t.Fatalf("chances after launch = %d", frames[1].Chances)
	}
	if len(frames[0].Movers) != 6 {
		t.Fatalf("movers = %d, want three pairs", len(frames[0].Movers))
	}
	if frames[3].Ball.Y >= frames[1].Ball.Y {
		t.Fatalf("dropped ball did not fall: %f -> %f", frames[1].Ball.Y, frames[3].Ball.Y)
	}
}

func TestReaderRejectsVersion(t *testing.T) {
	var buf bytes.Buffer
	if err := msgpack.NewEncoder(&buf).Encode(&Header{Version: Version + 1}); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if _, err := NewReader(&buf); !errors.Is(err, ErrVersion) {
		t.Fatalf("NewReader error = %v, want ErrVersion", err)
	}
}

func TestReaderRejectsGarbage(t *testing.T) {
	// 0xc1 is the one byte msgpack never uses
	if _, err := NewReader(bytes.NewReader([]byte{0xc1, 0x00})); err == nil {
		t.Fatal("garbage header accepted")
	}
	if _, err := NewReader(bytes.NewReader(nil)); err == nil {
		t.Fatal("empty stream accepted")
	}
}
