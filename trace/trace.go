package trace

import (
	"bufio"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/lixenwraith/ballista/component"
	"github.com/lixenwraith/ballista/engine"
)

// Version is written in the header; readers reject other versions
const Version = 1

// ErrVersion is returned for a stream written by an incompatible recorder
var ErrVersion = errors.New("unsupported trace version")

// Header opens a trace with the static entity table
type Header struct {
	Version  int     `msgpack:"v"`
	Entities []Piece `msgpack:"entities"`
}

// Piece names one entity of the arena
type Piece struct {
	ID   int32   `msgpack:"id"`
	Name string  `msgpack:"name"`
	Kind string  `msgpack:"kind"`
	X    float64 `msgpack:"x"`
	Y    float64 `msgpack:"y"`
}

// Frame is one simulation step
type Frame struct {
	Frame   uint64  `msgpack:"f"`
	Phase   string  `msgpack:"p"`
	Score   int     `msgpack:"s"`
	Chances int     `msgpack:"c"`
	Aim     float64 `msgpack:"a"`
	Ball    Body    `msgpack:"b"`
	// Movers are the translateable entities; everything else only changes through events
	Movers []Body  `msgpack:"m,omitempty"`
	Events []Event `msgpack:"ev,omitempty"`
}

// Body is the kinematic state of one entity
type Body struct {
	ID     int32   `msgpack:"id"`
	X      float64 `msgpack:"x"`
	Y      float64 `msgpack:"y"`
	VX     float64 `msgpack:"vx"`
	VY     float64 `msgpack:"vy"`
	Active bool    `msgpack:"on"`
}

// Event mirrors engine.GameEvent with a readable type
type Event struct {
	Type   string  `msgpack:"t"`
	Entity int32   `msgpack:"e"`
	Value  float64 `msgpack:"val"`
}

func bodyOf(e *component.Entity) Body {
	return Body{
		ID:     int32(e.ID),
		X:      e.Origin.X,
		Y:      e.Origin.Y,
		VX:     e.Velocity.X,
		VY:     e.Velocity.Y,
		Active: e.Active,
	}
}

// Recorder streams frames as consecutive msgpack values
type Recorder struct {
	buf    *bufio.Writer
	enc    *msgpack.Encoder
	closer io.Closer
	frames int
}

// Create opens path and writes the header for sess
func Create(path string, sess *engine.Session) (*Recorder, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrap(err, "create trace")
	}
	r, err := NewRecorder(f, sess)
	if err != nil {
		f.Close()
		return nil, err
	}
	r.closer = f
	return r, nil
}

// NewRecorder writes the header for sess to w
func NewRecorder(w io.Writer, sess *engine.Session) (*Recorder, error) {
	buf := bufio.NewWriter(w)
	r := &Recorder{buf: buf, enc: msgpack.NewEncoder(buf)}

	h := Header{Version: Version}
	for _, e := range sess.World.Entities() {
		h.Entities = append(h.Entities, Piece{
			ID:   int32(e.ID),
			Name: e.Name,
			Kind: e.Kind.String(),
			X:    e.Origin.X,
			Y:    e.Origin.Y,
		})
	}
	if err := r.enc.Encode(&h); err != nil {
		return nil, errors.Wrap(err, "write trace header")
	}
	return r, nil
}

// Record appends the session's current frame with the events it produced
func (r *Recorder) Record(sess *engine.Session, events []engine.GameEvent) error {
	st := &sess.State
	f := Frame{
		Frame:   st.Frame,
		Phase:   st.Phase.String(),
		Score:   st.Score,
		Chances: st.Chances,
		Aim:     st.AimAngle,
		Ball:    bodyOf(sess.World.Ball()),
	}
	for _, e := range sess.World.Entities() {
		if e.Translateable {
			f.Movers = append(f.Movers, bodyOf(e))
		}
	}
	for _, ev := range events {
		f.Events = append(f.Events, Event{Type: ev.Type.String(), Entity: int32(ev.Entity), Value: ev.Value})
	}

	if err := r.enc.Encode(&f); err != nil {
		return errors.Wrapf(err, "write trace frame %d", st.Frame)
	}
	r.frames++
	return nil
}

// Frames returns the number of frames recorded
func (r *Recorder) Frames() int {
	return r.frames
}

// Close flushes buffered frames and closes the file opened by Create
func (r *Recorder) Close() error {
	if err := r.buf.Flush(); err != nil {
		return errors.Wrap(err, "flush trace")
	}
	if r.closer != nil {
		return r.closer.Close()
	}
	return nil
}

// Reader decodes a trace stream
type Reader struct {
	dec    *msgpack.Decoder
	Header Header
}

// NewReader reads and checks the header
func NewReader(rd io.Reader) (*Reader, error) {
	r := &Reader{dec: msgpack.NewDecoder(bufio.NewReader(rd))}
	if err := r.dec.Decode(&r.Header); err != nil {
		return nil, errors.Wrap(err, "read trace header")
	}
	if r.Header.Version != Version {
		return nil, errors.Wrapf(ErrVersion, "version %d", r.Header.Version)
	}
	return r, nil
}

// Next returns the next frame, or io.EOF at the end of the stream
func (r *Reader) Next() (Frame, error) {
	var f Frame
	if err := r.dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return f, io.EOF
		}
		return f, errors.Wrap(err, "read trace frame")
	}
	return f, nil
}
