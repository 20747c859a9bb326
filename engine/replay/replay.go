// Package replay records per-frame input and deltas so a session can be
// replayed exactly with the same seed.
package replay

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/1siamBot/dogfight/engine/input"
)

const (
	magic   = "DFRP"
	version = 1
)

// ErrBadReplay is returned for files that are not replays of this version.
var ErrBadReplay = errors.New("replay: not a dogfight replay")

// Header describes the session a replay was captured from.
type Header struct {
	Magic       string `msgpack:"magic"`
	Version     int    `msgpack:"v"`
	Seed        int64  `msgpack:"seed"`
	Width       int    `msgpack:"w"`
	Height      int    `msgpack:"h"`
	RefreshRate int    `msgpack:"hz"`
	Difficulty  string `msgpack:"diff"`
	Recorded    int64  `msgpack:"at"` // unix seconds
}

// Frame is one driver frame.
type Frame struct {
	Index uint64 `msgpack:"i"`
	Delta int64  `msgpack:"d"` // nanoseconds
	Input uint32 `msgpack:"k"`
}

// Recorder streams frames to a file
type Recorder struct {
	file   *os.File
	writer *bufio.Writer
	enc    *msgpack.Encoder
	frames uint64
}

// NewRecorder creates path and writes the header.
func NewRecorder(path string, hdr Header) (*Recorder, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create replay: %w", err)
	}
	w := bufio.NewWriter(f)
	r := &Recorder{file: f, writer: w, enc: msgpack.NewEncoder(w)}
	hdr.Magic, hdr.Version = magic, version
	if hdr.Recorded == 0 {
		hdr.Recorded = time.Now().Unix()
	}
	if err := r.enc.Encode(&hdr); err != nil {
		f.Close()
		return nil, fmt.Errorf("write replay header: %w", err)
	}
	return r, nil
}

// Record appends one frame
func (r *Recorder) Record(delta time.Duration, in input.Snapshot) error {
	fr := Frame{Index: r.frames, Delta: int64(delta), Input: in.Bits()}
	r.frames++
	return r.enc.Encode(&fr)
}

// Frames returns how many frames were recorded
func (r *Recorder) Frames() uint64 { return r.frames }

// Close flushes and closes the replay file
func (r *Recorder) Close() error {
	if r.writer != nil {
		if err := r.writer.Flush(); err != nil {
			r.file.Close()
			return err
		}
	}
	if r.file != nil {
		return r.file.Close()
	}
	return nil
}

// Replay is a loaded recording
type Replay struct {
	Header Header
	Frames []Frame
}

// Load reads a replay file
func Load(path string) (*Replay, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open replay: %w", err)
	}
	defer f.Close()
	return Decode(bufio.NewReader(f))
}

// Decode reads a replay stream. A truncated trailing frame is dropped.
func Decode(r io.Reader) (*Replay, error) {
	dec := msgpack.NewDecoder(r)
	rep := &Replay{}
	if err := dec.Decode(&rep.Header); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadReplay, err)
	}
	if rep.Header.Magic != magic || rep.Header.Version != version {
		return nil, ErrBadReplay
	}
	for {
		var fr Frame
		if err := dec.Decode(&fr); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				break
			}
			return nil, fmt.Errorf("decode replay frame %d: %w", len(rep.Frames), err)
		}
		rep.Frames = append(rep.Frames, fr)
	}
	return rep, nil
}

// Len returns the number of frames
func (r *Replay) Len() int { return len(r.Frames) }

// At returns the delta and input of frame i.
func (r *Replay) At(i int) (time.Duration, input.Snapshot) {
	fr := r.Frames[i]
	return time.Duration(fr.Delta), input.FromBits(fr.Input)
}
