// Package trace records a navigation run as zstd-compressed JSON lines, one
// record per tick, and reads it back.
package trace

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"
)

// Record kinds.
const (
	KindRun   = "run"   // first record: scenario, start and goal
	KindTick  = "tick"  // agent state after a tick
	KindEvent = "event" // world edit applied before a tick
	KindEnd   = "end"   // final status
)

// ErrNoRun is returned by Summarize when the trace has no run record.
var ErrNoRun = errors.New("trace: missing run record")

// Record is one line of a trace. Kind says which fields are set: run
// records carry Scenario, Start and Goal; tick records the body position,
// waypoint, status and cost; event records the edit applied; the end record
// the final status.
type Record struct {
	Kind     string     `json:"kind"`
	RunID    string     `json:"run_id"`
	Tick     int        `json:"tick"`
	Scenario string     `json:"scenario,omitempty"`
	Start    *[3]int    `json:"start,omitempty"`
	Goal     *[3]int    `json:"goal,omitempty"`
	Pos      [3]float64 `json:"pos"`
	Waypoint *[3]int    `json:"waypoint,omitempty"`
	Status   string     `json:"status,omitempty"`
	Cost     *int       `json:"cost,omitempty"` // omitted while unreachable
	Event    string     `json:"event,omitempty"`
	Replans  int        `json:"replans,omitempty"` // planner repairs so far
}

// Writer appends records to a zstd stream. Every record is stamped with the
// writer's run ID.
type Writer struct {
	runID string
	c     io.Closer // underlying file, if owned
	enc   *zstd.Encoder
	w     *bufio.Writer
}

// NewWriter starts a trace on w with a fresh run ID.
func NewWriter(w io.Writer) (*Writer, error) {
	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		return nil, err
	}

	return &Writer{
		runID: uuid.NewString(),
		enc:   enc,
		w:     bufio.NewWriterSize(enc, 64*1024),
	}, nil
}

// Create starts a trace in a new file at path.
func Create(path string) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	w, err := NewWriter(f)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	w.c = f

	return w, nil
}

// RunID returns the ID stamped on every record.
func (w *Writer) RunID() string { return w.runID }

// Write appends one record.
func (w *Writer) Write(r Record) error {
	r.RunID = w.runID
	b, err := json.Marshal(r)
	if err != nil {
		return err
	}
	if _, err := w.w.Write(b); err != nil {
		return err
	}

	return w.w.WriteByte('\n')
}

// Close flushes the stream and closes the file opened by Create.
func (w *Writer) Close() error {
	err := w.w.Flush()
	if cerr := w.enc.Close(); err == nil {
		err = cerr
	}
	if w.c != nil {
		if cerr := w.c.Close(); err == nil {
			err = cerr
		}
	}

	return err
}

// Read decodes every record of a trace stream.
func Read(r io.Reader) ([]Record, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	sc := bufio.NewScanner(dec)
	sc.Buffer(make([]byte, 64*1024), 8*1024*1024)
	var out []Record
	for line := 1; sc.Scan(); line++ {
		var rec Record
		if err := json.Unmarshal(sc.Bytes(), &rec); err != nil {
			return out, fmt.Errorf("trace line %d: %w", line, err)
		}
		out = append(out, rec)
	}

	return out, sc.Err()
}

// ReadFile decodes the trace at path.
func ReadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Read(f)
}

// Summary condenses a trace.
type Summary struct {
	RunID    string
	Scenario string
	Ticks    int     // tick records
	Events   int     // world edits
	Distance float64 // path length travelled by the feet
	Replans  int     // planner repairs, from the last tick record
	Status   string  // status of the end record, or of the last tick
}

// Summarize folds records into a Summary. Records of other runs are ignored.
func Summarize(records []Record) (Summary, error) {
	var s Summary
	i := 0
	for ; i < len(records); i++ {
		if records[i].Kind == KindRun {
			break
		}
	}
	if i == len(records) {
		return s, ErrNoRun
	}
	s.RunID, s.Scenario = records[i].RunID, records[i].Scenario

	var prev *Record
	for j := i + 1; j < len(records); j++ {
		r := records[j]
		if r.RunID != s.RunID {
			continue
		}
		switch r.Kind {
		case KindEvent:
			s.Events++
		case KindTick:
			s.Ticks++
			s.Status = r.Status
			if prev != nil {
				s.Distance += dist(prev.Pos, r.Pos)
			}
			s.Replans = r.Replans
			prev = &records[j]
		case KindEnd:
			s.Status = r.Status
		}
	}

	return s, nil
}

func dist(a, b [3]float64) float64 {
	dx, dy, dz := b[0]-a[0], b[1]-a[1], b[2]-a[2]
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}
