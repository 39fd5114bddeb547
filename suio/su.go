/*package suio reads and writes SU-format trace streams: a 240-byte SEG-Y
style trace header followed by ns little-endian float32 samples, with no reel
header. Only the header fields the muting pipeline needs are named; the rest
ride along untouched so that filtered streams round-trip byte for byte.
*/
package suio

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/seisproc/gomute/trace"
)

// Header is the 240-byte SU trace header. Field names follow the SU
// convention. Times are in the container's native units: delrt, muts, and
// mute in milliseconds, dt in microseconds.
type Header struct {
	Tracl, Tracr, Fldr, Tracf, Ep, Cdp, Cdpt int32

	Trid, Nvs, Nhs, Duse int16

	Offset int32

	Gelev, Selev, Sdepth, Gdel, Sdel, Swdep, Gwdep int32

	Scalel, Scalco int16

	Sx, Sy, Gx, Gy int32

	Counit, Wevel, Swevel, Sut, Gut int16
	Sstat, Gstat, Tstat, Laga, Lagb int16

	Delrt, Muts, Mute int16

	Ns, Dt uint16

	Rest [122]byte
}

// Record is one trace as it appears in the container: its full header plus
// the sample array.
type Record struct {
	H    Header
	Data []float32
}

// Trace converts the record into the pipeline's trace type. The sample slice
// is shared, not copied, so in-place muting flows back into the record; only
// the mute metadata has to be copied back with SetMute.
func (rec *Record) Trace() *trace.Trace {
	return &trace.Trace{
		Offset:    float64(rec.H.Offset),
		SX:        scaleCoord(rec.H.Sx, rec.H.Scalco),
		SY:        scaleCoord(rec.H.Sy, rec.H.Scalco),
		NS:        int(rec.H.Ns),
		Dt:        float64(rec.H.Dt) * 1e-6,
		Delrt:     float64(rec.H.Delrt) * 1e-3,
		MuteStart: float64(rec.H.Muts) * 1e-3,
		MuteEnd:   float64(rec.H.Mute) * 1e-3,
		Data:      rec.Data,
	}
}

// SetMute writes the trace's mute metadata back into the header, scaled to
// the container's millisecond units. Times past the int16 millisecond range
// saturate at the boundary instead of wrapping.
func (rec *Record) SetMute(tr *trace.Trace) {
	rec.H.Muts = muteMillis(tr.MuteStart)
	rec.H.Mute = muteMillis(tr.MuteEnd)
}

func muteMillis(t float64) int16 {
	ms := math.Round(t * 1e3)
	switch {
	case ms > math.MaxInt16:
		return math.MaxInt16
	case ms < math.MinInt16:
		return math.MinInt16
	}
	return int16(ms)
}

// scaleCoord applies the SEG-Y coordinate scalar: positive multiplies,
// negative divides, zero means unscaled.
func scaleCoord(v int32, scal int16) float64 {
	switch {
	case scal > 0:
		return float64(v) * float64(scal)
	case scal < 0:
		return float64(v) / float64(-scal)
	}
	return float64(v)
}

// Reader reads SU records sequentially from a stream.
type Reader struct {
	r *bufio.Reader
	n int
}

func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

// Read returns the next record, or io.EOF at a clean end of stream. A stream
// that ends inside a record is an error, not EOF.
func (rd *Reader) Read() (*Record, error) {
	rec := &Record{}
	if err := binary.Read(rd.r, binary.LittleEndian, &rec.H); err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}
		return nil, fmt.Errorf(
			"I couldn't read the header of trace %d: %s", rd.n, err.Error(),
		)
	}
	if rec.H.Ns == 0 {
		return nil, fmt.Errorf("Trace %d has zero samples.", rd.n)
	}

	rec.Data = make([]float32, rec.H.Ns)
	if err := binary.Read(rd.r, binary.LittleEndian, rec.Data); err != nil {
		return nil, fmt.Errorf(
			"I couldn't read the %d samples of trace %d: %s",
			rec.H.Ns, rd.n, err.Error(),
		)
	}

	rd.n++
	return rec, nil
}

// Writer writes SU records sequentially to a stream. Flush must be called
// once after the last record.
type Writer struct {
	w *bufio.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

func (wr *Writer) Write(rec *Record) error {
	if int(rec.H.Ns) != len(rec.Data) {
		return fmt.Errorf(
			"The header says ns = %d, but the trace has %d samples.",
			rec.H.Ns, len(rec.Data),
		)
	}
	if err := binary.Write(wr.w, binary.LittleEndian, &rec.H); err != nil {
		return err
	}
	return binary.Write(wr.w, binary.LittleEndian, rec.Data)
}

func (wr *Writer) Flush() error { return wr.w.Flush() }
