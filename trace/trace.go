/*package trace holds the in-memory trace record and applies resolved mute
times to its samples.
*/
package trace

// Trace is one seismic trace: the header fields the muting pipeline reads or
// writes, plus the mutable sample array. Times are in seconds and distances
// in the survey's world units throughout; container-specific unit scaling
// belongs to the I/O layer.
type Trace struct {
	// Offset is the signed source-receiver offset key.
	Offset float64
	// SX, SY are the world coordinates used to place the trace on the
	// survey grid.
	SX, SY float64

	NS    int     // number of samples
	Dt    float64 // sample interval (s)
	Delrt float64 // recording start time of the first sample (s)

	// MuteStart and MuteEnd are the header mute times (s), updated by the
	// applier.
	MuteStart, MuteEnd float64

	Data []float32
}

// EndTime returns the time just past the last sample.
func (tr *Trace) EndTime() float64 {
	return tr.Delrt + float64(tr.NS)*tr.Dt
}
