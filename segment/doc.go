// Package segment binds a chunked.VirtualMatrix to a table of row segments
// (trials, epochs or any other caller-defined intervals).
//
// A Data value is created once per matrix and table. Segments() returns a
// fresh single-pass seq.Sequence each time it is called; Segment(i) and
// Indexed() give absolute access that does not depend on earlier calls.
//
// Epoch metadata (Trials, TrialInfo, SampleInfo) is available only for data
// constructed with Kind ByEpoch; other kinds return ErrNotEpoched.
package segment
