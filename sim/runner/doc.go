// Package runner coordinates simulation runs for an interactive front end.
//
// At most one run is in flight. Submit validates synchronously and rejects
// new work with ErrBusy until the previous result has been collected by
// Poll or Wait; there is no queue and no cancellation. A Debouncer in front
// of the Runner collapses bursts of parameter edits into one submission.
package runner
