package worker

import "time"

// Job asks the worker to scan the incoming directory.
type Job struct {
	Reason    string // what triggered the scan, for logs
	Requested time.Time
}

// Result counts the outcomes of one pass over the incoming directory.
type Result struct {
	Filed     int
	Duplicate int
	Rejected  int
	Skipped   int
	Failed    int
}

func (r *Result) add(outcome string) {
	switch outcome {
	case outcomeFiled:
		r.Filed++
	case outcomeDuplicate:
		r.Duplicate++
	case outcomeRejected:
		r.Rejected++
	case outcomeSkipped:
		r.Skipped++
	default:
		r.Failed++
	}
}
