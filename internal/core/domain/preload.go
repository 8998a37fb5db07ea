package domain

// Outcome is the result of resolving one key during a preload.
type Outcome struct {
	Key  string
	Path string
	Err  error
}

// OK reports whether the key resolved.
func (o Outcome) OK() bool {
	return o.Err == nil
}

// PreloadReport lists one Outcome per preloaded key, in request order.
type PreloadReport struct {
	Outcomes []Outcome
}

// Resolved returns the number of keys that resolved.
func (r PreloadReport) Resolved() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.OK() {
			n++
		}
	}
	return n
}

// Failed returns the outcomes that did not resolve.
func (r PreloadReport) Failed() []Outcome {
	var failed []Outcome
	for _, o := range r.Outcomes {
		if !o.OK() {
			failed = append(failed, o)
		}
	}
	return failed
}
