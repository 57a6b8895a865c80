package domain

import (
	"bytes"
	"encoding/json"
)

// Check is a single selector that must match at least one element of the
// document. Selectors are opaque to this package.
type Check string

// Result is the outcome of evaluating one Check.
type Result struct {
	Selector Check
	Present  bool
}

// Report maps selectors to their presence, preserving evaluation order.
// Selectors are unique within a report.
type Report struct {
	results []Result
	index   map[Check]int
}

// Set records the presence of selector. Setting an existing selector
// overwrites its value in place.
func (r *Report) Set(selector Check, present bool) {
	if r.index == nil {
		r.index = make(map[Check]int)
	}
	if i, ok := r.index[selector]; ok {
		r.results[i].Present = present

		return
	}
	r.index[selector] = len(r.results)
	r.results = append(r.results, Result{Selector: selector, Present: present})
}

// Get returns the presence recorded for selector and whether it was recorded.
func (r *Report) Get(selector Check) (present, ok bool) {
	i, ok := r.index[selector]
	if !ok {
		return false, false
	}

	return r.results[i].Present, true
}

// Results returns the recorded results in order.
func (r *Report) Results() []Result {
	return append([]Result(nil), r.results...)
}

// Len returns the number of selectors in the report.
func (r *Report) Len() int { return len(r.results) }

// MarshalJSON renders the report as a JSON object in insertion order.
// Selector keys are not HTML-escaped.
func (r *Report) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	out := []byte{'{'}
	for i, res := range r.results {
		if i > 0 {
			out = append(out, ',')
		}
		buf.Reset()
		if err := enc.Encode(string(res.Selector)); err != nil {
			return nil, err
		}
		out = append(out, bytes.TrimSuffix(buf.Bytes(), []byte{'\n'})...)
		out = append(out, ':')
		if res.Present {
			out = append(out, "true"...)
		} else {
			out = append(out, "false"...)
		}
	}

	return append(out, '}'), nil
}
