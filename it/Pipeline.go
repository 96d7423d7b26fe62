package it

import (
	"github.com/flgo/flgo"
)

// pipeline is an ordered stage sequence bound to a source, not yet evaluated.
// Appending a stage never mutates an existing pipeline value: extend copies the
// stage list, so every wrapper that still references the shorter pipeline
// remains valid and independently consumable.
type pipeline struct {
	source source
	stages []*stage
}

func (p *pipeline) extend(st *stage) *pipeline {
	stages := make([]*stage, len(p.stages), len(p.stages)+1)
	copy(stages, p.stages)
	return &pipeline{source: p.source, stages: append(stages, st)}
}

// run starts a traversal. The returned iterator pulls elements from the source
// one at a time and threads each through the full stage sequence before
// advancing, so no intermediate container is ever materialized.
func (p *pipeline) run() *runIter {
	return &runIter{
		src:    p.source.open(),
		stages: p.stages,
		states: make([]stageState, len(p.stages)),
	}
}

// runIter drives one traversal of a pipeline and exposes the surviving
// elements through the iterator interface.
type runIter struct {
	src    flgo.Iterator[interface{}]
	stages []*stage
	states []stageState

	// queue buffers the survivors of the source element currently being
	// threaded; flat_map is the only stage that can put more than one there.
	queue   []interface{}
	value   interface{}
	index   int
	err     error
	done    bool
	srcDone bool
}

func (r *runIter) Close() error {
	r.done = true
	return r.src.Close()
}

func (r *runIter) Err() error {
	if r.err != nil {
		return r.err
	}
	if r.srcDone {
		return r.src.Err()
	}
	return nil
}

func (r *runIter) Value() interface{} {
	return r.value
}

func (r *runIter) Next() bool {
	if len(r.queue) > 0 {
		r.pop()
		return true
	}
	if r.done || r.err != nil {
		return false
	}

	for {
		// a satisfied take bound ends the whole traversal; nothing that
		// enters the pipeline afterwards could ever be emitted
		if r.takeExhausted() {
			r.done = true
			return false
		}

		if !r.src.Next() {
			r.srcDone = true
			r.done = true
			return false
		}

		v := r.src.Value()
		r.index++

		stop, err := r.feed(0, v)
		if err != nil {
			r.err = err
			r.done = true
			return false
		}
		if stop {
			r.done = true
		}

		if len(r.queue) > 0 {
			r.pop()
			return true
		}
		if r.done {
			return false
		}
	}
}

func (r *runIter) pop() {
	r.value = r.queue[0]
	r.queue = r.queue[1:]
}

func (r *runIter) takeExhausted() bool {
	for i, st := range r.stages {
		if st.kind == stageTake && r.states[i].count >= st.n {
			return true
		}
	}
	return false
}

// feed threads one value through the stages from the given position downward.
// Sub-elements produced by flat_map are fed depth first through the remaining
// stages, which preserves the overall output order. The returned stop flag
// requests the end of the whole traversal.
func (r *runIter) feed(depth int, v interface{}) (stop bool, err error) {
	if depth == len(r.stages) {
		r.queue = append(r.queue, v)
		return false, nil
	}

	st := r.stages[depth]
	state := &r.states[depth]

	switch st.kind {
	case stageMap:
		out, err := st.fn.call([]interface{}{v})
		if err != nil {
			return false, r.failure(st, err)
		}
		return r.feed(depth+1, out)

	case stageFilter:
		out, err := st.fn.call([]interface{}{v})
		if err != nil {
			return false, r.failure(st, err)
		}
		keep, ok := out.(bool)
		if !ok {
			return false, r.failure(st, errPredicate(out))
		}
		if !keep {
			return false, nil
		}
		return r.feed(depth+1, v)

	case stageFilterMap:
		out, err := st.fn.call([]interface{}{v})
		if err != nil {
			return false, r.failure(st, err)
		}
		if !truthy(out) {
			return false, nil
		}
		return r.feed(depth+1, out)

	case stageSkip:
		if state.count < st.n {
			state.count++
			return false, nil
		}
		return r.feed(depth+1, v)

	case stageEvery:
		keep := state.count%st.n == 0
		state.count++
		if !keep {
			return false, nil
		}
		return r.feed(depth+1, v)

	case stageTake:
		if state.count >= st.n {
			return true, nil
		}
		state.count++
		stop, err := r.feed(depth+1, v)
		if state.count >= st.n {
			stop = true
		}
		return stop, err

	case stageFlatMap:
		out, err := st.fn.call([]interface{}{v})
		if err != nil {
			return false, r.failure(st, err)
		}
		sub, err := newSource(out)
		if err != nil {
			return false, r.failure(st, errNotSequence(out))
		}
		subIter := sub.open()
		defer subIter.Close()
		for subIter.Next() {
			stop, err := r.feed(depth+1, subIter.Value())
			if err != nil || stop {
				return stop, err
			}
		}
		if err := subIter.Err(); err != nil {
			return false, r.failure(st, err)
		}
		return false, nil
	}

	return false, nil
}

func (r *runIter) failure(st *stage, err error) error {
	return &TransformError{Op: st.kind.String(), Index: r.index - 1, Err: err}
}
