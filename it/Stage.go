package it

// stageKind tags the deferred transformation a stage performs.
type stageKind int

const (
	stageMap stageKind = iota
	stageFilter
	stageFilterMap
	stageSkip
	stageTake
	stageEvery
	stageFlatMap
)

func (k stageKind) String() string {
	switch k {
	case stageMap:
		return "map"
	case stageFilter:
		return "filter"
	case stageFilterMap:
		return "filter_map"
	case stageSkip:
		return "skip"
	case stageTake:
		return "take"
	case stageEvery:
		return "every"
	case stageFlatMap:
		return "flat_map"
	}
	return "unknown"
}

// stage is one immutable unit of deferred work. Stages carry no traversal
// state of their own; Skip, Take and Every counters live in the per-run state
// vector, so pipelines branched from a common prefix can traverse independently.
type stage struct {
	kind stageKind
	fn   *callable
	n    int
}

// stageState holds the mutable counter of one stage for one traversal.
type stageState struct {
	count int
}

// truthy reports whether a dynamic value counts as present for filter_map,
// mirroring the usual scripting-language notion: nil, false, zero numbers and
// empty strings are dropped, everything else is kept.
func truthy(v interface{}) bool {
	switch v := v.(type) {
	case nil:
		return false
	case bool:
		return v
	case int:
		return v != 0
	case int64:
		return v != 0
	case float64:
		return v != 0
	case string:
		return v != ""
	}
	return true
}
