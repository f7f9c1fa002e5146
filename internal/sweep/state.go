package sweep

// State is the position of the driver in its per-case cycle.
type State int

const (
	Idle State = iota
	BuildCase
	Solve
	PostProcess
	Collect
	Done
	Aborted
)

var stateNames = [...]string{"idle", "build-case", "solve", "post-process", "collect", "done", "aborted"}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}
