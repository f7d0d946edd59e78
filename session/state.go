package session

// State is the level flow position.
type State int

const (
	StateIntro State = iota
	StateLoadingLevel
	StateWaitingToSpawn
	StateSpawning
	StateEvaluating
	StateLevelComplete
	StateGameWon
)

func (s State) String() string {
	switch s {
	case StateIntro:
		return "intro"
	case StateLoadingLevel:
		return "loading"
	case StateWaitingToSpawn:
		return "waiting"
	case StateSpawning:
		return "spawning"
	case StateEvaluating:
		return "evaluating"
	case StateLevelComplete:
		return "complete"
	case StateGameWon:
		return "won"
	default:
		return "unknown"
	}
}

// levelActive reports whether a loaded level is in play.
func (s State) levelActive() bool {
	return s == StateWaitingToSpawn || s == StateSpawning || s == StateEvaluating
}
