package vocab

// Stage names a pipeline step reported to an Observer.
type Stage string

const (
	StageTokenize Stage = "tokenize"
	StageMatch    Stage = "match"
	StageRender   Stage = "render"
)

// Event describes a completed pipeline step. Token is set only for per-token
// match events.
type Event struct {
	Stage        Stage
	Tokens       int
	Matches      int
	Vocabularies int
	Token        *Token
}

// Observer receives pipeline events synchronously. Implementations must not
// retain Token after Observe returns.
type Observer interface {
	Observe(Event)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Event)

// Observe calls f(e).
func (f ObserverFunc) Observe(e Event) { f(e) }
