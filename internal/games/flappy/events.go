package flappy

// Event is a fire-and-forget notification for audio and other observers.
type Event int

const (
	EventJump Event = iota
	EventScore
	EventCrash
	EventFall
)

// String returns the event name.
func (e Event) String() string {
	switch e {
	case EventJump:
		return "jump"
	case EventScore:
		return "score"
	case EventCrash:
		return "crash"
	case EventFall:
		return "fall"
	default:
		return "unknown"
	}
}
