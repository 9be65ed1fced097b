package wizard

// Mood is the tutor's expression.
type Mood string

const (
	MoodHappy       Mood = "happy"
	MoodThinking    Mood = "thinking"
	MoodCelebrating Mood = "celebrating"
	MoodWaiting     Mood = "waiting"
)

// Feedback is what the tutor is currently saying.
type Feedback struct {
	Message string
	Mood    Mood

	// Pending is true while a text request is in flight. Submissions are
	// ignored until it resolves.
	Pending bool
}
