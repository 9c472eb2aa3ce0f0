package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyQuiz       = "quiz"
	KeyTopic      = "topic"
	KeyPath       = "path"
	KeyBuildID    = "build_id"
	KeyTopics     = "topics"
	KeyQuestions  = "questions"
	KeyDurationMS = "duration_ms"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Quiz(name string) slog.Attr      { return slog.String(KeyQuiz, name) }
func Topic(id string) slog.Attr       { return slog.String(KeyTopic, id) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func BuildID(id string) slog.Attr     { return slog.String(KeyBuildID, id) }
func Topics(n int) slog.Attr          { return slog.Int(KeyTopics, n) }
func Questions(n int) slog.Attr       { return slog.Int(KeyQuestions, n) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
