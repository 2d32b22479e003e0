package timeutils

import "time"

// CurrentTime returns the current time formatted as RFC3339.
func CurrentTime() string {
	return Format(time.Now())
}

// Format renders t the same way CurrentTime does.
func Format(t time.Time) string {
	return t.Format(time.RFC3339)
}
