package play

import (
	"time"

	"mathventure/internal/session"
)

// sessionReadyMsg is sent when the session has been created and the start
// event recorded.
type sessionReadyMsg struct {
	Sess *session.Session
	Err  error
}

// timerTickMsg is sent every second to refresh the elapsed display.
type timerTickMsg time.Time
