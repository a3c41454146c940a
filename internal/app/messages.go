// internal/app/messages.go
package app

// MessageLog is a bounded ring of player-facing messages, oldest first.
type MessageLog struct {
	buf   []string
	start int
	size  int
}

func NewMessageLog(capacity int) *MessageLog {
	if capacity < 1 {
		capacity = 1
	}
	return &MessageLog{buf: make([]string, capacity)}
}

// Add appends text, evicting the oldest message when full.
func (l *MessageLog) Add(text string) {
	if l.size < len(l.buf) {
		l.buf[(l.start+l.size)%len(l.buf)] = text
		l.size++
		return
	}
	l.buf[l.start] = text
	l.start = (l.start + 1) % len(l.buf)
}

// Messages returns a copy, oldest first.
func (l *MessageLog) Messages() []string {
	out := make([]string, l.size)
	for i := range out {
		out[i] = l.buf[(l.start+i)%len(l.buf)]
	}
	return out
}

// Last returns the newest message, or "".
func (l *MessageLog) Last() string {
	if l.size == 0 {
		return ""
	}
	return l.buf[(l.start+l.size-1)%len(l.buf)]
}

func (l *MessageLog) Len() int { return l.size }
