package ingest

import (
	"strconv"
	"time"
)

// AnonymousUser is the username assigned when a message carries neither an
// author name nor an author id.
const AnonymousUser = "anonymous"

// SimpleMessage is the reduced projection consumed by tokenization. Both
// fields are non-empty by construction: textless messages are dropped before
// a SimpleMessage is created.
type SimpleMessage struct {
	Username string
	Text     string
}

// Filter restricts which messages survive simplification. The zero value
// keeps everything.
type Filter struct {
	// Users is an optional allow-list matched against the resolved username.
	Users []string
	// From and To are optional inclusive date bounds evaluated against the
	// message's epoch timestamp. A zero time means unbounded on that side.
	From time.Time
	To   time.Time
}

func (f Filter) allows(m *Message, username string) bool {
	if len(f.Users) > 0 {
		found := false
		for _, u := range f.Users {
			if u == username {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if f.From.IsZero() && f.To.IsZero() {
		return true
	}
	epoch, err := strconv.ParseInt(m.DateUnix, 10, 64)
	if err != nil {
		// A bound is active but the timestamp cannot be compared.
		return false
	}
	if !f.From.IsZero() && epoch < f.From.Unix() {
		return false
	}
	if !f.To.IsZero() && epoch > f.To.Unix() {
		return false
	}
	return true
}

// Simplify projects decoded messages onto SimpleMessages, preserving order.
// Messages with no extractable text are dropped (not an error), then the
// filter is applied. The username resolves with strict precedence: author
// name, else author id, else AnonymousUser.
func Simplify(messages []Message, f Filter) []SimpleMessage {
	simple := make([]SimpleMessage, 0, len(messages))
	for i := range messages {
		msg := &messages[i]
		text := msg.ExtractText()
		if text == "" {
			continue
		}

		username := AnonymousUser
		switch {
		case msg.From != nil:
			username = *msg.From
		case msg.FromID != nil:
			username = *msg.FromID
		}

		if !f.allows(msg, username) {
			continue
		}
		simple = append(simple, SimpleMessage{Username: username, Text: text})
	}
	return simple
}
