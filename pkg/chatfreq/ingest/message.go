package ingest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// TextKind discriminates the shape of a message's text field. Chat exports
// encode text either as a plain string, as an array mixing strings with typed
// fragment objects, or omit it entirely.
type TextKind int

const (
	// TextAbsent covers a missing text field and any shape that is neither a
	// string nor an array. Extraction falls back to the text_entities list.
	TextAbsent TextKind = iota
	// TextPlain is a single string value.
	TextPlain
	// TextFragments is an array of plain strings and fragment objects.
	TextFragments
)

// Fragment is one element of a fragmented text value. Plain string elements
// have an empty Type; object elements carry their type tag ("link", "bold",
// ...). Elements without a usable text value contribute an empty Text.
type Fragment struct {
	Type string
	Text string
}

// TextValue is the tagged representation of the text field.
type TextValue struct {
	Kind      TextKind
	Plain     string
	Fragments []Fragment
}

// UnmarshalJSON accepts all three shapes. Unexpected shapes (numbers,
// objects) decode as TextAbsent rather than failing the whole record.
func (v *TextValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*v = TextValue{Kind: TextAbsent}
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = TextValue{Kind: TextPlain, Plain: s}
		return nil
	case '[':
		var parts []json.RawMessage
		if err := json.Unmarshal(data, &parts); err != nil {
			return err
		}
		frags := make([]Fragment, 0, len(parts))
		for _, part := range parts {
			frags = append(frags, decodeFragment(part))
		}
		*v = TextValue{Kind: TextFragments, Fragments: frags}
		return nil
	default:
		*v = TextValue{Kind: TextAbsent}
		return nil
	}
}

func decodeFragment(data []byte) Fragment {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err == nil {
			return Fragment{Text: s}
		}
		return Fragment{}
	}

	var obj struct {
		Type string          `json:"type"`
		Text json.RawMessage `json:"text"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return Fragment{}
	}
	frag := Fragment{Type: obj.Type}
	if len(obj.Text) > 0 && obj.Text[0] == '"' {
		var s string
		if err := json.Unmarshal(obj.Text, &s); err == nil {
			frag.Text = s
		}
	}
	return frag
}

// TextEntity is one annotated fragment from the text_entities list.
type TextEntity struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// ReactionUser identifies a user behind a recent reaction.
type ReactionUser struct {
	From   *string `json:"from"`
	FromID string  `json:"from_id"`
	Date   string  `json:"date"`
}

// Reaction is an aggregated emoji reaction on a message.
type Reaction struct {
	Type   string         `json:"type"`
	Count  int            `json:"count"`
	Emoji  string         `json:"emoji"`
	Recent []ReactionUser `json:"recent"`
}

// Message is one decoded chat export record.
type Message struct {
	ID             int64
	Type           string
	Date           string
	DateUnix       string
	Edited         string
	EditedUnix     string
	From           *string
	FromID         *string
	ReplyToMessage *int64
	Text           TextValue
	TextEntities   []TextEntity
	Reactions      []Reaction
}

// wireMessage uses pointers for the required fields so that their absence is
// detectable after decoding (encoding/json leaves missing fields at zero).
type wireMessage struct {
	ID             *int64       `json:"id"`
	Type           *string      `json:"type"`
	Date           *string      `json:"date"`
	DateUnix       *string      `json:"date_unixtime"`
	Edited         string       `json:"edited"`
	EditedUnix     string       `json:"edited_unixtime"`
	From           *string      `json:"from"`
	FromID         *string      `json:"from_id"`
	ReplyToMessage *int64       `json:"reply_to_message_id"`
	Text           TextValue    `json:"text"`
	TextEntities   []TextEntity `json:"text_entities"`
	Reactions      []Reaction   `json:"reactions"`
}

// DecodeMessage decodes one recovered record into a Message. It fails on
// malformed JSON or when a required field (id, type, date, date_unixtime) is
// missing; callers are expected to skip the record and keep scanning.
func DecodeMessage(data string) (Message, error) {
	var w wireMessage
	if err := json.Unmarshal([]byte(data), &w); err != nil {
		return Message{}, fmt.Errorf("decode record: %w", err)
	}

	switch {
	case w.ID == nil:
		return Message{}, fmt.Errorf("decode record: missing field %q", "id")
	case w.Type == nil:
		return Message{}, fmt.Errorf("decode record: missing field %q", "type")
	case w.Date == nil:
		return Message{}, fmt.Errorf("decode record: missing field %q", "date")
	case w.DateUnix == nil:
		return Message{}, fmt.Errorf("decode record: missing field %q", "date_unixtime")
	}

	return Message{
		ID:             *w.ID,
		Type:           *w.Type,
		Date:           *w.Date,
		DateUnix:       *w.DateUnix,
		Edited:         w.Edited,
		EditedUnix:     w.EditedUnix,
		From:           w.From,
		FromID:         w.FromID,
		ReplyToMessage: w.ReplyToMessage,
		Text:           w.Text,
		TextEntities:   w.TextEntities,
		Reactions:      w.Reactions,
	}, nil
}

// ExtractText derives the message's textual content from whichever shape the
// export used. The empty string is a valid outcome meaning "no text".
func (m *Message) ExtractText() string {
	switch m.Text.Kind {
	case TextPlain:
		return m.Text.Plain
	case TextFragments:
		var b strings.Builder
		for _, frag := range m.Text.Fragments {
			b.WriteString(frag.Text)
		}
		return b.String()
	default:
		var b strings.Builder
		for _, ent := range m.TextEntities {
			b.WriteString(ent.Text)
		}
		return b.String()
	}
}
