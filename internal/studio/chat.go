package studio

import "github.com/google/uuid"

// PartKind discriminates the chat part union.
type PartKind string

const (
	PartText  PartKind = "text"
	PartImage PartKind = "image"
)

// Part is one piece of a chat message: either text or an inline image.
type Part struct {
	Kind PartKind
	Text string // PartText
	Data string // PartImage, data URI
}

// TextPart builds a text part.
func TextPart(s string) Part {
	return Part{Kind: PartText, Text: s}
}

// ImagePart builds an inline-image part from a data URI.
func ImagePart(dataURI string) Part {
	return Part{Kind: PartImage, Data: dataURI}
}

// Role is the author of a chat message.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Message is one turn in the chat history.
type Message struct {
	ID    string
	Role  Role
	Parts []Part
}

// ChatSession is the append-only conversation history.
type ChatSession struct {
	Messages []Message
}

// Submit appends the user's turn. The attachment, when present, leads the
// part list so the model reads the image before the question. The caller
// clears its input and pending attachment at this point, before the reply
// arrives.
func (c *ChatSession) Submit(text, attachment string) Message {
	var parts []Part
	if attachment != "" {
		parts = append(parts, ImagePart(attachment))
	}
	if text != "" {
		parts = append(parts, TextPart(text))
	}
	msg := Message{ID: uuid.NewString(), Role: RoleUser, Parts: parts}
	c.Messages = append(c.Messages, msg)
	return msg
}

// AppendModel appends the model's reply.
func (c *ChatSession) AppendModel(parts []Part) Message {
	msg := Message{ID: uuid.NewString(), Role: RoleModel, Parts: parts}
	c.Messages = append(c.Messages, msg)
	return msg
}

// Reset drops the history.
func (c *ChatSession) Reset() {
	c.Messages = nil
}
