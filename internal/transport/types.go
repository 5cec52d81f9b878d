// Package transport defines the chat-transport contract the bot core
// consumes, keeping the core independent of the concrete messenger.
package transport

import "context"

type UpdateKind int

const (
	UpdateMessage UpdateKind = iota
	UpdateCallback
)

type Update struct {
	Kind     UpdateKind
	Message  *Message
	Callback *Callback
}

type Message struct {
	ID           int
	ChatID       int64
	FromID       int64
	FromUsername string
	Text         string
}

type Callback struct {
	ID        string
	ChatID    int64
	FromID    int64
	MessageID int
	Data      string
}

// Button is one inline keyboard button carrying callback data.
type Button struct {
	Text string
	Data string
}

// Markup describes either an inline keyboard or a persistent reply keyboard.
type Markup struct {
	Inline      [][]Button
	Reply       [][]string
	ResizeReply bool
}

type SendOptions struct {
	Markup *Markup
}

type MessageRef struct {
	ChatID    int64
	MessageID int
}

// Adapter is the transport surface: a long-running update feed plus
// best-effort outbound calls.
type Adapter interface {
	Start(ctx context.Context, out chan<- Update) error
	Stop(ctx context.Context) error

	SendText(ctx context.Context, chatID int64, text string, opt *SendOptions) (MessageRef, error)
	EditText(ctx context.Context, ref MessageRef, text string, opt *SendOptions) error
	AnswerCallback(ctx context.Context, callbackID, text string) error
}
