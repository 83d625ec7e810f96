package systems

import (
	"fmt"
	"image/color"
)

// MessageType decides the colour a message is shown in
type MessageType int

const (
	// MessageTypeNormal is for standard game messages (white/gray)
	MessageTypeNormal MessageType = iota
	// MessageTypeAlert is for blocked moves and other warnings (bright yellow)
	MessageTypeAlert
	// MessageTypeSystem is for messages about the dungeon itself (purple)
	MessageTypeSystem
)

// ColoredMessage stores a message with its associated color
type ColoredMessage struct {
	Text string
	Type MessageType
}

// Color returns the color for the message based on its type
func (cm ColoredMessage) Color() color.RGBA {
	switch cm.Type {
	case MessageTypeAlert:
		return color.RGBA{255, 255, 0, 255}
	case MessageTypeSystem:
		return color.RGBA{186, 85, 211, 255}
	default:
		return color.RGBA{200, 200, 200, 255}
	}
}

// MessageLog stores the player facing messages of a session
type MessageLog struct {
	Messages    []ColoredMessage
	MaxMessages int
}

// NewMessageLog creates a log that keeps the last 100 messages
func NewMessageLog() *MessageLog {
	return &MessageLog{
		MaxMessages: 100,
	}
}

// Add adds a normal message to the log
func (ml *MessageLog) Add(message string) {
	ml.AddTyped(MessageTypeNormal, message)
}

// Addf formats and adds a message of the given type
func (ml *MessageLog) Addf(t MessageType, format string, args ...any) {
	ml.AddTyped(t, fmt.Sprintf(format, args...))
}

// AddTyped adds a message of the given type
func (ml *MessageLog) AddTyped(t MessageType, message string) {
	ml.Messages = append(ml.Messages, ColoredMessage{Text: message, Type: t})

	if len(ml.Messages) > ml.MaxMessages {
		ml.Messages = ml.Messages[len(ml.Messages)-ml.MaxMessages:]
	}
}

// RecentMessages gets the n most recent messages, newest first
func (ml *MessageLog) RecentMessages(n int) []ColoredMessage {
	n = min(max(n, 0), len(ml.Messages))

	result := make([]ColoredMessage, n)
	for i := 0; i < n; i++ {
		result[i] = ml.Messages[len(ml.Messages)-1-i]
	}
	return result
}

// Clear clears all messages
func (ml *MessageLog) Clear() {
	ml.Messages = nil
}
