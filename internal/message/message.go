// Package message defines the slyboard IPC protocol spoken between the
// daemon and the CLI over the local unix socket.
//
// Every message is one newline-terminated JSON object: <json>\n. Requests
// carry only a type; responses inline their fields in the same envelope.
package message

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/slyboard/slyboard/internal/history"
)

// Type identifies the kind of message.
type Type string

const (
	TypeStatus          Type = "STATUS"
	TypeStatusResponse  Type = "STATUS_RESPONSE"
	TypeHistory         Type = "HISTORY"
	TypeHistoryResponse Type = "HISTORY_RESPONSE"
	TypeClear           Type = "CLEAR"
	TypeOK              Type = "OK"
	TypeError           Type = "ERROR"
)

// Message is the wire envelope.
type Message struct {
	Type Type `json:"type"`

	// STATUS_RESPONSE
	Version     string    `json:"version,omitempty"`
	StartedAt   time.Time `json:"started_at,omitzero"`
	Paused      bool      `json:"paused,omitempty"`
	Entries     int       `json:"entries,omitempty"`
	HistoryPath string    `json:"history_path,omitempty"`

	// HISTORY_RESPONSE — most recent first
	History []history.Entry `json:"history,omitempty"`

	// ERROR
	Error string `json:"error,omitempty"`
}

// Encode serialises the message to JSON without a trailing newline.
func (m *Message) Encode() ([]byte, error) {
	return json.Marshal(m)
}

// Decode deserialises a message from raw JSON bytes.
func Decode(b []byte) (*Message, error) {
	var m Message
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("message decode: %w", err)
	}
	return &m, nil
}
