// Package protocol defines the wire envelope shared by every client
// and the relay server. One message kind exists today: a committed
// shape broadcast into a room. Receivers must skip anything else
// without dying.
package protocol

import (
	"encoding/json"
	"fmt"

	"sketchroom/internal/shape"
)

// KindShapeBroadcast announces one committed shape to a room.
const KindShapeBroadcast = "shape-broadcast"

// Message is the envelope for all room traffic.
type Message struct {
	Kind    string  `json:"kind"`
	RoomID  string  `json:"roomId"`
	Payload Payload `json:"payload"`
}

// Payload carries the kind-specific body. For shape broadcasts it is
// the encoded shape; kept raw so a relay can forward it untouched.
type Payload struct {
	Shape json.RawMessage `json:"shape,omitempty"`
}

// ShapeBroadcast builds a shape-broadcast message for a room.
func ShapeBroadcast(roomID string, s shape.Shape) (Message, error) {
	b, err := shape.Marshal(s)
	if err != nil {
		return Message{}, fmt.Errorf("encode broadcast: %w", err)
	}
	return Message{
		Kind:    KindShapeBroadcast,
		RoomID:  roomID,
		Payload: Payload{Shape: b},
	}, nil
}

// DecodeShape extracts the shape from a shape-broadcast payload.
func (m Message) DecodeShape() (shape.Shape, error) {
	if m.Kind != KindShapeBroadcast {
		return nil, fmt.Errorf("decode shape: message kind %q", m.Kind)
	}
	if len(m.Payload.Shape) == 0 {
		return nil, fmt.Errorf("decode shape: empty payload")
	}
	return shape.Unmarshal(m.Payload.Shape)
}
