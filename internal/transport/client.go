// Package transport connects a session to its room over websockets and
// serves as the relay between rooms' clients. The client side is a
// thin fire-and-forget channel: sends are best-effort, inbound frames
// are decoded and handed to a callback, and malformed frames are
// logged and skipped.
package transport

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"sync"

	"github.com/gorilla/websocket"

	"sketchroom/internal/protocol"
	"sketchroom/internal/shape"
)

// Client is one open room channel.
type Client struct {
	conn    *websocket.Conn
	roomID  string
	writeMu sync.Mutex

	onMessage func(protocol.Message)
	closeOnce sync.Once
}

// Dial opens the room channel and starts delivering inbound messages
// to onMessage from a single reader goroutine. The channel must be
// open before the session view is constructed; reconnection is the
// caller's problem, not the engine's.
func Dial(serverURL, roomID string, onMessage func(protocol.Message)) (*Client, error) {
	wsURL, err := roomEndpoint(serverURL, roomID, "ws")
	if err != nil {
		return nil, err
	}
	wsURL.Scheme = map[string]string{"http": "ws", "https": "wss"}[wsURL.Scheme]
	if wsURL.Scheme == "" {
		return nil, fmt.Errorf("dial room: unsupported scheme in %q", serverURL)
	}

	conn, _, err := websocket.DefaultDialer.Dial(wsURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("dial room %s: %w", roomID, err)
	}

	c := &Client{conn: conn, roomID: roomID, onMessage: onMessage}
	go c.readLoop()
	return c, nil
}

// Send transmits a message, fire-and-forget. Failures are logged and
// dropped; there is no acknowledged delivery to retry against.
func (c *Client) Send(msg protocol.Message) {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if err := c.conn.WriteJSON(msg); err != nil {
		log.Printf("[transport] send failed: %v", err)
	}
}

// Close tears the channel down. The read loop ends with it.
func (c *Client) Close() {
	c.closeOnce.Do(func() {
		_ = c.conn.Close()
	})
}

func (c *Client) readLoop() {
	defer c.Close()
	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			log.Printf("[transport] room %s channel closed: %v", c.roomID, err)
			return
		}
		var msg protocol.Message
		if err := json.Unmarshal(data, &msg); err != nil {
			log.Printf("[transport] skipping malformed frame: %v", err)
			continue
		}
		if c.onMessage != nil {
			c.onMessage(msg)
		}
	}
}

// FetchRoomShapes loads the room's already-committed shapes. The
// session engine receives the result once, before any pointer or
// network event.
func FetchRoomShapes(serverURL, roomID string) (shape.Scene, error) {
	u, err := roomEndpoint(serverURL, roomID, "shapes")
	if err != nil {
		return nil, err
	}
	resp, err := http.Get(u.String())
	if err != nil {
		return nil, fmt.Errorf("fetch room shapes: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch room shapes: status %s", resp.Status)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("fetch room shapes: %w", err)
	}
	return shape.UnmarshalScene(data)
}

func roomEndpoint(serverURL, roomID, leaf string) (*url.URL, error) {
	u, err := url.Parse(serverURL)
	if err != nil {
		return nil, fmt.Errorf("parse server url: %w", err)
	}
	u.Path = "/rooms/" + url.PathEscape(roomID) + "/" + leaf
	return u, nil
}
