package transport

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"sketchroom/internal/protocol"
	"sketchroom/internal/shape"
)

func startRelay(t *testing.T) *httptest.Server {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ts := httptest.NewServer(NewServer(logger).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func dialRoom(t *testing.T, serverURL, roomID string) (*Client, chan protocol.Message) {
	t.Helper()
	inbox := make(chan protocol.Message, 16)
	c, err := Dial(serverURL, roomID, func(m protocol.Message) { inbox <- m })
	if err != nil {
		t.Fatalf("dial %s: %v", roomID, err)
	}
	t.Cleanup(c.Close)
	return c, inbox
}

func waitFor(t *testing.T, inbox chan protocol.Message) protocol.Message {
	t.Helper()
	select {
	case m := <-inbox:
		return m
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a relayed message")
		return protocol.Message{}
	}
}

func TestRelayForwardsToOthersOnly(t *testing.T) {
	ts := startRelay(t)

	sender, senderInbox := dialRoom(t, ts.URL, "room-a")
	_, peerInbox := dialRoom(t, ts.URL, "room-a")
	_, otherRoomInbox := dialRoom(t, ts.URL, "room-b")

	want := &shape.Rect{X: 1, Y: 2, Width: 3, Height: 4}
	msg, err := protocol.ShapeBroadcast("room-a", want)
	if err != nil {
		t.Fatal(err)
	}
	sender.Send(msg)

	got := waitFor(t, peerInbox)
	gotShape, err := got.DecodeShape()
	if err != nil {
		t.Fatalf("peer received undecodable message: %v", err)
	}
	if !reflect.DeepEqual(gotShape, want) {
		t.Errorf("peer got %#v, want %#v", gotShape, want)
	}

	// The relay never echoes to the sender and never crosses rooms.
	time.Sleep(100 * time.Millisecond)
	select {
	case m := <-senderInbox:
		t.Errorf("sender got an echo: %+v", m)
	default:
	}
	select {
	case m := <-otherRoomInbox:
		t.Errorf("other room got the message: %+v", m)
	default:
	}
}

func TestSnapshotServesCommittedShapes(t *testing.T) {
	ts := startRelay(t)

	sender, _ := dialRoom(t, ts.URL, "busy-room")
	_, peerInbox := dialRoom(t, ts.URL, "busy-room")

	shapes := []shape.Shape{
		&shape.Circle{CenterX: 1, CenterY: 1, Radius: 5},
		&shape.Pencil{Points: []shape.Point{{X: 1, Y: 1}, {X: 2, Y: 2}}},
	}
	for _, s := range shapes {
		msg, err := protocol.ShapeBroadcast("busy-room", s)
		if err != nil {
			t.Fatal(err)
		}
		sender.Send(msg)
		waitFor(t, peerInbox) // shape is stored before it is relayed
	}

	got, err := FetchRoomShapes(ts.URL, "busy-room")
	if err != nil {
		t.Fatalf("fetch snapshot: %v", err)
	}
	if !reflect.DeepEqual([]shape.Shape(got), shapes) {
		t.Errorf("snapshot = %#v, want %#v", got, shapes)
	}

	// A room nobody drew in is an empty list, not an error.
	empty, err := FetchRoomShapes(ts.URL, "fresh-room")
	if err != nil {
		t.Fatalf("fetch empty room: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("fresh room snapshot = %#v, want empty", empty)
	}
}

func TestRelaySkipsBadFramesAndKeepsServing(t *testing.T) {
	ts := startRelay(t)

	sender, _ := dialRoom(t, ts.URL, "room-x")
	_, peerInbox := dialRoom(t, ts.URL, "room-x")

	// Wrong kind, wrong room, and an undecodable shape: all dropped.
	sender.Send(protocol.Message{Kind: "presence", RoomID: "room-x"})
	sender.Send(protocol.Message{Kind: protocol.KindShapeBroadcast, RoomID: "elsewhere"})
	sender.Send(protocol.Message{
		Kind:    protocol.KindShapeBroadcast,
		RoomID:  "room-x",
		Payload: protocol.Payload{Shape: json.RawMessage(`{"type":"blob"}`)},
	})

	// A good frame afterwards still goes through.
	msg, err := protocol.ShapeBroadcast("room-x", &shape.Line{EndX: 9})
	if err != nil {
		t.Fatal(err)
	}
	sender.Send(msg)
	waitFor(t, peerInbox)

	got, err := FetchRoomShapes(ts.URL, "room-x")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Errorf("snapshot stored %d shapes, want only the good one", len(got))
	}
}
