package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	"github.com/google/uuid"

	"sketchroom/internal/config"
	lan "sketchroom/internal/net"
	"sketchroom/internal/protocol"
	"sketchroom/internal/session"
	"sketchroom/internal/transport"
	"sketchroom/internal/ui"
)

const urlScheme = "sketchroom://"

func main() {
	cfg, err := config.Load("")
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	args := os.Args
	switch {
	case len(args) > 1 && args[1] == "serve":
		runServe(cfg)
	case len(args) > 1 && args[1] == "join":
		runDiscoverAndJoin(cfg, args[2:])
	case len(args) > 1 && strings.HasPrefix(args[1], urlScheme):
		runJoin(cfg, args[1])
	default:
		runHost(cfg)
	}
}

// runServe runs a headless relay for other clients on the LAN.
func runServe(cfg config.Config) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	srv := transport.NewServer(logger)

	if mdnsServer, err := lan.Advertise(cfg.Port); err != nil {
		logger.Warn("mDNS advertise failed", "err", err)
	} else {
		defer mdnsServer.Shutdown()
	}

	if ip, err := lan.OutgoingIP(); err == nil {
		fmt.Printf("Share links look like %s%s:%d/<room>\n", urlScheme, ip, cfg.Port)
	}
	log.Fatal(srv.ListenAndServe(fmt.Sprintf(":%d", cfg.Port)))
}

// runHost starts a local relay in the background, opens a fresh room
// on it and prints the link others can join with.
func runHost(cfg config.Config) {
	log.Println("Starting as HOST")
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	srv := transport.NewServer(logger)
	go func() {
		log.Fatal(srv.ListenAndServe(fmt.Sprintf(":%d", cfg.Port)))
	}()

	if mdnsServer, err := lan.Advertise(cfg.Port); err != nil {
		logger.Warn("mDNS advertise failed", "err", err)
	} else {
		defer mdnsServer.Shutdown()
	}

	roomID := cfg.Room
	if roomID == "" {
		roomID = uuid.NewString()
	}
	hostIP, err := lan.OutgoingIP()
	if err != nil {
		hostIP = "127.0.0.1"
	}
	shareLink := fmt.Sprintf("%s%s:%d/%s", urlScheme, hostIP, cfg.Port, roomID)
	serverURL := fmt.Sprintf("http://127.0.0.1:%d", cfg.Port)
	runSession(cfg, serverURL, roomID, shareLink)
}

// runJoin joins a room from a share link.
func runJoin(cfg config.Config, link string) {
	log.Println("Starting as CLIENT")
	hostPort, roomID, err := parseLink(link)
	if err != nil {
		log.Fatalf("bad share link: %v", err)
	}
	runSession(cfg, "http://"+hostPort, roomID, link)
}

// runDiscoverAndJoin finds a relay over mDNS and joins a room on it
// ("lobby" unless one is named).
func runDiscoverAndJoin(cfg config.Config, args []string) {
	roomID := "lobby"
	if len(args) > 0 {
		roomID = args[0]
	}

	serverURL := cfg.ServerURL
	if serverURL == "" {
		addr := discoverRelay()
		if addr == "" {
			log.Fatal("no relay found on the local network")
		}
		serverURL = "http://" + addr
	}
	log.Printf("Joining room %s on %s", roomID, serverURL)
	runSession(cfg, serverURL, roomID, "")
}

func discoverRelay() string {
	var (
		once  sync.Once
		found string
	)
	if err := lan.Browse(func(addr string) {
		once.Do(func() { found = addr })
	}); err != nil {
		log.Printf("mDNS browse failed: %v", err)
	}
	return found
}

// runSession loads the room's persisted shapes, opens the channel and
// runs the board until the window closes.
func runSession(cfg config.Config, serverURL, roomID, shareLink string) {
	initial, err := transport.FetchRoomShapes(serverURL, roomID)
	if err != nil {
		log.Fatalf("loading room %s: %v", roomID, err)
	}

	board := ui.NewBoardWidget(cfg.StrokeWidth)

	// The engine does not exist until the channel does, so inbound
	// messages park behind this guard until it is attached. fyne.Do
	// keeps delivery on the one event loop the engine expects.
	var (
		mu     sync.Mutex
		engine *session.Engine
	)
	onMessage := func(msg protocol.Message) {
		fyne.Do(func() {
			mu.Lock()
			e := engine
			mu.Unlock()
			if e != nil {
				e.HandleRemote(msg)
			}
		})
	}

	client, err := transport.Dial(serverURL, roomID, onMessage)
	if err != nil {
		log.Fatalf("joining room %s: %v", roomID, err)
	}
	defer client.Close()

	e := session.New(roomID, initial, board, client)
	e.SetEraseTolerance(cfg.EraseTolerance)
	board.SetEngine(e)
	mu.Lock()
	engine = e
	mu.Unlock()

	ui.RunApp(shareLink, e, board)
}

// parseLink splits sketchroom://host:port/room into its parts.
func parseLink(link string) (hostPort, roomID string, err error) {
	rest := strings.TrimPrefix(link, urlScheme)
	rest = strings.TrimSuffix(rest, "/")
	hostPort, roomID, ok := strings.Cut(rest, "/")
	if !ok || hostPort == "" || roomID == "" {
		return "", "", fmt.Errorf("want %shost:port/room, got %q", urlScheme, link)
	}
	return hostPort, roomID, nil
}
