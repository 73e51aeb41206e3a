package main

import (
	"encoding/json"
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/websocket"

	"github.com/psidex/worldlines/internal/globe"
	"github.com/psidex/worldlines/internal/lib"
	"github.com/psidex/worldlines/internal/scene/globews"
	"github.com/psidex/worldlines/internal/webserver"
)

var (
	upgrader = websocket.Upgrader{}
	logger   *slog.Logger
)

func main() {
	upgrader.CheckOrigin = func(r *http.Request) bool { return true }

	staticDir := flag.String("d", "public", "the directory to serve static files from")
	address := flag.String("b", "127.0.0.1:8080", "the ip:port to bind the webserver to")
	logLevel := flag.String("l", "info", "the log level (debug, info, warn, error)")

	flag.Parse()

	level, err := lib.ParseSLogLevel(*logLevel)
	if err != nil {
		log.Fatalf("unknown log level %q: %v", *logLevel, err)
	}
	logger = lib.NiceLogger(os.Stdout, level)

	http.Handle("/", http.FileServer(http.Dir(*staticDir)))
	http.HandleFunc("/ws", globeSession)

	logger.Info("Listening", "address", *address)
	log.Fatal(http.ListenAndServe(*address, nil))
}

func globeSession(w http.ResponseWriter, r *http.Request) {
	c, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Error("ws upgrade err", "error", err)
		return
	}
	defer c.Close()

	ws := lib.NewThreadSafeWebSocket(c)

	_, msg, err := ws.ReadMessage()
	if err != nil {
		logger.Error("ws cfg read err", "error", err)
		return
	}

	cfg := &webserver.SessionConfig{}
	if err = json.Unmarshal(msg, cfg); err != nil {
		logger.Error("ws cfg unmarshal err", "error", err)
		return
	}

	cities := cfg.Cities
	if len(cities) == 0 {
		cities = globe.DefaultCities()
	}

	g := globe.New(cfg.Config, globews.NewGlobeWs(ws))

	if err := g.Build(cities); err != nil {
		logger.Error("globe build err", "error", err)
		return
	}

	logger.Debug("Session scene built",
		"nodes", g.Graph().NodeCount(), "edges", g.Graph().EdgeCount())

	if err := g.Start(); err != nil {
		logger.Error("globe start err", "error", err)
		return
	}

	runtime := cfg.Runtime.Duration
	if runtime <= 0 {
		runtime = time.Minute
	}

	wsrecv := make(chan struct{})
	timer := time.NewTimer(runtime)

	go func() {
		// Client can send anything and it will cancel the session.
		// Warning: As this is the thread-safe version, this will block any other reads.
		_, _, _ = ws.ReadMessage()
		// If we never read a message, the outer function call will return, closing the
		// WS and causing ReadMessage to return an error, which will end this goroutine.
		close(wsrecv)
	}()

	select {
	case <-timer.C:
	case <-wsrecv:
	}

	g.Cancel()
}
