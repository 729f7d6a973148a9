package server

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/tinymachines/wopr/pkg/logger"
	"github.com/tinymachines/wopr/pkg/session"
	"github.com/tinymachines/wopr/pkg/wopr"
)

// SocketPath is the fixed endpoint clients dial.
const SocketPath = "/socket"

// Server accepts websocket connections and runs one session controller
// per connection. Sessions share nothing; the gateway is stateless per
// call and safe for concurrent use.
type Server struct {
	addr    string
	gateway wopr.Gateway
	clock   session.Clock

	upgrader   websocket.Upgrader
	httpServer *http.Server

	mu    sync.Mutex
	conns map[*wsConn]struct{}
}

func New(addr string, gateway wopr.Gateway) *Server {
	return NewWithClock(addr, gateway, session.NewClock())
}

// NewWithClock injects the timer source; tests drive the narrative
// delays with a manual clock.
func NewWithClock(addr string, gateway wopr.Gateway, clock session.Clock) *Server {
	return &Server{
		addr:    addr,
		gateway: gateway,
		clock:   clock,
		upgrader: websocket.Upgrader{
			// The relay fronts a public terminal page; the socket itself
			// carries no credentials and no cross-session state.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		conns: make(map[*wsConn]struct{}),
	}
}

// Handler returns the relay's routes: the socket endpoint and a plain
// health check.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(SocketPath, s.handleSocket)
	mux.HandleFunc("/health", s.handleHealth)
	return mux
}

// ListenAndServe runs the relay until Shutdown.
func (s *Server) ListenAndServe() error {
	s.httpServer = &http.Server{
		Addr:    s.addr,
		Handler: s.Handler(),
	}

	logger.Info("WOPR relay listening on %s", s.addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// Shutdown stops accepting connections and closes the live ones.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	for conn := range s.conns {
		conn.Close()
	}
	s.mu.Unlock()

	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprint(w, "WOPR Server Active")
}

func (s *Server) handleSocket(w http.ResponseWriter, r *http.Request) {
	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Warn("upgrade failed: %v", err)
		return
	}

	conn := newConn(ws)
	ctrl := session.NewController(conn, s.gateway, s.clock)

	s.mu.Lock()
	s.conns[conn] = struct{}{}
	s.mu.Unlock()

	go conn.writePump()
	ctrl.Start()
	conn.readPump(ctrl)

	s.mu.Lock()
	delete(s.conns, conn)
	s.mu.Unlock()
}
