// Package net serves the board to a browser over a websocket and announces
// it on the local network.
package net

import (
	"context"
	"embed"
	"io/fs"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"

	"BezierBoard/internal/render"
	"BezierBoard/internal/state"
)

//go:embed static
var static embed.FS

const writeTimeout = 5 * time.Second

// Server runs one Editor per websocket connection. Connections are
// isolated: nothing is shared between them but the style.
type Server struct {
	// Seed, if set, prepares every new session's editor.
	Seed func(*state.Editor)

	logger    hclog.Logger
	hitRadius float64
	style     atomic.Pointer[render.Style]
	sessions  *SessionManager
	upgrader  websocket.Upgrader
}

func NewServer(logger hclog.Logger, st render.Style, hitRadius float64) *Server {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	s := &Server{
		logger:    logger,
		hitRadius: hitRadius,
		sessions:  NewSessionManager(),
	}
	s.style.Store(&st)
	return s
}

func (s *Server) Sessions() *SessionManager {
	return s.sessions
}

// SetStyle changes the look and asks every session to redraw.
func (s *Server) SetStyle(st render.Style) {
	s.style.Store(&st)
	s.sessions.Each(func(ss *session) {
		select {
		case ss.restyle <- struct{}{}:
		default:
		}
	})
}

// Handler routes the page and the websocket endpoint.
func (s *Server) Handler() http.Handler {
	page, err := fs.Sub(static, "static")
	if err != nil {
		panic(err)
	}
	r := mux.NewRouter()
	r.HandleFunc("/ws", s.serveWS)
	r.PathPrefix("/").Handler(http.FileServer(http.FS(page)))
	return r
}

// ListenAndServe serves until ctx is done, then shuts down.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.Handler()}
	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()
	s.logger.Info("web editor listening", "addr", addr)

	select {
	case err := <-errc:
		return errors.Wrap(err, "web server")
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()
	s.sessions.Each(func(ss *session) {
		ss.conn.Close()
	})
	return errors.Wrap(srv.Shutdown(shutdownCtx), "web server shutdown")
}

func (s *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}
	ss := &session{
		conn:    conn,
		editor:  state.NewEditor(s.logger.Named("editor"), s.hitRadius),
		restyle: make(chan struct{}, 1),
		logger:  s.logger.With("remote", conn.RemoteAddr().String()),
	}
	if s.Seed != nil {
		s.Seed(ss.editor)
	}
	s.sessions.Add(ss)
	defer s.sessions.Remove(ss)
	ss.logger.Info("session opened", "sessions", s.sessions.Count())

	ss.run(s.style.Load)
	ss.logger.Info("session closed")
}

// session owns one editor. Only run's goroutine touches it.
type session struct {
	conn    *websocket.Conn
	editor  *state.Editor
	restyle chan struct{}
	logger  hclog.Logger
}

func (ss *session) run(style func() *render.Style) {
	defer ss.conn.Close()

	msgs := make(chan ClientMessage)
	readErr := make(chan error, 1)
	done := make(chan struct{})
	defer close(done)
	go func() {
		defer close(msgs)
		for {
			var msg ClientMessage
			if err := ss.conn.ReadJSON(&msg); err != nil {
				readErr <- err
				return
			}
			select {
			case msgs <- msg:
			case <-done:
				return
			}
		}
	}()

	if err := ss.send(*style()); err != nil {
		ss.logger.Warn("initial frame", "error", err)
		return
	}
	for {
		select {
		case msg, ok := <-msgs:
			if !ok {
				ss.logger.Debug("read loop ended", "error", <-readErr)
				return
			}
			rev := ss.editor.Revision()
			apply(ss.editor, msg)
			if ss.editor.Revision() == rev {
				continue
			}
		case <-ss.restyle:
		}
		if err := ss.send(*style()); err != nil {
			ss.logger.Warn("sending frame", "error", err)
			return
		}
	}
}

func (ss *session) send(st render.Style) error {
	if err := ss.conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
		return errors.Wrap(err, "setting write deadline")
	}
	return errors.Wrap(ss.conn.WriteJSON(frame(ss.editor, st)), "writing frame")
}
