package net

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"BezierBoard/internal/geom"
	"BezierBoard/internal/render"
	"BezierBoard/internal/state"
)

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	resp.Body.Close()
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readFrame(t *testing.T, conn *websocket.Conn) Frame {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	var f Frame
	require.NoError(t, conn.ReadJSON(&f))
	require.Equal(t, "frame", f.Type)
	return f
}

func send(t *testing.T, conn *websocket.Conn, msg ClientMessage) {
	t.Helper()
	require.NoError(t, conn.WriteJSON(msg))
}

func TestServePage(t *testing.T) {
	srv := httptest.NewServer(NewServer(nil, render.DefaultStyle(), 0).Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
}

func TestSessionDrawAndSmooth(t *testing.T) {
	srv := httptest.NewServer(NewServer(nil, render.DefaultStyle(), 0).Handler())
	defer srv.Close()
	conn := dial(t, srv)

	f := readFrame(t, conn)
	assert.Equal(t, uint64(0), f.Revision)
	assert.False(t, f.Drawing)
	assert.Equal(t, state.NoSelection, f.Selected)

	send(t, conn, ClientMessage{Type: MsgAction, Action: ActionToggle})
	f = readFrame(t, conn)
	assert.True(t, f.Drawing)

	pts := []geom.Point{
		{X: 0, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 10}, {X: 10, Y: 0},
		{X: 50, Y: 50}, {X: 60, Y: 50}, {X: 60, Y: 60}, {X: 50, Y: 60},
	}
	for _, p := range pts {
		send(t, conn, ClientMessage{Type: MsgClick, X: p.X, Y: p.Y})
		readFrame(t, conn)
	}
	send(t, conn, ClientMessage{Type: MsgAction, Action: ActionToggle})
	f = readFrame(t, conn)
	assert.Equal(t, 1, f.Paths)

	send(t, conn, ClientMessage{Type: MsgClick, X: 1, Y: 1})
	f = readFrame(t, conn)
	assert.Equal(t, 0, f.Selected)

	send(t, conn, ClientMessage{Type: MsgAction, Action: ActionC1})
	f = readFrame(t, conn)
	circles := 0
	for _, op := range f.Ops {
		if op.Op == render.OpCircle {
			circles++
			if circles == 6 {
				assert.Equal(t, 10.0, op.X)
				assert.Equal(t, -10.0, op.Y)
			}
		}
	}
	assert.Equal(t, 8, circles)
}

func TestSessionIgnoresNoOps(t *testing.T) {
	srv := httptest.NewServer(NewServer(nil, render.DefaultStyle(), 0).Handler())
	defer srv.Close()
	conn := dial(t, srv)
	readFrame(t, conn)

	// none of these change anything, so no frame may arrive for them
	send(t, conn, ClientMessage{Type: MsgAction, Action: ActionDelete})
	send(t, conn, ClientMessage{Type: MsgAction, Action: ActionC0})
	send(t, conn, ClientMessage{Type: MsgDown, X: 1, Y: 1})
	send(t, conn, ClientMessage{Type: "bogus"})
	send(t, conn, ClientMessage{Type: MsgAction, Action: ActionNew})

	send(t, conn, ClientMessage{Type: MsgAction, Action: ActionClear})
	f := readFrame(t, conn)
	assert.Equal(t, uint64(1), f.Revision)
}

func TestSessionsIsolatedAndRestyled(t *testing.T) {
	s := NewServer(nil, render.DefaultStyle(), 0)
	s.Seed = func(e *state.Editor) {
		e.ToggleDrawingMode()
		e.HandleClick(geom.Pt(5, 5))
	}
	srv := httptest.NewServer(s.Handler())
	defer srv.Close()

	a := dial(t, srv)
	b := dial(t, srv)
	fa := readFrame(t, a)
	readFrame(t, b)
	assert.True(t, fa.Drawing)

	send(t, a, ClientMessage{Type: MsgClick, X: 20, Y: 20})
	fa = readFrame(t, a)
	assert.Equal(t, uint64(3), fa.Revision)

	require.Eventually(t, func() bool { return s.Sessions().Count() == 2 }, 5*time.Second, 10*time.Millisecond)
	st := render.DefaultStyle()
	st.MarkerColor = render.DefaultStyle().CurveColor
	s.SetStyle(st)

	fb := readFrame(t, b)
	assert.Equal(t, uint64(2), fb.Revision, "b never saw a's click")
	assert.Contains(t, fb.Ops, render.Op{Op: render.OpFill, Color: render.Hex(st.MarkerColor)})
}

func TestSessionSendClosedConn(t *testing.T) {
	srv := httptest.NewServer(NewServer(nil, render.DefaultStyle(), 0).Handler())
	defer srv.Close()
	conn := dial(t, srv)
	readFrame(t, conn)

	ss := &session{conn: conn, editor: state.NewEditor(nil, 0)}
	require.NoError(t, conn.UnderlyingConn().Close())
	err := ss.send(render.DefaultStyle())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write deadline")
}
