package server

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/quickfind/quickfind-terminal/pkg/models"
	"github.com/quickfind/quickfind-terminal/pkg/widget"
)

const (
	readLimit  = 4096
	writeWait  = 5 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
)

// Session is one websocket client and the widget it drives
type Session struct {
	ID string

	conn   *websocket.Conn
	widget *widget.Widget
	logger *zap.Logger
	origin string

	sendLock  sync.Mutex
	changed   chan struct{}
	closeChan chan struct{}
	closeOnce sync.Once
}

func newSession(conn *websocket.Conn, srv *Server, catalog []models.ResultItem) *Session {
	id := uuid.NewString()
	logger := srv.logger.With(zap.String("session", id))

	return &Session{
		ID:     id,
		conn:   conn,
		logger: logger,
		origin: srv.settings.Search.LinkOrigin,
		widget: widget.New(catalog,
			widget.WithSettings(srv.settings),
			widget.WithLogger(logger),
			widget.WithObserver(srv.metrics),
		),
		changed:   make(chan struct{}, 1),
		closeChan: make(chan struct{}),
	}
}

// Serve sends the hello message and processes client actions until the
// connection closes
func (s *Session) Serve() {
	unsubscribe := s.widget.OnChange(func(widget.Snapshot) { s.notify() })
	defer func() {
		unsubscribe()
		s.widget.Close()
		s.Close()
	}()

	s.conn.SetReadLimit(readLimit)
	_ = s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	if err := s.send(ServerMessage{Type: TypeHello, Session: s.ID, Snapshot: s.snapshotView()}); err != nil {
		return
	}

	go s.writeLoop()

	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Warn("websocket read failed", zap.Error(err))
			}
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			s.sendError(fmt.Errorf("malformed message: %w", err))
			continue
		}
		if err := s.handle(msg); err != nil {
			s.sendError(err)
		}
	}
}

func (s *Session) handle(msg ClientMessage) error {
	switch msg.Action {
	case ActionQuery:
		s.widget.SubmitQuery(msg.Query)
	case ActionClear:
		s.widget.ClearQuery()
	case ActionSelectTab:
		tab, _ := models.ParseTab(msg.Tab)
		return s.widget.SelectTab(tab)
	case ActionToggleFacet:
		facet, _ := models.ParseFacet(msg.Facet)
		_, err := s.widget.ToggleFacet(facet)
		return err
	case ActionSnapshot:
		s.notify()
	default:
		return fmt.Errorf("unknown action %q", msg.Action)
	}
	return nil
}

// notify coalesces change signals; the write loop always sends the latest state
func (s *Session) notify() {
	select {
	case s.changed <- struct{}{}:
	default:
	}
}

func (s *Session) writeLoop() {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-s.closeChan:
			return
		case <-s.changed:
			msg := ServerMessage{Type: TypeSnapshot, Session: s.ID, Snapshot: s.snapshotView()}
			if err := s.send(msg); err != nil {
				s.Close()
				return
			}
		case <-ticker.C:
			s.sendLock.Lock()
			err := s.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
			s.sendLock.Unlock()
			if err != nil {
				s.Close()
				return
			}
		}
	}
}

func (s *Session) snapshotView() *SnapshotView {
	return NewSnapshotView(s.widget.Snapshot(), s.origin)
}

func (s *Session) send(msg ServerMessage) error {
	s.sendLock.Lock()
	defer s.sendLock.Unlock()

	_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return s.conn.WriteJSON(msg)
}

func (s *Session) sendError(err error) {
	s.logger.Debug("client action rejected", zap.Error(err))
	_ = s.send(ServerMessage{Type: TypeError, Session: s.ID, Error: err.Error()})
}

// Close ends the session. It is safe to call more than once.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		close(s.closeChan)
		s.conn.Close()
	})
}
