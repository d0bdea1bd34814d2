package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/hackforge/hackathon-api/internal/api/handler/v1/response"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
	sendBufferSize = 256
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Origins are enforced by the CORS middleware before the upgrade.
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type subscriber struct {
	conn        *websocket.Conn
	send        chan []byte
	hackathonID uint
	userID      string
}

// LiveLeaderboard pushes a fresh leaderboard to every subscriber of a
// hackathon whenever Publish is called for it.
type LiveLeaderboard struct {
	svc LeaderboardService

	rooms      map[uint]map[*subscriber]struct{}
	roomsMutex sync.RWMutex

	publish    chan uint
	register   chan *subscriber
	unregister chan *subscriber
	done       chan struct{}
}

func NewLiveLeaderboard(svc LeaderboardService) *LiveLeaderboard {
	return &LiveLeaderboard{
		svc:        svc,
		rooms:      make(map[uint]map[*subscriber]struct{}),
		publish:    make(chan uint, 64),
		register:   make(chan *subscriber),
		unregister: make(chan *subscriber),
		done:       make(chan struct{}),
	}
}

// Publish never blocks; a full queue drops the notification.
func (h *LiveLeaderboard) Publish(hackathonID uint) {
	select {
	case h.publish <- hackathonID:
	default:
		zap.L().Warn("leaderboard publish queue full", zap.Uint("hackathon_id", hackathonID))
	}
}

func (h *LiveLeaderboard) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			close(h.done)
			return
		case sub := <-h.register:
			h.roomsMutex.Lock()
			room, ok := h.rooms[sub.hackathonID]
			if !ok {
				room = make(map[*subscriber]struct{})
				h.rooms[sub.hackathonID] = room
			}
			room[sub] = struct{}{}
			h.roomsMutex.Unlock()
		case sub := <-h.unregister:
			h.roomsMutex.Lock()
			h.remove(sub)
			h.roomsMutex.Unlock()
		case hackathonID := <-h.publish:
			h.broadcast(ctx, hackathonID)
		}
	}
}

func (h *LiveLeaderboard) Subscribers(hackathonID uint) int {
	h.roomsMutex.RLock()
	defer h.roomsMutex.RUnlock()

	return len(h.rooms[hackathonID])
}

func (h *LiveLeaderboard) broadcast(ctx context.Context, hackathonID uint) {
	if h.Subscribers(hackathonID) == 0 {
		return
	}

	message, err := h.snapshot(ctx, hackathonID)
	if err != nil {
		zap.L().Error("failed to compute live leaderboard",
			zap.Uint("hackathon_id", hackathonID),
			zap.Error(err),
		)
		return
	}

	h.roomsMutex.Lock()
	defer h.roomsMutex.Unlock()

	for sub := range h.rooms[hackathonID] {
		select {
		case sub.send <- message:
		default:
			// Slow consumer.
			h.remove(sub)
		}
	}
}

// remove must be called with roomsMutex held.
func (h *LiveLeaderboard) remove(sub *subscriber) {
	room, ok := h.rooms[sub.hackathonID]
	if !ok {
		return
	}
	if _, ok := room[sub]; !ok {
		return
	}

	delete(room, sub)
	close(sub.send)
	if len(room) == 0 {
		delete(h.rooms, sub.hackathonID)
	}
}

func (h *LiveLeaderboard) closeAll() {
	h.roomsMutex.Lock()
	defer h.roomsMutex.Unlock()

	for _, room := range h.rooms {
		for sub := range room {
			h.remove(sub)
		}
	}
}

func (h *LiveLeaderboard) snapshot(ctx context.Context, hackathonID uint) ([]byte, error) {
	entries, err := h.svc.Leaderboard(ctx, hackathonID)
	if err != nil {
		return nil, err
	}

	return json.Marshal(response.NewLeaderboard(hackathonID, entries))
}

// HandleLiveLeaderboard godoc
// @Summary      Live leaderboard feed
// @Description  Upgrades to a websocket that receives the leaderboard on connect and after every team or submission change.
// @Tags         leaderboard
// @Produce      json
// @Param        hackathonID  path      int  true  "Hackathon ID"
// @Success      101          {string}  string  "Switching Protocols to WebSocket"
// @Failure      400          {object}  response.Err
// @Failure      401          {object}  response.Err
// @Failure      404          {object}  response.Err
// @Failure      500          {object}  response.Err
// @Router       /hackathons/{hackathonID}/leaderboard/live [get]
// @Security BearerAuth
func (h *LiveLeaderboard) HandleLiveLeaderboard(ctx *gin.Context) {
	identity, respErr := getIdentityFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	hackathonID, respErr := parseIDParam(ctx, "hackathonID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	initial, err := h.snapshot(ctx.Request.Context(), hackathonID)
	if err != nil {
		renderServiceErr(ctx, "HandleLiveLeaderboard -> h.snapshot", err)
		return
	}

	conn, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		// Upgrade has already written the error response.
		zap.L().Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	sub := &subscriber{
		conn:        conn,
		send:        make(chan []byte, sendBufferSize),
		hackathonID: hackathonID,
		userID:      identity.UserID,
	}
	sub.send <- initial

	select {
	case h.register <- sub:
	case <-h.done:
		conn.Close()
		return
	}

	go sub.writePump()
	go sub.readPump(h)
}

func (s *subscriber) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		s.conn.Close()
	}()

	for {
		select {
		case message, ok := <-s.send:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = s.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := s.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump only drains control frames; the feed is one-way.
func (s *subscriber) readPump(h *LiveLeaderboard) {
	defer func() {
		select {
		case h.unregister <- s:
		case <-h.done:
		}
		s.conn.Close()
	}()

	s.conn.SetReadLimit(maxMessageSize)
	_ = s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := s.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				zap.L().Debug("live leaderboard subscriber dropped",
					zap.String("user_id", s.userID),
					zap.Error(err),
				)
			}
			return
		}
	}
}
