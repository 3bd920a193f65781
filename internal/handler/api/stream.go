package api

import (
	"log/slog"
	"net/http"
	"time"

	"slotbook/internal/handler/middleware"
	"slotbook/internal/pkg/clock"
	"slotbook/internal/usecase"
	"slotbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	gorillawebsocket "github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

var upgrader = gorillawebsocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // CORS middleware already gated the handshake request.
	},
}

// snapshotMessage is the wire envelope for each collection snapshot pushed
// over the stream.
type snapshotMessage struct {
	Type         string                        `json:"type"`
	Appointments []queries.AppointmentListItem `json:"appointments"`
}

// StreamHandler pushes the live appointment collection to websocket clients.
// Every sync snapshot becomes one full message; clients replace local state
// wholesale instead of patching deltas.
type StreamHandler struct {
	stream queries.CollectionStream
	clock  clock.Clock
	logger *slog.Logger
}

func NewStreamHandler(stream queries.CollectionStream, clk clock.Clock, logger *slog.Logger) *StreamHandler {
	return &StreamHandler{
		stream: stream,
		clock:  clk,
		logger: logger,
	}
}

// @Summary Appointment stream
// @Description Live full-collection snapshots over websocket
// @Tags appointments
// @Security BearerAuth
// @Success 101 "Switching Protocols"
// @Router /appointments/stream [get]
func (h *StreamHandler) Connect(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	updates, cancel := h.stream.Subscribe()
	defer cancel()

	h.logger.Info("stream client connected", "user_id", identity.UserID)

	// Reader only consumes control frames; any read error ends the session.
	done := make(chan struct{})
	go func() {
		defer close(done)
		conn.SetReadLimit(512)
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(pongWait))
		})
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			h.logger.Info("stream client disconnected", "user_id", identity.UserID)
			return
		case <-c.Request.Context().Done():
			return
		case snapshot, open := <-updates:
			if !open {
				return
			}
			if err := h.writeSnapshot(conn, snapshot, identity); err != nil {
				h.logger.Warn("stream write failed", "user_id", identity.UserID, "error", err)
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(gorillawebsocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (h *StreamHandler) writeSnapshot(conn *gorillawebsocket.Conn, snapshot []queries.AppointmentView, identity usecase.Identity) error {
	msg := snapshotMessage{
		Type:         "snapshot",
		Appointments: queries.ProjectFor(snapshot, identity.UserID, identity.Role, h.clock.Now()),
	}
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(msg)
}
