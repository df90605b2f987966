package dispatch

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

const wsWriteTimeout = 5 * time.Second

// WSDebugHandler exposes the same tool-call dispatch a stdio client gets,
// over a websocket, for interactive debugging during development (spec
// §4.8 ambient extension — never used by the assistant protocol itself).
type WSDebugHandler struct {
	dispatcher *Dispatcher
	upgrader   websocket.Upgrader
}

// NewWSDebugHandler binds a debug console to dispatcher.
func NewWSDebugHandler(dispatcher *Dispatcher) *WSDebugHandler {
	return &WSDebugHandler{
		dispatcher: dispatcher,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(_ *http.Request) bool { return true },
		},
	}
}

// Register binds the debug route on an Echo router.
func (h *WSDebugHandler) Register(e *echo.Echo) {
	e.GET("/debug/ws", h.handle)
}

func (h *WSDebugHandler) handle(c echo.Context) error {
	remoteAddr := c.RealIP()
	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return fmt.Errorf("wsdebug: upgrade: %w", err)
	}
	defer conn.Close()

	sessionID := uuid.New().String()
	slog.Info("wsdebug: client connected", "remote", remoteAddr, "session", sessionID)
	ctx := c.Request().Context()

	for {
		var call ToolCall
		if err := conn.ReadJSON(&call); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				slog.Warn("wsdebug: read error", "remote", remoteAddr, "session", sessionID, "err", err)
			}
			return nil
		}

		result := Format(h.dispatcher.Dispatch(ctx, call.Tool, call.Args))
		conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
		if err := conn.WriteJSON(result); err != nil {
			slog.Warn("wsdebug: write error", "remote", remoteAddr, "session", sessionID, "err", err)
			return nil
		}
	}
}
