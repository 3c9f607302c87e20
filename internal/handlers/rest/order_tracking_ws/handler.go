package order_tracking_ws

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"storefront/internal/entities"
	"storefront/internal/handlers/rest/converter"
	"storefront/internal/handlers/rest/response"
	"storefront/internal/service/tracking"
	"storefront/pkg/logger"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = pongWait * 9 / 10
	maxMessageSize = 512
)

type Options struct {
	// CheckOrigin nil означает проверку same-origin из gorilla/websocket
	CheckOrigin func(r *http.Request) bool
}

type Handler struct {
	log      handlerLogger
	tracker  Tracker
	upgrader websocket.Upgrader
}

func New(log handlerLogger, tracker Tracker, opts Options) *Handler {
	return &Handler{
		log:     log.With(logger.NewField("handler", "order_tracking_ws")),
		tracker: tracker,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     opts.CheckOrigin,
		},
	}
}

// ServeHTTP отдаёт первым сообщением текущий статус, затем каждую смену
// отображаемого статуса. Соединение закрывается после терминального статуса.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]

	snapshot, err := h.tracker.Track(r.Context(), orderID)
	if err != nil {
		h.writeTrackError(w, orderID, err)
		return
	}

	updates, cancel, err := h.tracker.Subscribe(snapshot.OrderID)
	if err != nil {
		h.writeTrackError(w, orderID, err)
		return
	}
	defer cancel()

	// переход между Track и Subscribe в канал не попал, берём статус уже после подписки
	current, err := h.tracker.Snapshot(snapshot.OrderID)
	if err != nil {
		h.writeTrackError(w, orderID, err)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Warn("websocket upgrade")
		return
	}
	defer conn.Close()

	log := h.log.With(logger.NewField("order_id", snapshot.OrderID))

	last := current.Display
	if err := h.send(conn, snapshot.OrderID, last); err != nil {
		log.With(logger.NewField("error", err)).Warn("websocket write")
		return
	}
	if last.IsTerminal() {
		closeNormal(conn)
		return
	}

	done := readPump(conn)

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case status, ok := <-updates:
			if !ok {
				closeWith(conn, websocket.CloseGoingAway, "tracking stopped")
				return
			}
			if status == last {
				continue
			}
			last = status
			if err := h.send(conn, snapshot.OrderID, status); err != nil {
				log.With(logger.NewField("error", err)).Warn("websocket write")
				return
			}
			if status.IsTerminal() {
				closeNormal(conn)
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}

func (h *Handler) send(conn *websocket.Conn, orderID string, status entities.OrderStatusType) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(converter.ToTrackingEvent(orderID, status))
}

func (h *Handler) writeTrackError(w http.ResponseWriter, orderID string, err error) {
	var status int
	var message string
	switch {
	case errors.Is(err, tracking.ErrInvalidOrderID):
		status, message = http.StatusBadRequest, "invalid order id"
	case errors.Is(err, tracking.ErrOrderNotFound):
		status, message = http.StatusNotFound, "order not found"
	case errors.Is(err, tracking.ErrTrackerClosed), errors.Is(err, tracking.ErrOrderNotTracked):
		status, message = http.StatusServiceUnavailable, "service is shutting down"
	default:
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("order_id", orderID),
		).Error("track order")
		status, message = http.StatusInternalServerError, "internal error"
	}

	if err := response.WriteError(w, status, message); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

// readPump нужен для обработки pong и close от клиента; входящие сообщения игнорируются.
func readPump(conn *websocket.Conn) <-chan struct{} {
	done := make(chan struct{})

	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	return done
}

func closeNormal(conn *websocket.Conn) {
	closeWith(conn, websocket.CloseNormalClosure, "order finished")
}

func closeWith(conn *websocket.Conn, code int, text string) {
	_ = conn.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(code, text),
		time.Now().Add(writeWait),
	)
}
