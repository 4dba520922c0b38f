package realtime

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period (must be less than pongWait)
	pingPeriod = (pongWait * 9) / 10

	// Listing pages never send anything meaningful
	maxMessageSize = 512

	// Events queued per client before it is dropped as too slow
	sendBufferSize = 16
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// client is one listing page. Only its write pump touches conn for writing.
type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub fans food order events out to every connected listing page.
type Hub struct {
	clients  map[*client]struct{}
	mutex    sync.Mutex
	upgrader websocket.Upgrader
	log      *logrus.Logger
}

func NewHub(log *logrus.Logger) *Hub {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Hub{
		clients: make(map[*client]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		log: log,
	}
}

// register -> menambahkan client ke set
func (h *Hub) register(c *client) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	h.clients[c] = struct{}{}
}

// unregister -> melepaskan client; send ditutup sekali saja
func (h *Hub) unregister(c *client) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	h.drop(c)
}

// drop must be called with h.mutex held.
func (h *Hub) drop(c *client) {
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
}

func (h *Hub) ClientCount() int {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return len(h.clients)
}

// Publish queues one event for every client and never waits on the network.
// A client whose queue is full is dropped.
func (h *Hub) Publish(event string, data interface{}) {
	payload, err := json.Marshal(Message{Event: event, Data: data})
	if err != nil {
		h.log.WithError(err).Error("Error marshaling message")
		return
	}

	h.mutex.Lock()
	defer h.mutex.Unlock()

	h.log.WithField("event", event).Debugf("Broadcasting to %d clients", len(h.clients))
	for c := range h.clients {
		select {
		case c.send <- payload:
		default:
			h.log.WithField("event", event).Warn("Client send buffer full, dropping it")
			h.drop(c)
		}
	}
}

// ServeWS upgrades the request and keeps the client registered until it
// disconnects or stops answering pings. Incoming messages are discarded.
func (h *Hub) ServeWS(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.WithError(err).Warn("websocket upgrade failed")
		return
	}

	cl := &client{conn: conn, send: make(chan []byte, sendBufferSize)}
	h.register(cl)

	go h.writePump(cl)
	h.readPump(cl)
}

func (h *Hub) readPump(c *client) {
	defer func() {
		h.unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.WithError(err).Debug("websocket closed")
			}
			return
		}
	}
}

func (h *Hub) writePump(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case payload, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// hub dropped this client
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				h.log.WithError(err).Debug("Error sending message to client")
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
