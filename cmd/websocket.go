package main

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"townhubBack/internal/models"
)

// WebSocketManager keeps one socket per connected user and pushes thread
// messages to the recipient the moment they are stored. It satisfies the
// message deliverer interface of the messaging service.
type WebSocketManager struct {
	clients    map[int]*websocket.Conn
	deliver    chan models.ServiceMessage
	register   chan Client
	unregister chan int
}

type Client struct {
	ID     int
	Socket *websocket.Conn
}

func NewWebSocketManager() *WebSocketManager {
	return &WebSocketManager{
		clients:    make(map[int]*websocket.Conn),
		deliver:    make(chan models.ServiceMessage, 64),
		register:   make(chan Client),
		unregister: make(chan int),
	}
}

func (ws *WebSocketManager) Run() {
	for {
		select {
		case client := <-ws.register:
			if old, ok := ws.clients[client.ID]; ok {
				old.Close()
			}
			ws.clients[client.ID] = client.Socket
		case clientID := <-ws.unregister:
			if conn, ok := ws.clients[clientID]; ok {
				conn.Close()
				delete(ws.clients, clientID)
			}
		case msg := <-ws.deliver:
			conn, ok := ws.clients[msg.RecipientID]
			if !ok {
				continue
			}
			if err := conn.WriteJSON(msg); err != nil {
				log.Println("Error sending message:", err)
				conn.Close()
				delete(ws.clients, msg.RecipientID)
			}
		}
	}
}

// DeliverMessage hands the stored message to the run loop. Dropping on a
// full channel is fine, offline recipients still get the message from the
// thread endpoint.
func (ws *WebSocketManager) DeliverMessage(msg models.ServiceMessage) {
	select {
	case ws.deliver <- msg:
	default:
	}
}

func (app *application) WebSocketHandler(w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("WebSocket upgrade error:", err)
		return
	}

	userID := userIDFromRequest(r)
	if userID == 0 {
		conn.Close()
		return
	}

	app.wsManager.register <- Client{ID: userID, Socket: conn}

	go app.readWebSocket(conn, userID)
}

// readWebSocket drains the connection until the client goes away. Messages
// are created over REST; the socket is a delivery channel only.
func (app *application) readWebSocket(conn *websocket.Conn, userID int) {
	defer func() {
		app.wsManager.unregister <- userID
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func userIDFromRequest(r *http.Request) int {
	if id, ok := r.Context().Value("user_id").(int); ok {
		return id
	}
	return 0
}
