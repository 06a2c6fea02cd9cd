package websocket

import (
	"InboxMobile/interfaces"
	"InboxMobile/models"
	"encoding/json"
	"log"
	"sync"
	"time"
)

// Hub maintains the set of active clients per user and fans every projected
// inbox update out to all of a user's devices.
type Hub struct {
	// Registered clients keyed by user id (firebase_uid)
	clients map[string]map[*Client]bool

	// Register requests from the clients.
	register chan *Client

	// Unregister requests from clients.
	unregister chan *Client

	// Send a payload to every client of one user
	broadcast chan *Message

	// Called after the last client of a user disconnects; used to release
	// the user's feed subscription.
	OnUserGone func(userID string)

	mu sync.Mutex
}

type Message struct {
	UserID string
	Data   []byte
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *Message),
	}
}

// Register adds a new client to the hub.
func (h *Hub) Register(client *Client) {
	h.register <- client
}

// Unregister removes a client from the hub.
func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

// Broadcast sends a payload to every connected client of the user.
func (h *Hub) Broadcast(message *Message) {
	h.broadcast <- message
}

// PushInbox delivers a projected chat list to all of the user's devices.
// Implements interfaces.InboxPusher for the feed service.
func (h *Hub) PushInbox(userID string, chats []models.ChatSummary, totalUnread int) {
	payload, err := json.Marshal(interfaces.WebSocketMessage{
		Type:        "inbox_update",
		UserID:      userID,
		Chats:       chats,
		TotalUnread: totalUnread,
		Timestamp:   time.Now(),
	})
	if err != nil {
		log.Printf("[WebSocket] Error encoding inbox update for %s: %v", userID, err)
		return
	}

	h.Broadcast(&Message{UserID: userID, Data: payload})
}

// NavigateTo pushes a navigation intent to all of the user's devices.
// Implements interfaces.Navigator for the action service.
func (h *Hub) NavigateTo(userID, screen string, params map[string]interface{}) {
	payload, err := json.Marshal(interfaces.WebSocketMessage{
		Type:      "navigate",
		UserID:    userID,
		Screen:    screen,
		Params:    params,
		Timestamp: time.Now(),
	})
	if err != nil {
		log.Printf("[WebSocket] Error encoding navigation intent for %s: %v", userID, err)
		return
	}

	h.Broadcast(&Message{UserID: userID, Data: payload})
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			if _, ok := h.clients[client.UserID]; !ok {
				h.clients[client.UserID] = make(map[*Client]bool)
			}
			h.clients[client.UserID][client] = true
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			gone := false
			if _, ok := h.clients[client.UserID]; ok {
				delete(h.clients[client.UserID], client)
				close(client.send)
				if len(h.clients[client.UserID]) == 0 {
					delete(h.clients, client.UserID)
					gone = true
				}
			}
			h.mu.Unlock()

			if gone && h.OnUserGone != nil {
				go h.OnUserGone(client.UserID)
			}

		case message := <-h.broadcast:
			h.mu.Lock()
			if clients, ok := h.clients[message.UserID]; ok {
				for client := range clients {
					select {
					case client.send <- message.Data:
					default:
						close(client.send)
						delete(clients, client)
						if len(clients) == 0 {
							delete(h.clients, message.UserID)
						}
					}
				}
			}
			h.mu.Unlock()
		}
	}
}
