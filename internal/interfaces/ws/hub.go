// Package ws mantiene las conexiones websocket del dashboard y difunde los
// eventos de inventario al dueño de los datos. Cada usuario solo recibe
// eventos de sus propios productos.
package ws

import (
	"encoding/json"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/rs/zerolog"

	"github.com/jcastellr/bizpulse-api/internal/application/dto"
	"github.com/jcastellr/bizpulse-api/internal/domain/entity"
)

// client es el subconjunto de *websocket.Conn que usa el hub; los tests
// registran fakes que lo implementan.
type client interface {
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// inventoryEvent es el sobre que viaja por el websocket.
type inventoryEvent struct {
	Type string              `json:"type"`
	Data dto.ProductResponse `json:"data"`
}

// Hub registra clientes websocket por usuario y les difunde eventos de
// inventario. Implementa usecase.InventoryNotifier.
type Hub struct {
	mu      sync.Mutex
	clients map[string]map[client]bool // ownerID -> conexiones
	log     zerolog.Logger
}

// NewHub crea el hub vacío.
func NewHub(log zerolog.Logger) *Hub {
	return &Hub{
		clients: make(map[string]map[client]bool),
		log:     log,
	}
}

// Register añade la conexión del usuario al hub.
func (h *Hub) Register(ownerID string, c client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[ownerID] == nil {
		h.clients[ownerID] = make(map[client]bool)
	}
	h.clients[ownerID][c] = true
	h.log.Debug().Str("user_id", ownerID).Msg("cliente websocket conectado")
}

// Unregister elimina la conexión y la cierra.
func (h *Hub) Unregister(ownerID string, c client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if conns, ok := h.clients[ownerID]; ok {
		if conns[c] {
			delete(conns, c)
			c.Close()
		}
		if len(conns) == 0 {
			delete(h.clients, ownerID)
		}
	}
}

// NotifyProduct difunde el evento a las conexiones del dueño del producto.
// Las conexiones rotas se expulsan en el mismo paso; el envío nunca devuelve
// error al caso de uso.
func (h *Hub) NotifyProduct(ownerID, event string, p *entity.Product) {
	payload, err := json.Marshal(inventoryEvent{
		Type: event,
		Data: dto.ProductResponse{
			ID:          p.ID,
			Name:        p.Name,
			Category:    p.Category,
			SKU:         p.SKU,
			Stock:       p.Stock,
			Price:       p.Price,
			Cost:        p.Cost,
			Status:      p.Status,
			LastUpdated: p.LastUpdated,
			Supplier:    p.Supplier,
		},
	})
	if err != nil {
		h.log.Error().Err(err).Msg("serializar evento de inventario")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients[ownerID] {
		if err := c.WriteMessage(websocket.TextMessage, payload); err != nil {
			c.Close()
			delete(h.clients[ownerID], c)
		}
	}
}
