package gateway

import (
	"sync"

	pkgredis "github.com/sjcet-apps/billboard-core/internal/pkg/redis"
	socketio "github.com/zishang520/socket.io/v2/socket"
	"go.uber.org/zap"
)

const (
	// RoomAdmin carries editor-facing events; RoomDisplay carries the
	// events signage walls react to.
	RoomAdmin   = "admin"
	RoomDisplay = "display"

	namespaceAdmin   = "/admin"
	namespaceDisplay = "/display"

	redisChanAdmin   = "bb:gateway:admin"
	redisChanDisplay = "bb:gateway:display"
)

// Events broadcast by the modules. Display clients re-fetch or patch their
// local state when these arrive.
const (
	EventBlockUpdated    = "block:updated"
	EventSettingsUpdated = "settings:updated"
	EventRosterUpdated   = "roster:updated"
	EventImagesUpdated   = "images:updated"
	EventDisplayFrame    = "display:frame"
	EventDisplayRotate   = "display:rotate"
	EventFeedUpdated     = "feed:updated"
)

// Message is the envelope used by hub broadcasts and Redis fan-out.
type Message struct {
	Event   string      `json:"event"`
	Payload interface{} `json:"payload"`
	Room    string      `json:"room,omitempty"`
}

type gatewayPayload struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

type clientMeta struct {
	sid  string
	room string
}

// Hub manages socket.io namespaces and cross-instance fan-out.
type Hub struct {
	mu sync.RWMutex

	sidRoom   map[string]string
	roomCount map[string]int

	broadcast  chan Message
	register   chan clientMeta
	unregister chan clientMeta

	rc                  *pkgredis.Client
	logger              *zap.Logger
	sio                 *socketio.Server
	adminTokenValidator func(string) bool
}
