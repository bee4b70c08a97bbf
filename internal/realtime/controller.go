package realtime

import (
	"log/slog"
	"net/http"

	"campora/internal/shared/config"
	"campora/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Browsers cannot set Authorization headers on websocket handshakes, so
	// the token rides in the query string and origins are not restricted here
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Controller upgrades websocket connections
type Controller struct {
	hub    *Hub
	config *config.Config
}

// NewController creates a new realtime controller
func NewController(hub *Hub, cfg *config.Config) *Controller {
	return &Controller{hub: hub, config: cfg}
}

// Connect handles GET /ws?token=...
func (ctrl *Controller) Connect(c *gin.Context) {
	userID, ok := ctrl.authenticate(c.Query("token"))
	if !ok {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "Invalid or expired token", nil, nil)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		ctrl.hub.logger.Error("Websocket upgrade failed", slog.String("error", err.Error()))
		return
	}

	client := &Client{
		hub:    ctrl.hub,
		conn:   conn,
		userID: userID,
		send:   make(chan []byte, 64),
	}

	ctrl.hub.register <- client
	go client.writePump()
	go client.readPump()
}

func (ctrl *Controller) authenticate(tokenString string) (string, bool) {
	if tokenString == "" {
		return "", false
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(ctrl.config.JWT.Secret), nil
	})
	if err != nil || !token.Valid {
		return "", false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", false
	}
	if tokenType, ok := claims["type"]; !ok || tokenType != "access" {
		return "", false
	}

	userID, _ := claims["user_id"].(string)
	return userID, userID != ""
}

// RegisterRoutes registers the websocket endpoint
func RegisterRoutes(router *gin.RouterGroup, controller *Controller) {
	router.GET("/ws", controller.Connect)
}
