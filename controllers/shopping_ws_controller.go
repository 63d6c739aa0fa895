package controllers

import (
	"net/http"
	"time"

	"github.com/dawidtomczynski/Przemyslane-Zakupy/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type ShoppingWSController struct {
	Hub *services.ShoppingHub
}

func NewShoppingWSController(hub *services.ShoppingHub) *ShoppingWSController {
	return &ShoppingWSController{Hub: hub}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true }, // tighten behind a proxy if needed
}

// ShoppingListWS joins the client to the plan's room. Whatever the client
// sends (check/uncheck events for shopping-list entries) is relayed to the
// other viewers of the same plan; nothing is stored.
func (sc *ShoppingWSController) ShoppingListWS(c *gin.Context) {
	planID, ok := idParam(c, "plan_id")
	if !ok {
		return
	}
	if _, err := services.GetPlan(planID); err != nil {
		serviceError(c, err)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	cl := &services.ShoppingClient{PlanID: planID, Conn: conn}
	sc.Hub.Join(cl)

	// ping to keep connections alive through some proxies
	go func() {
		t := time.NewTicker(25 * time.Second)
		defer t.Stop()
		for range t.C {
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				sc.Hub.Leave(cl)
				return
			}
		}
	}()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			sc.Hub.Leave(cl)
			return
		}
		sc.Hub.Relay(cl, msg)
	}
}
