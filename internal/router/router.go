package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	Webhook(c *ginext.Context)
	WebhookProbe(c *ginext.Context)
	CreateOrder(c *ginext.Context)
	Sync(c *ginext.Context)
	GetWallet(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Payments
		api.POST("/payments/webhook/:provider", h.Webhook)
		api.GET("/payments/webhook/:provider", h.WebhookProbe)
		api.POST("/payments/orders", h.CreateOrder)
		api.POST("/payments/sync", h.Sync)

		// Wallets
		api.GET("/users/:id/wallet", h.GetWallet)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
