package server

import (
	"artbid-client/internal/apiclient"
	handler "artbid-client/services/view/handler"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
)

// SetupRouter configures all Gin routes for the gateway
func SetupRouter(api apiclient.Client, clock clockwork.Clock) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging
	router.Use(SessionMiddleware)       // resolve the viewer identity per request

	viewHandler := handler.NewViewHandler(api, clock)

	auctions := router.Group("/auctions")
	{
		auctions.GET("/:auction_id/view", viewHandler.GetAuctionViewHandler)
		auctions.POST("/:auction_id/bids", viewHandler.PlaceBidHandler)
		auctions.PUT("/:auction_id/deadline", viewHandler.UpdateDeadlineHandler)
	}

	return router
}
