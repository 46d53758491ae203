package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle aggregates the handlers the route registration wires up.
type HandlerBundle struct {
	// Chat endpoints.
	ChatHandler        gin.HandlerFunc
	GetMessagesHandler gin.HandlerFunc

	// Lead endpoints.
	CreateLeadHandler gin.HandlerFunc
	ListLeadsHandler  gin.HandlerFunc

	// Catalog endpoints.
	GetPortfolioHandler gin.HandlerFunc
	GetPackagesHandler  gin.HandlerFunc
}
