package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/Martokim/TamuCuts-api/controllers/order"
)

// SetupOrderRoutes registers order and order-item endpoints. Orders and
// their items can be created by any authenticated user.
func SetupOrderRoutes(api *gin.RouterGroup, db *gorm.DB) {
	orders := api.Group("/orders")
	{
		// Create a new order
		orders.POST("", orderControllers.PlaceOrderHandler(db))

		// Fetch all orders
		orders.GET("", orderControllers.GetAllOrdersHandler(db))

		// websocket endpoint for real-time order updates
		orders.GET("/ws", orderControllers.OrderWebSocketHandler)

		// Fetch orders for a specific customer
		orders.GET("/customer/:customerID", orderControllers.GetCustomerOrdersHandler(db))

		// Fetch a single order by id or order_ref
		orders.GET("/:id", orderControllers.GetOrderByIDHandler(db))

		// Update order status (e.g., PROCESSING, CANCELLED)
		orders.PUT("/:id/status", orderControllers.UpdateOrderStatusHandler(db))

		// Delete an order
		orders.DELETE("/:id", orderControllers.DeleteOrderHandler(db))
	}

	items := api.Group("/order-items")
	{
		items.POST("", orderControllers.CreateOrderItemHandler(db))
		items.GET("", orderControllers.GetOrderItemsHandler(db))
		items.GET("/:id", orderControllers.GetOrderItemByIDHandler(db))
		items.DELETE("/:id", orderControllers.DeleteOrderItemHandler(db))
	}
}
