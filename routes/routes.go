package routes

import (
	"github.com/nithin-912/PayBridge/config"
	"github.com/nithin-912/PayBridge/controllers"
	"github.com/nithin-912/PayBridge/middleware"
	"github.com/nithin-912/PayBridge/utils"
	"github.com/gin-gonic/gin"
)

// SetupRouter initializes and returns the Gin router with all routes
func SetupRouter(cfg *config.Config, store controllers.PaymentStore, runner *utils.TaskRunner) *gin.Engine {
	router := gin.New()
	router.Use(utils.LoggerMiddleware())
	router.Use(utils.RecoveryMiddleware())
	router.Use(utils.RequestIDMiddleware())

	webhook := controllers.NewWebhookController(cfg, store, runner)

	router.POST("/razorpay-webhook", webhook.HandleWebhook)
	router.GET("/razorpay-webhook", controllers.WebhookStatus)
	router.GET("/", controllers.WebhookStatus)
	router.GET("/db-test", controllers.DBTest)

	admin := router.Group("/admin")
	admin.Use(middleware.AdminAuthMiddleware())
	{
		admin.GET("/payments/export", controllers.ExportPayments)
		admin.GET("/payments/:payment_id/gateway", controllers.FetchGatewayPayment(cfg))
	}

	return router
}
