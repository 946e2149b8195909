package controllers

import (
	"github.com/nithin-912/PayBridge/config"
	"github.com/nithin-912/PayBridge/models"
	"github.com/nithin-912/PayBridge/utils"
	"github.com/gin-gonic/gin"
	razorpay "github.com/razorpay/razorpay-go"
)

// GET /admin/payments/:payment_id/gateway
//
// Fetches the payment from the Razorpay API next to whatever this
// service stored for it, for reconciling rows the webhook may have
// missed or that an operator wants to double-check.
func FetchGatewayPayment(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		paymentID := c.Param("payment_id")
		utils.LogInfo("Gateway lookup for payment %s", paymentID)

		if cfg.RazorpayKey == "" || cfg.RazorpaySecret == "" {
			utils.InternalServerError(c, "Razorpay API credentials are not configured", nil)
			return
		}

		client := razorpay.NewClient(cfg.RazorpayKey, cfg.RazorpaySecret)
		gatewayPayment, err := client.Payment.Fetch(paymentID, nil, nil)
		if err != nil {
			utils.LogError("Razorpay fetch failed for payment %s: %v", paymentID, err)
			utils.NotFound(c, "Payment not found at gateway")
			return
		}

		var stored models.CapturedPayment
		var storedRow interface{}
		if err := config.DB.Where("payment_id = ?", paymentID).First(&stored).Error; err == nil {
			storedRow = stored
		}

		utils.Success(c, "Payment fetched", gin.H{
			"gateway": gatewayPayment,
			"stored":  storedRow,
		})
	}
}
