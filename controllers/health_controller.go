package controllers

import (
	"github.com/nithin-912/PayBridge/config"
	"github.com/nithin-912/PayBridge/utils"
	"github.com/gin-gonic/gin"
)

// GET / and GET /razorpay-webhook
func WebhookStatus(c *gin.Context) {
	utils.Success(c, utils.MsgWebhookActive, nil)
}

// GET /db-test
func DBTest(c *gin.Context) {
	sqlDB, err := config.DB.DB()
	if err != nil {
		utils.LogError("DB test failed to access pool: %v", err)
		utils.InternalServerError(c, utils.ErrDBConnection, err.Error())
		return
	}
	if err := sqlDB.PingContext(c.Request.Context()); err != nil {
		utils.LogError("DB test ping failed: %v", err)
		utils.InternalServerError(c, utils.ErrDBConnection, err.Error())
		return
	}

	var count int64
	if err := config.DB.WithContext(c.Request.Context()).
		Table("crm_payments").Count(&count).Error; err != nil {
		utils.LogError("DB test count failed: %v", err)
		utils.InternalServerError(c, utils.ErrDBConnection, err.Error())
		return
	}

	utils.Success(c, "Database reachable", gin.H{"payments": count})
}
