package controllers

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
	"github.com/tealeg/xlsx"

	"github.com/nithin-912/PayBridge/config"
	"github.com/nithin-912/PayBridge/models"
	"github.com/nithin-912/PayBridge/utils"
)

// GET /admin/payments/export?format=excel|pdf&slab=micro|standard
func ExportPayments(c *gin.Context) {
	utils.LogInfo("ExportPayments called")

	format := c.DefaultQuery("format", "excel")
	if format != "excel" && format != "pdf" {
		utils.BadRequest(c, "Invalid format", "Format must be excel or pdf")
		return
	}

	table := models.CapturedPayment{}.TableName()
	switch c.Query("slab") {
	case "":
	case utils.SlabMicro:
		table = models.MicroSlabPayment{}.TableName()
	case utils.SlabStandard:
		table = models.StandardSlabPayment{}.TableName()
	default:
		utils.BadRequest(c, "Invalid slab", "Slab must be micro or standard")
		return
	}

	var payments []models.CapturedPayment
	if err := config.DB.Table(table).Order("paid_at DESC").Find(&payments).Error; err != nil {
		utils.LogError("Failed to fetch payments for export: %v", err)
		utils.InternalServerError(c, "Failed to fetch payments", err.Error())
		return
	}
	utils.LogDebug("Retrieved %d payments from %s for %s export", len(payments), table, format)

	var total float64
	for _, p := range payments {
		total += p.Amount
	}

	if format == "pdf" {
		exportPaymentsPDF(c, table, payments, total)
		return
	}
	exportPaymentsExcel(c, table, payments, total)
}

func exportPaymentsExcel(c *gin.Context, table string, payments []models.CapturedPayment, total float64) {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Payments")
	if err != nil {
		utils.LogError("Failed to create Excel sheet: %v", err)
		utils.InternalServerError(c, "Failed to create Excel sheet", err.Error())
		return
	}

	titleRow := sheet.AddRow()
	titleRow.AddCell().SetString(utils.AppName + " - Captured Payments")
	infoRow := sheet.AddRow()
	infoRow.AddCell().SetString(fmt.Sprintf("Table: %s | Exported: %s", table, time.Now().Format("2006-01-02 15:04")))
	sheet.AddRow() // spacing

	headers := []string{"Payment ID", "Order ID", "Email", "Phone", "Name", "City", "Amount", "Currency", "Status", "Event", "Method", "Paid At"}
	headerRow := sheet.AddRow()
	for _, h := range headers {
		cell := headerRow.AddCell()
		cell.SetString(h)
		style := xlsx.NewStyle()
		font := xlsx.DefaultFont()
		font.Bold = true
		style.Font = *font
		cell.SetStyle(style)
	}

	for _, p := range payments {
		row := sheet.AddRow()
		row.AddCell().SetString(p.PaymentID)
		row.AddCell().SetString(p.OrderID)
		row.AddCell().SetString(p.Email)
		row.AddCell().SetString(p.Phone)
		row.AddCell().SetString(p.CustomerName)
		row.AddCell().SetString(p.City)
		row.AddCell().SetFloat(p.Amount)
		row.AddCell().SetString(p.Currency)
		row.AddCell().SetString(p.Status)
		row.AddCell().SetString(p.Event)
		row.AddCell().SetString(p.Method)
		row.AddCell().SetString(p.PaidAt.Format("2006-01-02 15:04:05"))
	}

	sheet.AddRow() // spacing
	summaryRow := sheet.AddRow()
	summaryRow.AddCell().SetString("Total payments")
	summaryRow.AddCell().SetInt(len(payments))
	summaryRow = sheet.AddRow()
	summaryRow.AddCell().SetString("Total amount")
	summaryRow.AddCell().SetFloat(total)

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s-%s.xlsx", table, time.Now().Format("20060102")))
	if err := file.Write(c.Writer); err != nil {
		utils.LogError("Failed to write Excel export: %v", err)
	}
}

func exportPaymentsPDF(c *gin.Context, table string, payments []models.CapturedPayment, total float64) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, utils.AppName+" - Captured Payments")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 9)
	pdf.Cell(0, 8, fmt.Sprintf("Table: %s | Exported: %s", table, time.Now().Format("2006-01-02 15:04")))
	pdf.Ln(12)

	headers := []string{"Payment ID", "Order ID", "Email", "Amount", "Currency", "Status", "Event", "Method", "Paid At"}
	widths := []float64{38, 38, 50, 22, 18, 20, 32, 22, 35}
	pdf.SetFont("Arial", "B", 9)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 8)
	for _, p := range payments {
		cells := []string{
			p.PaymentID,
			p.OrderID,
			p.Email,
			fmt.Sprintf("%.2f", p.Amount),
			p.Currency,
			p.Status,
			p.Event,
			p.Method,
			p.PaidAt.Format("2006-01-02 15:04"),
		}
		for i, cell := range cells {
			pdf.CellFormat(widths[i], 7, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 9)
	pdf.Cell(0, 8, fmt.Sprintf("Total payments: %d | Total amount: %.2f", len(payments), total))

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s-%s.pdf", table, time.Now().Format("20060102")))
	if err := pdf.Output(c.Writer); err != nil {
		utils.LogError("Failed to write PDF export: %v", err)
	}
}
