package controllers

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/Govind-619/EstateSphere/config"
	"github.com/Govind-619/EstateSphere/models"
	"github.com/Govind-619/EstateSphere/utils"
	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
)

// DownloadPropertyInvoice renders the sale invoice of a sold property as PDF
func DownloadPropertyInvoice(c *gin.Context) {
	propertyID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid property ID", nil)
		return
	}

	var invoice models.Invoice
	if err := config.DB.Preload("Lines").Preload("Partner").Preload("Property").
		Where("property_id = ?", propertyID).
		Order("id DESC").
		First(&invoice).Error; err != nil {
		utils.NotFound(c, "No invoice found for this property")
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	// Agency header
	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(100, 10, utils.AppName)
	pdf.SetFont("Arial", "", 12)
	pdf.Ln(8)
	pdf.Cell(100, 8, "42 Estate Avenue, Metropolis")
	pdf.Ln(8)
	pdf.Cell(100, 8, "Email: sales@estatesphere.com | Phone: +1 234-567-8900")
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(100, 10, "INVOICE "+invoice.Number)
	pdf.Ln(12)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(60, 8, "Property: "+invoice.Property.Name)
	pdf.Cell(60, 8, "Reference: "+invoice.Property.Reference)
	pdf.Ln(8)
	pdf.Cell(60, 8, "Date: "+invoice.CreatedAt.Format("2006-01-02"))
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(100, 8, "Billed To:")
	pdf.Ln(7)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(100, 8, invoice.Partner.Name)
	pdf.Ln(6)
	if invoice.Partner.Email != "" {
		pdf.Cell(100, 8, invoice.Partner.Email)
		pdf.Ln(6)
	}
	if invoice.Partner.Address != "" {
		pdf.Cell(100, 8, invoice.Partner.Address)
		pdf.Ln(6)
	}
	pdf.Ln(4)

	// Lines table
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(100, 8, "Description", "1", 0, "C", false, 0, "")
	pdf.CellFormat(20, 8, "Qty", "1", 0, "C", false, 0, "")
	pdf.CellFormat(40, 8, "Amount", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 12)
	for _, line := range invoice.Lines {
		pdf.CellFormat(100, 8, line.Description, "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 8, strconv.Itoa(line.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(40, 8, fmt.Sprintf("%.2f", line.PriceUnit), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(120, 8, "Total:", "", 0, "R", false, 0, "")
	pdf.CellFormat(40, 8, fmt.Sprintf("%.2f", invoice.Total), "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		utils.LogError("Failed to render invoice PDF: %v", err)
		utils.InternalServerError(c, "Failed to generate invoice", nil)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=invoice_"+invoice.Number+".pdf")
	c.Data(200, "application/pdf", buf.Bytes())
}
