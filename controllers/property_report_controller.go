package controllers

import (
	"bytes"
	"fmt"
	"time"

	"github.com/Govind-619/EstateSphere/config"
	"github.com/Govind-619/EstateSphere/models"
	"github.com/Govind-619/EstateSphere/utils"
	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
)

func soldPropertiesBetween(c *gin.Context) ([]models.Property, time.Time, time.Time, bool) {
	from, err := time.Parse("2006-01-02", c.DefaultQuery("date_from", time.Now().AddDate(0, -1, 0).Format("2006-01-02")))
	if err != nil {
		utils.BadRequest(c, "date_from must be formatted as 2006-01-02", nil)
		return nil, time.Time{}, time.Time{}, false
	}
	to, err := time.Parse("2006-01-02", c.DefaultQuery("date_to", time.Now().Format("2006-01-02")))
	if err != nil {
		utils.BadRequest(c, "date_to must be formatted as 2006-01-02", nil)
		return nil, time.Time{}, time.Time{}, false
	}
	// Include the whole end day
	to = to.AddDate(0, 0, 1)

	var properties []models.Property
	if err := config.DB.Preload("Buyer").Preload("Salesman").
		Where("state = ? AND sold_date >= ? AND sold_date < ?", models.PropertyStateSold, from, to).
		Order("sold_date DESC").
		Find(&properties).Error; err != nil {
		utils.LogError("Failed to fetch sold properties: %v", err)
		utils.InternalServerError(c, "Failed to fetch sold properties", nil)
		return nil, time.Time{}, time.Time{}, false
	}
	return properties, from, to, true
}

// SoldReport returns the sold listings for a date range
func SoldReport(c *gin.Context) {
	properties, _, _, ok := soldPropertiesBetween(c)
	if !ok {
		return
	}

	lines := make([]gin.H, 0, len(properties))
	for _, p := range properties {
		line := gin.H{
			"property":      p.Name,
			"reference":     p.Reference,
			"selling_price": p.SellingPrice,
			"agent":         p.Salesman.FirstName + " " + p.Salesman.LastName,
			"sold_date":     p.SoldDate,
		}
		if p.Buyer != nil {
			line["buyer"] = p.Buyer.Name
		}
		lines = append(lines, line)
	}

	utils.Success(c, "Sold report generated", gin.H{
		"count": len(lines),
		"lines": lines,
	})
}

// DownloadSoldReportExcel exports the sold listings for a date range as xlsx
func DownloadSoldReportExcel(c *gin.Context) {
	properties, from, to, ok := soldPropertiesBetween(c)
	if !ok {
		return
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Sold Properties")
	if err != nil {
		utils.LogError("Failed to create Excel sheet: %v", err)
		utils.InternalServerError(c, "Failed to create Excel sheet", nil)
		return
	}

	titleRow := sheet.AddRow()
	titleRow.AddCell().SetString(utils.AppName + " - Sold Properties Report")
	periodRow := sheet.AddRow()
	periodRow.AddCell().SetString("Period: " + from.Format("2006-01-02") + " to " + to.AddDate(0, 0, -1).Format("2006-01-02"))
	sheet.AddRow() // spacing

	headers := []string{"Property", "Buyer", "Price", "Agent", "Sold Date"}
	headerRow := sheet.AddRow()
	for _, h := range headers {
		headerRow.AddCell().SetString(h)
	}

	for _, p := range properties {
		row := sheet.AddRow()
		row.AddCell().SetString(p.Name)
		if p.Buyer != nil {
			row.AddCell().SetString(p.Buyer.Name)
		} else {
			row.AddCell().SetString("")
		}
		row.AddCell().SetFloat(p.SellingPrice)
		row.AddCell().SetString(p.Salesman.FirstName + " " + p.Salesman.LastName)
		if p.SoldDate != nil {
			row.AddCell().SetString(p.SoldDate.Format("2006-01-02 15:04"))
		} else {
			row.AddCell().SetString("")
		}
	}

	var buf bytes.Buffer
	if err := file.Write(&buf); err != nil {
		utils.LogError("Failed to write Excel file: %v", err)
		utils.InternalServerError(c, "Failed to generate Excel file", nil)
		return
	}

	filename := fmt.Sprintf("sold_properties_%s_%s.xlsx", from.Format("2006-01-02"), to.AddDate(0, 0, -1).Format("2006-01-02"))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(200, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
