// file: internals/features/visitors/controller/visitor_export_controller.go
package controller

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"

	"visitordesk_backend/internals/features/visitors/model"
	helper "visitordesk_backend/internals/helpers"
)

/* ===================== EXPORT XLSX ===================== */
// GET /api/visitors/export — log pengunjung gedung dalam satu sheet
func (ctrl *VisitorController) Export(c *fiber.Ctx) error {
	buildingID, err := helper.GetBuildingIDFromLocals(c)
	if err != nil {
		return err
	}

	var rows []model.VisitorModel
	if err := ctrl.DB.
		Preload("VisitorHost").
		Where("visitor_building_id = ?", buildingID).
		Order("visitor_time_in DESC").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil log pengunjung")
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Visitor Log"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{
		"Nama", "Perusahaan", "Kategori", "Host", "Keperluan",
		"Badge", "Masuk", "Keluar", "TTD Terverifikasi",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for i, v := range rows {
		rowNum := i + 2
		set := func(col int, val interface{}) {
			cell, _ := excelize.CoordinatesToCellName(col, rowNum)
			_ = f.SetCellValue(sheet, cell, val)
		}

		host := ""
		if v.VisitorHost != nil {
			host = v.VisitorHost.HostName
		} else if v.VisitorHostName != nil {
			host = *v.VisitorHostName
		}
		timeOut := ""
		if v.VisitorTimeOut != nil {
			timeOut = v.VisitorTimeOut.Format("2006-01-02 15:04")
		}
		verified := "Belum"
		if v.VisitorSignatureVerified {
			verified = "Ya"
		}

		set(1, v.VisitorName)
		set(2, strVal(v.VisitorCompany))
		set(3, v.VisitorCategory)
		set(4, host)
		set(5, strVal(v.VisitorPurpose))
		set(6, strVal(v.VisitorBadgeNumber))
		set(7, v.VisitorTimeIn.Format("2006-01-02 15:04"))
		set(8, timeOut)
		set(9, verified)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyusun file export")
	}

	filename := fmt.Sprintf("visitor-log-%s.xlsx", time.Now().Format("20060102"))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(buf.Bytes())
}

func strVal(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
