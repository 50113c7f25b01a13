package utils

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/EtherSphere01/Hotel-Amin-International-sub001/models"
	"github.com/xuri/excelize/v2"
)

var BookingExportHeader = []string{
	"Reference",
	"Guest",
	"Email",
	"Phone",
	"Rooms",
	"Check-in",
	"Check-out",
	"Nights",
	"Guests",
	"Subtotal",
	"Discount",
	"Coupon",
	"Total",
	"Status",
	"Payment",
	"Created",
}

// BookingsWorkbook writes bookings to a single-sheet xlsx file.
func BookingsWorkbook(bookings []models.Booking) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Bookings"
	if _, err := f.NewSheet(sheet); err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to drop default sheet: %w", err)
	}
	if index, err := f.GetSheetIndex(sheet); err == nil {
		f.SetActiveSheet(index)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for col, header := range BookingExportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, fmt.Errorf("failed to set header cell %s: %w", cell, err)
		}
	}
	last, _ := excelize.CoordinatesToCellName(len(BookingExportHeader), 1)
	if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
		return nil, fmt.Errorf("failed to set header style: %w", err)
	}

	for i, b := range bookings {
		rooms := make([]string, 0, len(b.Rooms))
		for _, r := range b.Rooms {
			rooms = append(rooms, r.RoomNumber)
		}
		row := []interface{}{
			b.ReferenceCode,
			b.User.Name,
			b.User.Email,
			b.User.Phone,
			strings.Join(rooms, ", "),
			b.CheckIn.Format(DateLayout),
			b.CheckOut.Format(DateLayout),
			b.Nights,
			b.Guests,
			b.Subtotal,
			b.Discount,
			b.CouponCode,
			b.TotalAmount,
			string(b.Status),
			b.PaymentStatus,
			b.CreatedAt.Format("2006-01-02 15:04"),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := f.SetColWidth(sheet, "A", "P", 16); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
