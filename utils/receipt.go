package utils

import (
	"bytes"
	"fmt"
	"time"

	"github.com/EtherSphere01/Hotel-Amin-International-sub001/models"
	"github.com/go-pdf/fpdf"
)

// BookingReceipt renders an A4 PDF receipt for b. The booking must have its
// User and Rooms loaded.
func BookingReceipt(hotelName string, b *models.Booking, issuedAt time.Time) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Receipt "+b.ReferenceCode, false)
	pdf.SetCreator(hotelName, false)
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, hotelName, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 7, "Booking Receipt", "", 1, "C", false, 0, "")
	pdf.Ln(6)

	line := func(label, value string) {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(40, 6, label, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 6, value, "", 1, "L", false, 0, "")
	}
	line("Reference", b.ReferenceCode)
	line("Guest", b.User.Name)
	line("Email", b.User.Email)
	line("Phone", b.User.Phone)
	line("Check-in", b.CheckIn.Format(DateLayout))
	line("Check-out", b.CheckOut.Format(DateLayout))
	line("Nights", fmt.Sprintf("%d", b.Nights))
	line("Guests", fmt.Sprintf("%d", b.Guests))
	line("Status", string(b.Status))
	pdf.Ln(4)

	widths := []float64{25, 75, 30, 20, 30}
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 240, 255)
	for i, h := range []string{"Room", "Description", "Rate", "Nights", "Amount"} {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, r := range b.Rooms {
		pdf.CellFormat(widths[0], 7, r.RoomNumber, "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[1], 7, r.Title, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 7, money(r.Price), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], 7, fmt.Sprintf("%d", b.Nights), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[4], 7, money(r.Price*float64(b.Nights)), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(3)

	total := func(label, value string, bold bool) {
		style := ""
		if bold {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, 10)
		pdf.CellFormat(150, 7, label, "", 0, "R", false, 0, "")
		pdf.CellFormat(30, 7, value, "", 1, "R", false, 0, "")
	}
	total("Subtotal", money(b.Subtotal), false)
	if b.Discount > 0 {
		total(fmt.Sprintf("Discount (%s)", b.CouponCode), "-"+money(b.Discount), false)
	}
	total("Total", money(b.TotalAmount), true)
	total("Payment", b.PaymentStatus, false)
	if b.PaymentRef != "" {
		total("Transaction", b.PaymentRef, false)
	}

	pdf.Ln(10)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.CellFormat(0, 5, "Issued "+issuedAt.UTC().Format("2006-01-02 15:04 MST"), "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render receipt: %w", err)
	}
	return buf.Bytes(), nil
}

func money(v float64) string {
	return fmt.Sprintf("BDT %.2f", v)
}
