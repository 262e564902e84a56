package utils

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// InvoiceLine is one billed room-stay row on the invoice.
type InvoiceLine struct {
	RoomLabel     string
	PricePerNight float64
	Nights        int
	Subtotal      float64
}

// InvoiceData is everything the renderer needs; it never touches the database.
type InvoiceData struct {
	Number       string
	IssuedAt     time.Time
	ClientName   string
	ClientEmail  string
	HotelName    string
	HotelAddress string
	StartDate    time.Time
	EndDate      time.Time
	Lines        []InvoiceLine
	Total        float64
	PaymentMode  string
	PaymentRef   string
	PaidAt       time.Time
}

// RenderInvoicePDF produces the reservation invoice as PDF bytes: title,
// invoice/client block, stay details, line table, total, payment block,
// footer.
func RenderInvoicePDF(data InvoiceData) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(18, 12, 18)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 12, "RESERVATION INVOICE", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 6, "Number: "+data.Number, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, "Date: "+data.IssuedAt.Format("02/01/2006 15:04"), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Client: "+data.ClientName, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Email: "+data.ClientEmail, "", 1, "L", false, 0, "")
	pdf.Ln(6)

	nights := int(data.EndDate.Sub(data.StartDate).Hours() / 24)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, "RESERVATION DETAILS", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, "Hotel: "+data.HotelName, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Address: "+data.HotelAddress, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Stay: %s to %s",
		data.StartDate.Format("02/01/2006"), data.EndDate.Format("02/01/2006")), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Nights: %d", nights), "", 1, "L", false, 0, "")
	pdf.Ln(6)

	// line table
	colW := []float64{74, 34, 22, 44}
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(230, 230, 230)
	headers := []string{"Room", "Price/night", "Nights", "Subtotal"}
	for i, h := range headers {
		pdf.CellFormat(colW[i], 8, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 11)
	for _, line := range data.Lines {
		pdf.CellFormat(colW[0], 8, line.RoomLabel, "1", 0, "L", false, 0, "")
		pdf.CellFormat(colW[1], 8, fmt.Sprintf("%.2f", line.PricePerNight), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colW[2], 8, fmt.Sprintf("%d", line.Nights), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colW[3], 8, fmt.Sprintf("%.2f", line.Subtotal), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, fmt.Sprintf("TOTAL: %.2f", data.Total), "", 1, "R", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, "PAYMENT", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, "Mode: "+data.PaymentMode, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Reference: "+data.PaymentRef, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Date: "+data.PaidAt.Format("02/01/2006 15:04"), "", 1, "L", false, 0, "")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.CellFormat(0, 6, "Thank you for your reservation!", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf render failed: %w", err)
	}
	return buf.Bytes(), nil
}
