package export

import (
	"bytes"
	"fmt"
	"pondilore/models"

	"github.com/phpdave11/gofpdf"
	qrcode "github.com/skip2/go-qrcode"
)

// TripPDF renders a printable itinerary with a share QR code in the corner.
func TripPDF(trip models.GeneratedTrip, shareURL string) ([]byte, error) {
	qrPNG, err := qrcode.Encode(shareURL, qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("generate QR: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 10, trip.Draft.Name)
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 8, fmt.Sprintf("%s - %s | %d traveler(s) | %s", trip.Draft.StartDate, trip.Draft.EndDate, trip.Draft.Travelers, trip.Draft.Type))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Estimated cost: %s", trip.CostEstimate))
	pdf.Ln(10)

	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 160, 12, 35, 35, false, imageOpts, 0, "")

	for _, day := range trip.Itinerary {
		pdf.SetFont("Arial", "B", 13)
		title := fmt.Sprintf("Day %d", day.DayNumber)
		if day.Date != "" {
			title += " - " + day.Date
		}
		pdf.Cell(0, 9, title)
		pdf.Ln(8)

		pdf.SetFont("Arial", "", 11)
		for _, act := range day.Activities {
			pdf.Cell(0, 7, fmt.Sprintf("%s: %s", act.TimeSlot, act.Place))
			pdf.Ln(6)
			if act.Description != "" {
				pdf.SetFont("Arial", "I", 9)
				pdf.Cell(0, 5, act.Description)
				pdf.Ln(5)
				pdf.SetFont("Arial", "", 11)
			}
		}
		if day.Notes != "" {
			pdf.SetFont("Arial", "I", 9)
			pdf.Cell(0, 5, "Note: "+day.Notes)
			pdf.Ln(5)
			pdf.SetFont("Arial", "", 11)
		}
		pdf.Ln(4)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render PDF: %w", err)
	}
	return buf.Bytes(), nil
}
