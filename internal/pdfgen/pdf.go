// Package pdfgen renders a saved trip plan into a printable PDF itinerary.
package pdfgen

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/tripweaver/backend/internal/domain"
)

// Itinerary renders the trip plan to PDF bytes. Excluded singletons and line
// items are skipped, mirroring the email rendering.
func Itinerary(trip domain.Trip, plan domain.TripPlan, totalCost float64) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	// Header bar
	pdf.SetFillColor(16, 42, 67)
	pdf.Rect(0, 0, 210, 26, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(20, 7)
	pdf.CellFormat(100, 10, "TripWeaver", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(20, 16)
	pdf.CellFormat(170, 6,
		fmt.Sprintf("%s  to  %s", trip.Details.DepartureCity, trip.Details.DestinationCity),
		"", 1, "L", false, 0, "")

	pdf.SetY(34)
	pdf.SetTextColor(0, 0, 0)

	sectionHeader := func(title string) {
		pdf.SetFillColor(16, 42, 67)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(170, 8, "  "+title, "", 1, "L", true, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(2)
	}

	row := func(label, value string) {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(55, 7, label, "", 0, "L", false, 0, "")
		pdf.SetTextColor(20, 20, 20)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(115, 7, value, "", 1, "L", false, 0, "")
	}

	sectionHeader("Trip Overview")
	row("Route", fmt.Sprintf("%s - %s - %s",
		trip.Details.DepartureCity, trip.Details.DestinationCity, trip.Details.DepartureCity))
	if d := trip.Details.DepartureDate; d != nil {
		row("Departure", d.Format("02 Jan 2006 (Mon)"))
	}
	if d := trip.Details.ReturnDate; d != nil {
		row("Return", d.Format("02 Jan 2006 (Mon)"))
	}
	row("Travelers", fmt.Sprintf("%d adult(s), %d child(ren), %d infant(s)",
		trip.Details.Passengers.Adults, trip.Details.Passengers.Children, trip.Details.Passengers.Infants))
	pdf.Ln(4)

	flightRow := func(title string, f *domain.Flight) {
		sectionHeader(title)
		row("Airline", fmt.Sprintf("%s %s", f.Airline, f.FlightNumber))
		row("Schedule", fmt.Sprintf("%s - %s (%s)", f.DepartureTime, f.ArrivalTime, f.Duration))
		row("Class", string(f.Class))
		row("Price", fmt.Sprintf("$%.0f per person", f.PricePerPerson))
		pdf.Ln(4)
	}
	if f := plan.OutboundFlight; f != nil && f.Included {
		flightRow("Outbound Flight", f)
	}
	if f := plan.ReturnFlight; f != nil && f.Included {
		flightRow("Return Flight", f)
	}

	if c := plan.CarRental; c != nil && c.Included {
		sectionHeader("Car Rental")
		row("Company", c.Company)
		row("Vehicle", fmt.Sprintf("%s (%s)", c.VehicleName, c.VehicleType))
		row("Pickup", fmt.Sprintf("%s, %s", c.PickupLocation, c.PickupTime))
		row("Dropoff", fmt.Sprintf("%s, %s", c.DropoffLocation, c.DropoffTime))
		row("Price", fmt.Sprintf("$%.0f/day, $%.0f total", c.PricePerDay, c.TotalPrice))
		pdf.Ln(4)
	}

	if h := plan.Hotel; h != nil && h.Included {
		sectionHeader("Hotel")
		row("Hotel", h.Name)
		row("Address", h.Address)
		row("Rating", fmt.Sprintf("%.1f / 5.0", h.Rating))
		row("Price", fmt.Sprintf("$%.0f/night, $%.0f total", h.PricePerNight, h.TotalPrice))
		pdf.Ln(4)
	}

	for _, day := range plan.Itinerary {
		var kept []domain.ItineraryItem
		for _, item := range day.Items {
			if item.Included {
				kept = append(kept, item)
			}
		}
		if len(kept) == 0 {
			continue
		}
		title := fmt.Sprintf("Day %d", day.Day)
		if day.Date != "" {
			title += " - " + day.Date
		}
		sectionHeader(title)
		for _, item := range kept {
			value := item.Title
			if item.Cost != nil {
				value += fmt.Sprintf(" ($%.0f pp)", *item.Cost)
			}
			row(item.Time, value)
		}
		pdf.Ln(4)
	}

	pdf.SetFillColor(222, 184, 92)
	pdf.SetTextColor(16, 42, 67)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(55, 9, "TOTAL", "", 0, "L", true, 0, "")
	pdf.CellFormat(115, 9, fmt.Sprintf("$%.2f", totalCost), "", 1, "L", true, 0, "")
	pdf.SetTextColor(0, 0, 0)

	pdf.SetY(-22)
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.3)
	pdf.Line(20, pdf.GetY(), 190, pdf.GetY())
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(150, 150, 150)
	pdf.CellFormat(0, 8,
		"Generated itinerary with mock pricing. Not a booking confirmation.",
		"", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdfgen: output: %w", err)
	}
	return buf.Bytes(), nil
}
