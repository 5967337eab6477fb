package mailer

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/tripweaver/backend/internal/domain"
)

// itineraryTmpl renders the email body. Sections render only when the plan
// carries them with Included set; excluded line items disappear entirely.
var itineraryTmpl = template.Must(template.New("itinerary").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #1f2933;">
<h1>Your trip to {{.DestinationCity}}</h1>
<p>{{.DepartureCity}} &rarr; {{.DestinationCity}}{{if .Dates}} &middot; {{.Dates}}{{end}}</p>
{{if .OutboundFlight}}
<h2>Outbound flight</h2>
<p>{{.OutboundFlight.Airline}} {{.OutboundFlight.FlightNumber}} &middot; {{.OutboundFlight.DepartureTime}} &rarr; {{.OutboundFlight.ArrivalTime}} ({{.OutboundFlight.Duration}})</p>
{{end}}
{{if .ReturnFlight}}
<h2>Return flight</h2>
<p>{{.ReturnFlight.Airline}} {{.ReturnFlight.FlightNumber}} &middot; {{.ReturnFlight.DepartureTime}} &rarr; {{.ReturnFlight.ArrivalTime}} ({{.ReturnFlight.Duration}})</p>
{{end}}
{{if .CarRental}}
<h2>Car rental</h2>
<p>{{.CarRental.Company}} &middot; {{.CarRental.VehicleName}} &middot; pickup {{.CarRental.PickupTime}}</p>
{{end}}
{{if .Hotel}}
<h2>Hotel</h2>
<p>{{.Hotel.Name}}, {{.Hotel.Address}} &middot; {{.Hotel.DistanceFromAirport}}</p>
{{end}}
{{range .Days}}
<h2>Day {{.Day}}{{if .Date}} &middot; {{.Date}}{{end}}</h2>
<ul>
{{range .Items}}<li><strong>{{.Time}}</strong> {{.Title}} &mdash; {{.Description}}</li>
{{end}}</ul>
{{end}}
<p><strong>Total cost: ${{printf "%.2f" .TotalCost}}</strong></p>
</body>
</html>`))

type itineraryView struct {
	DepartureCity   string
	DestinationCity string
	Dates           string
	OutboundFlight  *domain.Flight
	ReturnFlight    *domain.Flight
	CarRental       *domain.CarRental
	Hotel           *domain.Hotel
	Days            []domain.DayItinerary
	TotalCost       float64
}

// RenderItinerary produces the subject and HTML body for a trip email.
// Excluded singletons and line items are filtered out before rendering.
func RenderItinerary(trip domain.Trip, plan domain.TripPlan, totalCost float64) (subject, htmlBody string, err error) {
	view := itineraryView{
		DepartureCity:   trip.Details.DepartureCity,
		DestinationCity: trip.Details.DestinationCity,
		TotalCost:       totalCost,
	}
	if trip.Details.DepartureDate != nil && trip.Details.ReturnDate != nil {
		view.Dates = fmt.Sprintf("%s – %s",
			trip.Details.DepartureDate.Format("Jan 2, 2006"),
			trip.Details.ReturnDate.Format("Jan 2, 2006"))
	}
	if f := plan.OutboundFlight; f != nil && f.Included {
		view.OutboundFlight = f
	}
	if f := plan.ReturnFlight; f != nil && f.Included {
		view.ReturnFlight = f
	}
	if c := plan.CarRental; c != nil && c.Included {
		view.CarRental = c
	}
	if h := plan.Hotel; h != nil && h.Included {
		view.Hotel = h
	}
	for _, day := range plan.Itinerary {
		kept := domain.DayItinerary{Day: day.Day, Date: day.Date}
		for _, item := range day.Items {
			if item.Included {
				kept.Items = append(kept.Items, item)
			}
		}
		if len(kept.Items) > 0 {
			view.Days = append(view.Days, kept)
		}
	}

	var buf strings.Builder
	if err := itineraryTmpl.Execute(&buf, view); err != nil {
		return "", "", fmt.Errorf("mailer: render itinerary: %w", err)
	}
	subject = fmt.Sprintf("Your %s itinerary", trip.Details.DestinationCity)
	return subject, buf.String(), nil
}
