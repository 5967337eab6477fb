package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/tripweaver/backend/internal/domain"
)

// TripRepo defines the persistence operations for trips and their line items.
// The service layer depends on this interface, not the Postgres
// implementation, so it can be unit-tested with a mock.
type TripRepo interface {
	// Create performs the two-phase write: the trip header is inserted
	// first with status "preview", then every line item in one
	// transaction, after which the status flips to "planned".
	//
	// A header insert failure aborts with nothing written. An item-phase
	// failure returns the persisted preview header together with the
	// error — a zero-item trip is a defined preview state, not corruption.
	Create(ctx context.Context, trip domain.Trip, plan domain.TripPlan) (domain.Trip, error)

	// GetByID retrieves one trip with its reconstructed plan, scoped to
	// the owning user. Returns domain.ErrNotFound when no such trip
	// exists under that user. The plan's TotalCost is left at zero; the
	// cost aggregator is the source of truth and the service recomputes it.
	GetByID(ctx context.Context, userID, tripID uuid.UUID) (domain.Trip, domain.TripPlan, error)

	// ListByUser returns one page of the user's trip headers, newest
	// first, plus the total header count.
	ListByUser(ctx context.Context, userID uuid.UUID, p domain.PaginationParams) ([]domain.Trip, int64, error)
}

type pgTripRepo struct {
	db db
}

// NewTripRepo constructs a TripRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewTripRepo(db db) TripRepo {
	return &pgTripRepo{db: db}
}

const tripColumns = `
	id, user_id, departure_city, destination_city,
	departure_iata, destination_iata, departure_country, destination_country,
	departure_lat, departure_lon, destination_lat, destination_lon,
	departure_date, return_date, adults, children, infants,
	flight_class, include_car, include_hotel, status, created_at, updated_at`

func (r *pgTripRepo) Create(ctx context.Context, trip domain.Trip, plan domain.TripPlan) (domain.Trip, error) {
	const insertHeader = `
		INSERT INTO trips (
			user_id, departure_city, destination_city,
			departure_iata, destination_iata, departure_country, destination_country,
			departure_lat, departure_lon, destination_lat, destination_lon,
			departure_date, return_date, adults, children, infants,
			flight_class, include_car, include_hotel, status
		) VALUES (
			@user_id, @departure_city, @destination_city,
			@departure_iata, @destination_iata, @departure_country, @destination_country,
			@departure_lat, @departure_lon, @destination_lat, @destination_lon,
			@departure_date, @return_date, @adults, @children, @infants,
			@flight_class, @include_car, @include_hotel, @status
		) RETURNING` + tripColumns

	d := trip.Details
	class := d.FlightClass
	if class == "" {
		class = domain.ClassEconomy
	}
	args := pgx.NamedArgs{
		"user_id":          trip.UserID,
		"departure_city":   d.DepartureCity,
		"destination_city": d.DestinationCity,
		"departure_date":   d.DepartureDate,
		"return_date":      d.ReturnDate,
		"adults":           d.Passengers.Adults,
		"children":         d.Passengers.Children,
		"infants":          d.Passengers.Infants,
		"flight_class":     string(class),
		"include_car":      d.IncludeCarRental,
		"include_hotel":    d.IncludeHotel,
		"status":           string(domain.StatusPreview),
	}
	addLocationArgs(args, "departure", d.DepartureLocation)
	addLocationArgs(args, "destination", d.DestinationLocation)

	created, err := scanTrip(r.db.QueryRow(ctx, insertHeader, args))
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: header: %w", err)
	}

	if err := r.insertItems(ctx, created.ID, plan); err != nil {
		// Header stands; the zero-item trip reads back as a preview.
		return created, fmt.Errorf("repo.TripRepo.Create: items: %w", err)
	}
	created.Status = domain.StatusPlanned
	return created, nil
}

// insertItems writes every concrete plan item and flips the header to
// "planned", all in one transaction so a partial item set never persists.
func (r *pgTripRepo) insertItems(ctx context.Context, tripID uuid.UUID, plan domain.TripPlan) error {
	const insertItem = `
		INSERT INTO trip_items (
			id, trip_id, item_type, name, description, cost, included,
			day_number, order_in_day, provider_data
		) VALUES (
			@id, @trip_id, @item_type, @name, @description, @cost, @included,
			@day_number, @order_in_day, @provider_data
		)`

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, row := range flattenPlan(plan) {
		payload, err := json.Marshal(row.payload)
		if err != nil {
			return fmt.Errorf("marshal provider_data: %w", err)
		}
		_, err = tx.Exec(ctx, insertItem, pgx.NamedArgs{
			"id":            row.id,
			"trip_id":       tripID,
			"item_type":     row.itemType,
			"name":          row.name,
			"description":   row.description,
			"cost":          row.cost,
			"included":      row.included,
			"day_number":    row.day,
			"order_in_day":  row.order,
			"provider_data": payload,
		})
		if err != nil {
			return err
		}
	}

	_, err = tx.Exec(ctx,
		`UPDATE trips SET status = @status, updated_at = now() WHERE id = @id`,
		pgx.NamedArgs{"status": string(domain.StatusPlanned), "id": tripID})
	if err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *pgTripRepo) GetByID(ctx context.Context, userID, tripID uuid.UUID) (domain.Trip, domain.TripPlan, error) {
	q := `SELECT` + tripColumns + ` FROM trips WHERE id = @id AND user_id = @user_id`

	trip, err := scanTrip(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": tripID, "user_id": userID}))
	if err != nil {
		return domain.Trip{}, domain.TripPlan{}, fmt.Errorf("repo.TripRepo.GetByID: %w", err)
	}

	plan, err := r.loadPlan(ctx, tripID)
	if err != nil {
		return domain.Trip{}, domain.TripPlan{}, fmt.Errorf("repo.TripRepo.GetByID: items: %w", err)
	}
	return trip, plan, nil
}

// loadPlan reassembles the TripPlan from its item rows. Singleton items come
// back via their typed payloads; itinerary activities regroup by day in their
// original order.
func (r *pgTripRepo) loadPlan(ctx context.Context, tripID uuid.UUID) (domain.TripPlan, error) {
	const q = `
		SELECT included, day_number, provider_data
		FROM trip_items
		WHERE trip_id = @trip_id
		ORDER BY day_number NULLS FIRST, order_in_day NULLS FIRST, created_at`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return domain.TripPlan{}, err
	}
	defer rows.Close()

	var plan domain.TripPlan
	dayIndex := map[int]int{} // day number -> index in plan.Itinerary

	for rows.Next() {
		var (
			included bool
			day      *int
			raw      []byte
		)
		if err := rows.Scan(&included, &day, &raw); err != nil {
			return domain.TripPlan{}, err
		}

		var p itemPayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return domain.TripPlan{}, fmt.Errorf("unmarshal provider_data: %w", err)
		}

		// The included column is authoritative over the stored payload.
		switch p.Kind {
		case payloadFlight:
			f := *p.Flight
			f.Included = included
			if p.Direction == directionReturn {
				plan.ReturnFlight = &f
			} else {
				plan.OutboundFlight = &f
			}
		case payloadCar:
			c := *p.Car
			c.Included = included
			plan.CarRental = &c
		case payloadHotel:
			h := *p.Hotel
			h.Included = included
			plan.Hotel = &h
		case payloadActivity:
			if day == nil {
				return domain.TripPlan{}, fmt.Errorf("activity item without day number")
			}
			item := *p.Activity
			item.Included = included
			idx, ok := dayIndex[*day]
			if !ok {
				plan.Itinerary = append(plan.Itinerary, domain.DayItinerary{Day: *day, Date: p.DayDate})
				idx = len(plan.Itinerary) - 1
				dayIndex[*day] = idx
			}
			plan.Itinerary[idx].Items = append(plan.Itinerary[idx].Items, item)
		default:
			return domain.TripPlan{}, fmt.Errorf("unknown provider_data kind %q", p.Kind)
		}
	}
	return plan, rows.Err()
}

func (r *pgTripRepo) ListByUser(ctx context.Context, userID uuid.UUID, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	q := `SELECT` + tripColumns + `, count(*) OVER () AS total
		FROM trips
		WHERE user_id = @user_id
		ORDER BY created_at DESC
		LIMIT @limit OFFSET @offset`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{
		"user_id": userID,
		"limit":   p.Limit,
		"offset":  p.Offset(),
	})
	if err != nil {
		return nil, 0, fmt.Errorf("repo.TripRepo.ListByUser: %w", err)
	}
	defer rows.Close()

	var (
		trips []domain.Trip
		total int64
	)
	for rows.Next() {
		t, n, err := scanTripWithTotal(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("repo.TripRepo.ListByUser: scan: %w", err)
		}
		trips = append(trips, t)
		total = n
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("repo.TripRepo.ListByUser: rows: %w", err)
	}
	return trips, total, nil
}

// addLocationArgs flattens an optional normalized location into the
// prefix_iata/country/lat/lon named args; nils become NULL columns.
func addLocationArgs(args pgx.NamedArgs, prefix string, loc *domain.Location) {
	var (
		iata, country *string
		lat, lon      *float64
	)
	if loc != nil {
		iata = &loc.IATACode
		if loc.CountryCode != "" {
			country = &loc.CountryCode
		}
		lat, lon = loc.Lat, loc.Lon
	}
	args[prefix+"_iata"] = iata
	args[prefix+"_country"] = country
	args[prefix+"_lat"] = lat
	args[prefix+"_lon"] = lon
}

func scanTrip(s scanner) (domain.Trip, error) {
	t, _, err := scanTripInto(s, false)
	return t, err
}

func scanTripWithTotal(s scanner) (domain.Trip, int64, error) {
	return scanTripInto(s, true)
}

// scanTripInto maps one trips row into a domain.Trip, rebuilding the
// best-effort normalized locations from the flattened columns.
func scanTripInto(s scanner, withTotal bool) (domain.Trip, int64, error) {
	var (
		t                      domain.Trip
		id, userID             pgtype.UUID
		depIATA, dstIATA       *string
		depCountry, dstCountry *string
		depLat, depLon         *float64
		dstLat, dstLon         *float64
		depDate, retDate       pgtype.Date
		class                  string
		status                 string
		total                  int64
	)

	dest := []any{
		&id, &userID, &t.Details.DepartureCity, &t.Details.DestinationCity,
		&depIATA, &dstIATA, &depCountry, &dstCountry,
		&depLat, &depLon, &dstLat, &dstLon,
		&depDate, &retDate,
		&t.Details.Passengers.Adults, &t.Details.Passengers.Children, &t.Details.Passengers.Infants,
		&class, &t.Details.IncludeCarRental, &t.Details.IncludeHotel,
		&status, &t.CreatedAt, &t.UpdatedAt,
	}
	if withTotal {
		dest = append(dest, &total)
	}

	if err := s.Scan(dest...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Trip{}, 0, domain.ErrNotFound
		}
		return domain.Trip{}, 0, err
	}

	t.ID = uuid.UUID(id.Bytes)
	t.UserID = uuid.UUID(userID.Bytes)
	t.Status = domain.TripStatus(status)
	t.Details.FlightClass = domain.FlightClass(class)
	if depDate.Valid {
		d := depDate.Time
		t.Details.DepartureDate = &d
	}
	if retDate.Valid {
		d := retDate.Time
		t.Details.ReturnDate = &d
	}
	t.Details.DepartureLocation = rebuildLocation(t.Details.DepartureCity, depIATA, depCountry, depLat, depLon)
	t.Details.DestinationLocation = rebuildLocation(t.Details.DestinationCity, dstIATA, dstCountry, dstLat, dstLon)

	return t, total, nil
}

func rebuildLocation(city string, iata, country *string, lat, lon *float64) *domain.Location {
	if iata == nil {
		return nil
	}
	loc := &domain.Location{
		Name:     city,
		IATACode: *iata,
		SubType:  domain.SubTypeCity,
		CityName: city,
		Lat:      lat,
		Lon:      lon,
	}
	if country != nil {
		loc.CountryCode = *country
	}
	return loc
}
