package models

import "time"

// FlightOption is one priced round-trip candidate for a route.
type FlightOption struct {
	ID           string  `bson:"id" json:"id"`
	Airline      string  `bson:"airline" json:"airline"`
	FlightNumber string  `bson:"flight_number" json:"flightNumber"`
	Price        float64 `bson:"price" json:"price"`
	Duration     string  `bson:"duration" json:"duration"` // e.g. "7h 45m"
	Stops        int     `bson:"stops" json:"stops"`
}

// HotelOption is one priced stay candidate for a destination.
type HotelOption struct {
	ID            string   `bson:"id" json:"id"`
	Name          string   `bson:"name" json:"name"`
	PricePerNight float64  `bson:"price_per_night" json:"pricePerNight"`
	TotalPrice    float64  `bson:"total_price" json:"totalPrice"` // PricePerNight x nights
	Rating        float64  `bson:"rating" json:"rating"`
	Amenities     []string `bson:"amenities" json:"amenities"`
}

// Attraction is one priced activity suggestion, keyed by interest category.
type Attraction struct {
	ID       string  `bson:"id" json:"id"`
	Name     string  `bson:"name" json:"name"`
	Category string  `bson:"category" json:"category"`
	Price    float64 `bson:"price" json:"price"`
}

// CostSimulation is a priced snapshot of options plus one aggregate estimate
// for a specific route and date range. It is owned by the trip that requested
// it and replaced wholesale on each new simulation, never merged.
type CostSimulation struct {
	FlightOptions []FlightOption `bson:"flight_options" json:"flightOptions"` // ascending by price
	HotelOptions  []HotelOption  `bson:"hotel_options" json:"hotelOptions"`   // ascending by price per night
	Attractions   []Attraction   `bson:"attractions" json:"attractions"`      // at most 6, deduplicated by category
	TotalEstimate float64        `bson:"total_estimate" json:"totalEstimate"`
	Currency      string         `bson:"currency" json:"currency"`
	GeneratedAt   time.Time      `bson:"generated_at" json:"generatedAt"`
}

// CostSimulationRequest is the external request for a cost simulation.
type CostSimulationRequest struct {
	Origin             string   `json:"origin"`
	OriginCountry      string   `json:"originCountry"`
	Destination        string   `json:"destination"`
	DestinationCountry string   `json:"destinationCountry"`
	DepartureDate      string   `json:"departureDate"` // "YYYY-MM-DD"
	ReturnDate         string   `json:"returnDate"`    // "YYYY-MM-DD"
	Budget             float64  `json:"budget"`
	Interests          []string `json:"interests"`
}
