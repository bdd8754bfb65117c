// Package models holds the processor catalog and projection value types.
// Prices are rupees per quintal; quantities are quintals.
package models

import (
	"fmt"
	"math"
	"strings"

	dErrors "kisan/pkg/domain-errors"
)

// Coordinate is a WGS84 point in decimal degrees.
type Coordinate struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lon float64 `json:"lon" yaml:"lon"`
}

func (c Coordinate) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lon >= -180 && c.Lon <= 180
}

// PriceRange is the declared purchase band of a processor.
type PriceRange struct {
	Min int `json:"min" yaml:"min"`
	Max int `json:"max" yaml:"max"`
}

// Midpoint returns the band's center rounded to the nearest rupee.
func (p PriceRange) Midpoint() int {
	return int(math.Round(float64(p.Min+p.Max) / 2))
}

// Processor is a processing facility that buys crops.
type Processor struct {
	ID       string     `json:"id" yaml:"id"`
	Name     string     `json:"name" yaml:"name"`
	District string     `json:"district" yaml:"district"`
	Location Coordinate `json:"location" yaml:"location"`
	Crops    []string   `json:"crops" yaml:"crops"`
	Price    PriceRange `json:"price_range" yaml:"price_range"`
	Rating   float64    `json:"rating" yaml:"rating"`
}

// Processes reports whether the facility handles crop, ignoring case.
func (p Processor) Processes(crop string) bool {
	crop = strings.TrimSpace(crop)
	for _, c := range p.Crops {
		if strings.EqualFold(c, crop) {
			return true
		}
	}
	return false
}

// Vehicle selects the transport rate.
type Vehicle string

const (
	VehicleTruck Vehicle = "truck"
	VehicleSmall Vehicle = "small"
)

// Rupees per km per quintal, one way.
const (
	TruckRate = 2.5
	SmallRate = 3.0
)

// ParseVehicle maps user input to a Vehicle. Empty input means a truck.
func ParseVehicle(s string) (Vehicle, error) {
	switch v := Vehicle(strings.ToLower(strings.TrimSpace(s))); v {
	case "", VehicleTruck:
		return VehicleTruck, nil
	case VehicleSmall:
		return VehicleSmall, nil
	default:
		return "", dErrors.New(dErrors.CodeValidation, fmt.Sprintf("unknown vehicle %q", s))
	}
}

// Rate returns the per-km per-quintal transport rate.
func (v Vehicle) Rate() float64 {
	if v == VehicleSmall {
		return SmallRate
	}
	return TruckRate
}

// Costs itemizes the logistics spend of a projection in rupees.
type Costs struct {
	Transport int `json:"transport"`
	Handling  int `json:"handling"`
	Storage   int `json:"storage"`
	// StorageDays is the billed storage period.
	StorageDays int `json:"storage_days"`
}

// Total is the logistics cost, excluding the purchase of the crop.
func (c Costs) Total() int {
	return c.Transport + c.Handling + c.Storage
}

// Projection is the expected economics of sourcing a crop from a processor.
type Projection struct {
	ProcessorID   string  `json:"processor_id"`
	ProcessorName string  `json:"processor_name"`
	Crop          string  `json:"crop"`
	Quantity      float64 `json:"quantity"`
	Vehicle       Vehicle `json:"vehicle"`
	DistanceKm    float64 `json:"distance_km"`
	PurchasePrice int     `json:"purchase_price"`
	SellingPrice  int     `json:"selling_price"`
	Costs         Costs   `json:"costs"`
	LogisticsCost int     `json:"logistics_cost"`
	TotalCost     int     `json:"total_cost"`
	Revenue       int     `json:"revenue"`
	// Profit is floored at zero; Unprofitable marks projections where the
	// floor hid a loss.
	Profit       int     `json:"profit"`
	Unprofitable bool    `json:"unprofitable"`
	ProfitMargin float64 `json:"profit_margin"`

	EstimatedDeliveryDays int `json:"estimated_delivery_days"`
}
