// Package logistics projects the cost and profit of sourcing a crop from a
// processing facility and ranks facilities by projected profit.
package logistics

import (
	"cmp"
	"math"
	"slices"
	"strings"

	"kisan/internal/logistics/models"
)

const (
	// MarkupPercent is the fixed retail markup over the purchase price.
	MarkupPercent = 15

	HandlingPerQuintal      = 50
	StoragePerQuintalPerDay = 30

	StorageKmPerDay = 100
	MinStorageDays  = 3
	MaxStorageDays  = 5

	DeliveryKmPerDay = 150
	MinDeliveryDays  = 1
	MaxDeliveryDays  = 7

	// MaxProfitMargin caps the reported margin, in percent.
	MaxProfitMargin = 20.0

	// DefaultRadiusKm bounds which processors are ranked.
	DefaultRadiusKm = 300.0
)

// Calculator computes projections. The zero value is not usable; use
// NewCalculator.
type Calculator struct {
	distance DistanceFunc
	radiusKm float64
}

type CalculatorOption func(*Calculator)

// WithDistance replaces the great-circle distance, e.g. with a road-distance
// approximation.
func WithDistance(fn DistanceFunc) CalculatorOption {
	return func(c *Calculator) {
		if fn != nil {
			c.distance = fn
		}
	}
}

// WithRadius sets the ranking radius in kilometres.
func WithRadius(km float64) CalculatorOption {
	return func(c *Calculator) {
		if km > 0 {
			c.radiusKm = km
		}
	}
}

func NewCalculator(opts ...CalculatorOption) *Calculator {
	c := &Calculator{
		distance: Haversine,
		radiusKm: DefaultRadiusKm,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var defaultCalculator = NewCalculator()

// Project uses the default calculator.
func Project(p models.Processor, crop string, quantity float64, reference models.Coordinate, vehicle models.Vehicle) models.Projection {
	return defaultCalculator.Project(p, crop, quantity, reference, vehicle)
}

// Rank uses the default calculator.
func Rank(processors []models.Processor, crop string, quantity float64, reference models.Coordinate, vehicle models.Vehicle) []models.Projection {
	return defaultCalculator.Rank(processors, crop, quantity, reference, vehicle)
}

// RadiusKm returns the ranking radius.
func (c *Calculator) RadiusKm() float64 {
	return c.radiusKm
}

// Distance returns the distance from reference to p.
func (c *Calculator) Distance(p models.Processor, reference models.Coordinate) float64 {
	return c.distance(reference, p.Location)
}

// Project computes the projection for sourcing quantity of crop from p,
// measured from reference.
func (c *Calculator) Project(p models.Processor, crop string, quantity float64, reference models.Coordinate, vehicle models.Vehicle) models.Projection {
	return c.ProjectAt(p, crop, quantity, c.Distance(p, reference), vehicle)
}

// ProjectAt computes the projection for a known distance in kilometres.
// A non-positive or non-finite quantity yields a zero projection with one
// delivery day. The crop is echoed trimmed and lower-cased.
func (c *Calculator) ProjectAt(p models.Processor, crop string, quantity, distanceKm float64, vehicle models.Vehicle) models.Projection {
	if vehicle == "" {
		vehicle = models.VehicleTruck
	}
	proj := models.Projection{
		ProcessorID:           p.ID,
		ProcessorName:         p.Name,
		Crop:                  strings.ToLower(strings.TrimSpace(crop)),
		Quantity:              quantity,
		Vehicle:               vehicle,
		DistanceKm:            roundTo(distanceKm, 1),
		EstimatedDeliveryDays: MinDeliveryDays,
	}
	if math.IsNaN(quantity) || math.IsInf(quantity, 0) {
		proj.Quantity = 0
		return proj
	}
	if quantity <= 0 {
		return proj
	}

	purchase := p.Price.Midpoint()
	selling := int(math.Round(float64(purchase*(100+MarkupPercent)) / 100))

	storageDays := clampInt(int(math.Ceil(distanceKm/StorageKmPerDay)), MinStorageDays, MaxStorageDays)
	costs := models.Costs{
		Transport:   rupees(distanceKm * quantity * vehicle.Rate() * 2),
		Handling:    rupees(quantity * HandlingPerQuintal),
		Storage:     rupees(quantity * StoragePerQuintalPerDay * float64(storageDays)),
		StorageDays: storageDays,
	}

	total := rupees(quantity*float64(purchase)) + costs.Total()
	revenue := rupees(quantity * float64(selling))
	profit := revenue - total

	proj.PurchasePrice = purchase
	proj.SellingPrice = selling
	proj.Costs = costs
	proj.LogisticsCost = costs.Total()
	proj.TotalCost = total
	proj.Revenue = revenue
	if profit < 0 {
		proj.Unprofitable = true
		profit = 0
	}
	proj.Profit = profit
	if revenue > 0 {
		margin := float64(profit) / float64(revenue) * 100
		proj.ProfitMargin = roundTo(math.Min(math.Max(margin, 0), MaxProfitMargin), 2)
	}
	proj.EstimatedDeliveryDays = clampInt(int(math.Ceil(distanceKm/DeliveryKmPerDay)), MinDeliveryDays, MaxDeliveryDays)
	return proj
}

// Rank projects every processor within the radius that handles crop and
// orders them by profit, highest first. Ties keep catalog order.
func (c *Calculator) Rank(processors []models.Processor, crop string, quantity float64, reference models.Coordinate, vehicle models.Vehicle) []models.Projection {
	out := make([]models.Projection, 0, len(processors))
	for _, p := range processors {
		if !p.Processes(crop) {
			continue
		}
		d := c.Distance(p, reference)
		if d > c.radiusKm {
			continue
		}
		out = append(out, c.ProjectAt(p, crop, quantity, d, vehicle))
	}
	slices.SortStableFunc(out, func(a, b models.Projection) int {
		return cmp.Compare(b.Profit, a.Profit)
	})
	return out
}

func rupees(v float64) int {
	return int(math.Round(v))
}

func roundTo(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}

func clampInt(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
