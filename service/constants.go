package service

import "github.com/nestandloomco/intentra/domain"

const (
	BaseScore = 50
	MinScore  = 0
	MaxScore  = 100

	HighInterestThreshold     = 70
	ModerateInterestThreshold = 45

	// Vehicle age brackets, upper bound inclusive.
	RecentVehicleMaxAge  = 3
	NewerVehicleMaxAge   = 6
	AverageVehicleMaxAge = 10

	RecentVehicleBonus  = 20
	NewerVehicleBonus   = 10
	AverageVehicleBonus = 0
	OlderVehiclePenalty = -10

	PopularMakeBonus = 5
	LuxuryMakeBonus  = 3

	// Number of dots in the interest meter.
	InterestDotCount = 5
)

var mileageAdjustments = map[domain.MileageBand]int{
	domain.MileageUnder15K: 15,
	domain.Mileage15To30K:  10,
	domain.Mileage30To50K:  5,
	domain.Mileage50To75K:  0,
	domain.Mileage75To100K: -5,
	domain.MileageOver100K: -10,
}

var conditionAdjustments = map[domain.Condition]int{
	domain.ConditionExcellent: 15,
	domain.ConditionGood:      10,
	domain.ConditionFair:      0,
	domain.ConditionRough:     -10,
}

// Normalized make names. The two sets never overlap.
var popularMakes = map[string]bool{
	"toyota":    true,
	"honda":     true,
	"ford":      true,
	"chevrolet": true,
	"subaru":    true,
	"mazda":     true,
	"hyundai":   true,
	"kia":       true,
}

var luxuryMakes = map[string]bool{
	"bmw":           true,
	"mercedes-benz": true,
	"audi":          true,
	"lexus":         true,
	"porsche":       true,
	"tesla":         true,
}

var interestLabels = map[domain.InterestLevel]string{
	domain.InterestSteady:   "Steady Market Interest",
	domain.InterestModerate: "Moderate Market Interest",
	domain.InterestHigh:     "Strong Market Interest",
}

var mileageLabels = map[domain.MileageBand]string{
	domain.MileageUnder15K: "Under 15K miles",
	domain.Mileage15To30K:  "15K-30K miles",
	domain.Mileage30To50K:  "30K-50K miles",
	domain.Mileage50To75K:  "50K-75K miles",
	domain.Mileage75To100K: "75K-100K miles",
	domain.MileageOver100K: "Over 100K miles",
}
