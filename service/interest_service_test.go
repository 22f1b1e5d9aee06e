package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nestandloomco/intentra/domain"
	"github.com/nestandloomco/intentra/repository"
)

const testYear = 2026

var testClock = FixedClock{T: time.Date(testYear, time.June, 15, 12, 0, 0, 0, time.UTC)}

// neutralVehicle contributes nothing beyond the age adjustment.
func neutralVehicle(year int) domain.VehicleDescription {
	return domain.VehicleDescription{
		Year:      year,
		Make:      "Yugo",
		Mileage:   domain.Mileage50To75K,
		Condition: domain.ConditionFair,
	}
}

func TestComputeInterest_BestCaseClampsToMax(t *testing.T) {
	v := domain.VehicleDescription{
		Year:      testYear,
		Make:      "Toyota",
		Model:     "Camry",
		Mileage:   domain.MileageUnder15K,
		Condition: domain.ConditionExcellent,
	}

	result := ComputeInterest(v, testYear)

	assert.Equal(t, 100, result.Score)
	assert.Equal(t, domain.InterestHigh, result.Level)
	assert.Equal(t, "Strong Market Interest", result.Label)
	assert.Contains(t, result.Narrative, "your 2026 Toyota are seeing strong activity")
}

func TestComputeInterest_WorstCase(t *testing.T) {
	v := domain.VehicleDescription{
		Year:      testYear - 15,
		Make:      "Yugo",
		Mileage:   domain.MileageOver100K,
		Condition: domain.ConditionRough,
	}

	result := ComputeInterest(v, testYear)

	assert.Equal(t, 20, result.Score)
	assert.Equal(t, domain.InterestSteady, result.Level)
	assert.Equal(t, "Steady Market Interest", result.Label)
	assert.Contains(t, result.Narrative, "vehicles like your 2011 Yugo.")
}

func TestComputeInterest_AgeBrackets(t *testing.T) {
	tests := []struct {
		age  int
		want int
	}{
		{-1, 70},
		{0, 70},
		{3, 70},
		{4, 60},
		{6, 60},
		{7, 50},
		{10, 50},
		{11, 40},
		{25, 40},
	}

	for _, tt := range tests {
		result := ComputeInterest(neutralVehicle(testYear-tt.age), testYear)
		assert.Equal(t, tt.want, result.Score, "age %d", tt.age)
	}
}

func TestComputeInterest_MileageAndCondition(t *testing.T) {
	base := neutralVehicle(testYear - 8)

	mileage := map[domain.MileageBand]int{
		domain.MileageUnder15K: 65,
		domain.Mileage15To30K:  60,
		domain.Mileage30To50K:  55,
		domain.Mileage50To75K:  50,
		domain.Mileage75To100K: 45,
		domain.MileageOver100K: 40,
		"250000+":              50,
		"":                     50,
	}
	for band, want := range mileage {
		v := base
		v.Mileage = band
		assert.Equal(t, want, ComputeInterest(v, testYear).Score, "mileage %q", band)
	}

	conditions := map[domain.Condition]int{
		domain.ConditionExcellent: 65,
		domain.ConditionGood:      60,
		domain.ConditionFair:      50,
		domain.ConditionRough:     40,
		"mint":                    50,
	}
	for condition, want := range conditions {
		v := base
		v.Condition = condition
		assert.Equal(t, want, ComputeInterest(v, testYear).Score, "condition %q", condition)
	}
}

func TestComputeInterest_BrandTiers(t *testing.T) {
	tests := map[string]int{
		"Toyota":        55,
		"Chevrolet":     55,
		"Kia":           55,
		"Mercedes Benz": 53,
		"BMW":           53,
		"Tesla":         53,
		"Land Rover":    50,
		"Yugo":          50,
		"":              50,
	}

	for name, want := range tests {
		v := neutralVehicle(testYear - 8)
		v.Make = name
		assert.Equal(t, want, ComputeInterest(v, testYear).Score, "make %q", name)
	}
}

func TestBrandTiersAreDisjoint(t *testing.T) {
	for name := range popularMakes {
		assert.False(t, luxuryMakes[name], "%s is in both tiers", name)
	}
}

func TestComputeInterest_ScoreAlwaysInRange(t *testing.T) {
	bands := append([]domain.MileageBand{"unknown"}, domain.MileageBands...)
	conditions := append([]domain.Condition{"unknown"}, domain.Conditions...)
	makes := []string{"Toyota", "BMW", "Yugo", ""}

	for year := testYear - 40; year <= testYear+1; year++ {
		for _, band := range bands {
			for _, condition := range conditions {
				for _, name := range makes {
					v := domain.VehicleDescription{Year: year, Make: name, Mileage: band, Condition: condition}
					result := ComputeInterest(v, testYear)

					require.GreaterOrEqual(t, result.Score, MinScore)
					require.LessOrEqual(t, result.Score, MaxScore)
					require.Equal(t, ClassifyScore(result.Score), result.Level)
				}
			}
		}
	}
}

func TestClassifyScore(t *testing.T) {
	assert.Equal(t, domain.InterestHigh, ClassifyScore(100))
	assert.Equal(t, domain.InterestHigh, ClassifyScore(70))
	assert.Equal(t, domain.InterestModerate, ClassifyScore(69))
	assert.Equal(t, domain.InterestModerate, ClassifyScore(45))
	assert.Equal(t, domain.InterestSteady, ClassifyScore(44))
	assert.Equal(t, domain.InterestSteady, ClassifyScore(0))
}

func TestInterestService_CachesResults(t *testing.T) {
	cache := repository.NewMemoryCache(0)
	svc := NewInterestService(testClock, cache, false)
	v := neutralVehicle(testYear - 2)

	first, err := svc.Calculate(context.Background(), v)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.Len())

	second, err := svc.Calculate(context.Background(), v)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, ComputeInterest(v, testYear), second)
}

func TestInterestService_CacheKeysDoNotCollide(t *testing.T) {
	cache := repository.NewMemoryCache(0)
	svc := NewInterestService(testClock, cache, false)

	a := domain.VehicleDescription{Year: 2020, Mileage: domain.MileageUnder15K, Condition: "good:Honda"}
	b := domain.VehicleDescription{Year: 2020, Make: "Honda:", Mileage: domain.MileageUnder15K, Condition: domain.ConditionGood}
	require.NotEqual(t, cacheKey(a, testYear), cacheKey(b, testYear))

	_, err := svc.Calculate(context.Background(), a)
	require.NoError(t, err)

	result, err := svc.Calculate(context.Background(), b)
	require.NoError(t, err)
	assert.Equal(t, ComputeInterest(b, testYear), result)
	assert.Equal(t, 2, cache.Len())
}

func TestInterestService_IgnoresUnreadableCacheEntry(t *testing.T) {
	cache := repository.NewMemoryCache(0)
	v := neutralVehicle(testYear - 2)
	require.NoError(t, cache.Set(context.Background(), cacheKey(v, testYear), "not json"))

	svc := NewInterestService(testClock, cache, false)
	result, err := svc.Calculate(context.Background(), v)

	require.NoError(t, err)
	assert.Equal(t, ComputeInterest(v, testYear), result)
}

func TestInterestService_StrictRejectsUnknownInput(t *testing.T) {
	svc := NewInterestService(testClock, nil, true)

	v := neutralVehicle(testYear)
	v.Mileage = "lots"
	_, err := svc.Calculate(context.Background(), v)
	assert.ErrorIs(t, err, domain.ErrUnknownMileageBand)

	v = neutralVehicle(testYear)
	v.Condition = "mint"
	_, err = svc.Calculate(context.Background(), v)
	assert.ErrorIs(t, err, domain.ErrUnknownCondition)

	_, err = svc.Calculate(context.Background(), neutralVehicle(1950))
	assert.ErrorIs(t, err, domain.ErrYearOutOfRange)
}

func TestInterestService_LenientScoresUnknownInputAsZero(t *testing.T) {
	svc := NewInterestService(testClock, nil, false)

	v := neutralVehicle(testYear - 8)
	v.Mileage = "lots"
	v.Condition = "mint"

	result, err := svc.Calculate(context.Background(), v)

	require.NoError(t, err)
	assert.Equal(t, 50, result.Score)
	assert.Equal(t, domain.InterestModerate, result.Level)
}
