package service

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/nestandloomco/intentra/domain"
	"github.com/nestandloomco/intentra/repository"
)

// ComputeInterest scores a vehicle against the given current year. It never
// fails: unknown mileage bands, conditions and makes add nothing.
func ComputeInterest(v domain.VehicleDescription, currentYear int) domain.InterestResult {
	score := BaseScore
	score += ageAdjustment(currentYear - v.Year)
	score += mileageAdjustments[v.Mileage]
	score += conditionAdjustments[v.Condition]
	score += makeAdjustment(v.Make)
	score = clamp(score, MinScore, MaxScore)

	level := ClassifyScore(score)
	return domain.InterestResult{
		Score:     score,
		Level:     level,
		Label:     interestLabels[level],
		Narrative: Narrative(level, v.Year, v.Make),
	}
}

// ClassifyScore maps a score onto an interest level.
func ClassifyScore(score int) domain.InterestLevel {
	switch {
	case score >= HighInterestThreshold:
		return domain.InterestHigh
	case score >= ModerateInterestThreshold:
		return domain.InterestModerate
	default:
		return domain.InterestSteady
	}
}

func ageAdjustment(age int) int {
	switch {
	case age <= RecentVehicleMaxAge:
		return RecentVehicleBonus
	case age <= NewerVehicleMaxAge:
		return NewerVehicleBonus
	case age <= AverageVehicleMaxAge:
		return AverageVehicleBonus
	default:
		return OlderVehiclePenalty
	}
}

func makeAdjustment(vehicleMake string) int {
	key := NormalizeMake(vehicleMake)
	if popularMakes[key] {
		return PopularMakeBonus
	}
	if luxuryMakes[key] {
		return LuxuryMakeBonus
	}
	return 0
}

func clamp(v, lo, hi int) int {
	return max(lo, min(hi, v))
}

type InterestService struct {
	clock  Clock
	cache  repository.CacheRepository
	strict bool
}

// NewInterestService creates an InterestService. In strict mode vehicles
// with unknown keys or an out-of-range year are rejected instead of scored.
func NewInterestService(clock Clock, cache repository.CacheRepository, strict bool) *InterestService {
	return &InterestService{clock: clock, cache: cache, strict: strict}
}

func (s *InterestService) CurrentYear() int {
	return s.clock.Now().Year()
}

// Calculate scores the vehicle for the current year, going through the
// cache when one is configured.
func (s *InterestService) Calculate(
	ctx context.Context,
	v domain.VehicleDescription,
) (domain.InterestResult, error) {

	year := s.CurrentYear()

	if err := v.Validate(year); err != nil {
		if s.strict {
			return domain.InterestResult{}, err
		}
		log.Warn().Err(err).Str("make", v.Make).Msg("scoring vehicle with unrecognized input")
	}

	key := cacheKey(v, year)
	if s.cache != nil {
		if raw, ok := s.cache.Get(ctx, key); ok {
			var cached domain.InterestResult
			if err := cached.UnmarshalBinary([]byte(raw)); err == nil {
				return cached, nil
			}
			log.Warn().Str("key", key).Msg("discarding unreadable cached interest result")
		}
	}

	result := ComputeInterest(v, year)
	log.Debug().
		Int("score", result.Score).
		Str("level", string(result.Level)).
		Msg("market interest computed")

	if s.cache != nil {
		raw, err := result.MarshalBinary()
		if err == nil {
			err = s.cache.Set(ctx, key, string(raw))
		}
		// A failed cache write does not fail the calculation.
		if err != nil {
			log.Warn().Err(err).Str("key", key).Msg("failed to cache interest result")
		}
	}

	return result, nil
}

// cacheKey encodes the vehicle as JSON so free-form fields cannot run into
// each other.
func cacheKey(v domain.VehicleDescription, currentYear int) string {
	raw, _ := json.Marshal(struct {
		CurrentYear int `json:"current_year"`
		domain.VehicleDescription
	}{currentYear, v})
	return "interest:" + string(raw)
}
