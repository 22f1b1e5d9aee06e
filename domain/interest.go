package domain

import "encoding/json"

type InterestLevel string

const (
	InterestSteady   InterestLevel = "steady"
	InterestModerate InterestLevel = "moderate"
	InterestHigh     InterestLevel = "high"
)

// InterestLevels is ordered from lowest to highest.
var InterestLevels = []InterestLevel{InterestSteady, InterestModerate, InterestHigh}

// Rank returns 1..3 for known levels and 0 otherwise.
func (l InterestLevel) Rank() int {
	for i, known := range InterestLevels {
		if l == known {
			return i + 1
		}
	}
	return 0
}

// InterestResult is the outcome of a market interest check. Score stays on
// the server: visitors only ever see the level, label and narrative.
type InterestResult struct {
	Score     int           `json:"-"`
	Level     InterestLevel `json:"level"`
	Label     string        `json:"label"`
	Narrative string        `json:"narrative"`
}

// cachedInterest mirrors InterestResult with the score included, for stores
// that need the full value back.
type cachedInterest struct {
	Score     int           `json:"score"`
	Level     InterestLevel `json:"level"`
	Label     string        `json:"label"`
	Narrative string        `json:"narrative"`
}

func (r InterestResult) MarshalBinary() ([]byte, error) {
	return json.Marshal(cachedInterest(r))
}

func (r *InterestResult) UnmarshalBinary(data []byte) error {
	var c cachedInterest
	if err := json.Unmarshal(data, &c); err != nil {
		return err
	}
	*r = InterestResult(c)
	return nil
}
