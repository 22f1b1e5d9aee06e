package service

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/nestandloomco/intentra/domain"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Brands whose names are not plain title case.
var makeNameFixes = strings.NewReplacer(
	"Bmw", "BMW",
	"Gmc", "GMC",
	"Mini", "MINI",
)

// FormatMakeName turns a make value such as "mercedes-benz" into its display
// form, "Mercedes Benz".
func FormatMakeName(value string) string {
	words := strings.Split(value, "-")
	for i, w := range words {
		words[i] = CapitalizeFirst(w)
	}
	return makeNameFixes.Replace(strings.Join(words, " "))
}

// NormalizeMake is the inverse of FormatMakeName, used for brand lookups.
func NormalizeMake(name string) string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(name), "-")
}

func MileageLabel(band domain.MileageBand) string {
	if label, ok := mileageLabels[band]; ok {
		return label
	}
	return string(band)
}

func CapitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// VehicleSummary is the one-line description sent with a lead.
func VehicleSummary(v domain.VehicleDescription) string {
	return fmt.Sprintf("%d %s %s | %s | %s condition",
		v.Year, v.Make, v.Model,
		MileageLabel(v.Mileage),
		CapitalizeFirst(string(v.Condition)),
	)
}

// InterestDots returns which of the meter's dots are lit for a level.
func InterestDots(level domain.InterestLevel) []bool {
	active := int(math.Ceil(float64(level.Rank()) / float64(len(domain.InterestLevels)) * InterestDotCount))
	dots := make([]bool, InterestDotCount)
	for i := range dots {
		dots[i] = i < active
	}
	return dots
}

// YearOptions lists the selectable model years, newest first.
func YearOptions(currentYear int) []int {
	years := make([]int, 0, domain.MaxVehicleAge+domain.MaxYearsAhead+1)
	for y := currentYear + domain.MaxYearsAhead; y >= currentYear-domain.MaxVehicleAge; y-- {
		years = append(years, y)
	}
	return years
}

// MakeOptions are the make values offered on the vehicle form, in display
// order. FormatMakeName gives their labels.
var MakeOptions = []string{
	"acura", "audi", "bmw", "buick", "cadillac", "chevrolet", "chrysler",
	"dodge", "ford", "genesis", "gmc", "honda", "hyundai", "infiniti",
	"jeep", "kia", "land-rover", "lexus", "lincoln", "mazda",
	"mercedes-benz", "mini", "mitsubishi", "nissan", "porsche", "ram",
	"subaru", "tesla", "toyota", "volkswagen", "volvo", "other",
}
