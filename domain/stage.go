package domain

import "fmt"

// Stage is a step of the funnel: form, results, contact, success.
type Stage string

const (
	StageForm    Stage = "form"
	StageResults Stage = "results"
	StageContact Stage = "contact"
	StageSuccess Stage = "success"
)

var Stages = []Stage{StageForm, StageResults, StageContact, StageSuccess}

func ParseStage(s string) (Stage, error) {
	for _, known := range Stages {
		if Stage(s) == known {
			return known, nil
		}
	}
	return "", fmt.Errorf("unknown stage %q", s)
}

// Section is a part of the page that can be shown or hidden. The vehicle
// form is not a Section: it is always on screen.
type Section string

const (
	SectionResults Section = "results"
	SectionContact Section = "contact"
	SectionSuccess Section = "success"
)

var Sections = []Section{SectionResults, SectionContact, SectionSuccess}
