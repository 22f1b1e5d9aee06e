package service

import "github.com/nestandloomco/intentra/domain"

// Visibility is the set of dynamic sections shown for a stage.
type Visibility map[domain.Section]bool

func (v Visibility) Shows(s domain.Section) bool {
	return v[s]
}

// List returns the visible sections in page order.
func (v Visibility) List() []domain.Section {
	out := []domain.Section{}
	for _, s := range domain.Sections {
		if v[s] {
			out = append(out, s)
		}
	}
	return out
}

var stageSections = map[domain.Stage][]domain.Section{
	domain.StageForm:    nil,
	domain.StageResults: {domain.SectionResults},
	domain.StageContact: {domain.SectionResults, domain.SectionContact},
	domain.StageSuccess: {domain.SectionSuccess},
}

// ApplyStage returns the sections to display for a stage. Every call builds
// a fresh set; unknown stages show nothing beyond the vehicle form.
func ApplyStage(stage domain.Stage) Visibility {
	v := Visibility{}
	for _, s := range stageSections[stage] {
		v[s] = true
	}
	return v
}
