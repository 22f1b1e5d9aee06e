package domain

import "time"

// Session holds one visitor's pass through the funnel. It lives until the
// visitor starts over or the session expires.
type Session struct {
	ID        string              `json:"id"`
	Stage     Stage               `json:"stage"`
	Vehicle   *VehicleDescription `json:"vehicle,omitempty"`
	Result    *InterestResult     `json:"result,omitempty"`
	Lead      *Lead               `json:"lead,omitempty"`
	UpdatedAt time.Time           `json:"updated_at"`
}

func NewSession(id string, now time.Time) *Session {
	return &Session{ID: id, Stage: StageForm, UpdatedAt: now}
}

// Reset drops everything collected so far and returns to the form.
func (s *Session) Reset() {
	s.Vehicle = nil
	s.Result = nil
	s.Lead = nil
	s.Stage = StageForm
}

func (s *Session) Clone() *Session {
	c := *s
	if s.Vehicle != nil {
		v := *s.Vehicle
		c.Vehicle = &v
	}
	if s.Result != nil {
		r := *s.Result
		c.Result = &r
	}
	if s.Lead != nil {
		l := *s.Lead
		c.Lead = &l
	}
	return &c
}
