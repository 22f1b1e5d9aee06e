package http

import (
	"net/http"

	"github.com/nestandloomco/intentra/domain"
	"github.com/nestandloomco/intentra/service"
)

type SessionHandler struct {
	service *service.SessionService
}

func NewSessionHandler(service *service.SessionService) *SessionHandler {
	return &SessionHandler{service: service}
}

// SessionView is the JSON shape of a session.
type SessionView struct {
	ID             string                     `json:"id"`
	Stage          domain.Stage               `json:"stage"`
	Visible        []domain.Section           `json:"visible"`
	Vehicle        *domain.VehicleDescription `json:"vehicle,omitempty"`
	Result         *domain.InterestResult     `json:"result,omitempty"`
	Paragraphs     []string                   `json:"paragraphs,omitempty"`
	Dots           []bool                     `json:"dots,omitempty"`
	VehicleSummary string                     `json:"vehicle_summary,omitempty"`
}

func NewSessionView(s *domain.Session) SessionView {
	view := SessionView{
		ID:      s.ID,
		Stage:   s.Stage,
		Visible: service.ApplyStage(s.Stage).List(),
		Vehicle: s.Vehicle,
		Result:  s.Result,
	}
	if s.Vehicle != nil {
		view.VehicleSummary = service.VehicleSummary(*s.Vehicle)
	}
	if s.Result != nil {
		view.Paragraphs = service.Paragraphs(s.Result.Narrative)
		view.Dots = service.InterestDots(s.Result.Level)
	}
	return view
}

func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	session, err := h.service.Start(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, NewSessionView(session))
}

func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	session, err := h.service.Get(r.Context(), r.PathValue("id"))
	h.respond(w, session, err)
}

func (h *SessionHandler) SubmitVehicle(w http.ResponseWriter, r *http.Request) {
	var input domain.VehicleDescription
	if !decodeJSON(w, r, &input) {
		return
	}
	session, err := h.service.SubmitVehicle(r.Context(), r.PathValue("id"), input)
	h.respond(w, session, err)
}

func (h *SessionHandler) LearnMore(w http.ResponseWriter, r *http.Request) {
	session, err := h.service.LearnMore(r.Context(), r.PathValue("id"))
	h.respond(w, session, err)
}

func (h *SessionHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var input domain.Contact
	if !decodeJSON(w, r, &input) {
		return
	}
	session, err := h.service.SubmitContact(r.Context(), r.PathValue("id"), input)
	h.respond(w, session, err)
}

func (h *SessionHandler) StartOver(w http.ResponseWriter, r *http.Request) {
	session, err := h.service.StartOver(r.Context(), r.PathValue("id"))
	h.respond(w, session, err)
}

func (h *SessionHandler) respond(w http.ResponseWriter, session *domain.Session, err error) {
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, NewSessionView(session))
}
