package http

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/nestandloomco/intentra/domain"
	"github.com/nestandloomco/intentra/repository"
	"github.com/nestandloomco/intentra/service"
)

const sessionCookieName = "intentra_session"

//go:embed templates/widget.html
var templateFS embed.FS

var widgetTemplate = template.Must(
	template.New("widget.html").Funcs(template.FuncMap{
		"makeLabel":    service.FormatMakeName,
		"mileageLabel": service.MileageLabel,
		"capitalize":   service.CapitalizeFirst,
	}).ParseFS(templateFS, "templates/widget.html"),
)

type pageData struct {
	Session    *domain.Session
	Visible    service.Visibility
	Years      []int
	Makes      []string
	Mileages   []domain.MileageBand
	Conditions []domain.Condition
	Paragraphs []string
	Dots       []bool
	Error      string
}

// PageHandler serves the widget as a server-rendered page, one session per
// browser cookie.
type PageHandler struct {
	sessions *service.SessionService
	interest *service.InterestService
	secure   bool
}

func NewPageHandler(sessions *service.SessionService, interest *service.InterestService, secureCookies bool) *PageHandler {
	return &PageHandler{sessions: sessions, interest: interest, secure: secureCookies}
}

func (h *PageHandler) Show(w http.ResponseWriter, r *http.Request) {
	session, err := h.session(w, r)
	if err != nil {
		writeError(w, err)
		return
	}
	h.render(w, http.StatusOK, session, "")
}

func (h *PageHandler) SubmitVehicle(w http.ResponseWriter, r *http.Request) {
	session, err := h.session(w, r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	year, err := strconv.Atoi(r.PostForm.Get("year"))
	if err != nil {
		h.render(w, http.StatusBadRequest, session, "Please select a model year.")
		return
	}
	input := domain.VehicleDescription{
		Year:      year,
		Make:      r.PostForm.Get("make"),
		Model:     r.PostForm.Get("model"),
		Mileage:   domain.MileageBand(r.PostForm.Get("mileage")),
		Condition: domain.Condition(r.PostForm.Get("condition")),
	}

	if _, err := h.sessions.SubmitVehicle(r.Context(), session.ID, input); err != nil {
		h.fail(w, session, err)
		return
	}
	http.Redirect(w, r, "/#results-section", http.StatusSeeOther)
}

func (h *PageHandler) LearnMore(w http.ResponseWriter, r *http.Request) {
	session, err := h.session(w, r)
	if err != nil {
		writeError(w, err)
		return
	}
	if _, err := h.sessions.LearnMore(r.Context(), session.ID); err != nil {
		h.fail(w, session, err)
		return
	}
	http.Redirect(w, r, "/#contact-section", http.StatusSeeOther)
}

func (h *PageHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	session, err := h.session(w, r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	contact := domain.Contact{
		Name:    r.PostForm.Get("name"),
		Email:   r.PostForm.Get("email"),
		Phone:   r.PostForm.Get("phone"),
		Message: r.PostForm.Get("message"),
	}
	if _, err := h.sessions.SubmitContact(r.Context(), session.ID, contact); err != nil {
		h.fail(w, session, err)
		return
	}
	http.Redirect(w, r, "/#success-section", http.StatusSeeOther)
}

func (h *PageHandler) StartOver(w http.ResponseWriter, r *http.Request) {
	session, err := h.session(w, r)
	if err != nil {
		writeError(w, err)
		return
	}
	if _, err := h.sessions.StartOver(r.Context(), session.ID); err != nil {
		h.fail(w, session, err)
		return
	}
	http.Redirect(w, r, "/#vehicle-form-section", http.StatusSeeOther)
}

// session loads the visitor's session from the cookie, starting a new one
// when there is none or it has expired.
func (h *PageHandler) session(w http.ResponseWriter, r *http.Request) (*domain.Session, error) {
	if c, err := r.Cookie(sessionCookieName); err == nil {
		session, err := h.sessions.Get(r.Context(), c.Value)
		if err == nil {
			return session, nil
		}
		if !errors.Is(err, repository.ErrSessionNotFound) {
			return nil, err
		}
	}

	session, err := h.sessions.Start(r.Context())
	if err != nil {
		return nil, err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    session.ID,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return session, nil
}

// fail re-renders the page with a message for input problems and falls
// back to the JSON error otherwise.
func (h *PageHandler) fail(w http.ResponseWriter, session *domain.Session, err error) {
	status := statusFor(err)
	if status != http.StatusBadRequest && status != http.StatusBadGateway {
		writeError(w, err)
		return
	}
	msg := sentence(err.Error())
	if status == http.StatusBadGateway {
		msg = "We couldn't send your details right now. Please try again."
	}
	h.render(w, status, session, msg)
}

func (h *PageHandler) render(w http.ResponseWriter, status int, session *domain.Session, errMsg string) {
	data := pageData{
		Session:    session,
		Visible:    service.ApplyStage(session.Stage),
		Years:      service.YearOptions(h.interest.CurrentYear()),
		Makes:      service.MakeOptions,
		Mileages:   domain.MileageBands,
		Conditions: domain.Conditions,
		Error:      errMsg,
	}
	if session.Result != nil {
		data.Paragraphs = service.Paragraphs(session.Result.Narrative)
		data.Dots = service.InterestDots(session.Result.Level)
	}

	var buf bytes.Buffer
	if err := widgetTemplate.Execute(&buf, data); err != nil {
		log.Error().Err(err).Msg("template error")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		log.Warn().Err(err).Msg("error writing page")
	}
}

// sentence turns an error string into something fit to show a visitor.
func sentence(msg string) string {
	msg = service.CapitalizeFirst(strings.TrimSpace(msg))
	if msg != "" && !strings.HasSuffix(msg, ".") {
		msg += "."
	}
	return msg
}
