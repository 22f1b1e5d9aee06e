package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/nestandloomco/intentra/domain"
	"github.com/nestandloomco/intentra/repository"
)

// Pacing holds the cosmetic pauses of the funnel.
type Pacing struct {
	Delayer      Delayer
	ResultsDelay time.Duration
	SuccessDelay time.Duration
}

// SessionService drives a visitor through form, results, contact and
// success, keeping what they entered on their session.
type SessionService struct {
	repo     repository.SessionRepository
	interest *InterestService
	leads    LeadForwarder
	pacing   Pacing
	clock    Clock
}

func NewSessionService(
	repo repository.SessionRepository,
	interest *InterestService,
	leads LeadForwarder,
	pacing Pacing,
	clock Clock,
) *SessionService {
	if pacing.Delayer == nil {
		pacing.Delayer = NoDelay{}
	}
	return &SessionService{
		repo:     repo,
		interest: interest,
		leads:    leads,
		pacing:   pacing,
		clock:    clock,
	}
}

func (s *SessionService) Start(ctx context.Context) (*domain.Session, error) {
	session := domain.NewSession(uuid.NewString(), s.clock.Now())
	if err := s.repo.Save(ctx, session); err != nil {
		return nil, err
	}
	log.Debug().Str("session", session.ID).Msg("session started")
	return session, nil
}

func (s *SessionService) Get(ctx context.Context, id string) (*domain.Session, error) {
	return s.repo.Get(ctx, id)
}

// SubmitVehicle scores the vehicle and moves the session to results.
func (s *SessionService) SubmitVehicle(
	ctx context.Context,
	id string,
	v domain.VehicleDescription,
) (*domain.Session, error) {

	session, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	v.Make = FormatMakeName(strings.TrimSpace(v.Make))
	v.Model = strings.TrimSpace(v.Model)

	if err := s.pacing.Delayer.Wait(ctx, s.pacing.ResultsDelay); err != nil {
		return nil, err
	}

	result, err := s.interest.Calculate(ctx, v)
	if err != nil {
		return nil, err
	}

	session.Vehicle = &v
	session.Result = &result
	session.Lead = nil
	session.Stage = domain.StageResults

	log.Info().
		Str("session", id).
		Str("level", string(result.Level)).
		Msg("vehicle submitted")

	return s.save(ctx, session)
}

// LearnMore reveals the contact form below the results.
func (s *SessionService) LearnMore(ctx context.Context, id string) (*domain.Session, error) {
	session, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	session.Stage = domain.StageContact
	return s.save(ctx, session)
}

// SubmitContact forwards the lead with the vehicle summary and interest
// level attached, then shows the success message. The stage only advances
// once the lead has been accepted.
func (s *SessionService) SubmitContact(
	ctx context.Context,
	id string,
	contact domain.Contact,
) (*domain.Session, error) {

	if err := contact.Validate(); err != nil {
		return nil, err
	}

	session, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	lead := BuildLead(session, contact)
	if err := s.leads.Forward(ctx, lead); err != nil {
		log.Error().Err(err).Str("session", id).Msg("failed to forward lead")
		return nil, err
	}

	if err := s.pacing.Delayer.Wait(ctx, s.pacing.SuccessDelay); err != nil {
		return nil, err
	}

	session.Lead = &lead
	session.Stage = domain.StageSuccess
	return s.save(ctx, session)
}

// StartOver forgets the vehicle, result and lead and returns to the form.
func (s *SessionService) StartOver(ctx context.Context, id string) (*domain.Session, error) {
	session, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	session.Reset()
	log.Debug().Str("session", id).Msg("session reset")
	return s.save(ctx, session)
}

func (s *SessionService) save(ctx context.Context, session *domain.Session) (*domain.Session, error) {
	session.UpdatedAt = s.clock.Now()
	if err := s.repo.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// BuildLead fills the hidden fields from whatever the session holds. A
// session without a vehicle yields empty hidden fields.
func BuildLead(session *domain.Session, contact domain.Contact) domain.Lead {
	lead := domain.Lead{Contact: contact}
	lead.Name = strings.TrimSpace(lead.Name)
	lead.Email = strings.TrimSpace(lead.Email)
	if session.Vehicle != nil {
		lead.VehicleInfo = VehicleSummary(*session.Vehicle)
	}
	if session.Result != nil {
		lead.InterestLevel = session.Result.Level
	}
	return lead
}
