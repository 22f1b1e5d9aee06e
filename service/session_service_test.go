package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nestandloomco/intentra/domain"
	"github.com/nestandloomco/intentra/repository"
)

type fakeForwarder struct {
	leads []domain.Lead
	err   error
}

func (f *fakeForwarder) Forward(_ context.Context, lead domain.Lead) error {
	if f.err != nil {
		return f.err
	}
	f.leads = append(f.leads, lead)
	return nil
}

type recordingDelayer struct {
	waits []time.Duration
}

func (d *recordingDelayer) Wait(_ context.Context, dur time.Duration) error {
	d.waits = append(d.waits, dur)
	return nil
}

func newTestSessionService(leads LeadForwarder, delayer Delayer) *SessionService {
	return NewSessionService(
		repository.NewSessionRepositoryMemory(0),
		NewInterestService(testClock, repository.NewMemoryCache(0), false),
		leads,
		Pacing{Delayer: delayer, ResultsDelay: 800 * time.Millisecond, SuccessDelay: 100 * time.Millisecond},
		testClock,
	)
}

var camry = domain.VehicleDescription{
	Year:      testYear,
	Make:      "toyota",
	Model:     " Camry ",
	Mileage:   domain.MileageUnder15K,
	Condition: domain.ConditionExcellent,
}

func TestSessionService_FullFunnel(t *testing.T) {
	ctx := context.Background()
	leads := &fakeForwarder{}
	delayer := &recordingDelayer{}
	svc := newTestSessionService(leads, delayer)

	session, err := svc.Start(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.StageForm, session.Stage)
	assert.NotEmpty(t, session.ID)

	session, err = svc.SubmitVehicle(ctx, session.ID, camry)
	require.NoError(t, err)
	assert.Equal(t, domain.StageResults, session.Stage)
	require.NotNil(t, session.Vehicle)
	assert.Equal(t, "Toyota", session.Vehicle.Make)
	assert.Equal(t, "Camry", session.Vehicle.Model)
	require.NotNil(t, session.Result)
	assert.Equal(t, domain.InterestHigh, session.Result.Level)

	session, err = svc.LearnMore(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StageContact, session.Stage)

	session, err = svc.SubmitContact(ctx, session.ID, domain.Contact{Name: "Sam", Email: "sam@example.com"})
	require.NoError(t, err)
	assert.Equal(t, domain.StageSuccess, session.Stage)

	require.Len(t, leads.leads, 1)
	lead := leads.leads[0]
	assert.Equal(t, "2026 Toyota Camry | Under 15K miles | Excellent condition", lead.VehicleInfo)
	assert.Equal(t, domain.InterestHigh, lead.InterestLevel)
	assert.Equal(t, "Sam", lead.Name)

	assert.Equal(t, []time.Duration{800 * time.Millisecond, 100 * time.Millisecond}, delayer.waits)
}

func TestSessionService_StartOverClearsState(t *testing.T) {
	ctx := context.Background()
	svc := newTestSessionService(&fakeForwarder{}, NoDelay{})

	session, err := svc.Start(ctx)
	require.NoError(t, err)
	_, err = svc.SubmitVehicle(ctx, session.ID, camry)
	require.NoError(t, err)

	session, err = svc.StartOver(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StageForm, session.Stage)
	assert.Nil(t, session.Vehicle)
	assert.Nil(t, session.Result)
	assert.Nil(t, session.Lead)

	stored, err := svc.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.Vehicle)
	assert.Nil(t, stored.Result)

	old := domain.VehicleDescription{
		Year:      testYear - 15,
		Make:      "yugo",
		Mileage:   domain.MileageOver100K,
		Condition: domain.ConditionRough,
	}
	session, err = svc.SubmitVehicle(ctx, session.ID, old)
	require.NoError(t, err)
	assert.Equal(t, domain.InterestSteady, session.Result.Level)
	assert.Equal(t, 20, session.Result.Score)
	assert.Equal(t, "Yugo", session.Vehicle.Make)
}

func TestSessionService_SessionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	svc := newTestSessionService(&fakeForwarder{}, NoDelay{})

	a, err := svc.Start(ctx)
	require.NoError(t, err)
	b, err := svc.Start(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)

	_, err = svc.SubmitVehicle(ctx, a.ID, camry)
	require.NoError(t, err)

	other, err := svc.Get(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StageForm, other.Stage)
	assert.Nil(t, other.Result)
}

func TestSessionService_SubmitContactValidates(t *testing.T) {
	ctx := context.Background()
	leads := &fakeForwarder{}
	svc := newTestSessionService(leads, NoDelay{})

	session, err := svc.Start(ctx)
	require.NoError(t, err)

	_, err = svc.SubmitContact(ctx, session.ID, domain.Contact{Name: "Sam"})
	assert.ErrorIs(t, err, domain.ErrMissingEmail)

	_, err = svc.SubmitContact(ctx, session.ID, domain.Contact{Name: "Sam", Email: "sam"})
	assert.ErrorIs(t, err, domain.ErrInvalidEmail)

	assert.Empty(t, leads.leads)
}

func TestSessionService_ForwardFailureKeepsStage(t *testing.T) {
	ctx := context.Background()
	leads := &fakeForwarder{err: errors.New("boom")}
	svc := newTestSessionService(leads, NoDelay{})

	session, err := svc.Start(ctx)
	require.NoError(t, err)
	_, err = svc.SubmitVehicle(ctx, session.ID, camry)
	require.NoError(t, err)
	_, err = svc.LearnMore(ctx, session.ID)
	require.NoError(t, err)

	_, err = svc.SubmitContact(ctx, session.ID, domain.Contact{Name: "Sam", Email: "sam@example.com"})
	assert.Error(t, err)

	stored, err := svc.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StageContact, stored.Stage)
	assert.Nil(t, stored.Lead)
}

func TestSessionService_ContactWithoutVehicle(t *testing.T) {
	ctx := context.Background()
	leads := &fakeForwarder{}
	svc := newTestSessionService(leads, NoDelay{})

	session, err := svc.Start(ctx)
	require.NoError(t, err)

	session, err = svc.SubmitContact(ctx, session.ID, domain.Contact{Name: "Sam", Email: "sam@example.com"})
	require.NoError(t, err)
	assert.Equal(t, domain.StageSuccess, session.Stage)

	require.Len(t, leads.leads, 1)
	assert.Empty(t, leads.leads[0].VehicleInfo)
	assert.Empty(t, leads.leads[0].InterestLevel)
}

func TestSessionService_UnknownSession(t *testing.T) {
	svc := newTestSessionService(&fakeForwarder{}, NoDelay{})

	_, err := svc.LearnMore(context.Background(), "missing")
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
}

func TestSessionService_CancelledDelayAbortsSubmission(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	svc := NewSessionService(
		repository.NewSessionRepositoryMemory(0),
		NewInterestService(testClock, nil, false),
		&fakeForwarder{},
		Pacing{Delayer: TimerDelayer{}, ResultsDelay: time.Hour},
		testClock,
	)

	session, err := svc.Start(ctx)
	require.NoError(t, err)

	cancel()
	_, err = svc.SubmitVehicle(ctx, session.ID, camry)
	assert.ErrorIs(t, err, context.Canceled)

	stored, err := svc.Get(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StageForm, stored.Stage)
}
