package http

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/nestandloomco/intentra/domain"
	"github.com/nestandloomco/intentra/repository"
	"github.com/nestandloomco/intentra/service"
)

var testClock = service.FixedClock{T: time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)}

type fakeForwarder struct {
	mu    sync.Mutex
	leads []domain.Lead
	err   error
}

func (f *fakeForwarder) Forward(_ context.Context, lead domain.Lead) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.leads = append(f.leads, lead)
	return nil
}

type testApp struct {
	router   http.Handler
	interest *service.InterestService
	sessions *service.SessionService
	leads    *fakeForwarder
}

func newTestApp(strict bool, limiter *RateLimiter) *testApp {
	leads := &fakeForwarder{}
	interest := service.NewInterestService(testClock, repository.NewMemoryCache(0), strict)
	sessions := service.NewSessionService(
		repository.NewSessionRepositoryMemory(0),
		interest,
		leads,
		service.Pacing{Delayer: service.NoDelay{}},
		testClock,
	)

	router := NewRouter(Handlers{
		Interest: NewInterestHandler(interest),
		Sessions: NewSessionHandler(sessions),
		Page:     NewPageHandler(sessions, interest, false),
		Limiter:  limiter,
	})

	return &testApp{router: router, interest: interest, sessions: sessions, leads: leads}
}
