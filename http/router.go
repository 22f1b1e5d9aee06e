package http

import "net/http"

type Handlers struct {
	Interest *InterestHandler
	Sessions *SessionHandler
	Page     *PageHandler
	Limiter  *RateLimiter

	// TrustProxy keys the limiter on X-Forwarded-For instead of the peer.
	TrustProxy bool
}

// NewRouter wires every route. Submissions that trigger a calculation or
// send a lead are rate limited; reads and stage changes are not.
func NewRouter(h Handlers) http.Handler {
	limited := func(fn http.HandlerFunc) http.Handler {
		if h.Limiter == nil {
			return fn
		}
		return RateLimitMiddleware(h.Limiter, h.TrustProxy, fn)
	}

	mux := http.NewServeMux()

	mux.Handle("/interest", limited(h.Interest.Calculate))

	mux.HandleFunc("POST /sessions", h.Sessions.Create)
	mux.HandleFunc("GET /sessions/{id}", h.Sessions.Get)
	mux.Handle("POST /sessions/{id}/vehicle", limited(h.Sessions.SubmitVehicle))
	mux.HandleFunc("POST /sessions/{id}/learn-more", h.Sessions.LearnMore)
	mux.Handle("POST /sessions/{id}/contact", limited(h.Sessions.SubmitContact))
	mux.HandleFunc("POST /sessions/{id}/start-over", h.Sessions.StartOver)

	mux.HandleFunc("GET /{$}", h.Page.Show)
	mux.Handle("POST /widget/vehicle", limited(h.Page.SubmitVehicle))
	mux.HandleFunc("POST /widget/learn-more", h.Page.LearnMore)
	mux.Handle("POST /widget/contact", limited(h.Page.SubmitContact))
	mux.HandleFunc("POST /widget/start-over", h.Page.StartOver)

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})

	return LoggingMiddleware(mux)
}
