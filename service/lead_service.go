package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"

	"github.com/nestandloomco/intentra/domain"
)

var ErrFormBackend = errors.New("form backend rejected lead")

// LeadForwarder hands a finished lead to whoever stores it.
type LeadForwarder interface {
	Forward(ctx context.Context, lead domain.Lead) error
}

// LeadService posts leads to a hosted form backend the same way a browser
// form submission would. Without an endpoint it only logs them.
type LeadService struct {
	endpoint string
	formName string
	enabled  bool
	client   *resty.Client
}

func NewLeadService(endpoint, formName string, timeout time.Duration) *LeadService {
	return &LeadService{
		endpoint: endpoint,
		formName: formName,
		enabled:  endpoint != "",
		client: resty.New().
			SetTimeout(timeout).
			SetHeader("Accept", "text/html,application/json"),
	}
}

func (s *LeadService) Forward(ctx context.Context, lead domain.Lead) error {
	if !s.enabled {
		log.Info().
			Str("form", s.formName).
			Str("interestLevel", string(lead.InterestLevel)).
			Str("vehicleInfo", lead.VehicleInfo).
			Msg("form backend not configured, lead not forwarded")
		return nil
	}

	res, err := s.client.R().
		SetContext(ctx).
		SetFormData(leadFormData(s.formName, lead)).
		Post(s.endpoint)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFormBackend, err)
	}
	if res.IsError() {
		return fmt.Errorf("%w: status %d", ErrFormBackend, res.StatusCode())
	}

	log.Info().
		Str("form", s.formName).
		Str("interestLevel", string(lead.InterestLevel)).
		Int("status", res.StatusCode()).
		Msg("lead forwarded")
	return nil
}

func leadFormData(formName string, lead domain.Lead) map[string]string {
	return map[string]string{
		"form-name":      formName,
		"name":           lead.Name,
		"email":          lead.Email,
		"phone":          lead.Phone,
		"message":        lead.Message,
		"vehicle-info":   lead.VehicleInfo,
		"interest-level": string(lead.InterestLevel),
	}
}
