package http

import (
	"net/http"
	"strings"

	"github.com/nestandloomco/intentra/domain"
	"github.com/nestandloomco/intentra/service"
)

type InterestHandler struct {
	service *service.InterestService
}

func NewInterestHandler(service *service.InterestService) *InterestHandler {
	return &InterestHandler{service: service}
}

type interestResponse struct {
	domain.InterestResult
	Paragraphs     []string `json:"paragraphs"`
	Dots           []bool   `json:"dots"`
	VehicleSummary string   `json:"vehicle_summary"`
}

func newInterestResponse(v domain.VehicleDescription, result domain.InterestResult) interestResponse {
	return interestResponse{
		InterestResult: result,
		Paragraphs:     service.Paragraphs(result.Narrative),
		Dots:           service.InterestDots(result.Level),
		VehicleSummary: service.VehicleSummary(v),
	}
}

// Calculate scores a vehicle without touching any session.
func (h *InterestHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var input domain.VehicleDescription
	if !decodeJSON(w, r, &input) {
		return
	}
	input.Make = service.FormatMakeName(strings.TrimSpace(input.Make))
	input.Model = strings.TrimSpace(input.Model)

	result, err := h.service.Calculate(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, newInterestResponse(input, result))
}
