package http

import (
	"encoding/json"
	"net/http"

	"github.com/begoneskadedjur/kundportal-sub011/internal/domain/dashboard"
	"github.com/begoneskadedjur/kundportal-sub011/internal/handler/http/response"
	"github.com/begoneskadedjur/kundportal-sub011/internal/pkg/assistant"
	"github.com/begoneskadedjur/kundportal-sub011/internal/pkg/validator"
)

type AssistantHandler interface {
	// Ask answers an operations question with the aggregate payload as context
	Ask(w http.ResponseWriter, r *http.Request)
}

type assistantHandlerImpl struct {
	dashboardService dashboard.DashboardService
	assistant        assistant.Assistant
}

func NewAssistantHandler(dashboardService dashboard.DashboardService, assistant assistant.Assistant) AssistantHandler {
	return &assistantHandlerImpl{
		dashboardService: dashboardService,
		assistant:        assistant,
	}
}

type askRequest struct {
	Question string `json:"question"`
	Months   int    `json:"months"`
}

type askResponse struct {
	Answer string `json:"answer"`
}

// Ask handles POST /assistant/ask. The facade payload is recomputed fresh
// and handed to the assistant as read-only context.
func (h *assistantHandlerImpl) Ask(w http.ResponseWriter, r *http.Request) {
	var req askRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if validator.IsEmpty(req.Question) {
		response.ValidationError(w, map[string]string{"question": "is required"})
		return
	}

	payload, err := h.dashboardService.GetDashboard(r.Context(), dashboard.DashboardRequest{Months: req.Months})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	answer, err := h.assistant.Ask(r.Context(), req.Question, payload)
	if err != nil {
		response.BadGateway(w, "Assistant request failed")
		return
	}

	response.Success(w, askResponse{Answer: answer})
}
