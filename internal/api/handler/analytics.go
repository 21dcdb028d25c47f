package handler

import (
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/teledash/analytics-api/internal/domain"
	"github.com/teledash/analytics-api/internal/usecases/reporting"
	"github.com/teledash/analytics-api/pkg/apiErrors"
	"github.com/teledash/analytics-api/pkg/utils"
)

// Janela default quando o cliente não informa as datas
const defaultWindowDays = 30

type usageWindowResponse struct {
	OrganizationID string              `json:"organization_id"`
	StartDate      string              `json:"start_date"`
	EndDate        string              `json:"end_date"`
	GapPolicy      domain.GapPolicy    `json:"gap_policy"`
	Points         []*domain.UsagePoint `json:"points"`
}

type agentWindowResponse struct {
	OrganizationID string                         `json:"organization_id"`
	AgentID        string                         `json:"agent_id"`
	StartDate      string                         `json:"start_date"`
	EndDate        string                         `json:"end_date"`
	GapPolicy      domain.GapPolicy               `json:"gap_policy"`
	Points         []*domain.AgentPerformancePoint `json:"points"`
}

// GetUsageWindow retorna a série diária de uso de uma organização
func GetUsageWindow(service reporting.WindowBuilder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetUsageWindow")

		organizationID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if organizationID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Identificador da organização não informado", nil)
			return
		}

		start, end, policy, ok := parseWindowParams(w, r)
		if !ok {
			return
		}

		points, err := service.BuildUsageWindow(organizationID, start, end, policy)
		if err != nil {
			logrus.WithError(err).Error("Erro ao montar janela de uso")
			apiErrors.WriteDomainError(w, err)
			return
		}

		response := usageWindowResponse{
			OrganizationID: organizationID,
			StartDate:      start.Format(time.DateOnly),
			EndDate:        end.Format(time.DateOnly),
			GapPolicy:      policy,
			Points:         points,
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}
}

// GetAgentPerformanceWindow retorna a série diária de desempenho de um agente
func GetAgentPerformanceWindow(service reporting.WindowBuilder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetAgentPerformanceWindow")

		params := httprouter.ParamsFromContext(r.Context())
		organizationID := params.ByName("id")
		agentID := params.ByName("agent_id")
		if organizationID == "" || agentID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Identificadores da organização e do agente são obrigatórios", nil)
			return
		}

		start, end, policy, ok := parseWindowParams(w, r)
		if !ok {
			return
		}

		points, err := service.BuildAgentWindow(organizationID, agentID, start, end, policy)
		if err != nil {
			logrus.WithError(err).Error("Erro ao montar janela de desempenho do agente")
			apiErrors.WriteDomainError(w, err)
			return
		}

		response := agentWindowResponse{
			OrganizationID: organizationID,
			AgentID:        agentID,
			StartDate:      start.Format(time.DateOnly),
			EndDate:        end.Format(time.DateOnly),
			GapPolicy:      policy,
			Points:         points,
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}
}

// parseWindowParams lê start_date, end_date e fill da query string.
// Sem datas informadas a janela default cobre os últimos 30 dias fechados.
func parseWindowParams(w http.ResponseWriter, r *http.Request) (time.Time, time.Time, domain.GapPolicy, bool) {
	query := r.URL.Query()

	defaultEnd := utils.TruncateToDay(time.Now().UTC()).AddDate(0, 0, -1)
	defaultStart := defaultEnd.AddDate(0, 0, -(defaultWindowDays - 1))

	start, err := utils.ParseDate(query.Get("start_date"), defaultStart)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inicial inválida, use o formato YYYY-MM-DD", nil)
		return time.Time{}, time.Time{}, "", false
	}

	end, err := utils.ParseDate(query.Get("end_date"), defaultEnd)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data final inválida, use o formato YYYY-MM-DD", nil)
		return time.Time{}, time.Time{}, "", false
	}

	policy, err := domain.ParseGapPolicy(query.Get("fill"))
	if err != nil {
		apiErrors.WriteDomainError(w, err)
		return time.Time{}, time.Time{}, "", false
	}

	return start, end, policy, true
}
