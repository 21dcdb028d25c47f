package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/teledash/analytics-api/internal/scheduler"
	"github.com/teledash/analytics-api/pkg/apiErrors"
	"github.com/teledash/analytics-api/pkg/utils"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeUsage  = "usage"
	CronJobTypeAgents = "agents"
	CronJobTypeChurn  = "churn"
	CronJobTypeAll    = "all"
)

// CronJobServices contém os agendadores que podem ser disparados manualmente
type CronJobServices struct {
	UsageStatsSyncService       *scheduler.UsageStatsSyncService
	AgentPerformanceSyncService *scheduler.AgentPerformanceSyncService
	ChurnSweepService           *scheduler.ChurnSweepService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeUsage:
			if services.UsageStatsSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Agendador de estatísticas de uso não disponível", nil)
				return
			}
			services.UsageStatsSyncService.TriggerManualSync()

		case CronJobTypeAgents:
			if services.AgentPerformanceSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Agendador de desempenho de agentes não disponível", nil)
				return
			}
			services.AgentPerformanceSyncService.TriggerManualSync()

		case CronJobTypeChurn:
			if services.ChurnSweepService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Varredura de churn não disponível", nil)
				return
			}
			services.ChurnSweepService.TriggerManualSync()

		case CronJobTypeAll:
			if services.UsageStatsSyncService != nil {
				services.UsageStatsSyncService.TriggerManualSync()
			}
			if services.AgentPerformanceSyncService != nil {
				services.AgentPerformanceSyncService.TriggerManualSync()
			}
			if services.ChurnSweepService != nil {
				services.ChurnSweepService.TriggerManualSync()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: usage, agents, churn, all", nil)
			return
		}

		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{
			"usage":  services.UsageStatsSyncService.Status(),
			"agents": services.AgentPerformanceSyncService.Status(),
			"churn":  services.ChurnSweepService.Status(),
		}

		logrus.Debug("Status das cron jobs: ", utils.PrettyJson(status))

		json.NewEncoder(w).Encode(status)
	}
}
