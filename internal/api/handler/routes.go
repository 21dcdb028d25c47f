package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/teledash/analytics-api/internal/api/handler/router"
	"github.com/teledash/analytics-api/internal/usecases/reporting"
	"github.com/teledash/analytics-api/internal/usecases/scoring"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Analytics(service reporting.WindowBuilder) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/organizations/:id/analytics/usage",
			Method:  http.MethodGet,
			Handler: GetUsageWindow(service),
		},
		{
			Path:    "/v1/organizations/:id/agents/:agent_id/performance",
			Method:  http.MethodGet,
			Handler: GetAgentPerformanceWindow(service),
		},
	}
}

func Churn(service scoring.ChurnScorer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/customers/:id/churn",
			Method:  http.MethodGet,
			Handler: GetCustomerChurn(service),
		},
		{
			Path:    "/v1/customers/:id/churn/rescore",
			Method:  http.MethodPost,
			Handler: RescoreCustomerChurn(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
