package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/teledash/analytics-api/internal/domain"
	"github.com/teledash/analytics-api/internal/usecases/scoring"
	"github.com/teledash/analytics-api/pkg/apiErrors"
)

type churnResponse struct {
	CustomerID string                `json:"customer_id"`
	ChurnScore float64               `json:"churn_score"`
	ChurnRisk  domain.ChurnRiskLevel `json:"churn_risk"`
}

// GetCustomerChurn retorna o score de churn persistido de um cliente
func GetCustomerChurn(service scoring.ChurnScorer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCustomerChurn")

		customerID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if customerID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Identificador do cliente não informado", nil)
			return
		}

		customer, err := service.GetCustomerChurn(customerID)
		if err != nil {
			logrus.WithError(err).Error("Erro ao buscar score de churn do cliente")
			apiErrors.WriteDomainError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(churnResponse{
			CustomerID: customer.ID,
			ChurnScore: customer.ChurnScore,
			ChurnRisk:  customer.ChurnRisk,
		})
	}
}

// RescoreCustomerChurn recalcula o score de churn de um cliente sob demanda
func RescoreCustomerChurn(service scoring.ChurnScorer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RescoreCustomerChurn")

		customerID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if customerID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Identificador do cliente não informado", nil)
			return
		}

		customer, err := service.RescoreCustomer(customerID)
		if err != nil {
			logrus.WithError(err).Error("Erro ao recalcular score de churn do cliente")
			apiErrors.WriteDomainError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(churnResponse{
			CustomerID: customer.ID,
			ChurnScore: customer.ChurnScore,
			ChurnRisk:  customer.ChurnRisk,
		})
	}
}
