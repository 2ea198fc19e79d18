package bank_http

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"dailyapps/internal/app/bank"
)

func RegisterRoutes(r chi.Router, s bank.BankService, l *zap.Logger) {
	handler := NewBankHandler(s, l.With(zap.String("component", "BankHTTPHandler")))

	r.Route("/bank", func(r chi.Router) {
		r.Post("/customers", handler.CreateCustomerHandler)
		r.Get("/customers/{id}", handler.GetCustomerHandler)
		r.Get("/customers/{id}/accounts/{number}/transactions", handler.CustomerHistoryHandler)

		r.Post("/accounts", handler.OpenAccountHandler)
		r.Route("/accounts/{number}", func(r chi.Router) {
			r.Get("/", handler.GetAccountHandler)
			r.Post("/deposit", handler.DepositHandler)
			r.Post("/withdraw", handler.WithdrawHandler)
			r.Post("/transfer", handler.TransferHandler)
			r.Get("/transactions", handler.TransactionsHandler)
			r.Get("/summary", handler.SummaryHandler)
		})
	})
}
