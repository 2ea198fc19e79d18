package jobs_http

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"dailyapps/internal/app/jobs"
)

func RegisterRoutes(r chi.Router, s jobs.JobBoardService, l *zap.Logger) {
	handler := NewJobsHandler(s, l.With(zap.String("component", "JobsHTTPHandler")))

	r.Route("/jobs", func(r chi.Router) {
		r.Post("/companies", handler.CreateCompanyHandler)
		r.Route("/companies/{id}/postings", func(r chi.Router) {
			r.Get("/", handler.CompanyPostingsHandler)
			r.Post("/", handler.CreatePostingHandler)
			r.Put("/{postingID}", handler.EditPostingHandler)
			r.Delete("/{postingID}", handler.DeletePostingHandler)
			r.Get("/{postingID}/applications", handler.ViewApplicationsHandler)
		})

		r.Get("/postings", handler.ListPostingsHandler)

		r.Post("/seekers", handler.CreateSeekerHandler)
		r.Post("/seekers/{id}/search", handler.SearchHandler)
		r.Post("/seekers/{id}/applications", handler.ApplyHandler)
		r.Get("/seekers/{id}/applications", handler.SeekerApplicationsHandler)

		r.Patch("/applications/{id}", handler.UpdateStatusHandler)
	})
}
