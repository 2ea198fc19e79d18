package messenger_http

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"dailyapps/internal/app/messenger"
)

func RegisterRoutes(r chi.Router, s messenger.MessengerService, l *zap.Logger) {
	handler := NewMessengerHandler(s, l.With(zap.String("component", "MessengerHTTPHandler")))

	r.Route("/messenger", func(r chi.Router) {
		r.Post("/users", handler.CreateUserHandler)
		r.Get("/users/{id}", handler.GetUserHandler)
		r.Put("/users/{id}/presence", handler.PresenceHandler)
		r.Get("/users/{id}/inbox", handler.InboxHandler)

		r.Post("/conversations", handler.CreateConversationHandler)
		r.Post("/conversations/{id}/members", handler.AddMembersHandler)
		r.Put("/conversations/{id}/mute", handler.MuteHandler)
		r.Get("/conversations/{id}/history", handler.HistoryHandler)

		r.Post("/messages", handler.SendHandler)
		r.Delete("/messages/{id}", handler.DeleteMessageHandler)
		r.Put("/messages/{id}/read", handler.ReadHandler)
	})
}
