package router

import (
	"innflow/internal/handlers/booking"
	"innflow/internal/handlers/history"
	"innflow/internal/handlers/room"
	"innflow/internal/handlers/session"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Room    room.Handler
	Session session.Handler
	Booking booking.Handler
	History history.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.History.Router(routerGroup)

		routerGroup.Route("/sessions", func(sessionGroup chi.Router) {
			r.DomainHandlers.Session.Router(sessionGroup)
			r.DomainHandlers.Booking.SessionRouter(sessionGroup)
		})
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
