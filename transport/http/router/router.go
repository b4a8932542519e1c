package router

import (
	"forge/internal/handlers/auth"
	"forge/internal/handlers/contact"
	"forge/internal/handlers/engagement"
	"forge/internal/handlers/gallery"
	"forge/internal/handlers/health"
	"forge/internal/handlers/profile"
	"forge/internal/handlers/project"
	"forge/internal/handlers/review"
	"forge/internal/handlers/user"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth       auth.Handler
	Gallery    gallery.Handler
	Engagement engagement.Handler
	Review     review.Handler
	Project    project.Handler
	Profile    profile.Handler
	Contact    contact.Handler
	User       user.Handler
	Health     health.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Gallery.Router(routerGroup)
		r.DomainHandlers.Engagement.Router(routerGroup)
		r.DomainHandlers.Review.Router(routerGroup)
		r.DomainHandlers.Project.Router(routerGroup)
		r.DomainHandlers.Profile.Router(routerGroup)
		r.DomainHandlers.Contact.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Health.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
