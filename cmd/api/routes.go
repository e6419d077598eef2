// AngelaMos | 2026
// routes.go

package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/carterperez-dev/templates/insights-api/internal/admin"
	"github.com/carterperez-dev/templates/insights-api/internal/auth"
)

type routeRegistrar interface {
	RegisterRoutes(r chi.Router)
}

// apiRoutes is everything mounted below the credential endpoints.
// Resources sit behind authenticator; /auth sits behind authLimit.
type apiRoutes struct {
	auth          *auth.Handler
	admin         *admin.Handler
	authenticator func(http.Handler) http.Handler
	authLimit     func(http.Handler) http.Handler
	resources     []routeRegistrar
}

func mountRoutes(router chi.Router, routes apiRoutes) {
	router.Group(func(r chi.Router) {
		r.Use(routes.authLimit)
		routes.auth.RegisterRoutes(r, routes.authenticator)
	})

	router.Route("/api", func(r chi.Router) {
		routes.admin.RegisterRoutes(r, routes.authenticator)

		r.Group(func(r chi.Router) {
			r.Use(routes.authenticator)

			for _, resource := range routes.resources {
				resource.RegisterRoutes(r)
			}
		})
	})
}
