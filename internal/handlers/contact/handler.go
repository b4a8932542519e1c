package contact

import (
	"net/http"

	"forge/infras/otel"
	"forge/internal/domains/contact/service"
	"forge/shared/constant"
	"forge/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service service.Contact
	otel    otel.Otel
}

func New(service service.Contact, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/contact", func(routerGroup chi.Router) {
		routerGroup.Get("/links", handler.GetContactLinks)
		routerGroup.Get("/location", handler.GetLocation)
	})
}

// GetContactLinks returns pre-formatted WhatsApp and email links.
// @Summary Get contact links
// @Tags Contact
// @Produce json
// @Param topic query string false "Enquiry topic"
// @Success 200 {object} dto.ContactLinksResponse "Contact links"
// @Router /v1/contact/links [get]
func (handler *Handler) GetContactLinks(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetContactLinks")
	defer scope.End()

	res := handler.service.Links(ctx, r.URL.Query().Get(constant.RequestParamTopic))

	response.WithJSON(w, http.StatusOK, res)
}

// GetLocation returns the workshop location links.
// @Summary Get workshop location
// @Tags Contact
// @Produce json
// @Success 200 {object} dto.LocationResponse "Location links"
// @Router /v1/contact/location [get]
func (handler *Handler) GetLocation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetLocation")
	defer scope.End()

	res := handler.service.Location(ctx)

	response.WithJSON(w, http.StatusOK, res)
}
