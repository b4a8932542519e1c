package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"forge/config"
	"forge/infras/otel"
	"forge/internal/domains/contact/model/dto"
	"forge/shared/constant"
)

const defaultTopic = "general enquiry"

// Contact builds pre-formatted outreach links from configuration. No storage
// is involved.
type Contact interface {
	Links(ctx context.Context, topic string) dto.ContactLinksResponse
	Location(ctx context.Context) dto.LocationResponse
}

type serviceImpl struct {
	cfg  *config.Config
	otel otel.Otel
}

func New(cfg *config.Config, otel otel.Otel) Contact {
	return &serviceImpl{
		cfg:  cfg,
		otel: otel,
	}
}

func (s *serviceImpl) Links(ctx context.Context, topic string) (res dto.ContactLinksResponse) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Links")
	defer scope.End()

	topic = strings.TrimSpace(topic)
	if topic == constant.Empty {
		topic = defaultTopic
	}

	message := fmt.Sprintf("Hello, I would like to ask about %s.", topic)

	phone := strings.TrimLeft(s.cfg.Contact.WhatsAppPhone, "+")
	res.WhatsApp = fmt.Sprintf("https://wa.me/%s?text=%s", phone, url.QueryEscape(message))

	subject := fmt.Sprintf("Enquiry: %s", topic)
	res.Email = fmt.Sprintf("mailto:%s?subject=%s", s.cfg.Contact.Email, url.QueryEscape(subject))

	return res
}

// Location returns a maps embed URL when an API key is configured, and always
// a plain search link as fallback.
func (s *serviceImpl) Location(ctx context.Context) (res dto.LocationResponse) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Location")
	defer scope.End()

	query := url.QueryEscape(s.cfg.Contact.MapsQuery)

	res.Open = fmt.Sprintf("https://www.google.com/maps/search/?api=1&query=%s", query)

	if s.cfg.Contact.MapsAPIKey != constant.Empty {
		res.Embed = fmt.Sprintf("https://www.google.com/maps/embed/v1/place?key=%s&q=%s", s.cfg.Contact.MapsAPIKey, query)
	}

	return res
}
