package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"forge/config"
	"forge/infras/otel/mocks"
	"forge/internal/domains/contact/service"
)

func TestContactService_Links(t *testing.T) {
	cfg := &config.Config{}
	cfg.Contact.WhatsAppPhone = "+628123456789"
	cfg.Contact.Email = "hello@example.com"

	svc := service.New(cfg, mocks.NewOtel())

	tests := []struct {
		name         string
		topic        string
		wantWhatsApp string
		wantEmail    string
	}{
		{
			name:         "explicit topic",
			topic:        "a steel pergola",
			wantWhatsApp: "https://wa.me/628123456789?text=Hello%2C+I+would+like+to+ask+about+a+steel+pergola.",
			wantEmail:    "mailto:hello@example.com?subject=Enquiry%3A+a+steel+pergola",
		},
		{
			name:         "empty topic falls back to the general enquiry",
			topic:        "",
			wantWhatsApp: "https://wa.me/628123456789?text=Hello%2C+I+would+like+to+ask+about+general+enquiry.",
			wantEmail:    "mailto:hello@example.com?subject=Enquiry%3A+general+enquiry",
		},
		{
			name:         "whitespace topic falls back to the general enquiry",
			topic:        "   ",
			wantWhatsApp: "https://wa.me/628123456789?text=Hello%2C+I+would+like+to+ask+about+general+enquiry.",
			wantEmail:    "mailto:hello@example.com?subject=Enquiry%3A+general+enquiry",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := svc.Links(context.Background(), tt.topic)

			assert.Equal(t, tt.wantWhatsApp, result.WhatsApp)
			assert.Equal(t, tt.wantEmail, result.Email)
		})
	}
}

func TestContactService_Location(t *testing.T) {
	t.Run("embed URL only with an API key", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.Contact.MapsQuery = "Forge Metalworks Workshop"
		cfg.Contact.MapsAPIKey = "test-api-key"

		svc := service.New(cfg, mocks.NewOtel())

		result := svc.Location(context.Background())

		assert.Equal(t, "https://www.google.com/maps/search/?api=1&query=Forge+Metalworks+Workshop", result.Open)
		assert.Equal(t, "https://www.google.com/maps/embed/v1/place?key=test-api-key&q=Forge+Metalworks+Workshop", result.Embed)
	})

	t.Run("no embed URL without an API key", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.Contact.MapsQuery = "Forge Metalworks Workshop"

		svc := service.New(cfg, mocks.NewOtel())

		result := svc.Location(context.Background())

		assert.NotEmpty(t, result.Open)
		assert.Empty(t, result.Embed)
	})
}
