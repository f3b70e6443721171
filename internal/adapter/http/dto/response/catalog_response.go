package response

import "mediamind_portal/internal/domain/entities"

// ServiceSummary is the catalog card shown on listing pages.
type ServiceSummary struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Tagline     string   `json:"tagline"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	Pricing     string   `json:"pricing,omitempty"`
	Image       string   `json:"image"`
}

func FromServices(services []entities.Service) []ServiceSummary {
	out := make([]ServiceSummary, 0, len(services))
	for _, s := range services {
		out = append(out, ServiceSummary{
			ID:          s.ID,
			Title:       s.Title,
			Tagline:     s.Tagline,
			Description: s.Description,
			Features:    s.Features,
			Pricing:     s.Pricing,
			Image:       s.Image,
		})
	}
	return out
}
