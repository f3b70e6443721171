package response

import "mediamind_portal/internal/config"

type SiteContentResponse struct {
	Title     string `json:"title"`
	Subtitle  string `json:"subtitle"`
	Tagline   string `json:"tagline"`
	Copyright string `json:"copyright"`
}

func FromSiteConfig(c config.SiteConfig) SiteContentResponse {
	return SiteContentResponse{
		Title:     c.Title,
		Subtitle:  c.Subtitle,
		Tagline:   c.Tagline,
		Copyright: c.Copyright,
	}
}
