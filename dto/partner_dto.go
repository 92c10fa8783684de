package dto

// CreatePartnerRequest represents the payload for creating a partner
type CreatePartnerRequest struct {
	Name       string `json:"name" binding:"required"`
	LogoURL    string `json:"logo_url"`
	WebsiteURL string `json:"website_url"`
}

// UpdatePartnerRequest represents a sparse partner update. Only fields
// present in the JSON body are written.
type UpdatePartnerRequest struct {
	ID         uint    `json:"id" binding:"required"`
	Name       *string `json:"name"`
	LogoURL    *string `json:"logo_url"`
	WebsiteURL *string `json:"website_url"`
}

// Fields maps the provided values to their database columns
func (r UpdatePartnerRequest) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if r.Name != nil {
		fields["name"] = *r.Name
	}
	if r.LogoURL != nil {
		fields["logo_url"] = *r.LogoURL
	}
	if r.WebsiteURL != nil {
		fields["website_url"] = *r.WebsiteURL
	}
	return fields
}
