package dto

// CreateProjectRequest represents the payload for creating a project.
// Dates arrive as strings from the admin forms.
type CreateProjectRequest struct {
	Title          string   `json:"title" binding:"required"`
	Description    string   `json:"description"`
	StartDate      *string  `json:"start_date"`
	EndDate        *string  `json:"end_date"`
	CategoryID     *uint    `json:"category_id"`
	TargetDonation *float64 `json:"target_donation"`
}

// UpdateProjectRequest represents a sparse project update. Only fields
// present in the JSON body are written.
type UpdateProjectRequest struct {
	ID             uint     `json:"id" binding:"required"`
	Title          *string  `json:"title"`
	Description    *string  `json:"description"`
	StartDate      *string  `json:"start_date"`
	EndDate        *string  `json:"end_date"`
	CategoryID     *uint    `json:"category_id"`
	TargetDonation *float64 `json:"target_donation"`
}

// Fields maps the provided values to their database columns, parsing dates
func (r UpdateProjectRequest) Fields() (map[string]interface{}, error) {
	fields := make(map[string]interface{})
	if r.Title != nil {
		fields["title"] = *r.Title
	}
	if r.Description != nil {
		fields["description"] = *r.Description
	}
	if r.StartDate != nil {
		t, err := ParseDate(*r.StartDate)
		if err != nil {
			return nil, err
		}
		fields["start_date"] = t
	}
	if r.EndDate != nil {
		t, err := ParseDate(*r.EndDate)
		if err != nil {
			return nil, err
		}
		fields["end_date"] = t
	}
	if r.CategoryID != nil {
		fields["category_id"] = *r.CategoryID
	}
	if r.TargetDonation != nil {
		fields["target_donation"] = *r.TargetDonation
	}
	return fields, nil
}
