package dto

// CreateDonationRequest represents the payload for recording a donation
type CreateDonationRequest struct {
	ProjectID    uint    `json:"project_id" binding:"required"`
	DonorName    string  `json:"donor_name"`
	Amount       float64 `json:"amount" binding:"required,gt=0"`
	DonationDate *string `json:"donation_date"`
}

// UpdateDonationRequest represents an admin correction of a donation.
// Only fields present in the JSON body are written.
type UpdateDonationRequest struct {
	ID           uint     `json:"id" binding:"required"`
	ProjectID    *uint    `json:"project_id"`
	DonorName    *string  `json:"donor_name"`
	Amount       *float64 `json:"amount"`
	DonationDate *string  `json:"donation_date"`
}

// Fields maps the provided values to their database columns
func (r UpdateDonationRequest) Fields() (map[string]interface{}, error) {
	fields := make(map[string]interface{})
	if r.ProjectID != nil {
		fields["project_id"] = *r.ProjectID
	}
	if r.DonorName != nil {
		fields["donor_name"] = *r.DonorName
	}
	if r.Amount != nil {
		fields["amount"] = *r.Amount
	}
	if r.DonationDate != nil {
		t, err := ParseDate(*r.DonationDate)
		if err != nil {
			return nil, err
		}
		fields["donation_date"] = t
	}
	return fields, nil
}

// ProjectTotal is the database-side per-project donation sum
type ProjectTotal struct {
	ProjectID    uint    `json:"project_id"`
	ProjectTitle string  `json:"project_title"`
	Total        float64 `json:"total"`
}

// AmountCount is the database-side count of donations per distinct amount
type AmountCount struct {
	Amount float64 `json:"amount"`
	Count  int64   `json:"count"`
}
