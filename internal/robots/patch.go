package robots

// Patch carries the fields of a PATCH /robots/:id body. Nil means the
// field was absent and the stored value is kept; a non-nil pointer
// overwrites, including with falsy values like "" or an empty list.
type Patch struct {
	Name          *string   `json:"name"`
	Description   *string   `json:"description"`
	Price         *float64  `json:"price"`
	Currency      *string   `json:"currency"`
	WalletAddress *string   `json:"wallet_address"`
	Services      *[]string `json:"services"`
	Endpoint      *string   `json:"endpoint"`
	Status        *string   `json:"status"`
}

// Validate rejects patched values that could never have been created:
// a non-positive price or a status outside the enumeration.
func (p *Patch) Validate() error {
	if p.Price != nil && *p.Price <= 0 {
		return &ValidationError{Field: "price", Reason: "must be greater than 0"}
	}
	if p.Status != nil && !ValidStatus(*p.Status) {
		return &ValidationError{Field: "status", Reason: "must be active, inactive or maintenance"}
	}
	return nil
}

// Apply writes the present fields onto r. Ownership, identifiers,
// counters and timestamps are not patchable.
func (p *Patch) Apply(r *Robot) {
	if p.Name != nil {
		r.Name = *p.Name
	}
	if p.Description != nil {
		r.Description = *p.Description
	}
	if p.Price != nil {
		r.Price = *p.Price
	}
	if p.Currency != nil {
		r.Currency = *p.Currency
	}
	if p.WalletAddress != nil {
		r.WalletAddress = *p.WalletAddress
	}
	if p.Services != nil {
		r.Services = *p.Services
	}
	if p.Endpoint != nil {
		r.Endpoint = *p.Endpoint
	}
	if p.Status != nil {
		r.Status = *p.Status
	}
}

// Empty reports whether the patch carries no fields at all.
func (p *Patch) Empty() bool {
	return p.Name == nil && p.Description == nil && p.Price == nil &&
		p.Currency == nil && p.WalletAddress == nil && p.Services == nil &&
		p.Endpoint == nil && p.Status == nil
}
