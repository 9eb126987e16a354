package domain

// A driver tasks get assigned to. Identity is the ID alone;
// Name only affects display.
type Driver struct {
	ID   string `json:"uuid"`
	Name string `json:"name,omitempty"`
}

// DisplayName falls back to the ID for unnamed drivers.
func (d Driver) DisplayName() string {
	if d.Name == "" {
		return d.ID
	}
	return d.Name
}
