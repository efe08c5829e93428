package entity

import "time"

// Warehouse is a bonded warehouse synced in from the warehouse-management
// side via lifecycle events.
type Warehouse struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Country   string            `json:"country"`
	City      string            `json:"city"`
	Metadata  map[string]string `json:"metadata,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

// Location is the simplified warehouse view served at /api/locations.
type Location struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
	City    string `json:"city"`
}
