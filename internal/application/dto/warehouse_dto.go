package dto

import "github.com/bridgewms/kepabeanan-api/internal/domain/entity"

// Warehouse lifecycle events accepted by POST /api/warehouses/sync.
const (
	EventWarehouseCreated = "warehouse.created"
	EventWarehouseUpdated = "warehouse.updated"
	EventWarehouseDeleted = "warehouse.deleted"
)

// WarehouseSyncRequest body for POST /api/warehouses/sync.
type WarehouseSyncRequest struct {
	Event string            `json:"event"`
	Data  WarehouseSyncData `json:"data"`
}

// WarehouseSyncData event payload. The sender may identify the warehouse by
// warehouseId or id, and name it by name or warehouseName; first non-empty
// value wins.
type WarehouseSyncData struct {
	WarehouseID   string            `json:"warehouseId"`
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	WarehouseName string            `json:"warehouseName"`
	Country       string            `json:"country"`
	CountryName   string            `json:"countryName"`
	City          string            `json:"city"`
	CityName      string            `json:"cityName"`
	Metadata      map[string]string `json:"metadata"`
}

// ResolveID returns the warehouse identity carried by the event.
func (d WarehouseSyncData) ResolveID() string {
	if d.WarehouseID != "" {
		return d.WarehouseID
	}
	return d.ID
}

// WarehouseSyncResponse body for POST /api/warehouses/sync.
type WarehouseSyncResponse struct {
	Ok      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
}

// WarehouseListResponse body for GET /api/warehouses.
type WarehouseListResponse struct {
	Ok         bool               `json:"ok"`
	Warehouses []entity.Warehouse `json:"warehouses"`
}

// LocationListResponse body for GET /api/locations.
type LocationListResponse struct {
	Ok        bool              `json:"ok"`
	Locations []entity.Location `json:"locations"`
}
