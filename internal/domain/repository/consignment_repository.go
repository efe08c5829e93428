package repository

import "github.com/bridgewms/kepabeanan-api/internal/domain/entity"

// ConsignmentRepository is the consignment collection port. GetByID returns
// nil when the id is unknown.
type ConsignmentRepository interface {
	GetByID(id string) (*entity.Consignment, error)
	Create(c *entity.Consignment) error
	Update(c *entity.Consignment) error
	Delete(id string) error
	List() ([]entity.Consignment, error)
}
