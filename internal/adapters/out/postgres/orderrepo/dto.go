// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"orderintake/internal/core/domain/model/kernel"
	"orderintake/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The id column is a BIGSERIAL, so ids are assigned by the database in insertion order.
type OrderDTO struct {
	ID           int64   `gorm:"primaryKey;autoIncrement"`
	CustomerName string  `gorm:"not null"`
	Destination  string  `gorm:"not null"`
	Weight       float64 `gorm:"type:double precision;not null"`
	Courier      string  `gorm:"not null"`
	Status       string  `gorm:"not null;default:Pending;index"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
// A zero id is left for the database to fill.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:           aggregate.ID(),
		CustomerName: aggregate.CustomerName(),
		Destination:  aggregate.Destination(),
		Weight:       aggregate.Weight().Value(),
		Courier:      aggregate.Courier(),
		Status:       aggregate.Status().String(),
	}
}

// toDomain converts a database DTO to an order domain aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	weight, err := kernel.NewWeight(dto.Weight)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		dto.ID,
		dto.CustomerName,
		dto.Destination,
		weight,
		dto.Courier,
		order.Status(dto.Status),
	)
}
