package memory

import (
	"context"

	"lastmile/internal/core/domain/model/shipment"
	"lastmile/internal/pkg/errs"
)

// shipmentRepository reads through the staging area of its unit of work
// before falling back to the store.
type shipmentRepository struct {
	uow *UnitOfWork
}

func (r *shipmentRepository) NextEventID() int64 {
	return r.uow.store.NextEventID()
}

func (r *shipmentRepository) NextID(_ context.Context) (int64, error) {
	tx, err := r.tx()
	if err != nil {
		return 0, err
	}

	id := tx.nextShipmentID
	tx.nextShipmentID++
	return id, nil
}

func (r *shipmentRepository) Add(_ context.Context, aggregate *shipment.Shipment) error {
	tx, err := r.tx()
	if err != nil {
		return err
	}
	if err = aggregate.Validate(); err != nil {
		return err
	}

	if _, exists := r.lookup(tx, aggregate.ID()); exists {
		return errs.NewAlreadyExistsError("Shipment", "id")
	}

	tx.stageShipment(aggregate.ID(), aggregate.Clone())
	return nil
}

func (r *shipmentRepository) Update(_ context.Context, aggregate *shipment.Shipment) error {
	tx, err := r.tx()
	if err != nil {
		return err
	}
	if err = aggregate.Validate(); err != nil {
		return err
	}

	if _, exists := r.lookup(tx, aggregate.ID()); !exists {
		return errs.NewObjectNotFoundError("Shipment", aggregate.ID())
	}

	tx.stageShipment(aggregate.ID(), aggregate.Clone())
	return nil
}

func (r *shipmentRepository) Get(_ context.Context, id int64) (*shipment.Shipment, error) {
	tx, err := r.tx()
	if err != nil {
		return nil, err
	}

	sh, exists := r.lookup(tx, id)
	if !exists {
		return nil, errs.NewObjectNotFoundError("Shipment", id)
	}
	return sh.Clone(), nil
}

func (r *shipmentRepository) Delete(_ context.Context, id int64) error {
	tx, err := r.tx()
	if err != nil {
		return err
	}

	if _, exists := r.lookup(tx, id); !exists {
		return errs.NewObjectNotFoundError("Shipment", id)
	}

	tx.stageShipment(id, nil)
	return nil
}

func (r *shipmentRepository) tx() (*transaction, error) {
	if r.uow.tx == nil {
		return nil, ErrInvalidTransaction
	}
	return r.uow.tx, nil
}

// lookup sees staged changes first. The caller's unit of work holds the write lock.
func (r *shipmentRepository) lookup(tx *transaction, id int64) (*shipment.Shipment, bool) {
	if staged, ok := tx.shipments[id]; ok {
		return staged, staged != nil
	}
	sh, ok := r.uow.store.shipments[id]
	return sh, ok
}
