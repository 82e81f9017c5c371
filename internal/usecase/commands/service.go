package commands

import (
	"context"

	"cavilia/internal/domain/service"
	"cavilia/internal/infra/db"
	"cavilia/internal/pkg/errs"
	"cavilia/internal/usecase/shared"

	"github.com/google/uuid"
)

type ServiceInput struct {
	Name     string
	Desc     string
	Price    string
	Duration string
}

type ServiceUsecase struct {
	txRunner shared.TxRunner
	services ServiceCommandRepository
	reader   ServiceReader
}

func NewServiceUsecase(txRunner shared.TxRunner, services ServiceCommandRepository, reader ServiceReader) *ServiceUsecase {
	return &ServiceUsecase{txRunner: txRunner, services: services, reader: reader}
}

func (u *ServiceUsecase) Create(ctx context.Context, input ServiceInput) (uuid.UUID, error) {
	svc, err := service.NewService(input.Name, input.Desc, input.Price, input.Duration)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidServiceInput)
	}

	err = u.txRunner.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		return u.services.Create(ctx, tx, svc)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return svc.ID(), nil
}

func (u *ServiceUsecase) Update(ctx context.Context, id uuid.UUID, input ServiceInput) error {
	current, err := u.reader.FindByID(ctx, id)
	if err != nil {
		return errs.Mark(err, ErrServiceNotFound)
	}

	updated, err := service.NewService(input.Name, input.Desc, input.Price, input.Duration)
	if err != nil {
		return errs.Mark(err, ErrInvalidServiceInput)
	}
	persisted := service.ReconstructService(
		current.ID, updated.Name(), updated.Desc(), updated.Price(), updated.Duration(),
		current.CreatedAt, current.UpdatedAt,
	)

	return u.txRunner.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		err := u.services.Update(ctx, tx, persisted)
		if err != nil {
			return errs.Mark(err, ErrServiceNotFound)
		}
		return nil
	})
}

// Delete removes a service; bookings referencing it are removed by the
// database cascade along with their reminders.
func (u *ServiceUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	return u.txRunner.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		err := u.services.Delete(ctx, tx, id)
		if err != nil {
			return errs.Mark(err, ErrServiceNotFound)
		}
		return nil
	})
}
