package service

import (
	"context"

	"personnel/internal/personnel/models"
)

type listFunc[T any] func(ctx context.Context, page models.Page) ([]T, error)

type countFunc func(ctx context.Context) (int, error)

// listPage reads one page and the total count from a single snapshot, so a
// write committed between the two reads cannot skew them. A page past the end
// yields empty data with the true count.
func listPage[T any](ctx context.Context, tx StoreTx, page models.Page, list listFunc[T], count countFunc) (*models.PageResult[T], error) {
	page, err := models.NewPage(page.Number, page.Size)
	if err != nil {
		return nil, err
	}

	var result models.PageResult[T]
	err = tx.RunInSnapshot(ctx, func(ctx context.Context) error {
		data, err := list(ctx, page)
		if err != nil {
			return err
		}
		total, err := count(ctx)
		if err != nil {
			return err
		}
		result = models.PageResult[T]{Data: data, Count: total}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if result.Data == nil {
		result.Data = []T{}
	}
	return &result, nil
}
