// Package ingest drives batches of scraped menu records through the menu
// ingestion coordinator, collecting per-record outcomes.
package ingest

import (
	"Dining-Menu-Backend/domain"
	"Dining-Menu-Backend/pkg/menu"
	"context"
	"sync"
)

const maxConcurrency = 32

type (
	IngestService interface {
		// IngestBatch processes every record independently: one record's
		// failure never aborts the rest, and each successful record commits
		// its own transaction. With SkipExisting set, records whose location
		// and time window overlap a stored menu are reported as skipped.
		IngestBatch(ctx context.Context, req domain.IngestBatchRequest) (domain.BatchIngestResult, error)
	}

	ingestService struct {
		menuService menu.MenuService
	}

	itemOutcome struct {
		menuID  string
		skipped bool
		err     error
	}
)

func NewIngestService(menuService menu.MenuService) IngestService {
	return &ingestService{menuService: menuService}
}

func (s *ingestService) IngestBatch(ctx context.Context, req domain.IngestBatchRequest) (domain.BatchIngestResult, error) {
	outcomes := make([]itemOutcome, len(req.Menus))

	workers := req.Concurrency
	if workers < 1 {
		workers = 1
	}
	if workers > maxConcurrency {
		workers = maxConcurrency
	}

	if workers == 1 {
		for i, record := range req.Menus {
			outcomes[i] = s.ingestOne(ctx, record, req.SkipExisting)
		}
	} else {
		var wg sync.WaitGroup
		sem := make(chan struct{}, workers)
		for i, record := range req.Menus {
			wg.Add(1)
			sem <- struct{}{}
			go func(i int, record domain.IngestMenuRequest) {
				defer wg.Done()
				defer func() { <-sem }()
				outcomes[i] = s.ingestOne(ctx, record, req.SkipExisting)
			}(i, record)
		}
		wg.Wait()
	}

	// Outcomes are assembled in input order regardless of completion order.
	result := domain.BatchIngestResult{
		Succeeded: []string{},
		Skipped:   []domain.BatchItemRef{},
		Failed:    []domain.BatchItemFailure{},
	}
	for i, outcome := range outcomes {
		switch {
		case outcome.err != nil:
			result.Failed = append(result.Failed, domain.BatchItemFailure{
				BatchItemRef: itemRef(i, req.Menus[i]),
				Error:        outcome.err.Error(),
			})
		case outcome.skipped:
			result.Skipped = append(result.Skipped, itemRef(i, req.Menus[i]))
		default:
			result.Succeeded = append(result.Succeeded, outcome.menuID)
		}
	}
	return result, nil
}

func (s *ingestService) ingestOne(ctx context.Context, record domain.IngestMenuRequest, skipExisting bool) itemOutcome {
	if skipExisting {
		exists, err := s.menuService.RecordExists(ctx, record)
		if err != nil {
			return itemOutcome{err: err}
		}
		if exists {
			return itemOutcome{skipped: true}
		}
	}

	menuID, err := s.menuService.IngestMenu(ctx, record)
	if err != nil {
		return itemOutcome{err: err}
	}
	return itemOutcome{menuID: menuID}
}

func itemRef(i int, record domain.IngestMenuRequest) domain.BatchItemRef {
	return domain.BatchItemRef{
		Index:        i,
		MenuName:     record.Name,
		LocationName: record.Location.Name,
		StartTime:    record.StartTime,
		EndTime:      record.EndTime,
	}
}
