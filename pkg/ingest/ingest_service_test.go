package ingest

import (
	"Dining-Menu-Backend/domain"
	"Dining-Menu-Backend/entities"
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
)

// --------------------------------------------------
// Mock MenuService
// --------------------------------------------------

type ingestedWindow struct {
	locationName string
	start, end   time.Time
}

type mockMenuService struct {
	mu       sync.Mutex
	ingested []ingestedWindow
	idByName map[string]string

	failMenuName string
}

func newMockMenuService() *mockMenuService {
	return &mockMenuService{idByName: map[string]string{}}
}

func (m *mockMenuService) IngestMenu(ctx context.Context, req domain.IngestMenuRequest) (string, error) {
	if req.Name == m.failMenuName {
		return "", errors.New("resolve location: boom")
	}
	start, end, err := parseTestWindow(req)
	if err != nil {
		return "", err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.ingested = append(m.ingested, ingestedWindow{
		locationName: req.Location.Name,
		start:        start,
		end:          end,
	})
	id := uuid.New().String()
	m.idByName[req.Name] = id
	return id, nil
}

func (m *mockMenuService) MenuExists(ctx context.Context, locationName string, start, end time.Time) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, w := range m.ingested {
		if w.locationName == locationName && !w.end.Before(start) && !w.start.After(end) {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockMenuService) RecordExists(ctx context.Context, req domain.IngestMenuRequest) (bool, error) {
	start, end, err := parseTestWindow(req)
	if err != nil {
		return false, err
	}
	return m.MenuExists(ctx, req.Location.Name, start, end)
}

func (m *mockMenuService) GetMenusByLocationAndWindow(ctx context.Context, locationName string, start, end time.Time) ([]domain.MenuSummaryResponse, error) {
	return nil, nil
}

func (m *mockMenuService) GetMenusWithFoods(ctx context.Context, locationName string, start, end time.Time) ([]domain.MenuWithFoodsResponse, error) {
	return nil, nil
}

func (m *mockMenuService) GetMenusNear(ctx context.Context, lat, lng float64, start, end time.Time, maxDistanceKm float64) ([]domain.MenuNearbyResponse, error) {
	return nil, nil
}

func (m *mockMenuService) GetInformationSourceByName(ctx context.Context, name string) (*entities.InformationSource, error) {
	return nil, nil
}

func (m *mockMenuService) GetAllInformationSources(ctx context.Context) ([]*entities.InformationSource, error) {
	return nil, nil
}

func parseTestWindow(req domain.IngestMenuRequest) (time.Time, time.Time, error) {
	start, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := time.Parse(time.RFC3339, req.EndTime)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

// --------------------------------------------------
// Fixtures
// --------------------------------------------------

func batchOf(n int) []domain.IngestMenuRequest {
	records := make([]domain.IngestMenuRequest, 0, n)
	for i := 0; i < n; i++ {
		day := i + 1
		records = append(records, domain.IngestMenuRequest{
			Name:      fmt.Sprintf("Lunch %d", i),
			Location:  domain.MenuLocation{Name: "Crossroads"},
			StartTime: fmt.Sprintf("2026-03-%02dT11:00:00Z", day),
			EndTime:   fmt.Sprintf("2026-03-%02dT14:00:00Z", day),
			Foods:     []domain.FoodPayload{},
		})
	}
	return records
}

// --------------------------------------------------
// Tests
// --------------------------------------------------

func TestIngestBatchIsolatesFailures(t *testing.T) {
	mock := newMockMenuService()
	mock.failMenuName = "Lunch 2"
	service := NewIngestService(mock)

	result, err := service.IngestBatch(context.Background(), domain.IngestBatchRequest{Menus: batchOf(5)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Succeeded) != 4 {
		t.Errorf("expected 4 succeeded, got %d", len(result.Succeeded))
	}
	if len(result.Failed) != 1 {
		t.Fatalf("expected 1 failed, got %d", len(result.Failed))
	}
	failure := result.Failed[0]
	if failure.Index != 2 || failure.MenuName != "Lunch 2" || failure.LocationName != "Crossroads" {
		t.Errorf("failure must identify the record: %+v", failure)
	}
	if failure.Error == "" {
		t.Error("failure must carry the error message")
	}
	if len(result.Skipped) != 0 {
		t.Errorf("expected no skipped records, got %d", len(result.Skipped))
	}
}

func TestIngestBatchSkipExistingIsIdempotent(t *testing.T) {
	mock := newMockMenuService()
	service := NewIngestService(mock)
	ctx := context.Background()

	first, err := service.IngestBatch(ctx, domain.IngestBatchRequest{Menus: batchOf(3), SkipExisting: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(first.Succeeded) != 3 {
		t.Fatalf("expected 3 succeeded on first run, got %d", len(first.Succeeded))
	}

	second, err := service.IngestBatch(ctx, domain.IngestBatchRequest{Menus: batchOf(3), SkipExisting: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(second.Succeeded) != 0 {
		t.Errorf("rerun must ingest nothing, got %d succeeded", len(second.Succeeded))
	}
	if len(second.Skipped) != 3 {
		t.Fatalf("rerun must skip everything, got %d skipped", len(second.Skipped))
	}
	for i, ref := range second.Skipped {
		if ref.Index != i {
			t.Errorf("skipped[%d] has index %d, want %d", i, ref.Index, i)
		}
	}
	if len(mock.ingested) != 3 {
		t.Errorf("store must still hold 3 menus, got %d", len(mock.ingested))
	}
}

func TestIngestBatchWithoutSkipIngestsDuplicates(t *testing.T) {
	mock := newMockMenuService()
	service := NewIngestService(mock)
	ctx := context.Background()

	if _, err := service.IngestBatch(ctx, domain.IngestBatchRequest{Menus: batchOf(2)}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	result, err := service.IngestBatch(ctx, domain.IngestBatchRequest{Menus: batchOf(2)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Succeeded) != 2 || len(result.Skipped) != 0 {
		t.Errorf("without skip_existing every record ingests again: %+v", result)
	}
	if len(mock.ingested) != 4 {
		t.Errorf("expected 4 stored menus, got %d", len(mock.ingested))
	}
}

func TestIngestBatchConcurrentKeepsInputOrder(t *testing.T) {
	mock := newMockMenuService()
	mock.failMenuName = "Lunch 7"
	service := NewIngestService(mock)

	records := batchOf(20)
	result, err := service.IngestBatch(context.Background(), domain.IngestBatchRequest{
		Menus:       records,
		Concurrency: 8,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Succeeded) != 19 {
		t.Errorf("expected 19 succeeded, got %d", len(result.Succeeded))
	}
	if len(result.Failed) != 1 || result.Failed[0].Index != 7 {
		t.Fatalf("expected exactly record 7 to fail: %+v", result.Failed)
	}

	// Succeeded ids must line up with the input order of the non-failing records.
	want := make([]string, 0, 19)
	for i, record := range records {
		if i == 7 {
			continue
		}
		want = append(want, mock.idByName[record.Name])
	}
	for i, id := range result.Succeeded {
		if id != want[i] {
			t.Fatalf("succeeded[%d] = %s, want %s", i, id, want[i])
		}
	}
}

func TestIngestBatchEmpty(t *testing.T) {
	service := NewIngestService(newMockMenuService())

	result, err := service.IngestBatch(context.Background(), domain.IngestBatchRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Succeeded) != 0 || len(result.Skipped) != 0 || len(result.Failed) != 0 {
		t.Errorf("empty batch must produce empty outcome lists: %+v", result)
	}
	if result.Succeeded == nil || result.Skipped == nil || result.Failed == nil {
		t.Error("outcome lists must be non-nil for JSON encoding")
	}
}
