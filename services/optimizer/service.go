package optimizer

import (
	"context"
	"fmt"
	"sort"
	"sync"

	tablesRepo "seatwise/database/repository/tables"
	"seatwise/models"
	"seatwise/utils"

	"go.uber.org/zap"
)

// siteActor exclusively owns one site's table registry. All operations
// serialize through its request channel; different sites run in parallel.
type siteActor struct {
	registry map[string]models.Table
	requests chan func(map[string]models.Table)
	done     chan struct{}
}

func newSiteActor(registry map[string]models.Table) *siteActor {
	a := &siteActor{
		registry: registry,
		requests: make(chan func(map[string]models.Table), 16),
		done:     make(chan struct{}),
	}
	go a.run()
	return a
}

func (a *siteActor) run() {
	for fn := range a.requests {
		fn(a.registry)
	}
	close(a.done)
}

func (a *siteActor) do(ctx context.Context, fn func(map[string]models.Table)) error {
	executed := make(chan struct{})
	wrapped := func(registry map[string]models.Table) {
		fn(registry)
		close(executed)
	}
	select {
	case a.requests <- wrapped:
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case <-executed:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (a *siteActor) stop() {
	close(a.requests)
	<-a.done
}

// DefaultOptimizerService is the production implementation. The repository
// hydrates a site's registry on Initialize and journals registrations; the
// combination search itself runs purely in memory.
type DefaultOptimizerService struct {
	Repo tablesRepo.TableRepository

	mu     sync.RWMutex
	actors map[string]*siteActor
}

func (s *DefaultOptimizerService) actor(siteID string) (*siteActor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.actors[siteID]
	if !ok {
		return nil, fmt.Errorf("site %s: %w", siteID, ErrNotInitialized)
	}
	return a, nil
}

// Initialize spawns the site's registry actor, hydrated from the table
// repository. Idempotent.
func (s *DefaultOptimizerService) Initialize(ctx context.Context, siteID string) error {
	if siteID == "" {
		return newValidationError("siteId", "must not be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.actors == nil {
		s.actors = make(map[string]*siteActor)
	}
	if _, ok := s.actors[siteID]; ok {
		return nil
	}

	stored, err := s.Repo.ListBySite(ctx, siteID)
	if err != nil {
		return fmt.Errorf("failed to hydrate table registry for site %s: %w", siteID, err)
	}
	registry := make(map[string]models.Table, len(stored))
	for _, t := range stored {
		registry[t.TableID] = t
	}

	s.actors[siteID] = newSiteActor(registry)
	return nil
}

// RegisterTable upserts a table's attributes by ID. Re-registering an
// existing ID replaces it wholesale.
func (s *DefaultOptimizerService) RegisterTable(ctx context.Context, siteID string, table models.Table) error {
	if table.TableID == "" {
		return newValidationError("tableId", "must not be empty")
	}
	if table.MinCapacity < 1 {
		return newValidationError("minCapacity", "must be at least 1")
	}
	if table.MinCapacity > table.MaxCapacity {
		return newValidationError("minCapacity", "must not exceed maxCapacity")
	}
	// Zero means no combination size limit.
	if table.MaxCombinationSize < 0 {
		return newValidationError("maxCombinationSize", "must not be negative")
	}
	table.SiteID = siteID

	a, err := s.actor(siteID)
	if err != nil {
		return err
	}
	if err := a.do(ctx, func(registry map[string]models.Table) {
		registry[table.TableID] = table
	}); err != nil {
		return err
	}

	if err := s.Repo.Upsert(ctx, &table); err != nil {
		utils.GetLogger().Warn("failed to journal table registration",
			zap.String("siteId", siteID), zap.String("tableId", table.TableID), zap.Error(err))
	}
	return nil
}

// GetRegisteredTableIDs returns the registered table IDs in sorted order.
func (s *DefaultOptimizerService) GetRegisteredTableIDs(ctx context.Context, siteID string) ([]string, error) {
	a, err := s.actor(siteID)
	if err != nil {
		return nil, err
	}
	var ids []string
	if err := a.do(ctx, func(registry map[string]models.Table) {
		for id := range registry {
			ids = append(ids, id)
		}
	}); err != nil {
		return nil, err
	}
	sort.Strings(ids)
	return ids, nil
}

// GetRecommendations runs both assignment passes for the request. An empty
// result with Success=false means no table arrangement can seat the party;
// it is a normal outcome, not an error.
func (s *DefaultOptimizerService) GetRecommendations(ctx context.Context, siteID string, req models.AssignmentRequest) (*models.RecommendationResult, error) {
	if req.PartySize < 1 {
		return nil, newValidationError("partySize", "must be at least 1")
	}
	a, err := s.actor(siteID)
	if err != nil {
		return nil, err
	}

	var result models.RecommendationResult
	if err := a.do(ctx, func(registry map[string]models.Table) {
		result = recommend(registry, req.PartySize)
	}); err != nil {
		return nil, err
	}
	utils.RecommendationRequests.Inc()
	return &result, nil
}

// Stop drains every site actor. Called on shutdown.
func (s *DefaultOptimizerService) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.actors {
		a.stop()
	}
	s.actors = nil
}
