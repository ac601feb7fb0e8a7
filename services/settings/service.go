package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	settingsRepo "seatwise/database/repository/settings"
	"seatwise/models"
	"seatwise/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// DefaultSettingsService is the production implementation backed by the
// settings repository, with a Redis snapshot cache in front of reads.
type DefaultSettingsService struct {
	Repo     settingsRepo.SettingsRepository
	Cache    *redis.Client // nil disables snapshot caching
	CacheTTL time.Duration
}

// Initialize creates the settings record for a site with defaults: a full
// open day on 30-minute slots, 90-minute seatings, and every capacity rule
// switched off. Idempotent; an existing record is returned untouched.
func (s *DefaultSettingsService) Initialize(ctx context.Context, siteID string) (*models.BookingSettings, error) {
	if siteID == "" {
		return nil, newValidationError("siteId", "must not be empty")
	}
	existing, err := s.Repo.Get(ctx, siteID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, settingsRepo.ErrNotFound) {
		return nil, fmt.Errorf("failed to check settings for site %s: %w", siteID, err)
	}

	record := &models.BookingSettings{
		SiteID:            siteID,
		OpenTime:          0,
		CloseTime:         24 * 60,
		SlotInterval:      30,
		PacingWindowSlots: 1,
		DefaultDuration:   90,
	}
	if err := s.Repo.Upsert(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create settings for site %s: %w", siteID, err)
	}
	s.invalidate(ctx, siteID)
	return record, nil
}

// Update merges only the supplied patch fields into the stored record.
// The whole patch is validated against the merged result first; a rejected
// patch leaves the record exactly as it was.
func (s *DefaultSettingsService) Update(ctx context.Context, siteID string, patch models.SettingsPatch) (*models.BookingSettings, error) {
	current, err := s.Repo.Get(ctx, siteID)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrNotFound) {
			return nil, fmt.Errorf("site %s: %w", siteID, ErrNotInitialized)
		}
		return nil, fmt.Errorf("failed to load settings for site %s: %w", siteID, err)
	}

	merged := *current
	applyPatch(&merged, patch)
	if err := validate(&merged); err != nil {
		return nil, err
	}

	// Keep meal periods in start-time order; first match wins at
	// resolution time.
	sort.SliceStable(merged.MealPeriods, func(i, j int) bool {
		return merged.MealPeriods[i].StartTime < merged.MealPeriods[j].StartTime
	})

	if err := s.Repo.Upsert(ctx, &merged); err != nil {
		return nil, fmt.Errorf("failed to store settings for site %s: %w", siteID, err)
	}
	s.invalidate(ctx, siteID)
	return &merged, nil
}

// Get returns the current settings snapshot for a site.
func (s *DefaultSettingsService) Get(ctx context.Context, siteID string) (*models.BookingSettings, error) {
	if cached := s.fromCache(ctx, siteID); cached != nil {
		return cached, nil
	}

	record, err := s.Repo.Get(ctx, siteID)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrNotFound) {
			return nil, fmt.Errorf("site %s: %w", siteID, ErrNotInitialized)
		}
		return nil, fmt.Errorf("failed to load settings for site %s: %w", siteID, err)
	}
	s.toCache(ctx, record)
	return record, nil
}

func applyPatch(dst *models.BookingSettings, patch models.SettingsPatch) {
	if patch.OpenTime != nil {
		dst.OpenTime = *patch.OpenTime
	}
	if patch.CloseTime != nil {
		dst.CloseTime = *patch.CloseTime
	}
	if patch.SlotInterval != nil {
		dst.SlotInterval = *patch.SlotInterval
	}
	if patch.LastSeatingOffset != nil {
		dst.LastSeatingOffset = *patch.LastSeatingOffset
	}
	if patch.MinLeadTimeHours != nil {
		dst.MinLeadTimeHours = *patch.MinLeadTimeHours
	}
	if patch.MaxCoversPerInterval != nil {
		dst.MaxCoversPerInterval = *patch.MaxCoversPerInterval
	}
	if patch.PacingWindowSlots != nil {
		dst.PacingWindowSlots = *patch.PacingWindowSlots
	}
	if patch.MaxBookingsPerSlot != nil {
		dst.MaxBookingsPerSlot = *patch.MaxBookingsPerSlot
	}
	if patch.WalkInHoldbackPercent != nil {
		dst.WalkInHoldbackPercent = *patch.WalkInHoldbackPercent
	}
	if patch.DefaultDuration != nil {
		dst.DefaultDuration = *patch.DefaultDuration
	}
	if patch.ChannelQuotas != nil {
		dst.ChannelQuotas = *patch.ChannelQuotas
	}
	if patch.MealPeriods != nil {
		dst.MealPeriods = *patch.MealPeriods
	}
}

func validate(s *models.BookingSettings) error {
	if s.OpenTime < 0 || s.OpenTime > 24*60 {
		return newValidationError("openTime", "must be within 0..1440 minutes")
	}
	if s.CloseTime < 0 || s.CloseTime > 24*60 {
		return newValidationError("closeTime", "must be within 0..1440 minutes")
	}
	if s.OpenTime > s.CloseTime {
		return newValidationError("openTime", "must not be after closeTime")
	}
	if s.SlotInterval <= 0 {
		return newValidationError("slotInterval", "must be positive")
	}
	if s.LastSeatingOffset < 0 {
		return newValidationError("lastSeatingOffset", "must not be negative")
	}
	if s.MinLeadTimeHours < 0 {
		return newValidationError("minLeadTimeHours", "must not be negative")
	}
	if s.MaxCoversPerInterval < 0 {
		return newValidationError("maxCoversPerInterval", "must not be negative")
	}
	if s.PacingWindowSlots < 1 {
		return newValidationError("pacingWindowSlots", "must be at least 1")
	}
	if s.MaxBookingsPerSlot < 0 {
		return newValidationError("maxBookingsPerSlot", "must not be negative")
	}
	if s.WalkInHoldbackPercent < 0 || s.WalkInHoldbackPercent > 100 {
		return newValidationError("walkInHoldbackPercent", "must be within 0..100")
	}
	if s.DefaultDuration <= 0 {
		return newValidationError("defaultDuration", "must be positive")
	}
	seen := make(map[string]bool, len(s.ChannelQuotas))
	for _, q := range s.ChannelQuotas {
		if q.Source == "" {
			return newValidationError("channelQuotas.source", "must not be empty")
		}
		if q.MaxCoversPerDay < 0 {
			return newValidationError("channelQuotas.maxCoversPerDay", "must not be negative")
		}
		if seen[q.Source] {
			return newValidationError("channelQuotas.source", fmt.Sprintf("duplicate quota for source %q", q.Source))
		}
		seen[q.Source] = true
	}
	for _, p := range s.MealPeriods {
		if p.Name == "" {
			return newValidationError("mealPeriods.name", "must not be empty")
		}
		if p.StartTime < 0 || p.EndTime > 24*60 || p.StartTime >= p.EndTime {
			return newValidationError("mealPeriods", fmt.Sprintf("period %q has an invalid time window", p.Name))
		}
		if p.DefaultDuration <= 0 {
			return newValidationError("mealPeriods.defaultDuration", fmt.Sprintf("period %q must have a positive duration", p.Name))
		}
		if p.LastSeatingOffset != nil && *p.LastSeatingOffset < 0 {
			return newValidationError("mealPeriods.lastSeatingOffset", fmt.Sprintf("period %q must not have a negative offset", p.Name))
		}
	}
	return nil
}

func (s *DefaultSettingsService) cacheKey(siteID string) string {
	return utils.SettingsCachePrefix + siteID
}

func (s *DefaultSettingsService) fromCache(ctx context.Context, siteID string) *models.BookingSettings {
	if s.Cache == nil {
		return nil
	}
	data, err := s.Cache.Get(ctx, s.cacheKey(siteID)).Result()
	if err != nil {
		return nil
	}
	var record models.BookingSettings
	if err := json.Unmarshal([]byte(data), &record); err != nil {
		utils.GetLogger().Warn("discarding unreadable settings cache entry",
			zap.String("siteId", siteID), zap.Error(err))
		return nil
	}
	return &record
}

func (s *DefaultSettingsService) toCache(ctx context.Context, record *models.BookingSettings) {
	if s.Cache == nil {
		return
	}
	data, err := json.Marshal(record)
	if err != nil {
		return
	}
	ttl := s.CacheTTL
	if ttl <= 0 {
		ttl = utils.SettingsCacheTTL
	}
	if err := s.Cache.Set(ctx, s.cacheKey(record.SiteID), data, ttl).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache settings snapshot",
			zap.String("siteId", record.SiteID), zap.Error(err))
	}
}

func (s *DefaultSettingsService) invalidate(ctx context.Context, siteID string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, s.cacheKey(siteID)).Err(); err != nil {
		utils.GetLogger().Warn("failed to invalidate settings cache",
			zap.String("siteId", siteID), zap.Error(err))
	}
}
