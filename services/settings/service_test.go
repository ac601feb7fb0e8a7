package settings

import (
	"context"
	"sync"
	"testing"

	settingsRepo "seatwise/database/repository/settings"
	"seatwise/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSettingsRepo keeps settings documents in memory.
type fakeSettingsRepo struct {
	mu      sync.Mutex
	records map[string]models.BookingSettings
}

func newFakeSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{records: make(map[string]models.BookingSettings)}
}

func (r *fakeSettingsRepo) Get(_ context.Context, siteID string) (*models.BookingSettings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	record, ok := r.records[siteID]
	if !ok {
		return nil, settingsRepo.ErrNotFound
	}
	return &record, nil
}

func (r *fakeSettingsRepo) Upsert(_ context.Context, settings *models.BookingSettings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[settings.SiteID] = *settings
	return nil
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestInitializeDefaults(t *testing.T) {
	svc := &DefaultSettingsService{Repo: newFakeSettingsRepo()}
	ctx := context.Background()

	record, err := svc.Initialize(ctx, "site-1")
	require.NoError(t, err)
	assert.Equal(t, 0, record.OpenTime)
	assert.Equal(t, 1440, record.CloseTime)
	assert.Equal(t, 30, record.SlotInterval)
	assert.Equal(t, 1, record.PacingWindowSlots)
	assert.Equal(t, 90, record.DefaultDuration)
	assert.Zero(t, record.MinLeadTimeHours)
	assert.Zero(t, record.MaxCoversPerInterval)
	assert.Zero(t, record.MaxBookingsPerSlot)
	assert.Empty(t, record.ChannelQuotas)
	assert.Empty(t, record.MealPeriods)
}

func TestInitializeIsIdempotent(t *testing.T) {
	svc := &DefaultSettingsService{Repo: newFakeSettingsRepo()}
	ctx := context.Background()

	_, err := svc.Initialize(ctx, "site-1")
	require.NoError(t, err)
	_, err = svc.Update(ctx, "site-1", models.SettingsPatch{MaxCoversPerInterval: intPtr(40)})
	require.NoError(t, err)

	record, err := svc.Initialize(ctx, "site-1")
	require.NoError(t, err)
	assert.Equal(t, 40, record.MaxCoversPerInterval, "re-initializing must not reset a configured site")
}

func TestGetBeforeInitialize(t *testing.T) {
	svc := &DefaultSettingsService{Repo: newFakeSettingsRepo()}
	_, err := svc.Get(context.Background(), "ghost")
	require.ErrorIs(t, err, ErrNotInitialized)
}

func TestUpdateBeforeInitialize(t *testing.T) {
	svc := &DefaultSettingsService{Repo: newFakeSettingsRepo()}
	_, err := svc.Update(context.Background(), "ghost", models.SettingsPatch{SlotInterval: intPtr(15)})
	require.ErrorIs(t, err, ErrNotInitialized)
}

func TestPatchMergesOnlySuppliedFields(t *testing.T) {
	svc := &DefaultSettingsService{Repo: newFakeSettingsRepo()}
	ctx := context.Background()
	_, err := svc.Initialize(ctx, "site-1")
	require.NoError(t, err)

	_, err = svc.Update(ctx, "site-1", models.SettingsPatch{
		OpenTime:  intPtr(18 * 60),
		CloseTime: intPtr(22 * 60),
	})
	require.NoError(t, err)

	record, err := svc.Update(ctx, "site-1", models.SettingsPatch{
		MinLeadTimeHours: floatPtr(1.5),
	})
	require.NoError(t, err)

	assert.Equal(t, 18*60, record.OpenTime, "earlier values survive an unrelated patch")
	assert.Equal(t, 22*60, record.CloseTime)
	assert.Equal(t, 1.5, record.MinLeadTimeHours)
	assert.Equal(t, 30, record.SlotInterval, "untouched default survives")
}

func TestInvalidPatchRejectedAtomically(t *testing.T) {
	svc := &DefaultSettingsService{Repo: newFakeSettingsRepo()}
	ctx := context.Background()
	_, err := svc.Initialize(ctx, "site-1")
	require.NoError(t, err)

	cases := []models.SettingsPatch{
		{SlotInterval: intPtr(0)},
		{SlotInterval: intPtr(-15)},
		{LastSeatingOffset: intPtr(-1)},
		{MinLeadTimeHours: floatPtr(-0.5)},
		{WalkInHoldbackPercent: intPtr(101)},
		{WalkInHoldbackPercent: intPtr(-1)},
		{PacingWindowSlots: intPtr(0)},
		{OpenTime: intPtr(23 * 60), CloseTime: intPtr(18 * 60)},
		{OpenTime: intPtr(-10)},
		{CloseTime: intPtr(1500)},
		{DefaultDuration: intPtr(0)},
		{ChannelQuotas: &[]models.ChannelQuota{{Source: "", MaxCoversPerDay: 10}}},
		{ChannelQuotas: &[]models.ChannelQuota{
			{Source: "web", MaxCoversPerDay: 10},
			{Source: "web", MaxCoversPerDay: 20},
		}},
		{MealPeriods: &[]models.MealPeriod{{Name: "Lunch", StartTime: 900, EndTime: 660, DefaultDuration: 60}}},
		{MealPeriods: &[]models.MealPeriod{{Name: "Lunch", StartTime: 660, EndTime: 900, DefaultDuration: 0}}},
	}

	for _, patch := range cases {
		_, err := svc.Update(ctx, "site-1", patch)
		require.Error(t, err)
		var vErr *ValidationError
		assert.ErrorAs(t, err, &vErr)
	}

	record, err := svc.Get(ctx, "site-1")
	require.NoError(t, err)
	assert.Equal(t, 30, record.SlotInterval, "rejected patches leave prior state untouched")
	assert.Equal(t, 0, record.OpenTime)
	assert.Empty(t, record.ChannelQuotas)
}

func TestMealPeriodsNormalizedToStartOrder(t *testing.T) {
	svc := &DefaultSettingsService{Repo: newFakeSettingsRepo()}
	ctx := context.Background()
	_, err := svc.Initialize(ctx, "site-1")
	require.NoError(t, err)

	record, err := svc.Update(ctx, "site-1", models.SettingsPatch{
		MealPeriods: &[]models.MealPeriod{
			{Name: "Dinner", StartTime: 17 * 60, EndTime: 22 * 60, DefaultDuration: 120},
			{Name: "Lunch", StartTime: 11 * 60, EndTime: 15 * 60, DefaultDuration: 60},
		},
	})
	require.NoError(t, err)
	require.Len(t, record.MealPeriods, 2)
	assert.Equal(t, "Lunch", record.MealPeriods[0].Name)
	assert.Equal(t, "Dinner", record.MealPeriods[1].Name)
}

func TestQuotaLookup(t *testing.T) {
	svc := &DefaultSettingsService{Repo: newFakeSettingsRepo()}
	ctx := context.Background()
	_, err := svc.Initialize(ctx, "site-1")
	require.NoError(t, err)

	record, err := svc.Update(ctx, "site-1", models.SettingsPatch{
		ChannelQuotas: &[]models.ChannelQuota{
			{Source: "opentable", MaxCoversPerDay: 20, Priority: 1},
		},
	})
	require.NoError(t, err)

	quota, ok := record.QuotaFor("opentable")
	require.True(t, ok)
	assert.Equal(t, 20, quota.MaxCoversPerDay)
	_, ok = record.QuotaFor("web")
	assert.False(t, ok)
}
