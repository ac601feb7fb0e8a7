package settingsRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"seatwise/database"
	"seatwise/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no settings record exists for a site.
var ErrNotFound = errors.New("settings record not found")

// MongoSettingsRepo implements SettingsRepository using MongoDB.
type MongoSettingsRepo struct {
	coll *mongo.Collection
}

// NewMongoSettingsRepo constructs a new instance of MongoSettingsRepo.
func NewMongoSettingsRepo() SettingsRepository {
	db := database.MongoClient.Database("seatwise")
	return &MongoSettingsRepo{coll: db.Collection("settings")}
}

func (repo *MongoSettingsRepo) Get(ctx context.Context, siteID string) (*models.BookingSettings, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var settings models.BookingSettings
	filter := bson.M{"siteId": siteID}
	if err := repo.coll.FindOne(ctx, filter).Decode(&settings); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching settings for site %s: %w", siteID, err)
	}
	return &settings, nil
}

func (repo *MongoSettingsRepo) Upsert(ctx context.Context, settings *models.BookingSettings) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"siteId": settings.SiteID}
	opts := options.Replace().SetUpsert(true)
	if _, err := repo.coll.ReplaceOne(ctx, filter, settings, opts); err != nil {
		return fmt.Errorf("error upserting settings for site %s: %w", settings.SiteID, err)
	}
	return nil
}
