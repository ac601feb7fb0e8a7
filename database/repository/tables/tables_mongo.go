package tablesRepo

import (
	"context"
	"fmt"
	"time"

	"seatwise/database"
	"seatwise/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoTableRepo implements TableRepository using MongoDB.
type MongoTableRepo struct {
	coll *mongo.Collection
}

// NewMongoTableRepo constructs a new instance of MongoTableRepo.
func NewMongoTableRepo() TableRepository {
	db := database.MongoClient.Database("seatwise")
	return &MongoTableRepo{coll: db.Collection("tables")}
}

func (repo *MongoTableRepo) ListBySite(ctx context.Context, siteID string) ([]models.Table, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := repo.coll.Find(ctx, bson.M{"siteId": siteID})
	if err != nil {
		return nil, fmt.Errorf("error listing tables for site %s: %w", siteID, err)
	}
	defer cursor.Close(ctx)

	var tables []models.Table
	for cursor.Next(ctx) {
		var t models.Table
		if err := cursor.Decode(&t); err != nil {
			return nil, fmt.Errorf("error decoding table: %w", err)
		}
		tables = append(tables, t)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return tables, nil
}

func (repo *MongoTableRepo) Upsert(ctx context.Context, table *models.Table) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"siteId": table.SiteID, "tableId": table.TableID}
	opts := options.Replace().SetUpsert(true)
	if _, err := repo.coll.ReplaceOne(ctx, filter, table, opts); err != nil {
		return fmt.Errorf("error upserting table %s for site %s: %w", table.TableID, table.SiteID, err)
	}
	return nil
}
