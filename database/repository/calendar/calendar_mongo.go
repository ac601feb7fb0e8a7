package calendarRepo

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

// ErrDayNotFound is returned when no ledger exists for a (site, date).
var ErrDayNotFound = errors.New("calendar day not found")

// MongoCalendarRepo implements CalendarRepository using MongoDB. Bookings
// are embedded in the day document.
type MongoCalendarRepo struct {
	coll *mongo.Collection
}

// NewMongoCalendarRepo constructs a new instance of MongoCalendarRepo.
func NewMongoCalendarRepo() CalendarRepository {
	db := database.MongoClient.Database("seatwise")
	return &MongoCalendarRepo{coll: db.Collection("calendar_days")}
}

func (repo *MongoCalendarRepo) GetDay(ctx context.Context, siteID, date string) (*models.CalendarDay, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var day models.CalendarDay
	filter := bson.M{"siteId": siteID, "date": date}
	if err := repo.coll.FindOne(ctx, filter).Decode(&day); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrDayNotFound
		}
		return nil, fmt.Errorf("error fetching calendar day %s/%s: %w", siteID, date, err)
	}
	return &day, nil
}

func (repo *MongoCalendarRepo) UpsertDay(ctx context.Context, day *models.CalendarDay) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"siteId": day.SiteID, "date": day.Date}
	opts := options.Replace().SetUpsert(true)
	if _, err := repo.coll.ReplaceOne(ctx, filter, day, opts); err != nil {
		return fmt.Errorf("error upserting calendar day %s/%s: %w", day.SiteID, day.Date, err)
	}
	return nil
}

func (repo *MongoCalendarRepo) AppendBooking(ctx context.Context, siteID, date string, booking models.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"siteId": siteID, "date": date}
	update := bson.M{"$push": bson.M{"bookings": booking}}
	res, err := repo.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("error appending booking %s to day %s/%s: %w", booking.ID, siteID, date, err)
	}
	if res.MatchedCount == 0 {
		return ErrDayNotFound
	}
	return nil
}

func (repo *MongoCalendarRepo) SetBookingStatus(ctx context.Context, siteID, date, bookingID, status string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"siteId": siteID, "date": date, "bookings.id": bookingID}
	update := bson.M{"$set": bson.M{"bookings.$.status": status}}
	res, err := repo.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("error updating status of booking %s on day %s/%s: %w", bookingID, siteID, date, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("booking %s not found on day %s/%s", bookingID, siteID, date)
	}
	return nil
}
