package db

import (
	"context"
	"errors"
	"time"

	"lapillo/config"
	"lapillo/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned by lookup helpers when no document matches.
var ErrNotFound = errors.New("not found")

// Database holds the process-wide Mongo client and one handle per collection.
// It is built once at startup and injected into the handler constructors.
type Database struct {
	Client *mongo.Client
	mdb    *mongo.Database

	Properties      *mongo.Collection
	Beaches         *mongo.Collection
	Restaurants     *mongo.Collection
	Experiences     *mongo.Collection
	Rentals         *mongo.Collection
	MapInfo         *mongo.Collection
	Transports      *mongo.Collection
	LocalEvents     *mongo.Collection
	NightlifeEvents *mongo.Collection
	Troubleshooting *mongo.Collection
	Supermarket     *mongo.Collection

	RentalBookings       *mongo.Collection
	BeachBookings        *mongo.Collection
	RestaurantBookings   *mongo.Collection
	ExperienceBookings   *mongo.Collection
	NightlifeBookings    *mongo.Collection
	TransportRequests    *mongo.Collection
	SupportTickets       *mongo.Collection
	ExtraServiceRequests *mongo.Collection

	GuestBookings *mongo.Collection
	Admins        *mongo.Collection
}

// Connect opens the Mongo client and binds the collection handles.
func Connect(ctx context.Context, cfg *config.Config) (*Database, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURL))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	mdb := client.Database(cfg.DBName)
	d := &Database{
		Client: client,
		mdb:    mdb,

		Properties:      mdb.Collection("properties"),
		Beaches:         mdb.Collection("beaches"),
		Restaurants:     mdb.Collection("restaurants"),
		Experiences:     mdb.Collection("experiences"),
		Rentals:         mdb.Collection("rentals"),
		MapInfo:         mdb.Collection("map_info"),
		Transports:      mdb.Collection("transports"),
		LocalEvents:     mdb.Collection("local_events"),
		NightlifeEvents: mdb.Collection("nightlife_events"),
		Troubleshooting: mdb.Collection("troubleshooting"),
		Supermarket:     mdb.Collection("supermarket"),

		RentalBookings:       mdb.Collection("rental_bookings"),
		BeachBookings:        mdb.Collection("beach_bookings"),
		RestaurantBookings:   mdb.Collection("restaurant_bookings"),
		ExperienceBookings:   mdb.Collection("experience_bookings"),
		NightlifeBookings:    mdb.Collection("nightlife_bookings"),
		TransportRequests:    mdb.Collection("transport_requests"),
		SupportTickets:       mdb.Collection("support_tickets"),
		ExtraServiceRequests: mdb.Collection("extra_service_requests"),

		GuestBookings: mdb.Collection("guest_bookings"),
		Admins:        mdb.Collection("admins"),
	}
	return d, nil
}

// EnsureIndexes creates the unique secondary indexes the lookups rely on.
func (d *Database) EnsureIndexes(ctx context.Context) error {
	specs := []struct {
		coll *mongo.Collection
		key  string
	}{
		{d.Properties, "slug"},
		{d.GuestBookings, "token"},
		{d.Admins, "email"},
	}
	for _, s := range specs {
		_, err := s.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: s.key, Value: 1}},
			Options: options.Index().SetUnique(true),
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// Collection resolves a handle by its storage name. Nil-safe so handlers can
// be constructed against a zero-value Database in tests.
func (d *Database) Collection(name string) *mongo.Collection {
	if d.mdb == nil {
		return nil
	}
	return d.mdb.Collection(name)
}

func (d *Database) Close(ctx context.Context) error {
	return d.Client.Disconnect(ctx)
}

// AdminByID resolves an admin document for the auth middleware.
func (d *Database) AdminByID(ctx context.Context, id string) (models.AdminUser, error) {
	return d.findAdmin(ctx, bson.M{"id": id})
}

// AdminByEmail resolves an admin document for login.
func (d *Database) AdminByEmail(ctx context.Context, email string) (models.AdminUser, error) {
	return d.findAdmin(ctx, bson.M{"email": email})
}

func (d *Database) findAdmin(ctx context.Context, filter bson.M) (models.AdminUser, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var admin models.AdminUser
	err := d.Admins.FindOne(ctx, filter).Decode(&admin)
	if err == mongo.ErrNoDocuments {
		return admin, ErrNotFound
	}
	return admin, err
}
