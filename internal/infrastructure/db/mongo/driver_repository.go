package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/driverportal/portal-api/internal/core/domain"
	"github.com/driverportal/portal-api/internal/core/ports"
)

const collectionDrivers = "drivers"

type DriverRepository struct {
	col *mongo.Collection
	seq *sequence
}

func NewDriverRepository(db *mongo.Database) *DriverRepository {
	return &DriverRepository{col: db.Collection(collectionDrivers), seq: newSequence(db, collectionDrivers)}
}

func (r *DriverRepository) Create(ctx context.Context, d *domain.Driver) (*domain.Driver, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := r.seq.next(ctx)
	if err != nil {
		return nil, err
	}
	stored := *d
	stored.ID = id

	if _, err := r.col.InsertOne(ctx, &stored); err != nil {
		return nil, driverWriteError(err)
	}
	return &stored, nil
}

func (r *DriverRepository) Update(ctx context.Context, d *domain.Driver) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": d.ID}, d)
	if err != nil {
		return driverWriteError(err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *DriverRepository) FindByID(ctx context.Context, id int64) (*domain.Driver, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var d domain.Driver
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

func (r *DriverRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, bson.M{"email": email})
}

func (r *DriverRepository) ExistsByLicenseNumber(ctx context.Context, number string) (bool, error) {
	return r.exists(ctx, bson.M{"license_number": number})
}

func (r *DriverRepository) exists(ctx context.Context, filter bson.M) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *DriverRepository) List(ctx context.Context) ([]*domain.Driver, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return findAll[domain.Driver](ctx, r.col, bson.M{}, options.Find().SetSort(newestFirst))
}

func (r *DriverRepository) Search(ctx context.Context, q ports.DriverSearch) ([]*domain.Driver, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := driverFilter(q)
	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count drivers: %w", err)
	}
	items, err := findAll[domain.Driver](ctx, r.col, filter, pageOptions(q.PageRequest))
	if err != nil {
		return nil, 0, fmt.Errorf("search drivers: %w", err)
	}
	return items, total, nil
}

func (r *DriverRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *DriverRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "license_number", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

func driverFilter(q ports.DriverSearch) bson.M {
	return containsFilter(map[string]string{
		"first_name":     q.FirstName,
		"last_name":      q.LastName,
		"email":          q.Email,
		"license_number": q.LicenseNumber,
		"details.city":   q.City,
		"details.state":  q.State,
	})
}

func driverWriteError(err error) error {
	switch {
	case duplicateKeyOn(err, "license_number"):
		return domain.Errorf(domain.ErrDuplicateRecord, "driver with this license number already exists")
	case duplicateKeyOn(err, "email"):
		return domain.Errorf(domain.ErrDuplicateRecord, "driver with this email already exists")
	}
	return fmt.Errorf("write driver: %w", err)
}
