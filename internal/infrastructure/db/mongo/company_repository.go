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

const collectionCompanies = "companies"

type CompanyRepository struct {
	col *mongo.Collection
	seq *sequence
}

func NewCompanyRepository(db *mongo.Database) *CompanyRepository {
	return &CompanyRepository{col: db.Collection(collectionCompanies), seq: newSequence(db, collectionCompanies)}
}

func (r *CompanyRepository) Create(ctx context.Context, c *domain.Company) (*domain.Company, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := r.seq.next(ctx)
	if err != nil {
		return nil, err
	}
	stored := *c
	stored.ID = id

	if _, err := r.col.InsertOne(ctx, &stored); err != nil {
		return nil, companyWriteError(err)
	}
	return &stored, nil
}

func (r *CompanyRepository) Update(ctx context.Context, c *domain.Company) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": c.ID}, c)
	if err != nil {
		return companyWriteError(err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *CompanyRepository) FindByID(ctx context.Context, id int64) (*domain.Company, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var c domain.Company
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *CompanyRepository) ExistsByRegistrationNumber(ctx context.Context, number string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, bson.M{"registration_number": number}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *CompanyRepository) List(ctx context.Context) ([]*domain.Company, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return findAll[domain.Company](ctx, r.col, bson.M{}, options.Find().SetSort(newestFirst))
}

// Search returns one page of matches plus the total match count.
func (r *CompanyRepository) Search(ctx context.Context, q ports.CompanySearch) ([]*domain.Company, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := companyFilter(q)
	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count companies: %w", err)
	}
	items, err := findAll[domain.Company](ctx, r.col, filter, pageOptions(q.PageRequest))
	if err != nil {
		return nil, 0, fmt.Errorf("search companies: %w", err)
	}
	return items, total, nil
}

func (r *CompanyRepository) Delete(ctx context.Context, id int64) error {
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

// EnsureIndexes creates the unique registration number index and the
// created_at index used for ordering.
func (r *CompanyRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "registration_number", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

func companyFilter(q ports.CompanySearch) bson.M {
	return containsFilter(map[string]string{
		"company_name":                  q.CompanyName,
		"registration_number":           q.RegistrationNumber,
		"details.city":                  q.City,
		"details.state":                 q.State,
		"details.primary_contact_email": q.PrimaryContactEmail,
	})
}

func companyWriteError(err error) error {
	if duplicateKeyOn(err, "registration_number") {
		return domain.Errorf(domain.ErrDuplicateRecord, "company with this registration number already exists")
	}
	return fmt.Errorf("write company: %w", err)
}
