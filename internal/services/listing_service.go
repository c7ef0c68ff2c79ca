package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"regexp"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"goahomes/api/internal/config"
	"goahomes/api/internal/db"
	"goahomes/api/internal/errs"
	"goahomes/api/internal/models"
	"goahomes/api/internal/utils"
)

// IListingService defines the interface for catalog operations.
type IListingService interface {
	ListListings(ctx context.Context, query models.ListingQuery) (*models.PagedResult, error)
	FindListingByID(ctx context.Context, listingID utils.SixID) (*models.Listing, error)
	CreateListing(ctx context.Context, draft *models.ListingDraft) (*models.Listing, error)
	UpdateListing(ctx context.Context, listingID utils.SixID, draft *models.ListingDraft) (*models.Listing, error)
	DeleteListing(ctx context.Context, listingID utils.SixID) error
}

const listingsCollection = "listings"

type listingService struct {
	db  *mongo.Database
	cfg *config.Config
}

// NewListingService creates a new ListingService.
func NewListingService(db *mongo.Database, cfg *config.Config) IListingService {
	return &listingService{db: db, cfg: cfg}
}

// buildListingFilter translates a normalized query into a Mongo filter. All
// constraints are AND-composed.
func buildListingFilter(q models.ListingQuery) bson.M {
	filter := bson.M{}

	if q.TransactionKind != nil {
		filter["type"] = *q.TransactionKind
	}
	if q.Location != nil {
		// Case-insensitive substring match; quote the user input so regex
		// metacharacters cannot alter the query.
		filter["location"] = bson.M{"$regex": regexp.QuoteMeta(*q.Location), "$options": "i"}
	}
	if q.PropertyKind != nil {
		filter["property_type"] = bson.M{
			"$regex":   "^" + regexp.QuoteMeta(*q.PropertyKind) + "$",
			"$options": "i",
		}
	}
	if q.MinPrice != nil || q.MaxPrice != nil {
		price := bson.M{}
		if q.MinPrice != nil {
			price["$gte"] = *q.MinPrice
		}
		if q.MaxPrice != nil {
			price["$lte"] = *q.MaxPrice
		}
		filter["price"] = price
	}
	if q.MinBedrooms != nil {
		filter["bedrooms"] = bson.M{"$gte": *q.MinBedrooms}
	}
	if q.FeaturedOnly {
		filter["featured"] = true
	}

	return filter
}

// catalogSort is the canonical catalog ordering: featured listings first,
// then newest first, with _id as a stable tiebreak so paging never shows a
// listing twice or skips one when timestamps collide.
var catalogSort = bson.D{
	{Key: "featured", Value: -1},
	{Key: "created_at", Value: -1},
	{Key: "_id", Value: -1},
}

// ListListings runs a filtered, paginated catalog query. The count and the
// page fetch are issued concurrently; they may observe slightly different
// snapshots under concurrent writes, which is acceptable for a catalog.
func (s *listingService) ListListings(ctx context.Context, query models.ListingQuery) (*models.PagedResult, error) {
	collection := s.db.Collection(listingsCollection)
	filter := buildListingFilter(query)

	skip := int64(query.Page-1) * int64(query.PageSize)
	opts := options.Find().
		SetSort(catalogSort).
		SetSkip(skip).
		SetLimit(int64(query.PageSize))

	var (
		wg       sync.WaitGroup
		total    int64
		countErr error
		items    []models.Listing
		findErr  error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		total, countErr = collection.CountDocuments(ctx, filter)
	}()
	go func() {
		defer wg.Done()
		cursor, err := collection.Find(ctx, filter, opts)
		if err != nil {
			findErr = err
			return
		}
		defer cursor.Close(ctx)
		findErr = cursor.All(ctx, &items)
	}()
	wg.Wait()

	if countErr != nil {
		return nil, errs.WrapStore(fmt.Errorf("failed to count listings: %w", countErr))
	}
	if findErr != nil {
		return nil, errs.WrapStore(fmt.Errorf("failed to query listings: %w", findErr))
	}

	if items == nil {
		items = []models.Listing{}
	}

	return &models.PagedResult{
		Items:      items,
		TotalCount: total,
		Page:       query.Page,
		PageCount:  int(math.Ceil(float64(total) / float64(query.PageSize))),
	}, nil
}

// FindListingByID fetches a single listing.
func (s *listingService) FindListingByID(ctx context.Context, listingID utils.SixID) (*models.Listing, error) {
	var listing models.Listing
	err := s.db.Collection(listingsCollection).FindOne(ctx, bson.M{"_id": listingID}).Decode(&listing)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errs.NewNotFound("listing", listingID.String())
		}
		return nil, errs.WrapStore(fmt.Errorf("error finding listing %s: %w", listingID.String(), err))
	}
	return &listing, nil
}

// CreateListing validates a draft and inserts a new listing. The insert is
// retried on the (unlikely) random ID collision; a fresh ID is generated per
// attempt.
func (s *listingService) CreateListing(ctx context.Context, draft *models.ListingDraft) (*models.Listing, error) {
	if err := ValidateListingDraft(draft); err != nil {
		return nil, err
	}

	collection := s.db.Collection(listingsCollection)
	now := time.Now().UTC()

	var listing *models.Listing
	operation := func() error {
		listing = &models.Listing{
			Base:             models.NewBase(),
			Title:            draft.Title,
			Description:      draft.Description,
			Price:            draft.Price,
			Location:         draft.Location,
			TransactionKind:  draft.TransactionKind,
			PropertyKind:     draft.PropertyKind,
			Bedrooms:         draft.Bedrooms,
			Bathrooms:        draft.Bathrooms,
			AreaSqFt:         draft.AreaSqFt,
			Images:           emptyIfNil(draft.Images),
			Amenities:        emptyIfNil(draft.Amenities),
			Featured:         draft.Featured,
			VideoWalkthrough: draft.VideoWalkthrough,
			FloorPlan:        draft.FloorPlan,
			CreatedAt:        now,
			UpdatedAt:        now,
		}
		_, insertErr := collection.InsertOne(ctx, listing)
		return insertErr
	}

	if err := db.Try(operation); err != nil {
		return nil, errs.WrapStore(fmt.Errorf("failed to insert listing after retries: %w", err))
	}
	return listing, nil
}

// UpdateListing validates a draft and replaces the writable fields of an
// existing listing, returning the updated document.
func (s *listingService) UpdateListing(ctx context.Context, listingID utils.SixID, draft *models.ListingDraft) (*models.Listing, error) {
	if err := ValidateListingDraft(draft); err != nil {
		return nil, err
	}

	update := bson.M{"$set": bson.M{
		"title":             draft.Title,
		"description":       draft.Description,
		"price":             draft.Price,
		"location":          draft.Location,
		"type":              draft.TransactionKind,
		"property_type":     draft.PropertyKind,
		"bedrooms":          draft.Bedrooms,
		"bathrooms":         draft.Bathrooms,
		"area":              draft.AreaSqFt,
		"images":            emptyIfNil(draft.Images),
		"amenities":         emptyIfNil(draft.Amenities),
		"featured":          draft.Featured,
		"video_walkthrough": draft.VideoWalkthrough,
		"floor_plan":        draft.FloorPlan,
		"updated_at":        time.Now().UTC(),
	}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Listing
	err := s.db.Collection(listingsCollection).
		FindOneAndUpdate(ctx, bson.M{"_id": listingID}, update, opts).
		Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errs.NewNotFound("listing", listingID.String())
		}
		return nil, errs.WrapStore(fmt.Errorf("failed to update listing %s: %w", listingID.String(), err))
	}
	return &updated, nil
}

// DeleteListing removes a listing permanently.
func (s *listingService) DeleteListing(ctx context.Context, listingID utils.SixID) error {
	result, err := s.db.Collection(listingsCollection).DeleteOne(ctx, bson.M{"_id": listingID})
	if err != nil {
		return errs.WrapStore(fmt.Errorf("failed to delete listing %s: %w", listingID.String(), err))
	}
	if result.DeletedCount == 0 {
		return errs.NewNotFound("listing", listingID.String())
	}
	return nil
}

// emptyIfNil keeps array fields as [] rather than null in stored documents
// and JSON responses.
func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
