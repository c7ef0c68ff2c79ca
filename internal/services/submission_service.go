package services

import (
	"context"
	"errors"
	"fmt"
	"math"
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

// ISubmissionService defines the interface for the moderation queue.
type ISubmissionService interface {
	CreateSubmission(ctx context.Context, draft *models.SubmissionDraft) (*models.Submission, error)
	ListSubmissions(ctx context.Context, status string, page, pageSize int) (*models.SubmissionPage, error)
	FindSubmissionByID(ctx context.Context, submissionID utils.SixID) (*models.Submission, error)
	DecideSubmission(ctx context.Context, submissionID utils.SixID, status, adminNotes string) (*models.Submission, error)
	PublishSubmission(ctx context.Context, submissionID utils.SixID) (*models.Listing, error)
	DeleteSubmission(ctx context.Context, submissionID utils.SixID) error
}

const submissionsCollection = "submissions"

type submissionService struct {
	db         *mongo.Database
	cfg        *config.Config
	listingSvc IListingService
}

// NewSubmissionService creates a new SubmissionService. The listing service
// is used to materialize approved submissions into catalog listings.
func NewSubmissionService(db *mongo.Database, cfg *config.Config, listingSvc IListingService) ISubmissionService {
	return &submissionService{db: db, cfg: cfg, listingSvc: listingSvc}
}

// CreateSubmission validates the public form and stores it as pending.
func (s *submissionService) CreateSubmission(ctx context.Context, draft *models.SubmissionDraft) (*models.Submission, error) {
	if err := ValidateSubmissionDraft(draft); err != nil {
		return nil, err
	}

	collection := s.db.Collection(submissionsCollection)
	now := time.Now().UTC()

	var submission *models.Submission
	operation := func() error {
		submission = &models.Submission{
			Base:            models.NewBase(),
			OwnerName:       draft.OwnerName,
			Email:           draft.Email,
			Phone:           draft.Phone,
			Title:           draft.Title,
			Description:     draft.Description,
			Location:        draft.Location,
			TransactionKind: draft.TransactionKind,
			PropertyKind:    draft.PropertyKind,
			Bedrooms:        draft.Bedrooms,
			Bathrooms:       draft.Bathrooms,
			AreaSqFt:        draft.AreaSqFt,
			Price:           draft.Price,
			Amenities:       emptyIfNil(draft.Amenities),
			Status:          models.SubmissionPending,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		_, insertErr := collection.InsertOne(ctx, submission)
		return insertErr
	}

	if err := db.Try(operation); err != nil {
		return nil, errs.WrapStore(fmt.Errorf("failed to insert submission after retries: %w", err))
	}
	return submission, nil
}

// ListSubmissions returns a page of the moderation queue, newest first.
// An empty status lists all submissions.
func (s *submissionService) ListSubmissions(ctx context.Context, status string, page, pageSize int) (*models.SubmissionPage, error) {
	defaultSize, maxSize := pageSizeBounds(s.cfg.DefaultPageSize, s.cfg.MaxPageSize)
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > maxSize {
		pageSize = defaultSize
	}

	filter := bson.M{}
	if status != "" {
		if !models.ValidSubmissionStatus(status) {
			return nil, errs.NewValidation(map[string]string{"status": "must be pending, approved or rejected"})
		}
		filter["status"] = status
	}

	collection := s.db.Collection(submissionsCollection)
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}).
		SetSkip(int64(page-1) * int64(pageSize)).
		SetLimit(int64(pageSize))

	var (
		wg       sync.WaitGroup
		total    int64
		countErr error
		items    []models.Submission
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
		return nil, errs.WrapStore(fmt.Errorf("failed to count submissions: %w", countErr))
	}
	if findErr != nil {
		return nil, errs.WrapStore(fmt.Errorf("failed to query submissions: %w", findErr))
	}
	if items == nil {
		items = []models.Submission{}
	}

	return &models.SubmissionPage{
		Items:      items,
		TotalCount: total,
		Page:       page,
		PageCount:  int(math.Ceil(float64(total) / float64(pageSize))),
	}, nil
}

// FindSubmissionByID fetches a single submission.
func (s *submissionService) FindSubmissionByID(ctx context.Context, submissionID utils.SixID) (*models.Submission, error) {
	var submission models.Submission
	err := s.db.Collection(submissionsCollection).FindOne(ctx, bson.M{"_id": submissionID}).Decode(&submission)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errs.NewNotFound("submission", submissionID.String())
		}
		return nil, errs.WrapStore(fmt.Errorf("error finding submission %s: %w", submissionID.String(), err))
	}
	return &submission, nil
}

// DecideSubmission records an admin decision. Any valid status may be set
// any number of times so moderation mistakes stay fixable; only publishing
// is one-shot.
func (s *submissionService) DecideSubmission(ctx context.Context, submissionID utils.SixID, status, adminNotes string) (*models.Submission, error) {
	if !models.ValidSubmissionStatus(status) {
		return nil, errs.NewValidation(map[string]string{"status": "must be pending, approved or rejected"})
	}

	update := bson.M{"$set": bson.M{
		"status":      status,
		"admin_notes": adminNotes,
		"updated_at":  time.Now().UTC(),
	}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Submission
	err := s.db.Collection(submissionsCollection).
		FindOneAndUpdate(ctx, bson.M{"_id": submissionID}, update, opts).
		Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errs.NewNotFound("submission", submissionID.String())
		}
		return nil, errs.WrapStore(fmt.Errorf("failed to decide submission %s: %w", submissionID.String(), err))
	}
	return &updated, nil
}

// PublishSubmission turns an approved submission into a catalog listing.
// The listing_id claim is a compare-and-set: the update matches only while
// listing_id is unset, so two concurrent publishes cannot both win. The
// loser gets a ConflictError.
func (s *submissionService) PublishSubmission(ctx context.Context, submissionID utils.SixID) (*models.Listing, error) {
	submission, err := s.FindSubmissionByID(ctx, submissionID)
	if err != nil {
		return nil, err
	}
	if submission.Status != models.SubmissionApproved {
		return nil, errs.NewConflict(fmt.Sprintf("submission %s is %s, only approved submissions can be published", submissionID.String(), submission.Status))
	}
	if submission.ListingID != nil {
		return nil, errs.NewConflict(fmt.Sprintf("submission %s is already published as listing %s", submissionID.String(), submission.ListingID.String()))
	}

	listing, err := s.listingSvc.CreateListing(ctx, &models.ListingDraft{
		Title:           submission.Title,
		Description:     submission.Description,
		Price:           submission.Price,
		Location:        submission.Location,
		TransactionKind: submission.TransactionKind,
		PropertyKind:    submission.PropertyKind,
		Bedrooms:        submission.Bedrooms,
		Bathrooms:       submission.Bathrooms,
		AreaSqFt:        submission.AreaSqFt,
		Amenities:       submission.Amenities,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create listing for submission %s: %w", submissionID.String(), err)
	}

	filter := bson.M{
		"_id":        submissionID,
		"status":     models.SubmissionApproved,
		"listing_id": bson.M{"$exists": false},
	}
	update := bson.M{"$set": bson.M{
		"listing_id": listing.ID,
		"updated_at": time.Now().UTC(),
	}}

	result, err := s.db.Collection(submissionsCollection).UpdateOne(ctx, filter, update)
	if err != nil {
		// The listing was created but not claimed; remove it so a retry
		// starts clean.
		_ = s.listingSvc.DeleteListing(ctx, listing.ID)
		return nil, errs.WrapStore(fmt.Errorf("failed to mark submission %s published: %w", submissionID.String(), err))
	}
	if result.MatchedCount == 0 {
		// Lost the race: another publish claimed it, or the decision changed
		// underneath us.
		_ = s.listingSvc.DeleteListing(ctx, listing.ID)
		return nil, errs.NewConflict(fmt.Sprintf("submission %s was published or re-decided concurrently", submissionID.String()))
	}

	return listing, nil
}

// DeleteSubmission removes a submission permanently. Published listings are
// untouched; they have their own lifecycle once created.
func (s *submissionService) DeleteSubmission(ctx context.Context, submissionID utils.SixID) error {
	result, err := s.db.Collection(submissionsCollection).DeleteOne(ctx, bson.M{"_id": submissionID})
	if err != nil {
		return errs.WrapStore(fmt.Errorf("failed to delete submission %s: %w", submissionID.String(), err))
	}
	if result.DeletedCount == 0 {
		return errs.NewNotFound("submission", submissionID.String())
	}
	return nil
}
