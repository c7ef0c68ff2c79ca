package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"goahomes/api/internal/config"
	"goahomes/api/internal/db"
	"goahomes/api/internal/errs"
	"goahomes/api/internal/models"
	"goahomes/api/internal/tasks"
	"goahomes/api/internal/utils"
)

// IInquiryService defines the interface for listing inquiries.
type IInquiryService interface {
	CreateInquiry(ctx context.Context, listingID utils.SixID, draft *models.InquiryDraft) (*models.Inquiry, error)
}

const inquiriesCollection = "inquiries"

type inquiryService struct {
	db         *mongo.Database
	cfg        *config.Config
	listingSvc IListingService
	taskClient *asynq.Client
}

// NewInquiryService creates a new InquiryService. taskClient may be nil, in
// which case the admin notification is skipped (test runs).
func NewInquiryService(db *mongo.Database, cfg *config.Config, listingSvc IListingService, taskClient *asynq.Client) IInquiryService {
	return &inquiryService{db: db, cfg: cfg, listingSvc: listingSvc, taskClient: taskClient}
}

// CreateInquiry records a question about a listing and queues the admin
// notification. The listing must exist.
func (s *inquiryService) CreateInquiry(ctx context.Context, listingID utils.SixID, draft *models.InquiryDraft) (*models.Inquiry, error) {
	fields := map[string]string{}
	if strings.TrimSpace(draft.Name) == "" {
		fields["name"] = "is required"
	}
	if !strings.Contains(draft.Email, "@") {
		fields["email"] = "must be a valid email address"
	}
	if strings.TrimSpace(draft.Message) == "" {
		fields["message"] = "is required"
	}
	if len(fields) > 0 {
		return nil, errs.NewValidation(fields)
	}

	listing, err := s.listingSvc.FindListingByID(ctx, listingID)
	if err != nil {
		return nil, err
	}

	collection := s.db.Collection(inquiriesCollection)
	var inquiry *models.Inquiry
	operation := func() error {
		inquiry = &models.Inquiry{
			Base:      models.NewBase(),
			ListingID: listingID,
			Name:      draft.Name,
			Email:     draft.Email,
			Phone:     draft.Phone,
			Message:   draft.Message,
			CreatedAt: time.Now().UTC(),
		}
		_, insertErr := collection.InsertOne(ctx, inquiry)
		return insertErr
	}
	if err := db.Try(operation); err != nil {
		return nil, errs.WrapStore(fmt.Errorf("failed to insert inquiry after retries: %w", err))
	}

	if s.taskClient != nil {
		task, err := tasks.NewInquiryReceivedTask(tasks.InquiryReceivedPayload{
			InquiryID:    inquiry.ID.String(),
			ListingID:    listingID.String(),
			ListingTitle: listing.Title,
			Name:         inquiry.Name,
			Email:        inquiry.Email,
			Phone:        inquiry.Phone,
			Message:      inquiry.Message,
		})
		if err == nil {
			_, err = s.taskClient.EnqueueContext(ctx, task)
		}
		if err != nil {
			// The inquiry is stored; a lost notification is not worth
			// failing the request over.
			log.Printf("Failed to enqueue inquiry notification for %s: %v", inquiry.ID.String(), err)
		} else {
			inquiry.Notified = true
			_, _ = collection.UpdateOne(ctx, bson.M{"_id": inquiry.ID},
				bson.M{"$set": bson.M{"notified": true}})
		}
	}

	return inquiry, nil
}
