package handlers_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"goahomes/api/internal/models"
	"goahomes/api/internal/utils"
)

// --- Mocks ---

// MockListingService implements services.IListingService.
type MockListingService struct {
	mock.Mock
}

func (m *MockListingService) ListListings(ctx context.Context, query models.ListingQuery) (*models.PagedResult, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PagedResult), args.Error(1)
}

func (m *MockListingService) FindListingByID(ctx context.Context, listingID utils.SixID) (*models.Listing, error) {
	args := m.Called(ctx, listingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Listing), args.Error(1)
}

func (m *MockListingService) CreateListing(ctx context.Context, draft *models.ListingDraft) (*models.Listing, error) {
	args := m.Called(ctx, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Listing), args.Error(1)
}

func (m *MockListingService) UpdateListing(ctx context.Context, listingID utils.SixID, draft *models.ListingDraft) (*models.Listing, error) {
	args := m.Called(ctx, listingID, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Listing), args.Error(1)
}

func (m *MockListingService) DeleteListing(ctx context.Context, listingID utils.SixID) error {
	args := m.Called(ctx, listingID)
	return args.Error(0)
}

// MockSubmissionService implements services.ISubmissionService.
type MockSubmissionService struct {
	mock.Mock
}

func (m *MockSubmissionService) CreateSubmission(ctx context.Context, draft *models.SubmissionDraft) (*models.Submission, error) {
	args := m.Called(ctx, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Submission), args.Error(1)
}

func (m *MockSubmissionService) ListSubmissions(ctx context.Context, status string, page, pageSize int) (*models.SubmissionPage, error) {
	args := m.Called(ctx, status, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SubmissionPage), args.Error(1)
}

func (m *MockSubmissionService) FindSubmissionByID(ctx context.Context, submissionID utils.SixID) (*models.Submission, error) {
	args := m.Called(ctx, submissionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Submission), args.Error(1)
}

func (m *MockSubmissionService) DecideSubmission(ctx context.Context, submissionID utils.SixID, status, adminNotes string) (*models.Submission, error) {
	args := m.Called(ctx, submissionID, status, adminNotes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Submission), args.Error(1)
}

func (m *MockSubmissionService) PublishSubmission(ctx context.Context, submissionID utils.SixID) (*models.Listing, error) {
	args := m.Called(ctx, submissionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Listing), args.Error(1)
}

func (m *MockSubmissionService) DeleteSubmission(ctx context.Context, submissionID utils.SixID) error {
	args := m.Called(ctx, submissionID)
	return args.Error(0)
}

// MockInquiryService implements services.IInquiryService.
type MockInquiryService struct {
	mock.Mock
}

func (m *MockInquiryService) CreateInquiry(ctx context.Context, listingID utils.SixID, draft *models.InquiryDraft) (*models.Inquiry, error) {
	args := m.Called(ctx, listingID, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Inquiry), args.Error(1)
}

// MockS3Storage implements storage.IS3Storage.
type MockS3Storage struct {
	mock.Mock
}

func (m *MockS3Storage) GeneratePresignedPutURL(ctx context.Context, filename, contentType string) (string, string, error) {
	args := m.Called(ctx, filename, contentType)
	return args.String(0), args.String(1), args.Error(2)
}
