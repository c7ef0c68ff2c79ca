package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"goahomes/api/internal/config"
	"goahomes/api/internal/email"
)

// Task types for admin/owner notifications.
const (
	TypeSubmissionReceived = "notify:submission_received"
	TypeSubmissionDecided  = "notify:submission_decided"
	TypeInquiryReceived    = "notify:inquiry_received"
)

// --- Task Client (Enqueuing tasks) ---

func NewClient(rdb *redis.Client) *asynq.Client {
	opt := rdb.Options()
	return asynq.NewClient(asynq.RedisClientOpt{
		Addr:     opt.Addr,
		Password: opt.Password,
		DB:       opt.DB,
	})
}

// SubmissionReceivedPayload notifies the admin that a new submission is
// waiting in the moderation queue.
type SubmissionReceivedPayload struct {
	SubmissionID string `json:"submission_id"`
	OwnerName    string `json:"owner_name"`
	Title        string `json:"title"`
	Location     string `json:"location"`
}

func NewSubmissionReceivedTask(p SubmissionReceivedPayload) (*asynq.Task, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal submission received payload: %w", err)
	}
	return asynq.NewTask(TypeSubmissionReceived, payload), nil
}

// SubmissionDecidedPayload notifies the property owner of the admin decision.
type SubmissionDecidedPayload struct {
	SubmissionID string `json:"submission_id"`
	OwnerName    string `json:"owner_name"`
	OwnerEmail   string `json:"owner_email"`
	Title        string `json:"title"`
	Status       string `json:"status"`
	AdminNotes   string `json:"admin_notes,omitempty"`
}

func NewSubmissionDecidedTask(p SubmissionDecidedPayload) (*asynq.Task, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal submission decided payload: %w", err)
	}
	return asynq.NewTask(TypeSubmissionDecided, payload), nil
}

// InquiryReceivedPayload notifies the admin that someone asked about a
// listing.
type InquiryReceivedPayload struct {
	InquiryID    string `json:"inquiry_id"`
	ListingID    string `json:"listing_id"`
	ListingTitle string `json:"listing_title"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone,omitempty"`
	Message      string `json:"message"`
}

func NewInquiryReceivedTask(p InquiryReceivedPayload) (*asynq.Task, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal inquiry received payload: %w", err)
	}
	return asynq.NewTask(TypeInquiryReceived, payload), nil
}

// --- Task Server (Processing tasks) ---

// TaskProcessor holds the dependencies needed by task handlers.
type TaskProcessor struct {
	cfg         *config.Config
	emailSender email.Sender
}

func NewTaskProcessor(cfg *config.Config, emailSender email.Sender) *TaskProcessor {
	return &TaskProcessor{cfg: cfg, emailSender: emailSender}
}

// SetupServer configures an Asynq server with the notification handlers
// registered. The caller runs srv.Run(mux) and owns the shutdown.
func SetupServer(rdb *redis.Client, processor *TaskProcessor) (*asynq.Server, *asynq.ServeMux) {
	opt := rdb.Options()
	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: opt.Addr, Password: opt.Password, DB: opt.DB},
		asynq.Config{
			Queues: map[string]int{
				"critical": 6,
				"default":  3,
				"low":      1,
			},
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				log.Printf("[Asynq Error] Task Type: %s, Payload: %s, Error: %v", task.Type(), string(task.Payload()), err)
			}),
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeSubmissionReceived, processor.HandleSubmissionReceivedTask)
	mux.HandleFunc(TypeSubmissionDecided, processor.HandleSubmissionDecidedTask)
	mux.HandleFunc(TypeInquiryReceived, processor.HandleInquiryReceivedTask)

	return srv, mux
}

// HandleSubmissionReceivedTask emails the admin about a new submission.
func (p *TaskProcessor) HandleSubmissionReceivedTask(ctx context.Context, t *asynq.Task) error {
	var payload SubmissionReceivedPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal submission received payload: %v: %w", err, asynq.SkipRetry)
	}

	subject := fmt.Sprintf("New property submission: %s", payload.Title)
	body := fmt.Sprintf(
		"%s submitted a new property for review.\n\nTitle: %s\nLocation: %s\nSubmission ID: %s\n",
		payload.OwnerName, payload.Title, payload.Location, payload.SubmissionID)

	return p.send(ctx, p.cfg.AdminNotifyTo, subject, body)
}

// HandleSubmissionDecidedTask emails the property owner about the decision.
func (p *TaskProcessor) HandleSubmissionDecidedTask(ctx context.Context, t *asynq.Task) error {
	var payload SubmissionDecidedPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal submission decided payload: %v: %w", err, asynq.SkipRetry)
	}

	subject := fmt.Sprintf("Your property submission has been %s", payload.Status)
	var sb strings.Builder
	fmt.Fprintf(&sb, "Hello %s,\n\nYour submission %q has been %s.\n", payload.OwnerName, payload.Title, payload.Status)
	if payload.AdminNotes != "" {
		fmt.Fprintf(&sb, "\nNotes from our team:\n%s\n", payload.AdminNotes)
	}

	return p.send(ctx, payload.OwnerEmail, subject, sb.String())
}

// HandleInquiryReceivedTask emails the admin about a listing inquiry.
func (p *TaskProcessor) HandleInquiryReceivedTask(ctx context.Context, t *asynq.Task) error {
	var payload InquiryReceivedPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal inquiry received payload: %v: %w", err, asynq.SkipRetry)
	}

	subject := fmt.Sprintf("New inquiry for %s", payload.ListingTitle)
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s <%s> asked about listing %s (%s):\n\n%s\n",
		payload.Name, payload.Email, payload.ListingTitle, payload.ListingID, payload.Message)
	if payload.Phone != "" {
		fmt.Fprintf(&sb, "\nPhone: %s\n", payload.Phone)
	}

	return p.send(ctx, p.cfg.AdminNotifyTo, subject, sb.String())
}

// send builds a raw plain-text message with headers and delivers it.
func (p *TaskProcessor) send(ctx context.Context, to, subject, body string) error {
	if to == "" {
		log.Printf("Notification target address not configured, dropping email %q", subject)
		return nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "To: %s\r\n", to)
	fmt.Fprintf(&sb, "From: %s\r\n", p.cfg.SmtpFromAddress)
	fmt.Fprintf(&sb, "Subject: %s\r\n", subject)
	sb.WriteString("Date: " + time.Now().Format(time.RFC1123Z) + "\r\n")
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	sb.WriteString("\r\n")
	sb.WriteString(body)
	sb.WriteString("\r\n")

	if err := p.emailSender.Send(ctx, []string{to}, subject, []byte(sb.String())); err != nil {
		return fmt.Errorf("failed to send notification email to %s: %w", to, err)
	}
	return nil
}
