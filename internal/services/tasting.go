package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/winetasting-app/backend/internal/logger"
	"github.com/winetasting-app/backend/internal/models"
)

// ErrTastingNotFound covers both a missing tasting and a tasting owned
// by another user; ownership is enforced in the query itself.
var ErrTastingNotFound = errors.New("tasting not found")

// Default wine fields applied when a submission omits them.
const (
	defaultWineName   = "Unnamed wine"
	defaultWineType   = "Red"
	defaultWineRegion = "Unspecified"
	defaultNotes      = "Recorded via the tasting app"
)

// TastingReader defines read operations for tastings.
type TastingReader interface {
	GetByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*models.TastingDB, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.TastingDB, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)
	ListAll(ctx context.Context, limit, offset int) ([]models.TastingWithUser, error)
	CountAll(ctx context.Context) (int, error)
}

// TastingWriter defines write operations for tastings.
type TastingWriter interface {
	Save(ctx context.Context, t *models.TastingDB) (*models.TastingDB, error)
	DeleteByIDAndUser(ctx context.Context, id, userID uuid.UUID) (bool, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// TastingInput carries a tasting submission. Pointer fields distinguish
// omitted values, which get defaults, from explicit ones.
type TastingInput struct {
	BottleIdentifier *string
	WineName         *string
	WineType         *string
	Vintage          *int
	Region           *string
	AppearanceScore  *int
	AromaScore       *int
	TasteScore       *int
	FinishScore      *int
	FinalScore       float64
	Notes            *string
	TastingDate      *time.Time
}

// TastingService records and serves scored tastings.
type TastingService struct {
	reader      TastingReader
	writer      TastingWriter
	kafkaWriter KafkaWriter
}

// NewTastingService creates a new TastingService instance.
func NewTastingService(reader TastingReader, writer TastingWriter, kafkaWriter KafkaWriter) *TastingService {
	return &TastingService{
		reader:      reader,
		writer:      writer,
		kafkaWriter: kafkaWriter,
	}
}

// publishEvent publishes a tasting audit event to Kafka.
func (svc *TastingService) publishEvent(ctx context.Context, event models.TastingEvent) {
	if svc.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "tasting_id", event.TastingID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal tasting event for Kafka", "tasting_id", event.TastingID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := svc.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish tasting event to Kafka", "tasting_id", event.TastingID, "error", err)
	} else {
		logger.Log.Infow("Tasting event published to Kafka", "tasting_id", event.TastingID)
	}
}

func intOrDefault(v *int, def int) int {
	if v != nil {
		return *v
	}
	return def
}

func strOrDefault(v *string, def string) string {
	if v != nil && *v != "" {
		return *v
	}
	return def
}

// Create records a tasting for the user. Missing sub-scores default to
// the scale midpoint; missing wine fields get placeholder values. The
// final score is trusted as submitted and is not recomputed from the
// sub-scores.
func (svc *TastingService) Create(ctx context.Context, userID uuid.UUID, in TastingInput) (*models.TastingDB, error) {
	wineType := strOrDefault(in.WineType, defaultWineType)
	region := strOrDefault(in.Region, defaultWineRegion)
	notes := strOrDefault(in.Notes, defaultNotes)
	vintage := intOrDefault(in.Vintage, time.Now().Year())

	tasting := &models.TastingDB{
		UserID:           userID,
		BottleIdentifier: in.BottleIdentifier,
		WineName:         strOrDefault(in.WineName, defaultWineName),
		WineType:         &wineType,
		Vintage:          &vintage,
		Region:           &region,
		AppearanceScore:  intOrDefault(in.AppearanceScore, models.SubScoreDefault),
		AromaScore:       intOrDefault(in.AromaScore, models.SubScoreDefault),
		TasteScore:       intOrDefault(in.TasteScore, models.SubScoreDefault),
		FinishScore:      intOrDefault(in.FinishScore, models.SubScoreDefault),
		FinalScore:       in.FinalScore,
		Notes:            &notes,
		TastingDate:      time.Now(),
	}
	if in.TastingDate != nil {
		tasting.TastingDate = *in.TastingDate
	}

	saved, err := svc.writer.Save(ctx, tasting)
	if err != nil {
		logger.Log.Errorw("failed to save tasting", "user_id", userID, "err", err)
		return nil, err
	}

	svc.publishEvent(ctx, models.TastingEvent{
		EventID:    uuid.NewString(),
		Operation:  "tasting_created",
		TastingID:  saved.ID,
		UserID:     userID,
		WineName:   saved.WineName,
		FinalScore: saved.FinalScore,
		Timestamp:  time.Now().Unix(),
	})

	return saved, nil
}

// List returns one page of the user's tastings with the total count.
func (svc *TastingService) List(ctx context.Context, userID uuid.UUID, page, limit int) ([]models.TastingDB, int, error) {
	offset := (page - 1) * limit
	tastings, err := svc.reader.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		logger.Log.Errorw("failed to list tastings", "user_id", userID, "err", err)
		return nil, 0, err
	}
	total, err := svc.reader.CountByUser(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	return tastings, total, nil
}

// Get returns one of the user's tastings.
func (svc *TastingService) Get(ctx context.Context, id, userID uuid.UUID) (*models.TastingDB, error) {
	tasting, err := svc.reader.GetByIDAndUser(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if tasting == nil {
		return nil, ErrTastingNotFound
	}
	return tasting, nil
}

// Delete removes one of the user's tastings. A tasting owned by someone
// else reads as not found.
func (svc *TastingService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	deleted, err := svc.writer.DeleteByIDAndUser(ctx, id, userID)
	if err != nil {
		logger.Log.Errorw("failed to delete tasting", "tasting_id", id, "user_id", userID, "err", err)
		return err
	}
	if !deleted {
		return ErrTastingNotFound
	}
	return nil
}

// ListAll returns one page of every user's tastings for the arbiter.
func (svc *TastingService) ListAll(ctx context.Context, page, limit int) ([]models.TastingWithUser, int, error) {
	offset := (page - 1) * limit
	tastings, err := svc.reader.ListAll(ctx, limit, offset)
	if err != nil {
		logger.Log.Errorw("failed to list all tastings", "err", err)
		return nil, 0, err
	}
	total, err := svc.reader.CountAll(ctx)
	if err != nil {
		return nil, 0, err
	}
	return tastings, total, nil
}
