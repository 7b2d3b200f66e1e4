package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/winetasting-app/backend/internal/models"
	"github.com/winetasting-app/backend/internal/services"
)

func TestTastingService_Create_AppliesDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := services.NewMockTastingReader(ctrl)
	writer := services.NewMockTastingWriter(ctrl)
	kafkaWriter := services.NewMockKafkaWriter(ctrl)
	svc := services.NewTastingService(reader, writer, kafkaWriter)

	userID := uuid.New()
	var saved *models.TastingDB

	writer.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in *models.TastingDB) (*models.TastingDB, error) {
			saved = in
			out := *in
			out.ID = uuid.New()
			return &out, nil
		})
	kafkaWriter.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

	tasting, err := svc.Create(context.Background(), userID, services.TastingInput{FinalScore: 17.5})
	assert.NoError(t, err)

	assert.Equal(t, "Unnamed wine", saved.WineName)
	assert.Equal(t, "Red", *saved.WineType)
	assert.Equal(t, time.Now().Year(), *saved.Vintage)
	assert.Equal(t, "Unspecified", *saved.Region)
	assert.Equal(t, models.SubScoreDefault, saved.AppearanceScore)
	assert.Equal(t, models.SubScoreDefault, saved.AromaScore)
	assert.Equal(t, models.SubScoreDefault, saved.TasteScore)
	assert.Equal(t, models.SubScoreDefault, saved.FinishScore)
	assert.Equal(t, 17.5, tasting.FinalScore)
}

func TestTastingService_Create_KeepsExplicitFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := services.NewMockTastingReader(ctrl)
	writer := services.NewMockTastingWriter(ctrl)
	// No Kafka writer configured: publishing is skipped, not an error.
	svc := services.NewTastingService(reader, writer, nil)

	userID := uuid.New()
	name := "Château Margaux"
	wineType := "red"
	vintage := 2015
	appearance := 5

	writer.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in *models.TastingDB) (*models.TastingDB, error) {
			assert.Equal(t, name, in.WineName)
			assert.Equal(t, wineType, *in.WineType)
			assert.Equal(t, vintage, *in.Vintage)
			assert.Equal(t, appearance, in.AppearanceScore)
			out := *in
			out.ID = uuid.New()
			return &out, nil
		})

	_, err := svc.Create(context.Background(), userID, services.TastingInput{
		WineName:        &name,
		WineType:        &wineType,
		Vintage:         &vintage,
		AppearanceScore: &appearance,
		FinalScore:      19.0,
	})
	assert.NoError(t, err)
}

func TestTastingService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := services.NewMockTastingReader(ctrl)
	writer := services.NewMockTastingWriter(ctrl)
	svc := services.NewTastingService(reader, writer, nil)

	id := uuid.New()
	owner := uuid.New()
	stranger := uuid.New()

	writer.EXPECT().DeleteByIDAndUser(gomock.Any(), id, owner).Return(true, nil)
	assert.NoError(t, svc.Delete(context.Background(), id, owner))

	// Someone else's tasting reads as not found.
	writer.EXPECT().DeleteByIDAndUser(gomock.Any(), id, stranger).Return(false, nil)
	assert.ErrorIs(t, svc.Delete(context.Background(), id, stranger), services.ErrTastingNotFound)
}

func TestTastingService_Get_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := services.NewMockTastingReader(ctrl)
	writer := services.NewMockTastingWriter(ctrl)
	svc := services.NewTastingService(reader, writer, nil)

	id := uuid.New()
	userID := uuid.New()
	reader.EXPECT().GetByIDAndUser(gomock.Any(), id, userID).Return(nil, nil)

	_, err := svc.Get(context.Background(), id, userID)
	assert.ErrorIs(t, err, services.ErrTastingNotFound)
}

func TestTastingService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := services.NewMockTastingReader(ctrl)
	writer := services.NewMockTastingWriter(ctrl)
	svc := services.NewTastingService(reader, writer, nil)

	userID := uuid.New()
	reader.EXPECT().ListByUser(gomock.Any(), userID, 20, 20).
		Return([]models.TastingDB{{UserID: userID}}, nil)
	reader.EXPECT().CountByUser(gomock.Any(), userID).Return(41, nil)

	tastings, total, err := svc.List(context.Background(), userID, 2, 20)
	assert.NoError(t, err)
	assert.Len(t, tastings, 1)
	assert.Equal(t, 41, total)
}
