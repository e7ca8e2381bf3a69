package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"medifind/internal/domain/entity"
	domainerrors "medifind/internal/domain/errors"
	"medifind/internal/domain/repository"
	mockRepo "medifind/internal/mocks/repository"
	"medifind/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// messageServiceFixtures holds all test dependencies for message service tests.
type messageServiceFixtures struct {
	service      usecase.MessageUsecase
	messageRepo  *mockRepo.MockMessageRepository
	pharmacyRepo *mockRepo.MockPharmacyRepository
	userRepo     *mockRepo.MockUserRepository
}

func createTestMessageService(t *testing.T) messageServiceFixtures {
	messageRepo := mockRepo.NewMockMessageRepository(t)
	pharmacyRepo := mockRepo.NewMockPharmacyRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewMessageService(MessageServiceParams{
		MessageRepo:  messageRepo,
		PharmacyRepo: pharmacyRepo,
		UserRepo:     userRepo,
		Logger:       logger,
	})

	return messageServiceFixtures{
		service:      service,
		messageRepo:  messageRepo,
		pharmacyRepo: pharmacyRepo,
		userRepo:     userRepo,
	}
}

func TestMessageService_Send_Success(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	userID := uuid.New()
	pharmacyID := uuid.New()

	fx.pharmacyRepo.EXPECT().
		FindByID(ctx, pharmacyID).
		Return(&entity.Pharmacy{ID: pharmacyID}, nil)

	fx.messageRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Message")).
		Run(func(ctx context.Context, message *entity.Message) {
			message.ID = uuid.New()
		}).
		Return(nil)

	message, err := fx.service.Send(ctx, userID, &usecase.SendMessageInput{
		PharmacyID: pharmacyID,
		Subject:    "Stock question",
		Body:       "Do you carry amoxicillin?",
	})

	require.NoError(t, err)
	assert.Equal(t, userID, message.UserID)
	assert.Equal(t, pharmacyID, message.PharmacyID)
	assert.False(t, message.IsReply)
	assert.Nil(t, message.ParentID)
}

func TestMessageService_Send_PharmacyNotFound(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	pharmacyID := uuid.New()

	fx.pharmacyRepo.EXPECT().
		FindByID(ctx, pharmacyID).
		Return(nil, repository.ErrPharmacyNotFound)

	message, err := fx.service.Send(ctx, uuid.New(), &usecase.SendMessageInput{
		PharmacyID: pharmacyID,
		Body:       "hello",
	})

	require.Error(t, err)
	assert.Nil(t, message)
	assert.True(t, errors.Is(err, domainerrors.ErrPharmacyNotFound))
}

func TestMessageService_Reply_Success(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	pharmacyUserID := uuid.New()
	pharmacy := &entity.Pharmacy{ID: uuid.New(), UserID: pharmacyUserID}
	patientID := uuid.New()
	parent := &entity.Message{
		ID:         uuid.New(),
		UserID:     patientID,
		PharmacyID: pharmacy.ID,
		Subject:    "Stock question",
		SentAt:     time.Now().Add(-time.Hour),
	}

	fx.pharmacyRepo.EXPECT().FindByUserID(ctx, pharmacyUserID).Return(pharmacy, nil)
	fx.messageRepo.EXPECT().FindByID(ctx, parent.ID).Return(parent, nil)
	fx.messageRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Message")).
		Return(nil)

	reply, err := fx.service.Reply(ctx, pharmacyUserID, &usecase.ReplyMessageInput{
		ParentID: parent.ID,
		Body:     "Yes, in stock.",
	})

	require.NoError(t, err)
	assert.True(t, reply.IsReply)
	assert.Equal(t, patientID, reply.UserID)
	assert.Equal(t, "Re: Stock question", reply.Subject)
	require.NotNil(t, reply.ParentID)
	assert.Equal(t, parent.ID, *reply.ParentID)
}

func TestMessageService_ReplyAsPatient_Success(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	patientID := uuid.New()
	parent := &entity.Message{
		ID:         uuid.New(),
		UserID:     patientID,
		PharmacyID: uuid.New(),
		Subject:    "Re: Stock question",
		SentAt:     time.Now().Add(-time.Hour),
		IsReply:    true,
	}

	fx.messageRepo.EXPECT().FindByID(ctx, parent.ID).Return(parent, nil)
	fx.messageRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Message")).
		Return(nil)

	reply, err := fx.service.ReplyAsPatient(ctx, patientID, &usecase.ReplyMessageInput{
		ParentID: parent.ID,
		Body:     "  Great, I'll come by today.  ",
	})

	require.NoError(t, err)
	assert.True(t, reply.IsReply)
	assert.Equal(t, parent.PharmacyID, reply.PharmacyID)
	// The prefix is not stacked on replies to replies.
	assert.Equal(t, "Re: Stock question", reply.Subject)
	assert.Equal(t, "Great, I'll come by today.", reply.Body)
}

func TestMessageService_ReplyAsPatient_SomeoneElsesConversation(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	parent := &entity.Message{
		ID:         uuid.New(),
		UserID:     uuid.New(), // another patient's conversation
		PharmacyID: uuid.New(),
	}

	fx.messageRepo.EXPECT().FindByID(ctx, parent.ID).Return(parent, nil)

	reply, err := fx.service.ReplyAsPatient(ctx, uuid.New(), &usecase.ReplyMessageInput{
		ParentID: parent.ID,
		Body:     "should not be sent",
	})

	require.Error(t, err)
	assert.Nil(t, reply)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestMessageService_Reply_OtherPharmacysMessage(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	pharmacyUserID := uuid.New()
	pharmacy := &entity.Pharmacy{ID: uuid.New(), UserID: pharmacyUserID}
	parent := &entity.Message{
		ID:         uuid.New(),
		UserID:     uuid.New(),
		PharmacyID: uuid.New(), // addressed to some other pharmacy
	}

	fx.pharmacyRepo.EXPECT().FindByUserID(ctx, pharmacyUserID).Return(pharmacy, nil)
	fx.messageRepo.EXPECT().FindByID(ctx, parent.ID).Return(parent, nil)

	// Only a party to the parent may reply.
	reply, err := fx.service.Reply(ctx, pharmacyUserID, &usecase.ReplyMessageInput{
		ParentID: parent.ID,
		Body:     "should not be sent",
	})

	require.Error(t, err)
	assert.Nil(t, reply)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestMessageService_PatientInbox_GroupsByPharmacy(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	userID := uuid.New()
	pharmacyA := &entity.Pharmacy{ID: uuid.New(), Name: "Pharmacy A"}
	pharmacyB := &entity.Pharmacy{ID: uuid.New(), Name: "Pharmacy B"}

	messages := []*entity.Message{
		{ID: uuid.New(), UserID: userID, PharmacyID: pharmacyA.ID, SentAt: time.Now().Add(-3 * time.Hour)},
		{ID: uuid.New(), UserID: userID, PharmacyID: pharmacyB.ID, SentAt: time.Now().Add(-2 * time.Hour)},
		{ID: uuid.New(), UserID: userID, PharmacyID: pharmacyA.ID, SentAt: time.Now().Add(-time.Hour), IsReply: true},
	}

	fx.messageRepo.EXPECT().FindByUser(ctx, userID, true).Return(messages, nil)
	fx.pharmacyRepo.EXPECT().FindByID(ctx, pharmacyA.ID).Return(pharmacyA, nil)
	fx.pharmacyRepo.EXPECT().FindByID(ctx, pharmacyB.ID).Return(pharmacyB, nil)

	threads, err := fx.service.PatientInbox(ctx, userID)

	require.NoError(t, err)
	require.Len(t, threads, 2)
	assert.Equal(t, "Pharmacy A", threads[0].CounterpartyName)
	assert.Len(t, threads[0].Messages, 2)
	assert.Equal(t, "Pharmacy B", threads[1].CounterpartyName)
	assert.Len(t, threads[1].Messages, 1)
}

func TestMessageService_PharmacyInbox_GroupsByPatient(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	pharmacyUserID := uuid.New()
	pharmacy := &entity.Pharmacy{ID: uuid.New(), UserID: pharmacyUserID}
	patient := &entity.User{ID: uuid.New(), Username: "ama"}

	messages := []*entity.Message{
		{ID: uuid.New(), UserID: patient.ID, PharmacyID: pharmacy.ID, SentAt: time.Now().Add(-time.Hour)},
		{ID: uuid.New(), UserID: patient.ID, PharmacyID: pharmacy.ID, SentAt: time.Now()},
	}

	fx.pharmacyRepo.EXPECT().FindByUserID(ctx, pharmacyUserID).Return(pharmacy, nil)
	fx.messageRepo.EXPECT().FindByPharmacy(ctx, pharmacy.ID, true).Return(messages, nil)
	fx.userRepo.EXPECT().FindByID(ctx, patient.ID).Return(patient, nil)

	threads, err := fx.service.PharmacyInbox(ctx, pharmacyUserID)

	require.NoError(t, err)
	require.Len(t, threads, 1)
	assert.Equal(t, "ama", threads[0].CounterpartyName)
	assert.Len(t, threads[0].Messages, 2)
}

func TestMessageService_PatientMessages_SentOnly(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	userID := uuid.New()
	sent := []*entity.Message{
		{ID: uuid.New(), UserID: userID, PharmacyID: uuid.New(), SentAt: time.Now().Add(-time.Hour)},
	}

	fx.messageRepo.EXPECT().FindByUser(ctx, userID, false).Return(sent, nil)

	messages, err := fx.service.PatientMessages(ctx, userID, false)

	require.NoError(t, err)
	assert.Equal(t, sent, messages)
}

func TestMessageService_PharmacyMessages_FullHistory(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	pharmacyUserID := uuid.New()
	pharmacy := &entity.Pharmacy{ID: uuid.New(), UserID: pharmacyUserID}
	history := []*entity.Message{
		{ID: uuid.New(), UserID: uuid.New(), PharmacyID: pharmacy.ID},
		{ID: uuid.New(), UserID: uuid.New(), PharmacyID: pharmacy.ID, IsReply: true},
	}

	fx.pharmacyRepo.EXPECT().FindByUserID(ctx, pharmacyUserID).Return(pharmacy, nil)
	fx.messageRepo.EXPECT().FindByPharmacy(ctx, pharmacy.ID, true).Return(history, nil)

	messages, err := fx.service.PharmacyMessages(ctx, pharmacyUserID, true)

	require.NoError(t, err)
	assert.Equal(t, history, messages)
}

func TestMessageService_MarkPatientMessageRead_Success(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	userID := uuid.New()
	messageID := uuid.New()

	fx.messageRepo.EXPECT().MarkReadForUser(ctx, messageID, userID).Return(nil)

	err := fx.service.MarkPatientMessageRead(ctx, userID, messageID)

	require.NoError(t, err)
}

func TestMessageService_MarkPatientMessageRead_NotInMailbox(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	userID := uuid.New()
	messageID := uuid.New()

	fx.messageRepo.EXPECT().
		MarkReadForUser(ctx, messageID, userID).
		Return(repository.ErrMessageNotFound)

	err := fx.service.MarkPatientMessageRead(ctx, userID, messageID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrMessageNotFound))
}

func TestMessageService_MarkPharmacyMessageRead_ScopedToOwnPharmacy(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	pharmacyUserID := uuid.New()
	pharmacy := &entity.Pharmacy{ID: uuid.New(), UserID: pharmacyUserID}
	messageID := uuid.New()

	fx.pharmacyRepo.EXPECT().FindByUserID(ctx, pharmacyUserID).Return(pharmacy, nil)
	fx.messageRepo.EXPECT().
		MarkReadForPharmacy(ctx, messageID, pharmacy.ID).
		Return(repository.ErrMessageNotFound)

	err := fx.service.MarkPharmacyMessageRead(ctx, pharmacyUserID, messageID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrMessageNotFound))
}

func TestMessageService_MarkPharmacyRead_NoPharmacyProfile(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	pharmacyUserID := uuid.New()

	fx.pharmacyRepo.EXPECT().
		FindByUserID(ctx, pharmacyUserID).
		Return(nil, repository.ErrPharmacyNotFound)

	err := fx.service.MarkPharmacyRead(ctx, pharmacyUserID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPharmacyNotFound))
}
