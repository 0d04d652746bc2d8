package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/iho/bankmatch/internal/domain"
	"github.com/iho/bankmatch/internal/usecase"
	"github.com/iho/bankmatch/internal/usecase/mocks"
)

func TestMatchUseCase_MatchTransaction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tx := domain.Transaction{ID: "1001", Amount: decimal.NewFromInt(-50)}
	attachments := []domain.Attachment{
		{ID: "2001", Kind: domain.KindReceipt, Amount: decimal.NewFromInt(50)},
	}

	attRepo := mocks.NewMockAttachmentRepository(ctrl)
	attRepo.EXPECT().List(gomock.Any()).Return(attachments, nil)

	matcher := mocks.NewMockMatcher(ctrl)
	matcher.EXPECT().FindAttachment(tx, attachments).Return(&attachments[0])

	recorder := mocks.NewMockMatchRecorder(ctrl)
	recorder.EXPECT().RecordMatch(usecase.DirectionFindAttachment, usecase.OutcomeMatched)

	uc := usecase.NewMatchUseCase(nil, attRepo, matcher, recorder)

	match, err := uc.MatchTransaction(context.Background(), tx)
	require.NoError(t, err)
	require.NotNil(t, match)
	assert.Equal(t, "2001", match.ID)
}

func TestMatchUseCase_MatchTransactionNoMatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tx := domain.Transaction{ID: "1001", Amount: decimal.NewFromInt(-50)}

	attRepo := mocks.NewMockAttachmentRepository(ctrl)
	attRepo.EXPECT().List(gomock.Any()).Return(nil, nil)

	matcher := mocks.NewMockMatcher(ctrl)
	matcher.EXPECT().FindAttachment(tx, gomock.Any()).Return(nil)

	recorder := mocks.NewMockMatchRecorder(ctrl)
	recorder.EXPECT().RecordMatch(usecase.DirectionFindAttachment, usecase.OutcomeNoMatch)

	uc := usecase.NewMatchUseCase(nil, attRepo, matcher, recorder)

	match, err := uc.MatchTransaction(context.Background(), tx)
	require.NoError(t, err)
	assert.Nil(t, match)
}

func TestMatchUseCase_MatchTransactionRepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	attRepo := mocks.NewMockAttachmentRepository(ctrl)
	attRepo.EXPECT().List(gomock.Any()).Return(nil, errors.New("fixture unreadable"))

	uc := usecase.NewMatchUseCase(nil, attRepo, mocks.NewMockMatcher(ctrl), nil)

	_, err := uc.MatchTransaction(context.Background(), domain.Transaction{ID: "1001"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load attachments")
}

func TestMatchUseCase_MatchAttachmentByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	att := domain.Attachment{ID: "2001", Kind: domain.KindSalesInvoice, Amount: decimal.NewFromInt(250)}
	transactions := []domain.Transaction{
		{ID: "1001", Amount: decimal.NewFromInt(250)},
	}

	attRepo := mocks.NewMockAttachmentRepository(ctrl)
	attRepo.EXPECT().GetByID(gomock.Any(), "2001").Return(&att, nil)

	txRepo := mocks.NewMockTransactionRepository(ctrl)
	txRepo.EXPECT().List(gomock.Any()).Return(transactions, nil)

	matcher := mocks.NewMockMatcher(ctrl)
	matcher.EXPECT().FindTransaction(att, transactions).Return(&transactions[0])

	uc := usecase.NewMatchUseCase(txRepo, attRepo, matcher, nil)

	match, err := uc.MatchAttachmentByID(context.Background(), "2001")
	require.NoError(t, err)
	require.NotNil(t, match)
	assert.Equal(t, "1001", match.ID)
}

func TestMatchUseCase_MatchAttachmentByIDNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	attRepo := mocks.NewMockAttachmentRepository(ctrl)
	attRepo.EXPECT().GetByID(gomock.Any(), "missing").Return(nil, domain.ErrAttachmentNotFound)

	uc := usecase.NewMatchUseCase(nil, attRepo, mocks.NewMockMatcher(ctrl), nil)

	_, err := uc.MatchAttachmentByID(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrAttachmentNotFound)
}
