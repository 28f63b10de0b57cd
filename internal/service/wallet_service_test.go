package service

import (
	"context"
	"errors"
	"testing"

	"easydonate-payments/internal/core/domain"
	"easydonate-payments/internal/core/ports/mocks"
	"easydonate-payments/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newWalletFixture(t *testing.T) (*mocks.MockWalletLedger, *mocks.MockMomoGateway, *WalletServiceImpl) {
	ctrl := gomock.NewController(t)
	ledger := mocks.NewMockWalletLedger(ctrl)
	gateway := mocks.NewMockMomoGateway(ctrl)
	return ledger, gateway, NewWalletService(ledger, gateway, zerolog.Nop())
}

func TestWalletBalance_Passthrough(t *testing.T) {
	ledger, _, svc := newWalletFixture(t)
	ledger.EXPECT().Balance(gomock.Any()).Return(&domain.WalletBalance{
		Balance: decimal.NewFromInt(1234), Currency: "GHS",
	}, nil)

	balance, err := svc.Balance(context.Background())
	require.NoError(t, err)
	assert.True(t, balance.Balance.Equal(decimal.NewFromInt(1234)))
	assert.Equal(t, "GHS", balance.Currency)
}

func TestWalletStats_UpstreamFailure(t *testing.T) {
	ledger, _, svc := newWalletFixture(t)
	ledger.EXPECT().Stats(gomock.Any()).Return(nil, errors.New("connection refused"))

	_, err := svc.Stats(context.Background())

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "SYS_002", appErr.Code)
}

func TestWalletQuote_MatchesFeeCalculator(t *testing.T) {
	_, _, svc := newWalletFixture(t)

	q := svc.Quote(decimal.NewFromInt(1000))
	assert.True(t, q.Fee.Equal(decimal.NewFromInt(75)))
	assert.True(t, q.Net.Equal(decimal.NewFromInt(925)))
}

func TestWalletFeeRanges(t *testing.T) {
	_, _, svc := newWalletFixture(t)
	assert.Len(t, svc.FeeRanges(), 3)
}

func TestWalletNameEnquiry(t *testing.T) {
	_, gateway, svc := newWalletFixture(t)
	gateway.EXPECT().NameEnquiry(gomock.Any(), "0244000000", domain.CarrierMTN).Return("Kofi Boateng", nil)

	name, carrier, err := svc.NameEnquiry(context.Background(), "0244000000")
	require.NoError(t, err)
	assert.Equal(t, "Kofi Boateng", name)
	assert.Equal(t, domain.CarrierMTN, carrier)
}

func TestWalletNameEnquiry_UnknownCarrier(t *testing.T) {
	_, _, svc := newWalletFixture(t)

	_, _, err := svc.NameEnquiry(context.Background(), "0123456789")

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "WDR_002", appErr.Code)
}
