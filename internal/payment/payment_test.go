package payment

import (
	"bytes"
	"context"
	"testing"
	"time"

	"resto-pos/internal/model"
	"resto-pos/internal/store"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURI(t *testing.T) {
	tests := []struct {
		name      string
		payeeID   string
		payeeName string
		amount    float64
		note      string
		want      string
	}{
		{
			name:      "basic request with default note",
			payeeID:   "payee@bank",
			payeeName: "Kerala Veg Restaurant",
			amount:    185,
			want:      "upi://pay?pa=payee%40bank&pn=Kerala%20Veg%20Restaurant&am=185.00&cu=INR&tn=Restaurant%20Order",
		},
		{
			name:      "fractional amount keeps two decimals",
			payeeID:   "payee@bank",
			payeeName: "Cafe",
			amount:    99.5,
			note:      "Table 4",
			want:      "upi://pay?pa=payee%40bank&pn=Cafe&am=99.50&cu=INR&tn=Table%204",
		},
		{
			name:      "reserved characters are percent-encoded",
			payeeID:   "a&b@bank",
			payeeName: "R&B Foods",
			amount:    10,
			note:      "snacks & chai",
			want:      "upi://pay?pa=a%26b%40bank&pn=R%26B%20Foods&am=10.00&cu=INR&tn=snacks%20%26%20chai",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, URI(tt.payeeID, tt.payeeName, tt.amount, tt.note))
		})
	}
}

func TestQRCodePNG(t *testing.T) {
	png, err := QRCodePNG(URI("payee@bank", "Cafe", 42, ""), 256)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))
}

func TestSession_OrderHandOff(t *testing.T) {
	ctx := context.Background()
	s := NewSession(store.NewMemoryStore(), zerolog.Nop())

	// Nothing stashed yet.
	order, err := s.TakeOrder(ctx)
	require.NoError(t, err)
	assert.Nil(t, order)

	stashed := &model.Order{
		ID:            "o-1",
		Items:         []model.CartLine{{ItemID: "item-1", Name: "Dosa", Price: 40, Quantity: 2}},
		Total:         80,
		Timestamp:     time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Status:        model.StatusPending,
		PaymentStatus: model.PaymentPending,
	}
	require.NoError(t, s.StashOrder(ctx, stashed))

	got, err := s.TakeOrder(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, stashed.ID, got.ID)
	assert.Equal(t, stashed.Total, got.Total)
	assert.Len(t, got.Items, 1)

	// Take clears the stash.
	again, err := s.TakeOrder(ctx)
	require.NoError(t, err)
	assert.Nil(t, again)
}

func TestSession_OrderIDHandOff(t *testing.T) {
	ctx := context.Background()
	s := NewSession(store.NewMemoryStore(), zerolog.Nop())

	_, ok, err := s.TakeOrderID(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.StashOrderID(ctx, "o-42"))

	id, ok, err := s.TakeOrderID(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "o-42", id)

	_, ok, err = s.TakeOrderID(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}
