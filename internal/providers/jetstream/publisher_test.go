package jetstream_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steel-suvidha/marketplace-api/internal/adapter"
	"github.com/steel-suvidha/marketplace-api/internal/domain"
	"github.com/steel-suvidha/marketplace-api/internal/logger"
	"github.com/steel-suvidha/marketplace-api/internal/mocks"
	jspublisher "github.com/steel-suvidha/marketplace-api/internal/providers/jetstream"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func testConfig() jspublisher.Config {
	return jspublisher.Config{
		URL:            "nats://localhost:4222",
		StreamName:     "MARKET_EVENTS",
		SubjectPrefix:  "market",
		MaxReconnects:  3,
		ReconnectWait:  time.Second,
		ConnectionName: "test",
	}
}

func TestNewPublisher(t *testing.T) {
	t.Run("ensures the stream", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		natsJS := mocks.NewMockNatsJetStream(ctrl)
		nc := mocks.NewMockNatsConn(ctrl)
		js := mocks.NewMockJetStream(ctrl)

		natsJS.EXPECT().Connect("nats://localhost:4222", gomock.Any()).Return(nc, js, nil)
		js.EXPECT().EnsureStream(gomock.Any(), "MARKET_EVENTS", []string{"market.>"}).Return(nil)

		pub, err := jspublisher.NewPublisher(context.Background(), testConfig(), natsJS, adapter.NewJSON())
		require.NoError(t, err)
		require.NotNil(t, pub)

		nc.EXPECT().Drain().Return(nil)
		pub.Close()
	})

	t.Run("connect failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		natsJS := mocks.NewMockNatsJetStream(ctrl)
		natsJS.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(nil, nil, errors.New("no servers available"))

		pub, err := jspublisher.NewPublisher(context.Background(), testConfig(), natsJS, adapter.NewJSON())
		assert.Error(t, err)
		assert.Nil(t, pub)
	})

	t.Run("stream failure closes the connection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		natsJS := mocks.NewMockNatsJetStream(ctrl)
		nc := mocks.NewMockNatsConn(ctrl)
		js := mocks.NewMockJetStream(ctrl)

		natsJS.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(nc, js, nil)
		js.EXPECT().EnsureStream(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("insufficient resources"))
		nc.EXPECT().Close()

		_, err := jspublisher.NewPublisher(context.Background(), testConfig(), natsJS, adapter.NewJSON())
		assert.Error(t, err)
	})

	t.Run("missing prefix", func(t *testing.T) {
		cfg := testConfig()
		cfg.SubjectPrefix = ""
		_, err := jspublisher.NewPublisher(context.Background(), cfg, nil, adapter.NewJSON())
		assert.Error(t, err)
	})
}

func TestPublisher_PublishEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	natsJS := mocks.NewMockNatsJetStream(ctrl)
	nc := mocks.NewMockNatsConn(ctrl)
	js := mocks.NewMockJetStream(ctrl)

	natsJS.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(nc, js, nil)
	js.EXPECT().EnsureStream(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	pub, err := jspublisher.NewPublisher(context.Background(), testConfig(), natsJS, adapter.NewJSON())
	require.NoError(t, err)

	sellerID := uuid.New()
	event := &domain.MarketEvent{
		EventType:     domain.EventTypeQuoteCreated,
		RecipientRole: domain.RoleSeller,
		RecipientID:   sellerID,
		QuoteID:       uuid.New(),
		ProductName:   "TMT 500 D 12 mm",
		Status:        domain.QuoteStatusPending,
		Timestamp:     time.Now(),
	}

	js.EXPECT().
		Publish(gomock.Any(), "market.seller."+sellerID.String()+".quote.created", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, data []byte, _ ...jetstream.PublishOpt) (*jetstream.PubAck, error) {
			var decoded domain.MarketEvent
			require.NoError(t, json.Unmarshal(data, &decoded))
			assert.Equal(t, event.QuoteID, decoded.QuoteID)
			assert.NotEmpty(t, decoded.EventID)
			return &jetstream.PubAck{Stream: "MARKET_EVENTS"}, nil
		})

	require.NoError(t, pub.PublishEvent(context.Background(), event))
	assert.Len(t, event.EventID, 26)

	js.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))
	assert.Error(t, pub.PublishEvent(context.Background(), event))
}

func TestPublisher_PublishEvent_MarshalError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	natsJS := mocks.NewMockNatsJetStream(ctrl)
	nc := mocks.NewMockNatsConn(ctrl)
	js := mocks.NewMockJetStream(ctrl)
	jsonAdapter := mocks.NewMockJSON(ctrl)

	natsJS.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(nc, js, nil)
	js.EXPECT().EnsureStream(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	jsonAdapter.EXPECT().Marshal(gomock.Any()).Return(nil, errors.New("unsupported value"))

	pub, err := jspublisher.NewPublisher(context.Background(), testConfig(), natsJS, jsonAdapter)
	require.NoError(t, err)

	err = pub.PublishEvent(context.Background(), &domain.MarketEvent{EventType: domain.EventTypeOfferAccepted})
	assert.Error(t, err)
}
