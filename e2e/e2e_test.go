package e2e

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/MichalMitros/catalog-feed-sync/cmd/feedsync/config"
	"github.com/MichalMitros/catalog-feed-sync/e2e/helpers"
	"github.com/MichalMitros/catalog-feed-sync/internal/catalog"
	"github.com/MichalMitros/catalog-feed-sync/internal/feed"
	"github.com/MichalMitros/catalog-feed-sync/internal/handler"
	"github.com/MichalMitros/catalog-feed-sync/internal/platform/blobstore"
	"github.com/MichalMitros/catalog-feed-sync/internal/platform/metrics"
	"github.com/MichalMitros/catalog-feed-sync/internal/platform/models"
	"github.com/MichalMitros/catalog-feed-sync/internal/platform/rabbitmq"
	"github.com/MichalMitros/catalog-feed-sync/internal/platform/storage"
	pgmodels "github.com/MichalMitros/catalog-feed-sync/internal/platform/storage/gen/postgres/public/model"
	"github.com/MichalMitros/catalog-feed-sync/internal/platform/storage/storagetesting"
	"github.com/MichalMitros/catalog-feed-sync/internal/reprocess"
	"github.com/MichalMitros/catalog-feed-sync/internal/syncer"
	"github.com/MichalMitros/catalog-feed-sync/internal/throttle"
	"github.com/MichalMitros/catalog-feed-sync/pkg/v1/jobs"
	"github.com/caarlos0/env/v6"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	userAgent = "cfs-e2e-test/0.0.1"
	exchange  = "cfs-e2e"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	os.Exit(m.Run())
}

func TestE2E(t *testing.T) {
	suite.Run(t, new(E2ETestSuite))
}

type E2ETestSuite struct {
	suite.Suite
	cfg        *config.Config
	connection *amqp.Connection
	channel    *amqp.Channel
	db         *sql.DB
}

func (s *E2ETestSuite) SetupSuite() {
	var err error

	var cfg config.Config
	if err = env.Parse(&cfg); err != nil {
		s.Require().FailNow("can't parse env variables", err)
	}
	s.cfg = &cfg

	if s.connection, err = amqp.Dial(cfg.RabbitMQ.URL); err != nil {
		s.Require().FailNow("can't open RabbitMQ connection", err)
	}

	if s.channel, err = s.connection.Channel(); err != nil {
		s.Require().FailNow("can't open RabbitMQ channel", err)
	}

	helpers.DeclareRMQExchange(s.T(), s.channel, exchange)

	if s.db, err = sql.Open("postgres", cfg.DatabaseURL); err != nil {
		s.Require().FailNow("can't open Postgres connection", err)
	}
}

func (s *E2ETestSuite) TearDownSuite() {
	storagetesting.CleanupData(s.T(), s.db)
	if err := s.db.Close(); err != nil {
		s.FailNow("can't close Postgres connection", err)
	}

	if err := s.channel.Close(); err != nil {
		s.FailNow("can't close RabbitMQ channel", err)
	}

	if err := s.connection.Close(); err != nil {
		s.FailNow("can't close RabbitMQ connection", err)
	}
}

func (s *E2ETestSuite) TestCatalogPipeline() {
	ctx, cancel := context.WithCancel(context.Background())

	// Prepare test RMQ queue
	queue := fmt.Sprintf("cfs-e2e-test-%d", rand.Int63n(100000))
	routingKey := fmt.Sprintf("cfs.cmd.e2e.%d", rand.Int63n(100000))
	helpers.DeclareRMQQueue(s.T(), s.channel, queue, exchange, routingKey)

	// Prepare test data: first sync sees 25 products, second sync sees all 45
	// with the first 5 retitled.
	payloads := helpers.GenerateTestPayloads(s.T(), 45)
	catalogSrv, setCatalog := helpers.PrepareMockedCatalogServer(s.T(), payloads[:25])
	blobSrv := helpers.PrepareMockedBlobServer(s.T())

	// Prepare test shop
	shopID := 900000 + rand.Intn(100000)
	storagetesting.InsertShops(s.T(), s.db, pgmodels.Shop{
		ID:                     int32(shopID),
		Name:                   "e2e shop",
		APIURL:                 catalogSrv.URL,
		APIToken:               "e2e-token",
		Currency:               "EUR",
		Locale:                 "en_US",
		SearchEnabledDefault:   true,
		CheckoutEnabledDefault: true,
		SyncStatus:             models.StatusPending,
		FeedStatus:             models.StatusPending,
		CreatedAt:              time.Now(),
	})

	// Prepare pipeline components
	store := storage.NewPostgres(s.db)
	syn := syncer.NewSyncer(
		catalog.NewClient(catalogSrv.Client(), userAgent, 100, throttle.NewController(), catalog.WithPerPage(10)),
		store,
		s.cfg.BatchSize,
	)
	generator := feed.NewGenerator(store, blobstore.NewClient(blobSrv.Client(), blobSrv.URL, "e2e-key", userAgent))
	reprocessor := reprocess.NewReprocessor(store, s.cfg.BatchSize)

	// Prepare RMQ client and commander
	rmq, err := rabbitmq.NewRabbitMQ(s.connection, exchange)
	if err != nil {
		s.Require().FailNow("can't create RabbitMQ client", err)
	}
	commander := jobs.NewCommander(jobs.NewRabbitMQSender(rmq, routingKey))

	// Prepare test logger
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	// Prepare and run handler
	han := handler.NewHandler(
		rmq,
		syn,
		generator,
		reprocessor,
		store,
		commander,
		metrics.New(prometheus.NewRegistry()),
		&logger,
	)
	s.Require().NoError(han.Start(ctx, queue), "handler shouldn't return any error")

	// First sync
	if err := commander.SendSyncCommand(ctx, shopID, jobs.ModeFull, ""); err != nil {
		s.Require().FailNow("can't publish sync command", err)
	}

	runs := helpers.WaitForFinishedRuns(s.T(), s.db, shopID, 1)

	s.Equal(lo.ToPtr(true), runs[0].Success, "first sync should succeed")
	s.Equal(lo.ToPtr(int32(25)), runs[0].CreatedItems, "should create all fetched products")
	s.Equal(lo.ToPtr(int32(0)), runs[0].UpdatedItems)
	s.Equal(lo.ToPtr(int32(0)), runs[0].SkippedItems)
	s.Equal(lo.ToPtr(int32(0)), runs[0].FailedItems)

	products := storagetesting.GetProductsByShopID(s.T(), s.db, shopID)
	s.Require().Len(products, 25)
	lo.ForEach(products, func(product pgmodels.Product, _ int) {
		s.Equal(models.StateSynced, product.SyncState)
		s.True(product.Valid, "product %s should be valid", product.ExternalID)
	})

	shop := storagetesting.GetShop(s.T(), s.db, shopID)
	s.Equal(models.StatusCompleted, shop.SyncStatus)
	s.Require().NotNil(shop.LastSyncedAt, "successful sync should stamp the shop")

	// Second sync: 20 new products, 5 retitled, 20 unchanged
	second := make([]map[string]any, 0, len(payloads))
	for ix := range payloads {
		payload := payloads[ix]
		if ix < 5 {
			payload = lo.Assign(map[string]any{}, payload)
			payload["title"] = fmt.Sprintf("Renamed %d", ix+1)
		}
		second = append(second, payload)
	}
	setCatalog(second)

	if err := commander.SendSyncCommand(ctx, shopID, jobs.ModeFull, ""); err != nil {
		s.Require().FailNow("can't publish sync command", err)
	}

	runs = helpers.WaitForFinishedRuns(s.T(), s.db, shopID, 2)

	s.Equal(lo.ToPtr(true), runs[1].Success, "second sync should succeed")
	s.Equal(lo.ToPtr(int32(20)), runs[1].CreatedItems)
	s.Equal(lo.ToPtr(int32(5)), runs[1].UpdatedItems)
	s.Equal(lo.ToPtr(int32(20)), runs[1].SkippedItems, "unchanged products should be skipped")
	s.Equal(lo.ToPtr(int32(0)), runs[1].FailedItems)

	// Select everything and generate a feed
	helpers.SelectAllItems(s.T(), s.db, shopID)

	if err := commander.SendFeedCommand(ctx, shopID); err != nil {
		s.Require().FailNow("can't publish feed command", err)
	}

	snapshots := helpers.WaitForSnapshots(s.T(), s.db, shopID, 1)

	// Cancel context to stop consumer
	cancel()

	s.Equal(int32(45), snapshots[0].ItemCount, "all selected products should be exported")
	s.Contains(snapshots[0].StorageURL, "https://blobs.example/")

	header, records := decodeFeed(s.T(), snapshots[0].Payload)
	s.Equal(shopID, header.ShopID)
	s.Equal("e2e shop", header.ShopName)
	s.Equal("EUR", header.Currency)
	s.Require().Len(records, 45)
	s.Equal("Renamed 1", *records["1"]["title"], "retitled product should carry the new title")
	s.Equal("Product 45", *records["45"]["title"])
	s.Equal("Apparel", *records["1"]["google_product_category"], "category should resolve by fetched category map")

	shop = storagetesting.GetShop(s.T(), s.db, shopID)
	s.Equal(models.StatusCompleted, shop.FeedStatus)
}

type feedHeader struct {
	ShopID   int    `json:"shop_id"`
	ShopName string `json:"shop_name"`
	Currency string `json:"currency"`
	Locale   string `json:"locale"`
}

// decodeFeed unpacks a gzipped NDJSON artifact into its header and records keyed by item ID.
func decodeFeed(t *testing.T, payload []byte) (feedHeader, map[string]map[string]*string) {
	t.Helper()

	gzr, err := gzip.NewReader(bytes.NewReader(payload))
	require.NoError(t, err, "artifact should be gzipped")

	var lines []string
	scanner := bufio.NewScanner(gzr)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	require.NoError(t, scanner.Err(), "artifact should decompress cleanly")
	require.NotEmpty(t, lines, "artifact should have a header line")

	var header feedHeader
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &header), "header line should be json")

	records := make(map[string]map[string]*string, len(lines)-1)
	for _, line := range lines[1:] {
		var record map[string]*string
		require.NoError(t, json.Unmarshal([]byte(line), &record), "record line should be json")
		require.NotNil(t, record["id"], "record should have an id")
		records[*record["id"]] = record
	}

	assert.NotEmpty(t, records)

	return header, records
}
