// Package helpers holds shared helpers of the end to end test suite.
package helpers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"testing"
	"time"

	pgmodels "github.com/MichalMitros/catalog-feed-sync/internal/platform/storage/gen/postgres/public/model"
	"github.com/MichalMitros/catalog-feed-sync/internal/platform/storage/gen/postgres/public/table"
	"github.com/MichalMitros/catalog-feed-sync/internal/platform/storage/storagetesting"
	pg "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

const (
	pollInterval = time.Millisecond * 500
	pollDeadline = time.Second * 30
)

// WaitForFinishedRuns is blocking helper function, returns the shop's runs
// ordered by ID after n of them are finished.
func WaitForFinishedRuns(t *testing.T, queryable qrm.Queryable, shopID int, n int) []pgmodels.SyncRun {
	t.Helper()

	deadline := time.Now().Add(pollDeadline)
	for {
		<-time.After(pollInterval)

		runs := lo.Filter(storagetesting.GetRuns(t, queryable), func(run pgmodels.SyncRun, _ int) bool {
			return run.ShopID == int32(shopID) && run.FinishedAt != nil
		})
		if len(runs) >= n {
			sort.Slice(runs, func(i, j int) bool { return runs[i].ID < runs[j].ID })
			return runs
		}

		if time.Now().After(deadline) {
			require.FailNowf(t, "timed out waiting for runs", "want %d finished runs, have %d", n, len(runs))
		}
	}
}

// WaitForSnapshots is blocking helper function, returns the shop's snapshots
// after n of them are stored.
func WaitForSnapshots(t *testing.T, queryable qrm.Queryable, shopID int, n int) []pgmodels.FeedSnapshot {
	t.Helper()

	deadline := time.Now().Add(pollDeadline)
	for {
		<-time.After(pollInterval)

		snapshots := lo.Filter(storagetesting.GetSnapshots(t, queryable), func(snap pgmodels.FeedSnapshot, _ int) bool {
			return snap.ShopID == int32(shopID)
		})
		if len(snapshots) >= n {
			return snapshots
		}

		if time.Now().After(deadline) {
			require.FailNowf(t, "timed out waiting for snapshots", "want %d snapshots, have %d", n, len(snapshots))
		}
	}
}

// SelectAllItems is helper function which opts every shop item into the feed.
func SelectAllItems(t *testing.T, exc qrm.Executable, shopID int) {
	t.Helper()

	stmt := table.Product.
		UPDATE(table.Product.Selected).
		SET(pg.Bool(true)).
		WHERE(table.Product.ShopID.EQ(pg.Int32(int32(shopID))))

	if _, err := stmt.ExecContext(context.Background(), exc); err != nil {
		require.FailNow(t, "can't select items", err)
	}
}

// GenerateTestPayloads generates n valid catalog payloads with IDs in [1;n].
func GenerateTestPayloads(t *testing.T, n int) []map[string]any {
	t.Helper()

	payloads := make([]map[string]any, n)
	for ix := range payloads {
		id := strconv.Itoa(ix + 1)
		payloads[ix] = map[string]any{
			"id":          id,
			"title":       "Product " + id,
			"description": "Test product " + id,
			"url":         "https://shop.example/p/" + id,
			"image_url":   "https://img.example/" + id + ".jpg",
			"price":       float64(ix+1) + 0.99,
			"in_stock":    true,
			"condition":   "new",
			"category_id": float64(1),
		}
	}

	return payloads
}

// PrepareMockedCatalogServer is helper function for mocking the merchant
// catalog API. Returns function for swapping the served catalog.
func PrepareMockedCatalogServer(t *testing.T, payloads []map[string]any) (*httptest.Server, func([]map[string]any)) {
	t.Helper()

	catalog := payloads

	mux := http.NewServeMux()
	mux.HandleFunc("/settings", func(wrt http.ResponseWriter, req *http.Request) {
		writeJSON(t, wrt, map[string]any{
			"currency":    "EUR",
			"locale":      "en_US",
			"seller_name": "e2e seller",
			"store_url":   "https://shop.example",
		})
	})
	mux.HandleFunc("/categories", func(wrt http.ResponseWriter, req *http.Request) {
		writeJSON(t, wrt, map[string]any{
			"items":       []map[string]any{{"id": 1, "name": "Apparel"}},
			"total_pages": 1,
		})
	})
	mux.HandleFunc("/products", func(wrt http.ResponseWriter, req *http.Request) {
		page, perPage := pagination(req)
		items, totalPages := paginate(catalog, page, perPage)
		writeJSON(t, wrt, map[string]any{"items": items, "total_pages": totalPages})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return srv, func(next []map[string]any) { catalog = next }
}

// PrepareMockedBlobServer is helper function for mocking the feed artifact store.
func PrepareMockedBlobServer(t *testing.T) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(wrt http.ResponseWriter, req *http.Request) {
		switch req.Method {
		case http.MethodPut:
			writeJSON(t, wrt, map[string]any{"url": "https://blobs.example" + req.URL.Path})
		case http.MethodDelete:
			wrt.WriteHeader(http.StatusNoContent)
		default:
			wrt.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))
	t.Cleanup(srv.Close)

	return srv
}

// DeclareRMQExchange is helper function for declaring RMQ exchange.
func DeclareRMQExchange(t *testing.T, ch *amqp.Channel, exchange string) {
	t.Helper()

	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		require.FailNow(t, "can't declare exchange", exchange, err)
	}
}

// DeclareRMQQueue is helper function for declaring RMQ queue and binding and cleaning them after test is finished.
func DeclareRMQQueue(t *testing.T, channel *amqp.Channel, queueName, exchange, routingKey string) {
	t.Helper()

	_, err := channel.QueueDeclare(queueName, true, false, false, false, nil)
	if err != nil {
		require.FailNow(t, "can't declare queue", queueName, err)
	}

	err = channel.QueueBind(queueName, routingKey, exchange, false, nil)
	if err != nil {
		require.FailNow(t, "can't bind queue", queueName, routingKey, err)
	}

	t.Cleanup(func() {
		_, err := channel.QueueDelete(queueName, false, false, true)
		if err != nil {
			require.FailNow(t, "can't delete queue", queueName, err)
		}
	})
}

func pagination(req *http.Request) (int, int) {
	page, err := strconv.Atoi(req.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	perPage, err := strconv.Atoi(req.URL.Query().Get("per_page"))
	if err != nil || perPage < 1 {
		perPage = 100
	}
	return page, perPage
}

func paginate(items []map[string]any, page, perPage int) ([]map[string]any, int) {
	totalPages := (len(items) + perPage - 1) / perPage
	if totalPages < 1 {
		totalPages = 1
	}

	from := (page - 1) * perPage
	if from >= len(items) {
		return []map[string]any{}, totalPages
	}

	to := from + perPage
	if to > len(items) {
		to = len(items)
	}

	return items[from:to], totalPages
}

func writeJSON(t *testing.T, wrt http.ResponseWriter, body any) {
	t.Helper()

	wrt.Header().Add("Content-Type", "application/json")
	if err := json.NewEncoder(wrt).Encode(body); err != nil {
		require.FailNow(t, fmt.Sprintf("can't encode response: %v", err))
	}
}
