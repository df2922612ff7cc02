package nager

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calendar-reminders/internal/pkg/dates"
	"calendar-reminders/internal/pkg/logger"
)

const holidays2025JSON = `[
	{"date":"2025-01-01","localName":"Naujieji metai","name":"New Year's Day","countryCode":"LT","fixed":true,"global":true,"type":"Public"},
	{"date":"2025-12-25","localName":"Šv. Kalėdos","name":"Christmas Day","countryCode":"LT","fixed":true,"global":true,"type":"Public"}
]`

func newTestClient(serverURL string) *Client {
	return NewClient(serverURL, "LT", logger.New())
}

func TestGetPublicHolidays_FetchesAndMaps(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/PublicHolidays/2025/LT", r.URL.Path)
		fmt.Fprint(w, holidays2025JSON)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	holidays := client.GetPublicHolidays(context.Background(), 2025)

	require.Len(t, holidays, 2)
	assert.Equal(t, dates.Date(2025, time.January, 1), holidays[0].Date)
	assert.Equal(t, "Naujieji metai", holidays[0].LocalName)
	assert.Equal(t, "New Year's Day", holidays[0].EnglishName)
	assert.Equal(t, "LT", holidays[0].CountryCode)
	assert.Equal(t, "Public", holidays[0].Type)
	assert.True(t, holidays[0].Global)
}

func TestGetPublicHolidays_SecondCallHitsCache(t *testing.T) {
	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		fmt.Fprint(w, holidays2025JSON)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	first := client.GetPublicHolidays(context.Background(), 2025)
	second := client.GetPublicHolidays(context.Background(), 2025)

	assert.Equal(t, int32(1), requests.Load())
	assert.Equal(t, first, second)
}

func TestGetPublicHolidays_DistinctYearsFetchSeparately(t *testing.T) {
	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		if r.URL.Path == "/PublicHolidays/2025/LT" {
			fmt.Fprint(w, holidays2025JSON)
			return
		}
		fmt.Fprint(w, `[{"date":"2026-01-01","localName":"Naujieji metai","name":"New Year's Day","countryCode":"LT","fixed":true,"global":true,"type":"Public"}]`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	holidays2025 := client.GetPublicHolidays(context.Background(), 2025)
	holidays2026 := client.GetPublicHolidays(context.Background(), 2026)

	assert.Equal(t, int32(2), requests.Load())
	require.Len(t, holidays2025, 2)
	require.Len(t, holidays2026, 1)
	assert.Equal(t, dates.Date(2026, time.January, 1), holidays2026[0].Date)
}

func TestGetPublicHolidays_EmptyResultNotCached(t *testing.T) {
	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if requests.Add(1) == 1 {
			fmt.Fprint(w, `[]`)
			return
		}
		fmt.Fprint(w, holidays2025JSON)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	first := client.GetPublicHolidays(context.Background(), 2025)
	assert.Empty(t, first)

	// The empty fetch was not cached, so the next call retries upstream.
	second := client.GetPublicHolidays(context.Background(), 2025)
	assert.Equal(t, int32(2), requests.Load())
	assert.Len(t, second, 2)
}

func TestGetPublicHolidays_DegradesToEmpty(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"empty array", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `[]`)
		}},
		{"malformed body", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"not":"an array"`)
		}},
		{"server error status", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}},
		{"not found status", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			client := newTestClient(server.URL)
			holidays := client.GetPublicHolidays(context.Background(), 2025)

			assert.NotNil(t, holidays)
			assert.Empty(t, holidays)
		})
	}
}

func TestGetPublicHolidays_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // Closed up front so every request fails at the transport.

	client := newTestClient(server.URL)
	holidays := client.GetPublicHolidays(context.Background(), 2025)

	assert.NotNil(t, holidays)
	assert.Empty(t, holidays)
}

func TestGetPublicHolidays_NullElementsFiltered(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[
			null,
			{"date":"2025-01-01","localName":"Naujieji metai","name":"New Year's Day","countryCode":"LT","fixed":true,"global":true,"type":"Public"},
			null
		]`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	holidays := client.GetPublicHolidays(context.Background(), 2025)

	require.Len(t, holidays, 1)
	assert.Equal(t, "New Year's Day", holidays[0].EnglishName)
}

func TestGetPublicHolidays_ConcurrentPopulation(t *testing.T) {
	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		fmt.Fprint(w, holidays2025JSON)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	var wg sync.WaitGroup
	results := make([][]int, 0)
	var mu sync.Mutex
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			holidays := client.GetPublicHolidays(context.Background(), 2025)
			mu.Lock()
			results = append(results, []int{len(holidays)})
			mu.Unlock()
		}()
	}
	wg.Wait()

	// Every caller observes the full calendar regardless of who won the
	// populate race, and later calls are served from cache.
	for _, r := range results {
		assert.Equal(t, 2, r[0])
	}
	fetchesBefore := requests.Load()
	client.GetPublicHolidays(context.Background(), 2025)
	assert.Equal(t, fetchesBefore, requests.Load())
}
