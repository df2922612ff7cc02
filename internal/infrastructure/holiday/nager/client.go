package nager

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"calendar-reminders/internal/domain/entity"
	"calendar-reminders/internal/domain/provider"
	"calendar-reminders/internal/pkg/dates"
	"calendar-reminders/internal/pkg/logger"
)

// Client fetches public holiday calendars from the Nager.Date API and
// caches them per year for the lifetime of the instance.
//
// Cache policy: only non-empty results are cached. An empty or failed
// fetch is not remembered, so a later call for the same year retries the
// remote source and self-heals transient upstream outages.
type Client struct {
	baseURL     string
	countryCode string
	httpClient  *http.Client
	log         logger.Logger

	mu    sync.RWMutex
	cache map[int][]entity.PublicHoliday
}

// NewClient creates a Nager API client for the given base URL and
// country code. The cache is owned by the instance, so tests can
// construct isolated clients without cross-test pollution.
func NewClient(baseURL, countryCode string, log logger.Logger) *Client {
	return &Client{
		baseURL:     baseURL,
		countryCode: countryCode,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		log:   log,
		cache: make(map[int][]entity.PublicHoliday),
	}
}

var _ provider.HolidayProvider = (*Client)(nil)

// GetPublicHolidays returns the public holidays for a year, consulting
// the cache first. Fetch failures degrade to an empty slice and are
// never surfaced to the caller.
//
// The fetch happens outside the lock: reads of already-cached years
// never block on an in-flight fetch of a different year. Two requests
// racing to populate the same year both fetch; the first write wins.
func (c *Client) GetPublicHolidays(ctx context.Context, year int) []entity.PublicHoliday {
	c.mu.RLock()
	cached, ok := c.cache[year]
	c.mu.RUnlock()
	if ok && len(cached) > 0 {
		return cached
	}

	holidays := c.fetchFromAPI(ctx, year)
	if len(holidays) == 0 {
		return []entity.PublicHoliday{}
	}

	c.mu.Lock()
	if existing, ok := c.cache[year]; ok && len(existing) > 0 {
		holidays = existing
	} else {
		c.cache[year] = holidays
	}
	c.mu.Unlock()

	return holidays
}

// nagerHolidayDTO maps the Nager API JSON. The "fixed" flag is accepted
// but dropped when converting to the domain type.
type nagerHolidayDTO struct {
	Date        string `json:"date"`
	LocalName   string `json:"localName"`
	Name        string `json:"name"`
	CountryCode string `json:"countryCode"`
	Fixed       bool   `json:"fixed"`
	Global      bool   `json:"global"`
	Type        string `json:"type"`
}

func (c *Client) fetchFromAPI(ctx context.Context, year int) []entity.PublicHoliday {
	url := fmt.Sprintf("%s/PublicHolidays/%d/%s", c.baseURL, year, c.countryCode)
	c.log.Info(fmt.Sprintf("Fetching public holidays from Nager API: %s", url))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		c.log.Error(fmt.Sprintf("Failed to build Nager API request for year %d", year), err)
		return nil
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error(fmt.Sprintf("Failed to fetch public holidays from Nager API for year %d", year), err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Warn(fmt.Sprintf("Nager API returned status %d for year %d", resp.StatusCode, year))
		return nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.log.Error(fmt.Sprintf("Failed to read Nager API response for year %d", year), err)
		return nil
	}

	// Decode into pointers so null array elements can be filtered out
	// instead of failing the whole fetch.
	var records []*nagerHolidayDTO
	if err := json.Unmarshal(body, &records); err != nil {
		c.log.Error(fmt.Sprintf("Failed to parse Nager API response for year %d", year), err)
		return nil
	}

	if len(records) == 0 {
		c.log.Warn(fmt.Sprintf("No holidays received from Nager API for year %d", year))
		return nil
	}

	holidays := make([]entity.PublicHoliday, 0, len(records))
	for _, record := range records {
		if record == nil {
			continue
		}
		date, err := dates.ParseDate(record.Date)
		if err != nil {
			c.log.Warn(fmt.Sprintf("Skipping holiday with unparseable date %q for year %d", record.Date, year))
			continue
		}
		holidays = append(holidays, entity.PublicHoliday{
			Date:        date,
			LocalName:   record.LocalName,
			EnglishName: record.Name,
			CountryCode: record.CountryCode,
			Type:        record.Type,
			Global:      record.Global,
		})
	}

	c.log.Debug(fmt.Sprintf("Fetched %d holidays from Nager API for year %d", len(holidays), year))
	return holidays
}
