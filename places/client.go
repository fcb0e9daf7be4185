// Package places is the boundary to the map provider: geocoding, text
// search, and place details over the Google Maps web services. Every call
// returns a typed result or ErrPlaceNotFound; lookup failures degrade into
// "not available" UI placeholders and never block anything else.
package places

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

const defaultBaseURL = "https://maps.googleapis.com/maps/api"

// ErrPlaceNotFound means the provider answered but had no match.
var ErrPlaceNotFound = errors.New("place not found")

type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Place is a text-search result.
type Place struct {
	PlaceID          string   `json:"place_id"`
	Name             string   `json:"name"`
	FormattedAddress string   `json:"formatted_address"`
	Location         Location `json:"location"`
	Rating           float64  `json:"rating"`
	UserRatingsTotal int      `json:"user_ratings_total"`
}

// Details is the full record shown in the place panel. Fields the provider
// did not return stay zero and render as "not available".
type Details struct {
	Place
	PhoneNumber  string   `json:"formatted_phone_number"`
	Website      string   `json:"website"`
	OpeningHours []string `json:"opening_hours"`
	PhotoRefs    []string `json:"photo_refs"`
}

// Client calls the provider's web endpoints. Search results are cached per
// query for the life of the process.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client

	cache struct {
		mu sync.Mutex
		m  map[string]*Place
	}
}

func NewClient(apiKey string) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
	c.cache.m = make(map[string]*Place)
	return c
}

// Enabled reports whether an API key was configured. Without one, map
// features are off and the rest of the application is unaffected.
func (c *Client) Enabled() bool {
	return c.apiKey != ""
}

// Geocode resolves an address (typically the trip destination) to a
// location.
func (c *Client) Geocode(ctx context.Context, address string) (Location, error) {
	var body struct {
		Status  string `json:"status"`
		Results []struct {
			Geometry struct {
				Location Location `json:"location"`
			} `json:"geometry"`
		} `json:"results"`
	}
	params := url.Values{"address": {address}}
	if err := c.get(ctx, "/geocode/json", params, &body); err != nil {
		return Location{}, err
	}
	if body.Status != "OK" || len(body.Results) == 0 {
		return Location{}, fmt.Errorf("geocode %q: %w", address, ErrPlaceNotFound)
	}
	return body.Results[0].Geometry.Location, nil
}

// Search looks a place up by name, qualified with the destination to bias
// results toward the right city. When the qualified query misses, it falls
// back to the bare name before giving up.
func (c *Client) Search(ctx context.Context, name, destination string) (*Place, error) {
	query := name
	if destination != "" {
		query = name + ", " + destination
	}

	place, err := c.textSearch(ctx, query)
	if errors.Is(err, ErrPlaceNotFound) && query != name {
		place, err = c.textSearch(ctx, name)
	}
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", name, err)
	}
	return place, nil
}

func (c *Client) textSearch(ctx context.Context, query string) (*Place, error) {
	key := strings.ToLower(strings.TrimSpace(query))
	c.cache.mu.Lock()
	if p, ok := c.cache.m[key]; ok {
		c.cache.mu.Unlock()
		return p, nil
	}
	c.cache.mu.Unlock()

	var body struct {
		Status  string `json:"status"`
		Results []struct {
			PlaceID          string  `json:"place_id"`
			Name             string  `json:"name"`
			FormattedAddress string  `json:"formatted_address"`
			Rating           float64 `json:"rating"`
			UserRatingsTotal int     `json:"user_ratings_total"`
			Geometry         struct {
				Location Location `json:"location"`
			} `json:"geometry"`
		} `json:"results"`
	}
	params := url.Values{"query": {query}}
	if err := c.get(ctx, "/place/textsearch/json", params, &body); err != nil {
		return nil, err
	}
	if body.Status != "OK" || len(body.Results) == 0 {
		return nil, ErrPlaceNotFound
	}

	r := body.Results[0]
	place := &Place{
		PlaceID:          r.PlaceID,
		Name:             r.Name,
		FormattedAddress: r.FormattedAddress,
		Location:         r.Geometry.Location,
		Rating:           r.Rating,
		UserRatingsTotal: r.UserRatingsTotal,
	}

	c.cache.mu.Lock()
	c.cache.m[key] = place
	c.cache.mu.Unlock()
	return place, nil
}

// GetDetails fetches the full record for a place id.
func (c *Client) GetDetails(ctx context.Context, placeID string) (*Details, error) {
	var body struct {
		Status string `json:"status"`
		Result struct {
			PlaceID          string  `json:"place_id"`
			Name             string  `json:"name"`
			FormattedAddress string  `json:"formatted_address"`
			Rating           float64 `json:"rating"`
			UserRatingsTotal int     `json:"user_ratings_total"`
			PhoneNumber      string  `json:"formatted_phone_number"`
			Website          string  `json:"website"`
			Geometry         struct {
				Location Location `json:"location"`
			} `json:"geometry"`
			OpeningHours struct {
				WeekdayText []string `json:"weekday_text"`
			} `json:"opening_hours"`
			Photos []struct {
				PhotoReference string `json:"photo_reference"`
			} `json:"photos"`
		} `json:"result"`
	}
	params := url.Values{
		"place_id": {placeID},
		"fields":   {"place_id,name,formatted_address,geometry,rating,user_ratings_total,opening_hours,formatted_phone_number,website,photos"},
	}
	if err := c.get(ctx, "/place/details/json", params, &body); err != nil {
		return nil, err
	}
	if body.Status != "OK" {
		return nil, fmt.Errorf("details %q: %w", placeID, ErrPlaceNotFound)
	}

	r := body.Result
	d := &Details{
		Place: Place{
			PlaceID:          r.PlaceID,
			Name:             r.Name,
			FormattedAddress: r.FormattedAddress,
			Location:         r.Geometry.Location,
			Rating:           r.Rating,
			UserRatingsTotal: r.UserRatingsTotal,
		},
		PhoneNumber:  r.PhoneNumber,
		Website:      r.Website,
		OpeningHours: r.OpeningHours.WeekdayText,
	}
	for _, p := range r.Photos {
		d.PhotoRefs = append(d.PhotoRefs, p.PhotoReference)
	}
	return d, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	params.Set("key", c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("maps api status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
