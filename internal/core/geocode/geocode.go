package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go-places-api/internal/core/apperr"
)

type LatLng struct {
	Lat float64
	Lng float64
}

// Client 调 Nominatim 风格的 /search 端点把地址解析成经纬度
type Client struct {
	base string
	hc   *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		base: baseURL,
		hc:   &http.Client{Timeout: timeout},
	}
}

type searchHit struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

func (c *Client) Resolve(ctx context.Context, address string) (LatLng, error) {
	q := url.Values{}
	q.Set("q", address)
	q.Set("format", "json")
	q.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"?"+q.Encode(), nil)
	if err != nil {
		return LatLng{}, apperr.BadGateway("Could not resolve address, please try again.", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return LatLng{}, apperr.BadGateway("Could not resolve address, please try again.", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return LatLng{}, apperr.BadGateway("Could not resolve address, please try again.",
			fmt.Errorf("geocode: status %d", resp.StatusCode))
	}

	var hits []searchHit
	if err := json.NewDecoder(resp.Body).Decode(&hits); err != nil {
		return LatLng{}, apperr.BadGateway("Could not resolve address, please try again.", err)
	}
	if len(hits) == 0 {
		return LatLng{}, apperr.Unprocessable("Could not find location for the specified address.")
	}

	lat, err1 := strconv.ParseFloat(hits[0].Lat, 64)
	lng, err2 := strconv.ParseFloat(hits[0].Lon, 64)
	if err1 != nil || err2 != nil {
		return LatLng{}, apperr.BadGateway("Could not resolve address, please try again.",
			fmt.Errorf("geocode: bad coordinates %q/%q", hits[0].Lat, hits[0].Lon))
	}
	return LatLng{Lat: lat, Lng: lng}, nil
}
