package controllerImp

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"agroplan/pkg/farm/repository"
	"agroplan/pkg/market"
)

type MarketCtrl struct {
	repo     repository.FarmRepository
	allow    map[string]bool
	maxBytes int64
	client   *http.Client
}

type refreshReq struct {
	URL string `json:"url"`
}

func New(repo repository.FarmRepository) *MarketCtrl {
	allow := map[string]bool{}
	for _, h := range strings.Split(os.Getenv("MARKET_ALLOWED_DOMAINS"), ",") {
		h = strings.TrimSpace(h)
		if h != "" {
			allow[strings.ToLower(h)] = true
		}
	}
	var mb int64 = 1500000
	if v := os.Getenv("MARKET_MAX_BYTES"); v != "" {
		fmt.Sscanf(v, "%d", &mb)
	}
	return &MarketCtrl{
		repo:     repo,
		allow:    allow,
		maxBytes: mb,
		client:   &http.Client{Timeout: 15 * time.Second},
	}
}

// Refresh fetches an allow-listed bulletin page and applies its price bands
// to the stored stats, matching quotes to crops by name.
func (m *MarketCtrl) Refresh(c echo.Context) error {
	var in refreshReq
	if err := c.Bind(&in); err != nil || in.URL == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json, want {url}"})
	}
	u, err := url.Parse(in.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid url"})
	}
	if len(m.allow) > 0 && !m.allow[strings.ToLower(u.Hostname())] {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "domain not allowed"})
	}

	resp, err := m.client.Get(in.URL)
	if err != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": err.Error()})
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": fmt.Sprintf("bulletin returned %d", resp.StatusCode)})
	}
	if ct := resp.Header.Get("Content-Type"); !strings.Contains(ct, "text/html") {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "unsupported content-type: " + ct})
	}

	quotes, err := market.ParseBulletin(io.LimitReader(resp.Body, m.maxBytes))
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": err.Error()})
	}

	updated, skipped := 0, 0
	for _, q := range quotes {
		n, err := m.repo.UpdatePriceBand(q.Crop, q.PriceMin, q.PriceMax)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		if n > 0 {
			updated++
		} else {
			skipped++
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"updated": updated, "skipped": skipped})
}
