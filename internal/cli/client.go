// Package cli holds the HTTP client and local state used by the naija
// command.
package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"naijaquest/internal/api"
	"naijaquest/internal/archive"
	"naijaquest/internal/engine"
)

type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// CatalogView is the /v1/catalog payload.
type CatalogView struct {
	Archetypes []engine.Archetype  `json:"archetypes"`
	Items      []engine.MarketItem `json:"items"`
	Dreams     []engine.DreamItem  `json:"dreams"`
	Skills     []engine.Skill      `json:"skills"`
}

// LeaderboardView is the /v1/leaderboard payload.
type LeaderboardView struct {
	Enabled bool                     `json:"enabled"`
	Rows    []archive.LeaderboardRow `json:"rows"`
}

func (c *Client) Catalog(ctx context.Context) (CatalogView, error) {
	var out CatalogView
	err := c.jsonRequest(ctx, http.MethodGet, "/v1/catalog", nil, &out)
	return out, err
}

func (c *Client) Leaderboard(ctx context.Context) (LeaderboardView, error) {
	var out LeaderboardView
	err := c.jsonRequest(ctx, http.MethodGet, "/v1/leaderboard", nil, &out)
	return out, err
}

func (c *Client) NewGame(ctx context.Context, archetypeID, dreamID, playerName string) (api.GameView, error) {
	var out api.GameView
	err := c.jsonRequest(ctx, http.MethodPost, "/v1/games", map[string]any{
		"archetype_id": archetypeID,
		"dream_id":     dreamID,
		"player_name":  playerName,
	}, &out)
	return out, err
}

func (c *Client) Game(ctx context.Context, id string) (api.GameView, error) {
	var out api.GameView
	err := c.jsonRequest(ctx, http.MethodGet, c.gamePath(id, ""), nil, &out)
	return out, err
}

func (c *Client) Abandon(ctx context.Context, id string) error {
	return c.jsonRequest(ctx, http.MethodDelete, c.gamePath(id, ""), nil, nil)
}

func (c *Client) Advance(ctx context.Context, id string) (api.GameView, error) {
	var out api.GameView
	err := c.jsonRequest(ctx, http.MethodPost, c.gamePath(id, "/advance"), nil, &out)
	return out, err
}

func (c *Client) ResolveEvent(ctx context.Context, id, choiceID, payMethod string) (api.GameView, error) {
	var out api.GameView
	err := c.jsonRequest(ctx, http.MethodPost, c.gamePath(id, "/event"), map[string]any{
		"choice_id":  choiceID,
		"pay_method": payMethod,
	}, &out)
	return out, err
}

func (c *Client) ResolveInsolvency(ctx context.Context, id, strategy string, amount int64, assetID string) (api.GameView, error) {
	var out api.GameView
	err := c.jsonRequest(ctx, http.MethodPost, c.gamePath(id, "/insolvency"), map[string]any{
		"strategy": strategy,
		"amount":   amount,
		"asset_id": assetID,
	}, &out)
	return out, err
}

func (c *Client) BuyItem(ctx context.Context, id, itemID, payMethod string) (api.GameView, error) {
	var out api.GameView
	err := c.jsonRequest(ctx, http.MethodPost, c.gamePath(id, "/market/buy"), map[string]any{
		"item_id":    itemID,
		"pay_method": payMethod,
	}, &out)
	return out, err
}

func (c *Client) UpgradeAsset(ctx context.Context, id, assetID string) (api.GameView, error) {
	var out api.GameView
	err := c.jsonRequest(ctx, http.MethodPost, c.gamePath(id, "/assets/"+url.PathEscape(assetID)+"/upgrade"), nil, &out)
	return out, err
}

func (c *Client) SellAsset(ctx context.Context, id, assetID string) (api.GameView, error) {
	var out api.GameView
	err := c.jsonRequest(ctx, http.MethodPost, c.gamePath(id, "/assets/"+url.PathEscape(assetID)+"/sell"), nil, &out)
	return out, err
}

func (c *Client) BankLoan(ctx context.Context, id string, amount int64) (api.GameView, error) {
	var out api.GameView
	err := c.jsonRequest(ctx, http.MethodPost, c.gamePath(id, "/bank/loan"), map[string]any{
		"amount": amount,
	}, &out)
	return out, err
}

func (c *Client) SharkLoan(ctx context.Context, id string, amount int64) (api.GameView, error) {
	var out api.GameView
	err := c.jsonRequest(ctx, http.MethodPost, c.gamePath(id, "/shark/loan"), map[string]any{
		"amount": amount,
	}, &out)
	return out, err
}

func (c *Client) Repay(ctx context.Context, id, liabilityID string) (api.GameView, error) {
	var out api.GameView
	err := c.jsonRequest(ctx, http.MethodPost, c.gamePath(id, "/debts/"+url.PathEscape(liabilityID)+"/repay"), nil, &out)
	return out, err
}

func (c *Client) Lifestyle(ctx context.Context, id, tier string) (api.GameView, error) {
	var out api.GameView
	err := c.jsonRequest(ctx, http.MethodPost, c.gamePath(id, "/lifestyle"), map[string]any{
		"tier": tier,
	}, &out)
	return out, err
}

func (c *Client) LearnSkill(ctx context.Context, id, skillID string) (api.GameView, error) {
	var out api.GameView
	err := c.jsonRequest(ctx, http.MethodPost, c.gamePath(id, "/skills"), map[string]any{
		"skill_id": skillID,
	}, &out)
	return out, err
}

func (c *Client) Gig(ctx context.Context, id string) (api.GameView, error) {
	var out api.GameView
	err := c.jsonRequest(ctx, http.MethodPost, c.gamePath(id, "/gig"), nil, &out)
	return out, err
}

func (c *Client) BuyDream(ctx context.Context, id string) (api.GameView, error) {
	var out api.GameView
	err := c.jsonRequest(ctx, http.MethodPost, c.gamePath(id, "/dream"), nil, &out)
	return out, err
}

func (c *Client) Austerity(ctx context.Context, id string) (api.GameView, error) {
	var out api.GameView
	err := c.jsonRequest(ctx, http.MethodPost, c.gamePath(id, "/austerity"), nil, &out)
	return out, err
}

// WatchURL is the websocket address of the live state stream.
func (c *Client) WatchURL(id string) string {
	u := c.BaseURL + c.gamePath(id, "/ws")
	u = strings.Replace(u, "https://", "wss://", 1)
	u = strings.Replace(u, "http://", "ws://", 1)
	return u
}

func (c *Client) gamePath(id, suffix string) string {
	return "/v1/games/" + url.PathEscape(id) + suffix
}

func (c *Client) jsonRequest(ctx context.Context, method, path string, in any, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("api status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
