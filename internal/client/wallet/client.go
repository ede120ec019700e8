package wallet

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"wordle_backend/internal/config"
)

type walletResponse struct {
	Balance float64 `json:"portefeuille"`
}

// Тело ошибки кошелькового API
type apiErrorResponse struct {
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail"`
}

// Client HTTP клиент кошелькового API
type Client struct {
	baseURL    string
	gameKey    string
	httpClient *http.Client
}

func NewClient(cfg config.WalletAPIConfig) *Client {
	return &Client{
		baseURL: cfg.BaseURL(),
		gameKey: cfg.GameKey(),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// GetWallet Читает баланс кошелька по категории и ключу
func (c *Client) GetWallet(ctx context.Context, category Category, key string) (float64, error) {
	url := fmt.Sprintf("%s/portefeuille/%s/%s", c.baseURL, category, key)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("wallet request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, c.apiError(resp)
	}

	var body walletResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("failed to decode wallet response: %w", err)
	}

	return body.Balance, nil
}

// ExchangeMoney Выполняет перевод между кошельками от имени игры
func (c *Client) ExchangeMoney(ctx context.Context, exReq ExchangeRequest) (*ExchangeResponse, error) {
	payload, err := json.Marshal(exReq)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/echangerArgent/%s", c.baseURL, c.gameKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("exchange request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.apiError(resp)
	}

	var body ExchangeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode exchange response: %w", err)
	}

	return &body, nil
}

// apiError Достаёт detail из тела ошибки API, если он там есть
func (c *Client) apiError(resp *http.Response) error {
	detail := fmt.Sprintf("request failed with status %d", resp.StatusCode)

	var body apiErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Detail != "" {
		detail = body.Detail
	}

	return fmt.Errorf("wallet api: %s", detail)
}
