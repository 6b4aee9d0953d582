package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/iudanet/gophcart/pkg/api"
)

//go:generate moq -out cart_mock.go . CartAPI
//go:generate moq -out catalog_mock.go . CatalogAPI

// CartAPI определяет интерфейс шлюза серверной корзины
//
// Шлюз не ретраит сам - политика повторов принадлежит reconciliation engine.
// UpdateItem и RemoveItem требуют серверный lineID; вызов с пустым lineID -
// ошибка программиста, engine обязан сперва получить идентификатор.
type CartAPI interface {
	// GetCart возвращает серверную корзину вместе с серверными агрегатами
	GetCart(ctx context.Context, accessToken string) (*api.CartResponse, error)

	// AddItem добавляет товар; повторное добавление суммирует количество
	AddItem(ctx context.Context, accessToken, productID string, quantity int64) error

	// UpdateItem выставляет абсолютное количество существующей позиции
	UpdateItem(ctx context.Context, accessToken, lineID string, quantity int64) error

	// RemoveItem удаляет позицию по серверному идентификатору
	RemoveItem(ctx context.Context, accessToken, lineID string) error

	// ClearCart удаляет все позиции корзины
	ClearCart(ctx context.Context, accessToken string) error
}

// CatalogAPI определяет интерфейс проверки товара в каталоге
type CatalogAPI interface {
	// LookupProduct возвращает данные товара или ErrNotFound
	LookupProduct(ctx context.Context, productID string) (*api.ProductResponse, error)
}

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// Compile-time checks that Client implements both gateway interfaces
var (
	_ CartAPI    = (*Client)(nil)
	_ CatalogAPI = (*Client)(nil)
)

// NewClient создает новый API клиент
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			// Настройка обработки редиректов
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовки Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// Register регистрирует нового пользователя
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error) {
	var resp api.RegisterResponse
	err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/register", "", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return &resp, nil
}

// Login выполняет аутентификацию пользователя
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/login", "", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// GetCart возвращает серверную корзину и агрегаты
func (c *Client) GetCart(ctx context.Context, accessToken string) (*api.CartResponse, error) {
	var resp api.CartResponse
	err := c.doRequest(ctx, http.MethodGet, "/api/v1/cart", accessToken, nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("get cart request failed: %w", err)
	}
	return &resp, nil
}

// AddItem добавляет товар в серверную корзину
func (c *Client) AddItem(ctx context.Context, accessToken, productID string, quantity int64) error {
	req := api.AddItemRequest{ProductID: productID, Quantity: quantity}
	err := c.doRequest(ctx, http.MethodPost, "/api/v1/cart/add", accessToken, req, nil)
	if err != nil {
		return fmt.Errorf("add item request failed: %w", err)
	}
	return nil
}

// UpdateItem выставляет количество существующей позиции
func (c *Client) UpdateItem(ctx context.Context, accessToken, lineID string, quantity int64) error {
	req := api.UpdateItemRequest{LineID: lineID, Quantity: quantity}
	err := c.doRequest(ctx, http.MethodPut, "/api/v1/cart/update", accessToken, req, nil)
	if err != nil {
		return fmt.Errorf("update item request failed: %w", err)
	}
	return nil
}

// RemoveItem удаляет позицию из серверной корзины
func (c *Client) RemoveItem(ctx context.Context, accessToken, lineID string) error {
	req := api.RemoveItemRequest{LineID: lineID}
	err := c.doRequest(ctx, http.MethodDelete, "/api/v1/cart/remove", accessToken, req, nil)
	if err != nil {
		return fmt.Errorf("remove item request failed: %w", err)
	}
	return nil
}

// ClearCart удаляет все позиции серверной корзины
func (c *Client) ClearCart(ctx context.Context, accessToken string) error {
	err := c.doRequest(ctx, http.MethodDelete, "/api/v1/cart/clear", accessToken, nil, nil)
	if err != nil {
		return fmt.Errorf("clear cart request failed: %w", err)
	}
	return nil
}

// LookupProduct запрашивает товар в каталоге
func (c *Client) LookupProduct(ctx context.Context, productID string) (*api.ProductResponse, error) {
	var resp api.ProductResponse
	path := "/api/v1/products/" + url.PathEscape(productID)
	err := c.doRequest(ctx, http.MethodGet, path, "", nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("lookup product request failed: %w", err)
	}
	return &resp, nil
}

// doRequest выполняет HTTP запрос
func (c *Client) doRequest(ctx context.Context, method, path, accessToken string, body, result interface{}) error {
	reqURL := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.mapError(resp.StatusCode, respBody)
	}

	// Декодируем успешный ответ
	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// mapError переводит не-2xx ответ в ошибку клиентской таксономии
func (c *Client) mapError(statusCode int, respBody []byte) error {
	switch statusCode {
	case http.StatusUnauthorized:
		return ErrAuthRequired
	case http.StatusNotFound:
		return ErrNotFound
	}

	var errResp api.ErrorResponse
	if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error != "" {
		return &UpstreamError{
			Code:    statusCode,
			Status:  errResp.Error,
			Message: errResp.Message,
		}
	}

	return fmt.Errorf("request failed with status %d: %s", statusCode, string(respBody))
}
