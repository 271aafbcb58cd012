package catalogservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/m04kA/SMC-CourtScheduleService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с CatalogService (каталог филиалов и кортов)
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента CatalogService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// ListBranches получает все филиалы с расписанием работы
func (c *Client) ListBranches(ctx context.Context) ([]domain.Branch, error) {
	var wire []Branch
	if err := c.getJSON(ctx, c.baseURL+"/internal/branches", &wire); err != nil {
		return nil, err
	}

	branches := make([]domain.Branch, 0, len(wire))
	for _, b := range wire {
		branches = append(branches, b.ToDomain())
	}
	return branches, nil
}

// GetBranch получает филиал по ID
func (c *Client) GetBranch(ctx context.Context, branchID int64) (*domain.Branch, error) {
	var wire Branch
	url := fmt.Sprintf("%s/internal/branches/%d", c.baseURL, branchID)
	if err := c.getJSONWithNotFound(ctx, url, &wire, ErrBranchNotFound); err != nil {
		return nil, err
	}

	branch := wire.ToDomain()
	return &branch, nil
}

// ListCourts получает корты, опционально отфильтрованные по городу/филиалу
func (c *Client) ListCourts(ctx context.Context, filter domain.CourtFilter) ([]domain.Court, error) {
	query := url.Values{}
	if filter.CityID != nil {
		query.Set("city_id", strconv.FormatInt(*filter.CityID, 10))
	}
	if filter.BranchID != nil {
		query.Set("branch_id", strconv.FormatInt(*filter.BranchID, 10))
	}

	endpoint := c.baseURL + "/internal/courts"
	if encoded := query.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	var wire []Court
	if err := c.getJSON(ctx, endpoint, &wire); err != nil {
		return nil, err
	}

	courts := make([]domain.Court, 0, len(wire))
	for _, court := range wire {
		courts = append(courts, court.ToDomain())
	}
	return courts, nil
}

// GetCourt получает корт по ID с полными массивами правил
// Используется и для свежего чтения перед мутацией, и для пост-записи
func (c *Client) GetCourt(ctx context.Context, courtID int64) (*domain.Court, error) {
	var wire Court
	url := fmt.Sprintf("%s/internal/courts/%d", c.baseURL, courtID)
	if err := c.getJSONWithNotFound(ctx, url, &wire, ErrCourtNotFound); err != nil {
		return nil, err
	}

	court := wire.ToDomain()
	return &court, nil
}

// UpdateCourt заменяет полную запись корта в каталоге
// Каталог не поддерживает частичные обновления, поэтому запись несет все поля.
// Запись условная: версия из прочитанной записи отправляется обратно,
// при несовпадении каталог отвечает 409 и мы возвращаем ErrVersionConflict
func (c *Client) UpdateCourt(ctx context.Context, court *domain.Court) (*domain.Court, error) {
	payload, err := json.Marshal(CourtFromDomain(*court))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal court: %v", ErrInternal, err)
	}

	url := fmt.Sprintf("%s/internal/courts/%d", c.baseURL, court.ID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("If-Match", strconv.FormatInt(court.Version, 10))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrCourtNotFound
	case http.StatusConflict, http.StatusPreconditionFailed:
		c.log.Warn("UpdateCourt: version conflict for court id=%d version=%d", court.ID, court.Version)
		return nil, ErrVersionConflict
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: %s", ErrValidation, string(body))
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var wire Court
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	updated := wire.ToDomain()
	return &updated, nil
}

// getJSON выполняет GET запрос и декодирует JSON ответ
func (c *Client) getJSON(ctx context.Context, url string, dest interface{}) error {
	return c.getJSONWithNotFound(ctx, url, dest, nil)
}

// getJSONWithNotFound как getJSON, но 404 мапится в notFoundErr
func (c *Client) getJSONWithNotFound(ctx context.Context, url string, dest interface{}, notFoundErr error) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		if notFoundErr != nil {
			return notFoundErr
		}
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code 404: %s", ErrInvalidResponse, string(body))
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}
