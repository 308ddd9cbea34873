package turbosms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент SMS-шлюза TurboSMS
// Таймаут ограничен на уровне http.Client - отправка SMS не должна
// надолго блокировать ответ на бронирование
type Client struct {
	url        string
	token      string
	sender     string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента TurboSMS
func NewClient(url, token, sender string, timeout time.Duration, log Logger) *Client {
	return &Client{
		url:    url,
		token:  token,
		sender: sender,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Send отправляет SMS на указанный номер
// phone: только цифры, в формате 380XXXXXXXXX
func (c *Client) Send(ctx context.Context, phone, text string) error {
	payload := sendRequest{
		Recipients: []string{phone},
		SMS: smsBody{
			Sender: c.sender,
			Text:   text,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal payload: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	var result sendResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if result.ResponseCode != 0 {
		return fmt.Errorf("%w: response_code=%d status=%s", ErrSendFailed, result.ResponseCode, result.ResponseStatus)
	}

	c.log.Info("SMS to %s sent successfully", phone)
	return nil
}
