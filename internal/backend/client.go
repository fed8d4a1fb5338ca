package backend

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	authDTO "slot_reel/internal/api/dto/auth"
	reelDTO "slot_reel/internal/api/dto/reel"
	"slot_reel/internal/config"

	jsoniter "github.com/json-iterator/go"
)

var (
	ErrUnauthorized       = errors.New("backend: unauthorized")
	ErrNotEnoughBalance   = errors.New("backend: not enough balance")
	ErrWinAlreadyReported = errors.New("backend: win already reported")
	ErrInvalidWin         = errors.New("backend: win rejected")
)

// StatusError ответ сервера с кодом не из 2xx
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend: status %d", e.Code)
	}
	return fmt.Sprintf("backend: status %d: %s", e.Code, e.Message)
}

// Unwrap сводит известные коды к ошибкам пакета
func (e *StatusError) Unwrap() error {
	switch e.Code {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusPaymentRequired:
		return ErrNotEnoughBalance
	case http.StatusConflict:
		return ErrWinAlreadyReported
	case http.StatusUnprocessableEntity:
		return ErrInvalidWin
	default:
		return nil
	}
}

type Session struct {
	Token   string
	UserID  int
	Balance int
}

// Confirmation ставка списана, Balance - авторитетный баланс после списания
type Confirmation struct {
	SpinID  string
	Bet     int
	Balance int
}

type WinAck struct {
	SpinID  string
	Amount  int
	Balance int
}

// Client HTTP клиент к серверу барабана. Каждый вызов ограничен своим таймаутом
type Client struct {
	baseURL string
	timeout time.Duration
	http    *http.Client

	mu    sync.RWMutex
	token string
}

func NewClient(cfg config.BackendConfig) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.URL(), "/"),
		timeout: cfg.Timeout(),
		http:    &http.Client{},
		token:   cfg.Token(),
	}
}

func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

// Guest входит гостем и запоминает токен для следующих вызовов
func (c *Client) Guest(ctx context.Context) (Session, error) {
	var res authDTO.GuestResponse
	if err := c.do(ctx, http.MethodPost, "/auth/guest", nil, &res); err != nil {
		return Session{}, fmt.Errorf("guest login: %w", err)
	}
	c.SetToken(res.AccessToken)

	return Session{
		Token:   res.AccessToken,
		UserID:  res.UserID,
		Balance: res.Balance,
	}, nil
}

func (c *Client) FetchSequence(ctx context.Context) ([]int, error) {
	var res reelDTO.SequenceResponse
	if err := c.do(ctx, http.MethodGet, "/reel/sequence", nil, &res); err != nil {
		return nil, fmt.Errorf("fetch sequence: %w", err)
	}
	return res.Symbols, nil
}

func (c *Client) FetchBalance(ctx context.Context) (int, error) {
	var res reelDTO.DataResponse
	if err := c.do(ctx, http.MethodGet, "/reel/balance", nil, &res); err != nil {
		return 0, fmt.Errorf("fetch balance: %w", err)
	}
	return res.Balance, nil
}

func (c *Client) ConfirmSpin(ctx context.Context) (Confirmation, error) {
	var res reelDTO.SpinResponse
	if err := c.do(ctx, http.MethodPost, "/reel/spin", nil, &res); err != nil {
		return Confirmation{}, fmt.Errorf("confirm spin: %w", err)
	}
	return Confirmation{
		SpinID:  res.SpinID,
		Bet:     res.Bet,
		Balance: res.Balance,
	}, nil
}

func (c *Client) ReportWin(ctx context.Context, spinID string, amount int) (WinAck, error) {
	body := reelDTO.WinRequest{SpinID: spinID, Amount: amount}

	var res reelDTO.WinResponse
	if err := c.do(ctx, http.MethodPost, "/reel/win", body, &res); err != nil {
		return WinAck{}, fmt.Errorf("report win: %w", err)
	}
	return WinAck{
		SpinID:  res.SpinID,
		Amount:  res.Amount,
		Balance: res.Balance,
	}, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var bodyReader io.Reader
	if body != nil {
		buf, err := jsoniter.Marshal(body)
		if err != nil {
			return err
		}
		bodyReader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Только начало тела, сервер отвечает текстом http.Error
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return &StatusError{Code: resp.StatusCode, Message: strings.TrimSpace(string(msg))}
	}

	if out == nil {
		return nil
	}
	return jsoniter.NewDecoder(resp.Body).Decode(out)
}
