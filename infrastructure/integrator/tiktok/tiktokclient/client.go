package tiktokclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	tiktokdomain "github.com/andresholmo/tiktok-arbitrage-api/infrastructure/integrator/tiktok/domain"
	"github.com/andresholmo/tiktok-arbitrage-api/internal/config"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	GetCampaignReport(ctx context.Context, params tiktokdomain.ReportParams) (*tiktokdomain.ReportData, error)
	GetCampaigns(ctx context.Context, params tiktokdomain.CampaignParams) (*tiktokdomain.CampaignData, error)
	UpdateCampaignStatus(ctx context.Context, request tiktokdomain.StatusUpdateRequest) (*tiktokdomain.StatusUpdateData, error)
	UpdateCampaignBudget(ctx context.Context, request tiktokdomain.BudgetUpdateRequest) error
}

type TikTokClient struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	cfg        config.TikTok
}

func NewClient(cfg config.TikTok) Client {
	return NewClientWithHTTP(cfg, &http.Client{Timeout: 30 * time.Second})
}

func NewClientWithHTTP(cfg config.TikTok, httpClient *http.Client) Client {
	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}

	return &TikTokClient{
		httpClient: httpClient,
		limiter:    rate.NewLimiter(limit, 1),
		cfg:        cfg,
	}
}

func (c *TikTokClient) get(ctx context.Context, path string, params url.Values, out any) error {
	endpoint := fmt.Sprintf("%s/%s?%s", strings.TrimRight(c.cfg.BaseURL, "/"), path, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return errors.Wrap(err, "tiktok: erro ao criar a requisição")
	}

	return c.do(req, path, out)
}

func (c *TikTokClient) post(ctx context.Context, path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "tiktok: erro ao serializar payload")
	}

	endpoint := fmt.Sprintf("%s/%s", strings.TrimRight(c.cfg.BaseURL, "/"), path)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "tiktok: erro ao criar a requisição")
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, path, out)
}

func (c *TikTokClient) do(req *http.Request, path string, out any) error {
	if err := c.limiter.Wait(req.Context()); err != nil {
		return errors.Wrap(err, "tiktok: limite de requisições")
	}

	req.Header.Set("Access-Token", c.cfg.AccessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "tiktok: erro ao chamar %s", path)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "tiktok: erro ao ler resposta")
	}

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("tiktok: %s retornou status %s", path, resp.Status)
	}

	var envelope tiktokdomain.Envelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return errors.Wrap(err, "tiktok: erro ao decodificar resposta")
	}

	if envelope.Code != 0 {
		apiErr := &tiktokdomain.APIError{
			Code:      envelope.Code,
			Message:   envelope.Message,
			RequestID: envelope.RequestID,
		}

		logrus.WithFields(logrus.Fields{
			"path":         path,
			"code":         apiErr.Code,
			"request_id":   apiErr.RequestID,
			"auth_error":   apiErr.IsAuthError(),
			"rate_limited": apiErr.IsRateLimited(),
		}).Warn("tiktok: API retornou erro")

		return apiErr
	}

	if out == nil || len(envelope.Data) == 0 {
		return nil
	}

	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return errors.Wrapf(err, "tiktok: erro ao decodificar data de %s", path)
	}

	return nil
}
