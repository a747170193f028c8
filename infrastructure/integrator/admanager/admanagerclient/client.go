package admanagerclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	admanagerdomain "github.com/andresholmo/tiktok-arbitrage-api/infrastructure/integrator/admanager/domain"
	"github.com/andresholmo/tiktok-arbitrage-api/internal/config"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const adManagerScope = "https://www.googleapis.com/auth/admanager"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	CreateReport(ctx context.Context, report admanagerdomain.Report) (*admanagerdomain.Report, error)
	RunReport(ctx context.Context, reportName string) (*admanagerdomain.Operation, error)
	GetOperation(ctx context.Context, operationName string) (*admanagerdomain.Operation, error)
	FetchRows(ctx context.Context, resultName string, pageSize int, pageToken string) (*admanagerdomain.FetchRowsResponse, error)
}

type AdManagerClient struct {
	httpClient *http.Client
	cfg        config.AdManager
}

// NewClient cria o client autenticado com o refresh token da conta de serviço do Ad Manager
func NewClient(ctx context.Context, cfg config.AdManager) Client {
	endpoint := google.Endpoint
	if cfg.TokenURL != "" {
		endpoint = oauth2.Endpoint{TokenURL: cfg.TokenURL, AuthStyle: oauth2.AuthStyleInParams}
	}

	oauthConfig := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Endpoint:     endpoint,
		Scopes:       []string{adManagerScope},
	}

	base := &http.Client{Timeout: 60 * time.Second}
	ctx = context.WithValue(ctx, oauth2.HTTPClient, base)

	tokenSource := oauthConfig.TokenSource(ctx, &oauth2.Token{RefreshToken: cfg.RefreshToken})

	return NewClientWithHTTP(cfg, oauth2.NewClient(ctx, tokenSource))
}

func NewClientWithHTTP(cfg config.AdManager, httpClient *http.Client) Client {
	return &AdManagerClient{
		httpClient: httpClient,
		cfg:        cfg,
	}
}

func (c *AdManagerClient) CreateReport(ctx context.Context, report admanagerdomain.Report) (*admanagerdomain.Report, error) {
	var created admanagerdomain.Report
	path := fmt.Sprintf("networks/%s/reports", c.cfg.NetworkCode)

	if err := c.do(ctx, http.MethodPost, path, nil, report, &created); err != nil {
		return nil, err
	}

	return &created, nil
}

func (c *AdManagerClient) RunReport(ctx context.Context, reportName string) (*admanagerdomain.Operation, error) {
	var operation admanagerdomain.Operation
	if err := c.do(ctx, http.MethodPost, reportName+":run", nil, struct{}{}, &operation); err != nil {
		return nil, err
	}

	return &operation, nil
}

func (c *AdManagerClient) GetOperation(ctx context.Context, operationName string) (*admanagerdomain.Operation, error) {
	var operation admanagerdomain.Operation
	if err := c.do(ctx, http.MethodGet, operationName, nil, nil, &operation); err != nil {
		return nil, err
	}

	return &operation, nil
}

func (c *AdManagerClient) FetchRows(ctx context.Context, resultName string, pageSize int, pageToken string) (*admanagerdomain.FetchRowsResponse, error) {
	query := url.Values{}
	if pageSize > 0 {
		query.Set("pageSize", strconv.Itoa(pageSize))
	}
	if pageToken != "" {
		query.Set("pageToken", pageToken)
	}

	var rows admanagerdomain.FetchRowsResponse
	if err := c.do(ctx, http.MethodGet, resultName+":fetchRows", query, nil, &rows); err != nil {
		return nil, err
	}

	return &rows, nil
}

func (c *AdManagerClient) do(ctx context.Context, method, path string, query url.Values, payload any, out any) error {
	endpoint := fmt.Sprintf("%s/%s", strings.TrimRight(c.cfg.BaseURL, "/"), strings.TrimLeft(path, "/"))
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return errors.Wrap(err, "ad manager: erro ao serializar payload")
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return errors.Wrap(err, "ad manager: erro ao criar a requisição")
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "ad manager: erro ao chamar %s", path)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "ad manager: erro ao ler resposta")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp admanagerdomain.ErrorResponse
		if err := json.Unmarshal(data, &errResp); err == nil && errResp.Error != nil {
			logrus.WithFields(logrus.Fields{
				"path":       path,
				"code":       errResp.Error.Code,
				"status":     errResp.Error.Status,
				"auth_error": errResp.Error.IsAuthError(),
			}).Warn("ad manager: API retornou erro")

			return errResp.Error
		}

		return errors.Errorf("ad manager: %s retornou status %s", path, resp.Status)
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return errors.Wrapf(err, "ad manager: erro ao decodificar resposta de %s", path)
	}

	return nil
}
