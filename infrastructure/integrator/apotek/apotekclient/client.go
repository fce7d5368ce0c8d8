package apotekclient

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	apotekdomain "github.com/vfg2006/apotek-report-api/infrastructure/integrator/apotek/domain"
	"github.com/vfg2006/apotek-report-api/internal/config"
	"github.com/vfg2006/apotek-report-api/pkg/log"
)

var json = jsoniter.Config{UseNumber: true}.Froze()

type Client interface {
	GetOrders(ctx context.Context) ([]apotekdomain.Order, error)
	GetOrderLines(ctx context.Context, orderID string) ([]apotekdomain.OrderLine, error)
	GetProducts(ctx context.Context) ([]apotekdomain.Product, error)
}

type ApotekClient struct {
	httpClient *http.Client
	config     config.Apotek
}

// NewClient cria o cliente da API do Apotek. Timeout zero significa sem limite.
func NewClient(cfg *config.Config) Client {
	return &ApotekClient{
		httpClient: &http.Client{
			Timeout: cfg.Apotek.HTTPTimeout,
		},
		config: cfg.Apotek,
	}
}

func (c *ApotekClient) GetOrders(ctx context.Context) ([]apotekdomain.Order, error) {
	rows, status, err := c.get(ctx, c.config.OrdersPath)
	if err != nil {
		return nil, err
	}
	if !isSuccess(status) {
		return nil, errors.Errorf("requisição de pedidos falhou com status: %d", status)
	}

	return decodeRows[apotekdomain.Order](ctx, rows), nil
}

// GetOrderLines retorna lista vazia quando o endpoint responde com status de erro.
func (c *ApotekClient) GetOrderLines(ctx context.Context, orderID string) ([]apotekdomain.OrderLine, error) {
	p := strings.ReplaceAll(c.config.OrderLinesPath, "{id}", url.PathEscape(strings.TrimSpace(orderID)))

	rows, status, err := c.get(ctx, p)
	if err != nil {
		return nil, err
	}
	if !isSuccess(status) {
		log.ForContext(ctx).WithFields(log.Fields{
			"order_id": orderID,
			"status":   status,
		}).Debug("Detalhes do pedido indisponíveis, considerando sem itens")
		return []apotekdomain.OrderLine{}, nil
	}

	return decodeRows[apotekdomain.OrderLine](ctx, rows), nil
}

func (c *ApotekClient) GetProducts(ctx context.Context) ([]apotekdomain.Product, error) {
	rows, status, err := c.get(ctx, c.config.ProductsPath)
	if err != nil {
		return nil, err
	}
	if !isSuccess(status) {
		return nil, errors.Errorf("requisição de produtos falhou com status: %d", status)
	}

	return decodeRows[apotekdomain.Product](ctx, rows), nil
}

// get executa a requisição e devolve as linhas do corpo. Em status de erro o corpo é ignorado.
func (c *ApotekClient) get(ctx context.Context, path string) ([]any, int, error) {
	endpoint := strings.TrimRight(c.config.BaseURL, "/") + "/" + strings.TrimLeft(path, "/")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, 0, errors.Wrap(err, "erro ao criar a requisição")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, errors.Wrapf(err, "erro ao executar a requisição %s", endpoint)
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return nil, resp.StatusCode, nil
	}

	var body any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, resp.StatusCode, errors.Wrap(err, "erro ao decodificar a resposta")
	}

	return unwrapEnvelope(body), resp.StatusCode, nil
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}
