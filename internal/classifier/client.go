// =============================================================================
// Customs Describer - Classification Client
// =============================================================================
//
// This module talks to the remote classification service. The whole batch
// of request items goes out in a single GraphQL mutation and the customs
// descriptions come back in the same order.
//
// REQUEST:
//   POST <endpoint>
//   credentialToken: <token>
//   {"query": <mutation>, "variables": {"inputs": [RequestItem, ...]}}
//
// RESPONSE:
//   {"data": {"classificationsCalculate": [{"id": ..., "customsDescription": ...}]}}
//
// FAILURES:
//   - Non-200 status         -> types.KindRemoteCallFailed (status + raw body)
//   - Missing result array   -> types.KindRemoteDataMissing (service "errors")
//   - Count or shape mismatch -> types.KindRemoteDataMissing
//
// No retries are attempted.
//
// =============================================================================

package classifier

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/ginjaninja78/customs-describer/internal/logger"
	"github.com/ginjaninja78/customs-describer/internal/types"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

// Mutation is the GraphQL document sent with every request.
const Mutation = `mutation GetSimpleClassification($inputs: [ClassificationCalculateInput!]!) {
    classificationsCalculate(input: $inputs) {
        id
        customsDescription
    }
}`

const (
	// CredentialHeader carries the service token.
	CredentialHeader = "credentialToken"

	// RequestIDHeader carries a per-call correlation ID.
	RequestIDHeader = "X-Request-ID"

	resultPath = "data.classificationsCalculate"
	errorsPath = "errors"
)

// Classifier turns request items into customs descriptions, one per item,
// in item order.
type Classifier interface {
	Classify(ctx context.Context, items []types.RequestItem) ([]string, error)
}

// =============================================================================
// CLIENT
// =============================================================================

// Options configures a Client.
type Options struct {
	// Endpoint is the full GraphQL URL.
	Endpoint string

	// Credential is the token sent in the credentialToken header. Required.
	Credential string

	// Timeout bounds the request. Zero means no client-side timeout.
	Timeout time.Duration

	// UserAgent is sent when non-empty.
	UserAgent string

	// Logger receives request/response diagnostics. Optional.
	Logger logger.Logger

	// HTTPClient replaces the underlying transport client. Optional.
	HTTPClient *http.Client
}

// Client is the resty-backed Classifier.
type Client struct {
	http     *resty.Client
	endpoint string
	log      logger.Logger
}

var _ Classifier = (*Client)(nil)

// New creates a Client.
func New(opts Options) (*Client, error) {
	if opts.Endpoint == "" {
		return nil, fmt.Errorf("classification endpoint is required")
	}
	if opts.Credential == "" {
		return nil, fmt.Errorf("credential token is required")
	}

	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	var client *resty.Client
	if opts.HTTPClient != nil {
		client = resty.NewWithClient(opts.HTTPClient)
	} else {
		client = resty.New()
	}

	client.
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetHeader(CredentialHeader, opts.Credential).
		SetRetryCount(0)

	if opts.Timeout > 0 {
		client.SetTimeout(opts.Timeout)
	}
	if opts.UserAgent != "" {
		client.SetHeader("User-Agent", opts.UserAgent)
	}

	return &Client{
		http:     client,
		endpoint: opts.Endpoint,
		log:      log,
	}, nil
}

// =============================================================================
// CLASSIFY
// =============================================================================

type graphQLRequest struct {
	Query     string           `json:"query"`
	Variables graphQLVariables `json:"variables"`
}

type graphQLVariables struct {
	Inputs []types.RequestItem `json:"inputs"`
}

// Classify sends all items in one request and returns the customs
// descriptions in item order.
func (c *Client) Classify(ctx context.Context, items []types.RequestItem) ([]string, error) {
	if len(items) == 0 {
		return []string{}, nil
	}

	requestID := uuid.NewString()
	c.log.Debug("Sending classification request", "items", len(items), "request_id", requestID)

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader(RequestIDHeader, requestID).
		SetBody(graphQLRequest{
			Query:     Mutation,
			Variables: graphQLVariables{Inputs: items},
		}).
		Post(c.endpoint)
	if err != nil {
		return nil, transformRequestError(err)
	}

	c.log.Debug("Classification response received",
		"status", resp.StatusCode(),
		"bytes", len(resp.Body()),
		"request_id", requestID,
	)

	if resp.StatusCode() != http.StatusOK {
		return nil, &types.Error{
			Kind:       types.KindRemoteCallFailed,
			StatusCode: resp.StatusCode(),
			Body:       string(resp.Body()),
		}
	}

	results, err := decodeResults(resp.Body())
	if err != nil {
		return nil, err
	}

	if len(results) != len(items) {
		return nil, &types.Error{
			Kind:   types.KindRemoteDataMissing,
			Detail: fmt.Sprintf("expected %d classifications, received %d", len(items), len(results)),
		}
	}

	descriptions := make([]string, len(results))
	for i, r := range results {
		descriptions[i] = r.CustomsDescription
	}
	return descriptions, nil
}

// decodeResults extracts the classificationsCalculate array from a 200 body.
func decodeResults(body []byte) ([]types.ClassificationResult, error) {
	if !gjson.ValidBytes(body) {
		return nil, &types.Error{
			Kind:   types.KindRemoteDataMissing,
			Detail: "response body is not valid JSON: " + string(body),
		}
	}

	result := gjson.GetBytes(body, resultPath)
	if !result.IsArray() {
		return nil, &types.Error{
			Kind:   types.KindRemoteDataMissing,
			Detail: serviceErrors(body),
		}
	}

	entries := result.Array()
	out := make([]types.ClassificationResult, len(entries))
	for i, entry := range entries {
		desc := entry.Get("customsDescription")
		if desc.Type != gjson.String {
			return nil, &types.Error{
				Kind:   types.KindRemoteDataMissing,
				Detail: fmt.Sprintf("classification %d has no customsDescription", i),
			}
		}
		out[i] = types.ClassificationResult{
			ID:                 entry.Get("id").String(),
			CustomsDescription: desc.String(),
		}
	}
	return out, nil
}

// serviceErrors returns the service-reported "errors" payload, indented.
func serviceErrors(body []byte) string {
	errs := gjson.GetBytes(body, errorsPath)
	if !errs.Exists() {
		return "response has no data and no errors"
	}
	return string(pretty.PrettyOptions([]byte(errs.Raw), &pretty.Options{Width: 80, Indent: "  "}))
}

// transformRequestError wraps transport failures that produced no response.
func transformRequestError(err error) error {
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("classification request canceled: %w", err)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("classification request timed out: %w", err)
	}
	return fmt.Errorf("classification request failed: %w", err)
}
