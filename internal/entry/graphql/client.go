// Package graphql executes queries against the upstream GraphQL endpoint
// with the current session's headers attached.
package graphql

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/dn1t/dutlife-api/internal/entry/session"
)

// CredentialSource yields the credential to attach to a request, refreshing
// it as needed. An empty credential means the call goes out unauthenticated.
type CredentialSource interface {
	Acquire(ctx context.Context) session.Credential
}

type Client struct {
	http     *http.Client
	endpoint string
	creds    CredentialSource
	log      *zap.Logger
}

func NewClient(httpClient *http.Client, baseURL string, creds CredentialSource, log *zap.Logger) *Client {
	return &Client{
		http:     httpClient,
		endpoint: baseURL + "/graphql",
		creds:    creds,
		log:      log,
	}
}

type request struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type responseError struct {
	Message string `json:"message"`
}

// Execute posts one query and unmarshals the response's data field into out.
// The shape of data is the caller's contract with the upstream schema; it is
// not validated here.
func (c *Client) Execute(ctx context.Context, query string, variables map[string]any, out any) error {
	cred := c.creds.Acquire(ctx)

	body, err := json.Marshal(request{Query: query, Variables: variables})
	if err != nil {
		return fmt.Errorf("marshal graphql request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build graphql request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if cred.CSRFToken != "" {
		req.Header.Set("CSRF-Token", cred.CSRFToken)
	}
	if cred.XToken != "" {
		req.Header.Set("x-token", cred.XToken)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("post graphql query: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("graphql status %d", resp.StatusCode)
	}

	var decoded struct {
		Data   json.RawMessage `json:"data"`
		Errors []responseError `json:"errors"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return fmt.Errorf("decode graphql response: %w", err)
	}

	if len(decoded.Data) == 0 || bytes.Equal(decoded.Data, []byte("null")) {
		if len(decoded.Errors) > 0 {
			return fmt.Errorf("graphql error: %s", decoded.Errors[0].Message)
		}
		return fmt.Errorf("graphql response has no data")
	}
	if len(decoded.Errors) > 0 {
		c.log.Debug("graphql partial errors ignored",
			zap.Int("count", len(decoded.Errors)),
			zap.String("first", decoded.Errors[0].Message),
		)
	}

	if err := json.Unmarshal(decoded.Data, out); err != nil {
		return fmt.Errorf("unmarshal graphql data: %w", err)
	}

	return nil
}
