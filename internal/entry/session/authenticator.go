package session

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/net/html"
)

const signinMutation = `mutation ($username: String!, $password: String!) {
  signinByUsername(username: $username, password: $password) {
    id
    username
    nickname
  }
}`

var errNextDataMissing = errors.New("__NEXT_DATA__ script block not found")

// Authenticator acquires a usable upstream credential. Every failure path
// degrades to the last-known snapshot; it never returns an error.
type Authenticator struct {
	store    *Store
	http     *http.Client
	baseURL  string
	username string
	password string
	ttl      time.Duration
	log      *zap.Logger
	now      func() time.Time
}

type Config struct {
	BaseURL    string
	Username   string
	Password   string
	SessionTTL time.Duration
}

func NewAuthenticator(store *Store, httpClient *http.Client, cfg Config, log *zap.Logger) *Authenticator {
	return &Authenticator{
		store:    store,
		http:     httpClient,
		baseURL:  cfg.BaseURL,
		username: cfg.Username,
		password: cfg.Password,
		ttl:      cfg.SessionTTL,
		log:      log,
		now:      time.Now,
	}
}

// Acquire returns a valid credential, refreshing when the stored snapshot is
// stale. The fresh path performs no network calls.
func (a *Authenticator) Acquire(ctx context.Context) Credential {
	cred := a.store.Load()
	if cred.Fresh(a.now(), a.ttl) {
		return cred
	}
	return a.refresh(ctx, true)
}

// refresh re-reads the landing page for session data. allowSignIn bounds the
// flow to a single sign-in attempt followed by one more landing fetch.
func (a *Authenticator) refresh(ctx context.Context, allowSignIn bool) Credential {
	last := a.store.Load()

	payload, err := a.fetchLandingData(ctx)
	if err != nil {
		a.log.Warn("entry landing page fetch failed", zap.Error(err))
		return last
	}

	csrfToken := payload.Props.InitialProps.CSRFToken
	xToken := ""
	if u := payload.Props.InitialState.Common.User; u != nil {
		xToken = u.XToken
	}

	if xToken == "" {
		if !allowSignIn {
			a.log.Warn("entry session token still missing after sign-in")
			return last
		}
		if err := a.signIn(ctx, csrfToken); err != nil {
			a.log.Warn("entry sign-in failed", zap.Error(err))
			return last
		}
		return a.refresh(ctx, false)
	}

	cred := Credential{
		CSRFToken:   csrfToken,
		XToken:      xToken,
		RefreshedAt: a.now(),
	}
	a.store.Save(cred)
	a.log.Debug("entry session refreshed")
	return cred
}

type nextDataPayload struct {
	Props struct {
		InitialProps struct {
			CSRFToken string `json:"csrfToken"`
		} `json:"initialProps"`
		InitialState struct {
			Common struct {
				User *struct {
					XToken string `json:"xToken"`
				} `json:"user"`
			} `json:"common"`
		} `json:"initialState"`
	} `json:"props"`
}

func (a *Authenticator) fetchLandingData(ctx context.Context) (nextDataPayload, error) {
	var payload nextDataPayload

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL, nil)
	if err != nil {
		return payload, fmt.Errorf("build landing request: %w", err)
	}

	resp, err := a.http.Do(req)
	if err != nil {
		return payload, fmt.Errorf("fetch landing page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return payload, fmt.Errorf("landing page status %d", resp.StatusCode)
	}

	raw, err := extractNextData(resp.Body)
	if err != nil {
		return payload, err
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return payload, fmt.Errorf("parse __NEXT_DATA__: %w", err)
	}

	return payload, nil
}

// extractNextData locates the embedded <script id="__NEXT_DATA__"> block and
// returns its JSON body.
func extractNextData(r io.Reader) ([]byte, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse landing html: %w", err)
	}

	script := findNextDataScript(doc)
	if script == nil || script.FirstChild == nil || script.FirstChild.Type != html.TextNode {
		return nil, errNextDataMissing
	}

	return []byte(script.FirstChild.Data), nil
}

func findNextDataScript(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "script" {
		for _, attr := range n.Attr {
			if attr.Key == "id" && attr.Val == "__NEXT_DATA__" {
				return n
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findNextDataScript(c); found != nil {
			return found
		}
	}
	return nil
}

// signIn runs the credential-based mutation so the next landing fetch sees a
// logged-in session. An error here is informational only; the caller falls
// back to the last-known credential.
func (a *Authenticator) signIn(ctx context.Context, csrfToken string) error {
	body, err := json.Marshal(map[string]any{
		"query": signinMutation,
		"variables": map[string]any{
			"username": a.username,
			"password": a.password,
		},
	})
	if err != nil {
		return fmt.Errorf("marshal sign-in body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/graphql", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build sign-in request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if csrfToken != "" {
		req.Header.Set("CSRF-Token", csrfToken)
	}

	resp, err := a.http.Do(req)
	if err != nil {
		return fmt.Errorf("post sign-in mutation: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("sign-in status %d", resp.StatusCode)
	}

	var decoded struct {
		Data struct {
			SigninByUsername *struct {
				ID string `json:"id"`
			} `json:"signinByUsername"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return fmt.Errorf("decode sign-in response: %w", err)
	}
	if decoded.Data.SigninByUsername == nil {
		return errors.New("sign-in rejected")
	}

	return nil
}
