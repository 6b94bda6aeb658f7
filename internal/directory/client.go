// Package directory provides a client for the venue's identity directory,
// which maps profile identifiers to profiles and their verified emails.
package directory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/openvenue/recruiter/internal/pkg/httpretry"
)

var (
	// ErrInvalidID means the directory rejected the identifier's shape.
	ErrInvalidID = errors.New("directory: invalid profile id")
	// ErrNotFound means the identifier is well-formed but no profile exists.
	ErrNotFound = errors.New("directory: profile not found")
)

// Profile is a directory entry for one person.
type Profile struct {
	ID             string   `json:"id"`
	FullName       string   `json:"fullname"`
	VerifiedEmails []string `json:"verified_emails"`
}

// Client calls the identity directory REST API.
type Client struct {
	baseURL string
	apiKey  string
	http    httpretry.HTTPDoer
}

// NewClient creates a directory client. maxRetries and timeout follow the
// directory section of the service config.
func NewClient(baseURL, apiKey string, timeout time.Duration, maxRetries int) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    httpretry.NewRetryClient(&http.Client{Timeout: timeout}, maxRetries),
	}
}

// Resolve looks up a profile by its identifier.
// Returns ErrInvalidID for malformed identifiers (HTTP 400), ErrNotFound
// when no profile exists (HTTP 404), and a wrapped transport error for
// anything else. Callers classify the latter as directory-unavailable.
func (c *Client) Resolve(ctx context.Context, profileID string) (*Profile, error) {
	endpoint := fmt.Sprintf("%s/profiles/%s", c.baseURL, url.PathEscape(profileID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("directory: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("directory: lookup %s: %w", profileID, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// fall through to decode
	case http.StatusBadRequest:
		return nil, ErrInvalidID
	case http.StatusNotFound:
		return nil, ErrNotFound
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("directory: lookup %s: status %d: %s", profileID, resp.StatusCode, string(body))
	}

	var profile Profile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("directory: decode profile %s: %w", profileID, err)
	}
	return &profile, nil
}
