package cloudendure

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/opsgrid/checks/internal/check"
)

// DefaultBaseURL is the production CloudEndure API endpoint.
const DefaultBaseURL = "https://dashboard.cloudendure.com/latest"

// Client talks to the CloudEndure API. Every call is a POST of a JSON
// parameter object to /<function>; after Login the session cookie is
// sent on each request.
type Client struct {
	baseURL    string
	httpClient *http.Client
	session    string
}

// NewClient creates a client for the given API base URL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Machine is one replicated instance as returned by listMachines.
// lastConsistencyTime is kept raw because the API reports null (or
// worse) for hosts that are not replicating.
type Machine struct {
	ID                  string          `json:"id"`
	Name                string          `json:"name"`
	ReplicationState    string          `json:"replicationState"`
	LastConsistencyTime json.RawMessage `json:"lastConsistencyTime"`
}

type userDetailsResult struct {
	Result struct {
		MirrorLocation string `json:"mirrorLocation"`
	} `json:"result"`
}

type listMachinesResult struct {
	Result []Machine `json:"result"`
}

// Login authenticates and captures the session cookie for later calls.
func (c *Client) Login(ctx context.Context, username, password string) error {
	params := map[string]string{"username": username, "password": password}
	resp, err := c.post(ctx, "login", params)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	for _, cookie := range resp.Cookies() {
		if strings.HasPrefix(cookie.Name, "session") {
			c.session = cookie.Name + "=" + cookie.Value
			return nil
		}
	}
	return check.Transportf("login response did not include a session cookie")
}

// MirrorLocation fetches the replica location from the user details.
func (c *Client) MirrorLocation(ctx context.Context) (string, error) {
	resp, err := c.post(ctx, "getUserDetails", map[string]string{})
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var details userDetailsResult
	if err := json.NewDecoder(resp.Body).Decode(&details); err != nil {
		return "", check.Parsef("decoding getUserDetails response: %v", err)
	}
	if details.Result.MirrorLocation == "" {
		return "", check.Parsef("getUserDetails response did not include a mirrorLocation")
	}
	return details.Result.MirrorLocation, nil
}

// ListMachines fetches every replicated instance in the location.
func (c *Client) ListMachines(ctx context.Context, location string) ([]Machine, error) {
	resp, err := c.post(ctx, "listMachines", map[string]string{"location": location})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var machines listMachinesResult
	if err := json.NewDecoder(resp.Body).Decode(&machines); err != nil {
		return nil, check.Parsef("decoding listMachines response: %v", err)
	}
	return machines.Result, nil
}

// Logout ends the session. Best effort: the API wants a logout but a
// failure here must never change the check outcome.
func (c *Client) Logout(ctx context.Context) {
	resp, err := c.post(ctx, "logout", map[string]string{})
	if err != nil {
		slog.Debug("logout failed", "error", err)
		return
	}
	resp.Body.Close()
}

func (c *Client) post(ctx context.Context, function string, params any) (*http.Response, error) {
	data, err := json.Marshal(params)
	if err != nil {
		return nil, check.Transportf("marshal %s request: %v", function, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/"+function, bytes.NewReader(data))
	if err != nil {
		return nil, check.Transportf("create %s request: %v", function, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.session != "" {
		req.Header.Set("Cookie", c.session)
	}

	// Never log params: the login call carries the password.
	slog.Debug("calling CloudEndure API", "function", function)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, check.Transportf("connection to CloudEndure API failed on %s: %v", function, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, check.Transportf("%s call returned HTTP code %s", function, resp.Status)
	}
	return resp, nil
}
