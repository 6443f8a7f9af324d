// Package beetlerank is a small client for the BeetleRank leaderboard API.
//
// It speaks to the real service and to the dev mock alike: point it at
// "http://localhost:3000/api/dev" during development and at the production
// base URL otherwise. Cup and map listings rarely change, so they are cached
// for the lifetime of the Client; rankings and checkpoints are always fetched.
package beetlerank

import (
	"bytes"
	"encoding/json"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"

	"github.com/trentd187/beetlerank-devapi/internal/fixtures"
	"github.com/trentd187/beetlerank-devapi/internal/models"
)

// ErrNotFound is returned (wrapped) when the API answers 404.
var ErrNotFound = errors.New("not found")

// DefaultTimeout bounds every request made by a Client created with a zero timeout.
const DefaultTimeout = 10 * time.Second

// Client is safe for concurrent use.
type Client struct {
	baseURL string
	timeout time.Duration

	mu   sync.Mutex
	cups []string
	maps map[string][]string
}

// NewClient returns a client for the API rooted at baseURL
// (e.g. "http://localhost:3000/api/dev").
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: timeout,
		maps:    make(map[string][]string),
	}
}

// Info reports whether the API is up.
func (c *Client) Info() (bool, error) {
	var resp models.StatusResponse
	if err := c.getJSON("/info", &resp); err != nil {
		return false, err
	}
	return resp.Succeed, nil
}

// Top3 reports whether guildhall has a leaderboard.
func (c *Client) Top3(guildhall string) (bool, error) {
	var resp models.StatusResponse
	if err := c.getJSON("/top3/"+url.PathEscape(guildhall), &resp); err != nil {
		return false, err
	}
	return resp.Succeed, nil
}

// Ranking fetches the top entries of guildhall plus the window around user.
func (c *Client) Ranking(guildhall, user string) (models.RankingResponse, error) {
	var resp models.RankingResponse
	err := c.getJSON("/top3/"+url.PathEscape(guildhall)+"/"+url.PathEscape(user), &resp)
	return resp, err
}

// Cups lists the cups. The first successful answer is cached.
func (c *Client) Cups() ([]string, error) {
	c.mu.Lock()
	cached := c.cups
	c.mu.Unlock()
	if cached != nil {
		return append([]string(nil), cached...), nil
	}

	var resp models.CupsResponse
	if err := c.getJSON("/cups", &resp); err != nil {
		return nil, err
	}
	if resp.Cups == nil {
		resp.Cups = []string{}
	}

	c.mu.Lock()
	c.cups = resp.Cups
	c.mu.Unlock()
	return append([]string(nil), resp.Cups...), nil
}

// Maps lists the maps of cup. Answers are cached per cup; failures are not.
func (c *Client) Maps(cup string) ([]string, error) {
	c.mu.Lock()
	cached, ok := c.maps[cup]
	c.mu.Unlock()
	if ok {
		return append([]string(nil), cached...), nil
	}

	var resp models.MapsResponse
	if err := c.getJSON("/maps/"+url.PathEscape(cup), &resp); err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.maps[cup] = resp.Maps
	c.mu.Unlock()
	return append([]string(nil), resp.Maps...), nil
}

// Checkpoints downloads and parses the checkpoints CSV.
func (c *Client) Checkpoints() ([]models.Checkpoint, error) {
	body, err := c.get("/uploads/checkpoints/")
	if err != nil {
		return nil, err
	}
	rows, err := fixtures.ParseCheckpointsCSV(bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "parse checkpoints")
	}
	return rows, nil
}

func (c *Client) getJSON(path string, out interface{}) error {
	body, err := c.get(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return errors.Wrapf(err, "decode GET %s", path)
	}
	return nil
}

// get performs a GET and returns the body of a 200 response.
func (c *Client) get(path string) ([]byte, error) {
	agent := fiber.Get(c.baseURL + path).Timeout(c.timeout)
	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return nil, errors.Wrapf(errs[0], "GET %s", path)
	}

	switch code {
	case fiber.StatusOK:
		return body, nil
	case fiber.StatusNotFound:
		return nil, errors.Wrapf(ErrNotFound, "GET %s", path)
	default:
		msg := gjson.GetBytes(body, "error").String()
		if msg == "" {
			msg = utils.StatusMessage(code)
		}
		return nil, errors.Errorf("GET %s: status %d: %s", path, code, msg)
	}
}
