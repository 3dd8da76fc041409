// Package client implements the HTTP client for the yangshd management API.
//
// The daemon owns the configuration datastores; the console only fetches
// snapshots and forwards candidate operations. All calls are synchronous and
// report daemon-side failures verbatim.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DataType selects which datastore a fetch reads.
type DataType int

const (
	DataTypeConfig DataType = iota
	DataTypeState
	DataTypeAll
)

func (d DataType) String() string {
	switch d {
	case DataTypeConfig:
		return "config"
	case DataTypeState:
		return "state"
	case DataTypeAll:
		return "all"
	}
	return fmt.Sprintf("DataType(%d)", int(d))
}

// ConfigType selects a configuration datastore.
type ConfigType int

const (
	ConfigRunning ConfigType = iota
	ConfigCandidate
)

func (t ConfigType) String() string {
	if t == ConfigCandidate {
		return "candidate"
	}
	return "running"
}

// Format is a snapshot wire format.
type Format string

const (
	FormatJSON Format = "json"
	FormatXML  Format = "xml"
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "json":
		return FormatJSON, nil
	case "xml":
		return FormatXML, nil
	}
	return "", fmt.Errorf("unknown format %q", s)
}

// Status describes the daemon, shown in the shell banner.
type Status struct {
	Hostname string `json:"hostname"`
	Version  string `json:"version"`
	Uptime   string `json:"uptime"`
}

// Client talks to one yangshd instance.
type Client struct {
	base string
	http *http.Client
}

// New returns a client for the daemon at addr (host:port).
func New(addr string) *Client {
	return &Client{
		base: "http://" + addr,
		http: &http.Client{Timeout: 10 * time.Second},
	}
}

// Status fetches the daemon status.
func (c *Client) Status() (*Status, error) {
	body, err := c.get("/status", nil)
	if err != nil {
		return nil, err
	}
	var st Status
	if err := json.Unmarshal([]byte(body), &st); err != nil {
		return nil, fmt.Errorf("decode status: %w", err)
	}
	return &st, nil
}

// GetConfig fetches a configuration snapshot in the given format.
func (c *Client) GetConfig(t ConfigType, f Format, withDefaults bool) (string, error) {
	q := url.Values{"format": {string(f)}}
	if withDefaults {
		q.Set("with-defaults", "true")
	}
	return c.get("/config/"+t.String(), q)
}

// GetState fetches a state snapshot, optionally limited to a subtree.
func (c *Client) GetState(xpath string, f Format) (string, error) {
	q := url.Values{"format": {string(f)}}
	if xpath != "" {
		q.Set("xpath", xpath)
	}
	return c.get("/state", q)
}

// Set applies one configuration path to the candidate datastore.
func (c *Client) Set(path []string) error {
	return c.candidateOp("set", path, "")
}

// Delete removes one configuration path from the candidate datastore.
func (c *Client) Delete(path []string) error {
	return c.candidateOp("delete", path, "")
}

// Commit promotes the candidate datastore to running.
func (c *Client) Commit(comment string) error {
	return c.candidateOp("commit", nil, comment)
}

// Validate checks the candidate datastore without applying it.
func (c *Client) Validate() error {
	return c.candidateOp("validate", nil, "")
}

// Discard resets the candidate datastore to running.
func (c *Client) Discard() error {
	return c.candidateOp("discard", nil, "")
}

type candidateRequest struct {
	Path    []string `json:"path,omitempty"`
	Comment string   `json:"comment,omitempty"`
}

func (c *Client) candidateOp(op string, path []string, comment string) error {
	body, err := json.Marshal(candidateRequest{Path: path, Comment: comment})
	if err != nil {
		return err
	}
	resp, err := c.http.Post(c.base+"/candidate/"+op, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("%s: %s", op, readError(resp))
	}
	io.Copy(io.Discard, resp.Body)
	return nil
}

func (c *Client) get(path string, q url.Values) (string, error) {
	u := c.base + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	resp, err := c.http.Get(u)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", path, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return "", fmt.Errorf("fetch %s: %s", path, readError(resp))
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", path, err)
	}
	return string(data), nil
}

func readError(resp *http.Response) string {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	msg := strings.TrimSpace(string(data))
	if msg == "" {
		return resp.Status
	}
	return msg
}
