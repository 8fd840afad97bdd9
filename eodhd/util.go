package eodhd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/PaesslerAG/jsonpath"
	log "github.com/sirupsen/logrus"
)

// loggingTransport logs every response it receives.
type loggingTransport struct {
	base http.RoundTripper
}

// RoundTrip implements the http.RoundTripper interface.
func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := t.base.RoundTrip(req)
	// URL.Path only, the query holds the api key.
	entry := log.WithFields(log.Fields{
		"method":  req.Method,
		"host":    req.URL.Host,
		"path":    req.URL.Path,
		"elapsed": time.Since(start).Round(time.Millisecond),
	})
	if err != nil {
		entry.Warnf("eodhd request failed: %v", err)
		return nil, err
	}
	entry.WithField("status", resp.StatusCode).Debug("eodhd")
	return resp, nil
}

// newLoggingClient returns an http.Client that logs every call.
func newLoggingClient() *http.Client {
	client := new(http.Client)
	client.Transport = &loggingTransport{base: http.DefaultTransport}
	return client
}

// jwget performs an HTTP GET request to the given address and unmarshals the
// JSON response body into the provided data structure.
func jwget(ctx context.Context, client *http.Client, addr string, data any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return err
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		msg := bytes.TrimSpace(buf.Bytes())
		if len(msg) > 200 {
			msg = msg[:200]
		}
		return fmt.Errorf("cannot http GET %v%v: %v %s", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status, msg)
	}
	return json.Unmarshal(buf.Bytes(), data)
}

// jsonpathGet evaluates path on a decoded JSON value.
//
// jsonpath is never clear about whether it returns a list of 1 answer, or a
// single answer: this keeps the first one if any.
func jsonpathGet(path string, jobj any) (any, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("error parsing %q: %w", path, err)
	}
	if jlist, ok := jval.([]any); ok {
		if len(jlist) == 0 {
			return nil, fmt.Errorf("error parsing %q: no value", path)
		}
		jval = jlist[0]
	}
	return jval, nil
}

// jsonpathString is jsonpathGet for string values, null is the empty string.
func jsonpathString(path string, jobj any) (string, error) {
	jval, err := jsonpathGet(path, jobj)
	if err != nil {
		return "", err
	}
	switch v := jval.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	default:
		return "", fmt.Errorf("error parsing %q: not a string %v", path, jval)
	}
}
