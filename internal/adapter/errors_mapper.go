package adapter

import (
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// mapHTTPError turns a non-2xx response into an [*APICallError]. Statuses are
// not subdivided: the remote body is kept for diagnosis instead.
func mapHTTPError(method, url string, resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	return &APICallError{
		Node:       NodeName,
		Method:     method,
		URL:        url,
		StatusCode: resp.StatusCode(),
		Body:       body,
		Err:        ErrUnexpectedStatus,
	}
}

func transportError(method, url string, err error) error {
	return &APICallError{
		Node:   NodeName,
		Method: method,
		URL:    url,
		Err:    err,
	}
}
