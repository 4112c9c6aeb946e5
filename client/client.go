package client

import (
	"encoding/json"
	"fmt"
	"time"

	fastshot "github.com/opus-domini/fast-shot"

	"portfolioadmin/credentials"
)

// API talks to the remote portfolio service. Every request carries a bearer
// token when the credential provider holds one; a missing token is not an
// error here, the server answers with a 401 instead.
type API struct {
	baseURL string
	timeout time.Duration
	creds   credentials.Provider
}

func New(baseURL string, timeout time.Duration, creds credentials.Provider) *API {
	return &API{
		baseURL: baseURL,
		timeout: timeout,
		creds:   creds,
	}
}

// http builds a fresh client so that a token stored after login is picked up
// by the next request without rebuilding the API.
func (a *API) http() fastshot.ClientHttpMethods {
	c := fastshot.NewClient(a.baseURL)
	if a.creds != nil {
		if token, err := a.creds.Get(); err == nil && token != "" {
			c.Auth().BearerToken(token)
		}
	}

	return c.Config().SetTimeout(a.timeout).
		Config().SetFollowRedirects(true).
		Build()
}

// RequestError is a non-2xx response translated into a message the user can
// read. Message holds the server's wording when the body carried one;
// Fallback is the per-operation default.
type RequestError struct {
	StatusCode int
	Message    string
	Fallback   string
}

func (e *RequestError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Fallback
}

// serverMessage extracts the error wording from the two body shapes the
// service uses: {"errors":[{"message":...}]} and {"error":...}.
func serverMessage(body string) string {
	var payload struct {
		Errors []struct {
			Message string `json:"message"`
		} `json:"errors"`
		Error string `json:"error"`
	}
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		return ""
	}
	if len(payload.Errors) > 0 && payload.Errors[0].Message != "" {
		return payload.Errors[0].Message
	}
	return payload.Error
}

func requestError(resp fastshot.Response, fallback string) error {
	reqErr := &RequestError{
		StatusCode: resp.Status().Code(),
		Fallback:   fallback,
	}
	body, err := resp.Body().AsString()
	if err != nil {
		return reqErr
	}
	reqErr.Message = serverMessage(body)
	return reqErr
}

func parseResponse[T any](resp fastshot.Response, fallback string, result *T) error {
	if resp.Status().IsError() {
		return requestError(resp, fallback)
	}

	err := resp.Body().AsJSON(result)
	if err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	return nil
}
