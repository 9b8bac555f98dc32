package main

import (
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

func newClient(baseURL string) *resty.Client {
	return resty.New().
		SetBaseURL(baseURL).
		SetTimeout(15*time.Second).
		SetHeader("Content-Type", "application/json")
}

// checkStatus converts non-2xx responses into an error with the body attached.
func checkStatus(resp *resty.Response, err error) (*resty.Response, error) {
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("http %d: %s", resp.StatusCode(), resp.String())
	}
	return resp, nil
}

func postEntries(baseURL, userID string, payload interface{}) (string, error) {
	resp, err := checkStatus(newClient(baseURL).R().
		SetBody(payload).
		Post(fmt.Sprintf("/api/users/%s/entries", userID)))
	if err != nil {
		return "", err
	}
	return resp.String(), nil
}

func getAnalytics(baseURL, userID string) (string, error) {
	resp, err := checkStatus(newClient(baseURL).R().
		Get(fmt.Sprintf("/api/users/%s/analytics", userID)))
	if err != nil {
		return "", err
	}
	return resp.String(), nil
}

func deleteEntries(baseURL, userID string) (string, error) {
	resp, err := checkStatus(newClient(baseURL).R().
		Delete(fmt.Sprintf("/api/users/%s/entries", userID)))
	if err != nil {
		return "", err
	}
	return resp.String(), nil
}
