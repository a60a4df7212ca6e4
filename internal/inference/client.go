package inference

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/limbo/heartmon/internal/service"
)

// Client talks to the model server hosting the heart-disease classifier.
// The model itself is a black box here: one POST in, a binary warning out.
type Client struct {
	httpClient *resty.Client
}

func New(baseURL string) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10 * time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond).
		SetRetryMaxWaitTime(2 * time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	return &Client{
		httpClient: httpClient,
	}
}

type predictResponse struct {
	Warning int `json:"warning"`
}

func (c *Client) PredictWarning(ctx context.Context, features *service.WarningFeatures) (int, error) {
	if features == nil {
		return 0, errors.New("features is nil")
	}
	var result predictResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(features).
		SetResult(&result).
		Post("/predict")
	if err != nil {
		return 0, errors.New("calling model server error: " + err.Error())
	}
	if resp.IsError() {
		return 0, fmt.Errorf("model server returned status %d", resp.StatusCode())
	}
	return result.Warning, nil
}
