// Copyright 2025 Campus Team
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package weather

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client 查询 OpenWeatherMap 当前天气，供活动页面展示
type Client struct {
	http   *resty.Client
	apiKey string
	city   string
}

type Report struct {
	City        string  `json:"city"`
	Condition   string  `json:"condition"`
	Description string  `json:"description"`
	Temperature float64 `json:"temperature"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"windSpeed"`
}

type apiResponse struct {
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Name string `json:"name"`
}

const baseURL = "https://api.openweathermap.org/data/2.5"

func NewClient(apiKey, city string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		http:   resty.New().SetBaseURL(baseURL).SetTimeout(timeout),
		apiKey: apiKey,
		city:   city,
	}
}

// Current 拉取当前天气
func (c *Client) Current(ctx context.Context) (*Report, error) {
	var out apiResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"q":     c.city,
			"units": "metric",
			"appid": c.apiKey,
		}).
		SetResult(&out).
		Get("/weather")
	if err != nil {
		return nil, fmt.Errorf("weather request failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("weather api returned %s", resp.Status())
	}

	report := &Report{
		City:        out.Name,
		Temperature: out.Main.Temp,
		Humidity:    out.Main.Humidity,
		WindSpeed:   out.Wind.Speed,
	}
	if len(out.Weather) > 0 {
		report.Condition = out.Weather[0].Main
		report.Description = out.Weather[0].Description
	}
	return report, nil
}
