package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		Hardened      bool     `json:"hardened"`
		ProxyURL      string   `json:"proxy_url"`
		CookieSecret  string   `json:"cookie_secret"`
		SessionMaxAge Duration `json:"session_max_age"`
		Version       string   `json:"version"`
	} `json:"app,omitempty"`

	Security struct {
		ConnectHosts []string `json:"connect_hosts"`
		FontHosts    []string `json:"font_hosts"`
		ImageHosts   []string `json:"image_hosts"`
		StyleHosts   []string `json:"style_hosts"`
		HSTSMaxAge   Duration `json:"hsts_max_age"`
	} `json:"security,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Auth struct {
		BaseURL string   `json:"base_url"`
		Timeout Duration `json:"timeout"`
	} `json:"auth,omitempty"`

	Geo struct {
		BaseURL string   `json:"base_url"`
		Timeout Duration `json:"timeout"`
	} `json:"geo,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Hardened:      jsonCfg.App.Hardened,
			ProxyURL:      jsonCfg.App.ProxyURL,
			CookieSecret:  jsonCfg.App.CookieSecret,
			SessionMaxAge: time.Duration(jsonCfg.App.SessionMaxAge),
			Version:       jsonCfg.App.Version,
		},
		Security: Security{
			ConnectHosts: jsonCfg.Security.ConnectHosts,
			FontHosts:    jsonCfg.Security.FontHosts,
			ImageHosts:   jsonCfg.Security.ImageHosts,
			StyleHosts:   jsonCfg.Security.StyleHosts,
			HSTSMaxAge:   time.Duration(jsonCfg.Security.HSTSMaxAge),
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Auth: Collaborator{
			BaseURL: jsonCfg.Auth.BaseURL,
			Timeout: time.Duration(jsonCfg.Auth.Timeout),
		},
		Geo: Collaborator{
			BaseURL: jsonCfg.Geo.BaseURL,
			Timeout: time.Duration(jsonCfg.Geo.Timeout),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
