package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the optional JSON config file.
type StructuredJSONConfig struct {
	Clumio struct {
		APIToken        string   `json:"api_token"`
		APIBaseURL      string   `json:"api_base_url"`
		APIVersion      string   `json:"api_version"`
		RequestTimeout  Duration `json:"request_timeout"`
		AccountNativeID string   `json:"account_native_id"`
	} `json:"clumio,omitempty"`

	App struct {
		Version            string `json:"version"`
		SlackSigningSecret string `json:"slack_signing_secret"`
		LogLevel           string `json:"log_level"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN       string   `json:"dsn"`
			Retention Duration `json:"retention"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Workers struct {
		PruneInterval Duration `json:"prune_interval"`
	} `json:"workers,omitempty"`
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
		Clumio: Clumio{
			APIToken:        jsonCfg.Clumio.APIToken,
			APIBaseURL:      jsonCfg.Clumio.APIBaseURL,
			APIVersion:      jsonCfg.Clumio.APIVersion,
			RequestTimeout:  time.Duration(jsonCfg.Clumio.RequestTimeout),
			AccountNativeID: jsonCfg.Clumio.AccountNativeID,
		},
		App: App{
			Version:            jsonCfg.App.Version,
			SlackSigningSecret: jsonCfg.App.SlackSigningSecret,
			LogLevel:           jsonCfg.App.LogLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN:       jsonCfg.Storage.DB.DSN,
				Retention: time.Duration(jsonCfg.Storage.DB.Retention),
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Workers: Workers{
			PruneInterval: time.Duration(jsonCfg.Workers.PruneInterval),
		},
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
