package settings

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/riftcup/gateway/internal/backend"
)

// SettingsRepository wraps the settings endpoint.
//
// Load is fail-soft: any failure, including a malformed structured value,
// degrades to the documented defaults so the site always renders. Put
// surfaces the backend error.
type SettingsRepository interface {
	Load(ctx context.Context) SiteSettings
	Put(ctx context.Context, key, value, adminToken string) error
}

type httpSettingsRepository struct {
	client *backend.Client
}

func NewSettingsRepository(client *backend.Client) SettingsRepository {
	return &httpSettingsRepository{client: client}
}

func (r *httpSettingsRepository) Load(ctx context.Context) SiteSettings {
	loaded := Defaults()

	var resp struct {
		Settings map[string]string `json:"settings"`
	}
	err := r.client.Do(ctx, backend.Request{
		Method: http.MethodGet,
		URL:    r.client.SettingsURL,
	}, &resp)
	if err != nil {
		log.Printf("load settings degraded to defaults: %v", err)
		return loaded
	}

	if v, ok := resp.Settings[KeyRegistrationOpen]; ok {
		loaded.RegistrationOpen = v == "true"
	}
	if v, ok := resp.Settings[KeyChallongeURL]; ok {
		loaded.ChallongeURL = v
	}
	if v, ok := resp.Settings[KeyHomeTitle]; ok && v != "" {
		loaded.HomeTitle = v
	}
	if v, ok := resp.Settings[KeyHomeSubtitle]; ok && v != "" {
		loaded.HomeSubtitle = v
	}
	if v, ok := resp.Settings[KeyHomeDescription]; ok && v != "" {
		loaded.HomeDescription = v
	}
	if v, ok := resp.Settings[KeyHomeInfoBlocks]; ok && v != "" {
		var blocks []InfoBlock
		if err := json.Unmarshal([]byte(v), &blocks); err != nil {
			log.Printf("malformed %s value ignored: %v", KeyHomeInfoBlocks, err)
		} else {
			loaded.HomeInfoBlocks = blocks
		}
	}
	if v, ok := resp.Settings[KeyTournamentInfo]; ok && v != "" {
		var info map[string]interface{}
		if err := json.Unmarshal([]byte(v), &info); err != nil {
			log.Printf("malformed %s value ignored: %v", KeyTournamentInfo, err)
		} else {
			loaded.TournamentInfo = info
		}
	}
	return loaded
}

func (r *httpSettingsRepository) Put(ctx context.Context, key, value, adminToken string) error {
	err := r.client.Do(ctx, backend.Request{
		Method: http.MethodPut,
		URL:    r.client.SettingsURL,
		Header: backend.AuthHeader(backend.HeaderAdminToken, adminToken),
		Body: map[string]string{
			"key":   key,
			"value": value,
		},
	}, nil)
	if err != nil {
		return fmt.Errorf("put setting %s: %w", key, err)
	}
	return nil
}
