package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/akademos/schedulebot/internal/config"
	log "github.com/sirupsen/logrus"
	"golang.org/x/oauth2/clientcredentials"
)

// ClientImpl talks to the messaging platform's REST API. Requests are
// authenticated with a channel access token issued through the platform's
// client-credentials endpoint.
type ClientImpl struct {
	apiURL     string
	httpClient *http.Client
}

func NewClient(cfg config.Platform) *ClientImpl {
	credentials := clientcredentials.Config{
		ClientID:     cfg.ChannelID,
		ClientSecret: cfg.ChannelSecret,
		TokenURL:     cfg.TokenURL,
	}
	return &ClientImpl{
		apiURL:     cfg.APIURL,
		httpClient: credentials.Client(context.Background()),
	}
}

func (c *ClientImpl) Reply(ctx context.Context, replyToken string, messages []Message) error {
	payloads := make([]any, 0, len(messages))
	for _, message := range messages {
		payloads = append(payloads, message.Payload())
	}
	body, err := json.Marshal(struct {
		ReplyToken string `json:"replyToken"`
		Messages   []any  `json:"messages"`
	}{replyToken, payloads})
	if err != nil {
		return fmt.Errorf("could not encode reply: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+"/message/reply", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("could not create reply request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		err := fmt.Errorf("reply request failed: %w", err)
		log.Error(err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("reply request failed with status %d", resp.StatusCode)
		log.Error(err)
		return err
	}
	return nil
}

func (c *ClientImpl) GetUserProfile(ctx context.Context, userID string) (Profile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL+"/profile/"+userID, nil)
	if err != nil {
		return Profile{}, fmt.Errorf("could not create profile request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		err := fmt.Errorf("profile request failed: %w", err)
		log.Error(err)
		return Profile{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("profile request failed with status %d", resp.StatusCode)
		log.Error(err)
		return Profile{}, err
	}

	var profile Profile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return Profile{}, fmt.Errorf("could not decode profile response: %w", err)
	}
	return profile, nil
}
