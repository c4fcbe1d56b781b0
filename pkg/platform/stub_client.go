package platform

import (
	"context"
	"fmt"
)

// StubClient records replies and serves canned profiles.
type StubClient struct {
	Profiles map[string]Profile
	Replies  map[string][]Message
	Err      error
}

func NewStubClient() *StubClient {
	return &StubClient{
		Profiles: make(map[string]Profile),
		Replies:  make(map[string][]Message),
	}
}

func (s *StubClient) GetUserProfile(ctx context.Context, userID string) (Profile, error) {
	if s.Err != nil {
		return Profile{}, s.Err
	}
	profile, ok := s.Profiles[userID]
	if !ok {
		return Profile{}, fmt.Errorf("no profile for user %s", userID)
	}
	return profile, nil
}

func (s *StubClient) Reply(ctx context.Context, replyToken string, messages []Message) error {
	if s.Err != nil {
		return s.Err
	}
	s.Replies[replyToken] = messages
	return nil
}
