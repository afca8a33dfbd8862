package voicevox

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"careerhub/services/upstream"

	"github.com/go-resty/resty/v2"
)

const service = "voicevox"

// Client talks to a VOICEVOX engine (default http://localhost:50021)
type Client struct {
	http *resty.Client
}

func New(baseURL string) *Client {
	return &Client{http: upstream.NewClient(service, baseURL, 60*time.Second)}
}

type Style struct {
	Name string `json:"name"`
	ID   int    `json:"id"`
}

type Speaker struct {
	Name        string  `json:"name"`
	SpeakerUUID string  `json:"speaker_uuid"`
	Styles      []Style `json:"styles"`
	Version     string  `json:"version"`
}

// Speakers lists the voices installed in the engine
func (c *Client) Speakers(ctx context.Context) ([]Speaker, error) {
	if c == nil {
		return nil, upstream.ErrNotConfigured
	}
	var out []Speaker
	resp, err := c.http.R().SetContext(ctx).SetResult(&out).Get("/speakers")
	if err := upstream.Check(service, resp, err); err != nil {
		return nil, err
	}
	return out, nil
}

// AudioQuery builds the synthesis parameters for text. The query is returned raw
// so it can be passed back to Synthesis unchanged.
func (c *Client) AudioQuery(ctx context.Context, text string, speaker int) (json.RawMessage, error) {
	if c == nil {
		return nil, upstream.ErrNotConfigured
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"text":    text,
			"speaker": strconv.Itoa(speaker),
		}).
		Post("/audio_query")
	if err := upstream.Check(service, resp, err); err != nil {
		return nil, err
	}
	return json.RawMessage(resp.Body()), nil
}

// Synthesis renders an audio query to WAV bytes
func (c *Client) Synthesis(ctx context.Context, query json.RawMessage, speaker int) ([]byte, error) {
	if c == nil {
		return nil, upstream.ErrNotConfigured
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("speaker", strconv.Itoa(speaker)).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "audio/wav").
		SetBody([]byte(query)).
		Post("/synthesis")
	if err := upstream.Check(service, resp, err); err != nil {
		return nil, err
	}
	return resp.Body(), nil
}

// Speak runs AudioQuery and Synthesis back to back
func (c *Client) Speak(ctx context.Context, text string, speaker int) ([]byte, error) {
	query, err := c.AudioQuery(ctx, text, speaker)
	if err != nil {
		return nil, err
	}
	return c.Synthesis(ctx, query, speaker)
}
