package azurespeech

import (
	"context"
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"careerhub/services/upstream"

	"github.com/go-resty/resty/v2"
)

const (
	service = "azurespeech"

	// OutputFormat is the audio format requested from the TTS endpoint
	OutputFormat = "audio-24khz-48kbitrate-mono-mp3"
)

// Client wraps the Azure Speech REST endpoints: token issuing and text to speech
type Client struct {
	tts    *resty.Client
	sts    *resty.Client
	key    string
	region string
	voice  string
}

// New builds a client for region. The base URLs are derived from the region unless
// overridden with WithBaseURLs (used by tests).
func New(key, region, voice string) *Client {
	return &Client{
		tts:    upstream.NewClient(service, fmt.Sprintf("https://%s.tts.speech.microsoft.com", region), 30*time.Second),
		sts:    upstream.NewClient(service, fmt.Sprintf("https://%s.api.cognitive.microsoft.com", region), 10*time.Second),
		key:    key,
		region: region,
		voice:  voice,
	}
}

// WithBaseURLs points both endpoints at another host
func (c *Client) WithBaseURLs(ttsURL, stsURL string) *Client {
	c.tts.SetBaseURL(ttsURL)
	c.sts.SetBaseURL(stsURL)
	return c
}

func (c *Client) Region() string {
	return c.region
}

// IssueToken exchanges the subscription key for a short-lived (10 minute) token
// that browser SDKs can use without seeing the key.
func (c *Client) IssueToken(ctx context.Context) (string, error) {
	if c == nil || c.key == "" {
		return "", upstream.ErrNotConfigured
	}
	resp, err := c.sts.R().
		SetContext(ctx).
		SetHeader("Ocp-Apim-Subscription-Key", c.key).
		SetHeader("Content-Type", "application/x-www-form-urlencoded").
		Post("/sts/v1.0/issueToken")
	if err := upstream.Check(service, resp, err); err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.String()), nil
}

// Synthesize renders text as MP3. An empty voice uses the configured default.
func (c *Client) Synthesize(ctx context.Context, text, voice string) ([]byte, error) {
	if c == nil || c.key == "" {
		return nil, upstream.ErrNotConfigured
	}
	if voice == "" {
		voice = c.voice
	}

	ssml, err := BuildSSML(text, voice)
	if err != nil {
		return nil, err
	}

	resp, err := c.tts.R().
		SetContext(ctx).
		SetHeader("Ocp-Apim-Subscription-Key", c.key).
		SetHeader("Content-Type", "application/ssml+xml").
		SetHeader("X-Microsoft-OutputFormat", OutputFormat).
		SetHeader("User-Agent", "careerhub").
		SetBody(ssml).
		Post("/cognitiveservices/v1")
	if err := upstream.Check(service, resp, err); err != nil {
		return nil, err
	}
	return resp.Body(), nil
}

// BuildSSML wraps text in a speak/voice document. The language is taken from the
// voice name prefix (en-US-JennyNeural -> en-US).
func BuildSSML(text, voice string) (string, error) {
	lang := "en-US"
	if parts := strings.SplitN(voice, "-", 3); len(parts) == 3 {
		lang = parts[0] + "-" + parts[1]
	}

	var escaped strings.Builder
	if err := xml.EscapeText(&escaped, []byte(text)); err != nil {
		return "", err
	}

	return fmt.Sprintf(
		`<speak version="1.0" xmlns="http://www.w3.org/2001/10/synthesis" xml:lang="%s"><voice name="%s">%s</voice></speak>`,
		lang, voice, escaped.String(),
	), nil
}
