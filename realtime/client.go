// Package realtime is a WebSocket client for the Azure OpenAI realtime audio API.
package realtime

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	DefaultAPIVersion = "2024-10-01-preview"
	writeTimeout      = 10 * time.Second
)

// ErrClosed is returned by Send after Close
var ErrClosed = errors.New("realtime: connection closed")

// Options configures Dial. URL, when set, is used as-is instead of being built from Endpoint.
type Options struct {
	Endpoint    string // https://<resource>.openai.azure.com
	APIKey      string
	Deployment  string
	APIVersion  string
	URL         string
	EventBuffer int
	Logger      *zap.Logger
}

func (o Options) wsURL() (string, error) {
	if o.URL != "" {
		return o.URL, nil
	}
	if o.Endpoint == "" || o.Deployment == "" {
		return "", errors.New("realtime: endpoint and deployment are required")
	}

	u, err := url.Parse(strings.TrimRight(o.Endpoint, "/"))
	if err != nil {
		return "", fmt.Errorf("realtime: bad endpoint: %w", err)
	}
	switch u.Scheme {
	case "https", "wss":
		u.Scheme = "wss"
	default:
		u.Scheme = "ws"
	}
	u.Path = "/openai/realtime"

	version := o.APIVersion
	if version == "" {
		version = DefaultAPIVersion
	}
	q := url.Values{}
	q.Set("api-version", version)
	q.Set("deployment", o.Deployment)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// Client owns one realtime session. Writes are serialized; a single goroutine reads.
type Client struct {
	conn   *websocket.Conn
	events chan Event
	done   chan struct{}
	log    *zap.Logger

	writeMu   sync.Mutex
	closeOnce sync.Once

	errMu   sync.Mutex
	readErr error
}

// Dial opens the WebSocket and starts reading server events
func Dial(ctx context.Context, opts Options) (*Client, error) {
	target, err := opts.wsURL()
	if err != nil {
		return nil, err
	}

	header := http.Header{}
	if opts.APIKey != "" {
		header.Set("api-key", opts.APIKey)
	}

	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, target, header)
	if err != nil {
		if resp != nil {
			return nil, fmt.Errorf("realtime: dial failed with status %d: %w", resp.StatusCode, err)
		}
		return nil, fmt.Errorf("realtime: dial failed: %w", err)
	}

	buffer := opts.EventBuffer
	if buffer <= 0 {
		buffer = 64
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	c := &Client{
		conn:   conn,
		events: make(chan Event, buffer),
		done:   make(chan struct{}),
		log:    log.Named("realtime"),
	}
	go c.readLoop()
	return c, nil
}

func (c *Client) readLoop() {
	defer close(c.events)

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			select {
			case <-c.done:
			default:
				if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
					c.setErr(err)
					c.log.Warn("read failed", zap.Error(err))
				}
			}
			return
		}

		var ev Event
		if err := json.Unmarshal(data, &ev); err != nil {
			c.log.Warn("dropping undecodable event", zap.Error(err))
			continue
		}

		select {
		case c.events <- ev:
		case <-c.done:
			return
		}
	}
}

func (c *Client) setErr(err error) {
	c.errMu.Lock()
	defer c.errMu.Unlock()
	if c.readErr == nil {
		c.readErr = err
	}
}

// Err reports why the event stream ended, or nil after a clean close
func (c *Client) Err() error {
	c.errMu.Lock()
	defer c.errMu.Unlock()
	return c.readErr
}

// Events yields server events. The channel is closed when the connection ends.
func (c *Client) Events() <-chan Event {
	return c.events
}

// Send writes one client event as JSON
func (c *Client) Send(event interface{}) error {
	select {
	case <-c.done:
		return ErrClosed
	default:
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	if err := c.conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
		return err
	}
	return c.conn.WriteJSON(event)
}

// Close ends the session. Calling it more than once is safe.
func (c *Client) Close() error {
	var err error
	c.closeOnce.Do(func() {
		close(c.done)

		c.writeMu.Lock()
		_ = c.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(time.Second))
		c.writeMu.Unlock()

		err = c.conn.Close()
	})
	return err
}

// UpdateSession sends session.update
func (c *Client) UpdateSession(session Session) error {
	return c.Send(map[string]interface{}{
		"type":    "session.update",
		"session": session,
	})
}

// AppendAudio adds raw PCM16 audio to the input buffer
func (c *Client) AppendAudio(pcm []byte) error {
	return c.Send(map[string]interface{}{
		"type":  "input_audio_buffer.append",
		"audio": base64.StdEncoding.EncodeToString(pcm),
	})
}

// CommitAudio turns the input buffer into a user message
func (c *Client) CommitAudio() error {
	return c.Send(map[string]interface{}{"type": "input_audio_buffer.commit"})
}

// CreateResponse asks the model to respond. No modalities means the session default.
func (c *Client) CreateResponse(modalities ...string) error {
	event := map[string]interface{}{"type": "response.create"}
	if len(modalities) > 0 {
		event["response"] = map[string]interface{}{"modalities": modalities}
	}
	return c.Send(event)
}

// SendText adds a user text message to the conversation
func (c *Client) SendText(text string) error {
	return c.Send(map[string]interface{}{
		"type": "conversation.item.create",
		"item": map[string]interface{}{
			"type": "message",
			"role": "user",
			"content": []map[string]string{
				{"type": "input_text", "text": text},
			},
		},
	})
}
