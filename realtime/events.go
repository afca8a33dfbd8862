package realtime

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Server event types the helpers understand
const (
	EventError                = "error"
	EventSessionCreated       = "session.created"
	EventAudioDelta           = "response.audio.delta"
	EventAudioTranscriptDelta = "response.audio_transcript.delta"
	EventTextDelta            = "response.text.delta"
	EventResponseDone         = "response.done"
)

// Session is the subset of session settings the scripts use
type Session struct {
	Modalities        []string       `json:"modalities,omitempty"`
	Instructions      string         `json:"instructions,omitempty"`
	Voice             string         `json:"voice,omitempty"`
	InputAudioFormat  string         `json:"input_audio_format,omitempty"`
	OutputAudioFormat string         `json:"output_audio_format,omitempty"`
	TurnDetection     *TurnDetection `json:"turn_detection,omitempty"`
}

type TurnDetection struct {
	Type string `json:"type"` // server_vad
}

// Event is a decoded server event. Raw keeps the full payload for types without helpers.
type Event struct {
	Type    string          `json:"type"`
	EventID string          `json:"event_id"`
	Delta   string          `json:"delta,omitempty"`
	Error   *APIError       `json:"error,omitempty"`
	Raw     json.RawMessage `json:"-"`
}

// APIError is the payload of an error event
type APIError struct {
	Type    string `json:"type"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("realtime: %s: %s", e.Code, e.Message)
}

func (e *Event) UnmarshalJSON(data []byte) error {
	type plain Event
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*e = Event(p)
	e.Raw = append(json.RawMessage(nil), data...)
	return nil
}

// Audio decodes the base64 delta of a response.audio.delta event
func (e Event) Audio() ([]byte, error) {
	if e.Type != EventAudioDelta {
		return nil, nil
	}
	return base64.StdEncoding.DecodeString(e.Delta)
}

// Response is everything the model produced for one response.create
type Response struct {
	Audio      []byte
	Transcript string
	Text       string
}

// WaitResponse consumes events until response.done and gathers audio and text
func (c *Client) WaitResponse(ctx context.Context) (*Response, error) {
	var (
		out        Response
		transcript strings.Builder
		text       strings.Builder
	)

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case ev, ok := <-c.events:
			if !ok {
				if err := c.Err(); err != nil {
					return nil, err
				}
				return nil, errors.New("realtime: connection closed before response.done")
			}

			switch ev.Type {
			case EventError:
				if ev.Error != nil {
					return nil, ev.Error
				}
				return nil, errors.New("realtime: server error")
			case EventAudioDelta:
				chunk, err := ev.Audio()
				if err != nil {
					return nil, fmt.Errorf("realtime: bad audio delta: %w", err)
				}
				out.Audio = append(out.Audio, chunk...)
			case EventAudioTranscriptDelta:
				transcript.WriteString(ev.Delta)
			case EventTextDelta:
				text.WriteString(ev.Delta)
			case EventResponseDone:
				out.Transcript = transcript.String()
				out.Text = text.String()
				return &out, nil
			}
		}
	}
}
