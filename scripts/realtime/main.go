package main

import (
	"context"
	"encoding/binary"
	"io"
	"os"
	"time"

	"careerhub/config"
	"careerhub/logger"
	"careerhub/realtime"

	flags "github.com/jessevdk/go-flags"
	"go.uber.org/zap"
)

type Options struct {
	Prompt       string        `long:"prompt" short:"p" required:"true" description:"text to send to the model"`
	Instructions string        `long:"instructions" default:"You are a friendly English conversation partner. Answer in one or two sentences." description:"session instructions"`
	Voice        string        `long:"voice" default:"alloy" description:"realtime voice"`
	Deployment   string        `long:"deployment" env:"AZURE_OPENAI_REALTIME_DEPLOYMENT" default:"gpt-4o-realtime-preview" description:"realtime model deployment"`
	Output       string        `long:"out" short:"o" default:"reply.wav" description:"where to write the spoken reply"`
	Timeout      time.Duration `long:"timeout" default:"60s" description:"give up after this long"`
	Verbose      bool          `long:"verbose" description:"use verbose mode"`
}

var opts Options

// Realtime audio is 24kHz mono PCM16
const (
	sampleRate    = 24000
	bitsPerSample = 16
	channels      = 1
)

func main() {
	if _, err := flags.Parse(&opts); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	config.LoadConfig()
	level := config.AppConfig.LogLevel
	if opts.Verbose {
		level = "debug"
	}
	logger.Init(level)
	defer logger.Log.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), opts.Timeout)
	defer cancel()

	client, err := realtime.Dial(ctx, realtime.Options{
		Endpoint:   config.AppConfig.AzureOpenAIEndpoint,
		APIKey:     config.AppConfig.AzureOpenAIKey,
		Deployment: opts.Deployment,
		Logger:     logger.Log,
	})
	if err != nil {
		logger.Log.Fatal("failed to connect", zap.Error(err))
	}
	defer client.Close()

	err = client.UpdateSession(realtime.Session{
		Modalities:        []string{"text", "audio"},
		Instructions:      opts.Instructions,
		Voice:             opts.Voice,
		OutputAudioFormat: "pcm16",
	})
	if err == nil {
		err = client.SendText(opts.Prompt)
	}
	if err == nil {
		err = client.CreateResponse()
	}
	if err != nil {
		logger.Log.Fatal("failed to send request", zap.Error(err))
	}

	resp, err := client.WaitResponse(ctx)
	if err != nil {
		logger.Log.Fatal("no response", zap.Error(err))
	}

	file, err := os.Create(opts.Output)
	if err != nil {
		logger.Log.Fatal("failed to create output file", zap.Error(err))
	}
	defer file.Close()

	if err := writeWAV(file, resp.Audio); err != nil {
		logger.Log.Fatal("failed to write audio", zap.Error(err))
	}

	logger.Log.Info("reply received",
		zap.String("transcript", resp.Transcript),
		zap.Int("audioBytes", len(resp.Audio)),
		zap.String("file", opts.Output),
	)
}

// writeWAV wraps raw PCM16 in a RIFF header
func writeWAV(w io.Writer, pcm []byte) error {
	byteRate := sampleRate * channels * bitsPerSample / 8
	header := []interface{}{
		[4]byte{'R', 'I', 'F', 'F'},
		uint32(36 + len(pcm)),
		[4]byte{'W', 'A', 'V', 'E'},
		[4]byte{'f', 'm', 't', ' '},
		uint32(16),
		uint16(1), // PCM
		uint16(channels),
		uint32(sampleRate),
		uint32(byteRate),
		uint16(channels * bitsPerSample / 8),
		uint16(bitsPerSample),
		[4]byte{'d', 'a', 't', 'a'},
		uint32(len(pcm)),
	}
	for _, field := range header {
		if err := binary.Write(w, binary.LittleEndian, field); err != nil {
			return err
		}
	}
	_, err := w.Write(pcm)
	return err
}
