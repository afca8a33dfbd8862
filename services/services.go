// Package services holds the process-wide third-party API clients.
package services

import (
	"careerhub/config"
	"careerhub/services/azureopenai"
	"careerhub/services/azurespeech"
	"careerhub/services/gdrive"
	"careerhub/services/newsapi"
	"careerhub/services/supabase"
	"careerhub/services/voicevox"
)

// Registry groups the outbound clients used by controllers and schedulers
type Registry struct {
	News     *newsapi.Client
	Voicevox *voicevox.Client
	Speech   *azurespeech.Client
	Storage  *supabase.Storage
	Drive    *gdrive.Client
	Chat     *azureopenai.Client // nil when Azure OpenAI is not configured
}

// Clients is the global registry, filled by Init
var Clients Registry

// Init builds every client from cfg
func Init(cfg *config.Config) {
	Clients = Registry{
		News:     newsapi.New(cfg.NewsAPIURL, cfg.NewsAPIKey),
		Voicevox: voicevox.New(cfg.VoicevoxURL),
		Speech:   azurespeech.New(cfg.AzureSpeechKey, cfg.AzureSpeechRegion, cfg.AzureSpeechVoice),
		Storage:  supabase.NewStorage(cfg.SupabaseURL, cfg.SupabaseServiceKey, cfg.SupabaseBucket),
		Drive:    gdrive.New(gdrive.DefaultBaseURL, cfg.GoogleAPIKey),
		Chat:     azureopenai.New(cfg.AzureOpenAIEndpoint, cfg.AzureOpenAIKey, cfg.AzureOpenAIDeployment, cfg.AzureOpenAIAPIVersion),
	}
}
