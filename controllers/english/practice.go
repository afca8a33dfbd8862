package controllers

import (
	"careerhub/middleware"
	"careerhub/services"
	"careerhub/services/azureopenai"
	"careerhub/utils"
	englishValidator "careerhub/validators/english"

	"github.com/gofiber/fiber/v2"
)

// DictationThreshold is the default similarity needed for a dictation to pass
const DictationThreshold = 0.9

// DefaultVoicevoxSpeaker is used when a VOICEVOX request names no speaker
const DefaultVoicevoxSpeaker = 1

const tutorPrompt = "You are a patient English tutor for Japanese learners. " +
	"Explain vocabulary, grammar and nuance in the passage the student shares. " +
	"Keep answers short, use simple English and give one example sentence."

// Dictation scores a typed transcription against the expected sentence
func Dictation(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedDictation").(*englishValidator.DictationRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	threshold := DictationThreshold
	if reqData.Threshold != nil {
		threshold = *reqData.Threshold
	}

	similarity, distance := utils.Similarity(reqData.Expected, reqData.Answer)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dictation checked!", fiber.Map{
		"similarity": similarity,
		"distance":   distance,
		"isCorrect":  similarity >= threshold,
		"expected":   reqData.Expected,
	})
}

// Explain asks Azure OpenAI to explain a passage
func Explain(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedExplain").(*englishValidator.ExplainRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	history := make([]azureopenai.Message, 0, len(reqData.History))
	for _, turn := range reqData.History {
		history = append(history, azureopenai.Message{Role: turn.Role, Content: turn.Content})
	}

	prompt := "Passage:\n" + reqData.Text
	if reqData.Question != "" {
		prompt += "\n\nQuestion: " + reqData.Question
	} else {
		prompt += "\n\nExplain the key vocabulary and grammar."
	}

	answer, err := services.Clients.Chat.Chat(c.UserContext(), tutorPrompt, history, prompt)
	if err != nil {
		return middleware.UpstreamErrorResponse(c, "Azure OpenAI", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Explanation generated!", fiber.Map{
		"answer": answer,
	})
}

// synthesize renders text with the chosen engine and returns the audio and its content type
func synthesize(c *fiber.Ctx, text, engine, voice string, speaker *int) ([]byte, string, error) {
	if engine == "voicevox" {
		id := DefaultVoicevoxSpeaker
		if speaker != nil {
			id = *speaker
		}
		audio, err := services.Clients.Voicevox.Speak(c.UserContext(), text, id)
		return audio, "audio/wav", err
	}

	audio, err := services.Clients.Speech.Synthesize(c.UserContext(), text, voice)
	return audio, "audio/mpeg", err
}

func engineName(engine string) string {
	if engine == "voicevox" {
		return "VOICEVOX"
	}
	return "Azure Speech"
}

// TTS streams synthesized speech back to the caller
func TTS(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedTTS").(*englishValidator.TTSRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	audio, contentType, err := synthesize(c, reqData.Text, reqData.Engine, reqData.Voice, reqData.Speaker)
	if err != nil {
		return middleware.UpstreamErrorResponse(c, engineName(reqData.Engine), err)
	}

	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderCacheControl, "no-store")
	return c.Status(fiber.StatusOK).Send(audio)
}

// SpeechToken issues a short-lived Azure Speech token for the browser SDK
func SpeechToken(c *fiber.Ctx) error {
	token, err := services.Clients.Speech.IssueToken(c.UserContext())
	if err != nil {
		return middleware.UpstreamErrorResponse(c, "Azure Speech", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Token issued!", fiber.Map{
		"token":  token,
		"region": services.Clients.Speech.Region(),
	})
}

func VoicevoxSpeakers(c *fiber.Ctx) error {
	speakers, err := services.Clients.Voicevox.Speakers(c.UserContext())
	if err != nil {
		return middleware.UpstreamErrorResponse(c, "VOICEVOX", err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Speakers fetched successfully!", speakers)
}
