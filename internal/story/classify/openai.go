package classify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	oai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/packages/param"
	"github.com/openai/openai-go/shared"
)

const (
	classifyTemperature = 0.1
	classifyMaxTokens   = 1000
)

// systemPrompt keeps the model focused on character identification and on
// emitting parseable JSON.
const systemPrompt = "You are a literary analyst specializing in character identification. " +
	"You analyze stories to determine character genders based on names, pronouns, roles, and context. " +
	"Always respond with valid JSON only."

const promptTemplate = `Analyze the following story excerpt and determine the gender of each character listed.
Consider:
1. The character's name (common associations)
2. Pronouns used in the text
3. Titles and roles (king/queen, prince/princess, etc.)
4. Cultural and literary context

For each character, provide:
- gender: "male", "female", or "neutral" (for non-human or ambiguous)
- aliases: Other names or titles that refer to the same character
- reasoning: Brief explanation of your determination

Characters to analyze: %s

Story excerpt (first %d characters):
%s

Respond with valid JSON only, in this format:
{
    "characters": {
        "CharacterName": {
            "gender": "male|female|neutral",
            "aliases": ["alias1", "alias2"],
            "reasoning": "Brief explanation"
        }
    }
}`

// excerptLength caps how much story text travels with a classification
// request.
const excerptLength = 2000

// llmAnalysis is the expected JSON structure of the model response.
type llmAnalysis struct {
	Characters map[string]struct {
		Gender    string   `json:"gender"`
		Aliases   []string `json:"aliases"`
		Reasoning string   `json:"reasoning"`
	} `json:"characters"`
}

// OpenAIClassifier implements Classifier with a chat completion model. It
// works against the OpenAI API or any compatible endpoint (Azure OpenAI)
// selected via base URL.
type OpenAIClassifier struct {
	client oai.Client
	model  string
}

// OpenAIOption configures an OpenAIClassifier.
type OpenAIOption func(*openaiConfig)

type openaiConfig struct {
	baseURL string
	timeout time.Duration
}

// WithBaseURL points the classifier at a non-default API endpoint.
func WithBaseURL(url string) OpenAIOption {
	return func(c *openaiConfig) {
		c.baseURL = url
	}
}

// WithTimeout sets a per-request HTTP timeout.
func WithTimeout(d time.Duration) OpenAIOption {
	return func(c *openaiConfig) {
		c.timeout = d
	}
}

// NewOpenAIClassifier constructs an LLM-backed classifier.
func NewOpenAIClassifier(apiKey, model string, opts ...OpenAIOption) (*OpenAIClassifier, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("classify: apiKey must not be empty")
	}
	if model == "" {
		return nil, fmt.Errorf("classify: model must not be empty")
	}

	cfg := &openaiConfig{}
	for _, o := range opts {
		o(cfg)
	}

	reqOpts := []option.RequestOption{
		option.WithAPIKey(apiKey),
	}
	if cfg.baseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(cfg.baseURL))
	}
	if cfg.timeout > 0 {
		reqOpts = append(reqOpts, option.WithHTTPClient(&http.Client{
			Timeout: cfg.timeout,
		}))
	}

	return &OpenAIClassifier{
		client: oai.NewClient(reqOpts...),
		model:  model,
	}, nil
}

// Classify implements Classifier. Network errors and unparseable responses
// are returned as errors with an empty map; callers degrade to neutral.
func (c *OpenAIClassifier) Classify(ctx context.Context, text string, names []string) (map[string]CharacterInfo, error) {
	if len(names) == 0 {
		return map[string]CharacterInfo{}, nil
	}

	nameList, err := json.Marshal(names)
	if err != nil {
		return nil, fmt.Errorf("classify: marshal names: %w", err)
	}

	excerpt := text
	if len(excerpt) > excerptLength {
		excerpt = excerpt[:excerptLength]
	}

	params := oai.ChatCompletionNewParams{
		Model: shared.ChatModel(c.model),
		Messages: []oai.ChatCompletionMessageParamUnion{
			oai.SystemMessage(systemPrompt),
			oai.UserMessage(fmt.Sprintf(promptTemplate, nameList, excerptLength, excerpt)),
		},
		Temperature:         param.NewOpt(classifyTemperature),
		MaxCompletionTokens: param.NewOpt(int64(classifyMaxTokens)),
		ResponseFormat: oai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		},
	}

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("classify: chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("classify: empty choices in response")
	}

	return parseAnalysis(resp.Choices[0].Message.Content)
}

// parseAnalysis unmarshals the model output into CharacterInfo values keyed
// by lowercased name.
func parseAnalysis(content string) (map[string]CharacterInfo, error) {
	var analysis llmAnalysis
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &analysis); err != nil {
		return nil, fmt.Errorf("classify: parse response: %w", err)
	}

	result := make(map[string]CharacterInfo, len(analysis.Characters))
	for name, info := range analysis.Characters {
		gender := info.Gender
		switch gender {
		case GenderMale, GenderFemale, GenderNeutral:
		default:
			gender = GenderNeutral
		}
		aliases := make([]string, 0, len(info.Aliases))
		for _, a := range info.Aliases {
			aliases = append(aliases, strings.ToLower(a))
		}
		result[strings.ToLower(name)] = CharacterInfo{
			Name:      name,
			Gender:    gender,
			Aliases:   aliases,
			Reasoning: info.Reasoning,
		}
	}
	return result, nil
}
