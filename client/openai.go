package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/invopop/jsonschema"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	log "github.com/sirupsen/logrus"
	"github.com/thundercloud/site-audit-service/view"
)

type LLMClient interface {
	FixPage(ctx context.Context, html string, findings []view.Finding) (*view.FixedPageOutput, error)
	UpdateFixPagePrompt(prompt string)
	UpdateModel(model string) error
	GetModel() string
}

func NewOpenaiClient(apiKey string, model string, proxy string) (LLMClient, error) {
	var opts []option.RequestOption
	if apiKey != "" {
		opts = append(opts, option.WithAPIKey(apiKey))
	} else {
		return nil, errors.New("openai: api key is required")
	}

	if proxy != "" {
		opts = append(opts, option.WithBaseURL(proxy))
	}

	openAIModel := openai.ChatModelGPT5
	if model != "" {
		openAIModel = model
	}

	tr := http.Transport{
		TLSHandshakeTimeout:   time.Second * 30,
		IdleConnTimeout:       time.Second * 300,
		ResponseHeaderTimeout: time.Second * 600,
	}
	cl := http.Client{Transport: &tr, Timeout: time.Second * 900}

	opts = append(opts, option.WithHTTPClient(&cl))

	return &OAIClientImpl{
		client:          openai.NewClient(opts...),
		model:           openAIModel,
		fixPagePrompt:   defaultFixPagePrompt,
		fixedPageSchema: FixedPageOutputResponseSchema,
	}, nil
}

type OAIClientImpl struct {
	client openai.Client

	mutex           sync.RWMutex
	model           openai.ChatModel
	fixPagePrompt   string
	fixedPageSchema interface{}
}

var FixedPageOutputResponseSchema = GenerateSchema[view.FixedPageOutput]()

const defaultFixPagePrompt = `You are improving a web page so that it passes an SEO and accessibility audit.
You receive the audit findings that can be fixed automatically and the complete HTML document.
Fix every listed finding. Keep the visible content, the layout and all scripts unchanged.
Do not invent facts about the business: use neutral text derived from the page when new text is required.
Return the complete updated HTML document and a short list of applied changes. Avoid any other output.`

func (l *OAIClientImpl) FixPage(ctx context.Context, html string, findings []view.Finding) (*view.FixedPageOutput, error) {
	start := time.Now()
	findingsBytes, err := json.MarshalIndent(findings, "", "    ")
	if err != nil {
		return nil, err
	}

	l.mutex.RLock()
	prompt := l.fixPagePrompt
	model := l.model
	l.mutex.RUnlock()

	messages := []openai.ChatCompletionMessageParamUnion{
		openai.SystemMessage(prompt),
		openai.UserMessage("findings: \n" + string(findingsBytes)),
		openai.UserMessage("html: \n" + html),
	}

	schemaParam := openai.ResponseFormatJSONSchemaJSONSchemaParam{
		Name:   "fixed_page_result",
		Schema: l.fixedPageSchema,
		Strict: openai.Bool(true),
	}

	log.Infof("run fix page with openai client, %d findings", len(findings))

	chat, err := l.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: messages,
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{JSONSchema: schemaParam},
		},
		Model: model,
	})
	log.Infof("finished fix page with openai client, it took %dms", time.Since(start).Milliseconds())
	if err != nil {
		return nil, err
	}
	if len(chat.Choices) == 0 {
		return nil, fmt.Errorf("openai: empty completion")
	}

	var result view.FixedPageOutput
	err = json.Unmarshal([]byte(chat.Choices[0].Message.Content), &result)
	if err != nil {
		return nil, fmt.Errorf("openai: unable to decode fixed page: %w", err)
	}
	if strings.TrimSpace(result.Html) == "" {
		return nil, fmt.Errorf("openai: model returned empty html")
	}

	return &result, nil
}

func GenerateSchema[T any]() interface{} {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	schema := reflector.Reflect(v)
	return schema
}

func (l *OAIClientImpl) UpdateFixPagePrompt(prompt string) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	l.fixPagePrompt = prompt
}

func (l *OAIClientImpl) UpdateModel(model string) error {
	if strings.TrimSpace(model) == "" {
		return fmt.Errorf("model name is empty")
	}
	l.mutex.Lock()
	defer l.mutex.Unlock()
	l.model = model
	return nil
}

func (l *OAIClientImpl) GetModel() string {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	return l.model
}
