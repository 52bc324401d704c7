package adapters

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/lambda"
	"github.com/aws/aws-sdk-go/service/lambda/lambdaiface"

	"github.com/kemo-beep/effectai/application/ports/outbound"
	"github.com/kemo-beep/effectai/config"
	"github.com/kemo-beep/effectai/domain"
)

type startRenderPayload struct {
	Type        string             `json:"type"`
	Composition string             `json:"composition"`
	InputProps  domain.Composition `json:"inputProps"`
}

type startRenderResponse struct {
	RenderID   string `json:"renderId"`
	BucketName string `json:"bucketName"`
}

type progressPayload struct {
	Type       string `json:"type"`
	RenderID   string `json:"renderId"`
	BucketName string `json:"bucketName"`
}

type progressResponse struct {
	FatalErrorEncountered bool     `json:"fatalErrorEncountered"`
	Errors                []string `json:"errors"`
	Done                  bool     `json:"done"`
	OutputFile            string   `json:"outputFile"`
	OutputSizeInBytes     int64    `json:"outputSizeInBytes"`
	OverallProgress       float64  `json:"overallProgress"`
}

// lambdaRenderClient talks to the Remotion render lambda: one invocation to
// start a render, repeated invocations to poll its progress.
type lambdaRenderClient struct {
	lambdaClient lambdaiface.LambdaAPI
	renderConfig *config.RenderConfig
	logger       outbound.LoggerPort
}

func NewLambdaRenderClient(lambdaClient lambdaiface.LambdaAPI, renderConfig *config.RenderConfig,
	logger outbound.LoggerPort) outbound.RenderServicePort {
	return &lambdaRenderClient{
		lambdaClient: lambdaClient,
		renderConfig: renderConfig,
		logger:       logger,
	}
}

func (l *lambdaRenderClient) StartRender(ctx context.Context, params outbound.StartRenderParams) (*outbound.StartRenderResult, error) {
	payload, err := l.invoke(ctx, startRenderPayload{
		Type:        "start",
		Composition: params.CompositionID,
		InputProps:  params.InputProps,
	})
	if err != nil {
		return nil, err
	}

	var res startRenderResponse
	if err := json.Unmarshal(payload, &res); err != nil {
		l.logger.Error(err, "Failed to unmarshal render start response")
		return nil, err
	}
	if res.RenderID == "" {
		return nil, fmt.Errorf("render lambda returned no render id")
	}

	return &outbound.StartRenderResult{
		RenderID:   res.RenderID,
		BucketName: res.BucketName,
	}, nil
}

func (l *lambdaRenderClient) GetProgress(ctx context.Context, renderID, bucketName string) (*outbound.RenderProgress, error) {
	payload, err := l.invoke(ctx, progressPayload{
		Type:       "status",
		RenderID:   renderID,
		BucketName: bucketName,
	})
	if err != nil {
		return nil, err
	}

	var res progressResponse
	if err := json.Unmarshal(payload, &res); err != nil {
		l.logger.Error(err, "Failed to unmarshal render progress response")
		return nil, err
	}

	switch {
	case res.FatalErrorEncountered:
		message := "render failed"
		if len(res.Errors) > 0 {
			message = res.Errors[0]
		}
		return &outbound.RenderProgress{Type: "error", Message: message}, nil
	case res.Done:
		return &outbound.RenderProgress{Type: "done", URL: res.OutputFile, Size: res.OutputSizeInBytes}, nil
	default:
		return &outbound.RenderProgress{Type: "progress", Progress: res.OverallProgress}, nil
	}
}

func (l *lambdaRenderClient) invoke(ctx context.Context, request interface{}) ([]byte, error) {
	body, err := json.Marshal(request)
	if err != nil {
		l.logger.Error(err, "Failed to marshal render lambda payload")
		return nil, err
	}

	out, err := l.lambdaClient.InvokeWithContext(ctx, &lambda.InvokeInput{
		FunctionName: aws.String(l.renderConfig.FunctionName),
		Payload:      body,
	})
	if err != nil {
		l.logger.ErrorWithFields(err, "Failed to invoke render lambda", map[string]interface{}{
			"function": l.renderConfig.FunctionName,
		})
		return nil, err
	}

	if out.FunctionError != nil {
		return nil, fmt.Errorf("render lambda error: %s", aws.StringValue(out.FunctionError))
	}

	return out.Payload, nil
}
