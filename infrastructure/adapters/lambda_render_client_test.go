package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/lambda"
	"github.com/aws/aws-sdk-go/service/lambda/lambdaiface"

	"github.com/kemo-beep/effectai/application/ports/outbound"
	"github.com/kemo-beep/effectai/config"
	"github.com/kemo-beep/effectai/domain"
)

type fakeLambda struct {
	lambdaiface.LambdaAPI

	lastInput *lambda.InvokeInput
	output    *lambda.InvokeOutput
	err       error
}

func (f *fakeLambda) InvokeWithContext(_ aws.Context, input *lambda.InvokeInput, _ ...request.Option) (*lambda.InvokeOutput, error) {
	f.lastInput = input
	return f.output, f.err
}

func newTestRenderClient(fake *fakeLambda) outbound.RenderServicePort {
	return NewLambdaRenderClient(fake, &config.RenderConfig{
		FunctionName: "remotion-render",
		Region:       "us-east-1",
	}, NewZerologWrapper())
}

func TestLambdaRenderClient_StartRender(t *testing.T) {
	fake := &fakeLambda{output: &lambda.InvokeOutput{
		Payload: []byte(`{"renderId": "render-1", "bucketName": "bucket-a"}`),
	}}
	client := newTestRenderClient(fake)

	res, err := client.StartRender(context.Background(), outbound.StartRenderParams{
		CompositionID: "main",
		InputProps:    domain.Composition{Title: "T"},
	})
	if err != nil {
		t.Fatal("Failed to start render:", err)
	}
	if res.RenderID != "render-1" || res.BucketName != "bucket-a" {
		t.Errorf("result = %+v", res)
	}

	if got := aws.StringValue(fake.lastInput.FunctionName); got != "remotion-render" {
		t.Errorf("function name = %q", got)
	}
	var payload startRenderPayload
	if err := json.Unmarshal(fake.lastInput.Payload, &payload); err != nil {
		t.Fatal("Failed to decode invoke payload:", err)
	}
	if payload.Type != "start" || payload.Composition != "main" {
		t.Errorf("payload = %+v", payload)
	}
}

func TestLambdaRenderClient_StartRenderErrors(t *testing.T) {
	tests := []struct {
		name string
		fake *fakeLambda
	}{
		{"invoke error", &fakeLambda{err: errors.New("throttled")}},
		{"function error", &fakeLambda{output: &lambda.InvokeOutput{
			FunctionError: aws.String("Unhandled"),
			Payload:       []byte(`{"errorMessage": "boom"}`),
		}}},
		{"missing render id", &fakeLambda{output: &lambda.InvokeOutput{
			Payload: []byte(`{}`),
		}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestRenderClient(tt.fake)
			if _, err := client.StartRender(context.Background(), outbound.StartRenderParams{CompositionID: "main"}); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}

func TestLambdaRenderClient_GetProgress(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    outbound.RenderProgress
	}{
		{
			name:    "in progress",
			payload: `{"overallProgress": 0.4}`,
			want:    outbound.RenderProgress{Type: "progress", Progress: 0.4},
		},
		{
			name:    "done",
			payload: `{"done": true, "outputFile": "https://cdn/out.mp4", "outputSizeInBytes": 1024}`,
			want:    outbound.RenderProgress{Type: "done", URL: "https://cdn/out.mp4", Size: 1024},
		},
		{
			name:    "fatal error with message",
			payload: `{"fatalErrorEncountered": true, "errors": ["out of memory"]}`,
			want:    outbound.RenderProgress{Type: "error", Message: "out of memory"},
		},
		{
			name:    "fatal error without message",
			payload: `{"fatalErrorEncountered": true}`,
			want:    outbound.RenderProgress{Type: "error", Message: "render failed"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeLambda{output: &lambda.InvokeOutput{Payload: []byte(tt.payload)}}
			client := newTestRenderClient(fake)

			got, err := client.GetProgress(context.Background(), "render-1", "bucket-a")
			if err != nil {
				t.Fatal("Failed to get progress:", err)
			}
			if *got != tt.want {
				t.Errorf("progress = %+v, want %+v", *got, tt.want)
			}

			var payload progressPayload
			if err := json.Unmarshal(fake.lastInput.Payload, &payload); err != nil {
				t.Fatal("Failed to decode invoke payload:", err)
			}
			if payload.Type != "status" || payload.RenderID != "render-1" || payload.BucketName != "bucket-a" {
				t.Errorf("payload = %+v", payload)
			}
		})
	}
}
