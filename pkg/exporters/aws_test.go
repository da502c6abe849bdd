package exporters

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/samvad-hq/restcountries-go/pkg/restcountries"
)

type fakeSQSClient struct {
	input *sqs.SendMessageInput
	err   error
}

func (f *fakeSQSClient) SendMessage(_ context.Context, params *sqs.SendMessageInput, _ ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}
	return &sqs.SendMessageOutput{MessageId: aws.String("msg-123")}, nil
}

type fakeSNSClient struct {
	input *sns.PublishInput
	err   error
}

func (f *fakeSNSClient) Publish(_ context.Context, params *sns.PublishInput, _ ...func(*sns.Options)) (*sns.PublishOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}
	return &sns.PublishOutput{MessageId: aws.String("msg-123")}, nil
}

var testEvent = Event{
	Operation: "region",
	URL:       "/region/europe",
	Country:   restcountries.Country{Name: "Estonia", Alpha3Code: "EST"},
}

func TestSQSExporterExportSuccess(t *testing.T) {
	client := &fakeSQSClient{}
	exp := &sqsExporter{id: "queue", queueURL: "https://example.com/queue", client: client, log: noopLogger{}}

	if err := exp.Export(context.Background(), testEvent); err != nil {
		t.Fatalf("Export returned error: %v", err)
	}
	if client.input == nil {
		t.Fatalf("client was not called")
	}
	if got := aws.ToString(client.input.QueueUrl); got != "https://example.com/queue" {
		t.Fatalf("QueueUrl = %s", got)
	}
	attr, ok := client.input.MessageAttributes["alpha3_code"]
	if !ok || aws.ToString(attr.StringValue) != "EST" || aws.ToString(attr.DataType) != "String" {
		t.Fatalf("alpha3_code attribute missing or wrong: %#v", attr)
	}
	if !strings.Contains(aws.ToString(client.input.MessageBody), `"operation":"region"`) {
		t.Fatalf("MessageBody missing operation: %s", aws.ToString(client.input.MessageBody))
	}
}

func TestSQSExporterExportError(t *testing.T) {
	exp := &sqsExporter{id: "queue", queueURL: "q", client: &fakeSQSClient{err: errors.New("boom")}, log: noopLogger{}}
	if err := exp.Export(context.Background(), testEvent); err == nil {
		t.Fatalf("expected error from Export")
	}
}

func TestSNSExporterExportSuccess(t *testing.T) {
	client := &fakeSNSClient{}
	exp := &snsExporter{id: "topic", topicARN: "arn:aws:sns:::topic", client: client, log: noopLogger{}}

	if err := exp.Export(context.Background(), testEvent); err != nil {
		t.Fatalf("Export returned error: %v", err)
	}
	if got := aws.ToString(client.input.TopicArn); got != "arn:aws:sns:::topic" {
		t.Fatalf("TopicArn = %s", got)
	}
	attr, ok := client.input.MessageAttributes["operation"]
	if !ok || aws.ToString(attr.StringValue) != "region" {
		t.Fatalf("operation attribute missing or wrong: %#v", attr)
	}
	if !strings.Contains(aws.ToString(client.input.Message), `"alpha3Code":"EST"`) {
		t.Fatalf("Message missing country: %s", aws.ToString(client.input.Message))
	}
}

func TestSNSExporterExportError(t *testing.T) {
	exp := &snsExporter{id: "topic", topicARN: "arn", client: &fakeSNSClient{err: errors.New("boom")}, log: noopLogger{}}
	if err := exp.Export(context.Background(), testEvent); err == nil {
		t.Fatalf("expected error from Export")
	}
}
