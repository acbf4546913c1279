package database

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// DynamoDBSettings carries the connection settings for the DynamoDB request store.
//
// Endpoint is optional; set it to target DynamoDB Local (e.g. http://dynamodb:8000).
// Local DynamoDB does not validate credentials, but the AWS SDK requires them,
// so AccessKeyID/SecretAccessKey default to "local".
type DynamoDBSettings struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string
}

// ConnectDynamoDB creates a DynamoDB client from settings.
func ConnectDynamoDB(ctx context.Context, s DynamoDBSettings) (*dynamodb.Client, error) {
	cfg, err := NewDynamoDBConfig(ctx, s)
	if err != nil {
		return nil, err
	}
	return dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if s.Endpoint != "" {
			o.BaseEndpoint = aws.String(s.Endpoint)
		}
	}), nil
}

func NewDynamoDBConfig(ctx context.Context, s DynamoDBSettings) (aws.Config, error) {
	creds := credentials.NewStaticCredentialsProvider(
		valueOr(s.AccessKeyID, "local"),
		valueOr(s.SecretAccessKey, "local"),
		"",
	)

	return config.LoadDefaultConfig(ctx,
		config.WithRegion(valueOr(s.Region, "us-east-1")),
		config.WithCredentialsProvider(creds),
	)
}

func valueOr(v, def string) string {
	if v != "" {
		return v
	}
	return def
}
