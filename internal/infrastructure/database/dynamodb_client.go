package database

import (
	"context"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// Options carries the connection settings for the shared DynamoDB
// client. Endpoint is only set when targeting DynamoDB Local; against
// AWS it stays empty and the SDK resolves the regional endpoint.
type Options struct {
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
}

// OptionsFromEnv reads AWS_REGION, DYNAMODB_ENDPOINT, AWS_ACCESS_KEY_ID
// and AWS_SECRET_ACCESS_KEY. Credentials default to "local": DynamoDB
// Local accepts any value, while the SDK refuses to sign without one.
func OptionsFromEnv() Options {
	opts := Options{
		Region:    os.Getenv("AWS_REGION"),
		Endpoint:  os.Getenv("DYNAMODB_ENDPOINT"),
		AccessKey: os.Getenv("AWS_ACCESS_KEY_ID"),
		SecretKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
	}
	if opts.Region == "" {
		opts.Region = "ap-northeast-2"
	}
	if opts.AccessKey == "" {
		opts.AccessKey = "local"
	}
	if opts.SecretKey == "" {
		opts.SecretKey = "local"
	}
	return opts
}

// ConnectDynamoDB creates the DynamoDB client every repository shares.
func ConnectDynamoDB() *dynamodb.Client {
	opts := OptionsFromEnv()
	cfg, err := newAWSConfig(context.Background(), opts)
	if err != nil {
		log.Fatalf("[database] failed to load aws config: %v", err)
	}
	if opts.Endpoint != "" {
		log.Printf("[database] using dynamodb endpoint %s", opts.Endpoint)
	}
	return dynamodb.NewFromConfig(cfg)
}

func newAWSConfig(ctx context.Context, opts Options) (aws.Config, error) {
	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(opts.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, "")),
	}
	if opts.Endpoint != "" {
		resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, _ ...interface{}) (aws.Endpoint, error) {
			if service == dynamodb.ServiceID {
				return aws.Endpoint{URL: opts.Endpoint, SigningRegion: region, HostnameImmutable: true}, nil
			}
			return aws.Endpoint{}, &aws.EndpointNotFoundError{}
		})
		loadOpts = append(loadOpts, config.WithEndpointResolverWithOptions(resolver))
	}
	return config.LoadDefaultConfig(ctx, loadOpts...)
}
