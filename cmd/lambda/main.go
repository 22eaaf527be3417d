package main

import (
	"log"

	"github.com/aws/aws-lambda-go/lambda"
)

func main() {
	adapter, cleanup, err := initializeAdapter()
	if err != nil {
		log.Fatalf("failed to wire lambda handler: %v", err)
	}
	defer cleanup()

	lambda.Start(adapter.Handle)
}
