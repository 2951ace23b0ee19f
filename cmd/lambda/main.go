// Command lambda serves the same router behind API Gateway.
package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"

	"rescuerehab/internal/app"
	intconfig "rescuerehab/internal/config"
	"rescuerehab/internal/utils"
)

var adapter *ginadapter.GinLambda

func handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return adapter.ProxyWithContext(ctx, req)
}

func main() {
	env := intconfig.LoadEnv()
	log := utils.InitLogger(env.AppEnv)

	application, err := app.New(context.Background(), env)
	if err != nil {
		log.Fatal().Err(err).Msg("cold start failed")
	}
	adapter = ginadapter.New(application.Engine)
	lambda.Start(handler)
}
