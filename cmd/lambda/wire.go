//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/docbridge/internal/bootstrap"
	lambdaiface "github.com/yanqian/docbridge/internal/interface/lambda"
)

func initializeAdapter() (*lambdaiface.Adapter, func(), error) {
	wire.Build(
		bootstrap.ProviderSet,
		lambdaiface.NewAdapter,
	)
	return nil, nil, nil
}
