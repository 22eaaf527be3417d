//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/docbridge/internal/bootstrap"
)

func initializeApp() (*bootstrap.App, func(), error) {
	wire.Build(
		bootstrap.ProviderSet,
		bootstrap.NewApp,
	)
	return nil, nil, nil
}
