package main

import (
	"context"

	"github.com/skynet2/whatsapp-finance-worker/pkg/breaker"
	"github.com/skynet2/whatsapp-finance-worker/pkg/broker"
)

type BrokerStatus interface {
	Status() broker.Status
}

type AIStatus interface {
	Status() breaker.Status
	Health(ctx context.Context) (map[string]any, error)
}
