package main

import (
	"context"
	"log"

	"github.com/PavaniTiago/pesquisa-satisfacao-api/internal/config"
	"github.com/PavaniTiago/pesquisa-satisfacao-api/internal/infrastructure/queue"
	"github.com/PavaniTiago/pesquisa-satisfacao-api/internal/infrastructure/source"
	"github.com/PavaniTiago/pesquisa-satisfacao-api/internal/utils"

	"github.com/hibiken/asynq"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Error loading config: %v", err)
	}
	if !cfg.QueueEnabled() {
		log.Fatal("❌ REDIS_URI não definida: o worker precisa do Redis")
	}

	ctx := context.Background()
	location := utils.GetLocation(cfg.Timezone)

	stores, err := source.Open(ctx, cfg, location)
	if err != nil {
		log.Fatalf("❌ Error setting up record source: %v", err)
	}
	defer stores.Close(ctx)

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: cfg.Redis.URI},
		asynq.Config{
			Concurrency: 5,
			Queues:      map[string]int{"default": 1},
		},
	)

	mux := asynq.NewServeMux()
	queue.RegisterHandlers(mux, stores.Surveys)

	log.Println("👷 Worker de pesquisas iniciado")
	if err := srv.Run(mux); err != nil {
		log.Fatalf("❌ Worker error: %v", err)
	}
}
