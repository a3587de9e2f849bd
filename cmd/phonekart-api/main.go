package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/phonekart/phonekart-agent/internal/adapters/llm"
	memstore "github.com/phonekart/phonekart-agent/internal/adapters/storage/memory"
	"github.com/phonekart/phonekart-agent/internal/app/catalog"
	"github.com/phonekart/phonekart-agent/internal/app/conversation"
	"github.com/phonekart/phonekart-agent/internal/config"
	"github.com/phonekart/phonekart-agent/internal/domain"
	"github.com/phonekart/phonekart-agent/internal/observability"

	httpadapter "github.com/phonekart/phonekart-agent/internal/adapters/http"
)

func main() {
	cfg := config.Load()
	observability.Setup(cfg.LogLevel)
	log := observability.Logger()

	// Catalog: a load failure degrades to an empty catalog, not a dead process.
	index, err := catalog.LoadFile(cfg.CatalogPath)
	if err != nil {
		log.Warn().Err(err).Str("path", cfg.CatalogPath).Msg("catalog load failed, starting with empty catalog")
		index = catalog.NewIndex(nil)
	} else {
		log.Info().Int("phones", index.Len()).Msg("catalog loaded")
	}

	// Generation provider: constructed once at startup, only when configured.
	// Without it every reply comes from the fallback composer.
	var llmClient domain.LLMClient
	if cfg.ProviderConfigured() {
		llmClient = llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAITimeout)
		log.Info().Str("model", cfg.OpenAIModel).Msg("generation provider configured")
	} else {
		log.Warn().Msg("no generation provider configured, fallback replies only")
	}

	sessions := memstore.NewSessionStore()
	svc := conversation.NewService(llmClient, sessions, index)
	handler := httpadapter.NewServer(svc, index)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("phonekart API listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}
