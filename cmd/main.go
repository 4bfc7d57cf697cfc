// Copyright (c) 2025, DotHrishi. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/DotHrishi/Stock-Sage/internal/api"
	"github.com/DotHrishi/Stock-Sage/internal/config"
	"github.com/DotHrishi/Stock-Sage/internal/digest"
	"github.com/DotHrishi/Stock-Sage/internal/mailer"
	"github.com/DotHrishi/Stock-Sage/internal/news"
	"github.com/DotHrishi/Stock-Sage/internal/reporter"
	"github.com/DotHrishi/Stock-Sage/internal/storage"
	"github.com/DotHrishi/Stock-Sage/internal/summary"
	"github.com/DotHrishi/Stock-Sage/internal/welcome"
)

func main() {
	_ = godotenv.Load()

	db, err := sqlx.Connect("postgres", config.Get().DatabaseDSN)
	if err != nil {
		log.Printf("[ERROR] failed to connect to db: %v", err)
		return
	}
	defer db.Close()

	if config.Get().SMTPUsername == "" || config.Get().SMTPPassword == "" {
		log.Printf("[ERROR] smtp_username and smtp_password are required")
		return
	}

	mail, err := mailer.New(
		config.Get().SMTPHost,
		config.Get().SMTPPort,
		config.Get().SMTPUsername,
		config.Get().SMTPPassword,
		config.Get().EmailFrom,
		config.Get().MailTimeout,
	)
	if err != nil {
		log.Printf("[ERROR] failed to create mailer: %v", err)
		return
	}

	var fetcher news.Fetcher
	if config.Get().FinnhubAPIKey != "" {
		fetcher = news.NewFinnhubFetcher(config.Get().FinnhubAPIKey)
		log.Printf("[INFO] using Finnhub article fetcher")
	} else {
		fetcher = news.NewFeedFetcher(config.Get().FallbackFeedURL)
		log.Printf("[INFO] no Finnhub API key, using RSS feed fetcher: %s", config.Get().FallbackFeedURL)
	}

	var summarizer digest.Summarizer
	switch config.Get().AIType {
	case "openai":
		if config.Get().AIKey == "" {
			log.Printf("[ERROR] ai_key is required when ai_type is \"openai\"")
			return
		}
		summarizer = summary.NewOpenAISummarizer(
			config.Get().AIBaseURL,
			config.Get().AIKey,
			config.Get().AIModel,
			config.Get().AITimeout,
		)
		log.Printf("[INFO] using OpenAI-compatible summarizer (model: %s)", config.Get().AIModel)
	default:
		if config.Get().AIBaseURL == "" {
			log.Printf("[ERROR] ai_base_url is required when ai_type is \"ollama\"")
			return
		}
		summarizer = summary.NewOllamaSummarizer(
			config.Get().AIBaseURL,
			config.Get().AIModel,
			config.Get().AITimeout,
		)
		log.Printf("[INFO] using Ollama summarizer (model: %s)", config.Get().AIModel)
	}

	var (
		subscriberStorage = storage.NewSubscriberStorage(db)
		watchlistStorage  = storage.NewWatchlistStorage(db)
		pipeline          = digest.New(
			subscriberStorage,
			watchlistStorage,
			fetcher,
			summarizer,
			mail,
		)
		scheduler       = digest.NewScheduler(pipeline, reporter.New(mail, config.Get().AdminEmail))
		welcomePipeline = welcome.New(summarizer, mail)
		server          = api.NewServer(welcomePipeline, scheduler)
	)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	go func(ctx context.Context) {
		if err := scheduler.Start(ctx, config.Get().DigestCron); err != nil {
			if !errors.Is(err, context.Canceled) {
				log.Printf("[ERROR] failed to run digest scheduler: %v", err)
				return
			}

			log.Printf("[INFO] digest scheduler stopped")
		}
	}(ctx)

	httpServer := &http.Server{
		Addr:    config.Get().ListenAddr,
		Handler: server.Router(),
	}

	go func(ctx context.Context) {
		<-ctx.Done()
		if err := httpServer.Shutdown(context.Background()); err != nil {
			log.Printf("[ERROR] failed to shut down http server: %v", err)
		}
	}(ctx)

	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Printf("[ERROR] failed to run http server: %v", err)
	}
}
