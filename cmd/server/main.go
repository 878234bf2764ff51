package main

import (
	"context"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/courtside-labs/courtside/internal/db"
	"github.com/courtside-labs/courtside/internal/mail"
	"github.com/courtside-labs/courtside/internal/nba"
	"github.com/courtside-labs/courtside/internal/oracle"
	"github.com/courtside-labs/courtside/internal/prefs"
	"github.com/courtside-labs/courtside/internal/push"
	"github.com/courtside-labs/courtside/internal/redis"
)

func main() {
	// .env is optional; real deployments set env vars directly
	_ = godotenv.Load()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	env := LoadEnvironment()

	if err := db.Init(env.DatabaseURL); err != nil {
		log.Fatal().Err(err).Msg("db init failed")
	}
	if env.MigrationsPath != "" {
		if err := db.RunMigrations(env.MigrationsPath); err != nil {
			log.Fatal().Err(err).Msg("db migrations failed")
		}
	}
	store := db.NewStore()

	// redis backs the feed cache and preference blobs; without it the
	// feed goes straight upstream and preferences live in memory
	var kv *redis.Client
	if env.RedisAddress != "" {
		kv = redis.NewClient(env.RedisAddress, env.RedisUsername, env.RedisPassword)
		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := kv.Ping(pingCtx); err != nil {
			log.Warn().Err(err).Msg("redis unreachable at startup, caching will degrade")
		}
		cancel()
	}

	var feedCache nba.ByteCache
	var prefStore prefs.Store
	if kv != nil {
		feedCache = kv
		prefStore = prefs.NewKVStore(kv)
	} else {
		log.Warn().Msg("REDIS_ADDRESS not set, using in-memory preference store")
		prefStore = prefs.NewMemoryStore()
	}

	feed := nba.NewCachedClient(nba.NewClient(nba.Config{ScheduleURL: env.NBAScheduleURL}), feedCache)

	planOracle := oracle.NewClient(oracle.Config{
		APIKey:  env.OracleAPIKey,
		BaseURL: env.OracleBaseURL,
		Model:   env.OracleModel,
	})

	mailer := mail.NewClient(mail.Config{
		APIKey: env.ResendAPIKey,
		From:   env.MailFrom,
	})

	var publisher *push.TVPublisher
	if env.MQTTBrokerURL != "" {
		var err error
		publisher, err = push.NewTVPublisher(env.MQTTBrokerURL, "courtside-server")
		if err != nil {
			log.Warn().Err(err).Msg("mqtt unavailable, lineups will not be pushed")
			publisher = nil
		}
	}

	exports := InitStorage(env)

	if env.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	RegisterRoutes(r, env, store, prefStore, feed, planOracle, mailer, publisher, exports)

	log.Info().Str("address", env.ServerAddress).Msg("starting server")
	if err := r.Run(env.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}
