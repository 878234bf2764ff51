package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/courtside-labs/courtside/internal/db"
	"github.com/courtside-labs/courtside/internal/http/api"
	authapi "github.com/courtside-labs/courtside/internal/http/api/admin/auth/endpoints"
	adminapi "github.com/courtside-labs/courtside/internal/http/api/admin/control/endpoints"
	scheduleapi "github.com/courtside-labs/courtside/internal/http/api/schedule/endpoints"
	"github.com/courtside-labs/courtside/internal/mail"
	"github.com/courtside-labs/courtside/internal/oracle"
	"github.com/courtside-labs/courtside/internal/prefs"
	"github.com/courtside-labs/courtside/internal/push"
	"github.com/courtside-labs/courtside/internal/storage"
)

// RegisterRoutes sets up all application routes
func RegisterRoutes(
	r *gin.Engine,
	env Environment,
	store db.Store,
	prefStore prefs.Store,
	feed scheduleapi.Feed,
	planOracle *oracle.Client,
	mailer *mail.Client,
	publisher *push.TVPublisher,
	exports storage.Storage,
) {
	// CORS
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool { return true },
		AllowMethods: []string{
			"GET",
			"POST",
			"PUT",
			"PATCH",
			"DELETE",
			"OPTIONS",
			"HEAD",
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Authorization",
			"Accept",
		},
		ExposeHeaders: []string{
			"Content-Length",
		},
		AllowCredentials: false,
	}))

	planner := scheduleapi.NewScheduleController(feed, planOracle, publisher)

	// public surface: the kiosk frontend talks to these without a session
	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api",
	},
		scheduleapi.FeedModule(feed),
		scheduleapi.ScheduleModule(feed, planOracle, publisher),
		scheduleapi.MailModule(planner, mailer, store),
		scheduleapi.ExportModule(planner, exports),
	)

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api/admin",
	},
		authapi.AuthPublicModule(env.SecretKey, store),
	)

	api.MountGroup(r, api.GroupConfig{
		Prefix:    "/api/admin",
		Auth:      true,
		SecretKey: env.SecretKey,
		Store:     store,
	},
		authapi.AuthSessionModule(env.SecretKey, store),
		adminapi.PreferencesModule(prefStore),
		adminapi.PlanModule(store),
	)

	// exported calendars when running on local storage
	if !env.UseSpaces {
		r.Static(env.ExportBaseURL, env.ExportDir)
	}
}
