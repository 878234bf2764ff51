package main

import (
	"github.com/rs/zerolog/log"

	"github.com/courtside-labs/courtside/internal/storage"
)

// InitStorage selects and returns the configured export storage backend
func InitStorage(env Environment) storage.Storage {
	if env.UseSpaces {
		spacesStorage, err := storage.NewSpacesStorage(
			env.SpacesEndpoint,
			env.SpacesRegion,
			env.SpacesBucket,
			env.SpacesCDNURL,
			env.SpacesAccessKey,
			env.SpacesSecretKey,
		)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize Spaces storage")
		}
		log.Info().Str("cdn", env.SpacesCDNURL).Msg("using DigitalOcean Spaces export storage")
		return spacesStorage
	}

	log.Info().Str("dir", env.ExportDir).Msg("using local export storage")
	return storage.NewLocalStorage(env.ExportDir, env.ExportBaseURL)
}
