package commands

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pharmafinder-client/internal/config"
	"github.com/pharmafinder-client/internal/domain/repository"
	"github.com/pharmafinder-client/internal/infrastructure/pharmaapi"
	"github.com/pharmafinder-client/internal/pkg/logger"
	"github.com/pharmafinder-client/internal/store"
	"github.com/pharmafinder-client/internal/usecase"
)

// clients - типизированные клиенты API, собираются перед каждой командой
type clients struct {
	pharmacies repository.PharmacyRepository
	ratings    repository.RatingRepository
	reviews    repository.ReviewRepository
	reviewUC   *usecase.ReviewUseCase
	log        *zap.Logger
}

var (
	apiURL   string
	logLevel string
	api      *clients
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "pharmactl",
		Short:         "Command line client for the pharmacy rating API",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if apiURL != "" {
				cfg.API.BaseURL = apiURL
			}
			if logLevel != "" {
				cfg.Log.Level = logLevel
			}

			log, err := logger.NewStderr(cfg.Log.Level)
			if err != nil {
				return err
			}

			client := pharmaapi.NewClient(&cfg.API, logger.Component(log, "api"))
			reviews := pharmaapi.NewReviewClient(client)
			api = &clients{
				pharmacies: pharmaapi.NewPharmacyClient(client),
				ratings:    pharmaapi.NewRatingClient(client),
				reviews:    reviews,
				reviewUC:   usecase.NewReviewUseCase(reviews, nil, store.New(), log),
				log:        log,
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if api != nil {
				_ = api.log.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&apiURL, "api", "", "API base URL (default from API_BASE_URL)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "error", "log level: debug, info, warn, error")

	root.AddCommand(
		pharmaciesCmd(),
		ratingsCmd(),
		tiersCmd(),
		reviewsCmd(),
		reviewCmd(),
	)
	return root
}

// printJSON печатает результат команды с отступами
func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
