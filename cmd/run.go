package cmd

import (
	"fmt"

	"github.com/abhisek/flashquest/internal/config"
	"github.com/abhisek/flashquest/internal/gems"
	"github.com/abhisek/flashquest/internal/store"
	"github.com/abhisek/flashquest/internal/study"
	"github.com/spf13/cobra"
)

// deps is everything a command needs once the store is open.
type deps struct {
	cfg   config.Config
	store *store.Store
	gems  *gems.Service
	study *study.Service
}

func (d *deps) Close() error {
	return d.store.Close()
}

// openDeps resolves configuration, opens the store and builds the services.
// opts are applied to the study service after the config-derived ones.
func openDeps(cmd *cobra.Command, opts ...study.Option) (*deps, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	dbPath, err := resolveDBPath(cfg)
	if err != nil {
		return nil, err
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	eventRepo := st.EventRepo()
	gemService := gems.NewService(eventRepo)
	svc := study.NewService(study.Repos{
		Decks:    st.DeckRepo(),
		Cards:    st.CardRepo(),
		Progress: st.ProgressRepo(),
		Settings: st.SettingsRepo(),
		Events:   eventRepo,
	}, append([]study.Option{
		study.WithGems(gemService),
		study.WithSessionCap(cfg.SessionCap),
		study.WithDailyNewLimit(cfg.DailyNewLimit),
	}, opts...)...)

	return &deps{cfg: cfg, store: st, gems: gemService, study: svc}, nil
}
