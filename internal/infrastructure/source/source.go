package source

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/PavaniTiago/pesquisa-satisfacao-api/internal/config"
	"github.com/PavaniTiago/pesquisa-satisfacao-api/internal/domain/repositories"
	"github.com/PavaniTiago/pesquisa-satisfacao-api/internal/infrastructure/database"
	"github.com/PavaniTiago/pesquisa-satisfacao-api/internal/infrastructure/mongodb"
	"github.com/PavaniTiago/pesquisa-satisfacao-api/internal/infrastructure/supabase"
	supa "github.com/supabase-community/supabase-go"
)

// Stores são os repositórios da fonte de registros escolhida por RECORD_SOURCE
type Stores struct {
	Surveys repositories.SurveyRepository
	Admins  repositories.AdminRepository
	// Supabase fica preenchido quando SUPABASE_URL/SUPABASE_KEY estão definidos
	Supabase *supa.Client
	Close    func(ctx context.Context) error
}

// Open conecta na fonte configurada e monta os repositórios
func Open(ctx context.Context, cfg *config.Config, location *time.Location) (*Stores, error) {
	stores := &Stores{Close: func(context.Context) error { return nil }}

	if cfg.Source.SupabaseURL != "" && cfg.Source.SupabaseKey != "" {
		client, err := supabase.NewClient(cfg.Source.SupabaseURL, cfg.Source.SupabaseKey)
		if err != nil {
			return nil, err
		}
		stores.Supabase = client
	}

	switch cfg.Source.Kind {
	case config.SourcePostgres:
		db, err := database.SetupDatabase(cfg.Source.DatabaseURL, cfg.Timezone)
		if err != nil {
			return nil, err
		}
		stores.Surveys = repositories.NewSurveyRepository(db, location)
		stores.Admins = repositories.NewAdminRepository(db)
		stores.Close = func(context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		}

	case config.SourceSupabase:
		if stores.Supabase == nil {
			return nil, fmt.Errorf("cliente supabase não configurado")
		}
		stores.Surveys = supabase.NewSurveyRepository(stores.Supabase, location)
		stores.Admins = supabase.NewAdminRepository(stores.Supabase)
		log.Println("✅ Supabase configurado")

	case config.SourceMongoDB:
		db, err := mongodb.Connect(ctx, cfg.Source.MongoURI, cfg.Source.MongoDatabase)
		if err != nil {
			return nil, err
		}
		stores.Surveys = mongodb.NewSurveyRepository(db, location)
		stores.Admins = mongodb.NewAdminRepository(db)
		stores.Close = func(ctx context.Context) error {
			return db.Client().Disconnect(ctx)
		}

	default:
		return nil, fmt.Errorf("RECORD_SOURCE inválido: %q", cfg.Source.Kind)
	}

	log.Printf("📦 Fonte de registros: %s", cfg.Source.Kind)
	return stores, nil
}
