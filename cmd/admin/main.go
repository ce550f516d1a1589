package main

import (
	"context"
	"flag"
	"log"
	"strings"
	"time"

	"github.com/PavaniTiago/pesquisa-satisfacao-api/internal/auth"
	"github.com/PavaniTiago/pesquisa-satisfacao-api/internal/config"
	"github.com/PavaniTiago/pesquisa-satisfacao-api/internal/domain/entities"
	"github.com/PavaniTiago/pesquisa-satisfacao-api/internal/infrastructure/source"
	"github.com/PavaniTiago/pesquisa-satisfacao-api/internal/utils"

	"github.com/google/uuid"
)

// Cadastra um administrador do painel.
// Com AUTH_PROVIDER=local informe -password; com supabase informe -id do usuário no Supabase Auth.
func main() {
	email := flag.String("email", "", "e-mail do administrador")
	password := flag.String("password", "", "senha (AUTH_PROVIDER=local)")
	id := flag.String("id", "", "ID do usuário no Supabase Auth (AUTH_PROVIDER=supabase)")
	flag.Parse()

	if *email == "" {
		log.Fatal("❌ -email é obrigatório")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Error loading config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	location := utils.GetLocation(cfg.Timezone)
	stores, err := source.Open(ctx, cfg, location)
	if err != nil {
		log.Fatalf("❌ Error setting up record source: %v", err)
	}
	defer stores.Close(ctx)

	admin := entities.AdminUser{
		ID:        *id,
		Email:     strings.ToLower(strings.TrimSpace(*email)),
		CreatedAt: time.Now().In(location),
	}

	switch cfg.Auth.Provider {
	case config.AuthLocal:
		if *password == "" {
			log.Fatal("❌ -password é obrigatório com AUTH_PROVIDER=local")
		}
		admin.PasswordHash, err = auth.HashPassword(*password)
		if err != nil {
			log.Fatalf("❌ %v", err)
		}
		if admin.ID == "" {
			admin.ID = uuid.NewString()
		}
	case config.AuthSupabase:
		if admin.ID == "" {
			log.Fatal("❌ -id é obrigatório com AUTH_PROVIDER=supabase")
		}
	}

	if err := stores.Admins.Create(ctx, &admin); err != nil {
		log.Fatalf("❌ %v", err)
	}
	log.Printf("✅ Administrador %s cadastrado (%s)", admin.Email, admin.ID)
}
