package supabase

import (
	"fmt"

	supa "github.com/supabase-community/supabase-go"
)

// NewClient cria o cliente do Supabase (PostgREST + GoTrue) a partir da URL do projeto e da chave
func NewClient(url, key string) (*supa.Client, error) {
	if url == "" || key == "" {
		return nil, fmt.Errorf("SUPABASE_URL e SUPABASE_KEY são obrigatórios")
	}
	client, err := supa.NewClient(url, key, &supa.ClientOptions{})
	if err != nil {
		return nil, fmt.Errorf("erro ao criar cliente supabase: %w", err)
	}
	return client, nil
}
