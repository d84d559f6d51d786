// cmd/seedadmin/main.go — seeds the default admin account in the data dir.
// Uso: go run ./cmd/seedadmin
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/luizeletrico1/sistema-otica-fim/internal/repository"
	"github.com/luizeletrico1/sistema-otica-fim/internal/store"
)

func main() {
	dir := os.Getenv("DATA_DIR")
	if dir == "" {
		dir = "dados"
	}

	st, err := store.New(dir)
	if err != nil {
		log.Fatalf("store error: %v", err)
	}

	repo := repository.NewUsuarioRepository(st)
	if err := repo.EnsureAdmin(context.Background()); err != nil {
		log.Fatalf("seed error: %v", err)
	}

	fmt.Printf("admin account ready in %s\n", st.Path(store.ColUsuarios))
}
