// seed crea el usuario administrador inicial si aún no existe.
//
// Uso: go run ./cmd/seed [-email admin@novasalud.com] [-password ...]
// La contraseña también puede pasarse vía ADMIN_PASSWORD. El comando es
// idempotente: si ya hay un usuario con ese email no hace nada.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/misikss/nova-salud-api/internal/domain"
	"github.com/misikss/nova-salud-api/internal/domain/entity"
	"github.com/misikss/nova-salud-api/internal/infrastructure/postgres"
	"github.com/misikss/nova-salud-api/pkg/config"
)

func main() {
	email := flag.String("email", "admin@novasalud.com", "email del administrador")
	password := flag.String("password", "", "contraseña del administrador (o ADMIN_PASSWORD)")
	nombre := flag.String("nombre", "Administrador", "nombre")
	apellido := flag.String("apellido", "Principal", "apellido")
	flag.Parse()

	pass := *password
	if pass == "" {
		pass = os.Getenv("ADMIN_PASSWORD")
	}
	if len(pass) < 8 {
		fmt.Fprintln(os.Stderr, "la contraseña debe tener al menos 8 caracteres (-password o ADMIN_PASSWORD)")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conectar a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	repo := postgres.NewUserRepository(pool)

	existing, err := repo.GetByEmail(*email)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		fmt.Fprintf(os.Stderr, "Consultar usuario: %v\n", err)
		os.Exit(1)
	}
	if existing != nil {
		fmt.Printf("El usuario %s ya existe, no se hace nada\n", *email)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Generar hash: %v\n", err)
		os.Exit(1)
	}

	now := time.Now()
	admin := &entity.User{
		ID:           uuid.NewString(),
		Nombre:       *nombre,
		Apellido:     *apellido,
		Email:        *email,
		PasswordHash: string(hash),
		Rol:          entity.RoleAdmin,
		Activo:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := repo.Create(admin); err != nil {
		fmt.Fprintf(os.Stderr, "Crear administrador: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Administrador %s creado (id %s)\n", admin.Email, admin.ID)
}
