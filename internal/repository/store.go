package repository

import (
	"context"

	"jackut-backend/internal/models"
)

// Snapshot é a foto completa do grafo: todos os usuários (com relações,
// perfis e caixas de entrada) e todas as comunidades. O serviço constrói o
// snapshot na gravação e repopula as suas tabelas a partir dele na carga;
// o store nunca toca nas tabelas do serviço diretamente.
type Snapshot struct {
	Users       []*models.User
	Communities []*models.Community
}

// Store define a interface de persistência do grafo.
// Facilita a injeção de dependência e a troca de driver.
type Store interface {
	// Load lê o estado persistido. Categoria ausente vale como vazia.
	Load(ctx context.Context) (*Snapshot, error)

	// Save grava a foto completa do estado atual
	Save(ctx context.Context, snap *Snapshot) error

	// Clear trunca o armazenamento persistido
	Clear(ctx context.Context) error
}
