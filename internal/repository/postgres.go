package repository

import (
	"context"
	"fmt"

	"jackut-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// PostgresStore é a implementação da interface Store para o PostgreSQL.
// O grafo inteiro é gravado de uma vez: Save trunca e reinsere todas as
// categorias dentro de uma transação, espelhando a semântica de
// substituição total dos arquivos.
type PostgresStore struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

// NewPostgresStore cria uma nova instância do PostgresStore e pool de conexões
func NewPostgresStore(ctx context.Context, databaseURL string, logger *zap.Logger) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("não foi possível criar pool de conexão: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("não foi possível pingar o banco de dados: %w", err)
	}

	logger.Info("pool de conexão com PostgreSQL estabelecido")
	return &PostgresStore{db: pool, logger: logger}, nil
}

// Close fecha o pool de conexões
func (s *PostgresStore) Close() {
	s.db.Close()
}

// RunMigrations executa o script SQL de migração
func (s *PostgresStore) RunMigrations(ctx context.Context, migrationSQL string) error {
	_, err := s.db.Exec(ctx, migrationSQL)
	if err != nil {
		return fmt.Errorf("falha ao executar migração: %w", err)
	}
	return nil
}

var allTables = []string{
	"typed_relationships", "community_messages", "community_members",
	"communities", "direct_messages", "friendships", "memberships",
	"profile_attributes", "users",
}

// Clear trunca todas as tabelas
func (s *PostgresStore) Clear(ctx context.Context) error {
	for _, table := range allTables {
		if _, err := s.db.Exec(ctx, "TRUNCATE TABLE "+table+" CASCADE"); err != nil {
			return fmt.Errorf("falha ao truncar a tabela %s: %w", table, err)
		}
	}
	return nil
}

// Save substitui o conteúdo de todas as tabelas pelo snapshot, em uma
// única transação
func (s *PostgresStore) Save(ctx context.Context, snap *Snapshot) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("falha ao abrir transação: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, table := range allTables {
		if _, err := tx.Exec(ctx, "TRUNCATE TABLE "+table+" CASCADE"); err != nil {
			return fmt.Errorf("falha ao truncar a tabela %s: %w", table, err)
		}
	}

	for _, u := range snap.Users {
		if err := insertUser(ctx, tx, u); err != nil {
			return err
		}
	}
	for _, c := range snap.Communities {
		if err := insertCommunity(ctx, tx, c); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("falha ao confirmar transação: %w", err)
	}
	return nil
}

func insertUser(ctx context.Context, tx pgx.Tx, u *models.User) error {
	sql := `
        INSERT INTO users (login, password, name)
        VALUES ($1, $2, $3)`

	if _, err := tx.Exec(ctx, sql, u.Login, u.Password, u.Name); err != nil {
		return fmt.Errorf("falha ao inserir usuário: %w", err)
	}

	for attribute, value := range u.Profile {
		sql := `
            INSERT INTO profile_attributes (login, attribute, value)
            VALUES ($1, $2, $3)`
		if _, err := tx.Exec(ctx, sql, u.Login, attribute, value); err != nil {
			return fmt.Errorf("falha ao inserir atributo de perfil: %w", err)
		}
	}

	for i, friend := range u.Friends {
		sql := `
            INSERT INTO friendships (login, friend, position)
            VALUES ($1, $2, $3)`
		if _, err := tx.Exec(ctx, sql, u.Login, friend, i); err != nil {
			return fmt.Errorf("falha ao inserir amizade: %w", err)
		}
	}

	for i, community := range u.Communities {
		sql := `
            INSERT INTO memberships (login, community, position)
            VALUES ($1, $2, $3)`
		if _, err := tx.Exec(ctx, sql, u.Login, community, i); err != nil {
			return fmt.Errorf("falha ao inserir participação: %w", err)
		}
	}

	for _, msg := range u.Inbox {
		sql := `
            INSERT INTO direct_messages (recipient, sender, body)
            VALUES ($1, $2, $3)`
		if _, err := tx.Exec(ctx, sql, u.Login, msg.From, msg.Body); err != nil {
			return fmt.Errorf("falha ao inserir recado: %w", err)
		}
	}

	for _, msg := range u.CommunityInbox {
		sql := `
            INSERT INTO community_messages (recipient, body)
            VALUES ($1, $2)`
		if _, err := tx.Exec(ctx, sql, u.Login, msg.Body); err != nil {
			return fmt.Errorf("falha ao inserir mensagem de comunidade: %w", err)
		}
	}

	relations := []struct {
		targets  []string
		relation string
	}{
		{u.Idols, relationIdol},
		{u.Fans, relationFan},
		{u.Crushes, relationCrush},
		{u.ReceivedCrushes, relationCrushReceived},
		{u.Enemies, relationEnemy},
	}
	for _, group := range relations {
		for _, target := range group.targets {
			sql := `
                INSERT INTO typed_relationships (login, target, relation)
                VALUES ($1, $2, $3)`
			if _, err := tx.Exec(ctx, sql, u.Login, target, group.relation); err != nil {
				return fmt.Errorf("falha ao inserir relação: %w", err)
			}
		}
	}

	return nil
}

func insertCommunity(ctx context.Context, tx pgx.Tx, c *models.Community) error {
	sql := `
        INSERT INTO communities (name, owner, description)
        VALUES ($1, $2, $3)`

	if _, err := tx.Exec(ctx, sql, c.Name, c.Owner, c.Description); err != nil {
		return fmt.Errorf("falha ao inserir comunidade: %w", err)
	}

	for i, member := range c.Members {
		sql := `
            INSERT INTO community_members (community, login, position)
            VALUES ($1, $2, $3)`
		if _, err := tx.Exec(ctx, sql, c.Name, member, i); err != nil {
			return fmt.Errorf("falha ao inserir membro de comunidade: %w", err)
		}
	}

	return nil
}

// Load reconstrói o grafo a partir das tabelas. Usuários são carregados
// antes das comunidades; as referências cruzadas são resolvidas por login
// e por nome, como no store de arquivos.
func (s *PostgresStore) Load(ctx context.Context) (*Snapshot, error) {
	users := make(map[string]*models.User)
	snap := &Snapshot{}

	rows, err := s.db.Query(ctx, `SELECT login, password, name FROM users ORDER BY login`)
	if err != nil {
		return nil, fmt.Errorf("falha ao buscar usuários: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var login, password, name string
		if err := rows.Scan(&login, &password, &name); err != nil {
			return nil, fmt.Errorf("falha ao escanear linha de usuário: %w", err)
		}
		u := models.NewUser(login, password, name)
		users[login] = u
		snap.Users = append(snap.Users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os usuários: %w", err)
	}
	rows.Close()

	if err := s.loadProfileAttributes(ctx, users); err != nil {
		return nil, err
	}
	if err := s.loadFriendships(ctx, users); err != nil {
		return nil, err
	}
	if err := s.loadCommunities(ctx, users, snap); err != nil {
		return nil, err
	}
	if err := s.loadMemberships(ctx, users); err != nil {
		return nil, err
	}
	if err := s.loadDirectMessages(ctx, users); err != nil {
		return nil, err
	}
	if err := s.loadCommunityMessages(ctx, users); err != nil {
		return nil, err
	}
	if err := s.loadTypedRelationships(ctx, users); err != nil {
		return nil, err
	}

	return snap, nil
}

func (s *PostgresStore) loadProfileAttributes(ctx context.Context, users map[string]*models.User) error {
	rows, err := s.db.Query(ctx, `SELECT login, attribute, value FROM profile_attributes`)
	if err != nil {
		return fmt.Errorf("falha ao buscar atributos de perfil: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var login, attribute, value string
		if err := rows.Scan(&login, &attribute, &value); err != nil {
			return fmt.Errorf("falha ao escanear atributo de perfil: %w", err)
		}
		if u, ok := users[login]; ok {
			u.Profile[attribute] = value
		}
	}
	return rows.Err()
}

func (s *PostgresStore) loadFriendships(ctx context.Context, users map[string]*models.User) error {
	rows, err := s.db.Query(ctx, `SELECT login, friend FROM friendships ORDER BY login, position`)
	if err != nil {
		return fmt.Errorf("falha ao buscar amizades: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var login, friend string
		if err := rows.Scan(&login, &friend); err != nil {
			return fmt.Errorf("falha ao escanear amizade: %w", err)
		}
		if u, ok := users[login]; ok {
			u.Friends = append(u.Friends, friend)
		}
	}
	return rows.Err()
}

func (s *PostgresStore) loadCommunities(ctx context.Context, users map[string]*models.User, snap *Snapshot) error {
	rows, err := s.db.Query(ctx, `SELECT name, owner, description FROM communities ORDER BY name`)
	if err != nil {
		return fmt.Errorf("falha ao buscar comunidades: %w", err)
	}
	defer rows.Close()

	communities := make(map[string]*models.Community)
	for rows.Next() {
		var name, owner, description string
		if err := rows.Scan(&name, &owner, &description); err != nil {
			return fmt.Errorf("falha ao escanear comunidade: %w", err)
		}
		c := &models.Community{Name: name, Owner: owner, Description: description}
		communities[name] = c
		snap.Communities = append(snap.Communities, c)
		if u, ok := users[owner]; ok {
			u.OwnedCommunities = append(u.OwnedCommunities, name)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("erro ao iterar sobre as comunidades: %w", err)
	}
	rows.Close()

	memberRows, err := s.db.Query(ctx, `SELECT community, login FROM community_members ORDER BY community, position`)
	if err != nil {
		return fmt.Errorf("falha ao buscar membros de comunidade: %w", err)
	}
	defer memberRows.Close()

	for memberRows.Next() {
		var community, login string
		if err := memberRows.Scan(&community, &login); err != nil {
			return fmt.Errorf("falha ao escanear membro de comunidade: %w", err)
		}
		if c, ok := communities[community]; ok {
			c.Members = append(c.Members, login)
		}
	}
	return memberRows.Err()
}

func (s *PostgresStore) loadMemberships(ctx context.Context, users map[string]*models.User) error {
	rows, err := s.db.Query(ctx, `SELECT login, community FROM memberships ORDER BY login, position`)
	if err != nil {
		return fmt.Errorf("falha ao buscar participações: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var login, community string
		if err := rows.Scan(&login, &community); err != nil {
			return fmt.Errorf("falha ao escanear participação: %w", err)
		}
		if u, ok := users[login]; ok {
			u.Communities = append(u.Communities, community)
		}
	}
	return rows.Err()
}

func (s *PostgresStore) loadDirectMessages(ctx context.Context, users map[string]*models.User) error {
	rows, err := s.db.Query(ctx, `SELECT recipient, sender, body FROM direct_messages ORDER BY id`)
	if err != nil {
		return fmt.Errorf("falha ao buscar recados: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var recipient, sender, body string
		if err := rows.Scan(&recipient, &sender, &body); err != nil {
			return fmt.Errorf("falha ao escanear recado: %w", err)
		}
		if u, ok := users[recipient]; ok {
			u.Inbox = append(u.Inbox, models.DirectMessage{From: sender, To: recipient, Body: body})
		}
	}
	return rows.Err()
}

func (s *PostgresStore) loadCommunityMessages(ctx context.Context, users map[string]*models.User) error {
	rows, err := s.db.Query(ctx, `SELECT recipient, body FROM community_messages ORDER BY id`)
	if err != nil {
		return fmt.Errorf("falha ao buscar mensagens de comunidade: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var recipient, body string
		if err := rows.Scan(&recipient, &body); err != nil {
			return fmt.Errorf("falha ao escanear mensagem de comunidade: %w", err)
		}
		if u, ok := users[recipient]; ok {
			u.CommunityInbox = append(u.CommunityInbox, models.CommunityMessage{To: recipient, Body: body})
		}
	}
	return rows.Err()
}

func (s *PostgresStore) loadTypedRelationships(ctx context.Context, users map[string]*models.User) error {
	rows, err := s.db.Query(ctx, `SELECT login, target, relation FROM typed_relationships ORDER BY id`)
	if err != nil {
		return fmt.Errorf("falha ao buscar relações: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var login, target, relation string
		if err := rows.Scan(&login, &target, &relation); err != nil {
			return fmt.Errorf("falha ao escanear relação: %w", err)
		}
		u, ok := users[login]
		if !ok {
			continue
		}
		switch relation {
		case relationIdol:
			u.Idols = append(u.Idols, target)
		case relationFan:
			u.Fans = append(u.Fans, target)
		case relationCrush:
			u.Crushes = append(u.Crushes, target)
		case relationCrushReceived:
			u.ReceivedCrushes = append(u.ReceivedCrushes, target)
		case relationEnemy:
			u.Enemies = append(u.Enemies, target)
		default:
			s.logger.Warn("tipo de relação desconhecido ignorado",
				zap.String("relacao", relation))
		}
	}
	return rows.Err()
}
