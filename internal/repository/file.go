package repository

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"jackut-backend/internal/models"

	"go.uber.org/zap"
)

// Arquivos de dados, um por categoria de registro
const (
	usersFile              = "users.txt"
	friendshipsFile        = "friendships.txt"
	directMessagesFile     = "direct_messages.txt"
	communitiesFile        = "communities.txt"
	communityMessagesFile  = "community_messages.txt"
	typedRelationshipsFile = "typed_relationships.txt"
)

// Tipos de relação gravados em typed_relationships.txt
const (
	relationIdol          = "IDOL"
	relationFan           = "FAN"
	relationCrush         = "CRUSH"
	relationCrushReceived = "CRUSH_RECEIVED"
	relationEnemy         = "ENEMY"
)

// FileStore persiste o grafo em arquivos de texto delimitados por ponto e
// vírgula, um registro por linha, com coleções no formato {v1,v2}.
// Arquivo ausente vale como categoria vazia; uma categoria ilegível é
// registrada no log e pulada sem abortar a carga das demais.
type FileStore struct {
	dir    string
	logger *zap.Logger
}

// NewFileStore cria o store de arquivos, garantindo que a pasta de dados exista
func NewFileStore(dir string, logger *zap.Logger) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("não foi possível criar a pasta de dados: %w", err)
	}
	return &FileStore{dir: dir, logger: logger}, nil
}

// --- Gravação ---

// Save grava as seis categorias, cada uma no seu arquivo
func (s *FileStore) Save(ctx context.Context, snap *Snapshot) error {
	files := []struct {
		name    string
		content string
	}{
		{usersFile, encodeUsers(snap.Users)},
		{friendshipsFile, encodeFriendships(snap.Users)},
		{directMessagesFile, encodeDirectMessages(snap.Users)},
		{communitiesFile, encodeCommunities(snap.Communities)},
		{communityMessagesFile, encodeCommunityMessages(snap.Users)},
		{typedRelationshipsFile, encodeTypedRelationships(snap.Users)},
	}

	for _, f := range files {
		path := filepath.Join(s.dir, f.name)
		if err := os.WriteFile(path, []byte(f.content), 0o644); err != nil {
			return fmt.Errorf("falha ao escrever o arquivo %s: %w", f.name, err)
		}
	}
	return nil
}

// Clear trunca todos os arquivos de dados
func (s *FileStore) Clear(ctx context.Context) error {
	names := []string{
		usersFile, friendshipsFile, directMessagesFile,
		communitiesFile, communityMessagesFile, typedRelationshipsFile,
	}
	for _, name := range names {
		path := filepath.Join(s.dir, name)
		if err := os.WriteFile(path, nil, 0o644); err != nil {
			return fmt.Errorf("falha ao limpar o arquivo %s: %w", name, err)
		}
	}
	return nil
}

// login;senha;nome;[chave:valor;]*;{comunidades}
func encodeUsers(users []*models.User) string {
	var b strings.Builder
	for _, u := range users {
		b.WriteString(u.Login)
		b.WriteString(";")
		b.WriteString(u.Password)
		b.WriteString(";")
		b.WriteString(u.Name)
		b.WriteString(";")

		keys := make([]string, 0, len(u.Profile))
		for k := range u.Profile {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			b.WriteString(k)
			b.WriteString(":")
			b.WriteString(u.Profile[k])
			b.WriteString(";")
		}

		b.WriteString(models.FormatList(u.Communities))
		b.WriteString("\n")
	}
	return b.String()
}

// login;{amigos}
func encodeFriendships(users []*models.User) string {
	var b strings.Builder
	for _, u := range users {
		b.WriteString(u.Login)
		b.WriteString(";")
		b.WriteString(models.FormatList(u.Friends))
		b.WriteString("\n")
	}
	return b.String()
}

// destinatario;remetente;texto
func encodeDirectMessages(users []*models.User) string {
	var b strings.Builder
	for _, u := range users {
		for _, msg := range u.Inbox {
			b.WriteString(u.Login)
			b.WriteString(";")
			b.WriteString(msg.From)
			b.WriteString(";")
			b.WriteString(msg.Body)
			b.WriteString("\n")
		}
	}
	return b.String()
}

// dono;nome;descricao;{membros}
func encodeCommunities(communities []*models.Community) string {
	var b strings.Builder
	for _, c := range communities {
		b.WriteString(c.Owner)
		b.WriteString(";")
		b.WriteString(c.Name)
		b.WriteString(";")
		b.WriteString(c.Description)
		b.WriteString(";")
		b.WriteString(models.FormatList(c.Members))
		b.WriteString("\n")
	}
	return b.String()
}

// destinatario;texto
func encodeCommunityMessages(users []*models.User) string {
	var b strings.Builder
	for _, u := range users {
		for _, msg := range u.CommunityInbox {
			b.WriteString(u.Login)
			b.WriteString(";")
			b.WriteString(msg.Body)
			b.WriteString("\n")
		}
	}
	return b.String()
}

// login;alvo;TIPO
func encodeTypedRelationships(users []*models.User) string {
	var b strings.Builder
	write := func(login, target, relation string) {
		b.WriteString(login)
		b.WriteString(";")
		b.WriteString(target)
		b.WriteString(";")
		b.WriteString(relation)
		b.WriteString("\n")
	}

	for _, u := range users {
		for _, t := range u.Idols {
			write(u.Login, t, relationIdol)
		}
		for _, t := range u.Fans {
			write(u.Login, t, relationFan)
		}
		for _, t := range u.Crushes {
			write(u.Login, t, relationCrush)
		}
		for _, t := range u.ReceivedCrushes {
			write(u.Login, t, relationCrushReceived)
		}
		for _, t := range u.Enemies {
			write(u.Login, t, relationEnemy)
		}
	}
	return b.String()
}

// --- Carga ---

// fileLoad acumula o estado sendo reconstruído durante a carga.
// As comunidades são carregadas depois dos usuários; a participação
// usuário->comunidade declarada no registro de usuário fica pendente até
// que todas as comunidades existam.
type fileLoad struct {
	logger *zap.Logger

	users     map[string]*models.User
	userOrder []string

	communities    map[string]*models.Community
	communityOrder []string

	pendingMemberships map[string][]string
}

// Load lê as seis categorias e reconstrói o grafo
func (s *FileStore) Load(ctx context.Context) (*Snapshot, error) {
	load := &fileLoad{
		logger:             s.logger,
		users:              make(map[string]*models.User),
		communities:        make(map[string]*models.Community),
		pendingMemberships: make(map[string][]string),
	}

	s.loadCategory(usersFile, load.userLine)
	s.loadCategory(friendshipsFile, load.friendshipLine)
	s.loadCategory(directMessagesFile, load.directMessageLine)
	s.loadCategory(communitiesFile, load.communityLine)
	s.loadCategory(communityMessagesFile, load.communityMessageLine)
	s.loadCategory(typedRelationshipsFile, load.typedRelationshipLine)

	load.resolveMemberships()

	snap := &Snapshot{}
	for _, login := range load.userOrder {
		snap.Users = append(snap.Users, load.users[login])
	}
	for _, name := range load.communityOrder {
		snap.Communities = append(snap.Communities, load.communities[name])
	}
	return snap, nil
}

// loadCategory aplica fn a cada linha não vazia do arquivo. Arquivo
// ausente não é erro; qualquer outra falha de leitura é registrada e a
// categoria fica com o que foi lido até então.
func (s *FileStore) loadCategory(name string, fn func(file, line string)) {
	f, err := os.Open(filepath.Join(s.dir, name))
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("falha ao abrir a categoria",
				zap.String("arquivo", name), zap.Error(err))
		}
		return
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		fn(name, line)
	}
	if err := scanner.Err(); err != nil {
		s.logger.Warn("falha ao ler a categoria",
			zap.String("arquivo", name), zap.Error(err))
	}
}

func (l *fileLoad) malformed(file, line string) {
	l.logger.Warn("registro malformado ignorado",
		zap.String("arquivo", file), zap.String("linha", line))
}

func (l *fileLoad) userLine(file, line string) {
	fields := strings.Split(line, ";")
	if len(fields) < 4 {
		l.malformed(file, line)
		return
	}

	communities, ok := parseList(fields[len(fields)-1])
	if !ok {
		l.malformed(file, line)
		return
	}

	u := models.NewUser(fields[0], fields[1], fields[2])
	for _, attr := range fields[3 : len(fields)-1] {
		kv := strings.SplitN(attr, ":", 2)
		if len(kv) != 2 {
			// um atributo sem chave:valor invalida o registro inteiro
			l.malformed(file, line)
			return
		}
		u.Profile[kv[0]] = kv[1]
	}

	if _, exists := l.users[u.Login]; exists {
		l.malformed(file, line)
		return
	}

	l.users[u.Login] = u
	l.userOrder = append(l.userOrder, u.Login)
	l.pendingMemberships[u.Login] = communities
}

func (l *fileLoad) friendshipLine(file, line string) {
	fields := strings.Split(line, ";")
	if len(fields) != 2 {
		l.malformed(file, line)
		return
	}

	u, ok := l.users[fields[0]]
	if !ok {
		l.malformed(file, line)
		return
	}

	friends, ok := parseList(fields[1])
	if !ok {
		l.malformed(file, line)
		return
	}

	for _, friend := range friends {
		if _, known := l.users[friend]; known {
			u.Friends = append(u.Friends, friend)
		}
	}
}

func (l *fileLoad) directMessageLine(file, line string) {
	fields := strings.SplitN(line, ";", 3)
	if len(fields) != 3 {
		l.malformed(file, line)
		return
	}

	u, ok := l.users[fields[0]]
	if !ok {
		l.malformed(file, line)
		return
	}

	u.Inbox = append(u.Inbox, models.DirectMessage{
		From: fields[1],
		To:   u.Login,
		Body: fields[2],
	})
}

func (l *fileLoad) communityLine(file, line string) {
	fields := strings.Split(line, ";")
	if len(fields) != 4 {
		l.malformed(file, line)
		return
	}

	owner, ok := l.users[fields[0]]
	if !ok {
		l.malformed(file, line)
		return
	}

	members, ok := parseList(fields[3])
	if !ok {
		l.malformed(file, line)
		return
	}

	name := fields[1]
	if _, exists := l.communities[name]; exists {
		l.malformed(file, line)
		return
	}

	c := &models.Community{
		Name:        name,
		Description: fields[2],
		Owner:       owner.Login,
		Members:     members,
	}

	l.communities[name] = c
	l.communityOrder = append(l.communityOrder, name)
	owner.OwnedCommunities = append(owner.OwnedCommunities, name)
}

func (l *fileLoad) communityMessageLine(file, line string) {
	fields := strings.SplitN(line, ";", 2)
	if len(fields) != 2 {
		l.malformed(file, line)
		return
	}

	u, ok := l.users[fields[0]]
	if !ok {
		l.malformed(file, line)
		return
	}

	u.CommunityInbox = append(u.CommunityInbox, models.CommunityMessage{
		To:   u.Login,
		Body: fields[1],
	})
}

func (l *fileLoad) typedRelationshipLine(file, line string) {
	fields := strings.Split(line, ";")
	if len(fields) != 3 {
		l.malformed(file, line)
		return
	}

	u, ok := l.users[fields[0]]
	if !ok {
		l.malformed(file, line)
		return
	}
	target := fields[1]

	switch fields[2] {
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
		l.malformed(file, line)
	}
}

// resolveMemberships é o segundo passe: com todas as comunidades criadas,
// resolve a lista de participação declarada em cada registro de usuário
func (l *fileLoad) resolveMemberships() {
	for _, login := range l.userOrder {
		u := l.users[login]
		for _, name := range l.pendingMemberships[login] {
			if _, exists := l.communities[name]; exists {
				u.Communities = append(u.Communities, name)
			}
		}
	}
}

// parseList desfaz o formato {v1,v2,...}; "{}" vale como lista vazia
func parseList(s string) ([]string, bool) {
	if len(s) < 2 || s[0] != '{' || s[len(s)-1] != '}' {
		return nil, false
	}
	inner := s[1 : len(s)-1]
	if inner == "" {
		return nil, true
	}
	return strings.Split(inner, ","), true
}
