package service

import (
	"context"
	"sort"

	"jackut-backend/internal/models"
	"jackut-backend/internal/repository"

	"go.uber.org/zap"
)

// JackutService é o serviço de diretório do sistema: dono exclusivo das
// tabelas de usuários, sessões e comunidades. Toda operação valida antes
// de mutar, de forma que um erro nunca deixa efeito parcial.
type JackutService struct {
	store  repository.Store
	logger *zap.Logger

	users       map[string]*models.User
	sessions    map[string]string // id de sessão -> login
	communities map[string]*models.Community
}

// NewJackutService cria o serviço e carrega o estado persistido.
// Uma falha de carga é registrada e o serviço inicia vazio; ela não é
// fatal porque a persistência fica fora do caminho interativo.
func NewJackutService(ctx context.Context, store repository.Store, logger *zap.Logger) *JackutService {
	s := &JackutService{
		store:       store,
		logger:      logger,
		users:       make(map[string]*models.User),
		sessions:    make(map[string]string),
		communities: make(map[string]*models.Community),
	}

	snap, err := store.Load(ctx)
	if err != nil {
		logger.Warn("falha ao carregar dados persistidos, iniciando vazio", zap.Error(err))
		return s
	}

	for _, u := range snap.Users {
		s.users[u.Login] = u
	}
	for _, c := range snap.Communities {
		s.communities[c.Name] = c
	}

	return s
}

// getUser busca um usuário pelo login
func (s *JackutService) getUser(login string) (*models.User, error) {
	u, ok := s.users[login]
	if !ok {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// getSessionUser busca o usuário dono de uma sessão aberta
func (s *JackutService) getSessionUser(id string) (*models.User, error) {
	login, ok := s.sessions[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return s.getUser(login)
}

// getCommunity busca uma comunidade pelo nome
func (s *JackutService) getCommunity(name string) (*models.Community, error) {
	c, ok := s.communities[name]
	if !ok {
		return nil, ErrCommunityNotFound
	}
	return c, nil
}

// checkEnemy falha se qualquer um dos dois tiver o outro como inimigo.
// A verificação acontece antes de qualquer mutação.
func (s *JackutService) checkEnemy(user, other *models.User) error {
	if models.ContainsLogin(user.Enemies, other.Login) {
		return &EnemyError{Name: other.Name}
	}
	if models.ContainsLogin(other.Enemies, user.Login) {
		return &EnemyError{Name: user.Name}
	}
	return nil
}

// snapshot monta a foto completa do grafo, ordenada por login e por nome
// para que a saída persistida seja estável
func (s *JackutService) snapshot() *repository.Snapshot {
	snap := &repository.Snapshot{}

	for _, u := range s.users {
		snap.Users = append(snap.Users, u)
	}
	sort.Slice(snap.Users, func(i, j int) bool {
		return snap.Users[i].Login < snap.Users[j].Login
	})

	for _, c := range s.communities {
		snap.Communities = append(snap.Communities, c)
	}
	sort.Slice(snap.Communities, func(i, j int) bool {
		return snap.Communities[i].Name < snap.Communities[j].Name
	})

	return snap
}

// Shutdown grava o estado completo no store
func (s *JackutService) Shutdown(ctx context.Context) error {
	if err := s.store.Save(ctx, s.snapshot()); err != nil {
		s.logger.Error("falha ao persistir os dados", zap.Error(err))
		return err
	}
	return nil
}

// ResetSystem zera as tabelas em memória e trunca o armazenamento
func (s *JackutService) ResetSystem(ctx context.Context) error {
	s.users = make(map[string]*models.User)
	s.sessions = make(map[string]string)
	s.communities = make(map[string]*models.Community)

	if err := s.store.Clear(ctx); err != nil {
		s.logger.Error("falha ao limpar o armazenamento", zap.Error(err))
		return err
	}
	return nil
}

// RemoveUser remove o usuário da sessão e tudo que o referencia: relações
// e solicitações nos demais usuários, recados enviados por ele, as
// comunidades das quais é dono e a participação nas demais. As sessões do
// usuário são removidas por último.
func (s *JackutService) RemoveUser(id string) error {
	user, err := s.getSessionUser(id)
	if err != nil {
		return err
	}
	login := user.Login

	for _, other := range s.users {
		if other.Login == login {
			continue
		}

		other.Friends = models.RemoveLogin(other.Friends, login)
		other.SentRequests = models.RemoveLogin(other.SentRequests, login)
		other.ReceivedRequests = models.RemoveLogin(other.ReceivedRequests, login)
		other.Idols = models.RemoveLogin(other.Idols, login)
		other.Fans = models.RemoveLogin(other.Fans, login)
		other.Crushes = models.RemoveLogin(other.Crushes, login)
		other.ReceivedCrushes = models.RemoveLogin(other.ReceivedCrushes, login)
		other.Enemies = models.RemoveLogin(other.Enemies, login)

		inbox := other.Inbox[:0]
		for _, msg := range other.Inbox {
			if msg.From != login {
				inbox = append(inbox, msg)
			}
		}
		other.Inbox = inbox
	}

	for name, community := range s.communities {
		if community.Owner == login {
			for _, member := range community.Members {
				if u, ok := s.users[member]; ok {
					u.Communities = models.RemoveLogin(u.Communities, name)
					u.OwnedCommunities = models.RemoveLogin(u.OwnedCommunities, name)
				}
			}
			delete(s.communities, name)
			continue
		}
		community.Members = models.RemoveLogin(community.Members, login)
	}

	delete(s.users, login)
	for sessionID, sessionLogin := range s.sessions {
		if sessionLogin == login {
			delete(s.sessions, sessionID)
		}
	}

	return nil
}
