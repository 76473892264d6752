package repository

import (
	"context"
	"sync"

	"jackut-backend/internal/models"
)

// InMemoryStore é uma implementação em-memória da interface Store, usada
// nos testes e pelo driver "memoria". Guarda uma cópia profunda do
// snapshot para que o estado vivo do serviço não compartilhe memória com
// o estado "persistido".
type InMemoryStore struct {
	mu   sync.RWMutex
	snap *Snapshot
}

// NewInMemoryStore cria uma nova instância do store em memória
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{snap: &Snapshot{}}
}

func (s *InMemoryStore) Load(ctx context.Context) (*Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneSnapshot(s.snap), nil
}

func (s *InMemoryStore) Save(ctx context.Context, snap *Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snap = cloneSnapshot(snap)
	return nil
}

func (s *InMemoryStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snap = &Snapshot{}
	return nil
}

func cloneSnapshot(snap *Snapshot) *Snapshot {
	out := &Snapshot{}
	for _, u := range snap.Users {
		out.Users = append(out.Users, cloneUser(u))
	}
	for _, c := range snap.Communities {
		clone := *c
		clone.Members = cloneList(c.Members)
		out.Communities = append(out.Communities, &clone)
	}
	return out
}

func cloneUser(u *models.User) *models.User {
	clone := *u

	clone.Profile = make(map[string]string, len(u.Profile))
	for k, v := range u.Profile {
		clone.Profile[k] = v
	}

	clone.Friends = cloneList(u.Friends)
	clone.SentRequests = cloneList(u.SentRequests)
	clone.ReceivedRequests = cloneList(u.ReceivedRequests)
	clone.Idols = cloneList(u.Idols)
	clone.Fans = cloneList(u.Fans)
	clone.Crushes = cloneList(u.Crushes)
	clone.ReceivedCrushes = cloneList(u.ReceivedCrushes)
	clone.Enemies = cloneList(u.Enemies)
	clone.OwnedCommunities = cloneList(u.OwnedCommunities)
	clone.Communities = cloneList(u.Communities)

	clone.Inbox = append([]models.DirectMessage(nil), u.Inbox...)
	clone.CommunityInbox = append([]models.CommunityMessage(nil), u.CommunityInbox...)

	return &clone
}

func cloneList(list []string) []string {
	if list == nil {
		return nil
	}
	return append([]string(nil), list...)
}
