package service

import (
	"context"
	"testing"

	"jackut-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newService(t *testing.T) *JackutService {
	t.Helper()
	return NewJackutService(context.Background(), repository.NewInMemoryStore(), zap.NewNop())
}

func newServiceWithStore(t *testing.T, store repository.Store) *JackutService {
	t.Helper()
	return NewJackutService(context.Background(), store, zap.NewNop())
}

// register cria um usuário e abre uma sessão para ele
func register(t *testing.T, s *JackutService, login, name string) string {
	t.Helper()
	require.NoError(t, s.CreateUser(login, "senha", name))
	id, err := s.OpenSession(login, "senha")
	require.NoError(t, err)
	return id
}

func TestRemoveUserCascades(t *testing.T) {
	store := repository.NewInMemoryStore()
	s := newServiceWithStore(t, store)
	ctx := context.Background()

	jose := register(t, s, "jose", "José")
	maria := register(t, s, "maria", "Maria")
	paulo := register(t, s, "paulo", "Paulo")

	// amizade jose<->maria, relações variadas com paulo
	require.NoError(t, s.AddFriend(jose, "maria"))
	require.NoError(t, s.AddFriend(maria, "jose"))
	require.NoError(t, s.AddIdol(paulo, "jose"))
	require.NoError(t, s.AddCrush(paulo, "jose"))
	require.NoError(t, s.AddFriend(jose, "paulo"))
	require.NoError(t, s.SendMessage(jose, "paulo", "oi paulo"))

	// comunidade do jose com maria dentro
	require.NoError(t, s.CreateCommunity(jose, "UFAL", "universidade"))
	require.NoError(t, s.JoinCommunity(maria, "UFAL"))

	// comunidade da maria com jose dentro
	require.NoError(t, s.CreateCommunity(maria, "Praia", "fim de semana"))
	require.NoError(t, s.JoinCommunity(jose, "Praia"))

	require.NoError(t, s.RemoveUser(jose))

	// jose sumiu por completo
	_, err := s.GetUserAttribute("jose", "nome")
	assert.ErrorIs(t, err, ErrUserNotFound)

	friends, err := s.GetFriends("maria")
	require.NoError(t, err)
	assert.Equal(t, "{}", friends)

	fans, err := s.GetFans("maria")
	require.NoError(t, err)
	assert.Equal(t, "{}", fans)

	idols := s.users["paulo"].Idols
	assert.NotContains(t, idols, "jose")
	assert.NotContains(t, s.users["paulo"].Crushes, "jose")
	assert.NotContains(t, s.users["paulo"].ReceivedRequests, "jose")

	// recado enviado pelo jose some da caixa do paulo
	_, err = s.ReadMessage(paulo)
	assert.ErrorIs(t, err, ErrNoMessages)

	// a comunidade do jose é apagada e a participação da maria junto
	_, err = s.GetCommunityOwner("UFAL")
	assert.ErrorIs(t, err, ErrCommunityNotFound)

	comunidades, err := s.GetCommunities("maria")
	require.NoError(t, err)
	assert.Equal(t, "{Praia}", comunidades)

	// a comunidade da maria continua, sem o jose
	members, err := s.GetCommunityMembers("Praia")
	require.NoError(t, err)
	assert.Equal(t, "{maria}", members)

	// a sessão do jose também foi encerrada
	assert.ErrorIs(t, s.EditProfile(jose, "cidade", "Maceió"), ErrUserNotFound)

	// o cascateamento sobrevive a um ciclo de gravação e recarga
	require.NoError(t, s.Shutdown(ctx))
	reloaded := newServiceWithStore(t, store)

	_, err = reloaded.GetUserAttribute("jose", "nome")
	assert.ErrorIs(t, err, ErrUserNotFound)

	members, err = reloaded.GetCommunityMembers("Praia")
	require.NoError(t, err)
	assert.Equal(t, "{maria}", members)
}

func TestResetSystemClearsEverything(t *testing.T) {
	store := repository.NewInMemoryStore()
	s := newServiceWithStore(t, store)
	ctx := context.Background()

	id := register(t, s, "jose", "José")
	require.NoError(t, s.CreateCommunity(id, "UFAL", "universidade"))
	require.NoError(t, s.Shutdown(ctx))

	require.NoError(t, s.ResetSystem(ctx))

	_, err := s.GetUserAttribute("jose", "nome")
	assert.ErrorIs(t, err, ErrUserNotFound)
	_, err = s.OpenSession("jose", "senha")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// o armazenamento também foi truncado
	reloaded := newServiceWithStore(t, store)
	_, err = reloaded.GetUserAttribute("jose", "nome")
	assert.ErrorIs(t, err, ErrUserNotFound)
	_, err = reloaded.GetCommunityOwner("UFAL")
	assert.ErrorIs(t, err, ErrCommunityNotFound)
}

func TestShutdownRoundTripReproducesGraph(t *testing.T) {
	store := repository.NewInMemoryStore()
	s := newServiceWithStore(t, store)
	ctx := context.Background()

	jose := register(t, s, "jose", "José")
	maria := register(t, s, "maria", "Maria")
	register(t, s, "paulo", "Paulo")

	require.NoError(t, s.EditProfile(jose, "cidade", "Maceió"))
	require.NoError(t, s.AddFriend(jose, "maria"))
	require.NoError(t, s.AddFriend(maria, "jose"))
	require.NoError(t, s.AddIdol(jose, "paulo"))
	require.NoError(t, s.AddEnemy(maria, "paulo"))
	require.NoError(t, s.SendMessage(jose, "maria", "primeiro"))
	require.NoError(t, s.SendMessage(jose, "maria", "segundo"))
	require.NoError(t, s.CreateCommunity(jose, "UFAL", "universidade"))
	require.NoError(t, s.JoinCommunity(maria, "UFAL"))
	require.NoError(t, s.SendCommunityMessage(jose, "UFAL", "aviso"))

	require.NoError(t, s.Shutdown(ctx))

	reloaded := newServiceWithStore(t, store)

	cidade, err := reloaded.GetUserAttribute("jose", "cidade")
	require.NoError(t, err)
	assert.Equal(t, "Maceió", cidade)

	ehAmigo, err := reloaded.IsFriend("jose", "maria")
	require.NoError(t, err)
	assert.True(t, ehAmigo)

	ehFa, err := reloaded.IsFan("jose", "paulo")
	require.NoError(t, err)
	assert.True(t, ehFa)

	assert.Contains(t, reloaded.users["maria"].Enemies, "paulo")
	assert.Contains(t, reloaded.users["paulo"].Enemies, "maria")

	owner, err := reloaded.GetCommunityOwner("UFAL")
	require.NoError(t, err)
	assert.Equal(t, "jose", owner)

	members, err := reloaded.GetCommunityMembers("UFAL")
	require.NoError(t, err)
	assert.Equal(t, "{jose,maria}", members)

	// caixas de entrada preservadas em ordem
	mariaID, err := reloaded.OpenSession("maria", "senha")
	require.NoError(t, err)

	msg, err := reloaded.ReadMessage(mariaID)
	require.NoError(t, err)
	assert.Equal(t, "primeiro", msg)
	msg, err = reloaded.ReadMessage(mariaID)
	require.NoError(t, err)
	assert.Equal(t, "segundo", msg)

	broadcast, err := reloaded.ReadCommunityMessage(mariaID)
	require.NoError(t, err)
	assert.Equal(t, "aviso", broadcast)
}
