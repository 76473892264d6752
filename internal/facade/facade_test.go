package facade

import (
	"context"
	"testing"

	"jackut-backend/internal/repository"
	"jackut-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newFacade(t *testing.T) *Facade {
	t.Helper()
	svc := service.NewJackutService(context.Background(), repository.NewInMemoryStore(), zap.NewNop())
	return New(svc)
}

func TestCreateUserValidatesInput(t *testing.T) {
	f := newFacade(t)

	assert.ErrorIs(t, f.CreateUser("", "segredo", "José"), service.ErrInvalidLogin)
	assert.ErrorIs(t, f.CreateUser("jose", "", "José"), service.ErrInvalidPassword)
	require.NoError(t, f.CreateUser("jose", "segredo", "José"))
}

// Sessão ou alvo vazios são barrados já na fachada, com o mesmo erro que o
// serviço devolveria ao procurá-los
func TestFacadeRejectsEmptySessionAndTarget(t *testing.T) {
	f := newFacade(t)

	require.NoError(t, f.CreateUser("jose", "segredo", "José"))
	jose, err := f.OpenSession("jose", "segredo")
	require.NoError(t, err)

	assert.ErrorIs(t, f.AddFriend("", "jose"), service.ErrUserNotFound)
	assert.ErrorIs(t, f.AddFriend(jose, ""), service.ErrUserNotFound)
	assert.ErrorIs(t, f.SendMessage(jose, "", "oi"), service.ErrUserNotFound)
	assert.ErrorIs(t, f.AddEnemy("", "jose"), service.ErrUserNotFound)

	_, err = f.ReadMessage("")
	assert.ErrorIs(t, err, service.ErrUserNotFound)

	assert.ErrorIs(t, f.JoinCommunity("", "UFAL"), service.ErrUserNotFound)
	assert.ErrorIs(t, f.RemoveUser(""), service.ErrUserNotFound)

	// a sessão aberta segue funcionando depois das rejeições
	require.NoError(t, f.EditProfile(jose, "cidade", "Maceió"))
}

// Os erros do serviço atravessam a fachada sem embrulho
func TestFacadePassesServiceErrorsThrough(t *testing.T) {
	f := newFacade(t)

	require.NoError(t, f.CreateUser("jose", "segredo", "José"))
	assert.ErrorIs(t, f.CreateUser("jose", "outra", "Outro"), service.ErrAccountExists)

	_, err := f.OpenSession("jose", "errada")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	_, err = f.GetUserAttribute("desconhecido", "nome")
	assert.ErrorIs(t, err, service.ErrUserNotFound)
}

func TestFacadeEndToEndFlow(t *testing.T) {
	f := newFacade(t)
	ctx := context.Background()

	require.NoError(t, f.CreateUser("jose", "segredo", "José"))
	require.NoError(t, f.CreateUser("maria", "outra", "Maria"))

	jose, err := f.OpenSession("jose", "segredo")
	require.NoError(t, err)
	maria, err := f.OpenSession("maria", "outra")
	require.NoError(t, err)

	require.NoError(t, f.AddFriend(jose, "maria"))
	require.NoError(t, f.AddFriend(maria, "jose"))

	ehAmigo, err := f.IsFriend("jose", "maria")
	require.NoError(t, err)
	assert.True(t, ehAmigo)

	require.NoError(t, f.SendMessage(jose, "maria", "oi"))
	msg, err := f.ReadMessage(maria)
	require.NoError(t, err)
	assert.Equal(t, "oi", msg)

	require.NoError(t, f.CreateCommunity(jose, "UFAL", "universidade"))
	require.NoError(t, f.JoinCommunity(maria, "UFAL"))
	require.NoError(t, f.SendCommunityMessage(jose, "UFAL", "aviso"))

	broadcast, err := f.ReadCommunityMessage(maria)
	require.NoError(t, err)
	assert.Equal(t, "aviso", broadcast)

	require.NoError(t, f.Shutdown(ctx))
	require.NoError(t, f.ResetSystem(ctx))

	_, err = f.GetUserAttribute("jose", "nome")
	assert.ErrorIs(t, err, service.ErrUserNotFound)
}
