package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCommunity(t *testing.T) {
	s := newService(t)

	jose := register(t, s, "jose", "José")

	require.NoError(t, s.CreateCommunity(jose, "UFAL", "universidade"))
	assert.ErrorIs(t, s.CreateCommunity(jose, "UFAL", "outra"), ErrCommunityExists)

	descricao, err := s.GetCommunityDescription("UFAL")
	require.NoError(t, err)
	assert.Equal(t, "universidade", descricao)

	dono, err := s.GetCommunityOwner("UFAL")
	require.NoError(t, err)
	assert.Equal(t, "jose", dono)

	// o dono já entra como membro
	membros, err := s.GetCommunityMembers("UFAL")
	require.NoError(t, err)
	assert.Equal(t, "{jose}", membros)

	comunidades, err := s.GetCommunities("jose")
	require.NoError(t, err)
	assert.Equal(t, "{UFAL}", comunidades)

	_, err = s.GetCommunityDescription("inexistente")
	assert.ErrorIs(t, err, ErrCommunityNotFound)
}

func TestJoinCommunity(t *testing.T) {
	s := newService(t)

	jose := register(t, s, "jose", "José")
	maria := register(t, s, "maria", "Maria")

	require.NoError(t, s.CreateCommunity(jose, "UFAL", "universidade"))

	assert.ErrorIs(t, s.JoinCommunity(maria, "inexistente"), ErrCommunityNotFound)

	require.NoError(t, s.JoinCommunity(maria, "UFAL"))
	assert.ErrorIs(t, s.JoinCommunity(maria, "UFAL"), ErrAlreadyMember)
	assert.ErrorIs(t, s.JoinCommunity(jose, "UFAL"), ErrAlreadyMember)

	// ordem de entrada preservada na listagem
	membros, err := s.GetCommunityMembers("UFAL")
	require.NoError(t, err)
	assert.Equal(t, "{jose,maria}", membros)
}

func TestCommunityBroadcast(t *testing.T) {
	s := newService(t)

	jose := register(t, s, "jose", "José")
	maria := register(t, s, "maria", "Maria")
	paulo := register(t, s, "paulo", "Paulo")

	require.NoError(t, s.CreateCommunity(jose, "UFAL", "universidade"))
	require.NoError(t, s.JoinCommunity(maria, "UFAL"))
	require.NoError(t, s.JoinCommunity(paulo, "UFAL"))

	require.NoError(t, s.SendCommunityMessage(maria, "UFAL", "oi"))

	// todos os membros recebem, inclusive quem enviou
	for _, id := range []string{jose, maria, paulo} {
		msg, err := s.ReadCommunityMessage(id)
		require.NoError(t, err)
		assert.Equal(t, "oi", msg)
	}
}

func TestCommunityMessageFIFOPerMember(t *testing.T) {
	s := newService(t)

	jose := register(t, s, "jose", "José")
	maria := register(t, s, "maria", "Maria")

	require.NoError(t, s.CreateCommunity(jose, "UFAL", "universidade"))
	require.NoError(t, s.JoinCommunity(maria, "UFAL"))

	require.NoError(t, s.SendCommunityMessage(jose, "UFAL", "primeira"))
	require.NoError(t, s.SendCommunityMessage(jose, "UFAL", "segunda"))

	msg, err := s.ReadCommunityMessage(maria)
	require.NoError(t, err)
	assert.Equal(t, "primeira", msg)

	msg, err = s.ReadCommunityMessage(maria)
	require.NoError(t, err)
	assert.Equal(t, "segunda", msg)

	_, err = s.ReadCommunityMessage(maria)
	assert.ErrorIs(t, err, ErrNoCommunityMessages)
}

func TestSendCommunityMessageErrors(t *testing.T) {
	s := newService(t)

	jose := register(t, s, "jose", "José")

	assert.ErrorIs(t, s.SendCommunityMessage("sessao-invalida", "UFAL", "oi"), ErrUserNotFound)
	assert.ErrorIs(t, s.SendCommunityMessage(jose, "inexistente", "oi"), ErrCommunityNotFound)
}

// Quem entra na comunidade depois do envio não recebe a mensagem antiga
func TestBroadcastOnlyReachesCurrentMembers(t *testing.T) {
	s := newService(t)

	jose := register(t, s, "jose", "José")
	maria := register(t, s, "maria", "Maria")

	require.NoError(t, s.CreateCommunity(jose, "UFAL", "universidade"))
	require.NoError(t, s.SendCommunityMessage(jose, "UFAL", "antes"))
	require.NoError(t, s.JoinCommunity(maria, "UFAL"))

	_, err := s.ReadCommunityMessage(maria)
	assert.ErrorIs(t, err, ErrNoCommunityMessages)

	msg, err := s.ReadCommunityMessage(jose)
	require.NoError(t, err)
	assert.Equal(t, "antes", msg)
}
