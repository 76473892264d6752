package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendAndReadMessageFIFO(t *testing.T) {
	s := newService(t)

	jose := register(t, s, "jose", "José")
	maria := register(t, s, "maria", "Maria")

	require.NoError(t, s.SendMessage(jose, "maria", "m1"))
	require.NoError(t, s.SendMessage(jose, "maria", "m2"))

	msg, err := s.ReadMessage(maria)
	require.NoError(t, err)
	assert.Equal(t, "m1", msg)

	msg, err = s.ReadMessage(maria)
	require.NoError(t, err)
	assert.Equal(t, "m2", msg)

	// a leitura é destrutiva: a terceira falha
	_, err = s.ReadMessage(maria)
	assert.ErrorIs(t, err, ErrNoMessages)
}

func TestSendMessageErrors(t *testing.T) {
	s := newService(t)

	jose := register(t, s, "jose", "José")

	assert.ErrorIs(t, s.SendMessage("sessao-invalida", "jose", "oi"), ErrUserNotFound)
	assert.ErrorIs(t, s.SendMessage(jose, "desconhecido", "oi"), ErrUserNotFound)
	assert.ErrorIs(t, s.SendMessage(jose, "jose", "oi"), ErrSelfMessage)
}
