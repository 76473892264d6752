package service

import (
	"errors"
	"fmt"
)

// Erros de domínio do sistema. As mensagens são o contrato visível
// pela fachada e são repassadas 1:1 ao chamador, sem embrulhar.
var (
	ErrInvalidLogin       = errors.New("Login inválido.")
	ErrInvalidPassword    = errors.New("Senha inválida.")
	ErrInvalidCredentials = errors.New("Login ou senha inválidos.")
	ErrAccountExists      = errors.New("Conta com esse nome já existe.")
	ErrUserNotFound       = errors.New("Usuário não cadastrado.")
	ErrAttributeNotSet    = errors.New("Atributo não preenchido.")

	ErrDuplicateFriendRequest = errors.New("Usuário já está adicionado como amigo, esperando aceitação do convite.")

	ErrSelfMessage = errors.New("Usuário não pode enviar recado para si mesmo.")
	ErrNoMessages  = errors.New("Não há recados.")

	ErrCommunityExists     = errors.New("Comunidade com esse nome já existe.")
	ErrCommunityNotFound   = errors.New("Comunidade não existe.")
	ErrAlreadyMember       = errors.New("Usuario já faz parte dessa comunidade.")
	ErrNoCommunityMessages = errors.New("Não há mensagens.")
)

// SelfRelationError indica uma tentativa de criar uma relação consigo mesmo.
// A mensagem varia conforme o tipo de relação.
type SelfRelationError struct {
	Relation string
}

func (e *SelfRelationError) Error() string {
	if e.Relation == "amigo" {
		return "Usuário não pode adicionar a si mesmo como amigo."
	}
	return fmt.Sprintf("Usuário não pode ser %s de si mesmo.", e.Relation)
}

// AlreadyRelatedError indica que a relação pedida já existe entre os dois usuários
type AlreadyRelatedError struct {
	Relation string
}

func (e *AlreadyRelatedError) Error() string {
	return fmt.Sprintf("Usuário já está adicionado como %s.", e.Relation)
}

// EnemyError bloqueia qualquer operação de relação ou de recado entre inimigos
type EnemyError struct {
	Name string
}

func (e *EnemyError) Error() string {
	return fmt.Sprintf("Função inválida: %s é seu inimigo.", e.Name)
}
