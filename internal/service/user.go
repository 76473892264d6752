package service

import (
	"github.com/google/uuid"

	"jackut-backend/internal/models"
)

// CreateUser cadastra um novo usuário no sistema
func (s *JackutService) CreateUser(login, password, name string) error {
	if login == "" {
		return ErrInvalidLogin
	}
	if password == "" {
		return ErrInvalidPassword
	}
	if _, exists := s.users[login]; exists {
		return ErrAccountExists
	}

	s.users[login] = models.NewUser(login, password, name)
	return nil
}

// OpenSession autentica o usuário e abre uma sessão, devolvendo o seu id.
// Login desconhecido e senha incorreta respondem com o mesmo erro genérico,
// para não revelar qual das verificações falhou.
func (s *JackutService) OpenSession(login, password string) (string, error) {
	user, ok := s.users[login]
	if !ok {
		return "", ErrInvalidCredentials
	}
	if user.Password != password {
		return "", ErrInvalidCredentials
	}

	id := uuid.New().String()
	s.sessions[id] = login

	return id, nil
}

// GetUserAttribute devolve um atributo do usuário. "nome" é o nome de
// exibição; qualquer outra chave é procurada no perfil.
func (s *JackutService) GetUserAttribute(login, attribute string) (string, error) {
	user, err := s.getUser(login)
	if err != nil {
		return "", err
	}

	if attribute == "nome" {
		return user.Name, nil
	}

	value, ok := user.Profile[attribute]
	if !ok {
		return "", ErrAttributeNotSet
	}
	return value, nil
}

// EditProfile cria ou substitui um atributo do perfil do usuário da sessão.
// As chaves "login" e "nome" são reservadas: a primeira troca o login,
// reindexando a tabela de usuários, e a segunda troca o nome de exibição.
func (s *JackutService) EditProfile(id, attribute, value string) error {
	user, err := s.getSessionUser(id)
	if err != nil {
		return err
	}

	switch attribute {
	case "login":
		return s.renameUser(user, value)
	case "nome":
		user.Name = value
	default:
		user.Profile[attribute] = value
	}
	return nil
}

// renameUser troca o login do usuário, reindexando a tabela de usuários e
// reescrevendo todas as referências ao login antigo
func (s *JackutService) renameUser(user *models.User, newLogin string) error {
	if newLogin == "" {
		return ErrInvalidLogin
	}
	if newLogin == user.Login {
		return nil
	}
	if _, exists := s.users[newLogin]; exists {
		return ErrInvalidLogin
	}

	oldLogin := user.Login

	rename := func(list []string) {
		for i, v := range list {
			if v == oldLogin {
				list[i] = newLogin
			}
		}
	}

	for _, other := range s.users {
		rename(other.Friends)
		rename(other.SentRequests)
		rename(other.ReceivedRequests)
		rename(other.Idols)
		rename(other.Fans)
		rename(other.Crushes)
		rename(other.ReceivedCrushes)
		rename(other.Enemies)

		for i := range other.Inbox {
			if other.Inbox[i].From == oldLogin {
				other.Inbox[i].From = newLogin
			}
		}
	}

	for _, community := range s.communities {
		if community.Owner == oldLogin {
			community.Owner = newLogin
		}
		rename(community.Members)
	}

	for i := range user.Inbox {
		user.Inbox[i].To = newLogin
	}
	for i := range user.CommunityInbox {
		user.CommunityInbox[i].To = newLogin
	}

	for sessionID, login := range s.sessions {
		if login == oldLogin {
			s.sessions[sessionID] = newLogin
		}
	}

	delete(s.users, oldLogin)
	user.Login = newLogin
	s.users[newLogin] = user

	return nil
}
