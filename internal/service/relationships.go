package service

import (
	"fmt"

	"jackut-backend/internal/models"
)

// AddFriend pede amizade ao usuário de destino ou, se já houver um pedido
// no sentido contrário, consolida a amizade dos dois lados e limpa as
// solicitações pendentes.
func (s *JackutService) AddFriend(id, friendLogin string) error {
	user, err := s.getSessionUser(id)
	if err != nil {
		return err
	}
	friend, err := s.getUser(friendLogin)
	if err != nil {
		return err
	}

	if user.Login == friend.Login {
		return &SelfRelationError{Relation: "amigo"}
	}
	if models.ContainsLogin(user.Friends, friend.Login) || models.ContainsLogin(friend.Friends, user.Login) {
		return &AlreadyRelatedError{Relation: "amigo"}
	}
	if err := s.checkEnemy(user, friend); err != nil {
		return err
	}

	switch {
	case models.ContainsLogin(user.SentRequests, friend.Login):
		return ErrDuplicateFriendRequest

	case models.ContainsLogin(user.ReceivedRequests, friend.Login):
		// O destino já havia pedido: a amizade vira mútua
		user.Friends = append(user.Friends, friend.Login)
		friend.Friends = append(friend.Friends, user.Login)
		user.ReceivedRequests = models.RemoveLogin(user.ReceivedRequests, friend.Login)
		friend.SentRequests = models.RemoveLogin(friend.SentRequests, user.Login)

	default:
		user.SentRequests = append(user.SentRequests, friend.Login)
		friend.ReceivedRequests = append(friend.ReceivedRequests, user.Login)
	}

	return nil
}

// IsFriend informa se os dois usuários já são amigos
func (s *JackutService) IsFriend(login, friendLogin string) (bool, error) {
	user, err := s.getUser(login)
	if err != nil {
		return false, err
	}
	return models.ContainsLogin(user.Friends, friendLogin), nil
}

// GetFriends devolve os amigos do usuário no formato {a,b,...}
func (s *JackutService) GetFriends(login string) (string, error) {
	user, err := s.getUser(login)
	if err != nil {
		return "", err
	}
	return models.FormatList(user.Friends), nil
}

// AddIdol adiciona o usuário da sessão como fã do ídolo informado.
// A relação é assimétrica e não tem etapa de aprovação.
func (s *JackutService) AddIdol(id, idolLogin string) error {
	user, err := s.getSessionUser(id)
	if err != nil {
		return err
	}
	idol, err := s.getUser(idolLogin)
	if err != nil {
		return err
	}

	if user.Login == idol.Login {
		return &SelfRelationError{Relation: "fã"}
	}
	if models.ContainsLogin(user.Idols, idol.Login) {
		return &AlreadyRelatedError{Relation: "ídolo"}
	}
	if err := s.checkEnemy(user, idol); err != nil {
		return err
	}

	user.Idols = append(user.Idols, idol.Login)
	idol.Fans = append(idol.Fans, user.Login)

	return nil
}

// IsFan informa se o usuário é fã do ídolo informado
func (s *JackutService) IsFan(login, idolLogin string) (bool, error) {
	user, err := s.getUser(login)
	if err != nil {
		return false, err
	}
	return models.ContainsLogin(user.Idols, idolLogin), nil
}

// GetFans devolve os fãs do usuário no formato {a,b,...}
func (s *JackutService) GetFans(login string) (string, error) {
	user, err := s.getUser(login)
	if err != nil {
		return "", err
	}
	return models.FormatList(user.Fans), nil
}

// AddCrush registra uma paquera. Quando a paquera se torna mútua, os dois
// usuários recebem um recado gerado pelo sistema anunciando o par, entregue
// pela caixa de recados comum.
func (s *JackutService) AddCrush(id, crushLogin string) error {
	user, err := s.getSessionUser(id)
	if err != nil {
		return err
	}
	crush, err := s.getUser(crushLogin)
	if err != nil {
		return err
	}

	if user.Login == crush.Login {
		return &SelfRelationError{Relation: "paquera"}
	}
	if models.ContainsLogin(user.Crushes, crush.Login) {
		return &AlreadyRelatedError{Relation: "paquera"}
	}
	if err := s.checkEnemy(user, crush); err != nil {
		return err
	}

	if models.ContainsLogin(user.ReceivedCrushes, crush.Login) {
		user.Inbox = append(user.Inbox, models.DirectMessage{
			From: crush.Login,
			To:   user.Login,
			Body: fmt.Sprintf("%s é seu paquera - Recado do Jackut.", crush.Name),
		})
		crush.Inbox = append(crush.Inbox, models.DirectMessage{
			From: user.Login,
			To:   crush.Login,
			Body: fmt.Sprintf("%s é seu paquera - Recado do Jackut.", user.Name),
		})
	}

	user.Crushes = append(user.Crushes, crush.Login)
	crush.ReceivedCrushes = append(crush.ReceivedCrushes, user.Login)

	return nil
}

// IsCrush informa se o usuário da sessão tem o outro como paquera
func (s *JackutService) IsCrush(id, crushLogin string) (bool, error) {
	user, err := s.getSessionUser(id)
	if err != nil {
		return false, err
	}
	return models.ContainsLogin(user.Crushes, crushLogin), nil
}

// GetCrushes devolve as paqueras do usuário da sessão no formato {a,b,...}
func (s *JackutService) GetCrushes(id string) (string, error) {
	user, err := s.getSessionUser(id)
	if err != nil {
		return "", err
	}
	return models.FormatList(user.Crushes), nil
}

// AddEnemy registra uma inimizade simétrica. Não há verificação de inimigo
// aqui: declarar a inimizade é a própria operação.
func (s *JackutService) AddEnemy(id, enemyLogin string) error {
	user, err := s.getSessionUser(id)
	if err != nil {
		return err
	}
	enemy, err := s.getUser(enemyLogin)
	if err != nil {
		return err
	}

	if user.Login == enemy.Login {
		return &SelfRelationError{Relation: "inimigo"}
	}
	if models.ContainsLogin(user.Enemies, enemy.Login) {
		return &AlreadyRelatedError{Relation: "inimigo"}
	}

	user.Enemies = append(user.Enemies, enemy.Login)
	enemy.Enemies = append(enemy.Enemies, user.Login)

	return nil
}
