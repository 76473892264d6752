package service

import (
	"jackut-backend/internal/models"
)

// SendMessage envia um recado do usuário da sessão para o destinatário
func (s *JackutService) SendMessage(id, recipientLogin, body string) error {
	user, err := s.getSessionUser(id)
	if err != nil {
		return err
	}
	recipient, err := s.getUser(recipientLogin)
	if err != nil {
		return err
	}

	if user.Login == recipient.Login {
		return ErrSelfMessage
	}
	if err := s.checkEnemy(user, recipient); err != nil {
		return err
	}

	recipient.Inbox = append(recipient.Inbox, models.DirectMessage{
		From: user.Login,
		To:   recipient.Login,
		Body: body,
	})

	return nil
}

// ReadMessage lê e remove o recado mais antigo do usuário da sessão
func (s *JackutService) ReadMessage(id string) (string, error) {
	user, err := s.getSessionUser(id)
	if err != nil {
		return "", err
	}

	if len(user.Inbox) == 0 {
		return "", ErrNoMessages
	}

	msg := user.Inbox[0]
	user.Inbox = user.Inbox[1:]

	return msg.Body, nil
}
