package service

import (
	"jackut-backend/internal/models"
)

// CreateCommunity cria uma comunidade tendo o usuário da sessão como dono
// e primeiro membro
func (s *JackutService) CreateCommunity(id, name, description string) error {
	user, err := s.getSessionUser(id)
	if err != nil {
		return err
	}

	if _, exists := s.communities[name]; exists {
		return ErrCommunityExists
	}

	s.communities[name] = models.NewCommunity(user.Login, name, description)
	user.OwnedCommunities = append(user.OwnedCommunities, name)
	user.Communities = append(user.Communities, name)

	return nil
}

// GetCommunityDescription devolve a descrição da comunidade
func (s *JackutService) GetCommunityDescription(name string) (string, error) {
	community, err := s.getCommunity(name)
	if err != nil {
		return "", err
	}
	return community.Description, nil
}

// GetCommunityOwner devolve o login do dono da comunidade
func (s *JackutService) GetCommunityOwner(name string) (string, error) {
	community, err := s.getCommunity(name)
	if err != nil {
		return "", err
	}
	return community.Owner, nil
}

// GetCommunityMembers devolve os membros da comunidade no formato {a,b,...},
// na ordem em que entraram
func (s *JackutService) GetCommunityMembers(name string) (string, error) {
	community, err := s.getCommunity(name)
	if err != nil {
		return "", err
	}
	return models.FormatList(community.Members), nil
}

// GetCommunities devolve as comunidades das quais o usuário participa,
// na ordem em que entrou
func (s *JackutService) GetCommunities(login string) (string, error) {
	user, err := s.getUser(login)
	if err != nil {
		return "", err
	}
	return models.FormatList(user.Communities), nil
}

// JoinCommunity adiciona o usuário da sessão à comunidade
func (s *JackutService) JoinCommunity(id, name string) error {
	user, err := s.getSessionUser(id)
	if err != nil {
		return err
	}
	community, err := s.getCommunity(name)
	if err != nil {
		return err
	}

	if models.ContainsLogin(user.Communities, name) {
		return ErrAlreadyMember
	}

	community.Members = append(community.Members, user.Login)
	user.Communities = append(user.Communities, name)

	return nil
}

// SendCommunityMessage envia uma mensagem para todos os membros atuais da
// comunidade, na ordem de entrada de cada um
func (s *JackutService) SendCommunityMessage(id, name, body string) error {
	if _, err := s.getSessionUser(id); err != nil {
		return err
	}
	community, err := s.getCommunity(name)
	if err != nil {
		return err
	}

	for _, member := range community.Members {
		if u, ok := s.users[member]; ok {
			u.CommunityInbox = append(u.CommunityInbox, models.CommunityMessage{
				To:   u.Login,
				Body: body,
			})
		}
	}

	return nil
}

// ReadCommunityMessage lê e remove a mensagem de comunidade mais antiga do
// usuário da sessão
func (s *JackutService) ReadCommunityMessage(id string) (string, error) {
	user, err := s.getSessionUser(id)
	if err != nil {
		return "", err
	}

	if len(user.CommunityInbox) == 0 {
		return "", ErrNoCommunityMessages
	}

	msg := user.CommunityInbox[0]
	user.CommunityInbox = user.CommunityInbox[1:]

	return msg.Body, nil
}
