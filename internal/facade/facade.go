package facade

import (
	"context"
	"errors"

	"jackut-backend/internal/service"

	"github.com/go-playground/validator/v10"
)

// Facade é a superfície de comandos do sistema: um método por operação do
// serviço, recebendo e devolvendo apenas valores primitivos. Os erros do
// serviço são repassados 1:1, sem embrulhar nem engolir; a fachada só
// acrescenta a validação de entrada.
type Facade struct {
	service  *service.JackutService
	validate *validator.Validate
}

// New cria uma nova fachada sobre o serviço
func New(svc *service.JackutService) *Facade {
	return &Facade{
		service:  svc,
		validate: validator.New(),
	}
}

type createUserRequest struct {
	Login    string `validate:"required"`
	Password string `validate:"required"`
}

// sessionRequest cobre as operações que só exigem uma sessão aberta
type sessionRequest struct {
	ID string `validate:"required"`
}

// relationRequest cobre as operações sessão + login alvo
type relationRequest struct {
	ID     string `validate:"required"`
	Target string `validate:"required"`
}

// checkSession valida os campos obrigatórios de uma requisição de sessão.
// Sessão ou alvo vazios equivalem a um usuário que não existe, o mesmo erro
// que o serviço devolveria ao procurá-los.
func (f *Facade) checkSession(req any) error {
	if err := f.validate.Struct(req); err != nil {
		var fieldErrors validator.ValidationErrors
		if errors.As(err, &fieldErrors) {
			return service.ErrUserNotFound
		}
		return err
	}
	return nil
}

// CreateUser cadastra um usuário, exigindo login e senha não vazios
func (f *Facade) CreateUser(login, password, name string) error {
	req := createUserRequest{Login: login, Password: password}
	if err := f.validate.Struct(req); err != nil {
		var fieldErrors validator.ValidationErrors
		if errors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
			if fieldErrors[0].Field() == "Login" {
				return service.ErrInvalidLogin
			}
			return service.ErrInvalidPassword
		}
		return err
	}

	return f.service.CreateUser(login, password, name)
}

// OpenSession autentica o usuário e devolve o id da sessão aberta
func (f *Facade) OpenSession(login, password string) (string, error) {
	return f.service.OpenSession(login, password)
}

// GetUserAttribute devolve um atributo do usuário ("nome" ou chave de perfil)
func (f *Facade) GetUserAttribute(login, attribute string) (string, error) {
	return f.service.GetUserAttribute(login, attribute)
}

// EditProfile cria ou substitui um atributo do perfil do usuário da sessão
func (f *Facade) EditProfile(id, attribute, value string) error {
	if err := f.checkSession(sessionRequest{ID: id}); err != nil {
		return err
	}
	return f.service.EditProfile(id, attribute, value)
}

// AddFriend envia (ou aceita) um pedido de amizade
func (f *Facade) AddFriend(id, friendLogin string) error {
	if err := f.checkSession(relationRequest{ID: id, Target: friendLogin}); err != nil {
		return err
	}
	return f.service.AddFriend(id, friendLogin)
}

// IsFriend informa se os dois usuários são amigos
func (f *Facade) IsFriend(login, friendLogin string) (bool, error) {
	return f.service.IsFriend(login, friendLogin)
}

// GetFriends devolve os amigos do usuário no formato {a,b,...}
func (f *Facade) GetFriends(login string) (string, error) {
	return f.service.GetFriends(login)
}

// SendMessage envia um recado para o destinatário
func (f *Facade) SendMessage(id, recipientLogin, body string) error {
	if err := f.checkSession(relationRequest{ID: id, Target: recipientLogin}); err != nil {
		return err
	}
	return f.service.SendMessage(id, recipientLogin, body)
}

// ReadMessage lê e remove o recado mais antigo do usuário da sessão
func (f *Facade) ReadMessage(id string) (string, error) {
	if err := f.checkSession(sessionRequest{ID: id}); err != nil {
		return "", err
	}
	return f.service.ReadMessage(id)
}

// CreateCommunity cria uma comunidade com o usuário da sessão como dono
func (f *Facade) CreateCommunity(id, name, description string) error {
	if err := f.checkSession(sessionRequest{ID: id}); err != nil {
		return err
	}
	return f.service.CreateCommunity(id, name, description)
}

// GetCommunityDescription devolve a descrição da comunidade
func (f *Facade) GetCommunityDescription(name string) (string, error) {
	return f.service.GetCommunityDescription(name)
}

// GetCommunityOwner devolve o login do dono da comunidade
func (f *Facade) GetCommunityOwner(name string) (string, error) {
	return f.service.GetCommunityOwner(name)
}

// GetCommunityMembers devolve os membros da comunidade no formato {a,b,...}
func (f *Facade) GetCommunityMembers(name string) (string, error) {
	return f.service.GetCommunityMembers(name)
}

// GetCommunities devolve as comunidades das quais o usuário participa
func (f *Facade) GetCommunities(login string) (string, error) {
	return f.service.GetCommunities(login)
}

// JoinCommunity adiciona o usuário da sessão à comunidade
func (f *Facade) JoinCommunity(id, name string) error {
	if err := f.checkSession(sessionRequest{ID: id}); err != nil {
		return err
	}
	return f.service.JoinCommunity(id, name)
}

// SendCommunityMessage envia uma mensagem a todos os membros da comunidade
func (f *Facade) SendCommunityMessage(id, name, body string) error {
	if err := f.checkSession(sessionRequest{ID: id}); err != nil {
		return err
	}
	return f.service.SendCommunityMessage(id, name, body)
}

// ReadCommunityMessage lê e remove a mensagem de comunidade mais antiga
func (f *Facade) ReadCommunityMessage(id string) (string, error) {
	if err := f.checkSession(sessionRequest{ID: id}); err != nil {
		return "", err
	}
	return f.service.ReadCommunityMessage(id)
}

// AddIdol adiciona o usuário da sessão como fã do ídolo
func (f *Facade) AddIdol(id, idolLogin string) error {
	if err := f.checkSession(relationRequest{ID: id, Target: idolLogin}); err != nil {
		return err
	}
	return f.service.AddIdol(id, idolLogin)
}

// IsFan informa se o usuário é fã do ídolo
func (f *Facade) IsFan(login, idolLogin string) (bool, error) {
	return f.service.IsFan(login, idolLogin)
}

// GetFans devolve os fãs do usuário no formato {a,b,...}
func (f *Facade) GetFans(login string) (string, error) {
	return f.service.GetFans(login)
}

// AddCrush registra uma paquera do usuário da sessão
func (f *Facade) AddCrush(id, crushLogin string) error {
	if err := f.checkSession(relationRequest{ID: id, Target: crushLogin}); err != nil {
		return err
	}
	return f.service.AddCrush(id, crushLogin)
}

// IsCrush informa se o usuário da sessão tem o outro como paquera
func (f *Facade) IsCrush(id, crushLogin string) (bool, error) {
	if err := f.checkSession(sessionRequest{ID: id}); err != nil {
		return false, err
	}
	return f.service.IsCrush(id, crushLogin)
}

// GetCrushes devolve as paqueras do usuário da sessão
func (f *Facade) GetCrushes(id string) (string, error) {
	if err := f.checkSession(sessionRequest{ID: id}); err != nil {
		return "", err
	}
	return f.service.GetCrushes(id)
}

// AddEnemy registra uma inimizade simétrica
func (f *Facade) AddEnemy(id, enemyLogin string) error {
	if err := f.checkSession(relationRequest{ID: id, Target: enemyLogin}); err != nil {
		return err
	}
	return f.service.AddEnemy(id, enemyLogin)
}

// RemoveUser remove o usuário da sessão e tudo que o referencia
func (f *Facade) RemoveUser(id string) error {
	if err := f.checkSession(sessionRequest{ID: id}); err != nil {
		return err
	}
	return f.service.RemoveUser(id)
}

// ResetSystem zera o estado em memória e o armazenamento
func (f *Facade) ResetSystem(ctx context.Context) error {
	return f.service.ResetSystem(ctx)
}

// Shutdown grava o estado completo no armazenamento
func (f *Facade) Shutdown(ctx context.Context) error {
	return f.service.Shutdown(ctx)
}
