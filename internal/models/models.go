package models

// User representa um usuário cadastrado no sistema.
// Todas as referências a outras entidades são guardadas por identificador
// (login ou nome de comunidade), nunca por ponteiro; a resolução é feita
// pelo serviço, dono das tabelas autoritativas.
type User struct {
	Login    string
	Password string
	Name     string

	// Perfil de preenchimento livre (chave -> valor)
	Profile map[string]string

	Friends          []string
	SentRequests     []string
	ReceivedRequests []string

	Idols           []string
	Fans            []string
	Crushes         []string
	ReceivedCrushes []string
	Enemies         []string

	OwnedCommunities []string
	Communities      []string

	// Filas FIFO, consumidas destrutivamente na leitura
	Inbox          []DirectMessage
	CommunityInbox []CommunityMessage
}

// NewUser cria um novo usuário com o perfil inicializado
func NewUser(login, password, name string) *User {
	return &User{
		Login:    login,
		Password: password,
		Name:     name,
		Profile:  make(map[string]string),
	}
}

// Community representa uma comunidade com um dono e um conjunto de membros.
// O dono está sempre presente em Members; a ordem de inserção é preservada
// para listagem e para o fan-out de mensagens.
type Community struct {
	Name        string
	Description string
	Owner       string
	Members     []string
}

// NewCommunity cria uma comunidade já tendo o dono como primeiro membro
func NewCommunity(owner, name, description string) *Community {
	return &Community{
		Name:        name,
		Description: description,
		Owner:       owner,
		Members:     []string{owner},
	}
}

// DirectMessage é um recado enviado de um usuário para outro.
// Imutável depois de criado; pertence à caixa de entrada do destinatário.
type DirectMessage struct {
	From string
	To   string
	Body string
}

// CommunityMessage é uma mensagem de comunidade entregue a um membro.
// O remetente não é rastreado por mensagem.
type CommunityMessage struct {
	To   string
	Body string
}
