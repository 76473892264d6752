package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"jackut-backend/internal/facade"
)

// runConsole lê comandos do tipo "comando;arg1;arg2" até EOF ou
// "encerrarSistema". Cada comando corresponde a uma operação da fachada;
// erros de domínio são impressos como vieram.
func runConsole(f *facade.Facade, in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Split(line, ";")
		command, args := parts[0], parts[1:]

		if command == "encerrarSistema" {
			return
		}

		result, err := dispatch(f, command, args)
		if err != nil {
			fmt.Fprintln(out, "erro:", err)
			continue
		}
		if result != "" {
			fmt.Fprintln(out, result)
		}
	}
}

func dispatch(f *facade.Facade, command string, args []string) (string, error) {
	need := func(n int) error {
		if len(args) != n {
			return fmt.Errorf("comando %s espera %d argumento(s), recebeu %d", command, n, len(args))
		}
		return nil
	}

	switch command {
	case "criarUsuario":
		if err := need(3); err != nil {
			return "", err
		}
		return "", f.CreateUser(args[0], args[1], args[2])

	case "abrirSessao":
		if err := need(2); err != nil {
			return "", err
		}
		return f.OpenSession(args[0], args[1])

	case "getAtributoUsuario":
		if err := need(2); err != nil {
			return "", err
		}
		return f.GetUserAttribute(args[0], args[1])

	case "editarPerfil":
		if err := need(3); err != nil {
			return "", err
		}
		return "", f.EditProfile(args[0], args[1], args[2])

	case "adicionarAmigo":
		if err := need(2); err != nil {
			return "", err
		}
		return "", f.AddFriend(args[0], args[1])

	case "ehAmigo":
		if err := need(2); err != nil {
			return "", err
		}
		ok, err := f.IsFriend(args[0], args[1])
		return fmt.Sprintf("%t", ok), err

	case "getAmigos":
		if err := need(1); err != nil {
			return "", err
		}
		return f.GetFriends(args[0])

	case "enviarRecado":
		if err := need(3); err != nil {
			return "", err
		}
		return "", f.SendMessage(args[0], args[1], args[2])

	case "lerRecado":
		if err := need(1); err != nil {
			return "", err
		}
		return f.ReadMessage(args[0])

	case "criarComunidade":
		if err := need(3); err != nil {
			return "", err
		}
		return "", f.CreateCommunity(args[0], args[1], args[2])

	case "getDescricaoComunidade":
		if err := need(1); err != nil {
			return "", err
		}
		return f.GetCommunityDescription(args[0])

	case "getDonoComunidade":
		if err := need(1); err != nil {
			return "", err
		}
		return f.GetCommunityOwner(args[0])

	case "getMembrosComunidade":
		if err := need(1); err != nil {
			return "", err
		}
		return f.GetCommunityMembers(args[0])

	case "getComunidades":
		if err := need(1); err != nil {
			return "", err
		}
		return f.GetCommunities(args[0])

	case "adicionarComunidade":
		if err := need(2); err != nil {
			return "", err
		}
		return "", f.JoinCommunity(args[0], args[1])

	case "enviarMensagem":
		if err := need(3); err != nil {
			return "", err
		}
		return "", f.SendCommunityMessage(args[0], args[1], args[2])

	case "lerMensagem":
		if err := need(1); err != nil {
			return "", err
		}
		return f.ReadCommunityMessage(args[0])

	case "adicionarIdolo":
		if err := need(2); err != nil {
			return "", err
		}
		return "", f.AddIdol(args[0], args[1])

	case "ehFa":
		if err := need(2); err != nil {
			return "", err
		}
		ok, err := f.IsFan(args[0], args[1])
		return fmt.Sprintf("%t", ok), err

	case "getFas":
		if err := need(1); err != nil {
			return "", err
		}
		return f.GetFans(args[0])

	case "adicionarPaquera":
		if err := need(2); err != nil {
			return "", err
		}
		return "", f.AddCrush(args[0], args[1])

	case "ehPaquera":
		if err := need(2); err != nil {
			return "", err
		}
		ok, err := f.IsCrush(args[0], args[1])
		return fmt.Sprintf("%t", ok), err

	case "getPaqueras":
		if err := need(1); err != nil {
			return "", err
		}
		return f.GetCrushes(args[0])

	case "adicionarInimigo":
		if err := need(2); err != nil {
			return "", err
		}
		return "", f.AddEnemy(args[0], args[1])

	case "removerUsuario":
		if err := need(1); err != nil {
			return "", err
		}
		return "", f.RemoveUser(args[0])

	case "zerarSistema":
		if err := need(0); err != nil {
			return "", err
		}
		return "", f.ResetSystem(context.Background())

	default:
		return "", fmt.Errorf("comando desconhecido: %s", command)
	}
}
