package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Erro carrega o status HTTP e a mensagem devolvida pela API. A API responde
// ora com {"error": "..."}, ora com uma string crua; as duas formas chegam
// aqui já normalizadas em Mensagem e são exibidas ao usuário como vieram.
type Erro struct {
	Status   int
	Mensagem string
}

func (e *Erro) Error() string {
	return fmt.Sprintf("api: %s (status %d)", e.Mensagem, e.Status)
}

// novoErro interpreta o corpo de uma resposta de falha.
func novoErro(status int, corpo []byte) *Erro {
	msg := strings.TrimSpace(string(corpo))

	var envelope struct {
		Erro string `json:"error"`
	}
	if err := json.Unmarshal(corpo, &envelope); err == nil && envelope.Erro != "" {
		msg = envelope.Erro
	}
	if msg == "" {
		msg = fmt.Sprintf("erro inesperado do servidor (status %d)", status)
	}
	return &Erro{Status: status, Mensagem: msg}
}

func statusDe(err error) int {
	var e *Erro
	if errors.As(err, &e) {
		return e.Status
	}
	return 0
}

// Mensagem extrai o texto apresentável de qualquer erro vindo do cliente.
func Mensagem(err error) string {
	var e *Erro
	if errors.As(err, &e) {
		return e.Mensagem
	}
	return "não foi possível comunicar com o servidor"
}

// EhValidacao indica rejeição dos dados enviados (400/422).
func EhValidacao(err error) bool {
	s := statusDe(err)
	return s == 400 || s == 422
}

// EhNaoAutorizado indica sessão ausente ou expirada (401).
func EhNaoAutorizado(err error) bool { return statusDe(err) == 401 }

// EhProibido indica falta de permissão (403).
func EhProibido(err error) bool { return statusDe(err) == 403 }

// EhNaoEncontrado indica recurso inexistente (404).
func EhNaoEncontrado(err error) bool { return statusDe(err) == 404 }

// EhConflito indica remoção bloqueada por dependentes (409).
func EhConflito(err error) bool { return statusDe(err) == 409 }
