package filtro

import "strings"

// SemVinculo é o valor sentinela usado nos filtros de chave estrangeira para
// selecionar registros sem vínculo algum (ex.: usuário sem parceiro).
const SemVinculo = "none"

// Predicado decide se um item permanece na listagem.
type Predicado[T any] func(T) bool

// Aplicar devolve o subconjunto dos itens aprovados pelo predicado,
// preservando a ordem de exibição. Puro e síncrono.
func Aplicar[T any](itens []T, p Predicado[T]) []T {
	if p == nil {
		return itens
	}
	resultado := make([]T, 0, len(itens))
	for _, item := range itens {
		if p(item) {
			resultado = append(resultado, item)
		}
	}
	return resultado
}

// Todos combina predicados por conjunção. Predicados nulos são ignorados.
func Todos[T any](preds ...Predicado[T]) Predicado[T] {
	return func(item T) bool {
		for _, p := range preds {
			if p != nil && !p(item) {
				return false
			}
		}
		return true
	}
}

// PorTexto faz busca livre, sem diferenciar maiúsculas, sobre os campos
// extraídos do item. Busca vazia aprova tudo.
func PorTexto[T any](busca string, campos func(T) []string) Predicado[T] {
	busca = strings.ToLower(strings.TrimSpace(busca))
	if busca == "" {
		return nil
	}
	return func(item T) bool {
		for _, campo := range campos(item) {
			if strings.Contains(strings.ToLower(campo), busca) {
				return true
			}
		}
		return false
	}
}

// PorChave filtra por igualdade de chave estrangeira. Valor vazio aprova
// tudo; SemVinculo aprova apenas itens com a chave vazia.
func PorChave[T any](valor string, chave func(T) string) Predicado[T] {
	if valor == "" {
		return nil
	}
	if valor == SemVinculo {
		return func(item T) bool { return chave(item) == "" }
	}
	return func(item T) bool { return chave(item) == valor }
}

// PorIgualdade filtra por igualdade simples de um campo textual (status etc.).
func PorIgualdade[T any](valor string, campo func(T) string) Predicado[T] {
	if valor == "" {
		return nil
	}
	return func(item T) bool { return campo(item) == valor }
}
