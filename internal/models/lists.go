package models

import "strings"

// ContainsLogin verifica se um identificador está presente na lista
func ContainsLogin(list []string, id string) bool {
	for _, v := range list {
		if v == id {
			return true
		}
	}
	return false
}

// RemoveLogin remove um identificador da lista, preservando a ordem dos demais
func RemoveLogin(list []string, id string) []string {
	out := list[:0]
	for _, v := range list {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

// FormatList formata uma lista de identificadores como {v1,v2,...,vn}.
// Lista vazia vira "{}".
func FormatList(list []string) string {
	return "{" + strings.Join(list, ",") + "}"
}
