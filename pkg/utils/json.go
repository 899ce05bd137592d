package utils

import (
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// CompactJSON serializa o valor em uma linha; retorna "null" se falhar
func CompactJSON(in any) string {
	buffer, err := json.Marshal(in)
	if err != nil {
		return "null"
	}

	return string(buffer)
}
