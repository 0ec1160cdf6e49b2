package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// ReportIDSize é o tamanho dos IDs de relatório
const ReportIDSize = 10

// GenerateID gera um ID alfanumérico para relatórios
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, ReportIDSize)
}
