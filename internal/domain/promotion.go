package domain

import (
	"errors"
	"time"
)

// Category identifica a vertical do marketplace à qual uma coleção de
// promoções pertence. Cada categoria possui uma coleção isolada.
type Category string

const (
	CategoryDashboard     Category = "dashboard"
	CategoryRealEstate    Category = "imoveis"
	CategoryPartsServices Category = "pecas-servicos"
	CategoryVehicles      Category = "veiculos"
)

// Categories lista todas as categorias conhecidas, na ordem de exibição do painel
var Categories = []Category{
	CategoryDashboard,
	CategoryRealEstate,
	CategoryPartsServices,
	CategoryVehicles,
}

var ErrUnknownCategory = errors.New("categoria desconhecida")

// ParseCategory valida e converte o segmento de rota em uma Category
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", ErrUnknownCategory
}

// Promotion é um banner promocional com janela de exibição delimitada por datas.
// A flag Active registra a intenção do administrador de exibir o banner; a
// visibilidade efetiva é derivada em tempo de leitura a partir da janela de datas.
type Promotion struct {
	ID        string    `json:"id"`
	Category  Category  `json:"category"`
	Image     string    `json:"image"`
	Title     string    `json:"title,omitempty"`
	Subtitle  string    `json:"subtitle,omitempty"`
	Link      string    `json:"link"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Active    bool      `json:"active"`
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Banner é a forma pronta para renderização no carrossel do site
type Banner struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
	Image    string `json:"image"`
	CTALabel string `json:"cta_label"`
	Link     string `json:"link"`
}

// CreatePromotionRequest carrega os dados de criação de uma promoção.
// As datas chegam no formato 2006-01-02, como enviadas pelo painel.
type CreatePromotionRequest struct {
	Image     string `json:"image"`
	Title     string `json:"title"`
	Subtitle  string `json:"subtitle"`
	Link      string `json:"link"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Active    bool   `json:"active"`
	Order     *int   `json:"order"`
}

// UpdatePromotionRequest é um patch em nível de campo: campos nil
// permanecem inalterados no registro existente.
type UpdatePromotionRequest struct {
	Image     *string `json:"image"`
	Title     *string `json:"title"`
	Subtitle  *string `json:"subtitle"`
	Link      *string `json:"link"`
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
	Active    *bool   `json:"active"`
	Order     *int    `json:"order"`
}
