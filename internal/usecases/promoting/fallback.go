package promoting

import "github.com/rbfernandes/classificados-api/internal/domain"

// defaultBanners é a lista estática exibida por categoria enquanto nenhuma
// promoção configurada está visível, para o carrossel nunca ficar vazio no
// primeiro uso do marketplace
var defaultBanners = map[domain.Category][]domain.Banner{
	domain.CategoryDashboard: {
		{
			ID:       "default-dashboard-1",
			Title:    "Bem-vindo ao Classificados",
			Subtitle: "Compre e venda com segurança",
			Image:    "/banners/default-dashboard-1.webp",
			CTALabel: "Saiba mais",
			Link:     "#",
		},
		{
			ID:       "default-dashboard-2",
			Title:    "Anuncie grátis",
			Subtitle: "Seu anúncio no ar em minutos",
			Image:    "/banners/default-dashboard-2.webp",
			CTALabel: "Saiba mais",
			Link:     "#",
		},
	},
	domain.CategoryRealEstate: {
		{
			ID:       "default-imoveis-1",
			Title:    "Encontre seu novo lar",
			Subtitle: "Casas e apartamentos em todo o Brasil",
			Image:    "/banners/default-imoveis-1.webp",
			CTALabel: "Saiba mais",
			Link:     "#",
		},
	},
	domain.CategoryPartsServices: {
		{
			ID:       "default-pecas-1",
			Title:    "Peças e serviços",
			Subtitle: "Tudo para a manutenção do seu veículo",
			Image:    "/banners/default-pecas-1.webp",
			CTALabel: "Saiba mais",
			Link:     "#",
		},
	},
	domain.CategoryVehicles: {
		{
			ID:       "default-veiculos-1",
			Title:    "Seu próximo carro está aqui",
			Subtitle: "Milhares de ofertas de veículos",
			Image:    "/banners/default-veiculos-1.webp",
			CTALabel: "Saiba mais",
			Link:     "#",
		},
		{
			ID:       "default-veiculos-2",
			Title:    "Venda seu carro",
			Subtitle: "Avaliação justa e anúncio gratuito",
			Image:    "/banners/default-veiculos-2.webp",
			CTALabel: "Saiba mais",
			Link:     "#",
		},
	},
}

// withFallback substitui o resultado vazio do resolver pela lista padrão da
// categoria; qualquer resultado não vazio passa adiante sem modificação
func withFallback(category domain.Category, resolved []domain.Banner) []domain.Banner {
	if len(resolved) > 0 {
		return resolved
	}

	defaults := defaultBanners[category]
	out := make([]domain.Banner, len(defaults))
	copy(out, defaults)
	return out
}
