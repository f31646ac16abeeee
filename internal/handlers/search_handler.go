package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/voltatec/field-asset-api/internal/dto"
	"github.com/voltatec/field-asset-api/internal/httperr"
	"github.com/voltatec/field-asset-api/internal/models"
)

type SearchHandler struct {
	db *gorm.DB
}

func NewSearchHandler(db *gorm.DB) *SearchHandler {
	return &SearchHandler{db: db}
}

// parseSearchTime aceita ISO-8601 com ou sem marcador UTC e com ou sem a
// parte de hora. Valor não reconhecido devolve nil e o filtro é ignorado,
// de propósito: busca nunca falha por data malformada.
func parseSearchTime(value string) *time.Time {
	if value == "" {
		return nil
	}

	layouts := []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02T15:04",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return &t
		}
	}
	return nil
}

func likePattern(value string) string {
	return "%" + strings.ToLower(value) + "%"
}

func (h *SearchHandler) SearchAtribuicoes(c *gin.Context) {
	q := h.db.Model(&models.AtribuicaoFerramentaEPI{}).
		Select("atribuicoes.*").
		Joins("JOIN eletricistas ON eletricistas.id = atribuicoes.eletricista_id").
		Joins("JOIN ferramentas_epis ON ferramentas_epis.id = atribuicoes.ferramenta_epi_id")

	if nome := c.Query("eletricista_nome"); nome != "" {
		q = q.Where("LOWER(eletricistas.nome) LIKE ?", likePattern(nome))
	}
	if inicio := parseSearchTime(c.Query("data_inicio")); inicio != nil {
		q = q.Where("atribuicoes.data_retirada >= ?", *inicio)
	}
	if fim := parseSearchTime(c.Query("data_fim")); fim != nil {
		q = q.Where("atribuicoes.data_retirada <= ?", *fim)
	}
	if item := c.Query("item_nome"); item != "" {
		q = q.Where("LOWER(ferramentas_epis.nome) LIKE ?", likePattern(item))
	}

	var atribuicoes []models.AtribuicaoFerramentaEPI
	err := q.
		Preload("Eletricista").
		Preload("FerramentaEPI").
		Find(&atribuicoes).Error
	if err != nil {
		httperr.Internal(c, "Erro ao buscar atribuições")
		return
	}

	c.JSON(http.StatusOK, dto.FromAtribuicoes(atribuicoes))
}

func (h *SearchHandler) SearchServicosExternos(c *gin.Context) {
	q := h.db.Model(&models.ServicoExterno{}).
		Select("servicos_externos.*").
		Joins("JOIN users ON users.id = servicos_externos.colaborador_id")

	if nome := c.Query("colaborador_nome"); nome != "" {
		q = q.Where("LOWER(users.username) LIKE ?", likePattern(nome))
	}
	if inicio := parseSearchTime(c.Query("data_inicio")); inicio != nil {
		q = q.Where("servicos_externos.data_hora_saida >= ?", *inicio)
	}
	if fim := parseSearchTime(c.Query("data_fim")); fim != nil {
		q = q.Where("servicos_externos.data_hora_saida <= ?", *fim)
	}
	if destino := c.Query("destino"); destino != "" {
		q = q.Where("LOWER(servicos_externos.destino) LIKE ?", likePattern(destino))
	}
	if empresa := c.Query("empresa"); empresa != "" {
		q = q.Where("LOWER(servicos_externos.empresa_atendida) LIKE ?", likePattern(empresa))
	}

	var servicos []models.ServicoExterno
	err := q.
		Preload("Colaborador").
		Preload("Veiculo").
		Preload("Materiais").
		Preload("ChecklistCinto").
		Preload("ChecklistEscada").
		Find(&servicos).Error
	if err != nil {
		httperr.Internal(c, "Erro ao buscar serviços externos")
		return
	}

	c.JSON(http.StatusOK, dto.FromServicosExternos(servicos))
}
