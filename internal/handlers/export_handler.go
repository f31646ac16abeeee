package handlers

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/voltatec/field-asset-api/internal/export"
	"github.com/voltatec/field-asset-api/internal/httperr"
	"github.com/voltatec/field-asset-api/internal/models"
)

const (
	contentTypePDF  = "application/pdf"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type ExportHandler struct {
	db *gorm.DB
}

func NewExportHandler(db *gorm.DB) *ExportHandler {
	return &ExportHandler{db: db}
}

func (h *ExportHandler) AtribuicoesPDF(c *gin.Context) {
	rep, err := h.atribuicoesReport()
	if err != nil {
		httperr.Internal(c, "Erro ao exportar atribuições")
		return
	}
	writePDF(c, rep)
}

func (h *ExportHandler) AtribuicoesExcel(c *gin.Context) {
	rep, err := h.atribuicoesReport()
	if err != nil {
		httperr.Internal(c, "Erro ao exportar atribuições")
		return
	}
	writeExcel(c, rep)
}

func (h *ExportHandler) ServicosExternosPDF(c *gin.Context) {
	rep, err := h.servicosReport()
	if err != nil {
		httperr.Internal(c, "Erro ao exportar serviços externos")
		return
	}
	writePDF(c, rep)
}

func (h *ExportHandler) ServicosExternosExcel(c *gin.Context) {
	rep, err := h.servicosReport()
	if err != nil {
		httperr.Internal(c, "Erro ao exportar serviços externos")
		return
	}
	writeExcel(c, rep)
}

// --------- helpers ---------

func (h *ExportHandler) atribuicoesReport() (export.Report, error) {
	var atribuicoes []models.AtribuicaoFerramentaEPI
	err := h.db.
		Preload("Eletricista").
		Preload("FerramentaEPI").
		Find(&atribuicoes).Error
	if err != nil {
		return export.Report{}, err
	}
	return export.AtribuicoesReport(atribuicoes), nil
}

func (h *ExportHandler) servicosReport() (export.Report, error) {
	var servicos []models.ServicoExterno
	err := h.db.
		Preload("Colaborador").
		Preload("Veiculo").
		Find(&servicos).Error
	if err != nil {
		return export.Report{}, err
	}
	return export.ServicosExternosReport(servicos), nil
}

func writePDF(c *gin.Context, rep export.Report) {
	buf, err := export.BuildPDF(rep)
	if err != nil {
		httperr.Internal(c, "Erro ao gerar PDF")
		return
	}
	writeAttachment(c, buf, contentTypePDF, rep.Filename+".pdf")
}

func writeExcel(c *gin.Context, rep export.Report) {
	buf, err := export.BuildExcel(rep)
	if err != nil {
		httperr.Internal(c, "Erro ao gerar planilha")
		return
	}
	writeAttachment(c, buf, contentTypeXLSX, rep.Filename+".xlsx")
}

func writeAttachment(c *gin.Context, buf *bytes.Buffer, contentType, filename string) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, contentType, buf.Bytes())
}
