package export

import (
	"time"

	"github.com/voltatec/field-asset-api/internal/models"
)

// Report é a forma comum dos dois relatórios: título, cabeçalho fixo e
// linhas já formatadas como texto.
type Report struct {
	Title    string
	Sheet    string
	Filename string
	Headers  []string
	Rows     [][]string
}

const dateTimeLayout = "02/01/2006 15:04"

func formatDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateTimeLayout)
}

// AtribuicoesReport monta o relatório de atribuições. Relações ausentes
// viram células vazias; devolução pendente vira "Não devolvido".
func AtribuicoesReport(atribuicoes []models.AtribuicaoFerramentaEPI) Report {
	rows := make([][]string, 0, len(atribuicoes))
	for i := range atribuicoes {
		a := &atribuicoes[i]

		devolucao := "Não devolvido"
		if a.DataDevolucao != nil {
			devolucao = formatDateTime(*a.DataDevolucao)
		}

		rows = append(rows, []string{
			a.Eletricista.Nome,
			a.FerramentaEPI.Nome,
			a.FerramentaEPI.Tipo,
			formatDateTime(a.DataRetirada),
			devolucao,
			a.Observacao,
		})
	}

	return Report{
		Title:    "Relatório de Atribuições de Ferramentas e EPIs",
		Sheet:    "Atribuições",
		Filename: "atribuicoes",
		Headers:  []string{"Eletricista", "Item", "Tipo", "Data Retirada", "Data Devolução", "Observação"},
		Rows:     rows,
	}
}

// ServicosExternosReport monta o relatório de serviços externos.
func ServicosExternosReport(servicos []models.ServicoExterno) Report {
	rows := make([][]string, 0, len(servicos))
	for i := range servicos {
		s := &servicos[i]

		rows = append(rows, []string{
			s.Colaborador.Username,
			s.Veiculo.Identificacao,
			s.Destino,
			s.EmpresaAtendida,
			formatDateTime(s.DataHoraSaida),
		})
	}

	return Report{
		Title:    "Relatório de Serviços Externos",
		Sheet:    "Serviços Externos",
		Filename: "servicos_externos",
		Headers:  []string{"Colaborador", "Veículo", "Destino", "Empresa", "Data/Hora Saída"},
		Rows:     rows,
	}
}
