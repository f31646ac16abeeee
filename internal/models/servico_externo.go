package models

import "time"

// Status de condição de equipamento (um caractere): B = Bom, I = Impróprio,
// N = Não aplicável, A = Outro (avaliar).
const StatusBom = "B"

// ServicoExterno registra a saída de um colaborador com um veículo para
// atendimento externo. Os materiais e os dois checklists pertencem
// exclusivamente ao serviço e são removidos junto com ele.
type ServicoExterno struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ColaboradorID uint    `gorm:"not null" json:"colaborador_id"`
	Colaborador   User    `gorm:"foreignKey:ColaboradorID;constraint:OnUpdate:CASCADE;" json:"-"`
	VeiculoID     uint    `gorm:"not null" json:"veiculo_id"`
	Veiculo       Veiculo `gorm:"constraint:OnUpdate:CASCADE;" json:"-"`

	Destino         string `gorm:"size:200;not null" json:"destino"`
	EmpresaAtendida string `gorm:"size:200;not null" json:"empresa_atendida"`

	DataHoraSaida time.Time `gorm:"autoCreateTime" json:"data_hora_saida"`

	Materiais       []MaterialServicoExterno `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	ChecklistCinto  *ChecklistCinto          `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	ChecklistEscada *ChecklistEscada         `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
}

func (ServicoExterno) TableName() string { return "servicos_externos" }

type MaterialServicoExterno struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ServicoExternoID uint `gorm:"not null;index" json:"servico_externo_id"`

	Nome              string `gorm:"size:100;not null" json:"nome"`
	Tipo              string `gorm:"size:50;not null" json:"tipo"`
	Status            string `gorm:"size:1;not null" json:"status"`
	ObservacaoTecnica string `gorm:"type:text" json:"observacao_tecnica"`
	FotoPath          string `gorm:"size:255" json:"foto_path"`
}

func (MaterialServicoExterno) TableName() string { return "materiais_servico_externo" }

type ChecklistCinto struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ServicoExternoID uint `gorm:"not null;uniqueIndex" json:"servico_externo_id"`

	CintoSegurancaStatus string `gorm:"size:1;not null" json:"cinto_seguranca_status"`
	TalabarteStatus      string `gorm:"size:1;not null" json:"talabarte_status"`
	MosquetaoStatus      string `gorm:"size:1;not null" json:"mosquetao_status"`
	Observacoes          string `gorm:"type:text" json:"observacoes"`
}

func (ChecklistCinto) TableName() string { return "checklists_cinto" }

type ChecklistEscada struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ServicoExternoID uint `gorm:"not null;uniqueIndex" json:"servico_externo_id"`

	EscadaSimplesStatus    string `gorm:"size:1;not null" json:"escada_simples_status"`
	EscadaExtensivelStatus string `gorm:"size:1;not null" json:"escada_extensivel_status"`
	DegrausStatus          string `gorm:"size:1;not null" json:"degraus_status"`
	TravasStatus           string `gorm:"size:1;not null" json:"travas_status"`
	Observacoes            string `gorm:"type:text" json:"observacoes"`
}

func (ChecklistEscada) TableName() string { return "checklists_escada" }
